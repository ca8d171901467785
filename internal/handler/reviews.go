package handler

import (
	"net/http"

	"github.com/mgirard/hbnb/internal/service"
)

// ReviewHandler handles review HTTP requests. Creation requires
// authentication (the caller becomes the author); update and delete require
// the author or an admin.
type ReviewHandler struct {
	facade *service.Facade
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(facade *service.Facade) *ReviewHandler {
	return &ReviewHandler{facade: facade}
}

// HandleCreate creates a review authored by the caller.
// POST /api/v1/reviews
func (h *ReviewHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	caller := UserFromContext(r.Context())
	if caller == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required.")
		return
	}

	var req struct {
		Text    string `json:"text"`
		Rating  int    `json:"rating"`
		PlaceID string `json:"place_id"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	review, err := h.facade.CreateReview(r.Context(), service.CreateReviewInput{
		Text:    req.Text,
		Rating:  req.Rating,
		PlaceID: req.PlaceID,
		UserID:  caller.ID,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toReviewDTO(review))
}

// HandleList returns all reviews.
// GET /api/v1/reviews
func (h *ReviewHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.facade.ListReviews(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	dtos := make([]reviewDTO, 0, len(reviews))
	for i := range reviews {
		dtos = append(dtos, toReviewDTO(&reviews[i]))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// HandleGet returns a single review.
// GET /api/v1/reviews/{id}
func (h *ReviewHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	review, err := h.facade.GetReview(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toReviewDTO(review))
}

// HandleUpdate updates a review (author or admin).
// PUT /api/v1/reviews/{id}
func (h *ReviewHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	caller := UserFromContext(r.Context())
	if caller == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required.")
		return
	}

	review, err := h.facade.GetReview(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if review.UserID != caller.ID && !caller.IsAdmin {
		writeError(w, http.StatusForbidden, "Unauthorized action.")
		return
	}

	var req struct {
		Text   *string `json:"text"`
		Rating *int    `json:"rating"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	updated, err := h.facade.UpdateReview(r.Context(), review.ID, service.UpdateReviewInput{
		Text:   req.Text,
		Rating: req.Rating,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toReviewDTO(updated))
}

// HandleDelete removes a review (author or admin).
// DELETE /api/v1/reviews/{id}
func (h *ReviewHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	caller := UserFromContext(r.Context())
	if caller == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required.")
		return
	}

	review, err := h.facade.GetReview(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if review.UserID != caller.ID && !caller.IsAdmin {
		writeError(w, http.StatusForbidden, "Unauthorized action.")
		return
	}

	if err := h.facade.DeleteReview(r.Context(), review.ID); err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
