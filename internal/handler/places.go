package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mgirard/hbnb/internal/domain"
	"github.com/mgirard/hbnb/internal/service"
)

// PlaceHandler handles place HTTP requests. Creation requires authentication
// (the caller becomes the owner); update and delete require the owner or an
// admin.
type PlaceHandler struct {
	facade *service.Facade
}

// NewPlaceHandler creates a new PlaceHandler.
func NewPlaceHandler(facade *service.Facade) *PlaceHandler {
	return &PlaceHandler{facade: facade}
}

// HandleCreate creates a place owned by the caller.
// POST /api/v1/places
func (h *PlaceHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	caller := UserFromContext(r.Context())
	if caller == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required.")
		return
	}

	var req struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Price       float64  `json:"price"`
		Latitude    float64  `json:"latitude"`
		Longitude   float64  `json:"longitude"`
		Amenities   []string `json:"amenities"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	place, err := h.facade.CreatePlace(r.Context(), service.CreatePlaceInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		OwnerID:     caller.ID,
		AmenityIDs:  req.Amenities,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPlaceDTO(place))
}

// HandleList returns all places.
// GET /api/v1/places
func (h *PlaceHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	places, err := h.facade.ListPlaces(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	dtos := make([]placeDTO, 0, len(places))
	for i := range places {
		dtos = append(dtos, toPlaceDTO(&places[i]))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// HandleGet returns a single place with its owner, amenities, and reviews
// expanded.
// GET /api/v1/places/{id}
func (h *PlaceHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	place, err := h.facade.GetPlace(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	detail := placeDetailDTO{
		placeDTO:  toPlaceDTO(place),
		Amenities: []amenityDTO{},
		Reviews:   []reviewDTO{},
	}

	owner, err := h.facade.GetUser(r.Context(), place.OwnerID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	detail.Owner = toUserDTO(owner)

	for _, amenityID := range place.AmenityIDs {
		amenity, err := h.facade.GetAmenity(r.Context(), amenityID)
		if err != nil {
			// A concurrently deleted amenity is dropped from the expansion.
			if errors.Is(err, domain.ErrNotFound) {
				slog.Warn("place references missing amenity", "place_id", place.ID, "amenity_id", amenityID)
				continue
			}
			writeDomainError(w, err)
			return
		}
		detail.Amenities = append(detail.Amenities, toAmenityDTO(amenity))
	}

	reviews, err := h.facade.ListReviewsForPlace(r.Context(), place.ID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	for i := range reviews {
		detail.Reviews = append(detail.Reviews, toReviewDTO(&reviews[i]))
	}

	writeJSON(w, http.StatusOK, detail)
}

// HandleUpdate updates a place (owner or admin).
// PUT /api/v1/places/{id}
func (h *PlaceHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	caller := UserFromContext(r.Context())
	if caller == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required.")
		return
	}

	place, err := h.facade.GetPlace(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if place.OwnerID != caller.ID && !caller.IsAdmin {
		writeError(w, http.StatusForbidden, "Unauthorized action.")
		return
	}

	var req struct {
		Title       *string   `json:"title"`
		Description *string   `json:"description"`
		Price       *float64  `json:"price"`
		Latitude    *float64  `json:"latitude"`
		Longitude   *float64  `json:"longitude"`
		OwnerID     *string   `json:"owner_id"`
		Amenities   *[]string `json:"amenities"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	updated, err := h.facade.UpdatePlace(r.Context(), place.ID, service.UpdatePlaceInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		OwnerID:     req.OwnerID,
		AmenityIDs:  req.Amenities,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toPlaceDTO(updated))
}

// HandleDelete removes a place and its reviews (owner or admin).
// DELETE /api/v1/places/{id}
func (h *PlaceHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	caller := UserFromContext(r.Context())
	if caller == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required.")
		return
	}

	place, err := h.facade.GetPlace(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if place.OwnerID != caller.ID && !caller.IsAdmin {
		writeError(w, http.StatusForbidden, "Unauthorized action.")
		return
	}

	if err := h.facade.DeletePlace(r.Context(), place.ID); err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleListReviews returns the reviews for a place.
// GET /api/v1/places/{id}/reviews
func (h *PlaceHandler) HandleListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.facade.ListReviewsForPlace(r.Context(), r.PathValue("id"))
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
