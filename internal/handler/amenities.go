package handler

import (
	"net/http"

	"github.com/mgirard/hbnb/internal/service"
)

// AmenityHandler handles amenity HTTP requests. Writes are admin-only.
type AmenityHandler struct {
	facade *service.Facade
}

// NewAmenityHandler creates a new AmenityHandler.
func NewAmenityHandler(facade *service.Facade) *AmenityHandler {
	return &AmenityHandler{facade: facade}
}

// HandleCreate creates an amenity (admin only).
// POST /api/v1/amenities
func (h *AmenityHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	caller := UserFromContext(r.Context())
	if caller == nil || !caller.IsAdmin {
		writeError(w, http.StatusForbidden, "Admin privileges required.")
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	amenity, err := h.facade.CreateAmenity(r.Context(), req.Name)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAmenityDTO(amenity))
}

// HandleList returns all amenities.
// GET /api/v1/amenities
func (h *AmenityHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	amenities, err := h.facade.ListAmenities(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	dtos := make([]amenityDTO, 0, len(amenities))
	for i := range amenities {
		dtos = append(dtos, toAmenityDTO(&amenities[i]))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// HandleGet returns a single amenity.
// GET /api/v1/amenities/{id}
func (h *AmenityHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	amenity, err := h.facade.GetAmenity(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toAmenityDTO(amenity))
}

// HandleUpdate renames an amenity (admin only).
// PUT /api/v1/amenities/{id}
func (h *AmenityHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	caller := UserFromContext(r.Context())
	if caller == nil || !caller.IsAdmin {
		writeError(w, http.StatusForbidden, "Admin privileges required.")
		return
	}

	var req struct {
		Name *string `json:"name"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	amenity, err := h.facade.UpdateAmenity(r.Context(), r.PathValue("id"), service.UpdateAmenityInput{Name: req.Name})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toAmenityDTO(amenity))
}

// HandleDelete removes an amenity (admin only).
// DELETE /api/v1/amenities/{id}
func (h *AmenityHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	caller := UserFromContext(r.Context())
	if caller == nil || !caller.IsAdmin {
		writeError(w, http.StatusForbidden, "Admin privileges required.")
		return
	}

	if err := h.facade.DeleteAmenity(r.Context(), r.PathValue("id")); err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
