package handler

import (
	"net/http"

	"github.com/mgirard/hbnb/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, facade *service.Facade) {
	authHandler := NewAuthHandler(auth)
	userHandler := NewUserHandler(facade)
	amenityHandler := NewAmenityHandler(facade)
	placeHandler := NewPlaceHandler(facade)
	reviewHandler := NewReviewHandler(facade)

	protected := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(auth, h)
	}

	mux.HandleFunc("GET /healthz", HandleHealthz)
	mux.Handle("GET /metrics", MetricsHandler())

	mux.HandleFunc("POST /api/v1/auth/login", authHandler.HandleLogin)
	mux.Handle("GET /api/v1/auth/me", protected(authHandler.HandleMe))

	mux.Handle("POST /api/v1/users", protected(userHandler.HandleCreate))
	mux.HandleFunc("GET /api/v1/users", userHandler.HandleList)
	mux.HandleFunc("GET /api/v1/users/{id}", userHandler.HandleGet)
	mux.Handle("PUT /api/v1/users/{id}", protected(userHandler.HandleUpdate))

	mux.Handle("POST /api/v1/amenities", protected(amenityHandler.HandleCreate))
	mux.HandleFunc("GET /api/v1/amenities", amenityHandler.HandleList)
	mux.HandleFunc("GET /api/v1/amenities/{id}", amenityHandler.HandleGet)
	mux.Handle("PUT /api/v1/amenities/{id}", protected(amenityHandler.HandleUpdate))
	mux.Handle("DELETE /api/v1/amenities/{id}", protected(amenityHandler.HandleDelete))

	mux.Handle("POST /api/v1/places", protected(placeHandler.HandleCreate))
	mux.HandleFunc("GET /api/v1/places", placeHandler.HandleList)
	mux.HandleFunc("GET /api/v1/places/{id}", placeHandler.HandleGet)
	mux.Handle("PUT /api/v1/places/{id}", protected(placeHandler.HandleUpdate))
	mux.Handle("DELETE /api/v1/places/{id}", protected(placeHandler.HandleDelete))
	mux.HandleFunc("GET /api/v1/places/{id}/reviews", placeHandler.HandleListReviews)

	mux.Handle("POST /api/v1/reviews", protected(reviewHandler.HandleCreate))
	mux.HandleFunc("GET /api/v1/reviews", reviewHandler.HandleList)
	mux.HandleFunc("GET /api/v1/reviews/{id}", reviewHandler.HandleGet)
	mux.Handle("PUT /api/v1/reviews/{id}", protected(reviewHandler.HandleUpdate))
	mux.Handle("DELETE /api/v1/reviews/{id}", protected(reviewHandler.HandleDelete))
}
