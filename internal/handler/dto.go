package handler

import "github.com/mgirard/hbnb/internal/domain"

type userDTO struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"is_admin"`
}

type amenityDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type placeDTO struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	OwnerID     string  `json:"owner_id"`
}

// placeDetailDTO expands the owner, amenity, and review references for the
// single-place endpoint.
type placeDetailDTO struct {
	placeDTO
	Owner     userDTO      `json:"owner"`
	Amenities []amenityDTO `json:"amenities"`
	Reviews   []reviewDTO  `json:"reviews"`
}

type reviewDTO struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Rating  int    `json:"rating"`
	PlaceID string `json:"place_id"`
	UserID  string `json:"user_id"`
}

func toUserDTO(u *domain.User) userDTO {
	return userDTO{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
	}
}

func toAmenityDTO(a *domain.Amenity) amenityDTO {
	return amenityDTO{ID: a.ID, Name: a.Name}
}

func toPlaceDTO(p *domain.Place) placeDTO {
	return placeDTO{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		OwnerID:     p.OwnerID,
	}
}

func toReviewDTO(r *domain.Review) reviewDTO {
	return reviewDTO{
		ID:      r.ID,
		Text:    r.Text,
		Rating:  r.Rating,
		PlaceID: r.PlaceID,
		UserID:  r.UserID,
	}
}
