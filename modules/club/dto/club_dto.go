package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateClubRequest struct {
	Name        string  `json:"name" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=8"`
	PhoneNumber string  `json:"phoneNumber" validate:"required"`
	Description *string `json:"description"`
}

type UpdateClubRequest struct {
	PhoneNumber *string `json:"phoneNumber"`
	Description *string `json:"description"`
}

type UpdateLocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
	Address   string  `json:"address" validate:"required"`
}

type ClubDetailResponse struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Email       string            `json:"email"`
	PhoneNumber string            `json:"phoneNumber"`
	Slug        string            `json:"slug"`
	Description *string           `json:"description,omitempty"`
	Location    *LocationResponse `json:"location,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
}

type LocationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}
