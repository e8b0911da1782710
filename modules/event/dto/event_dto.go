package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateEventRequest struct {
	Description   string    `json:"description" validate:"required"`
	Schedule      time.Time `json:"schedule" validate:"required"`
	Location      string    `json:"location" validate:"required"`
	Expertise     string    `json:"expertise" validate:"required"`
	SportID       int       `json:"sportId" validate:"required,min=1"`
	OrganizerType string    `json:"organizerType" validate:"required,oneof=user club"`
	Duration      int       `json:"duration" validate:"required,min=15"`
	Capacity      int       `json:"capacity" validate:"required,min=1"`
}

type UpdateEventRequest struct {
	Description *string    `json:"description"`
	Schedule    *time.Time `json:"schedule"`
	Location    *string    `json:"location"`
	Duration    *int       `json:"duration" validate:"omitempty,min=15"`
}

type EventOwner struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type EventResponse struct {
	ID            uuid.UUID `json:"id"`
	Description   string    `json:"description"`
	Schedule      time.Time `json:"schedule"`
	Location      string    `json:"location"`
	Expertise     string    `json:"expertise"`
	SportID       int       `json:"sportId"`
	OrganizerType string    `json:"organizerType"`
	OwnerID       uuid.UUID `json:"ownerId"`
	Duration      int       `json:"duration"`
	Remaining     int       `json:"remaining"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

type EventDetailResponse struct {
	EventResponse
	Owner EventOwner `json:"owner"`
}

type PageResponse[T any] struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Items    []T `json:"items"`
}
