package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateFieldRequest struct {
	Name    string  `json:"name" validate:"required"`
	Surface *string `json:"surface"`
}

type UpdateFieldRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1"`
	Surface *string `json:"surface"`
}

type FieldResponse struct {
	ID        uuid.UUID `json:"id"`
	ClubID    uuid.UUID `json:"clubId"`
	Name      string    `json:"name"`
	Surface   *string   `json:"surface,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// GenerateSlotsRequest carves a day into fixed-length slots.
type GenerateSlotsRequest struct {
	Date            string `json:"date" validate:"required,datetime=2006-01-02"`
	OpeningTime     string `json:"openingTime" validate:"required,datetime=15:04"`
	ClosingTime     string `json:"closingTime" validate:"required,datetime=15:04"`
	DurationMinutes int    `json:"durationMinutes" validate:"required,min=15,max=240"`
}

type TimeSlotResponse struct {
	ID               uuid.UUID  `json:"id"`
	FieldID          uuid.UUID  `json:"fieldId"`
	StartTime        time.Time  `json:"startTime"`
	EndTime          time.Time  `json:"endTime"`
	AvailabilityDate time.Time  `json:"availabilityDate"`
	Status           string     `json:"status"`
	ReservationID    *uuid.UUID `json:"reservationId,omitempty"`
}
