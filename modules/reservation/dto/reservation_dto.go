package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	EventID uuid.UUID   `json:"eventId" validate:"required"`
	FieldID uuid.UUID   `json:"fieldId" validate:"required"`
	Cost    float64     `json:"cost" validate:"required,gt=0"`
	SlotIDs []uuid.UUID `json:"slotIds" validate:"required,min=1,dive,required"`
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed completed cancelled"`
}

type ReservationSlot struct {
	ID               uuid.UUID `json:"id"`
	StartTime        time.Time `json:"startTime"`
	EndTime          time.Time `json:"endTime"`
	AvailabilityDate time.Time `json:"availabilityDate"`
}

type ReservationResponse struct {
	ID        uuid.UUID `json:"id"`
	EventID   uuid.UUID `json:"eventId"`
	FieldID   uuid.UUID `json:"fieldId"`
	Cost      float64   `json:"cost"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type ReservationDetailResponse struct {
	ReservationResponse
	Field FieldSummary      `json:"field"`
	Slots []ReservationSlot `json:"timeSlots"`
}

type FieldSummary struct {
	ID     uuid.UUID   `json:"id"`
	Name   string      `json:"name"`
	ClubID uuid.UUID   `json:"clubId"`
	Club   ClubSummary `json:"club"`
}

type ClubSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
