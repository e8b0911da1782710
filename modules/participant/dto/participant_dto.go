package dto

import (
	"time"

	"github.com/google/uuid"
)

type UpdateParticipantRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected"`
}

type ParticipantResponse struct {
	ID        uuid.UUID `json:"id"`
	EventID   uuid.UUID `json:"eventId"`
	UserID    uuid.UUID `json:"userId"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type ParticipantDetailResponse struct {
	ParticipantResponse
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
