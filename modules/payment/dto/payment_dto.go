package dto

import (
	"time"

	"github.com/google/uuid"
)

type PaymentResponse struct {
	ID            uuid.UUID `json:"id"`
	ReservationID uuid.UUID `json:"reservationId"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	ExternalRef   string    `json:"externalRef"`
	CreatedAt     time.Time `json:"createdAt"`
}

type PaymentStatusResponse struct {
	ReservationID uuid.UUID `json:"reservationId"`
	Status        string    `json:"status"`
}
