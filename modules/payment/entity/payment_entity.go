package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus lifecycle: pending until the capture task runs, then
// completed or failed; completed payments can be refunded.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

type Payment struct {
	ID            uuid.UUID     `db:"id"`
	ReservationID uuid.UUID     `db:"reservation_id"`
	Amount        float64       `db:"amount"`
	Status        PaymentStatus `db:"status"`
	ExternalRef   string        `db:"external_ref"`
	CreatedAt     time.Time     `db:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at"`
}
