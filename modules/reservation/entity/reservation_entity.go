package entity

import (
	"time"

	fieldentity "sportsmatch-api/modules/field/entity"

	"github.com/google/uuid"
)

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCompleted ReservationStatus = "completed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

// CanTransitionTo is the legal status graph: pending moves to
// confirmed or cancelled, confirmed to completed or cancelled.
// Completed and cancelled are terminal.
func (s ReservationStatus) CanTransitionTo(target ReservationStatus) bool {
	switch s {
	case ReservationStatusPending:
		return target == ReservationStatusConfirmed || target == ReservationStatusCancelled
	case ReservationStatusConfirmed:
		return target == ReservationStatusCompleted || target == ReservationStatusCancelled
	default:
		return false
	}
}

type Reservation struct {
	ID        uuid.UUID         `db:"id"`
	EventID   uuid.UUID         `db:"event_id"`
	FieldID   uuid.UUID         `db:"field_id"`
	Cost      float64           `db:"cost"`
	Status    ReservationStatus `db:"status"`
	CreatedAt time.Time         `db:"created_at"`
	UpdatedAt time.Time         `db:"updated_at"`
}

// ReservationDetail joins the field, its club and the claimed slots
// for response shaping.
type ReservationDetail struct {
	Reservation
	FieldName string    `db:"field_name"`
	ClubID    uuid.UUID `db:"club_id"`
	ClubName  string    `db:"club_name"`
	Slots     []fieldentity.TimeSlot
}
