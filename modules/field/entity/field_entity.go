package entity

import (
	"time"

	"github.com/google/uuid"
)

// SlotStatus is the lifecycle of a bookable interval. A slot carries its
// reservation id only while booked.
type SlotStatus string

const (
	SlotStatusFree    SlotStatus = "free"
	SlotStatusBooked  SlotStatus = "booked"
	SlotStatusBlocked SlotStatus = "blocked"
)

type Field struct {
	ID        uuid.UUID `db:"id"`
	ClubID    uuid.UUID `db:"club_id"`
	Name      string    `db:"name"`
	Surface   *string   `db:"surface"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type TimeSlot struct {
	ID               uuid.UUID  `db:"id"`
	FieldID          uuid.UUID  `db:"field_id"`
	StartTime        time.Time  `db:"start_time"`
	EndTime          time.Time  `db:"end_time"`
	AvailabilityDate time.Time  `db:"availability_date"`
	Status           SlotStatus `db:"status"`
	ReservationID    *uuid.UUID `db:"reservation_id"`
	CreatedAt        time.Time  `db:"created_at"`
}
