package entity

import (
	"time"

	"github.com/google/uuid"
)

// ParticipantStatus tracks a join request: created pending, then
// accepted or rejected by the event owner.
type ParticipantStatus string

const (
	ParticipantStatusPending  ParticipantStatus = "pending"
	ParticipantStatusAccepted ParticipantStatus = "accepted"
	ParticipantStatusRejected ParticipantStatus = "rejected"
)

type Participant struct {
	ID        uuid.UUID         `db:"id"`
	EventID   uuid.UUID         `db:"event_id"`
	UserID    uuid.UUID         `db:"user_id"`
	Status    ParticipantStatus `db:"status"`
	CreatedAt time.Time         `db:"created_at"`
	UpdatedAt time.Time         `db:"updated_at"`
}

// ParticipantDetail adds the user's display name for listings.
type ParticipantDetail struct {
	Participant
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
}
