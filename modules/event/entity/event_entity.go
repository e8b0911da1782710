package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrganizerType discriminates the owner of an event between a user
// profile and a club account.
type OrganizerType string

const (
	OrganizerTypeUser OrganizerType = "user"
	OrganizerTypeClub OrganizerType = "club"
)

type EventStatus string

const (
	EventStatusPending   EventStatus = "pending"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
)

type Event struct {
	ID            uuid.UUID     `db:"id"`
	Description   string        `db:"description"`
	Schedule      time.Time     `db:"schedule"`
	Location      string        `db:"location"`
	Expertise     string        `db:"expertise"`
	SportID       int           `db:"sport_id"`
	OrganizerType OrganizerType `db:"organizer_type"`
	OwnerID       uuid.UUID     `db:"owner_id"`
	Duration      int           `db:"duration"`
	Remaining     int           `db:"remaining"`
	Status        EventStatus   `db:"status"`
	CreatedAt     time.Time     `db:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at"`
}

// EventDetail carries the owner display name resolved per organizer
// type. Exactly one of the owner name columns is non-nil.
type EventDetail struct {
	Event
	UserOwnerName *string `db:"user_owner_name"`
	ClubOwnerName *string `db:"club_owner_name"`
}

// EventFilter narrows the paginated search. Zero values mean "any".
type EventFilter struct {
	SportID       int
	Expertise     string
	Location      string
	Schedule      *time.Time
	OrganizerType OrganizerType
	Search        string
}
