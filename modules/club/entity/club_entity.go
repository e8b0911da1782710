package entity

import (
	"time"

	"github.com/google/uuid"
)

type Club struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Email       string    `db:"email"`
	PhoneNumber string    `db:"phone_number"`
	Slug        string    `db:"slug"`
	Description *string   `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// ClubLocation is the club's single location (1:1).
type ClubLocation struct {
	ClubID    uuid.UUID `db:"club_id"`
	Latitude  float64   `db:"latitude"`
	Longitude float64   `db:"longitude"`
	Address   string    `db:"address"`
}

// ClubDetail joins the club with its location for response shaping.
type ClubDetail struct {
	Club
	Latitude  *float64 `db:"latitude"`
	Longitude *float64 `db:"longitude"`
	Address   *string  `db:"address"`
}
