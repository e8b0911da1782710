package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID          uuid.UUID  `db:"id"`
	Email       string     `db:"email"`
	FirstName   string     `db:"first_name"`
	LastName    string     `db:"last_name"`
	PhoneNumber *string    `db:"phone_number"`
	Birthdate   *time.Time `db:"birthdate"`
	PictureKey  *string    `db:"picture_key"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

type PaginatedUsers struct {
	Items      []User
	TotalItems int
	PageNumber int
	PageSize   int
}
