package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserDetailResponse struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	PhoneNumber *string    `json:"phoneNumber,omitempty"`
	Birthdate   *time.Time `json:"birthdate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type UpdateUserRequest struct {
	FirstName   *string `json:"firstName" validate:"omitempty,min=1"`
	LastName    *string `json:"lastName" validate:"omitempty,min=1"`
	PhoneNumber *string `json:"phoneNumber"`
}

type PictureURLResponse struct {
	URL string `json:"url"`
}

type PaginatedUsersResponse struct {
	Items      []UserDetailResponse `json:"items"`
	TotalItems int                  `json:"totalItems"`
	TotalPages int                  `json:"totalPages"`
	PageNumber int                  `json:"pageNumber"`
	PageSize   int                  `json:"pageSize"`
}
