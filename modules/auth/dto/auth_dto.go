package dto

import "github.com/google/uuid"

type SignupRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Birthdate   string `json:"birthdate" validate:"omitempty,datetime=2006-01-02"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	UserDetail  any    `json:"userDetail"`
}

type ClubLoginResponse struct {
	AccessToken string    `json:"accessToken"`
	ClubID      uuid.UUID `json:"clubId"`
	Name        string    `json:"name"`
}

type GoogleLoginURLResponse struct {
	URL string `json:"url"`
}
