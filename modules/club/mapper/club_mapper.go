package mapper

import (
	"sportsmatch-api/modules/club/dto"
	"sportsmatch-api/modules/club/entity"
)

func ToClubDetailResponse(club *entity.ClubDetail) *dto.ClubDetailResponse {
	resp := &dto.ClubDetailResponse{
		ID:          club.ID,
		Name:        club.Name,
		Email:       club.Email,
		PhoneNumber: club.PhoneNumber,
		Slug:        club.Slug,
		Description: club.Description,
		CreatedAt:   club.CreatedAt,
	}
	if club.Latitude != nil && club.Longitude != nil {
		resp.Location = &dto.LocationResponse{
			Latitude:  *club.Latitude,
			Longitude: *club.Longitude,
		}
		if club.Address != nil {
			resp.Location.Address = *club.Address
		}
	}
	return resp
}

func ToClubDetailResponses(clubs []entity.ClubDetail) []dto.ClubDetailResponse {
	out := make([]dto.ClubDetailResponse, len(clubs))
	for i := range clubs {
		out[i] = *ToClubDetailResponse(&clubs[i])
	}
	return out
}
