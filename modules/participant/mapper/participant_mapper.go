package mapper

import (
	"sportsmatch-api/modules/participant/dto"
	"sportsmatch-api/modules/participant/entity"
)

func ToParticipantResponse(p *entity.Participant) *dto.ParticipantResponse {
	return &dto.ParticipantResponse{
		ID:        p.ID,
		EventID:   p.EventID,
		UserID:    p.UserID,
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt,
	}
}

func ToParticipantDetailResponses(participants []entity.ParticipantDetail) []dto.ParticipantDetailResponse {
	out := make([]dto.ParticipantDetailResponse, len(participants))
	for i := range participants {
		out[i] = dto.ParticipantDetailResponse{
			ParticipantResponse: *ToParticipantResponse(&participants[i].Participant),
			FirstName:           participants[i].FirstName,
			LastName:            participants[i].LastName,
		}
	}
	return out
}
