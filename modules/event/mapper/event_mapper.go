package mapper

import (
	"sportsmatch-api/modules/event/dto"
	"sportsmatch-api/modules/event/entity"
)

func ToEventResponse(event *entity.Event) *dto.EventResponse {
	return &dto.EventResponse{
		ID:            event.ID,
		Description:   event.Description,
		Schedule:      event.Schedule,
		Location:      event.Location,
		Expertise:     event.Expertise,
		SportID:       event.SportID,
		OrganizerType: string(event.OrganizerType),
		OwnerID:       event.OwnerID,
		Duration:      event.Duration,
		Remaining:     event.Remaining,
		Status:        string(event.Status),
		CreatedAt:     event.CreatedAt,
	}
}

func ToEventResponses(events []entity.Event) []dto.EventResponse {
	out := make([]dto.EventResponse, len(events))
	for i := range events {
		out[i] = *ToEventResponse(&events[i])
	}
	return out
}

func ToEventDetailResponse(detail *entity.EventDetail) *dto.EventDetailResponse {
	owner := dto.EventOwner{ID: detail.OwnerID}
	switch detail.OrganizerType {
	case entity.OrganizerTypeUser:
		if detail.UserOwnerName != nil {
			owner.Name = *detail.UserOwnerName
		}
	case entity.OrganizerTypeClub:
		if detail.ClubOwnerName != nil {
			owner.Name = *detail.ClubOwnerName
		}
	}

	return &dto.EventDetailResponse{
		EventResponse: *ToEventResponse(&detail.Event),
		Owner:         owner,
	}
}
