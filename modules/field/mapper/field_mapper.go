package mapper

import (
	"sportsmatch-api/modules/field/dto"
	"sportsmatch-api/modules/field/entity"
)

func ToFieldResponse(field *entity.Field) *dto.FieldResponse {
	return &dto.FieldResponse{
		ID:        field.ID,
		ClubID:    field.ClubID,
		Name:      field.Name,
		Surface:   field.Surface,
		CreatedAt: field.CreatedAt,
	}
}

func ToFieldResponses(fields []entity.Field) []dto.FieldResponse {
	out := make([]dto.FieldResponse, len(fields))
	for i := range fields {
		out[i] = *ToFieldResponse(&fields[i])
	}
	return out
}

func ToTimeSlotResponse(slot *entity.TimeSlot) *dto.TimeSlotResponse {
	return &dto.TimeSlotResponse{
		ID:               slot.ID,
		FieldID:          slot.FieldID,
		StartTime:        slot.StartTime,
		EndTime:          slot.EndTime,
		AvailabilityDate: slot.AvailabilityDate,
		Status:           string(slot.Status),
		ReservationID:    slot.ReservationID,
	}
}

func ToTimeSlotResponses(slots []entity.TimeSlot) []dto.TimeSlotResponse {
	out := make([]dto.TimeSlotResponse, len(slots))
	for i := range slots {
		out[i] = *ToTimeSlotResponse(&slots[i])
	}
	return out
}
