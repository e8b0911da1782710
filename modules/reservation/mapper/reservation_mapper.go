package mapper

import (
	"sportsmatch-api/modules/reservation/dto"
	"sportsmatch-api/modules/reservation/entity"
)

func ToReservationResponse(r *entity.Reservation) *dto.ReservationResponse {
	return &dto.ReservationResponse{
		ID:        r.ID,
		EventID:   r.EventID,
		FieldID:   r.FieldID,
		Cost:      r.Cost,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
	}
}

func ToReservationDetailResponse(d *entity.ReservationDetail) *dto.ReservationDetailResponse {
	slots := make([]dto.ReservationSlot, len(d.Slots))
	for i, slot := range d.Slots {
		slots[i] = dto.ReservationSlot{
			ID:               slot.ID,
			StartTime:        slot.StartTime,
			EndTime:          slot.EndTime,
			AvailabilityDate: slot.AvailabilityDate,
		}
	}

	return &dto.ReservationDetailResponse{
		ReservationResponse: *ToReservationResponse(&d.Reservation),
		Field: dto.FieldSummary{
			ID:     d.FieldID,
			Name:   d.FieldName,
			ClubID: d.ClubID,
			Club:   dto.ClubSummary{ID: d.ClubID, Name: d.ClubName},
		},
		Slots: slots,
	}
}

func ToReservationDetailResponses(details []entity.ReservationDetail) []dto.ReservationDetailResponse {
	out := make([]dto.ReservationDetailResponse, len(details))
	for i := range details {
		out[i] = *ToReservationDetailResponse(&details[i])
	}
	return out
}
