package mapper

import (
	"sportsmatch-api/modules/payment/dto"
	"sportsmatch-api/modules/payment/entity"
)

func ToPaymentResponse(p *entity.Payment) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		ID:            p.ID,
		ReservationID: p.ReservationID,
		Amount:        p.Amount,
		Status:        string(p.Status),
		ExternalRef:   p.ExternalRef,
		CreatedAt:     p.CreatedAt,
	}
}
