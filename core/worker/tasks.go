package worker

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const (
	TypePaymentCapture    = "payment:capture"
	TypeReservationExpire = "reservation:expire"
	TypeOAuthStateCleanup = "auth:oauth_state_cleanup"
)

type PaymentCapturePayload struct {
	PaymentID uuid.UUID `json:"payment_id"`
}

type ReservationExpirePayload struct {
	ReservationID uuid.UUID `json:"reservation_id"`
}

func NewPaymentCaptureTask(paymentID uuid.UUID) (*asynq.Task, error) {
	payload, err := json.Marshal(PaymentCapturePayload{PaymentID: paymentID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypePaymentCapture, payload), nil
}

func NewReservationExpireTask(reservationID uuid.UUID) (*asynq.Task, error) {
	payload, err := json.Marshal(ReservationExpirePayload{ReservationID: reservationID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeReservationExpire, payload), nil
}

func NewOAuthStateCleanupTask() *asynq.Task {
	return asynq.NewTask(TypeOAuthStateCleanup, nil)
}
