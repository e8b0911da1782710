package repository

import (
	"context"
	"database/sql"

	"sportsmatch-api/core/database"
	"sportsmatch-api/core/logger"
	"sportsmatch-api/modules/payment/entity"

	"github.com/google/uuid"
)

type PaymentRepository struct {
	DB database.IDatabase
}

func NewPaymentRepository(db database.IDatabase) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

type PaymentRepositoryInterface interface {
	CreatePayment(ctx context.Context, payment *entity.Payment) (*entity.Payment, error)
	GetPaymentByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	GetPaymentByReservation(ctx context.Context, reservationID uuid.UUID) (*entity.Payment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.PaymentStatus) (bool, error)
}

func (r *PaymentRepository) CreatePayment(ctx context.Context, payment *entity.Payment) (*entity.Payment, error) {
	query := `
		INSERT INTO payments (id, reservation_id, amount, status, external_ref)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, reservation_id, amount, status, external_ref, created_at, updated_at
	`

	var created entity.Payment
	err := r.DB.GetContext(ctx, &created, query,
		payment.ID, payment.ReservationID, payment.Amount, payment.Status, payment.ExternalRef,
	)
	if err != nil {
		logger.Error("PaymentRepository:CreatePayment", err)
		return nil, err
	}
	return &created, nil
}

func (r *PaymentRepository) GetPaymentByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	query := `
		SELECT id, reservation_id, amount, status, external_ref, created_at, updated_at
		FROM payments WHERE id = $1
	`

	var payment entity.Payment
	err := r.DB.GetContext(ctx, &payment, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("PaymentRepository:GetPaymentByID", err)
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepository) GetPaymentByReservation(ctx context.Context, reservationID uuid.UUID) (*entity.Payment, error) {
	query := `
		SELECT id, reservation_id, amount, status, external_ref, created_at, updated_at
		FROM payments
		WHERE reservation_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var payment entity.Payment
	err := r.DB.GetContext(ctx, &payment, query, reservationID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("PaymentRepository:GetPaymentByReservation", err)
		return nil, err
	}
	return &payment, nil
}

// UpdateStatus is conditional on the current state so the capture task
// and a refund cannot stomp each other.
func (r *PaymentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.PaymentStatus) (bool, error) {
	query := `UPDATE payments SET status = $3, updated_at = NOW() WHERE id = $1 AND status = $2`

	res, err := r.DB.SQLx().ExecContext(ctx, query, id, from, to)
	if err != nil {
		logger.Error("PaymentRepository:UpdateStatus", err)
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}
