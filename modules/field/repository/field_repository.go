package repository

import (
	"context"
	"database/sql"
	"time"

	"sportsmatch-api/core/database"
	"sportsmatch-api/core/logger"
	"sportsmatch-api/modules/field/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// uuidArray adapts a uuid slice for ANY($n) binding.
func uuidArray(ids []uuid.UUID) any {
	ss := make([]string, len(ids))
	for i, id := range ids {
		ss[i] = id.String()
	}
	return pq.Array(ss)
}

type FieldRepository struct {
	DB database.IDatabase
}

func NewFieldRepository(db database.IDatabase) *FieldRepository {
	return &FieldRepository{DB: db}
}

type FieldRepositoryInterface interface {
	CreateField(ctx context.Context, field *entity.Field) (*entity.Field, error)
	GetFieldByID(ctx context.Context, id uuid.UUID) (*entity.Field, error)
	GetFieldsByClub(ctx context.Context, clubID uuid.UUID) ([]entity.Field, error)
	UpdateField(ctx context.Context, field *entity.Field) error
	DeleteField(ctx context.Context, id uuid.UUID) error
	CountBookedSlots(ctx context.Context, fieldID uuid.UUID) (int, error)

	CreateSlots(ctx context.Context, slots []entity.TimeSlot) error
	GetSlots(ctx context.Context, fieldID uuid.UUID, date *time.Time, status entity.SlotStatus) ([]entity.TimeSlot, error)
	GetSlotsByIDs(ctx context.Context, fieldID uuid.UUID, slotIDs []uuid.UUID) ([]entity.TimeSlot, error)
	UpdateSlotStatus(ctx context.Context, slotID uuid.UUID, from, to entity.SlotStatus) (bool, error)
}

func (r *FieldRepository) CreateField(ctx context.Context, field *entity.Field) (*entity.Field, error) {
	query := `
		INSERT INTO fields (id, club_id, name, surface)
		VALUES ($1, $2, $3, $4)
		RETURNING id, club_id, name, surface, created_at, updated_at
	`

	var created entity.Field
	err := r.DB.GetContext(ctx, &created, query, field.ID, field.ClubID, field.Name, field.Surface)
	if err != nil {
		logger.Error("FieldRepository:CreateField", err)
		return nil, err
	}
	return &created, nil
}

func (r *FieldRepository) GetFieldByID(ctx context.Context, id uuid.UUID) (*entity.Field, error) {
	query := `
		SELECT id, club_id, name, surface, created_at, updated_at
		FROM fields WHERE id = $1
	`

	var field entity.Field
	err := r.DB.GetContext(ctx, &field, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("FieldRepository:GetFieldByID", err)
		return nil, err
	}
	return &field, nil
}

func (r *FieldRepository) GetFieldsByClub(ctx context.Context, clubID uuid.UUID) ([]entity.Field, error) {
	query := `
		SELECT id, club_id, name, surface, created_at, updated_at
		FROM fields WHERE club_id = $1
		ORDER BY created_at DESC
	`

	var fields []entity.Field
	if err := r.DB.SelectContext(ctx, &fields, query, clubID); err != nil {
		logger.Error("FieldRepository:GetFieldsByClub", err)
		return nil, err
	}
	return fields, nil
}

func (r *FieldRepository) UpdateField(ctx context.Context, field *entity.Field) error {
	query := `
		UPDATE fields SET name = $2, surface = $3, updated_at = NOW()
		WHERE id = $1
	`
	if err := r.DB.ExecContext(ctx, query, field.ID, field.Name, field.Surface); err != nil {
		logger.Error("FieldRepository:UpdateField", err)
		return err
	}
	return nil
}

func (r *FieldRepository) DeleteField(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM fields WHERE id = $1`
	if err := r.DB.ExecContext(ctx, query, id); err != nil {
		logger.Error("FieldRepository:DeleteField", err)
		return err
	}
	return nil
}

// CountBookedSlots backs the delete guard: a field with live bookings
// cannot be removed.
func (r *FieldRepository) CountBookedSlots(ctx context.Context, fieldID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM time_slots WHERE field_id = $1 AND status = 'booked'`

	var count int
	if err := r.DB.GetContext(ctx, &count, query, fieldID); err != nil {
		logger.Error("FieldRepository:CountBookedSlots", err)
		return 0, err
	}
	return count, nil
}

func (r *FieldRepository) CreateSlots(ctx context.Context, slots []entity.TimeSlot) error {
	query := `
		INSERT INTO time_slots (id, field_id, start_time, end_time, availability_date, status)
		VALUES (:id, :field_id, :start_time, :end_time, :availability_date, :status)
	`
	if _, err := r.DB.NamedExecContext(ctx, query, slots); err != nil {
		logger.Error("FieldRepository:CreateSlots", err)
		return err
	}
	return nil
}

func (r *FieldRepository) GetSlots(ctx context.Context, fieldID uuid.UUID, date *time.Time, status entity.SlotStatus) ([]entity.TimeSlot, error) {
	query := `
		SELECT id, field_id, start_time, end_time, availability_date, status, reservation_id, created_at
		FROM time_slots
		WHERE field_id = $1
		  AND ($2::date IS NULL OR availability_date = $2)
		  AND ($3 = '' OR status = $3)
		ORDER BY start_time
	`

	var statusArg string
	if status != "" {
		statusArg = string(status)
	}

	var slots []entity.TimeSlot
	if err := r.DB.SelectContext(ctx, &slots, query, fieldID, date, statusArg); err != nil {
		logger.Error("FieldRepository:GetSlots", err)
		return nil, err
	}
	return slots, nil
}

func (r *FieldRepository) GetSlotsByIDs(ctx context.Context, fieldID uuid.UUID, slotIDs []uuid.UUID) ([]entity.TimeSlot, error) {
	query := `
		SELECT id, field_id, start_time, end_time, availability_date, status, reservation_id, created_at
		FROM time_slots
		WHERE field_id = $1 AND id = ANY($2)
		ORDER BY start_time
	`

	var slots []entity.TimeSlot
	if err := r.DB.SelectContext(ctx, &slots, query, fieldID, uuidArray(slotIDs)); err != nil {
		logger.Error("FieldRepository:GetSlotsByIDs", err)
		return nil, err
	}
	return slots, nil
}

// UpdateSlotStatus flips a slot between free and blocked only when it is
// currently in the expected state; reports whether a row changed.
func (r *FieldRepository) UpdateSlotStatus(ctx context.Context, slotID uuid.UUID, from, to entity.SlotStatus) (bool, error) {
	query := `UPDATE time_slots SET status = $3 WHERE id = $1 AND status = $2`

	res, err := r.DB.SQLx().ExecContext(ctx, query, slotID, from, to)
	if err != nil {
		logger.Error("FieldRepository:UpdateSlotStatus", err)
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}
