package repository

import (
	"context"
	"database/sql"

	"sportsmatch-api/core/database"
	"sportsmatch-api/core/logger"
	"sportsmatch-api/modules/participant/entity"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type ParticipantRepository struct {
	DB database.IDatabase
}

func NewParticipantRepository(db database.IDatabase) *ParticipantRepository {
	return &ParticipantRepository{DB: db}
}

type ParticipantRepositoryInterface interface {
	CreateParticipant(ctx context.Context, participant *entity.Participant) (*entity.Participant, error)
	GetParticipantByID(ctx context.Context, id uuid.UUID) (*entity.Participant, error)
	GetParticipants(ctx context.Context, eventID uuid.UUID) ([]entity.ParticipantDetail, error)
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID, from, to entity.ParticipantStatus) (bool, error)
	DeleteParticipantTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) error
}

func (r *ParticipantRepository) CreateParticipant(ctx context.Context, participant *entity.Participant) (*entity.Participant, error) {
	query := `
		INSERT INTO participants (id, event_id, user_id, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, event_id, user_id, status, created_at, updated_at
	`

	var created entity.Participant
	err := r.DB.GetContext(ctx, &created, query,
		participant.ID, participant.EventID, participant.UserID, participant.Status,
	)
	if err != nil {
		logger.Error("ParticipantRepository:CreateParticipant", err)
		return nil, err
	}
	return &created, nil
}

func (r *ParticipantRepository) GetParticipantByID(ctx context.Context, id uuid.UUID) (*entity.Participant, error) {
	query := `
		SELECT id, event_id, user_id, status, created_at, updated_at
		FROM participants WHERE id = $1
	`

	var participant entity.Participant
	err := r.DB.GetContext(ctx, &participant, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ParticipantRepository:GetParticipantByID", err)
		return nil, err
	}
	return &participant, nil
}

func (r *ParticipantRepository) GetParticipants(ctx context.Context, eventID uuid.UUID) ([]entity.ParticipantDetail, error) {
	query := `
		SELECT p.id, p.event_id, p.user_id, p.status, p.created_at, p.updated_at,
		       u.first_name, u.last_name
		FROM participants p
		JOIN users u ON u.id = p.user_id
		WHERE p.event_id = $1
		ORDER BY p.created_at
	`

	var participants []entity.ParticipantDetail
	if err := r.DB.SelectContext(ctx, &participants, query, eventID); err != nil {
		logger.Error("ParticipantRepository:GetParticipants", err)
		return nil, err
	}
	return participants, nil
}

// UpdateStatusTx moves a participant only out of the expected state so
// a decision cannot be applied twice.
func (r *ParticipantRepository) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID, from, to entity.ParticipantStatus) (bool, error) {
	query := `
		UPDATE participants SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2
	`
	res, err := tx.ExecContext(ctx, query, id, from, to)
	if err != nil {
		logger.Error("ParticipantRepository:UpdateStatusTx", err)
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func (r *ParticipantRepository) DeleteParticipantTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) error {
	query := `DELETE FROM participants WHERE id = $1`
	if _, err := tx.ExecContext(ctx, query, id); err != nil {
		logger.Error("ParticipantRepository:DeleteParticipantTx", err)
		return err
	}
	return nil
}
