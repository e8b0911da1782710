package repository

import (
	"context"
	"database/sql"

	"sportsmatch-api/core/database"
	"sportsmatch-api/core/logger"
	"sportsmatch-api/modules/event/entity"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type EventRepository struct {
	DB database.IDatabase
}

func NewEventRepository(db database.IDatabase) *EventRepository {
	return &EventRepository{DB: db}
}

type EventRepositoryInterface interface {
	CreateEvent(ctx context.Context, event *entity.Event) (*entity.Event, error)
	GetEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	GetEventDetailByID(ctx context.Context, id uuid.UUID) (*entity.EventDetail, error)
	GetEvents(ctx context.Context, filter entity.EventFilter, limit, offset int) ([]entity.Event, error)
	UpdateEvent(ctx context.Context, event *entity.Event) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.EventStatus) error
	DecrementRemainingTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (bool, error)
	IncrementRemainingTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) error
}

const eventColumns = `
	id, description, schedule, location, expertise, sport_id,
	organizer_type, owner_id, duration, remaining, status, created_at, updated_at
`

func (r *EventRepository) CreateEvent(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	query := `
		INSERT INTO events (
			id, description, schedule, location, expertise, sport_id,
			organizer_type, owner_id, duration, remaining, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + eventColumns

	var created entity.Event
	err := r.DB.GetContext(ctx, &created, query,
		event.ID, event.Description, event.Schedule, event.Location,
		event.Expertise, event.SportID, event.OrganizerType, event.OwnerID,
		event.Duration, event.Remaining, event.Status,
	)
	if err != nil {
		logger.Error("EventRepository:CreateEvent", err)
		return nil, err
	}
	return &created, nil
}

func (r *EventRepository) GetEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	var event entity.Event
	err := r.DB.GetContext(ctx, &event, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:GetEventByID", err)
		return nil, err
	}
	return &event, nil
}

// GetEventDetailByID resolves the owner display name through the
// organizer discriminator. The unmatched side of the join stays NULL.
func (r *EventRepository) GetEventDetailByID(ctx context.Context, id uuid.UUID) (*entity.EventDetail, error) {
	query := `
		SELECT e.id, e.description, e.schedule, e.location, e.expertise, e.sport_id,
		       e.organizer_type, e.owner_id, e.duration, e.remaining, e.status,
		       e.created_at, e.updated_at,
		       u.first_name AS user_owner_name,
		       c.name AS club_owner_name
		FROM events e
		LEFT JOIN users u ON e.organizer_type = 'user' AND u.id = e.owner_id
		LEFT JOIN clubs c ON e.organizer_type = 'club' AND c.id = e.owner_id
		WHERE e.id = $1
	`

	var detail entity.EventDetail
	err := r.DB.GetContext(ctx, &detail, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:GetEventDetailByID", err)
		return nil, err
	}
	return &detail, nil
}

func (r *EventRepository) GetEvents(ctx context.Context, filter entity.EventFilter, limit, offset int) ([]entity.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE status <> 'cancelled'
		  AND ($1 = 0 OR sport_id = $1)
		  AND ($2 = '' OR expertise = $2)
		  AND ($3 = '' OR location ILIKE '%' || $3 || '%')
		  AND ($4::date IS NULL OR schedule::date = $4)
		  AND ($5 = '' OR organizer_type = $5)
		  AND ($6 = '' OR description ILIKE '%' || $6 || '%')
		ORDER BY schedule
		LIMIT $7 OFFSET $8
	`

	var events []entity.Event
	err := r.DB.SelectContext(ctx, &events, query,
		filter.SportID, filter.Expertise, filter.Location, filter.Schedule,
		string(filter.OrganizerType), filter.Search, limit, offset,
	)
	if err != nil {
		logger.Error("EventRepository:GetEvents", err)
		return nil, err
	}
	return events, nil
}

func (r *EventRepository) UpdateEvent(ctx context.Context, event *entity.Event) error {
	query := `
		UPDATE events
		SET description = $2, schedule = $3, location = $4, duration = $5, updated_at = NOW()
		WHERE id = $1
	`
	err := r.DB.ExecContext(ctx, query,
		event.ID, event.Description, event.Schedule, event.Location, event.Duration,
	)
	if err != nil {
		logger.Error("EventRepository:UpdateEvent", err)
		return err
	}
	return nil
}

func (r *EventRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.EventStatus) error {
	query := `UPDATE events SET status = $2, updated_at = NOW() WHERE id = $1`
	if err := r.DB.ExecContext(ctx, query, id, status); err != nil {
		logger.Error("EventRepository:UpdateStatus", err)
		return err
	}
	return nil
}

// DecrementRemainingTx takes one seat only while the event is still
// pending and has capacity left; reports whether a seat was taken.
func (r *EventRepository) DecrementRemainingTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (bool, error) {
	query := `
		UPDATE events SET remaining = remaining - 1, updated_at = NOW()
		WHERE id = $1 AND remaining > 0 AND status = 'pending'
	`
	res, err := tx.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("EventRepository:DecrementRemainingTx", err)
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func (r *EventRepository) IncrementRemainingTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) error {
	query := `UPDATE events SET remaining = remaining + 1, updated_at = NOW() WHERE id = $1`
	if _, err := tx.ExecContext(ctx, query, id); err != nil {
		logger.Error("EventRepository:IncrementRemainingTx", err)
		return err
	}
	return nil
}
