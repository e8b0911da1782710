package repository

import (
	"context"
	"database/sql"

	"sportsmatch-api/core/database"
	"sportsmatch-api/core/logger"
	fieldentity "sportsmatch-api/modules/field/entity"
	"sportsmatch-api/modules/reservation/entity"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

func uuidArray(ids []uuid.UUID) any {
	ss := make([]string, len(ids))
	for i, id := range ids {
		ss[i] = id.String()
	}
	return pq.Array(ss)
}

type ReservationRepository struct {
	DB database.IDatabase
}

func NewReservationRepository(db database.IDatabase) *ReservationRepository {
	return &ReservationRepository{DB: db}
}

type ReservationRepositoryInterface interface {
	CreateReservationTx(ctx context.Context, tx *sqlx.Tx, reservation *entity.Reservation, slotIDs []uuid.UUID) (*entity.Reservation, int, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ReservationDetail, error)
	FindAllByEventID(ctx context.Context, eventID uuid.UUID) ([]entity.ReservationDetail, error)
	FindByClub(ctx context.Context, clubID uuid.UUID, status entity.ReservationStatus) ([]entity.ReservationDetail, error)
	FindConflictingReservations(ctx context.Context, fieldID uuid.UUID, slotIDs []uuid.UUID) ([]entity.Reservation, error)
	UpdateStatus(ctx context.Context, tx *sqlx.Tx, id uuid.UUID, status entity.ReservationStatus) error
	ReleaseSlotsTx(ctx context.Context, tx *sqlx.Tx, reservationID uuid.UUID) error
	DeleteReservationTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) error
}

// CreateReservationTx inserts the reservation and claims its slots in
// the caller's transaction. The claim only touches slots that are
// still free and on the given field; the returned count tells the
// caller how many were actually taken, and a short count means the
// transaction must be rolled back.
func (r *ReservationRepository) CreateReservationTx(ctx context.Context, tx *sqlx.Tx, reservation *entity.Reservation, slotIDs []uuid.UUID) (*entity.Reservation, int, error) {
	insert := `
		INSERT INTO reservations (id, event_id, field_id, cost, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, event_id, field_id, cost, status, created_at, updated_at
	`

	var created entity.Reservation
	err := tx.GetContext(ctx, &created, insert,
		reservation.ID, reservation.EventID, reservation.FieldID,
		reservation.Cost, reservation.Status,
	)
	if err != nil {
		logger.Error("ReservationRepository:CreateReservationTx:insert", err)
		return nil, 0, err
	}

	claim := `
		UPDATE time_slots
		SET reservation_id = $1, status = 'booked'
		WHERE id = ANY($2) AND field_id = $3 AND status = 'free'
	`
	res, err := tx.ExecContext(ctx, claim, created.ID, uuidArray(slotIDs), reservation.FieldID)
	if err != nil {
		logger.Error("ReservationRepository:CreateReservationTx:claim", err)
		return nil, 0, err
	}
	claimed, err := res.RowsAffected()
	if err != nil {
		return nil, 0, err
	}
	return &created, int(claimed), nil
}

const detailColumns = `
	r.id, r.event_id, r.field_id, r.cost, r.status, r.created_at, r.updated_at,
	f.name AS field_name, c.id AS club_id, c.name AS club_name
`

const detailJoins = `
	FROM reservations r
	JOIN fields f ON f.id = r.field_id
	JOIN clubs c ON c.id = f.club_id
`

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ReservationDetail, error) {
	query := `SELECT ` + detailColumns + detailJoins + ` WHERE r.id = $1`

	var detail entity.ReservationDetail
	err := r.DB.GetContext(ctx, &detail, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ReservationRepository:FindByID", err)
		return nil, err
	}

	if err := r.attachSlots(ctx, []*entity.ReservationDetail{&detail}); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *ReservationRepository) FindAllByEventID(ctx context.Context, eventID uuid.UUID) ([]entity.ReservationDetail, error) {
	query := `SELECT ` + detailColumns + detailJoins + `
		WHERE r.event_id = $1
		ORDER BY r.created_at DESC`

	var details []entity.ReservationDetail
	if err := r.DB.SelectContext(ctx, &details, query, eventID); err != nil {
		logger.Error("ReservationRepository:FindAllByEventID", err)
		return nil, err
	}

	refs := make([]*entity.ReservationDetail, len(details))
	for i := range details {
		refs[i] = &details[i]
	}
	if err := r.attachSlots(ctx, refs); err != nil {
		return nil, err
	}
	return details, nil
}

// FindByClub scopes through the field's owning club; newest first.
// An empty status matches all.
func (r *ReservationRepository) FindByClub(ctx context.Context, clubID uuid.UUID, status entity.ReservationStatus) ([]entity.ReservationDetail, error) {
	query := `SELECT ` + detailColumns + detailJoins + `
		WHERE c.id = $1
		  AND ($2 = '' OR r.status = $2)
		ORDER BY r.created_at DESC`

	var details []entity.ReservationDetail
	if err := r.DB.SelectContext(ctx, &details, query, clubID, string(status)); err != nil {
		logger.Error("ReservationRepository:FindByClub", err)
		return nil, err
	}

	refs := make([]*entity.ReservationDetail, len(details))
	for i := range details {
		refs[i] = &details[i]
	}
	if err := r.attachSlots(ctx, refs); err != nil {
		return nil, err
	}
	return details, nil
}

// FindConflictingReservations returns reservations already holding any
// of the candidate slots on the field.
func (r *ReservationRepository) FindConflictingReservations(ctx context.Context, fieldID uuid.UUID, slotIDs []uuid.UUID) ([]entity.Reservation, error) {
	query := `
		SELECT DISTINCT r.id, r.event_id, r.field_id, r.cost, r.status, r.created_at, r.updated_at
		FROM reservations r
		JOIN time_slots t ON t.reservation_id = r.id
		WHERE t.id = ANY($1) AND t.field_id = $2 AND t.status = 'booked'
	`

	var reservations []entity.Reservation
	if err := r.DB.SelectContext(ctx, &reservations, query, uuidArray(slotIDs), fieldID); err != nil {
		logger.Error("ReservationRepository:FindConflictingReservations", err)
		return nil, err
	}
	return reservations, nil
}

// UpdateStatus overwrites unconditionally; legality of the transition
// is the service's concern. Runs in tx when one is given.
func (r *ReservationRepository) UpdateStatus(ctx context.Context, tx *sqlx.Tx, id uuid.UUID, status entity.ReservationStatus) error {
	query := `UPDATE reservations SET status = $2, updated_at = NOW() WHERE id = $1`

	var err error
	if tx != nil {
		_, err = tx.ExecContext(ctx, query, id, status)
	} else {
		err = r.DB.ExecContext(ctx, query, id, status)
	}
	if err != nil {
		logger.Error("ReservationRepository:UpdateStatus", err)
		return err
	}
	return nil
}

// ReleaseSlotsTx hands the reservation's slots back to the free pool.
func (r *ReservationRepository) ReleaseSlotsTx(ctx context.Context, tx *sqlx.Tx, reservationID uuid.UUID) error {
	query := `
		UPDATE time_slots
		SET reservation_id = NULL, status = 'free'
		WHERE reservation_id = $1
	`
	if _, err := tx.ExecContext(ctx, query, reservationID); err != nil {
		logger.Error("ReservationRepository:ReleaseSlotsTx", err)
		return err
	}
	return nil
}

func (r *ReservationRepository) DeleteReservationTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) error {
	query := `DELETE FROM reservations WHERE id = $1`
	if _, err := tx.ExecContext(ctx, query, id); err != nil {
		logger.Error("ReservationRepository:DeleteReservationTx", err)
		return err
	}
	return nil
}

// attachSlots batch-loads the claimed slots for a set of details.
func (r *ReservationRepository) attachSlots(ctx context.Context, details []*entity.ReservationDetail) error {
	if len(details) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(details))
	byID := make(map[uuid.UUID]*entity.ReservationDetail, len(details))
	for i, d := range details {
		ids[i] = d.ID
		byID[d.ID] = d
	}

	query := `
		SELECT id, field_id, start_time, end_time, availability_date, status, reservation_id, created_at
		FROM time_slots
		WHERE reservation_id = ANY($1)
		ORDER BY start_time
	`

	var slots []fieldentity.TimeSlot
	if err := r.DB.SelectContext(ctx, &slots, query, uuidArray(ids)); err != nil {
		logger.Error("ReservationRepository:attachSlots", err)
		return err
	}

	for _, slot := range slots {
		if slot.ReservationID == nil {
			continue
		}
		if d, ok := byID[*slot.ReservationID]; ok {
			d.Slots = append(d.Slots, slot)
		}
	}
	return nil
}
