package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"sportsmatch-api/core/database"
	"sportsmatch-api/core/errors"
	evententity "sportsmatch-api/modules/event/entity"
	"sportsmatch-api/modules/participant/dto"
	"sportsmatch-api/modules/participant/entity"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDB struct{}

func (fakeDB) ExecContext(ctx context.Context, query string, args ...any) error { return nil }
func (fakeDB) GetContext(ctx context.Context, dest any, query string, args ...any) error {
	return sql.ErrNoRows
}
func (fakeDB) SelectContext(ctx context.Context, dest any, query string, args ...any) error {
	return nil
}
func (fakeDB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row { return nil }
func (fakeDB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return nil, nil
}
func (fakeDB) NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error) {
	return nil, nil
}
func (fakeDB) WithTransaction(ctx context.Context, fn database.TxFunc) error {
	return fn(nil)
}
func (fakeDB) SQLx() *sqlx.DB { return nil }

type mockParticipantRepo struct {
	participants map[uuid.UUID]*entity.Participant
	duplicate    bool
	deleted      []uuid.UUID
}

func (m *mockParticipantRepo) CreateParticipant(ctx context.Context, p *entity.Participant) (*entity.Participant, error) {
	if m.duplicate {
		return nil, &pq.Error{Code: "23505", Constraint: "participants_event_id_user_id_key"}
	}
	m.participants[p.ID] = p
	return p, nil
}

func (m *mockParticipantRepo) GetParticipantByID(ctx context.Context, id uuid.UUID) (*entity.Participant, error) {
	return m.participants[id], nil
}

func (m *mockParticipantRepo) GetParticipants(ctx context.Context, eventID uuid.UUID) ([]entity.ParticipantDetail, error) {
	var out []entity.ParticipantDetail
	for _, p := range m.participants {
		if p.EventID == eventID {
			out = append(out, entity.ParticipantDetail{Participant: *p})
		}
	}
	return out, nil
}

func (m *mockParticipantRepo) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID, from, to entity.ParticipantStatus) (bool, error) {
	p, ok := m.participants[id]
	if !ok || p.Status != from {
		return false, nil
	}
	p.Status = to
	return true, nil
}

func (m *mockParticipantRepo) DeleteParticipantTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) error {
	m.deleted = append(m.deleted, id)
	delete(m.participants, id)
	return nil
}

type mockEventRepo struct {
	events     map[uuid.UUID]*evententity.Event
	increments int
}

func (m *mockEventRepo) CreateEvent(ctx context.Context, e *evententity.Event) (*evententity.Event, error) {
	return e, nil
}
func (m *mockEventRepo) GetEventByID(ctx context.Context, id uuid.UUID) (*evententity.Event, error) {
	return m.events[id], nil
}
func (m *mockEventRepo) GetEventDetailByID(ctx context.Context, id uuid.UUID) (*evententity.EventDetail, error) {
	return nil, nil
}
func (m *mockEventRepo) GetEvents(ctx context.Context, filter evententity.EventFilter, limit, offset int) ([]evententity.Event, error) {
	return nil, nil
}
func (m *mockEventRepo) UpdateEvent(ctx context.Context, e *evententity.Event) error { return nil }
func (m *mockEventRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status evententity.EventStatus) error {
	return nil
}
func (m *mockEventRepo) DecrementRemainingTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (bool, error) {
	e, ok := m.events[id]
	if !ok || e.Remaining <= 0 || e.Status != evententity.EventStatusPending {
		return false, nil
	}
	e.Remaining--
	return true, nil
}
func (m *mockEventRepo) IncrementRemainingTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) error {
	m.increments++
	if e, ok := m.events[id]; ok {
		e.Remaining++
	}
	return nil
}

type mockCache struct {
	invalidated []string
}

func (m *mockCache) AddToTokenBlacklist(ctx context.Context, token string, ttl time.Duration) error {
	return nil
}
func (m *mockCache) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	return false, nil
}
func (m *mockCache) SetEventDetail(ctx context.Context, eventID string, payload []byte) error {
	return nil
}
func (m *mockCache) GetEventDetail(ctx context.Context, eventID string) ([]byte, error) {
	return nil, nil
}
func (m *mockCache) InvalidateEventDetail(ctx context.Context, eventID string) error {
	m.invalidated = append(m.invalidated, eventID)
	return nil
}
func (m *mockCache) Close() error { return nil }

func newService(repo *mockParticipantRepo, events *mockEventRepo, c *mockCache) *ParticipantService {
	return NewParticipantService(fakeDB{}, repo, events, c)
}

func openEvent(ownerID uuid.UUID, remaining int) *evententity.Event {
	return &evententity.Event{
		ID:            uuid.New(),
		OrganizerType: evententity.OrganizerTypeUser,
		OwnerID:       ownerID,
		Remaining:     remaining,
		Status:        evententity.EventStatusPending,
	}
}

func TestJoinCreatesPendingParticipant(t *testing.T) {
	event := openEvent(uuid.New(), 3)
	repo := &mockParticipantRepo{participants: map[uuid.UUID]*entity.Participant{}}
	events := &mockEventRepo{events: map[uuid.UUID]*evententity.Event{event.ID: event}}
	svc := newService(repo, events, &mockCache{})

	resp, appErr := svc.Join(context.Background(), event.ID, uuid.New())

	require.Nil(t, appErr)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, 3, event.Remaining, "joining must not consume a seat before acceptance")
}

func TestJoinFullEventIsConflict(t *testing.T) {
	event := openEvent(uuid.New(), 0)
	repo := &mockParticipantRepo{participants: map[uuid.UUID]*entity.Participant{}}
	events := &mockEventRepo{events: map[uuid.UUID]*evententity.Event{event.ID: event}}
	svc := newService(repo, events, &mockCache{})

	_, appErr := svc.Join(context.Background(), event.ID, uuid.New())

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrConflict, appErr.Code)
}

func TestJoinCancelledEventIsConflict(t *testing.T) {
	event := openEvent(uuid.New(), 3)
	event.Status = evententity.EventStatusCancelled
	repo := &mockParticipantRepo{participants: map[uuid.UUID]*entity.Participant{}}
	events := &mockEventRepo{events: map[uuid.UUID]*evententity.Event{event.ID: event}}
	svc := newService(repo, events, &mockCache{})

	_, appErr := svc.Join(context.Background(), event.ID, uuid.New())

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrConflict, appErr.Code)
}

func TestJoinTwiceIsAlreadyExists(t *testing.T) {
	event := openEvent(uuid.New(), 3)
	repo := &mockParticipantRepo{participants: map[uuid.UUID]*entity.Participant{}, duplicate: true}
	events := &mockEventRepo{events: map[uuid.UUID]*evententity.Event{event.ID: event}}
	svc := newService(repo, events, &mockCache{})

	_, appErr := svc.Join(context.Background(), event.ID, uuid.New())

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrAlreadyExists, appErr.Code)
}

func TestAcceptConsumesSeatAndInvalidatesCache(t *testing.T) {
	ownerID := uuid.New()
	event := openEvent(ownerID, 1)
	participant := &entity.Participant{ID: uuid.New(), EventID: event.ID, UserID: uuid.New(), Status: entity.ParticipantStatusPending}
	repo := &mockParticipantRepo{participants: map[uuid.UUID]*entity.Participant{participant.ID: participant}}
	events := &mockEventRepo{events: map[uuid.UUID]*evententity.Event{event.ID: event}}
	c := &mockCache{}
	svc := newService(repo, events, c)

	appErr := svc.Decide(context.Background(), event.ID, participant.ID, ownerID, "user", &dto.UpdateParticipantRequest{Status: "accepted"})

	require.Nil(t, appErr)
	assert.Equal(t, entity.ParticipantStatusAccepted, participant.Status)
	assert.Equal(t, 0, event.Remaining)
	assert.Contains(t, c.invalidated, event.ID.String())
}

func TestAcceptOnFullEventIsConflict(t *testing.T) {
	ownerID := uuid.New()
	event := openEvent(ownerID, 0)
	participant := &entity.Participant{ID: uuid.New(), EventID: event.ID, UserID: uuid.New(), Status: entity.ParticipantStatusPending}
	repo := &mockParticipantRepo{participants: map[uuid.UUID]*entity.Participant{participant.ID: participant}}
	events := &mockEventRepo{events: map[uuid.UUID]*evententity.Event{event.ID: event}}
	svc := newService(repo, events, &mockCache{})

	appErr := svc.Decide(context.Background(), event.ID, participant.ID, ownerID, "user", &dto.UpdateParticipantRequest{Status: "accepted"})

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrConflict, appErr.Code)
}

func TestDecideTwiceIsConflict(t *testing.T) {
	ownerID := uuid.New()
	event := openEvent(ownerID, 2)
	participant := &entity.Participant{ID: uuid.New(), EventID: event.ID, UserID: uuid.New(), Status: entity.ParticipantStatusRejected}
	repo := &mockParticipantRepo{participants: map[uuid.UUID]*entity.Participant{participant.ID: participant}}
	events := &mockEventRepo{events: map[uuid.UUID]*evententity.Event{event.ID: event}}
	svc := newService(repo, events, &mockCache{})

	appErr := svc.Decide(context.Background(), event.ID, participant.ID, ownerID, "user", &dto.UpdateParticipantRequest{Status: "accepted"})

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrConflict, appErr.Code)
}

func TestDecideForbiddenForNonOwner(t *testing.T) {
	event := openEvent(uuid.New(), 2)
	participant := &entity.Participant{ID: uuid.New(), EventID: event.ID, Status: entity.ParticipantStatusPending}
	repo := &mockParticipantRepo{participants: map[uuid.UUID]*entity.Participant{participant.ID: participant}}
	events := &mockEventRepo{events: map[uuid.UUID]*evententity.Event{event.ID: event}}
	svc := newService(repo, events, &mockCache{})

	appErr := svc.Decide(context.Background(), event.ID, participant.ID, uuid.New(), "user", &dto.UpdateParticipantRequest{Status: "accepted"})

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrForbidden, appErr.Code)
}

func TestLeaveReturnsAcceptedSeat(t *testing.T) {
	userID := uuid.New()
	event := openEvent(uuid.New(), 0)
	participant := &entity.Participant{ID: uuid.New(), EventID: event.ID, UserID: userID, Status: entity.ParticipantStatusAccepted}
	repo := &mockParticipantRepo{participants: map[uuid.UUID]*entity.Participant{participant.ID: participant}}
	events := &mockEventRepo{events: map[uuid.UUID]*evententity.Event{event.ID: event}}
	svc := newService(repo, events, &mockCache{})

	appErr := svc.Leave(context.Background(), event.ID, participant.ID, userID, "user")

	require.Nil(t, appErr)
	assert.Equal(t, 1, event.Remaining)
	assert.Equal(t, []uuid.UUID{participant.ID}, repo.deleted)
}

func TestLeavePendingDoesNotTouchCapacity(t *testing.T) {
	userID := uuid.New()
	event := openEvent(uuid.New(), 2)
	participant := &entity.Participant{ID: uuid.New(), EventID: event.ID, UserID: userID, Status: entity.ParticipantStatusPending}
	repo := &mockParticipantRepo{participants: map[uuid.UUID]*entity.Participant{participant.ID: participant}}
	events := &mockEventRepo{events: map[uuid.UUID]*evententity.Event{event.ID: event}}
	svc := newService(repo, events, &mockCache{})

	appErr := svc.Leave(context.Background(), event.ID, participant.ID, userID, "user")

	require.Nil(t, appErr)
	assert.Equal(t, 2, event.Remaining)
	assert.Zero(t, events.increments)
}
