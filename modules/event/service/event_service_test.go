package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"sportsmatch-api/core/errors"
	"sportsmatch-api/core/params"
	clubentity "sportsmatch-api/modules/club/entity"
	"sportsmatch-api/modules/event/dto"
	"sportsmatch-api/modules/event/entity"
	userentity "sportsmatch-api/modules/user/entity"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockEventRepo struct {
	events  map[uuid.UUID]*entity.Event
	details map[uuid.UUID]*entity.EventDetail
	created *entity.Event
}

func (m *mockEventRepo) CreateEvent(ctx context.Context, e *entity.Event) (*entity.Event, error) {
	m.created = e
	m.events[e.ID] = e
	return e, nil
}

func (m *mockEventRepo) GetEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	return m.events[id], nil
}

func (m *mockEventRepo) GetEventDetailByID(ctx context.Context, id uuid.UUID) (*entity.EventDetail, error) {
	return m.details[id], nil
}

func (m *mockEventRepo) GetEvents(ctx context.Context, filter entity.EventFilter, limit, offset int) ([]entity.Event, error) {
	var out []entity.Event
	for _, e := range m.events {
		out = append(out, *e)
	}
	return out, nil
}

func (m *mockEventRepo) UpdateEvent(ctx context.Context, e *entity.Event) error { return nil }

func (m *mockEventRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.EventStatus) error {
	if e, ok := m.events[id]; ok {
		e.Status = status
	}
	return nil
}

func (m *mockEventRepo) DecrementRemainingTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (bool, error) {
	return true, nil
}

func (m *mockEventRepo) IncrementRemainingTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) error {
	return nil
}

type mockUserRepo struct {
	users map[uuid.UUID]*userentity.User
}

func (m *mockUserRepo) CreateUserTx(ctx context.Context, tx *sqlx.Tx, u *userentity.User) (*userentity.User, error) {
	return u, nil
}
func (m *mockUserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*userentity.User, error) {
	return m.users[id], nil
}
func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*userentity.User, error) {
	return nil, nil
}
func (m *mockUserRepo) GetUsers(ctx context.Context, p params.QueryParams) (*userentity.PaginatedUsers, error) {
	return nil, nil
}
func (m *mockUserRepo) UpdateUser(ctx context.Context, u *userentity.User) error { return nil }
func (m *mockUserRepo) UpdatePictureKey(ctx context.Context, id uuid.UUID, key string) error {
	return nil
}

type mockClubRepo struct {
	clubs map[uuid.UUID]*clubentity.ClubDetail
}

func (m *mockClubRepo) CreateClubTx(ctx context.Context, tx *sqlx.Tx, c *clubentity.Club) (*clubentity.Club, error) {
	return c, nil
}
func (m *mockClubRepo) GetClubByID(ctx context.Context, id uuid.UUID) (*clubentity.ClubDetail, error) {
	return m.clubs[id], nil
}
func (m *mockClubRepo) GetClubByEmail(ctx context.Context, email string) (*clubentity.Club, error) {
	return nil, nil
}
func (m *mockClubRepo) GetClubs(ctx context.Context) ([]clubentity.ClubDetail, error) {
	return nil, nil
}
func (m *mockClubRepo) GetNearClubs(ctx context.Context, lat, lon, radiusKm float64) ([]clubentity.ClubDetail, error) {
	return nil, nil
}
func (m *mockClubRepo) UpdateClub(ctx context.Context, c *clubentity.Club) error { return nil }
func (m *mockClubRepo) UpsertLocation(ctx context.Context, loc *clubentity.ClubLocation) error {
	return nil
}

type mockCache struct {
	eventDetails map[string][]byte
	invalidated  []string
}

func newMockCache() *mockCache {
	return &mockCache{eventDetails: map[string][]byte{}}
}

func (m *mockCache) AddToTokenBlacklist(ctx context.Context, token string, ttl time.Duration) error {
	return nil
}
func (m *mockCache) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	return false, nil
}
func (m *mockCache) SetEventDetail(ctx context.Context, eventID string, payload []byte) error {
	m.eventDetails[eventID] = payload
	return nil
}
func (m *mockCache) GetEventDetail(ctx context.Context, eventID string) ([]byte, error) {
	return m.eventDetails[eventID], nil
}
func (m *mockCache) InvalidateEventDetail(ctx context.Context, eventID string) error {
	m.invalidated = append(m.invalidated, eventID)
	delete(m.eventDetails, eventID)
	return nil
}
func (m *mockCache) Close() error { return nil }

func newEventService(repo *mockEventRepo, users *mockUserRepo, clubs *mockClubRepo, c *mockCache) *EventService {
	return NewEventService(repo, users, clubs, c)
}

func createRequest(organizerType string) *dto.CreateEventRequest {
	return &dto.CreateEventRequest{
		Description:   "friendly padel match",
		Schedule:      time.Date(2026, 9, 5, 18, 0, 0, 0, time.UTC),
		Location:      "Palermo",
		Expertise:     "intermediate",
		SportID:       3,
		OrganizerType: organizerType,
		Duration:      90,
		Capacity:      4,
	}
}

func TestCreateEventRequiresExistingUserOwner(t *testing.T) {
	repo := &mockEventRepo{events: map[uuid.UUID]*entity.Event{}, details: map[uuid.UUID]*entity.EventDetail{}}
	svc := newEventService(repo, &mockUserRepo{users: map[uuid.UUID]*userentity.User{}}, &mockClubRepo{}, newMockCache())

	_, appErr := svc.CreateEvent(context.Background(), uuid.New(), createRequest("user"))

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
	assert.Nil(t, repo.created)
}

func TestCreateEventWithUserOwner(t *testing.T) {
	ownerID := uuid.New()
	repo := &mockEventRepo{events: map[uuid.UUID]*entity.Event{}, details: map[uuid.UUID]*entity.EventDetail{}}
	users := &mockUserRepo{users: map[uuid.UUID]*userentity.User{ownerID: {ID: ownerID}}}
	svc := newEventService(repo, users, &mockClubRepo{}, newMockCache())

	resp, appErr := svc.CreateEvent(context.Background(), ownerID, createRequest("user"))

	require.Nil(t, appErr)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, 4, resp.Remaining)
	assert.Equal(t, ownerID, resp.OwnerID)
}

func TestCreateEventRequiresExistingClubOwner(t *testing.T) {
	repo := &mockEventRepo{events: map[uuid.UUID]*entity.Event{}, details: map[uuid.UUID]*entity.EventDetail{}}
	svc := newEventService(repo, &mockUserRepo{users: map[uuid.UUID]*userentity.User{}},
		&mockClubRepo{clubs: map[uuid.UUID]*clubentity.ClubDetail{}}, newMockCache())

	_, appErr := svc.CreateEvent(context.Background(), uuid.New(), createRequest("club"))

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func TestGetEventByIDCachesDetail(t *testing.T) {
	eventID := uuid.New()
	ownerName := "Ana"
	detail := &entity.EventDetail{
		Event: entity.Event{
			ID:            eventID,
			OrganizerType: entity.OrganizerTypeUser,
			Status:        entity.EventStatusPending,
		},
		UserOwnerName: &ownerName,
	}
	repo := &mockEventRepo{
		events:  map[uuid.UUID]*entity.Event{eventID: &detail.Event},
		details: map[uuid.UUID]*entity.EventDetail{eventID: detail},
	}
	c := newMockCache()
	svc := newEventService(repo, &mockUserRepo{}, &mockClubRepo{}, c)

	resp, appErr := svc.GetEventByID(context.Background(), eventID)
	require.Nil(t, appErr)
	assert.Equal(t, "Ana", resp.Owner.Name)
	require.Contains(t, c.eventDetails, eventID.String())

	// Second read must come from the cache even if the row vanishes.
	delete(repo.details, eventID)
	cached, appErr := svc.GetEventByID(context.Background(), eventID)
	require.Nil(t, appErr)
	assert.Equal(t, resp.ID, cached.ID)
	assert.Equal(t, "Ana", cached.Owner.Name)
}

func TestGetEventByIDServesCorruptCacheFromDB(t *testing.T) {
	eventID := uuid.New()
	detail := &entity.EventDetail{Event: entity.Event{ID: eventID, OrganizerType: entity.OrganizerTypeUser}}
	repo := &mockEventRepo{
		events:  map[uuid.UUID]*entity.Event{eventID: &detail.Event},
		details: map[uuid.UUID]*entity.EventDetail{eventID: detail},
	}
	c := newMockCache()
	c.eventDetails[eventID.String()] = []byte("{not json")
	svc := newEventService(repo, &mockUserRepo{}, &mockClubRepo{}, c)

	resp, appErr := svc.GetEventByID(context.Background(), eventID)
	require.Nil(t, appErr)
	assert.Equal(t, eventID, resp.ID)

	var stored dto.EventDetailResponse
	require.NoError(t, json.Unmarshal(c.eventDetails[eventID.String()], &stored))
	assert.Equal(t, eventID, stored.ID)
}

func TestDeleteEventCancelsAndInvalidates(t *testing.T) {
	ownerID := uuid.New()
	eventID := uuid.New()
	repo := &mockEventRepo{
		events: map[uuid.UUID]*entity.Event{eventID: {
			ID:            eventID,
			OrganizerType: entity.OrganizerTypeUser,
			OwnerID:       ownerID,
			Status:        entity.EventStatusPending,
		}},
		details: map[uuid.UUID]*entity.EventDetail{},
	}
	c := newMockCache()
	svc := newEventService(repo, &mockUserRepo{}, &mockClubRepo{}, c)

	require.Nil(t, svc.DeleteEvent(context.Background(), eventID, ownerID, "user"))
	assert.Equal(t, entity.EventStatusCancelled, repo.events[eventID].Status)
	assert.Contains(t, c.invalidated, eventID.String())

	appErr := svc.DeleteEvent(context.Background(), eventID, ownerID, "user")
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrConflict, appErr.Code)
}

func TestUpdateEventForbiddenForNonOwner(t *testing.T) {
	eventID := uuid.New()
	repo := &mockEventRepo{
		events: map[uuid.UUID]*entity.Event{eventID: {
			ID:            eventID,
			OrganizerType: entity.OrganizerTypeUser,
			OwnerID:       uuid.New(),
			Status:        entity.EventStatusPending,
		}},
		details: map[uuid.UUID]*entity.EventDetail{},
	}
	svc := newEventService(repo, &mockUserRepo{}, &mockClubRepo{}, newMockCache())

	desc := "new description"
	_, appErr := svc.UpdateEvent(context.Background(), eventID, uuid.New(), "user", &dto.UpdateEventRequest{Description: &desc})

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrForbidden, appErr.Code)
}
