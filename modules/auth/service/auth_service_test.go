package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"sportsmatch-api/core/constants"
	"sportsmatch-api/core/database"
	"sportsmatch-api/core/errors"
	"sportsmatch-api/core/params"
	"sportsmatch-api/core/utils"
	"sportsmatch-api/modules/auth/dto"
	"sportsmatch-api/modules/auth/entity"
	clubentity "sportsmatch-api/modules/club/entity"
	userentity "sportsmatch-api/modules/user/entity"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDB struct{}

func (fakeDB) ExecContext(ctx context.Context, query string, args ...any) error { return nil }
func (fakeDB) GetContext(ctx context.Context, dest any, query string, args ...any) error {
	return nil
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

type mockAuthRepo struct {
	auths     map[string]*entity.Auth
	createErr error
	cleanups  int
}

func authKey(email, kind string) string { return email + "|" + kind }

func (m *mockAuthRepo) CreateAuthTx(ctx context.Context, tx *sqlx.Tx, auth *entity.Auth) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.auths[authKey(auth.Email, auth.Kind)] = auth
	return nil
}

func (m *mockAuthRepo) GetAuthByEmail(ctx context.Context, email string, kind string) (*entity.Auth, error) {
	return m.auths[authKey(email, kind)], nil
}

func (m *mockAuthRepo) SaveOAuthState(ctx context.Context, state string, expiresAt time.Time) error {
	return nil
}

func (m *mockAuthRepo) ConsumeOAuthState(ctx context.Context, state string) (bool, error) {
	return false, nil
}

func (m *mockAuthRepo) CleanupExpiredOAuthStates(ctx context.Context) error {
	m.cleanups++
	return nil
}

type mockUserRepo struct {
	users map[uuid.UUID]*userentity.User
}

func (m *mockUserRepo) CreateUserTx(ctx context.Context, tx *sqlx.Tx, u *userentity.User) (*userentity.User, error) {
	m.users[u.ID] = u
	return u, nil
}
func (m *mockUserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*userentity.User, error) {
	return m.users[id], nil
}
func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*userentity.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
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
	blacklisted map[string]bool
}

func newMockCache() *mockCache {
	return &mockCache{blacklisted: map[string]bool{}}
}

func (m *mockCache) AddToTokenBlacklist(ctx context.Context, token string, ttl time.Duration) error {
	m.blacklisted[token] = true
	return nil
}
func (m *mockCache) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	return m.blacklisted[token], nil
}
func (m *mockCache) SetEventDetail(ctx context.Context, eventID string, payload []byte) error {
	return nil
}
func (m *mockCache) GetEventDetail(ctx context.Context, eventID string) ([]byte, error) {
	return nil, nil
}
func (m *mockCache) InvalidateEventDetail(ctx context.Context, eventID string) error { return nil }
func (m *mockCache) Close() error                                                    { return nil }

func newTestService(repo *mockAuthRepo, users *mockUserRepo, clubs *mockClubRepo, c *mockCache) *AuthService {
	return NewAuthService(fakeDB{}, repo, users, clubs, c, nil)
}

func signupRequest() *dto.SignupRequest {
	return &dto.SignupRequest{
		Email:       "ana@example.com",
		Password:    "s3cret-pass",
		FirstName:   "Ana",
		LastName:    "Lopez",
		PhoneNumber: "+5491100000000",
	}
}

func TestSignupCreatesUserAndToken(t *testing.T) {
	repo := &mockAuthRepo{auths: map[string]*entity.Auth{}}
	users := &mockUserRepo{users: map[uuid.UUID]*userentity.User{}}
	svc := newTestService(repo, users, &mockClubRepo{}, newMockCache())

	resp, appErr := svc.Signup(context.Background(), signupRequest())

	require.Nil(t, appErr)
	require.NotEmpty(t, resp.AccessToken)

	claims, err := utils.ValidateAndParseToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, constants.TokenTypeUser, claims.Type)
	assert.Equal(t, "ana@example.com", claims.Email)

	auth := repo.auths[authKey("ana@example.com", constants.TokenTypeUser)]
	require.NotNil(t, auth)
	assert.NotEqual(t, "s3cret-pass", auth.PasswordHash, "password must be stored hashed")
}

func TestSignupDuplicateEmailIsConflict(t *testing.T) {
	repo := &mockAuthRepo{
		auths:     map[string]*entity.Auth{},
		createErr: &pq.Error{Code: "23505", Constraint: "auths_email_kind_key"},
	}
	svc := newTestService(repo, &mockUserRepo{users: map[uuid.UUID]*userentity.User{}}, &mockClubRepo{}, newMockCache())

	_, appErr := svc.Signup(context.Background(), signupRequest())

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrAlreadyExists, appErr.Code)
}

func TestVerifyTokenRejectsBlacklisted(t *testing.T) {
	userID := uuid.New()
	users := &mockUserRepo{users: map[uuid.UUID]*userentity.User{userID: {ID: userID}}}
	c := newMockCache()
	svc := newTestService(&mockAuthRepo{auths: map[string]*entity.Auth{}}, users, &mockClubRepo{}, c)

	token, err := utils.GenerateToken(userID, "ana@example.com", constants.TokenTypeUser)
	require.NoError(t, err)

	require.Nil(t, svc.Logout(context.Background(), token))

	_, appErr := svc.VerifyToken(context.Background(), token, constants.TokenTypeUser)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrUnauthorized, appErr.Code)
}

func TestVerifyTokenRejectsWrongType(t *testing.T) {
	userID := uuid.New()
	users := &mockUserRepo{users: map[uuid.UUID]*userentity.User{userID: {ID: userID}}}
	svc := newTestService(&mockAuthRepo{auths: map[string]*entity.Auth{}}, users, &mockClubRepo{}, newMockCache())

	token, err := utils.GenerateToken(userID, "ana@example.com", constants.TokenTypeUser)
	require.NoError(t, err)

	_, appErr := svc.VerifyToken(context.Background(), token, constants.TokenTypeClub)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrForbidden, appErr.Code)
}

func TestVerifyTokenAcceptsExistingUser(t *testing.T) {
	userID := uuid.New()
	users := &mockUserRepo{users: map[uuid.UUID]*userentity.User{userID: {ID: userID}}}
	svc := newTestService(&mockAuthRepo{auths: map[string]*entity.Auth{}}, users, &mockClubRepo{}, newMockCache())

	token, err := utils.GenerateToken(userID, "ana@example.com", constants.TokenTypeUser)
	require.NoError(t, err)

	claims, appErr := svc.VerifyToken(context.Background(), token, constants.TokenTypeUser)
	require.Nil(t, appErr)
	assert.Equal(t, userID, claims.UserID)
}

func TestVerifyTokenRejectsDeletedSubject(t *testing.T) {
	users := &mockUserRepo{users: map[uuid.UUID]*userentity.User{}}
	svc := newTestService(&mockAuthRepo{auths: map[string]*entity.Auth{}}, users, &mockClubRepo{}, newMockCache())

	token, err := utils.GenerateToken(uuid.New(), "ghost@example.com", constants.TokenTypeUser)
	require.NoError(t, err)

	_, appErr := svc.VerifyToken(context.Background(), token, "")
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrForbidden, appErr.Code)
}

func TestCleanupExpiredOAuthStatesDelegates(t *testing.T) {
	repo := &mockAuthRepo{auths: map[string]*entity.Auth{}}
	svc := newTestService(repo, &mockUserRepo{users: map[uuid.UUID]*userentity.User{}}, &mockClubRepo{}, newMockCache())

	require.NoError(t, svc.CleanupExpiredOAuthStates(context.Background()))
	assert.Equal(t, 1, repo.cleanups)
}
