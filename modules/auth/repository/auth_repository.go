package repository

import (
	"context"
	"database/sql"
	"time"

	"sportsmatch-api/core/database"
	"sportsmatch-api/core/logger"
	"sportsmatch-api/modules/auth/entity"

	"github.com/jmoiron/sqlx"
)

type AuthRepository struct {
	DB database.IDatabase
}

func NewAuthRepository(db database.IDatabase) *AuthRepository {
	return &AuthRepository{DB: db}
}

type AuthRepositoryInterface interface {
	CreateAuthTx(ctx context.Context, tx *sqlx.Tx, auth *entity.Auth) error
	GetAuthByEmail(ctx context.Context, email string, kind string) (*entity.Auth, error)

	SaveOAuthState(ctx context.Context, state string, expiresAt time.Time) error
	ConsumeOAuthState(ctx context.Context, state string) (bool, error)
	CleanupExpiredOAuthStates(ctx context.Context) error
}

// CreateAuthTx inserts the credential row inside the caller's
// transaction; signup pairs it with the profile insert.
func (r *AuthRepository) CreateAuthTx(ctx context.Context, tx *sqlx.Tx, auth *entity.Auth) error {
	query := `
		INSERT INTO auths (id, email, password_hash, kind)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := tx.ExecContext(ctx, query, auth.ID, auth.Email, auth.PasswordHash, auth.Kind); err != nil {
		logger.Error("AuthRepository:CreateAuthTx", err)
		return err
	}
	return nil
}

func (r *AuthRepository) GetAuthByEmail(ctx context.Context, email string, kind string) (*entity.Auth, error) {
	query := `
		SELECT id, email, password_hash, kind, created_at
		FROM auths WHERE email = $1 AND kind = $2
	`

	var auth entity.Auth
	err := r.DB.GetContext(ctx, &auth, query, email, kind)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AuthRepository:GetAuthByEmail", err)
		return nil, err
	}
	return &auth, nil
}

func (r *AuthRepository) SaveOAuthState(ctx context.Context, state string, expiresAt time.Time) error {
	query := `INSERT INTO oauth_states (state, expires_at) VALUES ($1, $2)`
	if err := r.DB.ExecContext(ctx, query, state, expiresAt); err != nil {
		logger.Error("AuthRepository:SaveOAuthState", err)
		return err
	}
	return nil
}

// ConsumeOAuthState deletes the state row and reports whether it existed
// and had not expired. One round trip keeps the check race-free.
func (r *AuthRepository) ConsumeOAuthState(ctx context.Context, state string) (bool, error) {
	query := `DELETE FROM oauth_states WHERE state = $1 AND expires_at > NOW() RETURNING state`

	var consumed string
	err := r.DB.GetContext(ctx, &consumed, query, state)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		logger.Error("AuthRepository:ConsumeOAuthState", err)
		return false, err
	}
	return true, nil
}

func (r *AuthRepository) CleanupExpiredOAuthStates(ctx context.Context) error {
	query := `DELETE FROM oauth_states WHERE expires_at <= NOW()`
	if err := r.DB.ExecContext(ctx, query); err != nil {
		logger.Error("AuthRepository:CleanupExpiredOAuthStates", err)
		return err
	}
	return nil
}
