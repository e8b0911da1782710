package service

import (
	"context"
	"time"

	"sportsmatch-api/core/cache"
	"sportsmatch-api/core/constants"
	"sportsmatch-api/core/database"
	"sportsmatch-api/core/errors"
	"sportsmatch-api/core/logger"
	"sportsmatch-api/core/utils"
	"sportsmatch-api/modules/auth/dto"
	"sportsmatch-api/modules/auth/entity"
	"sportsmatch-api/modules/auth/repository"
	clubrepo "sportsmatch-api/modules/club/repository"
	userentity "sportsmatch-api/modules/user/entity"
	usermapper "sportsmatch-api/modules/user/mapper"
	userrepo "sportsmatch-api/modules/user/repository"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"golang.org/x/oauth2"
)

type AuthService struct {
	db       database.IDatabase
	repo     repository.AuthRepositoryInterface
	userRepo userrepo.UserRepositoryInterface
	clubRepo clubrepo.ClubRepositoryInterface
	cache    cache.Cache
	oauth    *oauth2.Config
}

func NewAuthService(
	db database.IDatabase,
	repo repository.AuthRepositoryInterface,
	userRepo userrepo.UserRepositoryInterface,
	clubRepo clubrepo.ClubRepositoryInterface,
	c cache.Cache,
	oauth *oauth2.Config,
) *AuthService {
	return &AuthService{db: db, repo: repo, userRepo: userRepo, clubRepo: clubRepo, cache: c, oauth: oauth}
}

// Signup creates the credential row and the user profile atomically.
func (s *AuthService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.LoginResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("AuthService:Signup:HashPassword", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to hash password", err)
	}

	var birthdate *time.Time
	if req.Birthdate != "" {
		parsed, err := time.Parse("2006-01-02", req.Birthdate)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid birthdate", err)
		}
		birthdate = &parsed
	}

	userID := uuid.New()
	var created *userentity.User
	txErr := s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		auth := &entity.Auth{
			ID:           userID,
			Email:        req.Email,
			PasswordHash: passwordHash,
			Kind:         constants.TokenTypeUser,
		}
		if err := s.repo.CreateAuthTx(ctx, tx, auth); err != nil {
			return err
		}

		phone := req.PhoneNumber
		user := &userentity.User{
			ID:          userID,
			Email:       req.Email,
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			PhoneNumber: &phone,
			Birthdate:   birthdate,
		}
		var err error
		created, err = s.userRepo.CreateUserTx(ctx, tx, user)
		return err
	})
	if txErr != nil {
		if pqErr, ok := txErr.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, errors.NewAppError(errors.ErrAlreadyExists, pqErr.Constraint, txErr)
		}
		return nil, errors.NewAppError(errors.ErrCreateFailed, "signup failed", txErr)
	}

	accessToken, err := utils.GenerateToken(userID, req.Email, constants.TokenTypeUser)
	if err != nil {
		logger.Error("AuthService:Signup:GenerateToken", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to sign token", err)
	}

	return &dto.LoginResponse{
		AccessToken: accessToken,
		UserDetail:  usermapper.ToUserDetailResponse(created),
	}, nil
}

// Login deliberately reports not-found for both a missing account and a
// wrong password.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	auth, err := s.repo.GetAuthByEmail(ctx, req.Email, constants.TokenTypeUser)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "login failed", err)
	}
	if auth == nil || !utils.ComparePassword(auth.PasswordHash, req.Password) {
		return nil, errors.NewAppError(errors.ErrNotFound, "user not found", nil)
	}

	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil || user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "user not found", err)
	}

	accessToken, err := utils.GenerateToken(user.ID, auth.Email, constants.TokenTypeUser)
	if err != nil {
		logger.Error("AuthService:Login:GenerateToken", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to sign token", err)
	}

	return &dto.LoginResponse{
		AccessToken: accessToken,
		UserDetail:  usermapper.ToUserDetailResponse(user),
	}, nil
}

func (s *AuthService) ClubLogin(ctx context.Context, req *dto.LoginRequest) (*dto.ClubLoginResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	auth, err := s.repo.GetAuthByEmail(ctx, req.Email, constants.TokenTypeClub)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "login failed", err)
	}
	if auth == nil || !utils.ComparePassword(auth.PasswordHash, req.Password) {
		return nil, errors.NewAppError(errors.ErrNotFound, "club not found", nil)
	}

	club, err := s.clubRepo.GetClubByEmail(ctx, req.Email)
	if err != nil || club == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "club not found", err)
	}

	accessToken, err := utils.GenerateToken(club.ID, auth.Email, constants.TokenTypeClub)
	if err != nil {
		logger.Error("AuthService:ClubLogin:GenerateToken", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to sign token", err)
	}

	return &dto.ClubLoginResponse{
		AccessToken: accessToken,
		ClubID:      club.ID,
		Name:        club.Name,
	}, nil
}

// Logout blacklists the token for its remaining lifetime.
func (s *AuthService) Logout(ctx context.Context, token string) *errors.AppError {
	claims, err := utils.ValidateAndParseToken(token)
	if err != nil {
		// Expired tokens need no blacklisting.
		if err == utils.ErrTokenExpired {
			return nil
		}
		return errors.NewAppError(errors.ErrInvalidTokenFormat, "invalid token", err)
	}

	if err := s.cache.AddToTokenBlacklist(ctx, token, utils.TokenRemainingTTL(claims)); err != nil {
		logger.Error("AuthService:Logout:Blacklist", err)
		return errors.NewAppError(errors.ErrInternalServer, "failed to revoke token", err)
	}
	return nil
}

// VerifyToken backs the auth middlewares. wantType "" accepts either
// token kind; otherwise the type claim must match and the subject must
// still exist.
func (s *AuthService) VerifyToken(ctx context.Context, token string, wantType string) (*utils.TokenClaims, *errors.AppError) {
	blacklisted, err := s.cache.IsTokenBlacklisted(ctx, token)
	if err != nil {
		logger.Error("AuthService:VerifyToken:IsTokenBlacklisted", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to check token", err)
	}
	if blacklisted {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "token is revoked", nil)
	}

	claims, err := utils.ValidateAndParseToken(token)
	if err != nil {
		if err == utils.ErrTokenExpired {
			return nil, errors.NewAppError(errors.ErrTokenExpired, "expired token", err)
		}
		return nil, errors.NewAppError(errors.ErrInvalidTokenFormat, "invalid token", err)
	}

	if wantType != "" && claims.Type != wantType {
		return nil, errors.NewAppError(errors.ErrForbidden, "access forbidden: wrong token type", nil)
	}

	switch claims.Type {
	case constants.TokenTypeUser:
		user, err := s.userRepo.GetUserByID(ctx, claims.UserID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "failed to check token subject", err)
		}
		if user == nil {
			return nil, errors.NewAppError(errors.ErrForbidden, "access forbidden: user not found", nil)
		}
	case constants.TokenTypeClub:
		club, err := s.clubRepo.GetClubByID(ctx, claims.UserID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "failed to check token subject", err)
		}
		if club == nil {
			return nil, errors.NewAppError(errors.ErrForbidden, "access forbidden: club not found", nil)
		}
	default:
		return nil, errors.NewAppError(errors.ErrInvalidTokenFormat, "unknown token type", nil)
	}

	return claims, nil
}
