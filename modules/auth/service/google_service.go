package service

import (
	"context"
	"encoding/json"
	"time"

	"sportsmatch-api/core/constants"
	"sportsmatch-api/core/errors"
	"sportsmatch-api/core/logger"
	"sportsmatch-api/core/utils"
	"sportsmatch-api/modules/auth/dto"
	"sportsmatch-api/modules/auth/entity"
	userentity "sportsmatch-api/modules/user/entity"
	usermapper "sportsmatch-api/modules/user/mapper"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const (
	googleUserinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
	oauthStateTTL     = 10 * time.Minute
)

type googleUserinfo struct {
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
}

// GoogleLoginURL stores a one-shot state and returns the consent URL.
func (s *AuthService) GoogleLoginURL(ctx context.Context) (*dto.GoogleLoginURLResponse, *errors.AppError) {
	if s.oauth == nil || s.oauth.ClientID == "" {
		return nil, errors.NewAppError(errors.ErrInternalServer, "google login is not configured", nil)
	}

	state := utils.GenerateRandomString(32)
	if err := s.repo.SaveOAuthState(ctx, state, time.Now().Add(oauthStateTTL)); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to save oauth state", err)
	}

	return &dto.GoogleLoginURLResponse{URL: s.oauth.AuthCodeURL(state)}, nil
}

// CleanupExpiredOAuthStates runs from the periodic worker task and
// purges state rows that were issued but never consumed.
func (s *AuthService) CleanupExpiredOAuthStates(ctx context.Context) error {
	if err := s.repo.CleanupExpiredOAuthStates(ctx); err != nil {
		logger.Error("AuthService:CleanupExpiredOAuthStates", err)
		return err
	}
	return nil
}

// GoogleCallback exchanges the code, fetches the Google profile and
// signs in the matching user, creating one on first login.
func (s *AuthService) GoogleCallback(ctx context.Context, state, code string) (*dto.LoginResponse, *errors.AppError) {
	if s.oauth == nil || s.oauth.ClientID == "" {
		return nil, errors.NewAppError(errors.ErrInternalServer, "google login is not configured", nil)
	}

	ok, err := s.repo.ConsumeOAuthState(ctx, state)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to check oauth state", err)
	}
	if !ok {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid oauth state", nil)
	}

	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		logger.Error("AuthService:GoogleCallback:Exchange", err)
		return nil, errors.NewAppError(errors.ErrUnauthorized, "failed to exchange oauth code", err)
	}

	resp, err := s.oauth.Client(ctx, token).Get(googleUserinfoURL)
	if err != nil {
		logger.Error("AuthService:GoogleCallback:Userinfo", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to fetch google profile", err)
	}
	defer resp.Body.Close()

	var info googleUserinfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to decode google profile", err)
	}
	if info.Email == "" {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "google profile has no email", nil)
	}

	user, err := s.userRepo.GetUserByEmail(ctx, info.Email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "google login failed", err)
	}

	if user == nil {
		// First Google login: provision a profile with an unusable
		// random password so password login stays closed.
		randomHash, err := utils.HashPassword(utils.GenerateRandomString(32))
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "failed to provision user", err)
		}

		userID := uuid.New()
		txErr := s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
			auth := &entity.Auth{
				ID:           userID,
				Email:        info.Email,
				PasswordHash: randomHash,
				Kind:         constants.TokenTypeUser,
			}
			if err := s.repo.CreateAuthTx(ctx, tx, auth); err != nil {
				return err
			}
			newUser := &userentity.User{
				ID:        userID,
				Email:     info.Email,
				FirstName: info.GivenName,
				LastName:  info.FamilyName,
			}
			user, err = s.userRepo.CreateUserTx(ctx, tx, newUser)
			return err
		})
		if txErr != nil {
			return nil, errors.NewAppError(errors.ErrCreateFailed, "failed to provision user", txErr)
		}
	}

	accessToken, err := utils.GenerateToken(user.ID, user.Email, constants.TokenTypeUser)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to sign token", err)
	}

	return &dto.LoginResponse{
		AccessToken: accessToken,
		UserDetail:  usermapper.ToUserDetailResponse(user),
	}, nil
}
