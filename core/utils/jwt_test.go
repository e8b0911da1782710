package utils

import (
	"testing"
	"time"

	"sportsmatch-api/core/config"
	"sportsmatch-api/core/constants"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	id := uuid.New()

	token, err := GenerateToken(id, "player@example.com", constants.TokenTypeUser)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateAndParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, "player@example.com", claims.Email)
	assert.Equal(t, constants.TokenTypeUser, claims.Type)
	assert.Equal(t, config.Get().JWT.Issuer, claims.Issuer)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateAndParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	claims := TokenClaims{
		UserID: uuid.New(),
		Type:   constants.TokenTypeClub,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("some-other-key"))
	require.NoError(t, err)

	_, err = ValidateAndParseToken(forged)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	claims := TokenClaims{
		UserID: uuid.New(),
		Type:   constants.TokenTypeUser,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.Get().JWT.Key))
	require.NoError(t, err)

	_, err = ValidateAndParseToken(expired)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenRemainingTTL(t *testing.T) {
	claims := &TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	ttl := TokenRemainingTTL(claims)
	assert.Greater(t, ttl, 59*time.Minute)
	assert.LessOrEqual(t, ttl, time.Hour)

	assert.Equal(t, time.Duration(0), TokenRemainingTTL(&TokenClaims{}))
}
