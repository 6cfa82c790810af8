package service

import (
	"testing"
	"time"

	"solo_quiz_backend/internal/config"
	"solo_quiz_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthConfig(t *testing.T, password string) config.AdminConfig {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return config.AdminConfig{
		Username:     "admin",
		PasswordHash: string(hash),
		JWTSecret:    "test-secret-for-signing-tokens",
		ExpireTime:   time.Hour,
	}
}

func TestLoginIssuesParseableToken(t *testing.T) {
	cfg := newAuthConfig(t, "s3cret")
	svc := NewAuthService(cfg)

	token, err := svc.Login("admin", "s3cret")
	require.NoError(t, err)

	claims, err := util.ParseAdminJWT(token, cfg.JWTSecret)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := NewAuthService(newAuthConfig(t, "s3cret"))

	_, err := svc.Login("admin", "wrong")
	assert.ErrorIs(t, err, util.ErrInvalidCredential)

	_, err = svc.Login("root", "s3cret")
	assert.ErrorIs(t, err, util.ErrInvalidCredential)
}

func TestParseAdminJWTRejectsWrongSecret(t *testing.T) {
	cfg := newAuthConfig(t, "s3cret")
	svc := NewAuthService(cfg)

	token, err := svc.Login("admin", "s3cret")
	require.NoError(t, err)

	_, err = util.ParseAdminJWT(token, "a-different-secret-entirely")
	assert.Error(t, err)
}
