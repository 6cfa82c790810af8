package service

import (
	"solo_quiz_backend/internal/config"
	"solo_quiz_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
)

// AuthService issues the admin token for the catalog management surface.
// There are no participant accounts; quiz takers only carry a display name.
type AuthService struct {
	cfg config.AdminConfig
}

func NewAuthService(cfg config.AdminConfig) *AuthService {
	return &AuthService{cfg: cfg}
}

func (s *AuthService) Login(username, password string) (string, error) {
	if username != s.cfg.Username {
		return "", util.ErrInvalidCredential
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.PasswordHash), []byte(password)); err != nil {
		return "", util.ErrInvalidCredential
	}

	return util.GenerateAdminJWT(username, s.cfg.JWTSecret, s.cfg.ExpireTime)
}
