package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/nagarpalika/complaint-system/internal/core/domain"
	"github.com/nagarpalika/complaint-system/internal/core/ports"
)

const minPasswordLength = 8

// AuthService implements admin registration and login. Password hashing is
// an explicit step here, not a storage-layer lifecycle hook.
type AuthService struct {
	repo               ports.AuthRepository
	jwtSecret          string
	registrationSecret string
	tokenTTL           time.Duration
	logger             zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, jwtSecret, registrationSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 8 * time.Hour
	}
	return &AuthService{
		repo:               repo,
		jwtSecret:          jwtSecret,
		registrationSecret: registrationSecret,
		tokenTTL:           tokenTTL,
		logger:             logger,
	}
}

// Register creates a new admin account. Only callers who present the shared
// registration secret may register; usernames are normalized to lowercase.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" || input.RegistrationSecret == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if input.RegistrationSecret != s.registrationSecret {
		return nil, domain.ErrBadRegistrationSecret
	}
	if len(input.Password) < minPasswordLength {
		return nil, domain.ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     strings.ToLower(input.Username),
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Msg("admin account created")
	return created, nil
}

// Login authenticates an active admin account and returns a signed JWT.
// Unknown usernames deliberately report invalid credentials rather than
// not-found, so the endpoint does not leak which accounts exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, strings.ToLower(username))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if user.Role != domain.RoleAdmin {
		return "", nil, domain.ErrNotAdmin
	}
	if !user.IsActive {
		return "", nil, domain.ErrAccountDisabled
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.repo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		s.logger.Warn().Err(err).Str("username", user.Username).Msg("failed to stamp last login")
	} else {
		user.LastLogin = &now
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("username", user.Username).Msg("admin logged in")
	return token, user, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
		"role":     string(user.Role),
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
