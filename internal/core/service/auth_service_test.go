package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/nagarpalika/complaint-system/internal/core/domain"
	"github.com/nagarpalika/complaint-system/internal/core/ports"
)

type stubAuthRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: map[string]*domain.User{}}
}

func (r *stubAuthRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	stored := *user
	stored.ID = "user-" + strconv.Itoa(r.nextID)
	r.users[stored.Username] = &stored
	copied := stored
	return &copied, nil
}

func (r *stubAuthRepo) UpdateLastLogin(_ context.Context, id string, at time.Time) error {
	for _, user := range r.users {
		if user.ID == id {
			user.LastLogin = &at
			return nil
		}
	}
	return domain.ErrUserNotFound
}

const (
	testJWTSecret    = "test-jwt-secret"
	testRegSecret    = "letmein-admin"
	testGoodPassword = "s3cure-password"
)

func newTestAuthService(repo *stubAuthRepo) *AuthService {
	return NewAuthService(repo, testJWTSecret, testRegSecret, time.Hour, zerolog.Nop())
}

func registerTestAdmin(t *testing.T, svc *AuthService) *domain.User {
	t.Helper()
	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username:           "Admin1",
		Email:              "admin@example.com",
		Password:           testGoodPassword,
		RegistrationSecret: testRegSecret,
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	return user
}

func TestRegisterCreatesActiveAdmin(t *testing.T) {
	repo := newStubAuthRepo()
	user := registerTestAdmin(t, newTestAuthService(repo))

	if user.Username != "admin1" {
		t.Errorf("username = %q, want lowercase %q", user.Username, "admin1")
	}
	if user.Role != domain.RoleAdmin {
		t.Errorf("role = %q, want %q", user.Role, domain.RoleAdmin)
	}
	if !user.IsActive {
		t.Error("new account not active")
	}
	if user.PasswordHash == testGoodPassword {
		t.Error("password stored in plaintext")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(testGoodPassword)) != nil {
		t.Error("stored hash does not verify against the password")
	}
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   ports.RegisterInput
		wantErr error
	}{
		{
			"wrong registration secret",
			ports.RegisterInput{Username: "a", Email: "a@b.c", Password: testGoodPassword, RegistrationSecret: "nope"},
			domain.ErrBadRegistrationSecret,
		},
		{
			"short password",
			ports.RegisterInput{Username: "a", Email: "a@b.c", Password: "short", RegistrationSecret: testRegSecret},
			domain.ErrWeakPassword,
		},
		{
			"missing username",
			ports.RegisterInput{Email: "a@b.c", Password: testGoodPassword, RegistrationSecret: testRegSecret},
			domain.ErrInvalidCredentials,
		},
		{
			"missing secret",
			ports.RegisterInput{Username: "a", Email: "a@b.c", Password: testGoodPassword},
			domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestAuthService(newStubAuthRepo())
			if _, err := svc.Register(context.Background(), tt.input); !errors.Is(err, tt.wantErr) {
				t.Errorf("Register() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	svc := newTestAuthService(newStubAuthRepo())
	registerTestAdmin(t, svc)

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Username:           "ADMIN1", // same account after normalization
		Email:              "other@example.com",
		Password:           testGoodPassword,
		RegistrationSecret: testRegSecret,
	})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("Register() error = %v, want ErrUserExists", err)
	}
}

func TestLoginReturnsValidToken(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newTestAuthService(repo)
	registerTestAdmin(t, svc)

	token, user, err := svc.Login(context.Background(), "Admin1", testGoodPassword)
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if user.LastLogin == nil {
		t.Error("last login not stamped")
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token did not parse: %v", err)
	}
	if claims["username"] != "admin1" {
		t.Errorf("token username claim = %v, want admin1", claims["username"])
	}
	if claims["role"] != "admin" {
		t.Errorf("token role claim = %v, want admin", claims["role"])
	}
	if _, ok := claims["exp"]; !ok {
		t.Error("token has no expiry")
	}
}

func TestLoginFailures(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newTestAuthService(repo)
	registerTestAdmin(t, svc)

	officerHash, _ := bcrypt.GenerateFromPassword([]byte(testGoodPassword), bcrypt.DefaultCost)
	repo.users["officer1"] = &domain.User{
		ID: "user-8", Username: "officer1", PasswordHash: string(officerHash),
		Role: domain.RoleOfficer, IsActive: true,
	}
	repo.users["disabled1"] = &domain.User{
		ID: "user-9", Username: "disabled1", PasswordHash: string(officerHash),
		Role: domain.RoleAdmin, IsActive: false,
	}

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{"wrong password", "admin1", "wrong-password", domain.ErrInvalidCredentials},
		{"unknown user reports invalid credentials", "ghost", testGoodPassword, domain.ErrInvalidCredentials},
		{"empty password", "admin1", "", domain.ErrInvalidCredentials},
		{"officer role refused", "officer1", testGoodPassword, domain.ErrNotAdmin},
		{"deactivated account refused", "disabled1", testGoodPassword, domain.ErrAccountDisabled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := svc.Login(context.Background(), tt.username, tt.password); !errors.Is(err, tt.wantErr) {
				t.Errorf("Login() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
