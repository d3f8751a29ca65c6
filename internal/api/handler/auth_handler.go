package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/nagarpalika/complaint-system/internal/api/metrics"
	"github.com/nagarpalika/complaint-system/internal/core/domain"
	"github.com/nagarpalika/complaint-system/internal/core/ports"
)

// RegisterRequest is the admin account creation payload.
type RegisterRequest struct {
	Username           string `json:"username" validate:"required"`
	Email              string `json:"email" validate:"omitempty,email"`
	Password           string `json:"password" validate:"required"`
	RegistrationSecret string `json:"registration_secret" validate:"required"`
}

// LoginRequest is the admin login payload.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role"`
	LastLogin string `json:"last_login,omitempty"`
}

// LoginResponse carries the bearer token and the authenticated user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// AuthHandler exposes admin registration and login.
type AuthHandler struct {
	service ports.AuthService
	logger  zerolog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(service ports.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{service: service, logger: logger}
}

// Register godoc
// @Summary      Register an admin account
// @Description  Creates an admin account; requires the shared registration secret
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        account  body      RegisterRequest  true  "Registration payload"
// @Success      201      {object}  successResponse{data=UserResponse}
// @Failure      400      {object}  errorResponse
// @Failure      403      {object}  errorResponse
// @Failure      409      {object}  errorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.service.Register(c.Request().Context(), ports.RegisterInput{
		Username:           req.Username,
		Email:              req.Email,
		Password:           req.Password,
		RegistrationSecret: req.RegistrationSecret,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, successResponse{
		Success: true,
		Message: "admin account created",
		Data:    toUserResponse(user),
	})
}

// Login godoc
// @Summary      Log in
// @Description  Authenticates an active admin account and returns a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      LoginRequest  true  "Login payload"
// @Success      200          {object}  successResponse{data=LoginResponse}
// @Failure      401          {object}  errorResponse
// @Failure      403          {object}  errorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, user, err := h.service.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, successResponse{
		Success: true,
		Message: "login successful",
		Data:    LoginResponse{Token: token, User: toUserResponse(user)},
	})
}

// Me godoc
// @Summary      Current user
// @Description  Returns the claims of the presented bearer token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  successResponse{data=UserResponse}
// @Failure      401  {object}  errorResponse
// @Security     BearerAuth
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	id, _ := c.Get("id").(string)
	username, _ := c.Get("username").(string)
	email, _ := c.Get("email").(string)
	role, _ := c.Get("role").(string)

	return c.JSON(http.StatusOK, successResponse{
		Success: true,
		Data: UserResponse{
			ID:       id,
			Username: username,
			Email:    email,
			Role:     role,
		},
	})
}

func toUserResponse(user *domain.User) UserResponse {
	resp := UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     string(user.Role),
	}
	if user.LastLogin != nil {
		resp.LastLogin = user.LastLogin.UTC().Format(time.RFC3339)
	}
	return resp
}
