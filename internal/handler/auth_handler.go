package handler

import (
	"errors"
	"net/http"
	"time"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresAt   string `json:"expires_at"`
}

type LoginResponse struct {
	User  UserResponse  `json:"user"`
	Token TokenResponse `json:"token"`
}

// /auth配下。tokenを持っていない状態で叩くので認証なし。
type AuthHandler struct {
	uc *usecase.AuthUsecase
}

// DI
func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/auth/register", h.register)
	e.POST("/auth/login", h.login)
}

func (h *AuthHandler) register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body.", nil)
	}

	user, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return writeAuthError(c, err)
	}

	return respondOK(c, "User registered successfully.", UserResponse{
		ID:    user.ID,
		Email: user.Email,
	})
}

func (h *AuthHandler) login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body.", nil)
	}

	out, err := h.uc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return writeAuthError(c, err)
	}

	return respondOK(c, "User logged in successfully.", LoginResponse{
		User: UserResponse{
			ID:    out.UserID,
			Email: out.Email,
		},
		Token: TokenResponse{
			AccessToken: out.AccessToken,
			TokenType:   "Bearer",
			ExpiresAt:   out.ExpiresAt.UTC().Format(time.RFC3339),
		},
	})
}

func writeAuthError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, usecase.ErrAuthValidation):
		return respondError(c, http.StatusBadRequest, msgValidationError, nil)
	case errors.Is(err, usecase.ErrEmailTaken):
		return respondError(c, http.StatusConflict, "Email already taken.", nil)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return respondError(c, http.StatusUnauthorized, "Invalid credentials.", nil)
	default:
		return respondError(c, http.StatusInternalServerError, msgInternalError, nil)
	}
}
