package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes-tracker/errors"
	authdto "github.com/johnquangdev/meeting-notes-tracker/internal/adapter/dto/auth"
	"github.com/johnquangdev/meeting-notes-tracker/internal/usecase/auth"
	"github.com/johnquangdev/meeting-notes-tracker/pkg/jwt"
)

// Auth handles authentication HTTP requests
type Auth struct {
	authService auth.Service
	jwtManager  *jwt.Manager
	logger      *zap.Logger
}

// NewAuth creates a new auth handler
func NewAuth(authService auth.Service, jwtManager *jwt.Manager, logger *zap.Logger) *Auth {
	return &Auth{
		authService: authService,
		jwtManager:  jwtManager,
		logger:      logger,
	}
}

// Signup registers a new user
// POST /v1/auth/signup
func (h *Auth) Signup(c echo.Context) error {
	ctx := c.Request().Context()

	var req authdto.SignupRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	user, err := h.authService.Signup(ctx, auth.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusCreated, authdto.NewUserResponse(user))
}

// Login verifies credentials and issues a token pair
// POST /v1/auth/login
func (h *Auth) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req authdto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	user, pair, err := h.authService.Login(ctx, auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	expiresIn := int(h.jwtManager.GetAccessExpiry().Seconds())
	setAuthCookie(c, "access_token", pair.AccessToken, expiresIn)

	return HandleSuccess(h.logger, c, http.StatusOK, &authdto.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    expiresIn,
		TokenType:    "Bearer",
		User:         authdto.NewUserResponse(user),
	})
}

// Refresh exchanges a refresh token for a new token pair
// POST /v1/auth/refresh
func (h *Auth) Refresh(c echo.Context) error {
	ctx := c.Request().Context()

	var req authdto.RefreshTokenRequest
	if err := c.Bind(&req); err != nil || req.RefreshToken == "" {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Missing refresh token"))
	}

	pair, err := h.authService.Refresh(ctx, req.RefreshToken)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	expiresIn := int(h.jwtManager.GetAccessExpiry().Seconds())
	setAuthCookie(c, "access_token", pair.AccessToken, expiresIn)

	return HandleSuccess(h.logger, c, http.StatusOK, &authdto.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    expiresIn,
		TokenType:    "Bearer",
	})
}
