package auth

import (
	"context"
	"strings"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/johnquangdev/meeting-notes-tracker/errors"
	"github.com/johnquangdev/meeting-notes-tracker/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes-tracker/internal/domain/repositories"
	"github.com/johnquangdev/meeting-notes-tracker/pkg/jwt"
)

// SignupInput is the input for Signup
type SignupInput struct {
	Email    string
	Password string
	Name     string
}

// LoginInput is the input for Login
type LoginInput struct {
	Email    string
	Password string
}

// TokenPair carries a freshly issued access/refresh token pair
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Service defines the authentication use case
type Service interface {
	// Signup registers a new user
	Signup(ctx context.Context, input SignupInput) (*entities.User, error)

	// Login verifies credentials and issues a token pair
	Login(ctx context.Context, input LoginInput) (*entities.User, *TokenPair, error)

	// Refresh exchanges a valid refresh token for a new token pair
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authService struct {
	userRepo   repositories.UserRepository
	jwtManager *jwt.Manager
	logger     *zap.Logger
}

// NewAuthService constructs a new auth service
func NewAuthService(userRepo repositories.UserRepository, jwtManager *jwt.Manager, logger *zap.Logger) Service {
	return &authService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		logger:     logger,
	}
}

// Signup registers a new user after validating the password policy
func (s *authService) Signup(ctx context.Context, input SignupInput) (*entities.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return nil, errors.ErrInvalidArgument("Email is required")
	}
	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, errors.ErrUserAlreadyExists(email)
	} else if err != entities.ErrUserNotFound {
		return nil, errors.ErrDBQueryFailed("find user", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.ErrInternal(err)
	}

	user := entities.NewUser(email, strings.TrimSpace(input.Name), string(hash))
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, errors.ErrDBQueryFailed("create user", err)
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID.String()))
	return user, nil
}

// Login verifies credentials and issues a token pair
func (s *authService) Login(ctx context.Context, input LoginInput) (*entities.User, *TokenPair, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if err == entities.ErrUserNotFound {
			return nil, nil, errors.ErrInvalidCredentials()
		}
		return nil, nil, errors.ErrDBQueryFailed("find user", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, nil, errors.ErrInvalidCredentials()
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("user logged in", zap.String("user_id", user.ID.String()))
	return user, pair, nil
}

// Refresh exchanges a valid refresh token for a new token pair
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errors.ErrInvalidToken()
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if err == entities.ErrUserNotFound {
			return nil, errors.ErrInvalidToken()
		}
		return nil, errors.ErrDBQueryFailed("find user", err)
	}

	return s.issueTokens(user)
}

func (s *authService) issueTokens(user *entities.User) (*TokenPair, error) {
	access, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, errors.ErrInternal(err)
	}
	refresh, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, errors.ErrInternal(err)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// validatePassword enforces the signup password policy: at least 8 characters
// with an uppercase letter, a lowercase letter and a digit.
func validatePassword(password string) error {
	if len(password) < 8 {
		return errors.ErrInvalidArgument("Password must be at least 8 characters")
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return errors.ErrInvalidArgument("Password must contain an uppercase letter, a lowercase letter and a digit")
	}
	return nil
}
