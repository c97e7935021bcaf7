package service

import (
	"errors"
	"time"

	"ratewave/internal/models"
	"ratewave/internal/repository"
	"ratewave/internal/utils"
	"ratewave/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrMissingFields      = errors.New("all fields are required")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already taken")
	ErrInvalidCredentials = errors.New("invalid username/email or password")
)

type AuthService struct {
	userRepo      *repository.UserRepository
	sessionSecret string
	sessionExpiry time.Duration
	environment   string
}

func NewAuthService(userRepo *repository.UserRepository, sessionSecret string, sessionExpiry time.Duration, environment string) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		sessionSecret: sessionSecret,
		sessionExpiry: sessionExpiry,
		environment:   environment,
	}
}

// IsProduction returns true if running in production environment
func (s *AuthService) IsProduction() bool {
	return s.environment == "production"
}

// SessionSecret exposes the signing key for the session middleware.
func (s *AuthService) SessionSecret() string {
	return s.sessionSecret
}

// Register creates a user account and returns it along with a session token.
// Signup never succeeds with an empty field, mismatched passwords, or a
// username/email that is already taken.
func (s *AuthService) Register(username, email, password, confirm string) (*models.User, string, error) {
	logger.Log.Debug("Processing user registration",
		zap.String("username", username),
		zap.String("email", email),
	)

	// 1. Validate input
	if username == "" || email == "" || password == "" || confirm == "" {
		return nil, "", ErrMissingFields
	}
	if password != confirm {
		return nil, "", ErrPasswordMismatch
	}

	// 2. Check for an existing username
	existingUser, err := s.userRepo.GetUserByUsername(username)
	if err != nil {
		logger.Log.Error("Failed to check username existence",
			zap.String("username", username),
			zap.Error(err),
		)
		return nil, "", err
	}
	if existingUser != nil {
		logger.Log.Warn("Username already exists",
			zap.String("username", username),
		)
		return nil, "", ErrUsernameTaken
	}

	// 3. Check for an existing email
	existingUser, err = s.userRepo.GetUserByEmail(email)
	if err != nil {
		logger.Log.Error("Failed to check email existence",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, "", err
	}
	if existingUser != nil {
		logger.Log.Warn("Email already exists",
			zap.String("email", email),
		)
		return nil, "", ErrEmailTaken
	}

	// 4. Hash password (Argon2id)
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		logger.Log.Error("Failed to hash password", zap.Error(err))
		return nil, "", err
	}

	// 5. Create user
	user := &models.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
	}

	if err := s.userRepo.CreateUser(user); err != nil {
		logger.Log.Error("Failed to create user in database",
			zap.String("username", username),
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, "", err
	}

	// 6. Establish session
	token, err := utils.GenerateSessionToken(user, s.sessionSecret, s.sessionExpiry)
	if err != nil {
		logger.Log.Error("Failed to generate session token",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
		return nil, "", err
	}

	logger.Log.Info("User registered successfully",
		zap.String("user_id", user.ID.String()),
		zap.String("username", username),
	)

	return user, token, nil
}

// Login authenticates by username or email and returns a session token.
func (s *AuthService) Login(identifier, password string) (*models.User, string, error) {
	logger.Log.Debug("Processing user login",
		zap.String("identifier", identifier),
	)

	// 1. Look up by username or email
	user, err := s.userRepo.GetUserByIdentifier(identifier)
	if err != nil {
		logger.Log.Error("Failed to look up user",
			zap.String("identifier", identifier),
			zap.Error(err),
		)
		return nil, "", err
	}
	if user == nil {
		logger.Log.Warn("Login failed: user not found",
			zap.String("identifier", identifier),
		)
		return nil, "", ErrInvalidCredentials
	}

	// 2. Verify password
	valid, err := utils.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		logger.Log.Error("Failed to verify password",
			zap.String("identifier", identifier),
			zap.Error(err),
		)
		return nil, "", err
	}
	if !valid {
		logger.Log.Warn("Login failed: invalid password",
			zap.String("user_id", user.ID.String()),
		)
		return nil, "", ErrInvalidCredentials
	}

	// 3. Establish session
	token, err := utils.GenerateSessionToken(user, s.sessionSecret, s.sessionExpiry)
	if err != nil {
		logger.Log.Error("Failed to generate session token",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
		return nil, "", err
	}

	logger.Log.Info("User logged in successfully",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
	)

	return user, token, nil
}

// GetUserByID loads a user fresh from the datastore. Handlers call this per
// request instead of trusting anything cached in the session token.
func (s *AuthService) GetUserByID(id uuid.UUID) (*models.User, error) {
	return s.userRepo.GetUserByID(id)
}
