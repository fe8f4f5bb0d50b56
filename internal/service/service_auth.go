package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-posts/internal/config"
	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/internal/store"
	"github.com/MKhiriev/go-posts/internal/utils"
	"github.com/MKhiriev/go-posts/internal/validators"
	"github.com/MKhiriev/go-posts/models"
	"golang.org/x/crypto/bcrypt"
)

const passwordTooLong = "ensure this value has at most 72 bytes"

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and resolving
// bearer tokens using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenService issues tokens on login and verifies them for CurrentUser.
	tokenService TokenService

	// hashCost is the bcrypt cost used for new password digests.
	hashCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and TokenService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, tokenService TokenService, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenService:   tokenService,
		hashCost:       cfg.PasswordHashCost,
		logger:         logger,
	}
}

// RegisterUser hashes the password and stores a new account.
//
// Returns the persisted user (with a server-assigned UserID) or a wrapped
// storage error, e.g. store.ErrEmailAlreadyExists when the email is taken.
func (a *authService) RegisterUser(ctx context.Context, input models.UserCreate) (models.User, error) {
	log := logger.FromContext(ctx)

	digest, err := utils.HashPassword(input.Password, a.hashCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return models.User{}, validators.NewFieldError("password", passwordTooLong)
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{Email: input.Email, Password: digest})
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("func", "*authService.RegisterUser").Int64("user_id", registeredUser.UserID).Msg("user registered")
	return registeredUser, nil
}

// Login authenticates credentials and issues an access token.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.AccessToken, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, credentials.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Info().Str("func", "*authService.Login").Msg("login for unknown email")
		return models.AccessToken{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.AccessToken{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.VerifyPassword(credentials.Password, foundUser.Password) {
		log.Info().Str("func", "*authService.Login").Int64("user_id", foundUser.UserID).Msg("wrong password")
		return models.AccessToken{}, ErrInvalidCredentials
	}

	token, err := a.tokenService.Issue(ctx, foundUser.UserID)
	if err != nil {
		return models.AccessToken{}, err
	}

	return models.NewAccessToken(token), nil
}

// GetUser returns the public view of a user.
func (a *authService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// CurrentUser verifies tokenString and loads the user it was issued for.
// A token whose user no longer exists is reported as ErrTokenIsInvalid.
func (a *authService) CurrentUser(ctx context.Context, tokenString string) (models.User, error) {
	claims, err := a.tokenService.Verify(ctx, tokenString)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.FindUserByID(ctx, claims.UserID)
	if errors.Is(err, store.ErrUserNotFound) {
		logger.FromContext(ctx).Warn().Str("func", "*authService.CurrentUser").Int64("user_id", claims.UserID).Msg("token of a deleted user")
		return models.User{}, ErrTokenIsInvalid
	}
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}
