package service

import (
	"fmt"

	"github.com/MKhiriev/go-posts/internal/config"
	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/internal/store"
	"github.com/MKhiriev/go-posts/internal/validators"
)

type Services struct {
	AuthService  AuthService
	PostService  PostService
	TokenService TokenService
}

// NewServices wires the services to storages. Auth and post services are
// wrapped with input validation.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	tokenService, err := NewTokenService(cfg.App)
	if err != nil {
		return nil, fmt.Errorf("error creating token service: %w", err)
	}

	validator := validators.NewStructValidator()

	authService := NewAuthValidationService(validator).
		Wrap(NewAuthService(storages.UserRepository, tokenService, cfg.App, logger))
	postService := NewPostValidationService(validator).
		Wrap(NewPostService(storages.PostRepository, storages.Transactor, validator, logger))

	return &Services{
		AuthService:  authService,
		PostService:  postService,
		TokenService: tokenService,
	}, nil
}
