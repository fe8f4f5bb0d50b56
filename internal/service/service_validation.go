package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-posts/internal/validators"
	"github.com/MKhiriev/go-posts/models"
)

// idMustBePositive is the message for path ids below 1.
const idMustBePositive = "ensure this value is greater than 0"

// PostValidationService rejects malformed input before it reaches the
// wrapped PostService. The update payload is left to the PostService, which
// checks it only once the post is known to exist and belong to the actor.
type PostValidationService struct {
	inner     PostService
	validator validators.Validator
}

func NewPostValidationService(validator validators.Validator) PostServiceWrapper {
	return &PostValidationService{
		validator: validator,
	}
}

func (v *PostValidationService) ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	if err := v.validator.Validate(ctx, filter); err != nil {
		return nil, fmt.Errorf("invalid post filter: %w", err)
	}

	return v.inner.ListPosts(ctx, filter)
}

func (v *PostValidationService) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	if err := validatePostID(postID); err != nil {
		return models.Post{}, err
	}

	return v.inner.GetPost(ctx, postID)
}

func (v *PostValidationService) CreatePost(ctx context.Context, owner models.User, input models.PostInput) (models.Post, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Post{}, fmt.Errorf("invalid post: %w", err)
	}

	return v.inner.CreatePost(ctx, owner, input)
}

func (v *PostValidationService) UpdatePost(ctx context.Context, actor models.User, postID int64, input models.PostInput) (models.Post, error) {
	if err := validatePostID(postID); err != nil {
		return models.Post{}, err
	}

	return v.inner.UpdatePost(ctx, actor, postID, input)
}

func (v *PostValidationService) DeletePost(ctx context.Context, actor models.User, postID int64) error {
	if err := validatePostID(postID); err != nil {
		return err
	}

	return v.inner.DeletePost(ctx, actor, postID)
}

func (v *PostValidationService) Wrap(wrapped PostService) PostService {
	v.inner = wrapped
	return v
}

func validatePostID(postID int64) error {
	if postID < 1 {
		return validators.NewFieldError("id", idMustBePositive)
	}
	return nil
}

// AuthValidationService checks registration and login payloads before they
// reach the wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService(validator validators.Validator) AuthServiceWrapper {
	return &AuthValidationService{
		validator: validator,
	}
}

func (v *AuthValidationService) RegisterUser(ctx context.Context, input models.UserCreate) (models.User, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.User{}, fmt.Errorf("invalid user: %w", err)
	}

	return v.inner.RegisterUser(ctx, input)
}

func (v *AuthValidationService) Login(ctx context.Context, credentials models.Credentials) (models.AccessToken, error) {
	if err := v.validator.Validate(ctx, credentials); err != nil {
		return models.AccessToken{}, fmt.Errorf("invalid credentials form: %w", err)
	}

	return v.inner.Login(ctx, credentials)
}

func (v *AuthValidationService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	if userID < 1 {
		return models.User{}, validators.NewFieldError("id", idMustBePositive)
	}

	return v.inner.GetUser(ctx, userID)
}

func (v *AuthValidationService) CurrentUser(ctx context.Context, tokenString string) (models.User, error) {
	return v.inner.CurrentUser(ctx, tokenString)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}
