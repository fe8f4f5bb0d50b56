package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-posts/internal/mock"
	"github.com/MKhiriev/go-posts/internal/service"
	"github.com/MKhiriev/go-posts/internal/validators"
	"github.com/MKhiriev/go-posts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPostValidationService_RejectsBeforeInner(t *testing.T) {
	ctrl := gomock.NewController(t)
	// no expectations: any call on inner fails the test
	inner := mock.NewMockPostService(ctrl)
	svc := service.NewPostValidationService(validators.NewStructValidator()).Wrap(inner)
	ctx := context.Background()
	user := models.User{UserID: 1}

	_, err := svc.ListPosts(ctx, models.PostFilter{Limit: 0})
	assert.ErrorIs(t, err, validators.ErrValidation)

	_, err = svc.ListPosts(ctx, models.PostFilter{Limit: 101})
	assert.ErrorIs(t, err, validators.ErrValidation)

	_, err = svc.GetPost(ctx, 0)
	assert.ErrorIs(t, err, validators.ErrValidation)

	_, err = svc.CreatePost(ctx, user, models.PostInput{Content: "c"})
	assert.ErrorIs(t, err, validators.ErrValidation)

	_, err = svc.UpdatePost(ctx, user, -1, models.PostInput{Title: "t", Content: "c"})
	assert.ErrorIs(t, err, validators.ErrValidation)

	err = svc.DeletePost(ctx, user, 0)
	assert.ErrorIs(t, err, validators.ErrValidation)
}

func TestPostValidationService_PassesValidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockPostService(ctrl)
	svc := service.NewPostValidationService(validators.NewStructValidator()).Wrap(inner)
	ctx := context.Background()
	user := models.User{UserID: 1}
	input := models.PostInput{Title: "t", Content: "c"}

	inner.EXPECT().ListPosts(ctx, models.NewPostFilter()).Return([]models.Post{}, nil)
	inner.EXPECT().GetPost(ctx, int64(1)).Return(models.Post{ID: 1}, nil)
	inner.EXPECT().CreatePost(ctx, user, input).Return(models.Post{ID: 2}, nil)
	inner.EXPECT().UpdatePost(ctx, user, int64(2), input).Return(models.Post{ID: 2}, nil)
	inner.EXPECT().DeletePost(ctx, user, int64(2)).Return(nil)

	_, err := svc.ListPosts(ctx, models.NewPostFilter())
	require.NoError(t, err)
	_, err = svc.GetPost(ctx, 1)
	require.NoError(t, err)
	_, err = svc.CreatePost(ctx, user, input)
	require.NoError(t, err)
	_, err = svc.UpdatePost(ctx, user, 2, input)
	require.NoError(t, err)
	require.NoError(t, svc.DeletePost(ctx, user, 2))
}

func TestPostValidationService_UpdatePassesBodyThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockPostService(ctrl)
	svc := service.NewPostValidationService(validators.NewStructValidator()).Wrap(inner)
	ctx := context.Background()
	user := models.User{UserID: 1}
	input := models.PostInput{Title: strings.Repeat("x", 300), Content: "c"}

	inner.EXPECT().UpdatePost(ctx, user, int64(1), input).Return(models.Post{}, service.ErrForbidden)

	_, err := svc.UpdatePost(ctx, user, 1, input)

	assert.ErrorIs(t, err, service.ErrForbidden)
}

func TestAuthValidationService(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockAuthService(ctrl)
	svc := service.NewAuthValidationService(validators.NewStructValidator()).Wrap(inner)
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, models.UserCreate{Email: "nope", Password: "password1"})
	assert.ErrorIs(t, err, validators.ErrValidation)

	_, err = svc.Login(ctx, models.Credentials{Username: "a@example.com"})
	assert.ErrorIs(t, err, validators.ErrValidation)

	_, err = svc.GetUser(ctx, 0)
	assert.ErrorIs(t, err, validators.ErrValidation)

	valid := models.UserCreate{Email: "a@example.com", Password: "password1"}
	inner.EXPECT().RegisterUser(ctx, valid).Return(models.User{UserID: 1}, nil)
	inner.EXPECT().CurrentUser(ctx, "tok").Return(models.User{UserID: 1}, nil)

	_, err = svc.RegisterUser(ctx, valid)
	require.NoError(t, err)
	_, err = svc.CurrentUser(ctx, "tok")
	require.NoError(t, err)
}
