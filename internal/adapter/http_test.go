// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-posts/internal/config"
	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient creates an httpPostsClient pointed at the test server.
func newTestClient(t *testing.T, serverURL string) *httpPostsClient {
	t.Helper()

	c, err := NewHTTPPostsClient(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return c.(*httpPostsClient)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	assert.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8000", want: "http://localhost:8000"},
		{raw: "https://api.example.com/", want: "https://api.example.com"},
		{raw: "  ", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users/", r.URL.Path)

		var input models.UserCreate
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		assert.Equal(t, "alice@example.com", input.Email)

		writeJSON(t, w, http.StatusCreated, models.User{UserID: 1, Email: input.Email})
	}))
	defer srv.Close()

	got, err := newTestClient(t, srv.URL).Register(context.Background(), models.UserCreate{Email: "alice@example.com", Password: "s3cret-pass"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.UserID)
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusConflict, models.ErrorResponse{Detail: "Email already registered"})
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).Register(context.Background(), models.UserCreate{Email: "alice@example.com"})

	require.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "Email already registered")
}

func TestLogin_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/login", r.URL.Path)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "alice@example.com", r.PostForm.Get("username"))
		assert.Equal(t, "s3cret-pass", r.PostForm.Get("password"))

		writeJSON(t, w, http.StatusOK, models.AccessToken{AccessToken: "abc.def.ghi", TokenType: "bearer"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	token, err := c.Login(context.Background(), models.Credentials{Username: "alice@example.com", Password: "s3cret-pass"})

	require.NoError(t, err)
	assert.Equal(t, "bearer", token.TokenType)
	assert.Equal(t, "abc.def.ghi", c.Token())
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusForbidden, models.ErrorResponse{Detail: "Invalid Credentials"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Login(context.Background(), models.Credentials{Username: "x", Password: "y"})

	require.ErrorIs(t, err, ErrForbidden)
	assert.Empty(t, c.Token())
}

func TestAuthenticatedCalls_RequireToken(t *testing.T) {
	c := newTestClient(t, "http://127.0.0.1:1")
	ctx := context.Background()

	_, err := c.ListPosts(ctx, models.PostFilter{})
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	_, err = c.GetPost(ctx, 1)
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	err = c.DeletePost(ctx, 1)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestListPosts_SendsFilterAndToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "/posts/", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		assert.Equal(t, "", r.URL.Query().Get("skip"))
		assert.Equal(t, "go lang", r.URL.Query().Get("search"))

		writeJSON(t, w, http.StatusOK, []models.Post{{ID: 1, Title: "go lang"}, {ID: 2, Title: "go lang 2"}})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken("tok")

	posts, err := c.ListPosts(context.Background(), models.PostFilter{Limit: 5, Search: "go lang"})

	require.NoError(t, err)
	assert.Len(t, posts, 2)
}

func TestGetPost_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/posts/9", r.URL.Path)
		writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Detail: "Post with id 9 not found"})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken("tok")

	_, err := c.GetPost(context.Background(), 9)

	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "Post with id 9 not found")
}

func TestCreateAndUpdatePost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var input models.PostInput
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&input))

		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/posts/":
			writeJSON(t, w, http.StatusCreated, models.Post{ID: 3, Title: input.Title, Published: input.IsPublished()})
		case r.Method == http.MethodPut && r.URL.Path == "/posts/3":
			writeJSON(t, w, http.StatusAccepted, models.Post{ID: 3, Title: input.Title, Published: input.IsPublished()})
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken("tok")
	ctx := context.Background()

	created, err := c.CreatePost(ctx, models.PostInput{Title: "first", Content: "body"})
	require.NoError(t, err)
	assert.True(t, created.Published)

	unpublished := false
	updated, err := c.UpdatePost(ctx, created.ID, models.PostInput{Title: "second", Content: "body", Published: &unpublished})
	require.NoError(t, err)
	assert.Equal(t, "second", updated.Title)
	assert.False(t, updated.Published)
}

func TestDeletePost(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"deleted", http.StatusNoContent, nil},
		{"not the owner", http.StatusForbidden, ErrForbidden},
		{"token expired", http.StatusUnauthorized, ErrUnauthorized},
		{"server failure", http.StatusInternalServerError, ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodDelete, r.Method)
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			c := newTestClient(t, srv.URL)
			c.SetToken("tok")

			err := c.DeletePost(context.Background(), 4)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMapHTTPError_ValidationDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnprocessableEntity, models.ErrorResponse{Detail: []models.FieldError{
			{Field: "title", Message: "field required"},
		}})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken("tok")

	_, err := c.CreatePost(context.Background(), models.PostInput{})

	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "title: field required")
}
