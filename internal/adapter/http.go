// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-posts/internal/config"
	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/models"
	"github.com/go-resty/resty/v2"
)

type httpPostsClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPPostsClient constructs an HTTP/REST implementation of
// [PostsClient]. It normalises and validates the base URL from
// cfg.HTTPAddress and configures the underlying resty client with the
// resolved base URL and request timeout. A token in cfg is installed right
// away.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPPostsClient(cfg config.ClientAdapter, logger *logger.Logger) (PostsClient, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	c := &httpPostsClient{client: client, logger: logger}
	c.SetToken(cfg.Token)

	return c, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [PostsClient]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpPostsClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [PostsClient].
func (h *httpPostsClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [PostsClient]. It POSTs the registration payload to
// POST /users/.
func (h *httpPostsClient) Register(ctx context.Context, input models.UserCreate) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		SetResult(&user).
		Post("/users/")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Login implements [PostsClient]. Credentials are sent as an OAuth2
// password form to POST /login and the returned token is stored.
func (h *httpPostsClient) Login(ctx context.Context, credentials models.Credentials) (models.AccessToken, error) {
	var token models.AccessToken

	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username": credentials.Username,
			"password": credentials.Password,
		}).
		SetResult(&token).
		Post("/login")
	if err != nil {
		return models.AccessToken{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AccessToken{}, err
	}

	h.SetToken(token.AccessToken)
	h.logger.Debug().Msg("logged in")

	return token, nil
}

func (h *httpPostsClient) GetUser(ctx context.Context, userID int64) (models.User, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	resp, err := req.
		SetPathParam("id", strconv.FormatInt(userID, 10)).
		SetResult(&user).
		Get("/users/{id}")
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// ListPosts implements [PostsClient]. Zero limit and skip are left to the
// server defaults.
func (h *httpPostsClient) ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	if filter.Limit > 0 {
		req.SetQueryParam("limit", strconv.FormatUint(filter.Limit, 10))
	}
	if filter.Skip > 0 {
		req.SetQueryParam("skip", strconv.FormatUint(filter.Skip, 10))
	}
	if filter.Search != "" {
		req.SetQueryParam("search", filter.Search)
	}

	posts := make([]models.Post, 0)
	resp, err := req.SetResult(&posts).Get("/posts/")
	if err != nil {
		return nil, fmt.Errorf("list posts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return posts, nil
}

func (h *httpPostsClient) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Post{}, err
	}

	var post models.Post
	resp, err := req.
		SetPathParam("id", strconv.FormatInt(postID, 10)).
		SetResult(&post).
		Get("/posts/{id}")
	if err != nil {
		return models.Post{}, fmt.Errorf("get post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return post, nil
}

func (h *httpPostsClient) CreatePost(ctx context.Context, input models.PostInput) (models.Post, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Post{}, err
	}

	var post models.Post
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		SetResult(&post).
		Post("/posts/")
	if err != nil {
		return models.Post{}, fmt.Errorf("create post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return post, nil
}

func (h *httpPostsClient) UpdatePost(ctx context.Context, postID int64, input models.PostInput) (models.Post, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Post{}, err
	}

	var post models.Post
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(postID, 10)).
		SetBody(input).
		SetResult(&post).
		Put("/posts/{id}")
	if err != nil {
		return models.Post{}, fmt.Errorf("update post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return post, nil
}

func (h *httpPostsClient) DeletePost(ctx context.Context, postID int64) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParam("id", strconv.FormatInt(postID, 10)).
		Delete("/posts/{id}")
	if err != nil {
		return fmt.Errorf("delete post request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpPostsClient) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNotLoggedIn
	}

	return h.client.R().SetContext(ctx).SetAuthToken(token), nil
}
