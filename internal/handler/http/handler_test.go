// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/internal/mock"
	"github.com/MKhiriev/go-posts/internal/service"
	"github.com/MKhiriev/go-posts/internal/utils"
	"github.com/MKhiriev/go-posts/models"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const goodToken = "good-token"

var (
	testCreatedAt = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	alice         = models.User{UserID: 1, Email: "alice@example.com", CreatedAt: testCreatedAt}
	bob           = models.User{UserID: 2, Email: "bob@example.com", CreatedAt: testCreatedAt}
)

// newTestHandler creates a Handler with a nop logger and no services; it is
// enough for middleware that does not reach the service layer.
func newTestHandler() *Handler {
	return &Handler{
		logger:   logger.Nop(),
		traceIDs: utils.NewTraceIDGenerator(),
		metrics:  newMetrics(prometheus.NewRegistry()),
	}
}

// testAPI is a fully wired router over gomock services and a sqlmock-backed
// session provider.
type testAPI struct {
	router   *chi.Mux
	handler  *Handler
	auth     *mock.MockAuthService
	posts    *mock.MockPostService
	sessions *mock.MockSessionProvider
	registry *prometheus.Registry
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	ctrl := gomock.NewController(t)
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	api := &testAPI{
		auth:     mock.NewMockAuthService(ctrl),
		posts:    mock.NewMockPostService(ctrl),
		sessions: mock.NewMockSessionProvider(ctrl),
		registry: prometheus.NewRegistry(),
	}
	api.sessions.EXPECT().Session(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (*sql.Conn, error) { return db.Conn(ctx) }).
		AnyTimes()

	services := &service.Services{AuthService: api.auth, PostService: api.posts}
	api.handler = NewHandler(services, api.sessions, api.registry, logger.Nop())
	api.router = api.handler.Init()

	return api
}

// expectAuthenticated makes goodToken resolve to user.
func (a *testAPI) expectAuthenticated(user models.User) {
	a.auth.EXPECT().CurrentUser(gomock.Any(), goodToken).Return(user, nil)
}

func (a *testAPI) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, req)
	return rr
}

func withBearer(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer "+goodToken)
	return req
}
