// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/internal/service"
	"github.com/MKhiriev/go-posts/internal/store"
	"github.com/MKhiriev/go-posts/internal/utils"
	"github.com/prometheus/client_golang/prometheus"
)

type Handler struct {
	services *service.Services
	sessions store.SessionProvider

	traceIDs *utils.TraceIDGenerator
	metrics  *metrics

	logger *logger.Logger
}

// NewHandler builds the REST handler. Request metrics are registered on
// registry and exposed on /metrics.
func NewHandler(services *service.Services, sessions store.SessionProvider, registry *prometheus.Registry, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		sessions: sessions,
		traceIDs: utils.NewTraceIDGenerator(),
		metrics:  newMetrics(registry),
		logger:   logger,
	}
}
