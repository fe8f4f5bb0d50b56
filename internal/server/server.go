// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-posts/internal/config"
	"github.com/MKhiriev/go-posts/internal/handler"
	"github.com/MKhiriev/go-posts/internal/logger"
)

type server struct {
	httpServer      *httpServer
	shutdownTimeout time.Duration
	logger          *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := new(server)

	if cfg.HTTPAddress != "" && handlers != nil && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}

	if servers.httpServer == nil {
		return nil, errNoServersAreCreated
	}

	servers.shutdownTimeout = cfg.ShutdownTimeout
	servers.logger = logger

	return servers, nil
}

// RunServer serves until ctx is cancelled, typically by a termination
// signal, and then shuts down gracefully. A serving failure is returned
// immediately.
func (s *server) RunServer(ctx context.Context) error {
	// check if any server was created
	if s.httpServer == nil {
		return errNoServersToRun
	}

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info().Msg("Launching HTTP server")
		serveErr <- s.httpServer.RunServer(ctx)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
	defer cancel()

	err := errors.Join(s.Shutdown(shutdownCtx), <-serveErr)
	if err == nil {
		s.logger.Info().Msg("server Shutdown gracefully")
	}

	return err
}

func (s *server) Shutdown(ctx context.Context) error {
	// finish HTTP server
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
