// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"dario.cat/mergo"
)

const (
	DefaultClientServerURL      = "http://localhost:8000"
	DefaultClientRequestTimeout = 15 * time.Second
)

// ErrInvalidClientConfigs is returned when the client configuration cannot
// be used to reach a server.
var ErrInvalidClientConfigs = errors.New("invalid client configs")

// ClientConfig configures the command-line client.
type ClientConfig struct {
	Adapter ClientAdapter
	// LogLevel is the minimal level of the client's own log output.
	LogLevel string `env:"POSTS_CLIENT_LOG_LEVEL"`
}

// ClientAdapter configures how the client talks to the server.
type ClientAdapter struct {
	// HTTPAddress is the server base URL. A bare host:port is accepted and
	// treated as http.
	HTTPAddress    string        `env:"POSTS_SERVER_URL"`
	RequestTimeout time.Duration `env:"POSTS_REQUEST_TIMEOUT"`
	// Token is a previously issued access token.
	Token string `env:"POSTS_TOKEN"`
}

// GetClientConfig reads the client configuration from the environment and
// then from args, flags overriding variables. It returns the arguments left
// after the flags, which name the command to run.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	cfg := &ClientConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, nil, err
	}

	flagCfg, rest, err := parseClientFlags(args)
	if err != nil {
		return nil, nil, err
	}
	if err = mergo.Merge(cfg, flagCfg, mergo.WithOverride); err != nil {
		return nil, nil, fmt.Errorf("error merging configs: %w", err)
	}

	setDefault(&cfg.Adapter.HTTPAddress, DefaultClientServerURL)
	setDefault(&cfg.Adapter.RequestTimeout, DefaultClientRequestTimeout)
	setDefault(&cfg.LogLevel, "warn")

	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" || cfg.Adapter.RequestTimeout < 0 {
		return nil, nil, ErrInvalidClientConfigs
	}

	return cfg, rest, nil
}

// parseClientFlags parses the client flags from args.
//
// Flags:
//
//	-s server base URL
//	-t request timeout (e.g., "15s")
//	-token access token
//	-log-level minimal log level
func parseClientFlags(args []string) (*ClientConfig, []string, error) {
	cfg := &ClientConfig{}

	fs := flag.NewFlagSet("go-posts-client", flag.ContinueOnError)
	fs.StringVar(&cfg.Adapter.HTTPAddress, "s", "", "server base URL")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "t", 0, "request timeout")
	fs.StringVar(&cfg.Adapter.Token, "token", "", "access token")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "minimal log level")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing client flags: %w", err)
	}

	return cfg, fs.Args(), nil
}
