package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "localhost with port",
			addr:     NetAddress{Host: "localhost", Port: 8080},
			expected: "localhost:8080",
		},
		{
			name:     "IP address with port",
			addr:     NetAddress{Host: "127.0.0.1", Port: 9090},
			expected: "127.0.0.1:9090",
		},
		{
			name:     "only port no host",
			addr:     NetAddress{Host: "", Port: 8000},
			expected: ":8000",
		},
		{
			name:     "IPv6 host",
			addr:     NetAddress{Host: "::1", Port: 8000},
			expected: "[::1]:8000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		expectedHost string
		expectedPort int
	}{
		{name: "localhost", input: "localhost:8000", expectedHost: "localhost", expectedPort: 8000},
		{name: "IPv4", input: "0.0.0.0:8080", expectedHost: "0.0.0.0", expectedPort: 8080},
		{name: "IPv6", input: "[::1]:8080", expectedHost: "::1", expectedPort: 8080},
		{name: "all interfaces", input: ":9000", expectedHost: "", expectedPort: 9000},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "non-numeric port", input: "localhost:http", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "port too large", input: "localhost:70000", expectError: true},
		{name: "hostname", input: "example.com:8000", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)

			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedHost, addr.Host)
			assert.Equal(t, tt.expectedPort, addr.Port)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	args := []string{
		"-a", "127.0.0.1:8081",
		"-d", "postgres://u:p@db:5432/posts",
		"-config", "/etc/posts.json",
		"-secret-key", "flag-secret",
		"-algorithm", "HS384",
		"-token-expire-minutes", "15",
		"-hash-cost", "11",
		"-request-timeout", "20s",
		"-shutdown-timeout", "3s",
		"-log-level", "warn",
	}

	cfg, err := parseFlags(args)

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://u:p@db:5432/posts", cfg.Storage.DB.URI)
	assert.Equal(t, "/etc/posts.json", cfg.JSONFilePath)
	assert.Equal(t, "flag-secret", cfg.App.SecretKey)
	assert.Equal(t, "HS384", cfg.App.Algorithm)
	assert.Equal(t, 15, cfg.App.AccessTokenExpireMinutes)
	assert.Equal(t, 11, cfg.App.PasswordHashCost)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "warn", cfg.App.LogLevel)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, err := parseFlags(nil)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := parseFlags([]string{"-c", "cfg.json"})

	require.NoError(t, err)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"-unknown"}},
		{name: "bad address", args: []string{"-a", "nowhere"}},
		{name: "bad duration", args: []string{"-request-timeout", "soon"}},
		{name: "bad int", args: []string{"-token-expire-minutes", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)

			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "error parsing flags")
		})
	}
}
