package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors the on-disk JSON layout. Secrets are accepted
// here even though [StructuredConfig] never serializes them back.
type StructuredJSONConfig struct {
	App struct {
		SecretKey                string `json:"secret_key"`
		Algorithm                string `json:"algorithm"`
		AccessTokenExpireMinutes int    `json:"access_token_expire_minutes"`
		PasswordHashCost         int    `json:"password_hash_cost"`
		LogLevel                 string `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			URI             string   `json:"uri"`
			User            string   `json:"user"`
			Password        string   `json:"password"`
			Host            string   `json:"host"`
			Port            string   `json:"port"`
			Name            string   `json:"name"`
			SSLMode         string   `json:"sslmode"`
			MaxOpenConns    int      `json:"max_open_conns"`
			MaxIdleConns    int      `json:"max_idle_conns"`
			ConnMaxLifetime Duration `json:"conn_max_lifetime"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			SecretKey:                jsonCfg.App.SecretKey,
			Algorithm:                jsonCfg.App.Algorithm,
			AccessTokenExpireMinutes: jsonCfg.App.AccessTokenExpireMinutes,
			PasswordHashCost:         jsonCfg.App.PasswordHashCost,
			LogLevel:                 jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				URI:             jsonCfg.Storage.DB.URI,
				User:            jsonCfg.Storage.DB.User,
				Password:        jsonCfg.Storage.DB.Password,
				Host:            jsonCfg.Storage.DB.Host,
				Port:            jsonCfg.Storage.DB.Port,
				Name:            jsonCfg.Storage.DB.Name,
				SSLMode:         jsonCfg.Storage.DB.SSLMode,
				MaxOpenConns:    jsonCfg.Storage.DB.MaxOpenConns,
				MaxIdleConns:    jsonCfg.Storage.DB.MaxIdleConns,
				ConnMaxLifetime: time.Duration(jsonCfg.Storage.DB.ConnMaxLifetime),
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
