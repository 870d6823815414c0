package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk layout of a JSON or YAML config file.
type fileConfig struct {
	App struct {
		PasswordHashKey string   `json:"password_hash_key" yaml:"password_hash_key"`
		TokenSignKey    string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer     string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration   Duration `json:"token_duration" yaml:"token_duration"`
		HashKey         string   `json:"hash_key" yaml:"hash_key"`
		TransportKey    string   `json:"transport_key" yaml:"transport_key"`
		Version         string   `json:"version" yaml:"version"`
	} `json:"app" yaml:"app"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db" yaml:"db"`
		Local struct {
			Path string `json:"path" yaml:"path"`
		} `json:"local" yaml:"local"`
	} `json:"storage" yaml:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		GRPCAddress    string   `json:"grpc_address" yaml:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"server" yaml:"server"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter" yaml:"adapter"`

	Workers struct {
		LockCheckInterval Duration `json:"lock_check_interval" yaml:"lock_check_interval"`
	} `json:"workers" yaml:"workers"`

	OTP struct {
		MailAPIURL  string   `json:"mail_api_url" yaml:"mail_api_url"`
		TTL         Duration `json:"ttl" yaml:"ttl"`
		MaxAttempts int      `json:"max_attempts" yaml:"max_attempts"`
	} `json:"otp" yaml:"otp"`
}

// parseFile reads a config file. Files ending in .yaml or .yml are decoded as
// YAML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fc.toStructured(), nil
}

func (fc fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			PasswordHashKey: fc.App.PasswordHashKey,
			TokenSignKey:    fc.App.TokenSignKey,
			TokenIssuer:     fc.App.TokenIssuer,
			TokenDuration:   time.Duration(fc.App.TokenDuration),
			HashKey:         fc.App.HashKey,
			TransportKey:    fc.App.TransportKey,
			Version:         fc.App.Version,
		},
		Storage: Storage{
			DB:    DB{DSN: fc.Storage.DB.DSN},
			Local: Local{Path: fc.Storage.Local.Path},
		},
		Server: Server{
			HTTPAddress:    fc.Server.HTTPAddress,
			GRPCAddress:    fc.Server.GRPCAddress,
			RequestTimeout: time.Duration(fc.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    fc.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(fc.Adapter.RequestTimeout),
		},
		Workers: Workers{
			LockCheckInterval: time.Duration(fc.Workers.LockCheckInterval),
		},
		OTP: OTP{
			MailAPIURL:  fc.OTP.MailAPIURL,
			TTL:         time.Duration(fc.OTP.TTL),
			MaxAttempts: fc.OTP.MaxAttempts,
		},
	}
}

// Duration is a wrapper around time.Duration that decodes strings like "1h"
// and "30s" from JSON and YAML. Bare numbers are nanoseconds.
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
	case nil:
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!int" {
		var n int64
		if err := value.Decode(&n); err != nil {
			return err
		}
		*d = Duration(time.Duration(n))
		return nil
	}

	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}
