package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

var errBadDuration = errors.New("duration must be a string like \"30s\" or integer nanoseconds")

type fileConfig struct {
	App     fileApp     `json:"app"`
	Storage fileStorage `json:"storage"`
	Server  fileServer  `json:"server"`
	Adapter fileAdapter `json:"adapter"`
}

type fileApp struct {
	TokenSignKey     string   `json:"token_sign_key"`
	TokenIssuer      string   `json:"token_issuer"`
	TokenDuration    Duration `json:"token_duration"`
	PasswordHashCost int      `json:"password_hash_cost"`
	Version          string   `json:"version"`
}

type fileStorage struct {
	DB struct {
		DSN string `json:"dsn"`
	} `json:"db"`
}

type fileServer struct {
	HTTPAddress    string   `json:"http_address"`
	GRPCAddress    string   `json:"grpc_address"`
	RequestTimeout Duration `json:"request_timeout"`
	BasePath       string   `json:"base_path"`
}

type fileAdapter struct {
	HTTPAddress    string   `json:"http_address"`
	RequestTimeout Duration `json:"request_timeout"`
}

func (f fileConfig) structured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:     f.App.TokenSignKey,
			TokenIssuer:      f.App.TokenIssuer,
			TokenDuration:    f.App.TokenDuration.Std(),
			PasswordHashCost: f.App.PasswordHashCost,
			Version:          f.App.Version,
		},
		Storage: Storage{DB: DB{DSN: f.Storage.DB.DSN}},
		Server: Server{
			HTTPAddress:    f.Server.HTTPAddress,
			GRPCAddress:    f.Server.GRPCAddress,
			RequestTimeout: f.Server.RequestTimeout.Std(),
			BasePath:       f.Server.BasePath,
		},
		Adapter: Adapter{
			HTTPAddress:    f.Adapter.HTTPAddress,
			RequestTimeout: f.Adapter.RequestTimeout.Std(),
		},
	}
}

// parseJSON loads the optional config file. Unknown keys are rejected so a
// misspelled option fails loudly instead of silently falling back to a default.
func parseJSON(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var f fileConfig
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("error decoding json config %s: %w", path, err)
	}

	return f.structured(), nil
}

// Duration accepts either a Go duration string ("1h", "30s") or a number of
// nanoseconds.
type Duration time.Duration

// Std returns d as a [time.Duration].
func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d *Duration) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return errBadDuration
	}
	if string(b) == "null" {
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("%w: %w", errBadDuration, err)
		}
		*d = Duration(parsed)
		return nil
	}

	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: got %s", errBadDuration, b)
	}
	*d = Duration(n)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Std().String())
}
