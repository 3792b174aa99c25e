package config

import (
	"net/url"

	"github.com/rs/zerolog"
)

const redacted = "[REDACTED]"

// MarshalZerologObject implements [zerolog.LogObjectMarshaler]. Secrets are
// never written: the sign key is replaced and the DSN password is masked.
func (cfg *StructuredConfig) MarshalZerologObject(e *zerolog.Event) {
	signKey := ""
	if cfg.App.TokenSignKey != "" {
		signKey = redacted
	}

	e.Dict("app", zerolog.Dict().
		Str("token_sign_key", signKey).
		Str("token_issuer", cfg.App.TokenIssuer).
		Dur("token_duration", cfg.App.TokenDuration).
		Int("password_hash_cost", cfg.App.PasswordHashCost).
		Str("version", cfg.App.Version))
	e.Dict("storage", zerolog.Dict().
		Str("dsn", redactDSN(cfg.Storage.DB.DSN)))
	e.Dict("server", zerolog.Dict().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Str("base_path", cfg.Server.BasePath))
}

func redactDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil {
		return redacted
	}
	return u.Redacted()
}
