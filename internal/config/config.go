// Package config loads process configuration from TAH_WNG_* environment
// variables
package config

import (
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/token-action-hud-wng/internal/entities/wng"
	"github.com/KirkDiggler/token-action-hud-wng/internal/errors"
)

// Store backends
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Config is the process configuration
type Config struct {
	GRPCPort     int    `env:"TAH_WNG_GRPC_PORT"     envDefault:"50052"`
	StoreBackend string `env:"TAH_WNG_STORE"         envDefault:"memory"`
	RedisAddr    string `env:"TAH_WNG_REDIS_ADDR"    envDefault:"localhost:6379"`
	ChatDBPath   string `env:"TAH_WNG_CHAT_DB"       envDefault:"tahwng-chat.db"`
	Locale       string `env:"TAH_WNG_LOCALE"        envDefault:"en"`
	LogLevel     string `env:"TAH_WNG_LOG_LEVEL"     envDefault:"info"`
	OTelEndpoint string `env:"TAH_WNG_OTEL_ENDPOINT"`

	DisplayUnequipped      bool     `env:"TAH_WNG_DISPLAY_UNEQUIPPED"`
	RenderItemOnRightClick bool     `env:"TAH_WNG_RENDER_ITEM_ON_RIGHT_CLICK" envDefault:"true"`
	FanOutActorTypes       []string `env:"TAH_WNG_FAN_OUT_ACTOR_TYPES"        envDefault:"agent" envSeparator:","`
}

// Load parses the environment and validates the result
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges and enums
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.GRPCPort <= 0 || c.GRPCPort > 65535 {
		vb.Fieldf("GRPCPort", "must be between 1 and 65535, got %d", c.GRPCPort)
	}
	errors.ValidateEnum("StoreBackend", c.StoreBackend, []string{StoreMemory, StoreRedis}, vb)
	if c.StoreBackend == StoreRedis && c.RedisAddr == "" {
		vb.RequiredField("RedisAddr")
	}
	if c.ChatDBPath == "" {
		vb.RequiredField("ChatDBPath")
	}
	errors.ValidateEnum("LogLevel", strings.ToLower(c.LogLevel), []string{"debug", "info", "warn", "error"}, vb)
	for _, t := range c.FanOutActorTypes {
		errors.ValidateEnum("FanOutActorTypes", t, []string{
			string(wng.ActorTypeAgent),
			string(wng.ActorTypeThreat),
			string(wng.ActorTypeVehicle),
		}, vb)
	}

	return vb.Build()
}

// ActorTypes returns the fan-out allowlist as actor types
func (c *Config) ActorTypes() []wng.ActorType {
	out := make([]wng.ActorType, 0, len(c.FanOutActorTypes))
	for _, t := range c.FanOutActorTypes {
		out = append(out, wng.ActorType(t))
	}
	return out
}

// SlogLevel maps LogLevel to a slog level, info when unknown
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
