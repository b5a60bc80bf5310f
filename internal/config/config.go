// Package config loads service settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

type Config struct {
	Addr      string `env:"SOLGATE_ADDR,default=0.0.0.0:3000"`
	LogLevel  string `env:"SOLGATE_LOG_LEVEL,default=info"`
	LogFormat string `env:"SOLGATE_LOG_FORMAT,default=text"`

	// AllowSecretSigning exposes POST /message/sign, which accepts a raw
	// secret key over the network. Demo use only.
	AllowSecretSigning bool `env:"SOLGATE_ALLOW_SECRET_SIGNING,default=false"`

	CORSOrigins     []string      `env:"SOLGATE_CORS_ORIGINS,default=*"`
	ReadTimeout     time.Duration `env:"SOLGATE_READ_TIMEOUT,default=10s"`
	WriteTimeout    time.Duration `env:"SOLGATE_WRITE_TIMEOUT,default=10s"`
	ShutdownTimeout time.Duration `env:"SOLGATE_SHUTDOWN_TIMEOUT,default=15s"`
	MaxBodyBytes    int64         `env:"SOLGATE_MAX_BODY_BYTES,default=1048576"`

	KafkaBrokers []string `env:"SOLGATE_KAFKA_BROKERS"`
	KafkaTopic   string   `env:"SOLGATE_KAFKA_TOPIC"`
}

// Load reads envFile when it exists (variables already set win) and decodes
// the environment into a Config.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("decode environment: %w", err)
	}
	cfg.KafkaBrokers = compact(cfg.KafkaBrokers)
	cfg.CORSOrigins = compact(cfg.CORSOrigins)

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("listen address is required")
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("max body bytes must be positive, got %d", c.MaxBodyBytes)
	}
	if len(c.KafkaBrokers) > 0 && c.KafkaTopic == "" {
		return errors.New("SOLGATE_KAFKA_TOPIC is required when brokers are set")
	}
	return nil
}

// AuditEnabled reports whether built instructions are published to Kafka.
func (c Config) AuditEnabled() bool {
	return len(c.KafkaBrokers) > 0 && c.KafkaTopic != ""
}

func compact(values []string) []string {
	out := values[:0]
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
