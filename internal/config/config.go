// Package config loads runtime settings from DANCEBOOK_* environment
// variables.
package config

import (
	"fmt"
	"regexp"
	"time"

	"github.com/caarlos0/env/v11"

	"dancebook/internal/signature"
)

const envPrefix = "DANCEBOOK_"

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{3,8}$`)

// Config is the process configuration.
type Config struct {
	DBPath            string        `env:"DB_PATH" envDefault:"dancebook.db"`
	LogFile           string        `env:"LOG_FILE"`
	PadWidth          int           `env:"PAD_WIDTH" envDefault:"300"`
	PadHeight         int           `env:"PAD_HEIGHT" envDefault:"200"`
	SignatureEncoding string        `env:"SIGNATURE_ENCODING" envDefault:"markup"`
	StrokeColor       string        `env:"STROKE_COLOR" envDefault:"#FF1AA1"`
	StrokeWidth       float64       `env:"STROKE_WIDTH" envDefault:"2"`
	PaymentDelay      time.Duration `env:"PAYMENT_DELAY" envDefault:"2s"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the signature pad cannot use.
func (c Config) Validate() error {
	if c.PadWidth <= 0 || c.PadHeight <= 0 {
		return fmt.Errorf("pad size must be positive, got %dx%d", c.PadWidth, c.PadHeight)
	}
	if !colorPattern.MatchString(c.StrokeColor) {
		return fmt.Errorf("stroke color must be a hex colour like #FF1AA1, got %q", c.StrokeColor)
	}
	if c.StrokeWidth <= 0 {
		return fmt.Errorf("stroke width must be positive, got %v", c.StrokeWidth)
	}
	if _, ok := signature.ParseEncoding(c.SignatureEncoding); !ok {
		return fmt.Errorf("unknown signature encoding %q", c.SignatureEncoding)
	}
	if c.PaymentDelay < 0 {
		return fmt.Errorf("payment delay must not be negative")
	}
	return nil
}

// SignatureOptions converts the pad settings.
func (c Config) SignatureOptions() signature.Options {
	enc, _ := signature.ParseEncoding(c.SignatureEncoding)
	return signature.Options{
		Width:       c.PadWidth,
		Height:      c.PadHeight,
		StrokeColor: c.StrokeColor,
		StrokeWidth: c.StrokeWidth,
		Encoding:    enc,
	}
}
