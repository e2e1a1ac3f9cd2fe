package config

import (
	"strings"
	"testing"
	"time"

	"dancebook/internal/signature"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != "dancebook.db" || cfg.PadWidth != 300 || cfg.PadHeight != 200 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.PaymentDelay != 2*time.Second {
		t.Fatalf("payment delay = %v", cfg.PaymentDelay)
	}
	opts := cfg.SignatureOptions()
	if d := signature.DefaultOptions(); opts.Width != d.Width || opts.Height != d.Height {
		t.Fatalf("pad %dx%d differs from the capture default %dx%d", opts.Width, opts.Height, d.Width, d.Height)
	}
	if opts.Encoding != signature.Markup || opts.StrokeColor != "#FF1AA1" || opts.StrokeWidth != 2 {
		t.Fatalf("signature options = %+v", opts)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DANCEBOOK_DB_PATH", "/tmp/x.db")
	t.Setenv("DANCEBOOK_PAD_WIDTH", "640")
	t.Setenv("DANCEBOOK_PAD_HEIGHT", "240")
	t.Setenv("DANCEBOOK_SIGNATURE_ENCODING", "datauri")
	t.Setenv("DANCEBOOK_PAYMENT_DELAY", "0s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	opts := cfg.SignatureOptions()
	if cfg.DBPath != "/tmp/x.db" || opts.Width != 640 || opts.Height != 240 || opts.Encoding != signature.DataURI {
		t.Fatalf("cfg = %+v, opts = %+v", cfg, opts)
	}
	if cfg.PaymentDelay != 0 {
		t.Fatalf("payment delay = %v", cfg.PaymentDelay)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name, key, value, want string
	}{
		{"bad int", "DANCEBOOK_PAD_WIDTH", "wide", "parse env:"},
		{"zero size", "DANCEBOOK_PAD_HEIGHT", "0", "pad size"},
		{"bad encoding", "DANCEBOOK_SIGNATURE_ENCODING", "png", "unknown signature encoding"},
		{"bad stroke", "DANCEBOOK_STROKE_WIDTH", "-1", "stroke width"},
		{"colour name", "DANCEBOOK_STROKE_COLOR", "red", "stroke color"},
		{"colour markup", "DANCEBOOK_STROKE_COLOR", `#FFF"/><script>`, "stroke color"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Load() error = %v, want %q", err, tt.want)
			}
		})
	}
}
