package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"mercator-hq/sieve/pkg/config"
)

func TestNew_Formats(t *testing.T) {
	tests := []struct {
		format   string
		wantJSON bool
		wantTime bool
	}{
		{"json", true, true},
		{"text", false, true},
		{"console", false, false},
		{"", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := New(Config{Level: "info", Format: tt.format, Writer: &buf})
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}

			logger.Info("records loaded", "count", 6)
			out := buf.String()

			if tt.wantJSON {
				var entry map[string]any
				if err := json.Unmarshal([]byte(out), &entry); err != nil {
					t.Fatalf("expected JSON output, got %q: %v", out, err)
				}
				if entry["msg"] != "records loaded" || entry["count"] != float64(6) {
					t.Errorf("unexpected entry %v", entry)
				}
				return
			}

			if !strings.Contains(out, "count=6") {
				t.Errorf("expected count=6 in %q", out)
			}
			if hasTime := strings.Contains(out, "time="); hasTime != tt.wantTime {
				t.Errorf("time present = %v, want %v in %q", hasTime, tt.wantTime, out)
			}
		})
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	if _, err := New(Config{Level: "verbose"}); err == nil {
		t.Error("expected error for unknown level")
	}
	if _, err := New(Config{Format: "xml"}); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "warn", Format: "text", Writer: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("messages below warn should be filtered: %q", out)
	}
	if !strings.Contains(out, "warn message") || !strings.Contains(out, "error message") {
		t.Errorf("warn and error should be logged: %q", out)
	}
	if logger.Level() != slog.LevelWarn {
		t.Errorf("Level() = %v, want %v", logger.Level(), slog.LevelWarn)
	}
}

func TestLogger_ContextFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "debug", Format: "text", Writer: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx := WithQuery(WithSession(context.Background(), "sess-1"), "single-male")
	logger.InfoContext(ctx, "query evaluated", "matched", 3)

	out := buf.String()
	for _, want := range []string{"session=sess-1", "query=single-male", "matched=3"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in %q", want, out)
		}
	}

	buf.Reset()
	logger.WithContext(ctx).Warn("plain call")
	if !strings.Contains(buf.String(), "session=sess-1") {
		t.Errorf("WithContext should attach session: %q", buf.String())
	}

	if logger.WithContext(context.Background()) != logger {
		t.Error("WithContext without fields should return the same logger")
	}
}

func TestLogger_Slog(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "info", Format: "text", Writer: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.With("component", "source").Slog().Info("loaded")
	if !strings.Contains(buf.String(), "component=source") {
		t.Errorf("With fields missing from slog output: %q", buf.String())
	}
}

func TestFromConfig(t *testing.T) {
	var buf bytes.Buffer
	cfg := FromConfig(config.LoggingConfig{Level: "error", Format: "json", AddSource: true}, &buf)

	if cfg.Level != "error" || cfg.Format != "json" || !cfg.AddSource || cfg.Writer != &buf {
		t.Errorf("FromConfig() = %+v", cfg)
	}
}

func TestContextHelpers_Empty(t *testing.T) {
	ctx := context.Background()
	if GetSession(ctx) != "" || GetQuery(ctx) != "" {
		t.Error("empty context should yield empty values")
	}
	if len(extractContextFields(ctx)) != 0 {
		t.Error("empty context should yield no fields")
	}
}
