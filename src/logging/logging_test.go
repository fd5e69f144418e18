package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
)

func init() {
	color.NoColor = true
}

var at = time.Date(2026, 1, 1, 9, 30, 15, 0, time.UTC)

func record(level slog.Level, msg string, args ...any) slog.Record {
	r := slog.NewRecord(at, level, msg, 0)
	r.Add(args...)
	return r
}

func TestMessageOnly(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, Options{})
	if err := h.Handle(context.Background(), record(slog.LevelInfo, "logged in")); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "[09:30:15] INFO: logged in\n" {
		t.Errorf("output = %q", got)
	}
}

func TestAttributes(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, Options{})
	r := record(slog.LevelError, "API Error", "status", 404, "error", errors.New("not found"))
	if err := h.Handle(context.Background(), r); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"ERROR: API Error", `"status": 404`, `"error": "not found"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestWithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, Options{})).
		With("component", "gateway").
		WithGroup("frame").
		With("tag", "READY")
	logger.Info("dispatch", "size", 12, slog.Group("meta", "compressed", true))

	out := buf.String()
	for _, want := range []string{
		`"component": "gateway"`,
		`"frame.tag": "READY"`,
		`"frame.size": 12`,
		`"frame.meta.compressed": true`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, Options{Level: slog.LevelWarn}))
	logger.Info("quiet")
	logger.Debug("quieter")
	if buf.Len() != 0 {
		t.Errorf("output = %q, want nothing below warn", buf.String())
	}
	logger.Warn("loud")
	if !strings.Contains(buf.String(), "WARN: loud") {
		t.Errorf("output = %q", buf.String())
	}
}
