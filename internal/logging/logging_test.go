package logging

import (
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/five82/pawprint/internal/logtail"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pawprint.log")

	log, err := New(Options{Path: path, Level: "debug"})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	log.Named("catalog").Debug("breed image cached", zap.String("key", "dog_Beagle"))
	_ = log.Sync()

	lines, err := logtail.Read(path, 10)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("got %d log lines, want 1: %v", len(lines), lines)
	}
	entry, ok := logtail.Parse(lines[0])
	if !ok {
		t.Fatalf("log line is not JSON: %q", lines[0])
	}
	if entry.Level != "DEBUG" || entry.Logger != "catalog" || entry.Message != "breed image cached" {
		t.Fatalf("entry = %+v", entry)
	}
	if entry.Time.IsZero() || entry.Fields["key"] != "dog_Beagle" {
		t.Fatalf("entry = %+v", entry)
	}
}

func TestNew_LevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pawprint.log")
	log, err := New(Options{Path: path, Level: "warn"})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	log.Info("quiet")
	log.Warn("loud")
	_ = log.Sync()

	lines, _ := logtail.Read(path, 0)
	if len(lines) != 1 || !strings.Contains(lines[0], "loud") {
		t.Fatalf("lines = %v, want only the warning", lines)
	}
}

func TestNew_Errors(t *testing.T) {
	if _, err := New(Options{Path: ""}); err == nil {
		t.Fatalf("New with empty path returned nil error")
	}
	if _, err := New(Options{Console: true, Level: "loud"}); err == nil {
		t.Fatalf("New with a bad level returned nil error")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"":      zapcore.InfoLevel,
		"DEBUG": zapcore.DebugLevel,
		" warn": zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
}

func TestOrNop(t *testing.T) {
	if OrNop(nil) == nil {
		t.Fatalf("OrNop(nil) returned nil")
	}
	l := zap.NewExample()
	if OrNop(l) != l {
		t.Fatalf("OrNop should return a non-nil logger unchanged")
	}
}
