package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestRead(t *testing.T) {
	// Create a temporary log file
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	// Write 10 lines of content
	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{
			name:     "read all (0)",
			maxLines: 0,
			expected: expectedAll,
		},
		{
			name:     "read all (negative)",
			maxLines: -1,
			expected: expectedAll,
		},
		{
			name:     "read partial (5)",
			maxLines: 5,
			expected: expectedAll[5:],
		},
		{
			name:     "read exactly all (10)",
			maxLines: 10,
			expected: expectedAll,
		},
		{
			name:     "read more than exists (20)",
			maxLines: 20,
			expected: expectedAll,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "absent.log"), 5)
	if err != nil || got != nil {
		t.Fatalf("Read() = %v, %v; want nil, nil", got, err)
	}
}

func TestFormat(t *testing.T) {
	ts := time.Date(2025, 10, 8, 21, 1, 5, 0, time.Local)
	stamp := ts.Format(time.RFC3339Nano)
	local := ts.Format("2006-01-02 15:04:05")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text passes through",
			input:    "panic: something odd",
			expected: "panic: something odd",
		},
		{
			name:     "broken json passes through",
			input:    `{"level":"info"`,
			expected: `{"level":"info"`,
		},
		{
			name:     "warn with fields",
			input:    `{"level":"warn","ts":"` + stamp + `","logger":"catalog","msg":"pet listing unavailable, using sample data","query":"page=0","error":"connection refused"}`,
			expected: local + ` WARN [catalog] – pet listing unavailable, using sample data error=connection refused query=page=0`,
		},
		{
			name:     "missing level defaults to info",
			input:    `{"msg":"started"}`,
			expected: "INFO – started",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.input); got != tt.expected {
				t.Errorf("Format() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestParse_EpochTimestamp(t *testing.T) {
	entry, ok := Parse(`{"level":"debug","ts":1700000000.5,"msg":"tick","caller":"app/poller.go:40"}`)
	if !ok {
		t.Fatalf("Parse() reported false for a JSON line")
	}
	if entry.Time.Unix() != 1700000000 || entry.Level != "DEBUG" {
		t.Fatalf("entry = %+v", entry)
	}
	if _, ok := entry.Fields["caller"]; ok {
		t.Fatalf("caller should not be reported as a field")
	}
}
