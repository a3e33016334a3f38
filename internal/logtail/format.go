package logtail

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Entry is one decoded JSON log line.
type Entry struct {
	Time    time.Time
	Level   string
	Logger  string
	Message string
	Fields  map[string]any
}

var reservedKeys = map[string]bool{
	"ts": true, "level": true, "logger": true, "msg": true, "caller": true, "stacktrace": true,
}

// Parse decodes a JSON log line. Lines that are not JSON objects report false.
func Parse(line string) (Entry, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "{") {
		return Entry{}, false
	}
	var raw map[string]any
	if err := json.Unmarshal([]byte(trimmed), &raw); err != nil {
		return Entry{}, false
	}

	entry := Entry{
		Level:   strings.ToUpper(stringField(raw, "level")),
		Logger:  stringField(raw, "logger"),
		Message: stringField(raw, "msg"),
	}
	switch ts := raw["ts"].(type) {
	case string:
		if parsed, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			entry.Time = parsed
		}
	case float64:
		sec := int64(ts)
		entry.Time = time.Unix(sec, int64((ts-float64(sec))*1e9))
	}
	for k, v := range raw {
		if reservedKeys[k] {
			continue
		}
		if entry.Fields == nil {
			entry.Fields = make(map[string]any)
		}
		entry.Fields[k] = v
	}
	return entry, true
}

// Format renders a log line for reading. JSON lines become
// "2006-01-02 15:04:05 LEVEL [logger] – message" followed by sorted
// key=value fields; anything else is returned unchanged.
func Format(line string) string {
	entry, ok := Parse(line)
	if !ok {
		return line
	}
	parts := make([]string, 0, 3)
	if !entry.Time.IsZero() {
		parts = append(parts, entry.Time.In(time.Local).Format("2006-01-02 15:04:05"))
	}
	level := entry.Level
	if level == "" {
		level = "INFO"
	}
	parts = append(parts, level)
	if entry.Logger != "" {
		parts = append(parts, fmt.Sprintf("[%s]", entry.Logger))
	}
	out := strings.Join(parts, " ")
	if entry.Message != "" {
		out += " – " + entry.Message
	}

	keys := make([]string, 0, len(entry.Fields))
	for k := range entry.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out += fmt.Sprintf(" %s=%v", k, entry.Fields[k])
	}
	return out
}

func stringField(raw map[string]any, key string) string {
	if v, ok := raw[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}
