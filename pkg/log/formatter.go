package log

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// defaultTimestampFormat is used by both formatters unless overridden.
const defaultTimestampFormat = time.RFC3339Nano

// TextFormatter renders entries as a single human-readable line:
//
//	2025-01-02T15:04:05Z INFO server started component=http addr=:3000
type TextFormatter struct {
	// TimestampFormat overrides the default RFC3339Nano timestamp layout.
	TimestampFormat string
	// DisableTimestamp omits the timestamp column.
	DisableTimestamp bool
}

// Format renders the entry as text.
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var buf bytes.Buffer

	if !f.DisableTimestamp {
		layout := f.TimestampFormat
		if layout == "" {
			layout = defaultTimestampFormat
		}
		buf.WriteString(entry.Timestamp.Format(layout))
		buf.WriteByte(' ')
	}

	buf.WriteString(entry.Level.String())
	buf.WriteByte(' ')
	buf.WriteString(entry.Message)

	for _, k := range sortedKeys(entry.Fields) {
		fmt.Fprintf(&buf, " %s=%v", k, entry.Fields[k])
	}
	if entry.Caller != "" {
		fmt.Fprintf(&buf, " caller=%s", entry.Caller)
	}

	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// JSONFormatter renders entries as one JSON object per line.
type JSONFormatter struct {
	// TimestampFormat overrides the default RFC3339Nano timestamp layout.
	TimestampFormat string
}

// Format renders the entry as JSON.
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	layout := f.TimestampFormat
	if layout == "" {
		layout = defaultTimestampFormat
	}

	data := make(map[string]interface{}, len(entry.Fields)+4)
	for k, v := range entry.Fields {
		data[k] = v
	}
	data["ts"] = entry.Timestamp.Format(layout)
	data["level"] = entry.Level.String()
	data["msg"] = entry.Message
	if entry.Caller != "" {
		data["caller"] = entry.Caller
	}

	b, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal log entry: %w", err)
	}
	return append(b, '\n'), nil
}

func sortedKeys(fields Fields) []string {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
