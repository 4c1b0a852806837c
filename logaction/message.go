package logaction

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/on-the-ground/action_ive_go/pure"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrUnknownSeverity is returned by ParseSeverity for unrecognised names.
var ErrUnknownSeverity = errors.New("unknown severity")

// Severity defines how important a log message is.
type Severity int8

const (
	// Debug is used for detailed internal information.
	Debug Severity = iota
	// Info is used for general informational messages.
	Info
	// Warning is used for potentially harmful situations.
	Warning
	// Error is used for failures the application may still recover from.
	Error
)

func (s Severity) String() string {
	switch s {
	case Debug:
		return "Debug"
	case Info:
		return "Info"
	case Warning:
		return "Warning"
	case Error:
		return "Error"
	default:
		return fmt.Sprintf("Severity(%d)", int8(s))
	}
}

// ParseSeverity accepts the names printed by String, case-insensitively,
// plus "warn".
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(s) {
	case "debug":
		return Debug, nil
	case "info":
		return Info, nil
	case "warn", "warning":
		return Warning, nil
	case "error":
		return Error, nil
	default:
		return Debug, fmt.Errorf("%w: %q", ErrUnknownSeverity, s)
	}
}

// ZapLevel maps s onto zap's levels. Unknown severities map to Info.
func (s Severity) ZapLevel() zapcore.Level {
	switch s {
	case Debug:
		return zapcore.DebugLevel
	case Warning:
		return zapcore.WarnLevel
	case Error:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Fields are structured key/value pairs attached to a message.
type Fields = map[string]any

var fieldsMonoid pure.MapMonoid[string, any]

// Message is the payload the logging actions in this package consume.
type Message struct {
	Severity Severity
	Text     string
	Fields   Fields
	// Time and ID are filled by Stamp when left empty.
	Time time.Time
	ID   string
}

// NewMessage builds a message without time or id.
func NewMessage(sev Severity, text string, fields Fields) Message {
	return Message{Severity: sev, Text: text, Fields: fields}
}

// With returns a copy of m carrying fields on top of its own. Keys in
// fields win.
func (m Message) With(fields Fields) Message {
	m.Fields = fieldsMonoid.Combine(m.Fields, fields)
	return m
}

func (m Message) sortedKeys() []string {
	return slices.Sorted(maps.Keys(m.Fields))
}

func (m Message) zapFields() []zap.Field {
	fields := make([]zap.Field, 0, len(m.Fields)+1)
	if m.ID != "" {
		fields = append(fields, zap.String("id", m.ID))
	}
	for _, k := range m.sortedKeys() {
		fields = append(fields, zap.Any(k, m.Fields[k]))
	}
	return fields
}

// FormatMessage renders m as "[Severity] text k=v ...", fields sorted by key.
func FormatMessage(m Message) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", m.Severity, m.Text)
	for _, k := range m.sortedKeys() {
		fmt.Fprintf(&b, " %s=%v", k, m.Fields[k])
	}
	return b.String()
}
