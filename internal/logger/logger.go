// internal/logger/logger.go
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

type Fields map[string]any

// Logger writes one JSON object per line.
type Logger struct {
	service string
	out     io.Writer
	mu      *sync.Mutex
	base    Fields
}

func New(service string) *Logger { return NewWithWriter(service, os.Stdout) }

func NewWithWriter(service string, w io.Writer) *Logger {
	return &Logger{service: service, out: w, mu: &sync.Mutex{}}
}

// Discard is used by tests that do not care about log output.
func Discard() *Logger { return NewWithWriter("test", io.Discard) }

// With returns a logger that adds fields to every entry.
func (l *Logger) With(fields Fields) *Logger {
	merged := Fields{}
	for k, v := range l.base {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &Logger{service: l.service, out: l.out, mu: l.mu, base: merged}
}

func (l *Logger) log(level, action string, fields Fields, err error) {
	entry := map[string]any{
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		"level":     level,
		"service":   l.service,
		"action":    action,
		"hostname":  hostname(),
	}
	for k, v := range l.base {
		entry[k] = v
	}
	for k, v := range fields {
		entry[k] = v
	}
	if err != nil {
		entry["error"] = map[string]any{"msg": err.Error(), "type": fmt.Sprintf("%T", err)}
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = json.NewEncoder(l.out).Encode(entry)
}

func (l *Logger) Info(action string, fields Fields)             { l.log("INFO", action, fields, nil) }
func (l *Logger) Debug(action string, fields Fields)            { l.log("DEBUG", action, fields, nil) }
func (l *Logger) Warn(action string, fields Fields)             { l.log("WARN", action, fields, nil) }
func (l *Logger) Error(action string, err error, fields Fields) { l.log("ERROR", action, fields, err) }

func hostname() string { h, _ := os.Hostname(); return h }
