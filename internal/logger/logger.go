// Package logger is the structured log sink shared by the atelier commands
// and the store view. Entries are JSON lines unless HumanReadable is set.
package logger

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options configures New.
type Options struct {
	// Level is debug, info, warn or error. Empty means info.
	Level string
	// HumanReadable switches from JSON lines to the uncoloured console layout.
	HumanReadable bool
	// Writer receives entries. Nil means stderr so stdout stays free for
	// command output.
	Writer io.Writer
}

// Logger carries the fields of one command run or store session. A nil
// *Logger drops everything.
type Logger struct {
	zl zerolog.Logger
}

// New builds a Logger from opts.
func New(opts Options) (*Logger, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	zl := zerolog.New(sink(opts)).Level(level).With().Timestamp().Logger()
	return &Logger{zl: zl}, nil
}

func parseLevel(name string) (zerolog.Level, error) {
	if name == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(name))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("parse log level %q: %w", name, err)
	}
	return level, nil
}

func sink(opts Options) io.Writer {
	out := opts.Writer
	if out == nil {
		out = os.Stderr
	}
	if !opts.HumanReadable {
		return out
	}
	return zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: true}
}

// Nop drops every entry. The store view uses it when no log file is set,
// since the terminal belongs to the UI.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// OpenFile opens the --log-file target for appending.
func OpenFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// WithFields derives a logger that stamps fields on every entry, in key
// order.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}
	ctx := l.zl.With()
	for _, k := range slices.Sorted(maps.Keys(fields)) {
		ctx = ctx.Interface(k, fields[k])
	}
	return &Logger{zl: ctx.Logger()}
}

// With derives a logger carrying one extra field.
func (l *Logger) With(key string, value any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{zl: l.zl.With().Interface(key, value).Logger()}
}

// ForCommand tags entries with the CLI operation that produced them.
func (l *Logger) ForCommand(name string) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{zl: l.zl.With().Str("command", name).Logger()}
}

// ForItem tags entries with the catalog item a transition touched.
func (l *Logger) ForItem(id int, category string) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{zl: l.zl.With().Int("item_id", id).Str("category", category).Logger()}
}

func (l *Logger) Debug(msg string) { l.emit(zerolog.DebugLevel, nil, msg) }
func (l *Logger) Info(msg string)  { l.emit(zerolog.InfoLevel, nil, msg) }
func (l *Logger) Warn(msg string)  { l.emit(zerolog.WarnLevel, nil, msg) }

// Error records msg with err attached under the "error" key.
func (l *Logger) Error(err error, msg string) { l.emit(zerolog.ErrorLevel, err, msg) }

func (l *Logger) emit(level zerolog.Level, err error, msg string) {
	if l == nil {
		return
	}
	ev := l.zl.WithLevel(level)
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Msg(msg)
}
