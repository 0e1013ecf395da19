package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug
	case "info", "":
		return Info
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}

func (l Level) slog() slog.Level {
	switch l {
	case Debug:
		return slog.LevelDebug
	case Warn:
		return slog.LevelWarn
	case Error:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	default:
		return FormatText
	}
}

type Logger interface {
	With(fields map[string]any) Logger

	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

// SlogLogger adapta slog a la interfaz de campos por map.
type SlogLogger struct {
	sl *slog.Logger
}

type Options struct {
	Level  Level
	Format Format
	App    string

	// Writer por defecto es os.Stdout.
	Writer io.Writer
}

func New(opts Options) Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stdout
	}

	var h slog.Handler
	switch opts.Format {
	case FormatJSON:
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: opts.Level.slog()})
	default:
		h = tint.NewHandler(w, &tint.Options{
			Level:      opts.Level.slog(),
			TimeFormat: time.DateTime,
			NoColor:    !isTerminal(w),
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if a.Key == "error" && a.Value.Kind() == slog.KindAny {
					if err, ok := a.Value.Any().(error); ok {
						return tint.Err(err)
					}
				}
				return a
			},
		})
	}

	sl := slog.New(h)
	if app := strings.TrimSpace(opts.App); app != "" {
		sl = sl.With("app", app)
	}
	return &SlogLogger{sl: sl}
}

// Nop descarta todo (tests, defaults).
func Nop() Logger {
	return &SlogLogger{sl: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))}
}

// Slog expone el *slog.Logger subyacente (p.ej. para slog.SetDefault).
func (l *SlogLogger) Slog() *slog.Logger {
	return l.sl
}

func (l *SlogLogger) With(fields map[string]any) Logger {
	args := attrs(fields)
	if len(args) == 0 {
		return l
	}
	return &SlogLogger{sl: l.sl.With(args...)}
}

func (l *SlogLogger) Debug(msg string, fields map[string]any) { l.log(slog.LevelDebug, msg, fields) }
func (l *SlogLogger) Info(msg string, fields map[string]any)  { l.log(slog.LevelInfo, msg, fields) }
func (l *SlogLogger) Warn(msg string, fields map[string]any)  { l.log(slog.LevelWarn, msg, fields) }
func (l *SlogLogger) Error(msg string, fields map[string]any) { l.log(slog.LevelError, msg, fields) }

func (l *SlogLogger) log(lvl slog.Level, msg string, fields map[string]any) {
	ctx := context.Background()
	if !l.sl.Enabled(ctx, lvl) {
		return
	}
	l.sl.Log(ctx, lvl, msg, attrs(fields)...)
}

// attrs ordena las keys para salida estable (útil en tests/logs).
func attrs(fields map[string]any) []any {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if strings.TrimSpace(k) == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]any, 0, len(keys))
	for _, k := range keys {
		out = append(out, slog.Any(k, fields[k]))
	}
	return out
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}
