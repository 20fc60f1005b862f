package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger define a interface para logging estruturado.
// A aplicação (Handler, Service, Repository) deve depender apenas desta interface.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error)
	Fatal(msg string, err error)
}

// levelFatal fica acima de slog.LevelError para ser sempre emitido.
const levelFatal = slog.Level(12)

// SlogLogger é a implementação concreta da interface Logger.
// Cada entrada é uma linha JSON (timestamp, level, message, fields, error).
type SlogLogger struct {
	log  *slog.Logger
	exit func(code int)
}

// NewLogger cria um Logger que escreve em stdout.
// Esta função é chamada no main.go.
func NewLogger(level string) Logger {
	return New(os.Stdout, level)
}

// New cria um Logger que escreve no writer informado, filtrando pelo nível.
func New(w io.Writer, level string) *SlogLogger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			switch a.Key {
			case slog.TimeKey:
				a.Key = "timestamp"
			case slog.MessageKey:
				a.Key = "message"
			case slog.LevelKey:
				if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == levelFatal {
					a.Value = slog.StringValue("FATAL")
				}
			}
			return a
		},
	})
	return &SlogLogger{log: slog.New(handler), exit: os.Exit}
}

// ParseLevel converte o nível textual (sem diferenciar maiúsculas) para slog.Level.
// Valores desconhecidos caem em info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "fatal":
		return levelFatal
	default:
		return slog.LevelInfo
	}
}

func (l *SlogLogger) emit(level slog.Level, msg string, fields map[string]interface{}, err error) {
	ctx := context.Background()
	if !l.log.Enabled(ctx, level) {
		return
	}

	attrs := make([]slog.Attr, 0, 2)
	if len(fields) > 0 {
		group := make([]any, 0, len(fields)*2)
		for k, v := range fields {
			group = append(group, k, v)
		}
		attrs = append(attrs, slog.Group("fields", group...))
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	l.log.LogAttrs(ctx, level, msg, attrs...)
}

// Implementações da Interface Logger

func (l *SlogLogger) Debug(msg string, fields map[string]interface{}) {
	l.emit(slog.LevelDebug, msg, fields, nil)
}

func (l *SlogLogger) Info(msg string, fields map[string]interface{}) {
	l.emit(slog.LevelInfo, msg, fields, nil)
}

func (l *SlogLogger) Warn(msg string, fields map[string]interface{}) {
	l.emit(slog.LevelWarn, msg, fields, nil)
}

func (l *SlogLogger) Error(msg string, err error) {
	l.emit(slog.LevelError, msg, nil, err)
}

// Fatal registra o erro e encerra o processo.
func (l *SlogLogger) Fatal(msg string, err error) {
	l.emit(levelFatal, msg, nil, err)
	l.exit(1)
}
