package observability

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
)

// TraceSentinel is logged in place of the trace and span identifiers when
// no span is active.
const TraceSentinel = "N/A"

// LoggerConfig holds logger settings.
type LoggerConfig struct {
	// Level is the minimum severity to emit (debug, info, warn, error).
	Level string
	// File, when set, receives a copy of every record in addition to stdout.
	File string
	// Service is stamped on every record as the service field.
	Service string
}

// TraceContextFormatter decorates every log record with the identifiers of
// the currently active trace and span, read from the entry's context. The
// trace id renders as 32 lowercase hex characters and the span id as 16,
// zero-padded to their full bit width; records without an active span carry
// the sentinel instead. Formatting never fails on a missing context.
type TraceContextFormatter struct {
	// Service, when non-empty, is added to each record.
	Service string
	// Base renders the decorated record; defaults to a full-timestamp
	// logrus text formatter.
	Base logrus.Formatter
}

// Format implements logrus.Formatter.
func (f *TraceContextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	traceID, spanID := TraceSentinel, TraceSentinel
	if entry.Context != nil {
		sc := trace.SpanContextFromContext(entry.Context)
		if sc.HasTraceID() {
			traceID = sc.TraceID().String()
		}
		if sc.HasSpanID() {
			spanID = sc.SpanID().String()
		}
	}

	data := make(logrus.Fields, len(entry.Data)+3)
	for key, value := range entry.Data {
		data[key] = value
	}
	if f.Service != "" {
		data["service"] = f.Service
	}
	data["trace_id"] = traceID
	data["span_id"] = spanID

	decorated := &logrus.Entry{
		Logger:  entry.Logger,
		Data:    data,
		Time:    entry.Time,
		Level:   entry.Level,
		Caller:  entry.Caller,
		Message: entry.Message,
		Context: entry.Context,
	}

	base := f.Base
	if base == nil {
		base = &logrus.TextFormatter{FullTimestamp: true}
	}
	return base.Format(decorated)
}

// NewLogger creates the service logger. Records go to stdout, and
// additionally to the configured log file when one is set. A log file that
// cannot be opened is a warning, not a fatal error. An unknown level falls
// back to info.
func NewLogger(cfg LoggerConfig) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&TraceContextFormatter{
		Service: cfg.Service,
		Base:    &logrus.TextFormatter{FullTimestamp: true},
	})

	level, err := logrus.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	logger.SetOutput(os.Stdout)
	if cfg.File != "" {
		file, ferr := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if ferr != nil {
			logger.WithError(ferr).Warn("Log file unavailable, writing to stdout only")
		} else {
			logger.SetOutput(io.MultiWriter(os.Stdout, file))
		}
	}

	return logger
}
