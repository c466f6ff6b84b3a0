package observability

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
)

func TestTraceContextFormatter_NoActiveSpan(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&TraceContextFormatter{Service: "shopfront"})

	logger.WithContext(context.Background()).Info("no span here")

	out := buf.String()
	if !strings.Contains(out, "trace_id="+TraceSentinel) {
		t.Errorf("Expected trace_id sentinel in output, got %q", out)
	}
	if !strings.Contains(out, "span_id="+TraceSentinel) {
		t.Errorf("Expected span_id sentinel in output, got %q", out)
	}
	if !strings.Contains(out, "service=shopfront") {
		t.Errorf("Expected service field in output, got %q", out)
	}
}

func TestTraceContextFormatter_NilContext(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&TraceContextFormatter{})

	// No WithContext at all; formatting must still succeed.
	logger.Info("bare record")

	out := buf.String()
	if !strings.Contains(out, "trace_id="+TraceSentinel) {
		t.Errorf("Expected trace_id sentinel in output, got %q", out)
	}
}

func TestTraceContextFormatter_ActiveSpan(t *testing.T) {
	traceID, err := trace.TraceIDFromHex("0102030405060708090a0b0c0d0e0f10")
	if err != nil {
		t.Fatalf("Failed to build trace ID: %v", err)
	}
	spanID, err := trace.SpanIDFromHex("0102030405060708")
	if err != nil {
		t.Fatalf("Failed to build span ID: %v", err)
	}
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&TraceContextFormatter{})

	logger.WithContext(ctx).Info("traced record")

	out := buf.String()
	if !strings.Contains(out, "trace_id=0102030405060708090a0b0c0d0e0f10") {
		t.Errorf("Expected 32-char hex trace id in output, got %q", out)
	}
	if !strings.Contains(out, "span_id=0102030405060708") {
		t.Errorf("Expected 16-char hex span id in output, got %q", out)
	}
}

func TestTraceContextFormatter_PreservesFields(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&TraceContextFormatter{})

	logger.WithField("order", 42).Info("field record")

	if out := buf.String(); !strings.Contains(out, "order=42") {
		t.Errorf("Expected caller-supplied field in output, got %q", out)
	}
}

func TestNewLogger_LevelFallback(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  logrus.Level
	}{
		{"debug", "debug", logrus.DebugLevel},
		{"info", "info", logrus.InfoLevel},
		{"warn", "warn", logrus.WarnLevel},
		{"error", "error", logrus.ErrorLevel},
		{"uppercase", "DEBUG", logrus.DebugLevel},
		{"unknown falls back to info", "loud", logrus.InfoLevel},
		{"empty falls back to info", "", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogger(LoggerConfig{Level: tt.level, Service: "shopfront"})
			if got := logger.GetLevel(); got != tt.want {
				t.Errorf("NewLogger level = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewLogger_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shopfront.log")

	logger := NewLogger(LoggerConfig{Level: "info", File: path, Service: "shopfront"})
	logger.Info("record for the file")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "record for the file") {
		t.Errorf("Expected log record in file, got %q", string(data))
	}
}

func TestNewLogger_BadFileIsNonFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "nested", "shopfront.log")

	logger := NewLogger(LoggerConfig{Level: "info", File: path, Service: "shopfront"})
	if logger == nil {
		t.Fatal("Expected a usable logger despite unopenable log file")
	}
	logger.SetOutput(&bytes.Buffer{})
	logger.Info("still logging")
}
