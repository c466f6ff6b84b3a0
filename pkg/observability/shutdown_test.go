package observability

import (
	"context"
	"io"
	"net/http"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func shutdownTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestNewShutdownManager(t *testing.T) {
	tests := []struct {
		name        string
		timeout     time.Duration
		wantTimeout time.Duration
		servers     int
	}{
		{"explicit timeout", 5 * time.Second, 5 * time.Second, 1},
		{"zero timeout defaults to 30s", 0, 30 * time.Second, 0},
		{"multiple servers", 10 * time.Second, 10 * time.Second, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			servers := make([]*http.Server, tt.servers)
			for i := range servers {
				servers[i] = &http.Server{}
			}

			sm := NewShutdownManager(shutdownTestLogger(), tt.timeout, servers...)
			if sm.shutdownTimeout != tt.wantTimeout {
				t.Errorf("Expected timeout %v, got %v", tt.wantTimeout, sm.shutdownTimeout)
			}
			if len(sm.servers) != tt.servers {
				t.Errorf("Expected %d servers, got %d", tt.servers, len(sm.servers))
			}
		})
	}
}

func TestRegisterShutdownFunc(t *testing.T) {
	sm := NewShutdownManager(shutdownTestLogger(), time.Second)

	sm.RegisterShutdownFunc(func(ctx context.Context) error { return nil })
	sm.RegisterShutdownFunc(func(ctx context.Context) error { return nil })

	if got := len(sm.shutdownFuncs); got != 2 {
		t.Errorf("Expected 2 registered functions, got %d", got)
	}
}

func TestWaitForShutdown_RunsRegisteredFuncs(t *testing.T) {
	sm := NewShutdownManager(shutdownTestLogger(), 5*time.Second, &http.Server{Addr: ":0"})

	var calls int32
	sm.RegisterShutdownFunc(func(ctx context.Context) error {
		atomic.AddInt32(&calls, 1)
		return nil
	})

	result := make(chan error, 1)
	go func() {
		result <- sm.WaitForShutdown()
	}()

	// Give WaitForShutdown time to install its signal handler.
	time.Sleep(100 * time.Millisecond)
	if err := syscall.Kill(syscall.Getpid(), syscall.SIGTERM); err != nil {
		t.Fatalf("Failed to signal self: %v", err)
	}

	select {
	case err := <-result:
		if err != nil {
			t.Errorf("Expected clean shutdown, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Shutdown did not complete in time")
	}

	if atomic.LoadInt32(&calls) != 1 {
		t.Errorf("Expected shutdown function to run once, got %d", calls)
	}
}
