package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/BullsEye-Radar/internal/config"
	"github.com/turtacn/BullsEye-Radar/internal/infrastructure/monitoring/logging"
)

func TestServer_StartAndStop(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	// Port 0 lets the kernel pick a free port.
	s := NewServer(config.ServerConfig{Port: 0, ShutdownTimeout: time.Second}, handler, logging.NewNopLogger())

	done := make(chan error, 1)
	go func() { done <- s.Start() }()

	// Give the listener a moment to come up, then stop gracefully.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, s.Stop(context.Background()))

	select {
	case err := <-done:
		assert.NoError(t, err, "graceful shutdown is not an error")
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_StopWithoutStart(t *testing.T) {
	s := NewServer(config.ServerConfig{Port: 0}, http.NotFoundHandler(), logging.NewNopLogger())
	assert.NoError(t, s.Stop(context.Background()))
}

//Personal.AI order the ending
