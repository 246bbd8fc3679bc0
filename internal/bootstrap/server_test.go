package bootstrap

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"go-workforce/internal/audit"
	"go-workforce/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingSink struct {
	mu      sync.Mutex
	entries []audit.Entry
}

func (s *recordingSink) Log(_ context.Context, e audit.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
}

func TestServe_DrainsOnCancel(t *testing.T) {
	sink := &recordingSink{}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, http.NotFoundHandler(), config.ServerConfig{Port: "0"}, sink, zap.NewNop())
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	require.Len(t, sink.entries, 1)
	assert.Equal(t, "SERVER_SHUTDOWN", sink.entries[0].Action)
	assert.Equal(t, "context canceled", sink.entries[0].Meta["cause"])
}

func TestServe_ListenError(t *testing.T) {
	err := Serve(context.Background(), http.NotFoundHandler(), config.ServerConfig{Port: "not-a-port"}, &recordingSink{}, zap.NewNop())
	assert.ErrorContains(t, err, "listen :not-a-port")
}
