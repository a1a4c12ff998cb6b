package api

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/Veraticus/stt-search/internal/common"
	"github.com/Veraticus/stt-search/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_RunAndShutdown(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	router := newTestRouter(t, testutil.NewMockSource(testutil.ScenarioRecords()))
	server := NewServer(addr, router, common.DiscardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Run(ctx, time.Second) }()

	var resp *http.Response
	require.Eventually(t, func() bool {
		r, getErr := http.Get("http://" + addr + "/")
		if getErr != nil {
			return false
		}
		resp = r
		return true
	}, 2*time.Second, 20*time.Millisecond)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_ListenError(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer func() { _ = listener.Close() }()

	server := NewServer(listener.Addr().String(), http.NotFoundHandler(), common.DiscardLogger())
	err = server.Run(context.Background(), time.Second)
	assert.Error(t, err)
}
