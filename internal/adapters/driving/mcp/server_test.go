package mcp

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil search service returns error", func(t *testing.T) {
		ports := &Ports{}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingSearchService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		ports := &Ports{
			Search: &mockSearchService{},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("nil search service returns error", func(t *testing.T) {
		ports := &Ports{}
		err := ports.Validate()
		assert.ErrorIs(t, err, ErrMissingSearchService)
	})

	t.Run("search service is valid", func(t *testing.T) {
		ports := &Ports{
			Search: &mockSearchService{},
		}
		err := ports.Validate()
		assert.NoError(t, err)
	})
}

func TestServer_Serve(t *testing.T) {
	newServer := func(t *testing.T) *Server {
		t.Helper()
		server, err := NewServer(&Ports{Search: &mockSearchService{}})
		require.NoError(t, err)
		return server
	}

	t.Run("cancelled context shuts down cleanly", func(t *testing.T) {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- newServer(t).Serve(ctx, ln) }()

		conn, err := net.Dial("tcp", ln.Addr().String())
		require.NoError(t, err)
		require.NoError(t, conn.Close())

		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(shutdownTimeout + time.Second):
			t.Fatal("Serve did not return after cancel")
		}
	})

	t.Run("listener failure is returned", func(t *testing.T) {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		require.NoError(t, ln.Close())

		err = newServer(t).Serve(context.Background(), ln)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "serving MCP over HTTP")
	})

	t.Run("bad address is returned", func(t *testing.T) {
		err := newServer(t).RunHTTP(context.Background(), "127.0.0.1:-1")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "listening on")
	})
}
