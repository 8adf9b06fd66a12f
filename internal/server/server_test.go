// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/site-sync/internal/config"
	"github.com/MKhiriev/site-sync/internal/logger"
)

func testServerConfig(addr string) config.Server {
	return config.Server{
		HTTPAddress:     addr,
		RequestTimeout:  time.Second,
		ShutdownTimeout: time.Second,
	}
}

func TestNewServer_NoAddress(t *testing.T) {
	_, err := NewServer(http.NotFoundHandler(), testServerConfig(""), logger.Nop())
	assert.ErrorIs(t, err, errEmptyAddress)
}

func TestServer_ServesUntilCancelled(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pong"))
	})
	srv := newHTTPServer(handler, testServerConfig("127.0.0.1:0"), logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	// the listener address is only known once Serve runs
	var addr string
	require.Eventually(t, func() bool {
		addr = srv.Addr()
		return addr != ""
	}, 2*time.Second, 10*time.Millisecond)

	resp, err := http.Get("http://" + addr + "/ping")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "pong", string(body))

	cancel()
	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_ListenError(t *testing.T) {
	srv := newHTTPServer(http.NotFoundHandler(), testServerConfig("256.0.0.1:http"), logger.Nop())
	assert.Error(t, srv.Run(context.Background()))
}
