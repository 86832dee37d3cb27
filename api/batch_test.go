package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchKeepsOrderAndIsolatesFailures(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/health":
			_, _ = w.Write([]byte(`{"status": "ok"}`))
		case "/api/mining/start":
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"error": "mining disabled"}`))
		default:
			_, _ = w.Write([]byte(`{"path": "` + r.URL.Path + `"}`))
		}
	}))
	t.Cleanup(srv.Close)

	client := newTestClient(t, srv, "")
	requests := []BatchRequest{
		{Method: http.MethodGet, Endpoint: "/health"},
		{Method: http.MethodPost, Endpoint: "/api/mining/start", Body: map[string]interface{}{"minerAddress": "0xm"}},
		{Method: http.MethodGet, Endpoint: "/api/explorer/stats"},
	}

	var done atomic.Int32
	results := client.Batch(context.Background(), requests, func(BatchResult) { done.Add(1) })

	require.Len(t, results, 3)
	assert.Equal(t, int32(3), hits.Load())
	assert.Equal(t, int32(3), done.Load())

	assert.NoError(t, results[0].Err)
	assert.Equal(t, map[string]interface{}{"status": "ok"}, results[0].Value)

	require.Error(t, results[1].Err)
	assert.Equal(t, http.StatusForbidden, StatusCode(results[1].Err))
	assert.Nil(t, results[1].Value)

	assert.NoError(t, results[2].Err)
	assert.Equal(t, map[string]interface{}{"path": "/api/explorer/stats"}, results[2].Value)

	for i, res := range results {
		assert.Equal(t, requests[i].Endpoint, res.Request.Endpoint)
	}
}

func TestBatchEmpty(t *testing.T) {
	client := NewDefaultClient()
	assert.Empty(t, client.Batch(context.Background(), nil, nil))
}
