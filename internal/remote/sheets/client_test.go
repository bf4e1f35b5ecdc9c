package sheets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subkh4n/SIPILPRO-sub001/internal/remote"
)

func TestNewRequiresBaseURL(t *testing.T) {
	_, err := New("", "token")
	assert.ErrorIs(t, err, remote.ErrNotConfigured)
}

func TestFetchAllDecodesSnapshot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "fetchAll", req["action"])
		assert.Equal(t, "secret", req["token"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"data": {
				"workers": [{"id": "w1", "name": "Budi"}],
				"projects": [{"id": "p1", "name": "Ruko Blok C"}]
			}
		}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, "secret")
	require.NoError(t, err)

	snap, err := c.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Workers, 1)
	assert.Equal(t, "Budi", snap.Workers[0].Name)
	require.Len(t, snap.Projects, 1)
	assert.Empty(t, snap.Purchases)
}

func TestCreateReturnsCanonicalID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "create", req["action"])
		assert.Equal(t, "workers", req["kind"])
		assert.NotNil(t, req["record"])

		_, _ = w.Write([]byte(`{"success": true, "data": {"id": "sheet-7"}}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, "")
	require.NoError(t, err)

	id, err := c.Create(context.Background(), remote.KindWorkers, map[string]string{"name": "Budi"})
	require.NoError(t, err)
	assert.Equal(t, "sheet-7", id)
}

func TestApplicationErrorIsWrapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": false, "error": "sheet locked"}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, "")
	require.NoError(t, err)

	err = c.Update(context.Background(), remote.KindWorkers, "w1", nil)
	require.Error(t, err)

	var remoteErr *remote.Error
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, "update", remoteErr.Op)
	assert.Equal(t, remote.KindWorkers, remoteErr.Kind)
	assert.Contains(t, err.Error(), "sheet locked")
}

func TestNonOKStatusIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c, err := New(srv.URL, "")
	require.NoError(t, err)

	err = c.Delete(context.Background(), remote.KindProjects, "p1")
	require.Error(t, err)

	var remoteErr *remote.Error
	assert.ErrorAs(t, err, &remoteErr)
}
