package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itzmejanak/devalaya-backend/internal/config"
	"github.com/itzmejanak/devalaya-backend/internal/content"
)

func testContentService(t *testing.T, baseURL string) *ContentService {
	t.Helper()

	snap, err := content.LoadSnapshot()
	require.NoError(t, err)

	cfg := &config.Config{
		ContentAPIBaseURL:  baseURL,
		ContentAPIDatabase: "devalaya",
		ContentAPIKey:      "test-key",
	}
	return NewContentService(cfg, snap, zerolog.Nop())
}

func TestFetchCollectionLiveWins(t *testing.T) {
	var gotPath, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-api-key")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"title":"Live Service"}]`))
	}))
	defer srv.Close()

	svc := testContentService(t, srv.URL)

	payload, err := svc.FetchCollection(context.Background(), "services")
	require.NoError(t, err)

	assert.Equal(t, "/devalaya/services", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.True(t, payload.Success)
	assert.Equal(t, "services", payload.Collection)
	require.Len(t, payload.Data, 1)
	assert.JSONEq(t, `{"title":"Live Service"}`, string(payload.Data[0]))
}

func TestFetchCollectionFallsBackToSnapshot(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "empty array",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`[]`))
			},
		},
		{
			name: "undecodable body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"not":"an array"}`))
			},
		},
	}

	snap, err := content.LoadSnapshot()
	require.NoError(t, err)
	want := snap.Collection("services")
	require.NotEmpty(t, want, "snapshot must ship services records")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			svc := testContentService(t, srv.URL)
			payload, err := svc.FetchCollection(context.Background(), "services")
			require.NoError(t, err)

			assert.True(t, payload.Success)
			assert.Len(t, payload.Data, len(want))
		})
	}
}

func TestFetchCollectionNetworkErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // Immediately dead: every request fails at the dial.

	svc := testContentService(t, srv.URL)
	payload, err := svc.FetchCollection(context.Background(), "team")
	require.NoError(t, err)

	snap, err := content.LoadSnapshot()
	require.NoError(t, err)
	assert.Len(t, payload.Data, len(snap.Collection("team")))
}

func TestFetchCollectionRejectsUnknownName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("unknown collections must be rejected before any outbound call")
	}))
	defer srv.Close()

	svc := testContentService(t, srv.URL)

	for _, name := range []string{"users", "blogs", "", "Services", "../services"} {
		payload, err := svc.FetchCollection(context.Background(), name)
		assert.Nil(t, payload)
		assert.ErrorIs(t, err, ErrUnknownCollection)
	}
}
