package flavor

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"ingredient-assistant/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gatewayConfig(baseURL string) *config.Config {
	return &config.Config{
		Foodoscope: config.FoodoscopeConfig{
			APIKey:  "test-key",
			BaseURL: baseURL,
			Timeout: 2 * time.Second,
		},
	}
}

const upstreamBody = `{
	"entities": [
		{
			"entity_alias_readable": "Saffron",
			"category_readable": "Spice",
			"common_name": "Crocus sativus",
			"flavor_profile": "floral@bitter@ honeyed",
			"molecules": ["safranal", "picrocrocin"]
		}
	]
}`

func TestGatewayFetchSuccess(t *testing.T) {
	var gotPath, gotOccurrence, gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotOccurrence = r.URL.Query().Get("occurrence")
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(upstreamBody))
	}))
	defer ts.Close()

	gw := NewGateway(gatewayConfig(ts.URL))
	require.NotNil(t, gw)

	rec, err := gw.Fetch(context.Background(), "  Saffron ")
	require.NoError(t, err)
	require.NotNil(t, rec)

	assert.Equal(t, "/flavordb/properties/by-naturalOccurrence", gotPath)
	assert.Equal(t, "saffron", gotOccurrence)
	assert.Equal(t, "Bearer test-key", gotAuth)

	assert.Equal(t, "saffron", rec.Name)
	assert.Equal(t, []string{"floral", "bitter", "honeyed"}, rec.PrimaryFlavors)
	assert.Equal(t, []string{"spice"}, rec.Categories)
	assert.Equal(t, []string{"safranal", "picrocrocin"}, rec.AromaCompounds)
	assert.Contains(t, rec.ChemicalNotes, "Crocus sativus")
}

func TestGatewayFetchUpstreamStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	gw := NewGateway(gatewayConfig(ts.URL))
	require.NotNil(t, gw)

	rec, err := gw.Fetch(context.Background(), "saffron")
	assert.Nil(t, rec)

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusInternalServerError, upstream.StatusCode)
}

func TestGatewayFetchTransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	gw := NewGateway(gatewayConfig(url))
	require.NotNil(t, gw)

	rec, err := gw.Fetch(context.Background(), "saffron")
	assert.Nil(t, rec)

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Zero(t, upstream.StatusCode)
}

func TestGatewayFetchNoEntities(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"entities": []}`))
	}))
	defer ts.Close()

	gw := NewGateway(gatewayConfig(ts.URL))
	require.NotNil(t, gw)

	rec, err := gw.Fetch(context.Background(), "unobtainium")
	assert.NoError(t, err)
	assert.Nil(t, rec)
}

func TestGatewayDisabledWithoutCredentials(t *testing.T) {
	for _, key := range []string{"", "  ", "your_api_key_here"} {
		cfg := gatewayConfig("http://localhost:1")
		cfg.Foodoscope.APIKey = key
		assert.Nil(t, NewGateway(cfg), "key %q", key)
	}
}

func TestLookupMergesGatewayResultIntoStore(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(upstreamBody))
	}))
	defer ts.Close()

	store, err := NewFileStore(filepath.Join(t.TempDir(), "flavor.json"))
	require.NoError(t, err)

	svc := NewService(nil, store, NewGateway(gatewayConfig(ts.URL)))

	rec, err := svc.Lookup(context.Background(), "saffron")
	require.NoError(t, err)
	require.NotNil(t, rec)

	stored, ok, err := store.Get(context.Background(), "saffron")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, rec.PrimaryFlavors, stored.PrimaryFlavors)
}

// brokenStore 讀寫皆失敗的持久層
type brokenStore struct{}

func (b *brokenStore) Get(context.Context, string) (*Record, bool, error) {
	return nil, false, errors.New("store read failure")
}

func (b *brokenStore) Put(context.Context, *Record) error {
	return errors.New("store write failure")
}

func (b *brokenStore) Close() error { return nil }

func TestLookupSurvivesBrokenStore(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(upstreamBody))
	}))
	defer ts.Close()

	svc := NewService(nil, &brokenStore{}, NewGateway(gatewayConfig(ts.URL)))

	rec, err := svc.Lookup(context.Background(), "saffron")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "saffron", rec.Name)
}
