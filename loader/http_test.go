package loader_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sasakirione/pokesim/loader"
)

func newCatalogServer(t *testing.T, hits *atomic.Int64) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)

		if r.URL.Path != "/creatures/pikachu" {
			http.NotFound(w, r)
			return
		}

		tpl := loader.Template{
			Name:      "Pikachu",
			Types:     []string{"Electric"},
			BaseStats: loader.StatSpread{HP: 35, Attack: 55, Defense: 40, SpAttack: 50, SpDefense: 50, Speed: 90},
			Moves: []loader.MoveTemplate{
				{Name: "Thunderbolt", Type: "Electric", Category: "Special", Power: 90, Accuracy: 100},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(tpl))
	}))
}

func TestHTTPProvider_FetchesAndMemoizes(t *testing.T) {
	var hits atomic.Int64
	server := newCatalogServer(t, &hits)
	defer server.Close()

	p := loader.NewHTTPProvider(loader.HTTPProviderConfig{BaseURL: server.URL})

	tpl, ok := p.ConfigByID("pikachu")
	require.True(t, ok)
	assert.Equal(t, "Pikachu", tpl.Name)

	// Repeat lookups are served from the cache.
	for i := 0; i < 5; i++ {
		_, ok := p.ConfigByID("pikachu")
		require.True(t, ok)
	}
	assert.True(t, p.Has("pikachu"))

	assert.Equal(t, int64(1), hits.Load())
}

func TestHTTPProvider_CachesNegativeLookups(t *testing.T) {
	var hits atomic.Int64
	server := newCatalogServer(t, &hits)
	defer server.Close()

	p := loader.NewHTTPProvider(loader.HTTPProviderConfig{BaseURL: server.URL})

	for i := 0; i < 5; i++ {
		_, ok := p.ConfigByID("missingno")
		assert.False(t, ok)
	}

	assert.Equal(t, int64(1), hits.Load())
}

func TestHTTPProvider_UnreachableCatalogIsAMiss(t *testing.T) {
	p := loader.NewHTTPProvider(loader.HTTPProviderConfig{
		BaseURL: "http://127.0.0.1:1",
	})

	_, ok := p.ConfigByID("pikachu")
	assert.False(t, ok)
	assert.False(t, p.Has("pikachu"))
}
