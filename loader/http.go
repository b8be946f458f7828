package loader

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// HTTPProvider fetches templates from a remote catalog and memoizes every
// lookup, including misses, so a flaky endpoint cannot cause retry storms
// mid-battle.
type HTTPProvider struct {
	baseURL string
	client  *http.Client

	mu    sync.Mutex
	cache map[string]*Template // nil entry records a negative lookup
}

// HTTPProviderConfig configures an HTTPProvider.
type HTTPProviderConfig struct {
	// BaseURL is the catalog root, e.g. https://templates.example.com.
	BaseURL string

	// Timeout bounds each request; zero means 10 seconds.
	Timeout time.Duration

	// Client overrides the HTTP client; nil builds one from Timeout.
	Client *http.Client
}

// NewHTTPProvider creates a provider against the given catalog.
func NewHTTPProvider(cfg HTTPProviderConfig) *HTTPProvider {
	client := cfg.Client
	if client == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 10 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}

	return &HTTPProvider{
		baseURL: cfg.BaseURL,
		client:  client,
		cache:   make(map[string]*Template),
	}
}

// ConfigByID returns the template for the id, fetching it on first use.
// Fetch failures are cached as misses.
func (h *HTTPProvider) ConfigByID(id string) (*Template, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if tpl, seen := h.cache[id]; seen {
		return tpl, tpl != nil
	}

	tpl := h.fetch(id)
	h.cache[id] = tpl
	return tpl, tpl != nil
}

// Has reports whether the id resolves to a template.
func (h *HTTPProvider) Has(id string) bool {
	_, ok := h.ConfigByID(id)
	return ok
}

// fetch performs one catalog request. Any failure, transport or decode,
// yields nil so the caller records a miss.
func (h *HTTPProvider) fetch(id string) *Template {
	resp, err := h.client.Get(fmt.Sprintf("%s/creatures/%s", h.baseURL, id))
	if err != nil {
		return nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var tpl Template
	if err := json.NewDecoder(resp.Body).Decode(&tpl); err != nil {
		return nil
	}
	return &tpl
}
