// Package providers integrates the third-party game stat APIs. Each provider fetches
// raw stats for one category and maps them onto that category's standardized keys;
// callers treat the result as an opaque document.
package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"
)

var ErrNoProvider = errors.New("no stats provider for category")

type Provider interface {
	// Fetch retrieves stats for an in-game handle. Implementations must respect
	// the context deadline; a hung upstream surfaces as a context error.
	Fetch(ctx context.Context, handle string) (map[string]interface{}, error)
}

// Registry maps category names to their provider.
type Registry struct {
	providers map[string]Provider
}

func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]Provider)}
}

func (r *Registry) Register(category string, p Provider) {
	r.providers[category] = p
}

func (r *Registry) For(category string) (Provider, error) {
	p, ok := r.providers[category]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoProvider, category)
	}
	return p, nil
}

// NewRegistryFromEnv wires the default category providers from environment config.
func NewRegistryFromEnv() *Registry {
	r := NewRegistry()
	r.Register("MOBA", NewRiotProvider(os.Getenv("RIOT_API_URL"), os.Getenv("RIOT_API_KEY")))
	r.Register("FPS", NewUbisoftProvider(os.Getenv("UBISOFT_API_URL"), os.Getenv("UBISOFT_API_KEY")))
	return r
}

// fetchJSON performs a GET against url and decodes the body into a generic document.
func fetchJSON(ctx context.Context, client *http.Client, url string, headers map[string]string) (map[string]interface{}, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	var data map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, err
	}
	return data, nil
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: 30 * time.Second}
}
