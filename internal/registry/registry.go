package registry

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed config/*.yaml
var configFiles embed.FS

// Registry holds the endpoint descriptors for every supported provider.
type Registry struct {
	endpoints map[Provider]*Endpoint
	mu        sync.RWMutex
}

// NewRegistry creates a provider registry from the embedded YAML files.
func NewRegistry() (*Registry, error) {
	r := &Registry{
		endpoints: make(map[Provider]*Endpoint),
	}

	for _, p := range []Provider{ProviderCourtListener, ProviderLegiScan, ProviderOpenStates, ProviderScholar} {
		if err := r.loadProviderFile(p); err != nil {
			return nil, fmt.Errorf("failed to load %s endpoint config: %w", p, err)
		}
	}

	return r, nil
}

// loadProviderFile loads one provider's endpoint YAML file.
func (r *Registry) loadProviderFile(p Provider) error {
	filename := fmt.Sprintf("config/%s.yaml", p)
	data, err := configFiles.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filename, err)
	}

	var ep Endpoint
	if err := yaml.Unmarshal(data, &ep); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", filename, err)
	}
	if ep.BaseURL == "" {
		return fmt.Errorf("%s: base_url is required", filename)
	}
	if ep.MinLimit < 1 || ep.MaxLimit < ep.MinLimit {
		return fmt.Errorf("%s: invalid limit range [%d, %d]", filename, ep.MinLimit, ep.MaxLimit)
	}

	r.mu.Lock()
	r.endpoints[p] = &ep
	r.mu.Unlock()

	return nil
}

// Endpoint returns the descriptor for a provider.
func (r *Registry) Endpoint(p Provider) (*Endpoint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ep, ok := r.endpoints[p]
	if !ok {
		return nil, fmt.Errorf("unknown provider: %s", p)
	}
	return ep, nil
}
