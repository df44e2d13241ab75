package registry

// Provider identifies one external legal-data service.
type Provider string

const (
	ProviderCourtListener Provider = "courtlistener"
	ProviderLegiScan      Provider = "legiscan"
	ProviderOpenStates    Provider = "openstates"
	ProviderScholar       Provider = "scholar"
)

// AuthScheme describes where a provider expects its credential.
type AuthScheme string

const (
	// AuthTokenHeader sends "Authorization: Token <key>" (CourtListener).
	AuthTokenHeader AuthScheme = "token-header"
	// AuthAPIKeyHeader sends the key in a provider-named header (OpenStates).
	AuthAPIKeyHeader AuthScheme = "api-key-header"
	// AuthQueryKey sends the key as a querystring parameter (LegiScan, SerpAPI).
	AuthQueryKey AuthScheme = "query-key"
)

// Endpoint describes one provider's request surface: where to reach it,
// how to authenticate, and what result-count range it accepts.
type Endpoint struct {
	DisplayName string `yaml:"display_name" json:"display_name"`

	// BaseURL is the API endpoint requests are issued against.
	BaseURL string `yaml:"base_url" json:"base_url"`

	// Origin is the canonical web origin used to absolutize relative
	// record links returned by the provider. Empty when the provider
	// already returns absolute links.
	Origin string `yaml:"origin" json:"origin"`

	Auth AuthScheme `yaml:"auth" json:"auth"`

	// AuthParam names the header or query parameter carrying the
	// credential, depending on Auth.
	AuthParam string `yaml:"auth_param" json:"auth_param"`

	// Result-count clamp range and default.
	DefaultLimit int `yaml:"default_limit" json:"default_limit"`
	MinLimit     int `yaml:"min_limit" json:"min_limit"`
	MaxLimit     int `yaml:"max_limit" json:"max_limit"`
}

// WithBaseURL returns a copy of the endpoint pointed at a different base
// URL. Used by tests and self-hosted mirrors; an empty base returns the
// endpoint unchanged.
func (e *Endpoint) WithBaseURL(base string) *Endpoint {
	if base == "" {
		return e
	}
	clone := *e
	clone.BaseURL = base
	return &clone
}

// ClampLimit forces a requested result count into the provider's
// [MinLimit, MaxLimit] range. Zero means unspecified and gets the
// default; anything else out of range is silently clamped.
func (e *Endpoint) ClampLimit(n int) int {
	if n == 0 {
		n = e.DefaultLimit
	}
	if n < e.MinLimit {
		return e.MinLimit
	}
	if n > e.MaxLimit {
		return e.MaxLimit
	}
	return n
}
