package config

import (
	"os"
)

// Config carries process configuration, including the long-lived provider
// credentials. Credentials are never logged and never echoed to callers.
type Config struct {
	Port        string
	Environment string
	CORSOrigins string
	// Log file directory; empty means stdout only
	LogDir string
	// Provider credentials
	CourtListenerToken string
	LegiScanAPIKey     string
	OpenStatesAPIKey   string
	SerpAPIKey         string
	// Provider base URL overrides (tests and self-hosted mirrors)
	CourtListenerBaseURL string
	LegiScanBaseURL      string
	OpenStatesBaseURL    string
	SerpAPIBaseURL       string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000"),
		LogDir:      getEnv("LOG_DIR", ""),

		CourtListenerToken: getEnv("COURTLISTENER_API_TOKEN", ""),
		LegiScanAPIKey:     getEnv("LEGISCAN_API_KEY", ""),
		OpenStatesAPIKey:   getEnv("OPENSTATES_API_KEY", ""),
		SerpAPIKey:         getEnv("SERPAPI_API_KEY", ""),

		CourtListenerBaseURL: getEnv("COURTLISTENER_BASE_URL", ""),
		LegiScanBaseURL:      getEnv("LEGISCAN_BASE_URL", ""),
		OpenStatesBaseURL:    getEnv("OPENSTATES_BASE_URL", ""),
		SerpAPIBaseURL:       getEnv("SERPAPI_BASE_URL", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
