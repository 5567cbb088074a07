package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config aggregates every runtime setting for the service.
type Config struct {
	Server  ServerConfig
	Gateway GatewayConfig
	Storage StorageConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	gateway, err := loadGatewayConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server:  server,
		Gateway: gateway,
		Storage: loadStorageConfig(),
	}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Accept ":8080" or "127.0.0.1:8080" verbatim.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// GatewayConfig describes the OpenAI-compatible AI gateway the assistant
// calls for chat completions.
type GatewayConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	// Timeout is the per-request budget in seconds.
	Timeout int
	// FetchPreviews allows the service to fetch user-supplied URLs and
	// include a content preview in the prompt.
	FetchPreviews bool
}

// Enabled reports whether the credentials needed to call the gateway are
// present.
func (c GatewayConfig) Enabled() bool {
	return c.APIKey != "" && c.Model != ""
}

func loadGatewayConfig() (GatewayConfig, error) {
	timeout := 30
	if override, err := parseOptionalIntEnv("AI_GATEWAY_TIMEOUT"); err != nil {
		return GatewayConfig{}, err
	} else if override != nil {
		if *override < 1 {
			return GatewayConfig{}, fmt.Errorf("invalid AI_GATEWAY_TIMEOUT value: %d", *override)
		}
		timeout = *override
	}

	fetchPreviews, err := parseBoolEnv("AI_GATEWAY_FETCH_PREVIEWS", true)
	if err != nil {
		return GatewayConfig{}, err
	}

	return GatewayConfig{
		BaseURL:       getEnvOrDefault("AI_GATEWAY_BASE_URL", "https://ai.gateway.lovable.dev/v1"),
		APIKey:        strings.TrimSpace(os.Getenv("AI_GATEWAY_API_KEY")),
		Model:         getEnvOrDefault("AI_GATEWAY_MODEL", "google/gemini-2.5-flash"),
		Timeout:       timeout,
		FetchPreviews: fetchPreviews,
	}, nil
}

// StorageConfig describes where user state is persisted.
type StorageConfig struct {
	Path string
}

func loadStorageConfig() StorageConfig {
	return StorageConfig{
		Path: getEnvOrDefault("STORAGE_PATH", "data/state.json"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
