package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/usps-zip4/internal/usps"
)

// Environment variables read at startup
const (
	EnvUserID   = "USPS_WEBTOOLS_USERID"
	EnvPassword = "USPS_WEBTOOLS_PASSWORD"
	EnvEndpoint = "USPS_WEBTOOLS_ENDPOINT"

	// Defaults for the --throttle and --debug flags
	EnvThrottle = "USPS_ZIP4_THROTTLE"
	EnvDebug    = "USPS_ZIP4_DEBUG"
)

// envPaths are tried in order; the first readable file wins
var envPaths = []string{".env", "../.env", "../../.env"}

// LoadEnv loads variables from the first .env file found. Variables already
// set in the environment are left alone.
func LoadEnv() error {
	for _, envPath := range envPaths {
		data, err := os.ReadFile(envPath)
		if err != nil {
			continue
		}
		for key, value := range parseEnv(string(data)) {
			if os.Getenv(key) == "" {
				if err := os.Setenv(key, value); err != nil {
					return err
				}
			}
		}
		break
	}
	return nil
}

// parseEnv reads KEY=VALUE lines, skipping blanks and # comments. Matching
// surrounding quotes are stripped from values.
func parseEnv(data string) map[string]string {
	values := make(map[string]string)
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(strings.TrimPrefix(parts[0], "export "))
		value := strings.TrimSpace(parts[1])
		if len(value) >= 2 && (value[0] == '"' || value[0] == '\'') && value[len(value)-1] == value[0] {
			value = value[1 : len(value)-1]
		}
		if key != "" {
			values[key] = value
		}
	}
	return values
}

// Load reads the Web Tools credentials and endpoint from the environment.
// A missing USERID is reported by usps.New, not here.
func Load() usps.Config {
	return usps.Config{
		UserID:   strings.TrimSpace(os.Getenv(EnvUserID)),
		Password: strings.TrimSpace(os.Getenv(EnvPassword)),
		Endpoint: strings.TrimSpace(GetEnv(EnvEndpoint, usps.DefaultEndpoint)),
	}
}

// GetEnv gets environment variable with default
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvFloat gets float environment variable with default
func GetEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// GetEnvBool gets boolean environment variable with default
func GetEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		switch strings.ToLower(value) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return defaultValue
}
