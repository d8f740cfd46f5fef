package config

import "os"

type GeocodingConfig struct {
	BaseURL   string
	UserAgent string
}

type AssistantConfig struct {
	APIURL string
	APIKey string
	Model  string
}

func LoadGeocodingConfig() GeocodingConfig {
	return GeocodingConfig{
		BaseURL:   getEnvOrDefault("GEOCODE_BASE_URL", "https://nominatim.openstreetmap.org"),
		UserAgent: getEnvOrDefault("GEOCODE_USER_AGENT", "biomedionics-storefront/1.0"),
	}
}

func LoadAssistantConfig() AssistantConfig {
	return AssistantConfig{
		APIURL: os.Getenv("ASSISTANT_API_URL"),
		APIKey: os.Getenv("ASSISTANT_API_KEY"),
		Model:  getEnvOrDefault("ASSISTANT_MODEL", "gemini-2.5-flash"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
