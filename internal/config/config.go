package config

import (
	"log"
	"os"
)

type Mode string

const (
	ModeLocal Mode = "local"
	ModeGCP   Mode = "gcp"
)

type Config struct {
	Mode Mode

	Port string

	// Catalog files, edited directly by operators.
	IntentsPath string
	DevicesPath string

	GCPProjectID string
	GCPLocation  string
	ModelName    string

	UseMockLLM bool // true = use mock even on GCP

	// StrictIndexes reports out-of-bounds paragraph indices as validation
	// errors instead of silent no-ops.
	StrictIndexes bool
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBoolEnv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if v == "1" || v == "true" || v == "TRUE" {
		return true
	}
	return false
}

// Load reads all env vars and builds the config
func Load() *Config {
	modeStr := getEnv("DESKPILOT_MODE", "local")
	var mode Mode
	switch modeStr {
	case "gcp":
		mode = ModeGCP
	default:
		mode = ModeLocal
	}

	cfg := &Config{
		Mode: mode,

		Port: getEnv("DESKPILOT_PORT", "8080"),

		IntentsPath: getEnv("DESKPILOT_INTENTS_FILE", "configs/intents.json"),
		DevicesPath: getEnv("DESKPILOT_DEVICES_FILE", "configs/devices.json"),

		GCPProjectID: getEnv("DESKPILOT_GCP_PROJECT", ""),
		GCPLocation:  getEnv("DESKPILOT_GCP_LOCATION", "us-central1"),
		ModelName:    getEnv("DESKPILOT_MODEL_NAME", "gemini-2.5-flash"),

		UseMockLLM:    getBoolEnv("DESKPILOT_USE_MOCK_LLM", mode == ModeLocal),
		StrictIndexes: getBoolEnv("DESKPILOT_STRICT_INDEXES", false),
	}

	// Minimal validation in GCP mode
	if cfg.Mode == ModeGCP && cfg.GCPProjectID == "" {
		log.Fatal("DESKPILOT_GCP_PROJECT must be set in gcp mode")
	}

	return cfg
}
