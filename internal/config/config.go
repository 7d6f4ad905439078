// Package config loads application configuration from environment
// variables.
//
// # Environment Variables
//
// ## Hive
//   - HIVE_NODE_URL: condenser-API node endpoint (default: https://api.hive.blog)
//   - HIVE_POST_CACHE_SIZE: in-process post cache size (default: 128)
//   - HIVE_FRONTEND_URL: frontend used to build post URLs (default: https://hive.blog)
//
// ## Analysis
//   - ANALYSIS_MINIMUM_SCORE: minimum editorial bar on a 0-100 scale (default: 80)
//   - ANALYSIS_MAX_EMOJIS: emoji count limit per post (default: 0)
//   - ANALYSIS_MAX_USER_TAGS: user-mention limit per post (default: 5)
//   - ANALYSIS_MAX_TAGS: declared-tag limit per post (default: 5)
//   - ANALYSIS_RETRIES: fetch retry bound (default: 1)
//   - ANALYSIS_DEEP: enable deep-mode deduplication (default: false)
//   - ANALYSIS_VERBOSE: include per-dimension diagnostics (default: false)
//   - ANALYSIS_WEIGHTS: six comma-separated weights for title, body, emojis,
//     images, tagging, tags (default: 1,1,1,1,1,1)
//
// ## Language detection
//   - LANG_DETECTOR: "lingua" or "gemini" (default: lingua)
//   - GEMINI_API_KEY: Google Gemini API key (required for the gemini detector)
//   - GEMINI_CHAT_MODEL: model for language classification (default: gemini-2.0-flash)
//
// ## Server
//   - SERVER_PORT: HTTP listen port (default: 8080)
//   - TRACING_ENABLED: enable OTLP tracing (default: false)
//   - TRACING_ENDPOINT: OTLP gRPC endpoint (default: localhost:4317)
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// WeightCount is the fixed number of dimension weights: title, body,
// emojis, images, tagging, tags.
const WeightCount = 6

type Config struct {
	HiveNodeURL       string `validate:"required,url"`
	HivePostCacheSize int    `validate:"gt=0"`
	HiveFrontendURL   string `validate:"required,url"`

	ServerPort string `validate:"required"`

	// Analysis thresholds
	Analysis AnalysisConfig

	// Language detection
	LangDetector    string `validate:"oneof=lingua gemini"`
	GeminiAPIKey    string
	GeminiChatModel string

	// Tracing configuration
	TracingEnabled  bool
	TracingEndpoint string
}

// AnalysisConfig contains the scoring thresholds and weights.
type AnalysisConfig struct {
	// Minimum aggregate score (0-100 scale) for a post to meet the bar
	MinimumScore float64 `validate:"gte=0,lte=100"`

	// Emoji count limit; 0 means any emoji is a hard fail
	MaxEmojis int `validate:"gte=0"`

	// User-mention limit per post body
	MaxUserTags int `validate:"gte=0"`

	// Declared-tag limit per post
	MaxTags int `validate:"gte=0"`

	// Fetch retry bound delegated to the node client
	Retries int `validate:"gte=1"`

	// Deep enables boilerplate deduplication against the author's history
	Deep bool

	// Verbose includes per-dimension diagnostics in results
	Verbose bool

	// Weights for title, body, emojis, images, tagging, tags
	Weights [WeightCount]float64
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		HiveNodeURL:       getEnv("HIVE_NODE_URL", "https://api.hive.blog"),
		HivePostCacheSize: getEnvInt("HIVE_POST_CACHE_SIZE", 128),
		HiveFrontendURL:   getEnv("HIVE_FRONTEND_URL", "https://hive.blog"),

		ServerPort: getEnv("SERVER_PORT", "8080"),

		Analysis: AnalysisConfig{
			MinimumScore: getEnvFloat("ANALYSIS_MINIMUM_SCORE", 80),
			MaxEmojis:    getEnvInt("ANALYSIS_MAX_EMOJIS", 0),
			MaxUserTags:  getEnvInt("ANALYSIS_MAX_USER_TAGS", 5),
			MaxTags:      getEnvInt("ANALYSIS_MAX_TAGS", 5),
			Retries:      getEnvInt("ANALYSIS_RETRIES", 1),
			Deep:         getEnv("ANALYSIS_DEEP", "false") == "true",
			Verbose:      getEnv("ANALYSIS_VERBOSE", "false") == "true",
			Weights:      [WeightCount]float64{1, 1, 1, 1, 1, 1},
		},

		LangDetector:    getEnv("LANG_DETECTOR", "lingua"),
		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		GeminiChatModel: getEnv("GEMINI_CHAT_MODEL", "gemini-2.0-flash"),

		TracingEnabled:  getEnv("TRACING_ENABLED", "false") == "true",
		TracingEndpoint: getEnv("TRACING_ENDPOINT", "localhost:4317"),
	}

	if weightsCSV := os.Getenv("ANALYSIS_WEIGHTS"); weightsCSV != "" {
		weights, err := ParseWeights(weightsCSV)
		if err != nil {
			log.Fatalf("Invalid ANALYSIS_WEIGHTS: %v", err)
		}
		cfg.Analysis.Weights = weights
	}

	if cfg.LangDetector == "gemini" && cfg.GeminiAPIKey == "" {
		log.Fatal("GEMINI_API_KEY is required when LANG_DETECTOR=gemini")
	}

	if err := validator.New().Struct(cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	return cfg
}

// ParseWeights parses a comma-separated list of exactly six dimension
// weights.
func ParseWeights(csv string) ([WeightCount]float64, error) {
	var weights [WeightCount]float64

	parts := strings.Split(csv, ",")
	if len(parts) != WeightCount {
		return weights, fmt.Errorf("expected %d weights, got %d", WeightCount, len(parts))
	}
	for i, part := range parts {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return weights, fmt.Errorf("weight %d: %v", i+1, err)
		}
		weights[i] = value
	}
	return weights, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
