package lang

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"google.golang.org/genai"
)

// GeminiConfig configures the Gemini-backed detector.
type GeminiConfig struct {
	ChatModel       string
	MaxTextLength   int
	CacheTTLMinutes int
	CacheMaxSize    int
}

// DefaultGeminiConfig returns the default detector configuration.
func DefaultGeminiConfig() GeminiConfig {
	return GeminiConfig{
		ChatModel:       "gemini-2.0-flash",
		MaxTextLength:   10000,
		CacheTTLMinutes: 30,
		CacheMaxSize:    1000,
	}
}

// GeminiDetector delegates language classification to the Gemini API.
// Responses are cached by text hash since the same body is classified
// more than once during a single analysis.
type GeminiDetector struct {
	client *genai.Client
	config GeminiConfig
	cache  *confidenceCache
}

type confidenceCache struct {
	data    map[string]cachedConfidences
	mu      sync.RWMutex
	ttl     time.Duration
	maxSize int
}

type cachedConfidences struct {
	confidences map[string]float64
	timestamp   time.Time
}

// NewGeminiDetector creates a detector backed by the given client.
func NewGeminiDetector(client *genai.Client, cfg GeminiConfig) *GeminiDetector {
	defaults := DefaultGeminiConfig()
	if cfg.ChatModel == "" {
		cfg.ChatModel = defaults.ChatModel
	}
	if cfg.MaxTextLength == 0 {
		cfg.MaxTextLength = defaults.MaxTextLength
	}
	if cfg.CacheTTLMinutes == 0 {
		cfg.CacheTTLMinutes = defaults.CacheTTLMinutes
	}
	if cfg.CacheMaxSize == 0 {
		cfg.CacheMaxSize = defaults.CacheMaxSize
	}

	return &GeminiDetector{
		client: client,
		config: cfg,
		cache: &confidenceCache{
			data:    make(map[string]cachedConfidences),
			ttl:     time.Duration(cfg.CacheTTLMinutes) * time.Minute,
			maxSize: cfg.CacheMaxSize,
		},
	}
}

// IsAvailable reports whether the underlying client is configured.
func (d *GeminiDetector) IsAvailable() bool {
	return d != nil && d.client != nil
}

// Confidences asks the model for per-language confidence values.
func (d *GeminiDetector) Confidences(ctx context.Context, text string) (map[string]float64, error) {
	if d.client == nil {
		return nil, fmt.Errorf("gemini client not initialized")
	}

	if len(text) > d.config.MaxTextLength {
		text = text[:d.config.MaxTextLength]
	}

	cacheKey := d.cacheKey(text)
	if cached := d.cache.get(cacheKey); cached != nil {
		return cached, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	prompt := fmt.Sprintf(
		"Identify the languages of the following text. Respond with a JSON object "+
			"mapping lowercase ISO 639-1 language codes to confidence values between 0 and 1. "+
			"Respond with the JSON object only.\n\nText:\n%s", text)

	resp, err := d.client.Models.GenerateContent(
		ctx,
		d.config.ChatModel,
		genai.Text(prompt),
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"},
	)
	if err != nil {
		return nil, fmt.Errorf("language classification failed: %w", err)
	}

	confidences := make(map[string]float64)
	if err := json.Unmarshal([]byte(resp.Text()), &confidences); err != nil {
		return nil, fmt.Errorf("unparseable classifier response: %w", err)
	}

	d.cache.set(cacheKey, confidences)
	return confidences, nil
}

func (d *GeminiDetector) cacheKey(text string) string {
	hash := sha256.Sum256([]byte(text))
	return hex.EncodeToString(hash[:])
}

func (c *confidenceCache) get(key string) map[string]float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if cached, ok := c.data[key]; ok {
		if time.Since(cached.timestamp) < c.ttl {
			return cached.confidences
		}
	}
	return nil
}

func (c *confidenceCache) set(key string, confidences map[string]float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.data) >= c.maxSize {
		c.cleanup()
	}

	c.data[key] = cachedConfidences{
		confidences: confidences,
		timestamp:   time.Now(),
	}
}

func (c *confidenceCache) cleanup() {
	now := time.Now()
	for key, cached := range c.data {
		if now.Sub(cached.timestamp) > c.ttl {
			delete(c.data, key)
		}
	}
}
