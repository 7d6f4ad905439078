package routes

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"google.golang.org/genai"

	"github.com/rmaniego/hive-scrutineer/internal/analysis"
	"github.com/rmaniego/hive-scrutineer/internal/api/handlers"
	"github.com/rmaniego/hive-scrutineer/internal/config"
	"github.com/rmaniego/hive-scrutineer/internal/hive"
	"github.com/rmaniego/hive-scrutineer/internal/lang"
	"github.com/rmaniego/hive-scrutineer/internal/middleware"
)

func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(corsMiddleware())
	r.Use(middleware.RequestID())
	if cfg.TracingEnabled {
		r.Use(middleware.RequestTiming())
	}

	client := hive.NewClient(cfg.HiveNodeURL, cfg.HivePostCacheSize)
	detector := buildDetector(cfg)
	engine := buildEngine(cfg, client, detector)

	analyzeHandler := handlers.NewAnalyzeHandler(engine, client, cfg.HiveFrontendURL)
	keywordsHandler := handlers.NewKeywordsHandler()

	api := r.Group("/api/v1")
	{
		api.GET("/analyze/:author/:permlink", analyzeHandler.AnalyzeByRef)
		api.POST("/analyze", analyzeHandler.AnalyzePost)
		api.POST("/keywords", keywordsHandler.Keywords)
		api.POST("/bigrams", keywordsHandler.Bigrams)
	}

	r.GET("/health", handlers.Health)

	return r
}

func buildDetector(cfg *config.Config) lang.Detector {
	if cfg.LangDetector == "gemini" {
		client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
			APIKey:  cfg.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			log.Fatalf("Failed to create Gemini client: %v", err)
		}
		return lang.NewGeminiDetector(client, lang.GeminiConfig{ChatModel: cfg.GeminiChatModel})
	}
	return lang.NewLinguaDetector()
}

func buildEngine(cfg *config.Config, fetcher analysis.PostFetcher, detector lang.Detector) *analysis.Engine {
	engine := analysis.NewEngine(fetcher, detector, analysis.Params{
		MinimumScore: cfg.Analysis.MinimumScore,
		MaxEmojis:    cfg.Analysis.MaxEmojis,
		MaxUserTags:  cfg.Analysis.MaxUserTags,
		MaxTags:      cfg.Analysis.MaxTags,
		Retries:      cfg.Analysis.Retries,
		Deep:         cfg.Analysis.Deep,
		Verbose:      cfg.Analysis.Verbose,
	})
	w := cfg.Analysis.Weights
	engine.SetWeights(w[0], w[1], w[2], w[3], w[4], w[5])
	return engine
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
