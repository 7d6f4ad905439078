package main

import (
	"log"

	"github.com/rmaniego/hive-scrutineer/internal/api/routes"
	"github.com/rmaniego/hive-scrutineer/internal/config"
	"github.com/rmaniego/hive-scrutineer/internal/observability"
)

// @title           Hive Scrutineer API
// @version         1.0
// @description     Performance and quality analytics on Hive posts: a weighted
// @description     content-scoring pipeline over title readability, body
// @description     substance, emoji density, image ratio, mention density and
// @description     tag usage.

// @license.name  MIT

func main() {
	cfg := config.LoadConfig()

	observability.InitTracer(cfg)
	defer observability.ShutdownTracer()

	r := routes.SetupRouter(cfg)

	log.Printf("Server listening on port %s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
