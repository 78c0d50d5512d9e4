package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/AYG3/Truck-Driver-Logbook/internal/adapters/cache"
	"github.com/AYG3/Truck-Driver-Logbook/internal/api"
	"github.com/AYG3/Truck-Driver-Logbook/internal/ports"
	"github.com/AYG3/Truck-Driver-Logbook/internal/render"
)

// main is the application composition root.
// It wires the renderer and the optional redis render cache behind
// ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := getEnv("PORT", "8080")
	redisAddr := os.Getenv("REDIS_ADDR")
	cacheTTL := getEnv("RENDER_CACHE_TTL", "1h")

	var renderCache ports.RenderCache
	if redisAddr != "" {
		ttl, err := time.ParseDuration(cacheTTL)
		if err != nil {
			log.Fatalf("invalid RENDER_CACHE_TTL %q: %v", cacheTTL, err)
		}

		client := redis.NewClient(&redis.Options{Addr: redisAddr})
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := client.Ping(ctx).Err(); err != nil {
			cancel()
			log.Fatalf("redis ping %s: %v", redisAddr, err)
		}
		cancel()

		renderCache = cache.NewRedisRenderCache(client, ttl)
		log.Printf("render cache enabled addr=%s ttl=%s", redisAddr, ttl)
	}

	renderer := render.NewRenderer()
	router := api.NewRouter(renderer, renderCache)

	// Renders are fast and synchronous; write timeout mostly covers
	// slow clients downloading PNGs.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
