package api

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/duskwarden/hemosearch/internal/api/handlers"
	"github.com/duskwarden/hemosearch/internal/corpus"
)

// defaultQueryCacheSize bounds the parsed-query LRU. A card-search frontend
// realistically cycles through a few hundred distinct filter combinations
// per session; this comfortably covers that without growing unbounded.
const defaultQueryCacheSize = 1024

// SetupRouter builds the full HTTP surface: CORS, request metrics, a
// per-IP rate limiter guarding /api/search, the search endpoint itself,
// /health, and the Prometheus /metrics mount.
func SetupRouter(store *corpus.Store) (*gin.Engine, error) {
	router := gin.Default()

	config := cors.DefaultConfig()
	if corsOrigins := os.Getenv("CORS_ALLOWED_ORIGINS"); corsOrigins != "" {
		config.AllowOrigins = strings.Split(corsOrigins, ",")
	} else {
		config.AllowOrigins = []string{"http://localhost:5173", "http://localhost:3000"}
	}
	config.AllowMethods = []string{"GET", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	config.AllowCredentials = false
	router.Use(cors.New(config))

	router.Use(httpMetrics())

	searchHandler, err := handlers.NewSearchHandler(store, defaultQueryCacheSize)
	if err != nil {
		return nil, err
	}

	limiter := newVisitorLimiter(rate.Every(time.Second/20), 10)

	api := router.Group("/api")
	{
		api.GET("/search", rateLimit(limiter), searchHandler.Search)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router, nil
}
