package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/prompthub/prompthub/internal/config"
	"github.com/prompthub/prompthub/internal/enhancer"
	"github.com/prompthub/prompthub/internal/handlers"
	"github.com/prompthub/prompthub/internal/middleware"
	"github.com/prompthub/prompthub/monitoring"
	"github.com/prompthub/prompthub/openai"
	"github.com/prompthub/prompthub/web"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "default"
	}

	// Initialize configuration
	cfg, err := config.LoadConfig(env)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize OpenAI Client
	openaiClient := openai.NewClient(cfg.LLM.OpenAI.BaseUrl)

	// Enhancer Service
	enhancerService := enhancer.NewService(openaiClient, cfg.LLM.OpenAI, config.OpenAIKey)

	// Metrics
	metrics := monitoring.NewMetrics(prometheus.DefaultRegisterer)

	// Initialize Router
	router := gin.Default()
	router.Use(middleware.RequestID())
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Cors.AllowedOrigins,
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Content-Type"},
	}))
	// Metrics handler
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	// Health Handler
	healthHandler := handlers.NewHealthHandler()
	router.GET("/health", healthHandler.IsHealthy)
	// Enhance Handler
	enhanceHandler := handlers.NewEnhanceHandler(enhancerService, metrics)
	router.POST("/enhance", enhanceHandler.EnhancePrompt)
	// Embedded client page
	router.GET("/", func(c *gin.Context) {
		c.FileFromFS("static/", http.FS(web.Static))
	})

	router.Run(fmt.Sprintf(":%d", cfg.Server.Port))
}
