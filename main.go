package main

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/BhanuPrakash-01/fake-news-detector/cache"
	"github.com/BhanuPrakash-01/fake-news-detector/config"
	"github.com/BhanuPrakash-01/fake-news-detector/database"
	"github.com/BhanuPrakash-01/fake-news-detector/handlers"
	"github.com/BhanuPrakash-01/fake-news-detector/logger"
	"github.com/BhanuPrakash-01/fake-news-detector/services"
)

func main() {
	log.SetOutput(logger.GetWriter())
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	log.Println("🚀 Starting Fake News Detector API...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("❌ Failed to load configuration:", err)
	}

	log.Printf("✓ Configuration loaded")
	log.Printf("  - Environment: %s", cfg.Environment)
	log.Printf("  - Model: %s", cfg.ModelURL)
	log.Printf("  - Port: %s", cfg.Port)

	database.InitDB(cfg.DbUrl)
	resultCache := cache.New(cfg.RedisUrl)

	mlClient := services.NewMLClient(cfg.ModelURL, cfg.ModelAPIKey)

	factCheckClient := services.NewGoogleFactCheckClient(cfg.GoogleFactCheckAPIKey)
	if cfg.GoogleFactCheckAPIKey != "" {
		log.Printf("  - Google Fact Check API: enabled ✓")
	} else {
		log.Printf("  - Google Fact Check API: disabled")
	}

	analyzerService := services.NewAnalyzerService(mlClient, factCheckClient, resultCache)

	analyzerHandler := handlers.NewAnalyzerHandler(analyzerService)
	healthHandler := handlers.NewHealthHandler(cfg)
	adminHandler := handlers.NewAdminHandler(cfg, analyzerService)
	log.Println("✓ Services initialized")

	mux := http.NewServeMux()
	mux.HandleFunc("/", healthHandler.Root)
	mux.HandleFunc("/health", healthHandler.Health)
	mux.HandleFunc("/api/analyze", analyzerHandler.Analyze)
	mux.HandleFunc("/api/limits", analyzerHandler.Limits)

	// Admin API
	mux.HandleFunc("/api/admin/stats", adminHandler.AuthMiddleware(adminHandler.GetStats))
	mux.HandleFunc("/api/admin/logs", adminHandler.StreamLogs)
	mux.HandleFunc("/api/admin/pause", adminHandler.AuthMiddleware(adminHandler.Pause))
	mux.HandleFunc("/api/admin/resume", adminHandler.AuthMiddleware(adminHandler.Resume))
	mux.HandleFunc("/api/admin/status", adminHandler.AuthMiddleware(adminHandler.GetStatus))

	addr := ":" + cfg.Port
	fmt.Println("\n" + strings.Repeat("=", 50))
	fmt.Printf("🎯 Server listening on http://localhost%s\n", addr)
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("\n📝 Example:")
	fmt.Printf(`   curl -X POST http://localhost%s/api/analyze -H "Content-Type: application/json" -d '{"text": "Breaking news..."}'`+"\n", addr)
	fmt.Println("\n" + strings.Repeat("=", 50) + "\n")

	log.Println("✓ Server ready to accept requests...")
	if err := http.ListenAndServe(addr, handlers.CORS(cfg.FrontendURL, mux)); err != nil {
		log.Fatal("❌ Server failed to start:", err)
	}
}
