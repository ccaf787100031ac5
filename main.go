package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xiaot623/support-assistant/internal/adapter/llm"
	"github.com/xiaot623/support-assistant/internal/config"
	"github.com/xiaot623/support-assistant/internal/docs"
	"github.com/xiaot623/support-assistant/internal/prompt"
	store "github.com/xiaot623/support-assistant/internal/repository"
	"github.com/xiaot623/support-assistant/internal/service"
	transport "github.com/xiaot623/support-assistant/internal/transport/http"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting support assistant backend...")
	log.Printf("HTTP Port: %d", cfg.Port)
	log.Printf("Database: %s", cfg.DatabaseURL)
	log.Printf("LLM Model: %s", cfg.LLMModel)

	// Initialize store
	db, err := store.NewSQLiteStore(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer db.Close()

	// Load the documentation set and build the system prompt once.
	documents, err := docs.Load(cfg.DocsPath)
	if err != nil {
		log.Fatalf("Failed to load documentation set: %v", err)
	}
	log.Printf("Loaded %d documents", len(documents))
	systemPrompt := prompt.BuildSystemPrompt(documents)

	// Initialize LLM gateway
	gateway := llm.NewGateway(cfg, systemPrompt)

	// Initialize service
	svc := service.New(db, gateway)

	// Create HTTP server
	server := transport.NewServer(svc, cfg)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("API started on port %d", cfg.Port)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown server gracefully: %v", err)
	}

	log.Println("Support assistant stopped")
}
