package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/duskwarden/hemosearch/internal/api"
	"github.com/duskwarden/hemosearch/internal/cardmodel"
	"github.com/duskwarden/hemosearch/internal/corpus"
)

// ingestSeedFile upserts a JSON array of cards into the store, so a fresh
// deployment can be seeded from a catalog dump before serving.
func ingestSeedFile(store *corpus.Store, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var cards []cardmodel.Card
	if err := json.Unmarshal(data, &cards); err != nil {
		return fmt.Errorf("decode cards: %w", err)
	}
	if err := store.Ingest(cards); err != nil {
		return err
	}
	log.Printf("Ingested %d cards from %s", len(cards), path)
	return nil
}

func main() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./hemosearch.db"
	}

	store, err := corpus.Open(dbPath)
	if err != nil {
		log.Fatalf("Failed to open corpus: %v", err)
	}

	if seedPath := os.Getenv("CARDS_JSON"); seedPath != "" {
		if err := ingestSeedFile(store, seedPath); err != nil {
			log.Fatalf("Failed to ingest %s: %v", seedPath, err)
		}
	}

	n, err := store.Count()
	if err != nil {
		log.Fatalf("Failed to count corpus: %v", err)
	}
	log.Printf("Loaded %d cards from %s", n, dbPath)

	router, err := api.SetupRouter(store)
	if err != nil {
		log.Fatalf("Failed to set up router: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		log.Printf("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
