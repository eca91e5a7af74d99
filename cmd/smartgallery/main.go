package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"smartgallery/internal/album"
	"smartgallery/internal/classifier"
	"smartgallery/internal/config"
	"smartgallery/internal/domain"
	"smartgallery/internal/gallery"
	"smartgallery/internal/resolver"
	"smartgallery/internal/server"
	"smartgallery/internal/storage"
)

func main() {
	// --- Configuration Loading ---
	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// --- Logger Setup ---
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)

	log.WithFields(logrus.Fields{
		"resolver_strategy": cfg.ResolverStrategy,
		"album_fetch_mode":  cfg.AlbumFetchMode,
		"badgerdb_path":     cfg.BadgerDBPath,
	}).Info("Configuration loaded successfully")

	// --- Initialize Components ---
	log.Info("Initializing components...")

	categories := domain.DefaultCategories()
	if len(cfg.Categories) > 0 {
		labels := make([]domain.Category, len(cfg.Categories))
		for i, l := range cfg.Categories {
			labels[i] = domain.Category(l)
		}
		categories = domain.NewCategorySet(labels...)
	}

	// Database
	repo, err := storage.NewBadgerRepository(cfg.BadgerDBPath, log)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		log.Info("Closing database...")
		if err := repo.Close(); err != nil {
			log.WithError(err).Error("Error closing database")
		}
	}()

	// Album fetcher
	var fetcher album.Fetcher
	switch cfg.AlbumFetchMode {
	case config.FetchModeBrowser:
		fetcher = album.NewBrowserFetcher(cfg.AlbumURL, cfg.FetchTimeout(), log)
	default:
		fetcher = album.NewHTTPFetcher(cfg.AlbumURL, cfg.FetchTimeout(), log)
	}

	// Metadata resolver
	var res resolver.Resolver
	switch cfg.ResolverStrategy {
	case config.StrategyAI:
		images := album.NewImageFetcher(cfg.FetchTimeout(), log)
		gemini := classifier.NewGeminiClassifier(cfg.GeminiAPIKey, cfg.GeminiModel, categories, cfg.FetchTimeout(), log)
		res = resolver.NewAIResolver(images, gemini, cfg.ClassifyDelay(), log)
	case config.StrategyStore:
		res = resolver.NewStoreResolver(repo, log)
	default:
		res = resolver.NewStaticResolver(nil, categories, log)
	}

	// Pipeline + cache
	service := gallery.NewService(fetcher, res, cfg.MaxPhotos, log)
	cache := gallery.NewCache(service, cfg.CacheTTL(), gallery.RealClock{}, log)

	// HTTP server
	handler := server.NewHandler(cfg, cache, repo, fetcher, log)
	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: handler.Router(),
	}

	// --- Application Startup ---
	log.Info("Starting smartgallery...")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.WithField("addr", cfg.ListenAddr).Info("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("HTTP server failed")
		}
	}()

	log.Info("smartgallery is running. Press Ctrl+C to exit.")

	// --- Wait for Shutdown Signal ---
	<-ctx.Done()

	// --- Graceful Shutdown ---
	log.Info("Shutting down smartgallery...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("HTTP server shutdown error")
	}

	// The deferred repo.Close() will run now.
	log.Info("smartgallery shut down gracefully.")
}
