package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/webstore-labs/product-store/internal/config"
	"github.com/webstore-labs/product-store/internal/events"
	"github.com/webstore-labs/product-store/internal/httpserver"
	"github.com/webstore-labs/product-store/internal/repo"
	"github.com/webstore-labs/product-store/internal/search"
	"github.com/webstore-labs/product-store/internal/service"
	pkgdb "github.com/webstore-labs/product-store/pkg/db"
	"github.com/webstore-labs/product-store/pkg/logging"
	loggingmw "github.com/webstore-labs/product-store/pkg/middleware/logging"
	"github.com/webstore-labs/product-store/pkg/unsplash"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := pkgdb.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	if err := repo.AutoMigrate(db); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	var searchClient *search.Client
	if cfg.ESURL != "" {
		searchClient, err = search.NewClient(cfg.ESURL, cfg.ESUser, cfg.ESPassword, cfg.ESIndex)
		if err != nil {
			log.Fatalf("elasticsearch: %v", err)
		}
	} else {
		logger.Warn("ES_URL not set, product search disabled")
	}

	producer := events.NewProducer(cfg.KafkaBrokers)
	if len(cfg.KafkaBrokers) == 0 {
		logger.Warn("KAFKA_BROKERS not set, domain events disabled")
	}

	gormRepo := &repo.GormRepo{DB: db}
	catalogSvc := &service.CatalogService{Repo: gormRepo, Search: searchClient}
	cartSvc := &service.CartService{Repo: gormRepo}

	e := echo.New()
	e.HideBanner = true

	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.CORS())
	e.Use(loggingmw.RequestLogger(logger))

	httpserver.Register(e, &httpserver.Deps{
		ProductHandler: &httpserver.ProductHTTP{Svc: catalogSvc, Producer: producer},
		CartHandler:    &httpserver.CartHTTP{Svc: cartSvc, Producer: producer},
		ImagesHandler:  &httpserver.ImagesHTTP{Client: unsplash.NewClient(cfg.UnsplashAccessKey)},
	})

	go func() {
		addr := ":" + strconv.Itoa(cfg.ServerPort)
		logger.Info("starting server", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("echo shutdown", "error", err)
	}

	if err := producer.Close(); err != nil {
		logger.Error("kafka close", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	logger.Info("server stopped")
}
