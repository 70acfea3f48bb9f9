package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"codcoz/cmd/internal/config"
	"codcoz/cmd/internal/domain/sqlite"
	"codcoz/cmd/internal/domain/sqlite/repository"
	"codcoz/cmd/internal/http/handler"
	"codcoz/cmd/internal/infrastructure/aws/storage"
	"codcoz/cmd/internal/infrastructure/docstore"
	"codcoz/cmd/internal/infrastructure/relstore"
	"codcoz/cmd/internal/service"
	"codcoz/cmd/internal/service/jobs"
	"codcoz/cmd/internal/utils/validators"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Loads env vars depending on environment
	if err := config.LoadEnv(ctx); err != nil {
		log.Fatalf("unable to load environment: %v", err)
	}

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	log.SetLevel(cfg.LogLevel)

	validate := validators.New()

	// Init SQLite
	db, err := sqlite.Init(cfg.DatabasePath)
	if err != nil {
		panic(err)
	}

	// Upstream clients
	docClient := docstore.NewClient(cfg.DocStoreURL, cfg.UpstreamTimeout)
	relClient := relstore.NewClient(cfg.RelStoreURL, cfg.UpstreamTimeout)

	var images storage.ImageStorage
	if cfg.ImagesEnabled() {
		images, err = storage.NewStorageClient(ctx, cfg.S3Region, cfg.S3Bucket)
		if err != nil {
			panic(err)
		}
	} else {
		log.Warn("S3_BUCKET_NAME not set, recipe image uploads are disabled")
	}

	// Getting repos
	recordRepo := repository.NewMenuRecordRepository(db)

	// Getting services
	recipeService := service.NewRecipeService(docClient, images, validate)
	menuService := service.NewMenuService(docClient, docClient, docClient, recordRepo, validate)
	ingredientService := service.NewIngredientService(docClient, validate)
	healthService := service.NewHealthService(docClient, relClient)

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(cfg.LogLevel)
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("6M"))

	handler.Register(e, handler.Routes{
		Recipes: handler.NewRecipeRoute(recipeService),
		Menus:   handler.NewMenuRoute(menuService),
		Utils:   handler.NewUtilRoute(ingredientService, healthService),
	})

	go jobs.NewLedgerCleaner(recordRepo, cfg.LedgerRetention).Start(ctx)

	go func() {
		if err := e.Start(cfg.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("failed to shut down server: %v", err)
	}
}
