package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/harentsoaR/pet24-api/internal/config"
	"github.com/harentsoaR/pet24-api/internal/handlers"
	"github.com/harentsoaR/pet24-api/internal/logger"
	"github.com/harentsoaR/pet24-api/internal/routes"
	"github.com/harentsoaR/pet24-api/internal/services"
	"github.com/harentsoaR/pet24-api/internal/storage"
	"github.com/harentsoaR/pet24-api/internal/utils"
)

var startServer = serve

func main() {
	if err := run(config.Load()); err != nil {
		log.Fatalf("pet24-api: %v", err)
	}
}

func run(cfg *config.Config) error {
	zl, err := logger.New(cfg.Env)
	if err != nil {
		return err
	}
	defer zl.Sync()
	zap.ReplaceGlobals(zl)

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.DefaultSecret() {
		zl.Warn("JWT_SECRET is not set, using the development secret")
	}

	files := storage.NewFileStore(cfg.DataDir, cfg.ReadOnly, zl)
	mongo := storage.NewMongoClient(cfg.MongoURI, cfg.MongoDatabase, zl)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongo.Disconnect(ctx); err != nil {
			zl.Warn("Failed to disconnect from MongoDB", zap.Error(err))
		}
	}()

	zl.Info("Storage configured",
		zap.String("mode", storageMode(cfg)),
		zap.String("data_dir", cfg.DataDir),
		zap.String("mongo_db", cfg.MongoDatabase),
	)

	tokens := utils.NewTokenIssuer(cfg.JWTSecret)
	router := routes.NewRouter(newHandler(cfg, files, mongo, tokens, zl), routes.Config{
		CORSOrigins: cfg.CORSOrigins,
		Tokens:      tokens,
		Log:         zl,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return startServer(srv, zl)
}

// newHandler wires one repository per collection into the services.
func newHandler(cfg *config.Config, files *storage.FileStore, mongo *storage.MongoClient, tokens *utils.TokenIssuer, zl *zap.Logger) *handlers.Handler {
	media := services.NewMediaResolver()
	notifier := services.NewNotificationService(cfg.TextbeltKey, zl)

	doctors := services.NewDoctorService(storage.NewRepository(services.DoctorCollection(), files, mongo, zl), media, zl)
	svc := handlers.Services{
		Doctors:      doctors,
		Posts:        services.NewPostService(storage.NewRepository(services.PostCollection(), files, mongo, zl), zl),
		Products:     services.NewProductService(storage.NewRepository(services.ProductCollection(), files, mongo, zl), media, zl),
		Slides:       services.NewSlideService(storage.NewRepository(services.SlideCollection(), files, mongo, zl), zl),
		Reservations: services.NewReservationService(storage.NewRepository(services.ReservationCollection(), files, mongo, zl), doctors, notifier, zl),
		Users:        services.NewUserService(storage.NewRepository(services.UserCollection(zl), files, mongo, zl), zl),
	}

	return handlers.NewHandler(svc, tokens, handlers.Options{
		SecureCookie: cfg.Production(),
		StorageMode:  storageMode(cfg),
	}, zl)
}

func storageMode(cfg *config.Config) string {
	switch {
	case cfg.MongoEnabled():
		return "mongodb+file"
	case cfg.ReadOnly:
		return "memory"
	default:
		return "file"
	}
}

// serve runs srv until SIGINT or SIGTERM, then drains in-flight requests.
func serve(srv *http.Server, zl *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		zl.Info("Starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		zl.Info("Shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
