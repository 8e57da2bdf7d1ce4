package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-api/internal/audit"
	"github.com/BruksfildServices01/agenda-api/internal/auth"
	"github.com/BruksfildServices01/agenda-api/internal/config"
	dbpkg "github.com/BruksfildServices01/agenda-api/internal/db"
	"github.com/BruksfildServices01/agenda-api/internal/infra/cache"
	"github.com/BruksfildServices01/agenda-api/internal/infra/storage"
	"github.com/BruksfildServices01/agenda-api/internal/logger"
	"github.com/BruksfildServices01/agenda-api/internal/routes"
	"github.com/BruksfildServices01/agenda-api/internal/timezone"
	ucProfessional "github.com/BruksfildServices01/agenda-api/internal/usecase/professional"
	"github.com/BruksfildServices01/agenda-api/internal/usecase/photo"
	"github.com/BruksfildServices01/agenda-api/internal/validators"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		// logger ainda não existe sem APP_ENV resolvido
		bootLog, _ := logger.New(os.Getenv("APP_ENV"))
		if bootLog == nil {
			bootLog = logger.Nop()
		}
		bootLog.Fatal("failed to load config", "error", err)
	}

	log, err := logger.New(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := validators.Register(); err != nil {
		log.Fatal("failed to register validators", "error", err)
	}

	// ======================================================
	// 🔧 INFRA
	// ======================================================
	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		log.Fatal("failed to connect database", "error", err)
	}
	defer func() {
		if err := dbpkg.Close(db); err != nil {
			log.Warn("failed to close database", "error", err)
		}
	}()
	log.Info("database connected")

	var servicesCache ucProfessional.Cache = cache.Noop{}
	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		client, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		cancel()
		if err != nil {
			log.Fatal("failed to connect redis", "error", err)
		}
		defer client.Close()
		servicesCache = cache.NewRedisCache(client, cfg.CacheTTL)
		log.Info("redis connected", "ttl", cfg.CacheTTL)
	}

	var photoStore photo.Store = storage.Disabled{}
	if cfg.S3.Enabled() {
		photoStore = storage.NewS3Store(cfg.S3)
		log.Info("object storage enabled", "bucket", cfg.S3.Bucket)
	} else {
		log.Warn("object storage disabled, photo uploads will fail")
	}

	auditDispatcher := audit.NewDispatcher(audit.New(db), log, cfg.AuditQueueSize)
	defer auditDispatcher.Close()

	var checkEmailDomain func(string) bool
	if cfg.CheckEmailDomain {
		checkEmailDomain = validators.EmailDomainCheck(nil, validators.DefaultLookupTimeout)
	}

	// ======================================================
	// 🌐 HTTP
	// ======================================================
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		DB:               db,
		Log:              log,
		Tokens:           auth.NewTokens(cfg.JWTSecret, cfg.JWTTTL),
		Audit:            auditDispatcher,
		Photos:           photoStore,
		Cache:            servicesCache,
		Location:         timezone.Location(cfg.Timezone),
		CheckEmailDomain: checkEmailDomain,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server running", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
	}
	log.Info("server exited")
}
