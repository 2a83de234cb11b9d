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

	"github.com/Gk2403-techi/greenscape/internal/appointment"
	"github.com/Gk2403-techi/greenscape/internal/catalog"
	"github.com/Gk2403-techi/greenscape/internal/chat"
	"github.com/Gk2403-techi/greenscape/internal/config"
	"github.com/Gk2403-techi/greenscape/internal/core"
	"github.com/Gk2403-techi/greenscape/internal/db"
	"github.com/Gk2403-techi/greenscape/internal/llm"
	"github.com/Gk2403-techi/greenscape/internal/logging"
	"github.com/Gk2403-techi/greenscape/internal/plan"
	"github.com/Gk2403-techi/greenscape/internal/router"
	"github.com/Gk2403-techi/greenscape/internal/storage"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	config.LoadDotEnv()
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ───────────────────────── REFERENCE DATA ─────────────────────────
	plants, err := catalog.LoadPlants(cfg.PlantCatalogPath)
	if err != nil {
		logger.Fatal("plant catalog load failed", zap.String("path", cfg.PlantCatalogPath), zap.Error(err))
	}
	ref := catalog.NewReference(plants)
	logger.Info("plant catalog loaded", zap.Int("plants", len(plants)))

	// ───────────────────────── STORAGE ─────────────────────────
	var store storage.ObjectStore = storage.NewLocalStore(cfg.StaticDir, "/static")
	if cfg.R2.Enabled() {
		r2Client, err := storage.NewR2Client(ctx, storage.R2Options{
			Endpoint:      cfg.R2.Endpoint,
			AccessKey:     cfg.R2.AccessKey,
			SecretKey:     cfg.R2.SecretKey,
			Bucket:        cfg.R2.Bucket,
			PublicBaseURL: cfg.R2.PublicBaseURL,
		})
		if err != nil {
			logger.Fatal("r2 init failed", zap.Error(err))
		}
		store = r2Client
		logger.Info("object storage: r2", zap.String("bucket", cfg.R2.Bucket))
	} else {
		if err := os.MkdirAll(cfg.StaticDir, 0o755); err != nil {
			logger.Fatal("static dir init failed", zap.Error(err))
		}
		logger.Info("object storage: local", zap.String("dir", cfg.StaticDir))
	}

	// ───────────────────────── PROVIDERS ─────────────────────────
	rnd := core.SystemRandom()

	var imageProviders []core.ImageProvider
	if cfg.GeminiAPIKey != "" {
		genaiClient, err := llm.NewGenAIClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			logger.Warn("imagen disabled", zap.Error(err))
		} else {
			imageProviders = append(imageProviders, llm.NewImagenProvider(genaiClient.Models, store, cfg.ImagenModel))
		}
	}
	images := llm.NewImageChain(llm.NewPollinations(rnd), logger, imageProviders...)

	var textProviders []core.TextProvider
	if cfg.GeminiAPIKey != "" {
		textProviders = append(textProviders, llm.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel))
	}
	if cfg.LlamaAPIKey != "" && cfg.LlamaAPIURL != "" {
		textProviders = append(textProviders, llm.NewLLaMAClient(cfg.LlamaAPIKey, cfg.LlamaModel, cfg.LlamaAPIURL))
	}
	text := llm.NewTextChain(llm.StaticText(chat.MenuReply), logger, textProviders...)

	// ───────────────────────── APPOINTMENTS ─────────────────────────
	var appointments appointment.Repository = appointment.NewInMemoryRepository()
	if cfg.DatabaseURL != "" {
		pool, err := db.ConnectPostgres(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			logger.Fatal("postgres init failed", zap.Error(err))
		}
		defer pool.Close()
		appointments = appointment.NewPostgresRepository(pool)
	}

	mailer := appointment.NewSMTPMailer(appointment.SMTPSettings{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
	})

	// ───────────────────────── SERVICES ─────────────────────────
	engine := plan.NewEngine(ref, images, rnd, logger)
	chatService := chat.NewService(chat.NewParser(ref, text, logger), engine, chat.NewRenderer())
	scheduleService := appointment.NewService(appointments, mailer, cfg.SMTP.AdminEmail, logger)

	// ───────────────────────── ROUTER ─────────────────────────
	r, err := router.NewRouter(router.Deps{
		Plan:        plan.NewHandler(engine, store, logger),
		Chat:        chat.NewHandler(chatService),
		Schedule:    appointment.NewHandler(scheduleService, logger),
		Logger:      logger,
		CORSOrigins: cfg.CORSOrigins,
		StaticDir:   cfg.StaticDir,
	})
	if err != nil {
		logger.Fatal("router init failed", zap.Error(err))
	}

	// ───────────────────────── START ─────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("api listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
