package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sojin-dev/maumlog/config"
	"github.com/sojin-dev/maumlog/internal/analysis"
	"github.com/sojin-dev/maumlog/internal/api"
	"github.com/sojin-dev/maumlog/internal/clients"
	"github.com/sojin-dev/maumlog/internal/coach"
	"github.com/sojin-dev/maumlog/internal/db"
	"github.com/sojin-dev/maumlog/internal/events"
	"github.com/sojin-dev/maumlog/internal/logging"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	cfg := config.FromEnv()

	slog.Info("[Main] Starting maumlog server",
		slog.String("env", cfg.AppEnv),
		slog.String("port", cfg.Port),
		slog.Bool("groq_configured", cfg.GroqConfigured()),
		slog.Bool("hugging_face_configured", cfg.HuggingFaceConfigured()),
		slog.Bool("demo_mode", cfg.DemoMode))

	var sentimentAPI analysis.SentimentAPI
	if cfg.HuggingFaceConfigured() {
		sentimentAPI = clients.NewHuggingFaceClient(cfg.HuggingFaceToken, cfg.AppEnv)
	} else {
		slog.Warn("[Main] No Hugging Face token configured, classification uses the keyword fallback")
	}

	var cache *analysis.ResultCache
	if cfg.ValkeyAddress != "" {
		vc, err := clients.NewValkeyClient(cfg.ValkeyAddress, cfg.ValkeyPassword, cfg.ValkeyTLS)
		if err != nil {
			slog.Warn("[Main] Valkey unavailable, analysis caching disabled",
				slog.String("error", err.Error()))
		} else {
			defer vc.Close()
			cache = analysis.NewResultCache(vc)
		}
	}

	var chat coach.ChatAPI
	if cfg.GroqConfigured() {
		chat = clients.NewGroqClient(cfg.GroqAPIKey)
	} else {
		slog.Warn("[Main] No Groq key configured, coaching uses template replies")
	}

	classifier := analysis.NewClassifier(sentimentAPI, cache)
	composer := coach.NewComposer(chat)
	advisor := coach.NewAdvisor(chat, cfg.DemoMode)

	var store *db.DiaryStore
	if cfg.DiaryTable != "" {
		client, err := clients.NewDynamoDBClient(context.Background(), cfg.AWSRegion, cfg.AWSEndpoint)
		if err != nil {
			slog.Error("[Main] Failed to initialize DynamoDB, diary endpoints disabled",
				slog.String("error", err.Error()))
		} else {
			store = db.NewDiaryStore(client, cfg.DiaryTable)
		}
	}

	var publisher *events.Publisher
	if cfg.KafkaBrokers != "" {
		p, err := events.NewPublisher(cfg.KafkaBrokers, cfg.EntriesTopic)
		if err != nil {
			slog.Warn("[Main] Kafka unavailable, entry events disabled",
				slog.String("error", err.Error()))
		} else {
			defer p.Close()
			publisher = p
		}
	}

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	handlers := api.NewHandlers(cfg.AppEnv, classifier, composer, advisor, store, publisher)
	router := api.NewRouter(handlers)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("[Main] Listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("[Main] Server failed", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("[Main] Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("[Main] Shutdown failed", slog.String("error", err.Error()))
	}
}
