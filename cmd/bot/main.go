package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"

	"github.com/thespread/spreadbot/internal/bot"
	"github.com/thespread/spreadbot/internal/config"
	"github.com/thespread/spreadbot/internal/httpx"
	kafkax "github.com/thespread/spreadbot/internal/kafka"
	"github.com/thespread/spreadbot/internal/logger"
	"github.com/thespread/spreadbot/internal/menu"
	"github.com/thespread/spreadbot/internal/orders"
	"github.com/thespread/spreadbot/internal/postgres"
	"github.com/thespread/spreadbot/internal/redisx"
	"github.com/thespread/spreadbot/internal/session"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()
	cfg := config.Load()
	if cfg.BotToken == "" {
		log.Fatal("CONFIG", "BOT_TOKEN is not set")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB
	db, err := postgres.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DATABASE", "connect: "+err.Error())
	}
	defer db.Close()
	store := &orders.PgStore{DB: db}
	if err := store.InitSchema(ctx); err != nil {
		log.Fatal("DATABASE", "init schema: "+err.Error())
	}
	log.Info("DATABASE", "connected and schema ready")

	// Menu snapshot, built once after the repository is confirmed ready.
	// /editmenu changes only the repository; restart to pick them up.
	snap, err := menu.Load(ctx, store)
	if err != nil {
		log.Fatal("MENU", "load snapshot: "+err.Error())
	}
	log.Info("MENU", "weekly menu snapshot loaded")

	// Redis-backed conversation sessions
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()
	sessions := &session.RedisStore{RDB: rdb}

	// Kafka producer
	producer := kafkax.NewProducer(cfg.KafkaBrokers, 1024)
	producer.Start(ctx)
	log.Info("KAFKA", "event producer started")

	// Telegram
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatal("TELEGRAM", "bot api: "+err.Error())
	}
	log.Infof("TELEGRAM", "authorized as @%s", api.Self.UserName)

	qrImage, err := os.ReadFile(cfg.QRImagePath)
	if err != nil {
		log.Warn("CONFIG", "QR image not readable, payment QR disabled: "+err.Error())
	}

	b := bot.New(bot.NewTelegram(api), store, sessions, snap, producer, log, cfg)
	b.QRImage = qrImage

	// Webhook registration + HTTP server
	wh, err := tgbotapi.NewWebhook(cfg.WebhookURL + cfg.BotToken)
	if err != nil {
		log.Fatal("TELEGRAM", "webhook config: "+err.Error())
	}
	if _, err := api.Request(wh); err != nil {
		log.Fatal("TELEGRAM", "set webhook: "+err.Error())
	}

	router := httpx.NewRouter()
	(&httpx.WebhookHandler{Bot: b, Token: cfg.BotToken, Log: log}).Register(router)
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Infof("SERVER", "HTTP listening at %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("SERVER", "listen: "+err.Error())
		}
	}()

	// wait signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Warn("SHUTDOWN", "shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	producer.Close()      // close inbox -> flush & close writer
	producer.WaitClosed() // drain
}
