package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"CardSentinel/internal/advisor"
	"CardSentinel/internal/bot"
	"CardSentinel/internal/catalog"
	"CardSentinel/internal/config"
	"CardSentinel/internal/ledger"
	"CardSentinel/internal/notifier"
	"CardSentinel/internal/recorder"
	"CardSentinel/internal/scheduler"

	"github.com/joho/godotenv"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] CardSentinel starting...")

	// .env is optional; real deployments use the environment directly.
	_ = godotenv.Load()

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Build the card catalog; a malformed catalog must stop the process.
	cat, err := catalog.Default()
	if err != nil {
		log.Fatalf("[FATAL] build card catalog: %v", err)
	}
	log.Printf("[INFO] catalog loaded: %d cards", len(cat.Cards()))

	// Init ledger store
	store, err := ledger.NewFileStore(cfg.Storage.DataDir)
	if err != nil {
		log.Fatalf("[FATAL] init ledger store: %v", err)
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Init Telegram notifier and advisor
	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Proxy)
	svc := advisor.New(cat, store, rec)
	b := bot.New(svc)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, svc, store, tn)
	if err := sched.Register(cfg.Schedule.MonthlyDigestCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Start Telegram polling
	go tn.StartPolling(ctx, b.HandleUpdate)
	log.Println("[INFO] Telegram polling started")

	log.Println("[INFO] CardSentinel is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] CardSentinel stopped")
}
