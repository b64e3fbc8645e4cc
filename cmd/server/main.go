package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/medeiros-dev/reseller-vault/configs"
	"github.com/medeiros-dev/reseller-vault/internal/app/registry"
	"github.com/medeiros-dev/reseller-vault/internal/infrastructure/docstore"
	"github.com/medeiros-dev/reseller-vault/internal/infrastructure/scheduler"
	"github.com/medeiros-dev/reseller-vault/internal/interfaces/rest"
	"github.com/medeiros-dev/reseller-vault/internal/observability/tracing"
	"github.com/medeiros-dev/reseller-vault/internal/usecases/accounts"
	"github.com/medeiros-dev/reseller-vault/internal/usecases/customers"
	"github.com/medeiros-dev/reseller-vault/internal/usecases/digest"
	"github.com/medeiros-dev/reseller-vault/internal/usecases/slots"
	"github.com/medeiros-dev/reseller-vault/pkg/logger"

	// Import messenger packages solely for their init() registration effect
	_ "github.com/medeiros-dev/reseller-vault/internal/infrastructure/messenger/telegram"
)

func main() {
	if err := logger.InitializeLogger(false); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			log.Printf("Error syncing logger: %v", err)
		}
	}()

	logger.L().Info("Starting reseller vault service...")

	cfg, err := configs.NewConfig(".")
	if err != nil {
		logger.L().Fatal("Failed to load configuration", zap.Error(err))
	}
	logger.L().Info("Configuration loaded",
		zap.String("httpServerAddress", cfg.HTTPServerAddress),
		zap.String("sqlitePath", cfg.SQLitePath),
		zap.String("messenger", cfg.Messenger),
		zap.Bool("authEnabled", cfg.APIToken != ""),
	)

	tracerShutdown, err := tracing.InitTracer(cfg)
	if err != nil {
		logger.L().Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerShutdown(shutdownCtx); err != nil {
			logger.L().Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	// --- Store ---
	st, err := docstore.Open(
		cfg.SQLitePath,
		time.Duration(cfg.WatchBackoffBaseMs)*time.Millisecond,
		cfg.WatchReloadAttempts,
	)
	if err != nil {
		logger.L().Fatal("Failed to open document store", zap.Error(err))
	}
	defer func() {
		if err := st.Close(); err != nil {
			logger.L().Error("Error closing document store", zap.Error(err))
		}
	}()

	// --- Messenger (dynamic via registry) ---
	factory, err := registry.GetMessengerFactory(cfg.Messenger)
	if err != nil {
		logger.L().Fatal("No messenger factory registered", zap.String("messenger", cfg.Messenger), zap.Error(err))
	}
	messengerInstance, err := factory(cfg)
	if err != nil {
		logger.L().Fatal("Failed to create messenger", zap.String("messenger", cfg.Messenger), zap.Error(err))
	}

	digestHandler := digest.NewDispatchDigest(st, messengerInstance)

	// --- Scheduler, re-armed by notifier config changes ---
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewCronScheduler()
	defer sched.Stop()

	configEvents, cancelWatch := st.WatchNotifierConfig(ctx)
	defer cancelWatch()
	go func() {
		for ev := range configEvents {
			if ev.Err != nil {
				logger.L().Error("Notifier config snapshot failed", zap.Error(ev.Err))
				continue
			}
			if !ev.Config.Enabled || !ev.Config.HasCredentials() {
				sched.Stop()
				continue
			}
			interval, err := ev.Config.Interval()
			if err != nil {
				logger.L().Error("Invalid notifier interval, scheduler not armed", zap.Error(err))
				sched.Stop()
				continue
			}
			if err := sched.Start(interval, digestHandler.Tick); err != nil {
				logger.L().Error("Failed to arm scheduler", zap.Error(err))
			}
		}
	}()

	// --- HTTP server ---
	server := rest.NewServer(
		accounts.NewUseCase(st),
		customers.NewUseCase(st),
		slots.NewEngine(st),
		st,
		digestHandler,
	)

	httpServer := &http.Server{
		Addr:    cfg.HTTPServerAddress,
		Handler: server.Router(cfg),
	}
	go func() {
		logger.L().Info("Starting HTTP server", zap.String("address", cfg.HTTPServerAddress))
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.L().Fatal("HTTP server ListenAndServe failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	logger.L().Info("Received signal, shutting down gracefully...", zap.String("signal", sig.String()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.L().Error("HTTP server shutdown error", zap.Error(err))
	}

	sched.Stop()
	cancel()

	logger.L().Info("Reseller vault service shut down complete.")
}
