package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	application "courier-system/internal/app"
	"courier-system/internal/handlers/menu/admin_menu"
	"courier-system/internal/handlers/menu/customer_menu"
	"courier-system/internal/handlers/menu/login_menu"
	"courier-system/internal/handlers/menu/staff_menu"
	"courier-system/internal/pkg/config"
	"courier-system/internal/pkg/console"
	"courier-system/internal/pkg/dotenv"
	"courier-system/internal/pkg/seed"
	"courier-system/pkg/logger"
	"courier-system/pkg/logger/zap_adapter"
)

func main() {
	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			stdlog.Fatalf("failed to load .env file: %v", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("failed to load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(cfg.App.LogLevel)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting courier management system")

	if err := run(cfg, appLogger); err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := application.InitializeApplication(cfg)

	if cfg.App.SeedSampleData {
		if err := seed.Load(ctx, app.SeedRepositories()); err != nil {
			return err
		}
		log.Info("sample data loaded")
	}

	out := os.Stdout
	reader := console.NewReader(os.Stdin, out)

	customerDashboard := customer_menu.New(
		log, reader, out,
		app.ServiceParcel, app.ServiceDelivery, app.ServicePayment, app.ServiceUser,
	)
	staffDashboard := staff_menu.New(
		log, reader, out,
		app.ServiceDelivery, app.ServiceUser, app.ServiceParcel,
	)
	adminDashboard := admin_menu.New(
		log, reader, out,
		app.ServiceParcel, app.ServiceDelivery, app.ServiceUser, app.ServicePayment,
	)

	mainMenu := login_menu.New(
		log, reader, out,
		app.ServiceUser,
		customerDashboard, staffDashboard, adminDashboard,
	)
	return mainMenu.Run(ctx)
}
