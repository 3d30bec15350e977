package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pizzashop/cmd"
	"pizzashop/internal/pkg/logging"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger, closer, err := logging.New(logging.Options{
		Service: "pizzashop",
		Level:   configs.LogLevel,
		File:    configs.LogFile,
	}, os.Stdout)
	if err != nil {
		log.Fatalf("Error configuring logger: %v", err)
	}
	defer closer.Close()

	app, err := cmd.NewCompositionRoot(configs, logger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	if err = app.PublishMenus(); err != nil {
		log.Fatalf("Error publishing menus: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	e, err := app.CreateHTTPServer()
	if err != nil {
		log.Fatalf("Error building HTTP server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	startWebServer(ctx, e, configs.HTTPPort)
}

func startWebServer(ctx context.Context, e *echo.Echo, port string) {
	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}
