// @title           loadprobe API
// @version         1.0
// @description     Exposes the host load average over HTTP.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	_ "loadprobe/docs" // Swagger docs

	apiserver "loadprobe/internal/api"
	configapp "loadprobe/internal/config/application"
	"loadprobe/internal/infrastructure/logger"
	loadavgdomain "loadprobe/internal/loadavg/domain"
	loadavginfra "loadprobe/internal/loadavg/infrastructure"
)

const version = "1.0"

func newApp() *cli.App {
	return &cli.App{
		Name:    "loadprobe",
		Usage:   "serve the host load average over HTTP",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "host", Usage: "address to bind (env LOADPROBE_HOST)"},
			&cli.StringFlag{Name: "port", Usage: "port to listen on (env LOADPROBE_PORT, default 8000)"},
			&cli.StringFlag{Name: "source", Usage: "load average source: " + strings.Join(loadavginfra.Sources(), ", ") + " (env LOADPROBE_SOURCE)"},
			&cli.StringFlag{Name: "proc-path", Usage: "procfs mount point for the procfs source (env LOADPROBE_PROC_PATH)"},
			&cli.BoolFlag{Name: "dev", Usage: "serve Swagger UI under /swagger (env LOADPROBE_DEV_MODE)"},
			&cli.StringFlag{Name: "log-level", Usage: "DEBUG, INFO, WARN or ERROR (env LOADPROBE_LOG_LEVEL)"},
			&cli.StringFlag{Name: "log-format", Usage: "text or json (env LOADPROBE_LOG_FORMAT)"},
			&cli.StringFlag{Name: "log-output", Usage: "stdout, stderr or a file path (env LOADPROBE_LOG_OUTPUT)"},
			&cli.StringFlag{Name: "env-file", Value: ".env", Usage: "dotenv file to load before reading the environment"},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	configapp.LoadEnvFile(logger.DefaultLogger(), c.String("env-file"))

	runtimeCfg := configapp.LoadRuntimeConfig(configapp.Flags{
		Host:      c.String("host"),
		Port:      c.String("port"),
		Source:    c.String("source"),
		ProcPath:  c.String("proc-path"),
		LogLevel:  c.String("log-level"),
		LogFormat: c.String("log-format"),
		LogOutput: c.String("log-output"),
		DevMode:   c.Bool("dev"),
	})
	if err := runtimeCfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	appLogger := logger.NewLogger(runtimeCfg.LogLevel, runtimeCfg.LogFormat, runtimeCfg.LogOutput)
	logger.SetDefaultLogger(appLogger)

	appLogger.Info("Starting loadprobe", "version", version, "source", runtimeCfg.Source)

	sigCtx, cancel := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	reader, err := loadavginfra.NewReader(runtimeCfg.Source, runtimeCfg.ProcPath)
	if err != nil {
		return fmt.Errorf("failed to create load average reader: %w", err)
	}

	// Requests still get a 5xx; this only makes the problem visible at boot
	if _, err := reader.Read(sigCtx); errors.Is(err, loadavgdomain.ErrUnsupportedPlatform) {
		appLogger.Warn("Load average source is unavailable on this host", "source", runtimeCfg.Source, "err", err)
	}

	apiServer, err := apiserver.NewServer(appLogger, runtimeCfg, reader)
	if err != nil {
		appLogger.Error("Failed to create API server", "err", err)
		return fmt.Errorf("failed to create API server: %w", err)
	}

	serverErrChan := make(chan error, 1)
	go func() {
		if err := apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("API server error: %w", err)
		}
	}()

	appLogger.Info("loadprobe started, waiting for shutdown signal", "addr", apiServer.Addr())

	select {
	case <-sigCtx.Done():
		appLogger.Info("Shutdown signal received, starting graceful shutdown")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		if err := apiServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("API server shutdown error: %w", err)
		}

		appLogger.Info("Graceful shutdown completed")
		return nil
	case err := <-serverErrChan:
		appLogger.Error("Server error received", "err", err)
		return err
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.DefaultLogger().Error("Application error", "err", err)
		os.Exit(1)
	}
}
