package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tempbridge/pkg/cli/config"
	controller "github.com/m-mizutani/tempbridge/pkg/controller/http"
	"github.com/m-mizutani/tempbridge/pkg/domain/types"
	"github.com/m-mizutani/tempbridge/pkg/infra/tempconvert"
	"github.com/m-mizutani/tempbridge/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg      config.Server
		tempconvertCfg config.TempConvert
		sentryCfg      config.Sentry
	)

	flags := append(serverCfg.Flags(), tempconvertCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting tempbridge server",
				slog.String("addr", serverCfg.Addr),
				slog.String("wsdl", tempconvertCfg.WSDL),
			)

			if sentryCfg.DSN != "" {
				if err := sentry.Init(sentry.ClientOptions{
					Dsn:         sentryCfg.DSN,
					Environment: sentryCfg.Env,
					Release:     "tempbridge@" + types.Version,
				}); err != nil {
					return goerr.Wrap(err, "failed to initialize Sentry")
				}
				defer sentry.Flush(2 * time.Second)
			}

			// One long-lived SOAP client for the whole process, injected
			// into the use case
			converter := tempconvert.NewClient(
				tempconvert.WithWSDL(tempconvertCfg.WSDL),
				tempconvert.WithTimeout(tempconvertCfg.Timeout),
			)

			convertUC := usecase.NewConvert(converter)

			// Create HTTP server with options
			server, err := controller.NewServer(
				ctx,
				convertUC,
				controller.WithAddr(serverCfg.Addr),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			// Start server in goroutine
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
