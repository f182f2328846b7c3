package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iwvelando/real-return/internal/server"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(opts *rootOptions, version string) *cobra.Command {
	var addressFlag, serverConfigFlag string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP calculator API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, logger, err := opts.load()
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			for _, warning := range conf.ValidateConfiguration() {
				logger.Warn("Configuration warning: "+warning,
					zap.String("op", "serve"),
				)
			}

			serverConf, err := server.LoadConfig(serverConfigFlag)
			if err != nil {
				return err
			}
			if addressFlag != "" {
				serverConf.Address = addressFlag
			}

			handler := server.NewHandler(logger, conf, serverConf.RequestSizeBytes(), version)
			srv := &http.Server{
				Addr:    serverConf.Address,
				Handler: handler,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.ListenAndServe()
			}()

			logger.Info("serving calculator API",
				zap.String("op", "serve"),
				zap.String("address", serverConf.Address),
			)

			select {
			case err := <-errCh:
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					return err
				}
				logger.Info("server stopped", zap.String("op", "serve"))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&addressFlag, "address", "", "listen address override (default from server config)")
	cmd.Flags().StringVar(&serverConfigFlag, "server-config", "", "path to server configuration file")

	return cmd
}
