package main

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
)

const shutdownTimeout = 10 * time.Second

func serveCmd(opts *globalOptions) *cobra.Command {
	var (
		addr     string
		pageOpts pageOptions
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve every loaded form over HTTP",
		Long: `Start an HTTP server hosting every loaded form.

Routes:
  GET  /forms        list of form ids (JSON)
  GET  /forms/{id}   the form rendered as a page
  POST /forms/{id}   validate a submission; 200 with the data or 422 with the form
  GET  /metrics      Prometheus metrics

Examples:
  formgen-cli serve -d ./forms
  formgen-cli serve --openapi ./api.yaml --addr :9000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := opts.logger()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			store, err := opts.loadStore(cmd.Context())
			if err != nil {
				return err
			}
			pageRenderer, err := pageOpts.renderer()
			if err != nil {
				return err
			}

			srv := newServer(store, pageRenderer, logger)
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return listen(ctx, addr, srv.routes(), logger)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "address to listen on")
	addPageFlags(cmd, &pageOpts)
	return cmd
}

func listen(ctx context.Context, addr string, handler http.Handler, logger *zap.Logger) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", addr))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
