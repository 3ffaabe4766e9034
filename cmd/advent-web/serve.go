package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httpadapter "svw.info/advent/internal/adapters/http"
	"svw.info/advent/web"
)

var (
	serveAddr     string
	serveInputDir string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web UI",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides server.addr)")
	serveCmd.Flags().StringVar(&serveInputDir, "input-dir", "", "puzzle input directory (overrides inputs.dir)")
}

func runServe(cmd *cobra.Command, args []string) error {
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}
	if serveInputDir != "" {
		cfg.Inputs.Dir = serveInputDir
	}

	h := httpadapter.New(newService(), web.Templates(), web.StaticFS(), logger)
	h.Describe = web.Describe
	h.SolveTimeout = cfg.Server.SolveTimeout
	h.MaxInputBytes = cfg.Server.MaxInputBytes

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           h.Routes(),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		logger.Info("listening",
			zap.String("addr", cfg.Server.Addr),
			zap.String("inputs", cfg.Inputs.Dir),
			zap.Duration("solve_timeout", cfg.Server.SolveTimeout),
		)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	<-errc
	return nil
}
