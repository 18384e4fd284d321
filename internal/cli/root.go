package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shivendra100/devops-jokes-dispenser/internal/buildinfo"
	"github.com/shivendra100/devops-jokes-dispenser/internal/jokes"
	"github.com/shivendra100/devops-jokes-dispenser/internal/logger"
	"github.com/shivendra100/devops-jokes-dispenser/internal/server"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "jokes",
		Short:        "Serve a random joke on GET /api/joke",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cleanup := logger.Setup(logger.Config{Output: cmd.ErrOrStderr()})
			defer cleanup()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, server.ServerOptions{Logger: logger.L()})
		},
	}

	cmd.AddCommand(versionCmd())
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
		},
	}
}

// serve runs the joke server until ctx is done or the server fails.
func serve(ctx context.Context, opts server.ServerOptions) error {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
		opts.Logger = log
	}

	picker := jokes.NewPicker(jokes.All())
	srv := server.NewServer(picker, opts)
	log.Info("service.starting", "version", buildinfo.Version, "jokes", picker.Len())

	errCh := srv.Start()
	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("service.stopping")
	if err := srv.Stop(context.Background()); err != nil {
		log.Error("service.shutdown_failed", "error", err)
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("service.stopped")
	return nil
}
