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

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/linkdeck"
	"github.com/3-lines-studio/linkdeck/internal/config"
	"github.com/3-lines-studio/linkdeck/internal/logging"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "linkdeck",
		Short:         "Self-hosted saved-links dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "path to config file")

	root.AddCommand(serveCmd(&configPath))
	root.AddCommand(exportCmd(&configPath))
	root.AddCommand(versionCmd())
	return root
}

func serveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard and API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			app, err := linkdeck.New(cfg)
			if err != nil {
				return err
			}
			defer app.Close()

			log := logging.NewLogger("serve")
			server := &http.Server{
				Addr:              cfg.Addr,
				Handler:           app.Handler(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errc := make(chan error, 1)
			go func() {
				log.WithField("addr", cfg.Addr).Info("listening")
				errc <- server.ListenAndServe()
			}()

			select {
			case err := <-errc:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
			case <-ctx.Done():
				log.Info("shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func exportCmd(configPath *string) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a static snapshot of the dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			app, err := linkdeck.New(cfg)
			if err != nil {
				return err
			}
			defer app.Close()

			return app.Export(cmd.Context(), outDir)
		},
	}
	cmd.Flags().StringVar(&outDir, "out", "dist", "output directory")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the linkdeck version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("linkdeck", version)
		},
	}
}
