package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/nithin218/mindmate"
	"github.com/nithin218/mindmate/internal/adapters/httpapi"
	"github.com/nithin218/mindmate/pkg/adapters/memory"
	"github.com/nithin218/mindmate/pkg/adapters/redis"
	"github.com/nithin218/mindmate/pkg/observability"
	"github.com/nithin218/mindmate/pkg/ports"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Starts the assistant in server mode, exposing the query endpoint and the audit record API over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logger, client, err := loadSetup(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		port, _ := cmd.Flags().GetString("port")
		if !cmd.Flags().Changed("port") && cfg.Server.Port != "" {
			port = cfg.Server.Port
		}

		registry := prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector())
		metrics := observability.New(registry)

		assistant, err := mindmate.New(client,
			mindmate.WithLogger(logger),
			mindmate.WithLifecycleHooks(metrics.Hooks()),
			mindmate.WithMaxRetries(cfg.Retries()),
		)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		var store ports.RecordStore
		if cfg.Redis.Addr != "" {
			store = redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
			logger.Info("using redis record store", "addr", cfg.Redis.Addr)
		} else {
			store = memory.NewStore()
			logger.Info("using in-memory record store")
		}

		router := chi.NewRouter()
		router.Mount("/", httpapi.NewHandler(assistant,
			httpapi.WithStore(store),
			httpapi.WithLogger(logger),
		))
		router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: router,
		}

		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting MindMate server on %s (provider: %s)\n", srv.Addr, cfg.Provider)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("MindMate server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
}
