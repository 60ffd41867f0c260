package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nithin218/mindmate/internal/config"
	"github.com/nithin218/mindmate/internal/logging"
	"github.com/nithin218/mindmate/pkg/capability"
	"github.com/nithin218/mindmate/pkg/capability/local"
)

var rootCmd = &cobra.Command{
	Use:   "mindmate",
	Short: "MindMate is a staged mental-health support assistant",
	Long: `MindMate runs user questions through a staged pipeline: query rewriting,
emotion classification, a CBT-style therapeutic response, a daily schedule
recommendation, and an ethical review before the final answer is composed.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "mindmate.yaml", "Path to the configuration file")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
}

// loadSetup resolves the config, logger, and capability client shared by the
// query and serve commands.
func loadSetup(cmd *cobra.Command) (*config.Config, *slog.Logger, capability.Client, error) {
	path, _ := cmd.Flags().GetString("config")
	level, _ := cmd.Flags().GetString("log-level")

	logger := logging.New(logging.ParseLevel(level))

	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, nil, err
	}

	client, err := buildClient(cfg, logger)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, logger, client, nil
}

func buildClient(cfg *config.Config, logger *slog.Logger) (capability.Client, error) {
	if cfg.Provider == config.ProviderLocal {
		return local.New(), nil
	}

	mc, key, err := cfg.Model()
	if err != nil {
		return nil, err
	}
	return capability.NewChatClient(capability.ChatConfig{
		APIKey:  key,
		BaseURL: mc.BaseURL,
		Model:   mc.ModelName,
		Logger:  logger,
	})
}
