package commands

import (
	"Groeneweide-Backend/internal/utils"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "groeneweide",
	Short: "Groeneweide webshop backend",
	Long: `Groeneweide serves the product catalogue, recipes, locker bookings and
orders of the Groeneweide farm shop over a JSON HTTP API.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Directory containing config.yaml")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override log.level from the config")

	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

func loadConfig() (*utils.Config, error) {
	if configPath != "" {
		return utils.ReadConfig(configPath)
	}
	return utils.LoadConfig()
}

// bootstrap loads the configuration and builds the process logger.
func bootstrap() (*utils.Config, *zap.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	logger, err := utils.NewLogger(cfg.Log.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return cfg, logger, nil
}
