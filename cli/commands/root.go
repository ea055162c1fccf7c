// Package commands implements the CLI command structure using Cobra.
package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/veldtlabs/genlive/cli/config"
	genlive "github.com/veldtlabs/genlive/sdk"
)

const defaultModel = "models/gemini-2.0-flash"

var (
	// Global flags
	cfgFile   string
	modelFlag string
	verbose   bool

	// Loaded configuration
	cfg *config.Config
)

// rootCmd is the base command for the CLI.
var rootCmd = &cobra.Command{
	Use:   "genlive",
	Short: "genlive - Gemini generation and live streaming CLI",
	Long: `genlive is a command-line interface for the Gemini v1beta API.

Use genlive to generate text, hold live streaming conversations,
and manage your API key.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.genlive/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&modelFlag, "model", "", "model ID (e.g. models/gemini-2.0-flash)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
}

// initConfig reads in the config file and sets defaults.
func initConfig() error {
	path := cfgFile
	if path == "" {
		path = config.DefaultConfigPath()
	}

	var err error
	cfg, err = config.LoadConfig(path)
	if err != nil {
		return err
	}

	if modelFlag == "" && cfg.DefaultModel != "" {
		modelFlag = cfg.DefaultModel
	}
	if modelFlag == "" {
		modelFlag = defaultModel
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	return nil
}

// newClient builds an SDK client from the loaded config.
func newClient() *genlive.Client {
	opts := []genlive.ClientOption{}
	if cfg.APIKey != "" {
		opts = append(opts, genlive.WithAPIKey(cfg.APIKey))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, genlive.WithBaseURL(cfg.BaseURL))
	}
	if cfg.LiveEndpoint != "" {
		opts = append(opts, genlive.WithLiveEndpoint(cfg.LiveEndpoint))
	}
	return genlive.NewClient(opts...)
}
