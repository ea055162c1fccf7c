package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/veldtlabs/genlive/cli/config"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the API key",
	Long:  `Manage the API key used by the CLI. The key is stored in the config file with owner-only permissions.`,
}

var authSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set the API key",
	Long:  `Set the API key. The key is prompted without echo when run in a terminal.`,
	RunE:  runAuthSet,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether an API key is configured",
	RunE:  runAuthStatus,
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authSetCmd)
	authCmd.AddCommand(authStatusCmd)
}

func runAuthSet(cmd *cobra.Command, args []string) error {
	fmt.Fprint(cmd.OutOrStdout(), "Enter API key: ")

	var apiKey string
	if term.IsTerminal(int(os.Stdin.Fd())) {
		keyBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout())
		apiKey = string(keyBytes)
	} else {
		reader := bufio.NewReader(cmd.InOrStdin())
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		apiKey = line
	}

	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return fmt.Errorf("API key cannot be empty")
	}

	path := cfgFile
	if path == "" {
		path = config.DefaultConfigPath()
	}
	cfg.APIKey = apiKey
	if err := cfg.Save(path); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "API key saved to %s\n", path)
	return nil
}

func runAuthStatus(cmd *cobra.Command, args []string) error {
	switch {
	case cfg.APIKey != "":
		fmt.Fprintln(cmd.OutOrStdout(), "API key: configured (config file)")
	case os.Getenv("GEMINI_API_KEY") != "":
		fmt.Fprintln(cmd.OutOrStdout(), "API key: configured (GEMINI_API_KEY)")
	case os.Getenv("GOOGLE_API_KEY") != "":
		fmt.Fprintln(cmd.OutOrStdout(), "API key: configured (GOOGLE_API_KEY)")
	default:
		fmt.Fprintln(cmd.OutOrStdout(), "API key: not configured")
		fmt.Fprintln(cmd.OutOrStdout(), "Run 'genlive auth set' or export GEMINI_API_KEY.")
	}
	return nil
}
