package cmd

import (
	"fmt"
	"io"

	"github.com/nodewee/doc-translate/pkg/config"

	"github.com/spf13/cobra"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage translation settings",
	Long: `Manage persisted translation settings.

Configuration is stored in a YAML file in your home directory (~/.doc-translate/config.yaml).
Environment variables (DOC_TRANSLATE_*) and command line flags override these values.

Available commands:
  list  - List all settings
  get   - Get a specific setting
  set   - Set a specific setting

Examples:
  doc-translate config list                           # List all settings
  doc-translate config get target_language            # Get the target language
  doc-translate config set api_key <KEY>              # Store the API key
  doc-translate config set proxy_url socks5://127.0.0.1:1080`,
}

// listConfig lists all persisted settings, with the API key masked
func listConfig(w io.Writer) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "🛠️  Translation Configuration")
	fmt.Fprintln(w, "============================")

	configPath, _ := config.GetConfigFilePath()
	fmt.Fprintf(w, "📁 Config file: %s\n\n", configPath)

	for _, key := range config.ListConfigKeys() {
		value, err := cfg.Value(key)
		if err != nil {
			return err
		}
		display := fmt.Sprintf("%v", value)
		if key == config.KeyAPIKey {
			display = config.MaskSecret(cfg.APIKey)
		}
		fmt.Fprintf(w, "  %-16s = %s\n", key, getDisplayValue(display))
	}

	fmt.Fprintln(w, "\n💡 Tip: Use 'doc-translate config get <key>' to get specific values")
	fmt.Fprintln(w, "💡 Tip: Use 'doc-translate config set <key> <value>' to change settings")
	return nil
}

// getConfig gets a specific configuration value
func getConfig(w io.Writer, key string) error {
	value, err := config.GetConfigValue(key)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "📝 %s = %v\n", key, value)
	return nil
}

// setConfig sets a specific configuration value
func setConfig(w io.Writer, key, value string) error {
	if err := config.SetConfigValue(key, value); err != nil {
		return err
	}

	if key == config.KeyAPIKey {
		value = config.MaskSecret(value)
	}
	fmt.Fprintf(w, "✅ Successfully set %s = %v\n", key, value)
	return nil
}

// getDisplayValue returns a display-friendly value for empty strings
func getDisplayValue(value string) string {
	if value == "" {
		return "(not set)"
	}
	return value
}

// configListCmd represents the 'config list' command
var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return reported(cmd, listConfig(cmd.OutOrStdout()))
	},
}

// configGetCmd represents the 'config get' command
var configGetCmd = &cobra.Command{
	Use:       "get <key>",
	Short:     "Get a specific setting",
	Args:      cobra.ExactArgs(1),
	ValidArgs: config.ListConfigKeys(),
	RunE: func(cmd *cobra.Command, args []string) error {
		return reported(cmd, getConfig(cmd.OutOrStdout(), args[0]))
	},
}

// configSetCmd represents the 'config set' command
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a specific setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return reported(cmd, setConfig(cmd.OutOrStdout(), args[0], args[1]))
	},
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
}
