package cmd

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/strat-chain/strat-go/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the strat config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Save the current settings to the config file",
	Long: `Save the resolved api_url, timeout and dev_logging to the config file
(--config, or ~/.strat/config.yaml). The API key is only written with
--save-key; prefer 'strat login', which keeps it encrypted.

Examples:
  strat --api-url https://node.example.com --timeout 10s config init
  strat config init --force`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func init() {
	configInitCmd.Flags().Bool("force", false, "overwrite an existing config file")
	configInitCmd.Flags().Bool("save-key", false, "also store the API key in plain text")

	configCmd.AddCommand(configInitCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(path); err == nil && !force {
		return errors.Errorf("%s already exists. Use --force to overwrite it", path)
	}

	// settings.APIKey may hold an unlocked profile credential
	saved := *settings
	saved.APIKey = ""
	if saveKey, _ := cmd.Flags().GetBool("save-key"); saveKey {
		saved.APIKey = v.GetString(config.KeyAPIKey)
	}

	if err := config.Write(path, saved); err != nil {
		return err
	}

	printf(cmd, "✅ Config saved to %s\n", success("%s", path))
	printf(cmd, "🌐 API URL: %s\n", saved.APIURL)
	return nil
}

func configPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	dir, err := config.DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, config.FileName), nil
}
