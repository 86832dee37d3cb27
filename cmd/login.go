package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/strat-chain/strat-go/crypto"
	"github.com/strat-chain/strat-go/profile"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store an API key sealed with a passphrase",
	Long: `Store an API key in ~/.strat, encrypted with a passphrase (scrypt and
AES-256-GCM). After login the key is unlocked for 30 minutes and sent with
every request to the configured API URL.

Example:
  strat login
  strat --api-url https://node.example.com login`,
	Args: cobra.NoArgs,
	RunE: runLogin,
}

var unlockCmd = &cobra.Command{
	Use:   "unlock",
	Short: "Unlock the stored API key for a session",
	Long: `Unlock the stored API key for the configured API URL. The session lasts
30 minutes or until 'strat lock'.

Example:
  strat unlock`,
	Args: cobra.NoArgs,
	RunE: runUnlock,
}

var lockCmd = &cobra.Command{
	Use:   "lock",
	Short: "End the current session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, err := requireProfile()
		if err != nil {
			return err
		}
		manager.Lock()
		printf(cmd, "🔒 Session locked\n")
		return nil
	},
}

func init() {
	loginCmd.Flags().Bool("forget", false, "remove the stored API key instead")
}

func runLogin(cmd *cobra.Command, args []string) error {
	manager, err := requireProfile()
	if err != nil {
		return err
	}

	if forget, _ := cmd.Flags().GetBool("forget"); forget {
		if err := manager.Forget(); err != nil {
			return err
		}
		printf(cmd, "🗑️  Stored API key removed\n")
		return nil
	}

	if manager.HasCredential() {
		printf(cmd, "⚠️  Replacing the stored API key\n")
	}

	apiKey, err := readSecret("Enter API key: ")
	if err != nil {
		return err
	}
	if apiKey == "" {
		return errors.New("API key is required")
	}

	passphrase, err := readNewSecret("Enter a passphrase: ", "Confirm passphrase: ")
	if err != nil {
		return err
	}
	if len(passphrase) < 8 {
		return errors.New("passphrase must be at least 8 characters long")
	}

	printf(cmd, "Sealing API key...\n")
	if err := manager.SaveCredential(apiKey, passphrase); err != nil {
		return err
	}
	if err := manager.Unlock(passphrase, settings.APIURL); err != nil {
		return err
	}

	printf(cmd, "✅ API key stored and unlocked for %s\n", success("%s", settings.APIURL))
	return nil
}

func runUnlock(cmd *cobra.Command, args []string) error {
	manager, err := requireProfile()
	if err != nil {
		return err
	}

	if !manager.HasCredential() {
		return profile.ErrNoCredential
	}

	if _, err := manager.Credential(settings.APIURL); err == nil {
		printf(cmd, "✅ Already unlocked\n")
		return nil
	}

	passphrase, err := readSecret("Enter your passphrase: ")
	if err != nil {
		return err
	}

	if err := manager.Unlock(passphrase, settings.APIURL); err != nil {
		if errors.Is(err, crypto.ErrWrongPassphrase) {
			return errors.New("wrong passphrase")
		}
		return err
	}

	printf(cmd, "✅ Unlocked for %s (%s)\n", success("%s", settings.APIURL), profile.SessionDuration)
	return nil
}

func requireProfile() (*profile.Manager, error) {
	manager := newProfile()
	if manager == nil {
		return nil, errors.New("failed to locate home directory")
	}
	return manager, nil
}
