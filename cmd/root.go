package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/strat-chain/strat-go/api"
	"github.com/strat-chain/strat-go/config"
	logging "github.com/strat-chain/strat-go/log"
	"github.com/strat-chain/strat-go/profile"
)

var (
	version = "0.1.0"

	cfgFile string
	v       = config.New()

	// populated by loadRuntime before any RunE
	settings *config.Settings
	client   *api.Client
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "strat",
	Short: "Command-line client for the STRAT blockchain REST API",
	Long: `strat talks to a STRAT node over its REST API. Every command maps to one
endpoint and prints the node's JSON response.

Configuration is read from ~/.strat/config.yaml, STRAT_* environment
variables and flags, in increasing order of precedence.

Examples:
  strat health                          # Check the node is up
  strat chain info                      # Show blockchain info
  strat chain block 42                  # Fetch a block by index
  strat wallet balance 0xabc...         # Show an address balance
  strat login                           # Store an API key, sealed with a passphrase
  strat batch requests.yaml             # Send many requests at once`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadRuntime,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default ~/.strat/config.yaml)")
	flags.String("api-url", api.DefaultAPIURL, "STRAT node base URL")
	flags.String("api-key", "", "bearer token sent with every request")
	flags.Duration("timeout", api.DefaultTimeout, "per-request timeout")
	flags.BoolP("verbose", "v", false, "log requests to stderr")

	bindFlags(flags)

	rootCmd.AddCommand(chainCmd)
	rootCmd.AddCommand(txCmd)
	rootCmd.AddCommand(walletCmd)
	rootCmd.AddCommand(contractCmd)
	rootCmd.AddCommand(miningCmd)
	rootCmd.AddCommand(mempoolCmd)
	rootCmd.AddCommand(stakeCmd)
	rootCmd.AddCommand(nftCmd)
	rootCmd.AddCommand(govCmd)
	rootCmd.AddCommand(explorerCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(apiVersionCmd)
	rootCmd.AddCommand(utilCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(unlockCmd)
	rootCmd.AddCommand(lockCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// bindFlags lets flags override the matching config keys
func bindFlags(flags *pflag.FlagSet) {
	for key, name := range map[string]string{
		config.KeyAPIURL:     "api-url",
		config.KeyAPIKey:     "api-key",
		config.KeyTimeout:    "timeout",
		config.KeyDevLogging: "verbose",
	} {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

// offlineAnnotation marks commands, and their children, that never reach a node
const offlineAnnotation = "offline"

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Print the version number",
	Annotations: map[string]string{offlineAnnotation: "true"},
	Run: func(cmd *cobra.Command, args []string) {
		printf(cmd, "strat v%s\n", version)
	},
}

// loadRuntime resolves settings, the logger and the API client for a command
func loadRuntime(cmd *cobra.Command, args []string) error {
	if isOffline(cmd) {
		return nil
	}

	loaded, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}

	logger := logging.DefaultLogger(loaded.DevLogging)
	cmd.SetContext(logging.WithLogger(contextOf(cmd), logger))

	loaded.APIKey = resolveCredential(loaded, newProfile(), logger)
	settings = loaded
	client = api.NewClient(loaded.API(), api.WithLogger(logger))

	logger.Debug("runtime loaded",
		zap.String("api_url", loaded.APIURL),
		zap.Duration("timeout", loaded.Timeout),
		zap.String("config_file", v.ConfigFileUsed()),
		zap.Bool("authenticated", loaded.APIKey != ""),
	)
	return nil
}

// resolveCredential prefers an explicit api_key and falls back to an
// unlocked profile session for the same API URL
func resolveCredential(s *config.Settings, manager *profile.Manager, logger *zap.Logger) string {
	if s.APIKey != "" || manager == nil {
		return s.APIKey
	}

	credential, err := manager.Credential(s.APIURL)
	switch {
	case err == nil:
		return credential
	case errors.Is(err, profile.ErrNoCredential):
	default:
		logger.Debug("profile credential unavailable", zap.Error(err))
	}
	return ""
}

func isOffline(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[offlineAnnotation] == "true" {
			return true
		}
	}
	return false
}

func newProfile() *profile.Manager {
	dir, err := config.DefaultDir()
	if err != nil {
		return nil
	}
	return profile.NewManager(dir)
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
