package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var walletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Manage wallets and balances",
}

var walletCreateCmd = &cobra.Command{
	Use:   "create <username>",
	Short: "Register a new wallet account",
	Long: `Register a new account on the node. The password is prompted for twice.

Example:
  strat wallet create alice`,
	Args: cobra.ExactArgs(1),
	RunE: runWalletCreate,
}

var walletBalanceCmd = &cobra.Command{
	Use:   "balance <address>",
	Short: "Show the balance of an address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		balance, err := client.GetBalance(cmd.Context(), args[0])
		if err != nil {
			return errors.Wrap(err, "failed to get balance")
		}
		printf(cmd, "💰 Balance: %s STRAT\n", success("%v", balance))
		return nil
	},
}

var walletInfoCmd = &cobra.Command{
	Use:   "info <address>",
	Short: "Show wallet details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := client.GetWalletInfo(cmd.Context(), args[0])
		return respond(cmd, "get wallet info", info, err)
	},
}

var walletUTXOsCmd = &cobra.Command{
	Use:   "utxos <address>",
	Short: "List unspent outputs of an address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		utxos, err := client.GetUTXOs(cmd.Context(), args[0])
		return respond(cmd, "get UTXOs", utxos, err)
	},
}

func init() {
	walletCreateCmd.Flags().String("password", "", "account password (prompted when omitted)")

	walletCmd.AddCommand(walletCreateCmd, walletBalanceCmd, walletInfoCmd, walletUTXOsCmd)
}

func runWalletCreate(cmd *cobra.Command, args []string) error {
	password, _ := cmd.Flags().GetString("password")
	if password == "" {
		var err error
		password, err = readNewSecret("Enter account password: ", "Confirm account password: ")
		if err != nil {
			return err
		}
	}
	if password == "" {
		return errors.New("password is required")
	}

	result, err := client.CreateWallet(cmd.Context(), args[0], password)
	return respond(cmd, "create wallet", result, err)
}
