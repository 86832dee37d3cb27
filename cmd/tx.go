package cmd

import (
	"github.com/spf13/cobra"
)

var txCmd = &cobra.Command{
	Use:     "tx",
	Aliases: []string{"transaction"},
	Short:   "Query and send transactions",
}

var txGetCmd = &cobra.Command{
	Use:   "get <tx-id>",
	Short: "Fetch a transaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tx, err := client.GetTransaction(cmd.Context(), args[0])
		return respond(cmd, "get transaction", tx, err)
	},
}

var txSendCmd = &cobra.Command{
	Use:   "send <from> <to> <amount>",
	Short: "Send STRAT between addresses",
	Long: `Send STRAT from one address to another. The private key of the sender is
prompted for unless --private-key is given.

Example:
  strat tx send 0x1111... 0x2222... 1.5`,
	Args: cobra.ExactArgs(3),
	RunE: runTxSend,
}

var txHistoryCmd = &cobra.Command{
	Use:   "history <address>",
	Short: "Show the transaction history of an address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetUint32("limit")
		offset, _ := cmd.Flags().GetUint32("offset")
		history, err := client.GetTransactionHistory(cmd.Context(), args[0], limit, offset)
		return respond(cmd, "get transaction history", history, err)
	},
}

var txPendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List pending transactions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pending, err := client.GetPendingTransactions(cmd.Context())
		return respond(cmd, "get pending transactions", pending, err)
	},
}

func init() {
	addPrivateKeyFlag(txSendCmd)
	txHistoryCmd.Flags().Uint32("limit", 50, "maximum number of transactions")
	txHistoryCmd.Flags().Uint32("offset", 0, "number of transactions to skip")

	txCmd.AddCommand(txGetCmd, txSendCmd, txHistoryCmd, txPendingCmd)
}

func runTxSend(cmd *cobra.Command, args []string) error {
	amount, key, err := amountAndKey(cmd, args[2])
	if err != nil {
		return err
	}

	result, err := client.SendTransaction(cmd.Context(), args[0], args[1], amount, key)
	return respond(cmd, "send transaction", result, err)
}
