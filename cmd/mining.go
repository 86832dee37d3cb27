package cmd

import (
	"github.com/spf13/cobra"
)

var miningCmd = &cobra.Command{
	Use:   "mining",
	Short: "Control and inspect mining",
}

var miningInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show mining info",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := client.GetMiningInfo(cmd.Context())
		return respond(cmd, "get mining info", info, err)
	},
}

var miningStartCmd = &cobra.Command{
	Use:   "start <miner-address>",
	Short: "Start mining to an address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := client.StartMining(cmd.Context(), args[0])
		return respond(cmd, "start mining", result, err)
	},
}

var miningStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop mining",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := client.StopMining(cmd.Context())
		return respond(cmd, "stop mining", result, err)
	},
}

var miningStatsCmd = &cobra.Command{
	Use:   "stats <address>",
	Short: "Show mining stats of an address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := client.GetMiningStats(cmd.Context(), args[0])
		return respond(cmd, "get mining stats", stats, err)
	},
}

var mempoolCmd = &cobra.Command{
	Use:   "mempool",
	Short: "Inspect the mempool",
}

var mempoolInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show mempool stats",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := client.GetMempoolInfo(cmd.Context())
		return respond(cmd, "get mempool info", info, err)
	},
}

var mempoolTxsCmd = &cobra.Command{
	Use:   "txs",
	Short: "List mempool transactions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		txs, err := client.GetMempoolTransactions(cmd.Context())
		return respond(cmd, "get mempool transactions", txs, err)
	},
}

func init() {
	miningCmd.AddCommand(miningInfoCmd, miningStartCmd, miningStopCmd, miningStatsCmd)
	mempoolCmd.AddCommand(mempoolInfoCmd, mempoolTxsCmd)
}
