package cmd

import (
	"github.com/spf13/cobra"
)

var chainCmd = &cobra.Command{
	Use:   "chain",
	Short: "Inspect the blockchain",
}

var chainInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show blockchain info",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := client.GetBlockchainInfo(cmd.Context())
		return respond(cmd, "get blockchain info", info, err)
	},
}

var chainBlockCmd = &cobra.Command{
	Use:   "block <index|hash>",
	Short: "Fetch a block by index or hash",
	Long: `Fetch a block. An all-digit identifier is treated as a block index,
anything else as a block hash.

Examples:
  strat chain block 42
  strat chain block 0000a1b2...`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		block, err := client.GetBlock(cmd.Context(), args[0])
		return respond(cmd, "get block", block, err)
	},
}

var chainBlocksCmd = &cobra.Command{
	Use:   "blocks",
	Short: "List the latest blocks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetUint32("limit")
		blocks, err := client.GetLatestBlocks(cmd.Context(), limit)
		return respond(cmd, "get latest blocks", blocks, err)
	},
}

func init() {
	chainBlocksCmd.Flags().Uint32("limit", 10, "number of blocks")

	chainCmd.AddCommand(chainInfoCmd, chainBlockCmd, chainBlocksCmd)
}
