package cmd

import (
	"github.com/spf13/cobra"
)

var explorerCmd = &cobra.Command{
	Use:   "explorer",
	Short: "Query the block explorer",
}

var explorerAddressCmd = &cobra.Command{
	Use:   "address <address>",
	Short: "Search an address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := client.SearchAddress(cmd.Context(), args[0])
		return respond(cmd, "search address", result, err)
	},
}

var explorerRichListCmd = &cobra.Command{
	Use:   "richlist",
	Short: "List the largest balances",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetUint32("limit")
		list, err := client.GetRichList(cmd.Context(), limit)
		return respond(cmd, "get rich list", list, err)
	},
}

var explorerStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show network stats",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := client.GetNetworkStats(cmd.Context())
		return respond(cmd, "get network stats", stats, err)
	},
}

// healthCmd and apiVersionCmd talk to the node root rather than a group
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check node health",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		health, err := client.HealthCheck(cmd.Context())
		return respond(cmd, "check health", health, err)
	},
}

var apiVersionCmd = &cobra.Command{
	Use:   "api-version",
	Short: "Show the node API version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := client.GetAPIVersion(cmd.Context())
		return respond(cmd, "get API version", info, err)
	},
}

func init() {
	explorerRichListCmd.Flags().Uint32("limit", 100, "number of addresses")

	explorerCmd.AddCommand(explorerAddressCmd, explorerRichListCmd, explorerStatsCmd)
}
