package cmd

import (
	"github.com/spf13/cobra"
)

var stakeCmd = &cobra.Command{
	Use:   "stake",
	Short: "Stake STRAT and claim rewards",
}

var stakeAddCmd = &cobra.Command{
	Use:   "add <address> <amount>",
	Short: "Stake an amount",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, key, err := amountAndKey(cmd, args[1])
		if err != nil {
			return err
		}
		result, err := client.Stake(cmd.Context(), args[0], amount, key)
		return respond(cmd, "stake", result, err)
	},
}

var stakeRemoveCmd = &cobra.Command{
	Use:   "remove <address> <amount>",
	Short: "Unstake an amount",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, key, err := amountAndKey(cmd, args[1])
		if err != nil {
			return err
		}
		result, err := client.Unstake(cmd.Context(), args[0], amount, key)
		return respond(cmd, "unstake", result, err)
	},
}

var stakeInfoCmd = &cobra.Command{
	Use:   "info <address>",
	Short: "Show staking info of an address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := client.GetStakingInfo(cmd.Context(), args[0])
		return respond(cmd, "get staking info", info, err)
	},
}

var stakeClaimCmd = &cobra.Command{
	Use:   "claim <address>",
	Short: "Claim staking rewards",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := privateKey(cmd)
		if err != nil {
			return err
		}
		result, err := client.ClaimRewards(cmd.Context(), args[0], key)
		return respond(cmd, "claim rewards", result, err)
	},
}

func init() {
	addPrivateKeyFlag(stakeAddCmd)
	addPrivateKeyFlag(stakeRemoveCmd)
	addPrivateKeyFlag(stakeClaimCmd)

	stakeCmd.AddCommand(stakeAddCmd, stakeRemoveCmd, stakeInfoCmd, stakeClaimCmd)
}

func amountAndKey(cmd *cobra.Command, rawAmount string) (float64, string, error) {
	amount, err := parseAmount(rawAmount)
	if err != nil {
		return 0, "", err
	}
	key, err := privateKey(cmd)
	if err != nil {
		return 0, "", err
	}
	return amount, key, nil
}
