package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var contractCmd = &cobra.Command{
	Use:   "contract",
	Short: "Deploy and call smart contracts",
}

var contractDeployCmd = &cobra.Command{
	Use:   "deploy <owner> <code-file>",
	Short: "Deploy a contract from a source file",
	Args:  cobra.ExactArgs(2),
	RunE:  runContractDeploy,
}

var contractCallCmd = &cobra.Command{
	Use:   "call <contract> <method> [params-json]",
	Short: "Call a contract method",
	Long: `Call a contract method. Parameters are given as a JSON array.

Example:
  strat contract call 0xc0ffee... transfer '["0x2222...", 10]' --caller 0x1111...`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runContractCall,
}

var contractGetCmd = &cobra.Command{
	Use:   "get <contract>",
	Short: "Show a deployed contract",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		contract, err := client.GetContract(cmd.Context(), args[0])
		return respond(cmd, "get contract", contract, err)
	},
}

var contractStateCmd = &cobra.Command{
	Use:   "state <contract>",
	Short: "Show contract storage",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := client.GetContractState(cmd.Context(), args[0])
		return respond(cmd, "get contract state", state, err)
	},
}

var contractListCmd = &cobra.Command{
	Use:   "list",
	Short: "List deployed contracts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetUint32("limit")
		offset, _ := cmd.Flags().GetUint32("offset")
		contracts, err := client.ListContracts(cmd.Context(), limit, offset)
		return respond(cmd, "list contracts", contracts, err)
	},
}

func init() {
	addPrivateKeyFlag(contractDeployCmd)
	addPrivateKeyFlag(contractCallCmd)
	contractCallCmd.Flags().String("caller", "", "address making the call")
	_ = contractCallCmd.MarkFlagRequired("caller")
	contractListCmd.Flags().Uint32("limit", 50, "maximum number of contracts")
	contractListCmd.Flags().Uint32("offset", 0, "number of contracts to skip")

	contractCmd.AddCommand(contractDeployCmd, contractCallCmd, contractGetCmd, contractStateCmd, contractListCmd)
}

func runContractDeploy(cmd *cobra.Command, args []string) error {
	code, err := os.ReadFile(args[1])
	if err != nil {
		return errors.Wrap(err, "failed to read contract code")
	}

	key, err := privateKey(cmd)
	if err != nil {
		return err
	}

	result, err := client.DeployContract(cmd.Context(), string(code), args[0], key)
	return respond(cmd, "deploy contract", result, err)
}

func runContractCall(cmd *cobra.Command, args []string) error {
	var params []interface{}
	if len(args) == 3 {
		if err := parseJSONArg("params", args[2], &params); err != nil {
			return err
		}
	}

	caller, _ := cmd.Flags().GetString("caller")
	key, err := privateKey(cmd)
	if err != nil {
		return err
	}

	result, err := client.CallContract(cmd.Context(), args[0], args[1], params, caller, key)
	return respond(cmd, "call contract", result, err)
}
