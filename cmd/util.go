package cmd

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/strat-chain/strat-go/api"
)

var utilCmd = &cobra.Command{
	Use:         "util",
	Short:       "Offline address and unit helpers",
	Annotations: map[string]string{offlineAnnotation: "true"},
}

var utilValidateCmd = &cobra.Command{
	Use:   "validate <address>",
	Short: "Check an address and print its checksummed form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		checksummed, err := api.ChecksumAddress(args[0])
		if err != nil {
			return errors.Wrapf(err, "%s", args[0])
		}
		printf(cmd, "✅ Valid address: %s\n", color.GreenString(checksummed))
		return nil
	},
}

var utilToWeiCmd = &cobra.Command{
	Use:   "to-wei <amount>",
	Short: "Convert a STRAT amount to wei",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return errors.Errorf("invalid amount %q", args[0])
		}
		printf(cmd, "%s\n", api.ToWei(amount).String())
		return nil
	},
}

var utilFromWeiCmd = &cobra.Command{
	Use:   "from-wei <wei>",
	Short: "Convert wei to a STRAT amount",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wei, err := parseWei(args[0])
		if err != nil {
			return err
		}
		printf(cmd, "%s\n", api.FormatWei(wei))
		return nil
	},
}

func init() {
	utilCmd.AddCommand(utilValidateCmd, utilToWeiCmd, utilFromWeiCmd)
}

func parseWei(raw string) (*big.Int, error) {
	wei, ok := new(big.Int).SetString(strings.TrimSpace(raw), 10)
	if !ok {
		return nil, errors.Errorf("invalid wei amount %q", raw)
	}
	return wei, nil
}
