package cmd

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/strat-chain/strat-go/api"
)

var govCmd = &cobra.Command{
	Use:     "gov",
	Aliases: []string{"governance"},
	Short:   "Create and vote on proposals",
}

var govProposeCmd = &cobra.Command{
	Use:   "propose <proposal-json>",
	Short: "Create a proposal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var data api.Value
		if err := parseJSONArg("proposal", args[0], &data); err != nil {
			return err
		}
		result, err := client.CreateProposal(cmd.Context(), data)
		return respond(cmd, "create proposal", result, err)
	},
}

var govVoteCmd = &cobra.Command{
	Use:   "vote <proposal-id> <yes|no> <voter>",
	Short: "Vote on a proposal",
	Args:  cobra.ExactArgs(3),
	RunE:  runGovVote,
}

var govGetCmd = &cobra.Command{
	Use:   "get <proposal-id>",
	Short: "Show a proposal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseUint("proposal id", args[0])
		if err != nil {
			return err
		}
		proposal, err := client.GetProposal(cmd.Context(), id)
		return respond(cmd, "get proposal", proposal, err)
	},
}

var govListCmd = &cobra.Command{
	Use:   "list",
	Short: "List proposals",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		status, _ := cmd.Flags().GetString("status")
		proposals, err := client.ListProposalsByStatus(cmd.Context(), status)
		return respond(cmd, "list proposals", proposals, err)
	},
}

func init() {
	addPrivateKeyFlag(govVoteCmd)
	govListCmd.Flags().String("status", "", "only list proposals with this status")

	govCmd.AddCommand(govProposeCmd, govVoteCmd, govGetCmd, govListCmd)
}

func runGovVote(cmd *cobra.Command, args []string) error {
	id, err := parseUint("proposal id", args[0])
	if err != nil {
		return err
	}

	vote, err := parseVote(args[1])
	if err != nil {
		return err
	}

	key, err := privateKey(cmd)
	if err != nil {
		return err
	}

	result, err := client.Vote(cmd.Context(), id, vote, args[2], key)
	return respond(cmd, "vote", result, err)
}

func parseVote(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "yes", "y", "true", "for":
		return true, nil
	case "no", "n", "false", "against":
		return false, nil
	default:
		return false, errors.Errorf("invalid vote %q: use yes or no", raw)
	}
}
