package cmd

import (
	"github.com/spf13/cobra"

	"github.com/strat-chain/strat-go/api"
)

var nftCmd = &cobra.Command{
	Use:   "nft",
	Short: "Mint and transfer NFTs",
}

var nftMintCmd = &cobra.Command{
	Use:   "mint <metadata-json>",
	Short: "Mint an NFT",
	Long: `Mint an NFT. The argument is sent to the node as the JSON request body.

Example:
  strat nft mint '{"owner": "0x1111...", "name": "Genesis", "uri": "ipfs://..."}'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var data api.Value
		if err := parseJSONArg("metadata", args[0], &data); err != nil {
			return err
		}
		result, err := client.MintNFT(cmd.Context(), data)
		return respond(cmd, "mint NFT", result, err)
	},
}

var nftGetCmd = &cobra.Command{
	Use:   "get <token-id>",
	Short: "Show an NFT",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tokenID, err := parseUint("token id", args[0])
		if err != nil {
			return err
		}
		nft, err := client.GetNFT(cmd.Context(), tokenID)
		return respond(cmd, "get NFT", nft, err)
	},
}

var nftTransferCmd = &cobra.Command{
	Use:   "transfer <token-id> <from> <to>",
	Short: "Transfer an NFT",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		tokenID, err := parseUint("token id", args[0])
		if err != nil {
			return err
		}
		key, err := privateKey(cmd)
		if err != nil {
			return err
		}
		result, err := client.TransferNFT(cmd.Context(), tokenID, args[1], args[2], key)
		return respond(cmd, "transfer NFT", result, err)
	},
}

var nftListCmd = &cobra.Command{
	Use:   "list <owner>",
	Short: "List NFTs owned by an address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		nfts, err := client.ListNFTs(cmd.Context(), args[0])
		return respond(cmd, "list NFTs", nfts, err)
	},
}

func init() {
	addPrivateKeyFlag(nftTransferCmd)

	nftCmd.AddCommand(nftMintCmd, nftGetCmd, nftTransferCmd, nftListCmd)
}
