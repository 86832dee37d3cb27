package api

import (
	"context"
	"fmt"
)

// MintNFT mints a token. data is forwarded unchanged as the request body.
func (c *Client) MintNFT(ctx context.Context, data Value) (Value, error) {
	return c.post(ctx, "/api/nft/mint", data)
}

// GetNFT fetches a token by id
func (c *Client) GetNFT(ctx context.Context, tokenID uint64) (Value, error) {
	return c.get(ctx, fmt.Sprintf("/api/nft/%d", tokenID))
}

// TransferNFT moves a token from one owner to another
func (c *Client) TransferNFT(ctx context.Context, tokenID uint64, from, to, privateKey string) (Value, error) {
	return c.post(ctx, "/api/nft/transfer", TransferNFTRequest{
		TokenID:    tokenID,
		From:       from,
		To:         to,
		PrivateKey: privateKey,
	})
}

// ListNFTs fetches the tokens held by owner
func (c *Client) ListNFTs(ctx context.Context, owner string) (Value, error) {
	return c.get(ctx, "/api/nft/list/"+owner)
}
