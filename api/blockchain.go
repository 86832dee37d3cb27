package api

import (
	"context"
	"fmt"
)

// GetBlockchainInfo fetches chain height, difficulty and related summary data
func (c *Client) GetBlockchainInfo(ctx context.Context) (Value, error) {
	return c.get(ctx, "/api/blockchain/info")
}

// GetBlock fetches a block by hash or by index. An identifier made only of
// ASCII digits is treated as an index; this includes the empty string.
func (c *Client) GetBlock(ctx context.Context, identifier string) (Value, error) {
	return c.get(ctx, blockEndpoint(identifier))
}

// GetBlockByHash fetches a block by its hash regardless of its shape
func (c *Client) GetBlockByHash(ctx context.Context, hash string) (Value, error) {
	return c.get(ctx, "/api/blockchain/block/"+hash)
}

// GetBlockByIndex fetches a block by its height
func (c *Client) GetBlockByIndex(ctx context.Context, index uint64) (Value, error) {
	return c.get(ctx, fmt.Sprintf("/api/blockchain/block-by-index/%d", index))
}

// GetLatestBlocks fetches the most recent count blocks
func (c *Client) GetLatestBlocks(ctx context.Context, count uint32) (Value, error) {
	return c.get(ctx, fmt.Sprintf("/api/blockchain/blocks?limit=%d", count))
}

func blockEndpoint(identifier string) string {
	if isDigits(identifier) {
		return "/api/blockchain/block-by-index/" + identifier
	}
	return "/api/blockchain/block/" + identifier
}

// isDigits reports whether every byte of s is 0-9. It is true for "".
func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
