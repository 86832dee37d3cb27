package api

import (
	"context"
	"fmt"
)

// SearchAddress fetches the explorer summary of address
func (c *Client) SearchAddress(ctx context.Context, address string) (Value, error) {
	return c.get(ctx, "/api/explorer/address/"+address)
}

// GetRichList fetches the top limit addresses by balance
func (c *Client) GetRichList(ctx context.Context, limit uint32) (Value, error) {
	return c.get(ctx, fmt.Sprintf("/api/explorer/richlist?limit=%d", limit))
}

// GetNetworkStats fetches network-wide statistics
func (c *Client) GetNetworkStats(ctx context.Context) (Value, error) {
	return c.get(ctx, "/api/explorer/stats")
}
