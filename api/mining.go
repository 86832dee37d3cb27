package api

import "context"

// GetMiningInfo fetches the node's mining status
func (c *Client) GetMiningInfo(ctx context.Context) (Value, error) {
	return c.get(ctx, "/api/mining/info")
}

// StartMining starts the node miner, crediting rewards to minerAddress
func (c *Client) StartMining(ctx context.Context, minerAddress string) (Value, error) {
	return c.post(ctx, "/api/mining/start", StartMiningRequest{MinerAddress: minerAddress})
}

// StopMining stops the node miner
func (c *Client) StopMining(ctx context.Context) (Value, error) {
	return c.post(ctx, "/api/mining/stop", nil)
}

// GetMiningStats fetches mining statistics for address
func (c *Client) GetMiningStats(ctx context.Context, address string) (Value, error) {
	return c.get(ctx, "/api/mining/stats/"+address)
}

// GetMempoolInfo fetches mempool size and fee statistics
func (c *Client) GetMempoolInfo(ctx context.Context) (Value, error) {
	return c.get(ctx, "/api/mempool/stats")
}

// GetMempoolTransactions fetches the transactions currently in the mempool
func (c *Client) GetMempoolTransactions(ctx context.Context) (Value, error) {
	return c.get(ctx, "/api/mempool/transactions")
}
