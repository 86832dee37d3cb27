package api

import "context"

// Stake locks amount tokens from address
func (c *Client) Stake(ctx context.Context, address string, amount float64, privateKey string) (Value, error) {
	return c.post(ctx, "/api/staking/stake", StakeRequest{
		Address:    address,
		Amount:     amount,
		PrivateKey: privateKey,
	})
}

// Unstake releases amount staked tokens back to address
func (c *Client) Unstake(ctx context.Context, address string, amount float64, privateKey string) (Value, error) {
	return c.post(ctx, "/api/staking/unstake", StakeRequest{
		Address:    address,
		Amount:     amount,
		PrivateKey: privateKey,
	})
}

// GetStakingInfo fetches the stake and pending rewards of address
func (c *Client) GetStakingInfo(ctx context.Context, address string) (Value, error) {
	return c.get(ctx, "/api/staking/info/"+address)
}

// ClaimRewards pays out accumulated staking rewards to address
func (c *Client) ClaimRewards(ctx context.Context, address, privateKey string) (Value, error) {
	return c.post(ctx, "/api/staking/claim", ClaimRewardsRequest{
		Address:    address,
		PrivateKey: privateKey,
	})
}
