package api

import (
	"context"
	"errors"
	"net/http"
)

// CreateWallet registers a user account, which creates its wallet server-side
func (c *Client) CreateWallet(ctx context.Context, username, password string) (Value, error) {
	return c.post(ctx, "/api/auth/register", RegisterRequest{
		Username: username,
		Password: password,
	})
}

// GetBalance fetches the balance of address. A response without a numeric
// "balance" field is a serialization error.
func (c *Client) GetBalance(ctx context.Context, address string) (float64, error) {
	var result balanceResponse
	if err := c.do(ctx, http.MethodGet, "/api/wallets/balance/"+address, nil, &result); err != nil {
		return 0, err
	}

	if result.Balance == nil {
		return 0, serializationError(errors.New("invalid balance format"))
	}

	return *result.Balance, nil
}

// GetWalletInfo fetches wallet details for address
func (c *Client) GetWalletInfo(ctx context.Context, address string) (Value, error) {
	return c.get(ctx, "/api/wallets/"+address)
}

// GetUTXOs fetches the unspent outputs owned by address
func (c *Client) GetUTXOs(ctx context.Context, address string) (Value, error) {
	return c.get(ctx, "/api/wallets/utxos/"+address)
}
