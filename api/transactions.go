package api

import (
	"context"
	"fmt"
)

// GetTransaction fetches a transaction by id
func (c *Client) GetTransaction(ctx context.Context, txID string) (Value, error) {
	return c.get(ctx, "/api/transactions/"+txID)
}

// SendTransaction submits a transfer. The node signs it with privateKey.
func (c *Client) SendTransaction(ctx context.Context, fromAddress, toAddress string, amount float64, privateKey string) (Value, error) {
	return c.post(ctx, "/api/transactions/send", SendTransactionRequest{
		FromAddress: fromAddress,
		ToAddress:   toAddress,
		Amount:      amount,
		PrivateKey:  privateKey,
	})
}

// GetTransactionHistory fetches one page of transactions touching address
func (c *Client) GetTransactionHistory(ctx context.Context, address string, limit, offset uint32) (Value, error) {
	return c.get(ctx, fmt.Sprintf("/api/transactions/history/%s?limit=%d&offset=%d", address, limit, offset))
}

// GetPendingTransactions fetches transactions not yet included in a block
func (c *Client) GetPendingTransactions(ctx context.Context) (Value, error) {
	return c.get(ctx, "/api/transactions/pending")
}
