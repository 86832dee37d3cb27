package api

import (
	"context"
	"fmt"
)

// DeployContract publishes contract source owned by owner
func (c *Client) DeployContract(ctx context.Context, code, owner, privateKey string) (Value, error) {
	return c.post(ctx, "/api/contracts/deploy", DeployContractRequest{
		Code:       code,
		Owner:      owner,
		PrivateKey: privateKey,
	})
}

// CallContract invokes method on a deployed contract
func (c *Client) CallContract(ctx context.Context, contractAddress, method string, params []interface{}, caller, privateKey string) (Value, error) {
	if params == nil {
		params = []interface{}{}
	}
	return c.post(ctx, "/api/contracts/call", CallContractRequest{
		ContractAddress: contractAddress,
		Method:          method,
		Params:          params,
		Caller:          caller,
		PrivateKey:      privateKey,
	})
}

// GetContract fetches contract metadata
func (c *Client) GetContract(ctx context.Context, contractAddress string) (Value, error) {
	return c.get(ctx, "/api/contracts/"+contractAddress)
}

// GetContractState fetches the current storage of a contract
func (c *Client) GetContractState(ctx context.Context, contractAddress string) (Value, error) {
	return c.get(ctx, "/api/contracts/"+contractAddress+"/state")
}

// ListContracts fetches one page of deployed contracts
func (c *Client) ListContracts(ctx context.Context, limit, offset uint32) (Value, error) {
	return c.get(ctx, fmt.Sprintf("/api/contracts?limit=%d&offset=%d", limit, offset))
}
