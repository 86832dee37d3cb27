package api

import (
	"context"
	"fmt"
	"net/url"
)

// CreateProposal submits a governance proposal. data is forwarded unchanged.
func (c *Client) CreateProposal(ctx context.Context, data Value) (Value, error) {
	return c.post(ctx, "/api/governance/proposal", data)
}

// Vote casts a yes (true) or no (false) vote on a proposal
func (c *Client) Vote(ctx context.Context, proposalID uint64, vote bool, voter, privateKey string) (Value, error) {
	return c.post(ctx, "/api/governance/vote", VoteRequest{
		ProposalID: proposalID,
		Vote:       vote,
		Voter:      voter,
		PrivateKey: privateKey,
	})
}

// GetProposal fetches a proposal by id
func (c *Client) GetProposal(ctx context.Context, proposalID uint64) (Value, error) {
	return c.get(ctx, fmt.Sprintf("/api/governance/proposal/%d", proposalID))
}

// ListProposals fetches all proposals
func (c *Client) ListProposals(ctx context.Context) (Value, error) {
	return c.get(ctx, "/api/governance/proposals")
}

// ListProposalsByStatus fetches proposals filtered by status. An empty
// status is the same as ListProposals.
func (c *Client) ListProposalsByStatus(ctx context.Context, status string) (Value, error) {
	if status == "" {
		return c.ListProposals(ctx)
	}
	return c.get(ctx, "/api/governance/proposals?status="+url.QueryEscape(status))
}
