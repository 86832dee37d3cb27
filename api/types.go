package api

// Value is a schema-less JSON value as decoded by encoding/json:
// map[string]interface{}, []interface{}, string, float64, bool or nil.
type Value = interface{}

// SendTransactionRequest is the body of POST /api/transactions/send
type SendTransactionRequest struct {
	FromAddress string  `json:"fromAddress"`
	ToAddress   string  `json:"toAddress"`
	Amount      float64 `json:"amount"`
	PrivateKey  string  `json:"privateKey"`
}

// TransactionDraft is an unsigned transfer description built locally
type TransactionDraft struct {
	FromAddress string  `json:"fromAddress"`
	ToAddress   string  `json:"toAddress"`
	Amount      float64 `json:"amount"`
	Timestamp   int64   `json:"timestamp"` // unix milliseconds
}

// RegisterRequest is the body of POST /api/auth/register
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// DeployContractRequest is the body of POST /api/contracts/deploy
type DeployContractRequest struct {
	Code       string `json:"code"`
	Owner      string `json:"owner"`
	PrivateKey string `json:"privateKey"`
}

// CallContractRequest is the body of POST /api/contracts/call
type CallContractRequest struct {
	ContractAddress string        `json:"contractAddress"`
	Method          string        `json:"method"`
	Params          []interface{} `json:"params"`
	Caller          string        `json:"caller"`
	PrivateKey      string        `json:"privateKey"`
}

// StartMiningRequest is the body of POST /api/mining/start
type StartMiningRequest struct {
	MinerAddress string `json:"minerAddress"`
}

// StakeRequest is the body of the stake and unstake endpoints
type StakeRequest struct {
	Address    string  `json:"address"`
	Amount     float64 `json:"amount"`
	PrivateKey string  `json:"privateKey"`
}

// ClaimRewardsRequest is the body of POST /api/staking/claim
type ClaimRewardsRequest struct {
	Address    string `json:"address"`
	PrivateKey string `json:"privateKey"`
}

// TransferNFTRequest is the body of POST /api/nft/transfer
type TransferNFTRequest struct {
	TokenID    uint64 `json:"tokenId"`
	From       string `json:"from"`
	To         string `json:"to"`
	PrivateKey string `json:"privateKey"`
}

// VoteRequest is the body of POST /api/governance/vote
type VoteRequest struct {
	ProposalID uint64 `json:"proposalId"`
	Vote       bool   `json:"vote"`
	Voter      string `json:"voter"`
	PrivateKey string `json:"privateKey"`
}

// balanceResponse is the typed view of GET /api/wallets/balance/{address}
type balanceResponse struct {
	Balance *float64 `json:"balance"`
}
