package api

// STRAT API Client-
//
// Files:
//   config.go       - Default endpoint, timeout and the Config struct
//   errors.go       - Error kinds returned by every call
//   types.go        - Request bodies and the few typed responses
//   base.go         - Core client functionality (Client, NewClient, Request)
//   blockchain.go   - Blocks and chain info
//   transactions.go - Send, lookup and history of transactions
//   wallet.go       - Registration, balances, wallet info and UTXOs
//   contracts.go    - Deploy, call and inspect smart contracts
//   mining.go       - Mining control and mempool queries
//   staking.go      - Stake, unstake and reward claims
//   nft.go          - Mint, transfer and list NFTs
//   governance.go   - Proposals and votes
//   explorer.go     - Address search, rich list and network stats
//   batch.go        - Concurrent fan-out of independent requests
//   utils.go        - Health, API version and network-free helpers
//
// Usage:
//   client := api.NewClient(api.DefaultConfig())
//   info, err := client.GetBlockchainInfo(ctx)
//   balance, err := client.GetBalance(ctx, address)
//   ok := api.IsValidAddress(address)
