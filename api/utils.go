package api

import (
	"context"
	"math"
	"math/big"
	"regexp"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// weiPerToken is 10^18, the number of wei in one token
var weiPerToken = new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))

var addressPattern = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)

// HealthCheck queries the node health endpoint
func (c *Client) HealthCheck(ctx context.Context) (Value, error) {
	return c.get(ctx, "/health")
}

// GetAPIVersion fetches the API root, which describes the server version
func (c *Client) GetAPIVersion(ctx context.Context) (Value, error) {
	return c.get(ctx, "/api")
}

// IsValidAddress reports whether address is 0x followed by 40 hex digits
func IsValidAddress(address string) bool {
	return addressPattern.MatchString(address)
}

// ChecksumAddress returns the EIP-55 mixed-case form of address
func ChecksumAddress(address string) (string, error) {
	if !IsValidAddress(address) {
		return "", ErrInvalidAddress
	}
	return common.HexToAddress(address).Hex(), nil
}

// ToWei converts a token amount to wei, truncating toward zero.
// The multiplication runs at float64 precision, so large or very precise
// amounts are not exact. NaN and infinities convert to 0.
func ToWei(amount float64) *big.Int {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return new(big.Int)
	}

	wei := new(big.Float).SetFloat64(amount)
	wei.Mul(wei, weiPerToken)

	result, _ := wei.Int(nil)
	return result
}

// FromWei converts wei to a token amount at float64 precision
func FromWei(wei *big.Int) float64 {
	if wei == nil {
		return 0
	}

	ether := new(big.Float).SetInt(wei)
	ether.Quo(ether, weiPerToken)

	result, _ := ether.Float64()
	return result
}

// FormatWei renders wei as an exact decimal token amount
func FormatWei(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	return decimal.NewFromBigInt(wei, -18).String()
}

// BuildTransaction describes a transfer without sending it
func BuildTransaction(from, to string, amount float64) TransactionDraft {
	return TransactionDraft{
		FromAddress: from,
		ToAddress:   to,
		Amount:      amount,
		Timestamp:   time.Now().UnixMilli(),
	}
}
