package api

import (
	"errors"
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidAddress(t *testing.T) {
	valid := []string{
		"0x1234567890abcdef1234567890abcdef12345678",
		"0xABCDEFABCDEFABCDEFABCDEFABCDEFABCDEFABCD",
		"0xAbCdEf0123456789aBcDeF0123456789AbCdEf01",
	}
	for _, addr := range valid {
		assert.True(t, IsValidAddress(addr), addr)
	}

	invalid := []string{
		"invalid",
		"",
		"0x",
		"1234567890abcdef1234567890abcdef12345678",
		"0x1234567890abcdef1234567890abcdef1234567",
		"0x1234567890abcdef1234567890abcdef123456789",
		"0X1234567890abcdef1234567890abcdef12345678",
		"0x1234567890abcdef1234567890abcdef1234567g",
		" 0x1234567890abcdef1234567890abcdef12345678",
		"0x1234567890abcdef1234567890abcdef12345678\n",
	}
	for _, addr := range invalid {
		assert.False(t, IsValidAddress(addr), addr)
	}
}

func TestChecksumAddress(t *testing.T) {
	got, err := ChecksumAddress("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed")
	require.NoError(t, err)
	assert.Equal(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", got)

	_, err = ChecksumAddress("5aaeb6053f3e94c9b9a09f33669435e7ef1beaed")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidAddress))
	assert.True(t, IsKind(err, KindInvalidAddress))
	assert.EqualError(t, err, "invalid address format")
}

func TestWeiConversion(t *testing.T) {
	oneToken := new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

	assert.Equal(t, 0, ToWei(1.0).Cmp(oneToken))
	assert.Equal(t, int64(1_000_000_000_000_000_000), ToWei(1.0).Int64())
	assert.Equal(t, 1.0, FromWei(oneToken))
	assert.Equal(t, 1.0, FromWei(big.NewInt(1_000_000_000_000_000_000)))
}

func TestWeiRoundTrip(t *testing.T) {
	assert.Equal(t, 0.0, FromWei(ToWei(0)))

	for _, amount := range []float64{1, 0.000001, 123456.789, 2.5, -3.75} {
		assert.InEpsilon(t, amount, FromWei(ToWei(amount)), 1e-9, "amount %v", amount)
	}
}

func TestToWeiTruncates(t *testing.T) {
	// 1.5e-18 tokens is 1.5 wei
	assert.Equal(t, int64(1), ToWei(1.5e-18).Int64())
	assert.Equal(t, int64(-1), ToWei(-1.5e-18).Int64())
}

func TestToWeiNonFinite(t *testing.T) {
	assert.Equal(t, int64(0), ToWei(math.Inf(1)).Int64())
	assert.Equal(t, int64(0), ToWei(math.Inf(-1)).Int64())
	assert.Equal(t, int64(0), ToWei(math.NaN()).Int64())
}

func TestFromWeiNil(t *testing.T) {
	assert.Equal(t, 0.0, FromWei(nil))
}

func TestFormatWei(t *testing.T) {
	assert.Equal(t, "1", FormatWei(ToWei(1)))
	assert.Equal(t, "0.000000000000000001", FormatWei(big.NewInt(1)))
	assert.Equal(t, "2.5", FormatWei(big.NewInt(2_500_000_000_000_000_000)))
	assert.Equal(t, "0", FormatWei(nil))
}

func TestBuildTransaction(t *testing.T) {
	before := time.Now().UnixMilli()
	draft := BuildTransaction("0xa", "0xb", 3.5)
	after := time.Now().UnixMilli()

	assert.Equal(t, "0xa", draft.FromAddress)
	assert.Equal(t, "0xb", draft.ToAddress)
	assert.Equal(t, 3.5, draft.Amount)
	assert.GreaterOrEqual(t, draft.Timestamp, before)
	assert.LessOrEqual(t, draft.Timestamp, after)
}
