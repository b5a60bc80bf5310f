package sdk

import (
	"math/big"

	"github.com/shopspring/decimal"
)

const solDecimals = 9

// LamportsToSOL converts lamports to SOL without losing precision.
func LamportsToSOL(lamports uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(lamports), -solDecimals)
}
