package activity

import "github.com/gabapcia/txledger/internal/txstore"

// ParseLiquidity normalizes a liquidity-change record, dispatching on the
// label: INCREASE_LIQUIDITY, DECREASE_LIQUIDITY, CREATE_POOL, and CLAIM map
// to distinct result types. Any other label, or a record without transfers,
// returns nil.
//
// Amounts are taken positionally: the first transfer is currency0 and the
// second, when present, currency1. A single-transfer claim leaves the
// currency1 side absent rather than zero; collecting fees accrued in one
// token is a one-sided operation, and absence is distinct from a zero
// amount.
func ParseLiquidity(raw RawTransaction) txstore.TypeInfo {
	if len(raw.Transfers) == 0 {
		return nil
	}

	amounts := poolAmounts(raw.Transfers)

	switch raw.Label {
	case LabelIncreaseLiquidity:
		return &txstore.LiquidityIncreaseInfo{PoolAmounts: amounts}
	case LabelDecreaseLiquidity:
		return &txstore.LiquidityDecreaseInfo{PoolAmounts: amounts}
	case LabelCreatePool:
		return &txstore.CreatePoolInfo{PoolAmounts: amounts}
	case LabelClaim:
		return &txstore.CollectFeesInfo{PoolAmounts: amounts}
	default:
		return nil
	}
}

// poolAmounts maps up to two transfers onto the positional currency0 and
// currency1 slots.
func poolAmounts(transfers []Transfer) txstore.PoolAmounts {
	amounts := txstore.PoolAmounts{
		Currency0ID:        assetCurrencyID(transfers[0].Asset),
		Currency0AmountRaw: rawAmount(transfers[0]),
	}

	if len(transfers) > 1 {
		var (
			currency1ID        = assetCurrencyID(transfers[1].Asset)
			currency1AmountRaw = rawAmount(transfers[1])
		)
		amounts.Currency1ID = &currency1ID
		amounts.Currency1AmountRaw = &currency1AmountRaw
	}

	return amounts
}
