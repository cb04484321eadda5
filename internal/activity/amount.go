package activity

import (
	"github.com/shopspring/decimal"
)

// rawAmount resolves a transfer's base-unit amount: the wire raw amount when
// present, otherwise the display quantity shifted by the asset's decimals.
// Unparsable amounts resolve to "0" so parsing stays total and deterministic.
func rawAmount(t Transfer) string {
	if t.AmountRaw != "" {
		value, err := decimal.NewFromString(t.AmountRaw)
		if err != nil {
			return "0"
		}
		return value.String()
	}

	if t.Quantity == "" {
		return "0"
	}

	quantity, err := decimal.NewFromString(t.Quantity)
	if err != nil {
		return "0"
	}

	return quantity.Shift(int32(t.Asset.Decimals)).String()
}

// sumRawAmounts adds base-unit amount strings, skipping unparsable entries.
func sumRawAmounts(amounts []string) string {
	total := decimal.Zero
	for _, amount := range amounts {
		value, err := decimal.NewFromString(amount)
		if err != nil {
			continue
		}
		total = total.Add(value)
	}
	return total.String()
}
