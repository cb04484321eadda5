package activity

import "github.com/gabapcia/txledger/internal/txstore"

// ParseSwap normalizes a swap record into a SwapInfo, or an NFTTradeInfo when
// one side of the trade is an NFT. It returns nil when either direction is
// missing.
//
// A single logical swap may be split across several pool hops, producing
// multiple transfers with the same direction and asset. Those legs are summed
// into one amount per side. Transfers sharing a direction but moving a
// different asset than the first-seen one are ignored: all legs of one
// logical side are assumed to move the same asset, an upstream convention
// rather than an on-chain guarantee.
//
// Order-routed swaps (filled off-chain by a third party) reuse this exact
// amount extraction; only the routing classification recorded on the
// transaction differs.
func ParseSwap(raw RawTransaction) txstore.TypeInfo {
	sends, receives := raw.transfersByDirection()
	if len(sends) == 0 || len(receives) == 0 {
		return nil
	}

	if trade := parseNFTTrade(sends, receives); trade != nil {
		return trade
	}

	var (
		input, inputOK   = aggregateLeg(sends)
		output, outputOK = aggregateLeg(receives)
	)
	if !inputOK || !outputOK {
		return nil
	}

	return &txstore.SwapInfo{
		InputCurrencyID:         input.currencyID,
		OutputCurrencyID:        output.currencyID,
		InputCurrencyAmountRaw:  input.amountRaw,
		OutputCurrencyAmountRaw: output.amountRaw,
	}
}

// ParseWrap normalizes a wrap or unwrap of the native asset into a WrapInfo.
// It requires one send and one receive with the native asset on exactly one
// side; anything else returns nil.
func ParseWrap(raw RawTransaction) txstore.TypeInfo {
	sends, receives := raw.transfersByDirection()
	if len(sends) == 0 || len(receives) == 0 {
		return nil
	}

	var (
		sendNative    = IsNative(sends[0].Asset.Address)
		receiveNative = IsNative(receives[0].Asset.Address)
	)
	if sendNative == receiveNative {
		return nil
	}

	return &txstore.WrapInfo{
		// Receiving the native asset back means the wrapped token was burned.
		Unwrapped:         receiveNative,
		CurrencyAmountRaw: rawAmount(sends[0]),
	}
}

// leg is one aggregated side of a swap.
type leg struct {
	currencyID string
	amountRaw  string
}

// aggregateLeg sums the raw amounts of every transfer moving the same asset
// as the first transfer in the slice.
func aggregateLeg(transfers []Transfer) (leg, bool) {
	if len(transfers) == 0 {
		return leg{}, false
	}

	currencyID := assetCurrencyID(transfers[0].Asset)

	amounts := make([]string, 0, len(transfers))
	for _, transfer := range transfers {
		if assetCurrencyID(transfer.Asset) != currencyID {
			continue
		}
		amounts = append(amounts, rawAmount(transfer))
	}

	return leg{
		currencyID: currencyID,
		amountRaw:  sumRawAmounts(amounts),
	}, true
}
