package activity

import "github.com/gabapcia/txledger/internal/txstore"

// ParseOnRamp normalizes a fiat on-ramp record. It requires the record's
// on-ramp details plus one receive transfer carrying the destination token;
// otherwise it returns nil.
//
// Purchase versus transfer is decided solely by comparing the fiat source
// currency code against the destination token's symbol: a match means the
// "ramp" merely moved an existing crypto balance (e.g. USDC in, USDC out)
// rather than converting fiat. This string equality is a convention of the
// upstream provider API, preserved as-is; it would misclassify a token whose
// symbol collides with a fiat code.
func ParseOnRamp(raw RawTransaction) txstore.TypeInfo {
	if raw.OnRamp == nil {
		return nil
	}

	_, receives := raw.transfersByDirection()
	if len(receives) == 0 {
		return nil
	}

	destination := receives[0]

	var provider *txstore.OnRampProvider
	if raw.OnRamp.Provider != "" {
		provider = &txstore.OnRampProvider{
			Name:    raw.OnRamp.Provider,
			LogoURL: raw.OnRamp.ProviderLogoURL,
		}
	}

	if raw.OnRamp.SourceCurrency == destination.Asset.Symbol {
		return &txstore.FiatTransferInfo{
			DestinationCurrencyID: assetCurrencyID(destination.Asset),
			DestinationAmountRaw:  rawAmount(destination),
			SourceCurrency:        raw.OnRamp.SourceCurrency,
			SourceAmount:          raw.OnRamp.SourceAmount,
			Provider:              provider,
		}
	}

	return &txstore.FiatPurchaseInfo{
		DestinationCurrencyID: assetCurrencyID(destination.Asset),
		DestinationAmountRaw:  rawAmount(destination),
		SourceCurrency:        raw.OnRamp.SourceCurrency,
		SourceAmount:          raw.OnRamp.SourceAmount,
		Provider:              provider,
	}
}
