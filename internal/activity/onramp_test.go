package activity

import (
	"testing"

	"github.com/gabapcia/txledger/internal/txstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOnRamp(t *testing.T) {
	t.Run("fiat source is a purchase", func(t *testing.T) {
		// Setup
		raw := RawTransaction{
			Label:   LabelOnRamp,
			ChainID: 1,
			Transfers: []Transfer{
				{Direction: DirectionReceive, Asset: usdcAsset(), AmountRaw: "100000000"},
			},
			OnRamp: &OnRampDetails{
				SourceCurrency:  "USD",
				SourceAmount:    "100.00",
				Provider:        "RampCo",
				ProviderLogoURL: "https://ramp.example/logo.png",
			},
		}

		// Execute
		info := ParseOnRamp(raw)

		// Assert
		require.IsType(t, &txstore.FiatPurchaseInfo{}, info)
		purchase := info.(*txstore.FiatPurchaseInfo)
		assert.Equal(t, "1-"+usdcAddress, purchase.DestinationCurrencyID)
		assert.Equal(t, "100000000", purchase.DestinationAmountRaw)
		assert.Equal(t, "USD", purchase.SourceCurrency)
		assert.Equal(t, "100.00", purchase.SourceAmount)
		require.NotNil(t, purchase.Provider)
		assert.Equal(t, "RampCo", purchase.Provider.Name)
	})

	t.Run("source matching the destination symbol is a transfer", func(t *testing.T) {
		// Setup
		raw := RawTransaction{
			Label:   LabelOnRamp,
			ChainID: 1,
			Transfers: []Transfer{
				{Direction: DirectionReceive, Asset: usdcAsset(), AmountRaw: "100000000"},
			},
			OnRamp: &OnRampDetails{SourceCurrency: "USDC", SourceAmount: "100"},
		}

		// Execute
		info := ParseOnRamp(raw)

		// Assert
		require.IsType(t, &txstore.FiatTransferInfo{}, info)
		transfer := info.(*txstore.FiatTransferInfo)
		assert.Equal(t, "USDC", transfer.SourceCurrency)
		assert.Nil(t, transfer.Provider)
	})

	t.Run("missing on-ramp details returns nil", func(t *testing.T) {
		raw := RawTransaction{
			Label:     LabelOnRamp,
			Transfers: []Transfer{{Direction: DirectionReceive, Asset: usdcAsset(), AmountRaw: "1"}},
		}
		assert.Nil(t, ParseOnRamp(raw))
	})

	t.Run("missing destination transfer returns nil", func(t *testing.T) {
		raw := RawTransaction{
			Label:  LabelOnRamp,
			OnRamp: &OnRampDetails{SourceCurrency: "USD"},
		}
		assert.Nil(t, ParseOnRamp(raw))
	})
}
