package activity

import (
	"testing"

	"github.com/gabapcia/txledger/internal/txstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBridge(t *testing.T) {
	t.Run("legs on different chains produce both currency ids", func(t *testing.T) {
		// Setup
		raw := RawTransaction{
			Label:   LabelBridge,
			ChainID: 1,
			Transfers: []Transfer{
				{Direction: DirectionSend, Asset: daiAsset(), AmountRaw: "5000000000000000000"},
				{Direction: DirectionReceive, Asset: Asset{ChainID: 42161, Address: daiAddress, Symbol: "DAI", Decimals: 18}, AmountRaw: "4990000000000000000"},
			},
		}

		// Execute
		info := ParseBridge(raw)

		// Assert
		require.IsType(t, &txstore.BridgeInfo{}, info)
		bridge := info.(*txstore.BridgeInfo)
		assert.Equal(t, "1-"+daiAddress, bridge.InputCurrencyID)
		assert.Equal(t, "42161-"+daiAddress, bridge.OutputCurrencyID)
		assert.Equal(t, "5000000000000000000", bridge.InputCurrencyAmountRaw)
		assert.Equal(t, "4990000000000000000", bridge.OutputCurrencyAmountRaw)
		assert.False(t, bridge.DepositConfirmed)
	})

	t.Run("legs on the same chain return nil", func(t *testing.T) {
		raw := RawTransaction{
			Label: LabelBridge,
			Transfers: []Transfer{
				{Direction: DirectionSend, Asset: daiAsset(), AmountRaw: "1"},
				{Direction: DirectionReceive, Asset: usdcAsset(), AmountRaw: "1"},
			},
		}
		assert.Nil(t, ParseBridge(raw))
	})

	t.Run("missing either leg returns nil", func(t *testing.T) {
		onlySend := RawTransaction{
			Label:     LabelBridge,
			Transfers: []Transfer{{Direction: DirectionSend, Asset: daiAsset(), AmountRaw: "1"}},
		}
		assert.Nil(t, ParseBridge(onlySend))

		assert.Nil(t, ParseBridge(RawTransaction{Label: LabelBridge}))
	})
}
