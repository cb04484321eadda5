package txstore

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionDetailsJSON(t *testing.T) {
	t.Run("round trips with concrete type info", func(t *testing.T) {
		// Setup
		original := TransactionDetails{
			ID:      "0xtx1",
			ChainID: 1,
			From:    "0xwallet",
			Status:  StatusSuccess,
			Hash:    "0xtx1",
			Routing: RoutingBridge,
			Origin:  OriginExternal,
			TypeInfo: &BridgeInfo{
				InputCurrencyID:         "1-0x6B175474E89094C44Da98b954EedeAC495271d0F",
				OutputCurrencyID:        "42161-0x6B175474E89094C44Da98b954EedeAC495271d0F",
				InputCurrencyAmountRaw:  "1000000000000000000",
				OutputCurrencyAmountRaw: "1000000000000000000",
				DepositConfirmed:        true,
			},
			Receipt: &TransactionReceipt{BlockNumber: 123, ConfirmedTime: 99},
		}

		// Execute
		data, err := json.Marshal(original)
		require.NoError(t, err)

		var decoded TransactionDetails
		require.NoError(t, json.Unmarshal(data, &decoded))

		// Assert
		assert.Equal(t, original, decoded)
	})

	t.Run("round trips single sided pool amounts", func(t *testing.T) {
		// Setup
		original := TransactionDetails{
			ID:      "0xtx2",
			ChainID: 1,
			From:    "0xwallet",
			Status:  StatusPending,
			TypeInfo: &CollectFeesInfo{PoolAmounts: PoolAmounts{
				Currency0ID:        "1-0x6B175474E89094C44Da98b954EedeAC495271d0F",
				Currency0AmountRaw: "100000000000000000",
			}},
		}

		// Execute
		data, err := json.Marshal(original)
		require.NoError(t, err)

		var decoded TransactionDetails
		require.NoError(t, json.Unmarshal(data, &decoded))

		// Assert
		require.IsType(t, &CollectFeesInfo{}, decoded.TypeInfo)
		fees := decoded.TypeInfo.(*CollectFeesInfo)
		assert.Equal(t, "100000000000000000", fees.Currency0AmountRaw)
		assert.Nil(t, fees.Currency1ID)
		assert.Nil(t, fees.Currency1AmountRaw)
	})

	t.Run("unknown type tag fails to decode", func(t *testing.T) {
		// Setup
		payload := []byte(`{"id":"0xtx3","chainId":1,"from":"0xwallet","status":"pending","typeInfo":{"type":"not-a-kind","info":{}}}`)

		// Execute
		var decoded TransactionDetails
		err := json.Unmarshal(payload, &decoded)

		// Assert
		require.Error(t, err)
	})
}

func TestNewBatchID(t *testing.T) {
	t.Run("mints unique ids", func(t *testing.T) {
		assert.NotEqual(t, NewBatchID(), NewBatchID())
	})
}
