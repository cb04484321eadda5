package activity

import (
	"testing"

	"github.com/gabapcia/txledger/internal/txstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSend(t *testing.T) {
	t.Run("successful parse", func(t *testing.T) {
		// Setup
		raw := RawTransaction{
			Label:   LabelSend,
			ChainID: 1,
			Transfers: []Transfer{
				{Direction: DirectionSend, Asset: daiAsset(), AmountRaw: "1000000000000000000", Recipient: "0xrecipient"},
			},
		}

		// Execute
		info := ParseSend(raw)

		// Assert
		require.IsType(t, &txstore.SendInfo{}, info)
		send := info.(*txstore.SendInfo)
		assert.Equal(t, "1-"+daiAddress, send.CurrencyID)
		assert.Equal(t, "1000000000000000000", send.AmountRaw)
		assert.Equal(t, "0xrecipient", send.Recipient)
		assert.False(t, send.IsSpam)
	})

	t.Run("spam classification passes through", func(t *testing.T) {
		// Setup
		spam := daiAsset()
		spam.SpamCode = 2

		raw := RawTransaction{
			Label:   LabelSend,
			ChainID: 1,
			Transfers: []Transfer{
				{Direction: DirectionSend, Asset: spam, AmountRaw: "1"},
			},
		}

		// Execute
		info := ParseSend(raw)

		// Assert
		require.IsType(t, &txstore.SendInfo{}, info)
		assert.True(t, info.(*txstore.SendInfo).IsSpam)
	})

	t.Run("no send transfer returns nil", func(t *testing.T) {
		raw := RawTransaction{
			Label:     LabelSend,
			Transfers: []Transfer{{Direction: DirectionReceive, Asset: daiAsset(), AmountRaw: "1"}},
		}
		assert.Nil(t, ParseSend(raw))
	})
}

func TestParseReceive(t *testing.T) {
	t.Run("successful parse keeps the exact raw amount", func(t *testing.T) {
		// Setup
		raw := RawTransaction{
			Label:   LabelReceive,
			ChainID: 1,
			Transfers: []Transfer{
				{Direction: DirectionReceive, Asset: daiAsset(), AmountRaw: "10942066284405611153912", Sender: "0xsender"},
			},
		}

		// Execute
		info := ParseReceive(raw)

		// Assert
		require.IsType(t, &txstore.ReceiveInfo{}, info)
		receive := info.(*txstore.ReceiveInfo)
		assert.Equal(t, "1-"+daiAddress, receive.CurrencyID)
		assert.Equal(t, "10942066284405611153912", receive.AmountRaw)
		assert.Equal(t, "0xsender", receive.Sender)
	})

	t.Run("native asset normalizes to the sentinel address", func(t *testing.T) {
		// Setup
		raw := RawTransaction{
			Label:   LabelReceive,
			ChainID: 1,
			Transfers: []Transfer{
				{Direction: DirectionReceive, Asset: Asset{ChainID: 1, Address: "", Decimals: 18}, Quantity: "1.5"},
			},
		}

		// Execute
		info := ParseReceive(raw)

		// Assert
		require.IsType(t, &txstore.ReceiveInfo{}, info)
		receive := info.(*txstore.ReceiveInfo)
		assert.Equal(t, "1-"+NativeAddress, receive.CurrencyID)
		assert.Equal(t, "1500000000000000000", receive.AmountRaw)
	})

	t.Run("no receive transfer returns nil", func(t *testing.T) {
		assert.Nil(t, ParseReceive(RawTransaction{Label: LabelReceive}))
	})
}

func TestParseApprove(t *testing.T) {
	t.Run("fungible approval", func(t *testing.T) {
		// Setup
		raw := RawTransaction{
			Label:   LabelApprove,
			ChainID: 1,
			Approvals: []Approval{
				{Asset: daiAsset(), Spender: "0xspender", AmountRaw: "115792089237316195423570985008687907853269984665640564039457584007913129639935"},
			},
		}

		// Execute
		info := ParseApprove(raw)

		// Assert
		require.IsType(t, &txstore.ApproveInfo{}, info)
		approve := info.(*txstore.ApproveInfo)
		assert.Equal(t, daiAddress, approve.TokenAddress)
		assert.Equal(t, "0xspender", approve.Spender)
		assert.NotEmpty(t, approve.ApprovalAmountRaw)
	})

	t.Run("NFT operator approval", func(t *testing.T) {
		// Setup
		raw := RawTransaction{
			Label:   LabelApprove,
			ChainID: 1,
			Approvals: []Approval{
				{Asset: Asset{ChainID: 1, Address: "0xnft", IsNFT: true, TokenID: "7", CollectionName: "Punks"}, Spender: "0xmarket"},
			},
		}

		// Execute
		info := ParseApprove(raw)

		// Assert
		require.IsType(t, &txstore.NFTApproveInfo{}, info)
		approve := info.(*txstore.NFTApproveInfo)
		assert.Equal(t, "0xmarket", approve.Spender)
		assert.Equal(t, "7", approve.NFT.TokenID)
		assert.Equal(t, "Punks", approve.NFT.CollectionName)
	})

	t.Run("no approvals returns nil", func(t *testing.T) {
		assert.Nil(t, ParseApprove(RawTransaction{Label: LabelApprove}))
	})
}
