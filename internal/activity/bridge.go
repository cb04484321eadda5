package activity

import "github.com/gabapcia/txledger/internal/txstore"

// ParseBridge normalizes a cross-chain transfer into a BridgeInfo.
//
// A bridge record needs one send transfer on the source chain and one receive
// transfer whose asset metadata names a different chain; the resulting input
// and output currency ids may differ in both their address and chain
// components. Records missing either leg, or whose legs sit on the same
// chain, return nil.
func ParseBridge(raw RawTransaction) txstore.TypeInfo {
	sends, receives := raw.transfersByDirection()
	if len(sends) == 0 || len(receives) == 0 {
		return nil
	}

	var (
		send    = sends[0]
		receive = receives[0]
	)
	if send.Asset.ChainID == receive.Asset.ChainID {
		return nil
	}

	return &txstore.BridgeInfo{
		InputCurrencyID:         assetCurrencyID(send.Asset),
		OutputCurrencyID:        assetCurrencyID(receive.Asset),
		InputCurrencyAmountRaw:  rawAmount(send),
		OutputCurrencyAmountRaw: rawAmount(receive),
	}
}
