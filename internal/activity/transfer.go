package activity

import "github.com/gabapcia/txledger/internal/txstore"

// ParseSend normalizes an outgoing transfer into a SendInfo. It returns nil
// when the record has no send-direction transfer.
//
// The spam flag is the feed's own classification of the transferred asset,
// passed through unchanged.
func ParseSend(raw RawTransaction) txstore.TypeInfo {
	sends, _ := raw.transfersByDirection()
	if len(sends) == 0 {
		return nil
	}

	transfer := sends[0]
	return &txstore.SendInfo{
		CurrencyID: assetCurrencyID(transfer.Asset),
		AmountRaw:  rawAmount(transfer),
		Recipient:  transfer.Recipient,
		IsSpam:     transfer.Asset.IsSpam(),
	}
}

// ParseReceive normalizes an incoming transfer into a ReceiveInfo. It returns
// nil when the record has no receive-direction transfer.
func ParseReceive(raw RawTransaction) txstore.TypeInfo {
	_, receives := raw.transfersByDirection()
	if len(receives) == 0 {
		return nil
	}

	transfer := receives[0]
	return &txstore.ReceiveInfo{
		CurrencyID: assetCurrencyID(transfer.Asset),
		AmountRaw:  rawAmount(transfer),
		Sender:     transfer.Sender,
		IsSpam:     transfer.Asset.IsSpam(),
	}
}
