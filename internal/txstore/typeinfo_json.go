package txstore

import (
	"encoding/json"
	"fmt"
)

// typeInfoEnvelope is the persisted wire form of a TypeInfo variant: the
// discriminator alongside the variant's own fields.
type typeInfoEnvelope struct {
	Type TransactionType `json:"type"`
	Info json.RawMessage `json:"info"`
}

// marshalTypeInfo encodes a TypeInfo variant into its tagged envelope form.
func marshalTypeInfo(info TypeInfo) (json.RawMessage, error) {
	body, err := json.Marshal(info)
	if err != nil {
		return nil, err
	}

	return json.Marshal(typeInfoEnvelope{
		Type: info.Type(),
		Info: body,
	})
}

// unmarshalTypeInfo decodes a tagged envelope back into the concrete variant
// named by its discriminator. Unrecognized discriminators fail: persisted
// state is internally produced, so an unknown tag indicates corruption or a
// version mismatch rather than untrusted input.
func unmarshalTypeInfo(data json.RawMessage) (TypeInfo, error) {
	var envelope typeInfoEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, err
	}

	var info TypeInfo
	switch envelope.Type {
	case TypeApprove:
		info = new(ApproveInfo)
	case TypeSend:
		info = new(SendInfo)
	case TypeReceive:
		info = new(ReceiveInfo)
	case TypeSwap:
		info = new(SwapInfo)
	case TypeWrap:
		info = new(WrapInfo)
	case TypeBridge:
		info = new(BridgeInfo)
	case TypeNFTMint:
		info = new(NFTMintInfo)
	case TypeNFTTrade:
		info = new(NFTTradeInfo)
	case TypeNFTApprove:
		info = new(NFTApproveInfo)
	case TypeLiquidityIncrease:
		info = new(LiquidityIncreaseInfo)
	case TypeLiquidityDecrease:
		info = new(LiquidityDecreaseInfo)
	case TypeCreatePool:
		info = new(CreatePoolInfo)
	case TypeCollectFees:
		info = new(CollectFeesInfo)
	case TypeFiatPurchase:
		info = new(FiatPurchaseInfo)
	case TypeFiatTransfer:
		info = new(FiatTransferInfo)
	case TypeWCConfirm:
		info = new(WCConfirmInfo)
	case TypeUnknown:
		info = new(UnknownInfo)
	default:
		return nil, fmt.Errorf("unknown transaction type %q", envelope.Type)
	}

	if err := json.Unmarshal(envelope.Info, info); err != nil {
		return nil, err
	}

	return info, nil
}
