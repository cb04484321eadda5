package txstore

// TransactionType discriminates the closed set of transaction kinds tracked
// by the store. Every TypeInfo variant reports exactly one of these values.
type TransactionType string

const (
	TypeApprove           TransactionType = "approve"
	TypeSend              TransactionType = "send"
	TypeReceive           TransactionType = "receive"
	TypeSwap              TransactionType = "swap"
	TypeWrap              TransactionType = "wrap"
	TypeBridge            TransactionType = "bridge"
	TypeNFTMint           TransactionType = "nft-mint"
	TypeNFTTrade          TransactionType = "nft-trade"
	TypeNFTApprove        TransactionType = "nft-approve"
	TypeLiquidityIncrease TransactionType = "liquidity-increase"
	TypeLiquidityDecrease TransactionType = "liquidity-decrease"
	TypeCreatePool        TransactionType = "create-pool"
	TypeCollectFees       TransactionType = "collect-fees"
	TypeFiatPurchase      TransactionType = "fiat-purchase"
	TypeFiatTransfer      TransactionType = "fiat-transfer"
	TypeWCConfirm         TransactionType = "wc-confirm"
	TypeUnknown           TransactionType = "unknown"
)

// TypeInfo is the sealed union of kind-specific transaction payloads.
//
// Variants are defined in this package only: the unexported marker method
// keeps the set closed, so a switch over concrete types together with the
// Type discriminator is exhaustive. External packages construct variants
// directly but cannot add new ones.
type TypeInfo interface {
	// Type returns the discriminator for this variant.
	Type() TransactionType

	typeInfo()
}

// ApproveInfo describes an ERC-20 allowance grant.
type ApproveInfo struct {
	TokenAddress      string `json:"tokenAddress"`
	Spender           string `json:"spender"`
	ApprovalAmountRaw string `json:"approvalAmountRaw,omitempty"`
}

// SendInfo describes an outgoing fungible-asset transfer.
type SendInfo struct {
	CurrencyID string `json:"currencyId"`
	AmountRaw  string `json:"amountRaw"`
	Recipient  string `json:"recipient"`
	IsSpam     bool   `json:"isSpam,omitempty"`
}

// ReceiveInfo describes an incoming fungible-asset transfer.
type ReceiveInfo struct {
	CurrencyID string `json:"currencyId"`
	AmountRaw  string `json:"amountRaw"`
	Sender     string `json:"sender"`
	IsSpam     bool   `json:"isSpam,omitempty"`
}

// SwapInfo describes a token swap. Amounts are raw base-unit strings; when a
// logical swap is split across several pool hops the legs sharing a direction
// and asset are already summed.
type SwapInfo struct {
	InputCurrencyID         string `json:"inputCurrencyId"`
	OutputCurrencyID        string `json:"outputCurrencyId"`
	InputCurrencyAmountRaw  string `json:"inputCurrencyAmountRaw"`
	OutputCurrencyAmountRaw string `json:"outputCurrencyAmountRaw"`
}

// WrapInfo describes wrapping the native asset into its canonical wrapped
// token, or the reverse when Unwrapped is set.
type WrapInfo struct {
	Unwrapped         bool   `json:"unwrapped"`
	CurrencyAmountRaw string `json:"currencyAmountRaw"`
}

// BridgeInfo describes a cross-chain transfer. Input and output currency ids
// may differ in both the address and the chain component.
type BridgeInfo struct {
	InputCurrencyID         string `json:"inputCurrencyId"`
	OutputCurrencyID        string `json:"outputCurrencyId"`
	InputCurrencyAmountRaw  string `json:"inputCurrencyAmountRaw"`
	OutputCurrencyAmountRaw string `json:"outputCurrencyAmountRaw"`
	DepositConfirmed        bool   `json:"depositConfirmed,omitempty"`
}

// NFTSummary carries the display metadata of a single NFT involved in a
// transaction.
type NFTSummary struct {
	Name            string `json:"name,omitempty"`
	CollectionName  string `json:"collectionName,omitempty"`
	ImageURL        string `json:"imageUrl,omitempty"`
	TokenID         string `json:"tokenId"`
	ContractAddress string `json:"contractAddress"`
}

// NFTMintInfo describes minting an NFT, optionally paid for with a fungible
// asset.
type NFTMintInfo struct {
	NFT                NFTSummary `json:"nft"`
	PurchaseCurrencyID string     `json:"purchaseCurrencyId,omitempty"`
	PurchaseAmountRaw  string     `json:"purchaseAmountRaw,omitempty"`
	IsSpam             bool       `json:"isSpam,omitempty"`
}

// NFTTradeType distinguishes the two sides of an NFT trade.
type NFTTradeType string

const (
	NFTTradeBuy  NFTTradeType = "buy"
	NFTTradeSell NFTTradeType = "sell"
)

// NFTTradeInfo describes buying or selling an NFT against a fungible asset.
type NFTTradeInfo struct {
	NFT                NFTSummary   `json:"nft"`
	TradeType          NFTTradeType `json:"tradeType"`
	PurchaseCurrencyID string       `json:"purchaseCurrencyId"`
	PurchaseAmountRaw  string       `json:"purchaseAmountRaw"`
}

// NFTApproveInfo describes an NFT operator approval.
type NFTApproveInfo struct {
	NFT     NFTSummary `json:"nft"`
	Spender string     `json:"spender"`
}

// PoolAmounts holds the positional currency amounts of a liquidity change.
//
// Currency1ID and Currency1AmountRaw are pointers because a single-sided
// operation (e.g. collecting fees accrued in one token) legitimately has no
// second leg: absence is distinct from a zero amount.
type PoolAmounts struct {
	Currency0ID        string  `json:"currency0Id"`
	Currency1ID        *string `json:"currency1Id,omitempty"`
	Currency0AmountRaw string  `json:"currency0AmountRaw"`
	Currency1AmountRaw *string `json:"currency1AmountRaw,omitempty"`
}

// LiquidityIncreaseInfo describes adding liquidity to an existing position.
type LiquidityIncreaseInfo struct {
	PoolAmounts
}

// LiquidityDecreaseInfo describes removing liquidity from a position.
type LiquidityDecreaseInfo struct {
	PoolAmounts
}

// CreatePoolInfo describes seeding a brand-new pool.
type CreatePoolInfo struct {
	PoolAmounts
}

// CollectFeesInfo describes claiming fees accrued by a position.
type CollectFeesInfo struct {
	PoolAmounts
}

// OnRampProvider attributes a fiat on-ramp transaction to the service that
// executed it.
type OnRampProvider struct {
	Name    string `json:"name"`
	LogoURL string `json:"logoUrl,omitempty"`
}

// FiatPurchaseInfo describes crypto acquired with fiat through an on-ramp
// provider.
type FiatPurchaseInfo struct {
	DestinationCurrencyID string          `json:"destinationCurrencyId"`
	DestinationAmountRaw  string          `json:"destinationAmountRaw"`
	SourceCurrency        string          `json:"sourceCurrency"`
	SourceAmount          string          `json:"sourceAmount,omitempty"`
	Provider              *OnRampProvider `json:"provider,omitempty"`
}

// FiatTransferInfo describes a crypto-to-crypto movement routed through an
// on-ramp provider rather than a genuine fiat purchase.
type FiatTransferInfo struct {
	DestinationCurrencyID string          `json:"destinationCurrencyId"`
	DestinationAmountRaw  string          `json:"destinationAmountRaw"`
	SourceCurrency        string          `json:"sourceCurrency"`
	SourceAmount          string          `json:"sourceAmount,omitempty"`
	Provider              *OnRampProvider `json:"provider,omitempty"`
}

// WCConfirmInfo describes a transaction confirmed through a WalletConnect
// session.
type WCConfirmInfo struct {
	DAppName string `json:"dappName"`
	DAppURL  string `json:"dappUrl,omitempty"`
	ChainID  int    `json:"chainId"`
}

// UnknownInfo is the fallback for records whose label could not be
// classified. Upstream data is not fully trusted, so an unrecognized label
// degrades to this variant instead of failing.
type UnknownInfo struct {
	TokenAddress string `json:"tokenAddress,omitempty"`
}

func (*ApproveInfo) Type() TransactionType           { return TypeApprove }
func (*SendInfo) Type() TransactionType              { return TypeSend }
func (*ReceiveInfo) Type() TransactionType           { return TypeReceive }
func (*SwapInfo) Type() TransactionType              { return TypeSwap }
func (*WrapInfo) Type() TransactionType              { return TypeWrap }
func (*BridgeInfo) Type() TransactionType            { return TypeBridge }
func (*NFTMintInfo) Type() TransactionType           { return TypeNFTMint }
func (*NFTTradeInfo) Type() TransactionType          { return TypeNFTTrade }
func (*NFTApproveInfo) Type() TransactionType        { return TypeNFTApprove }
func (*LiquidityIncreaseInfo) Type() TransactionType { return TypeLiquidityIncrease }
func (*LiquidityDecreaseInfo) Type() TransactionType { return TypeLiquidityDecrease }
func (*CreatePoolInfo) Type() TransactionType        { return TypeCreatePool }
func (*CollectFeesInfo) Type() TransactionType       { return TypeCollectFees }
func (*FiatPurchaseInfo) Type() TransactionType      { return TypeFiatPurchase }
func (*FiatTransferInfo) Type() TransactionType      { return TypeFiatTransfer }
func (*WCConfirmInfo) Type() TransactionType         { return TypeWCConfirm }
func (*UnknownInfo) Type() TransactionType           { return TypeUnknown }

func (*ApproveInfo) typeInfo()           {}
func (*SendInfo) typeInfo()              {}
func (*ReceiveInfo) typeInfo()           {}
func (*SwapInfo) typeInfo()              {}
func (*WrapInfo) typeInfo()              {}
func (*BridgeInfo) typeInfo()            {}
func (*NFTMintInfo) typeInfo()           {}
func (*NFTTradeInfo) typeInfo()          {}
func (*NFTApproveInfo) typeInfo()        {}
func (*LiquidityIncreaseInfo) typeInfo() {}
func (*LiquidityDecreaseInfo) typeInfo() {}
func (*CreatePoolInfo) typeInfo()        {}
func (*CollectFeesInfo) typeInfo()       {}
func (*FiatPurchaseInfo) typeInfo()      {}
func (*FiatTransferInfo) typeInfo()      {}
func (*WCConfirmInfo) typeInfo()         {}
func (*UnknownInfo) typeInfo()           {}

// cloneTypeInfo returns an independent copy of the given variant so snapshot
// reads never alias store-owned memory.
func cloneTypeInfo(info TypeInfo) TypeInfo {
	switch v := info.(type) {
	case *ApproveInfo:
		c := *v
		return &c
	case *SendInfo:
		c := *v
		return &c
	case *ReceiveInfo:
		c := *v
		return &c
	case *SwapInfo:
		c := *v
		return &c
	case *WrapInfo:
		c := *v
		return &c
	case *BridgeInfo:
		c := *v
		return &c
	case *NFTMintInfo:
		c := *v
		return &c
	case *NFTTradeInfo:
		c := *v
		return &c
	case *NFTApproveInfo:
		c := *v
		return &c
	case *LiquidityIncreaseInfo:
		c := *v
		c.PoolAmounts = clonePoolAmounts(v.PoolAmounts)
		return &c
	case *LiquidityDecreaseInfo:
		c := *v
		c.PoolAmounts = clonePoolAmounts(v.PoolAmounts)
		return &c
	case *CreatePoolInfo:
		c := *v
		c.PoolAmounts = clonePoolAmounts(v.PoolAmounts)
		return &c
	case *CollectFeesInfo:
		c := *v
		c.PoolAmounts = clonePoolAmounts(v.PoolAmounts)
		return &c
	case *FiatPurchaseInfo:
		c := *v
		if v.Provider != nil {
			p := *v.Provider
			c.Provider = &p
		}
		return &c
	case *FiatTransferInfo:
		c := *v
		if v.Provider != nil {
			p := *v.Provider
			c.Provider = &p
		}
		return &c
	case *WCConfirmInfo:
		c := *v
		return &c
	case *UnknownInfo:
		c := *v
		return &c
	default:
		return info
	}
}

// clonePoolAmounts copies a PoolAmounts value, including its optional second
// leg.
func clonePoolAmounts(p PoolAmounts) PoolAmounts {
	c := p
	if p.Currency1ID != nil {
		id := *p.Currency1ID
		c.Currency1ID = &id
	}
	if p.Currency1AmountRaw != nil {
		amt := *p.Currency1AmountRaw
		c.Currency1AmountRaw = &amt
	}
	return c
}
