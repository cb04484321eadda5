// Package activity normalizes heterogeneous on-chain activity payloads into
// the transaction type infos tracked by the store.
//
// Raw records arrive from either a GraphQL activity feed or a REST
// transaction-history API; both are flattened to the same RawTransaction
// shape before parsing. Parsers are pure functions over that shape: they
// never throw, returning nil when a record lacks the data their type
// requires, because upstream data is externally sourced and untrusted.
package activity

// Label is the upstream classification tag driving parser dispatch.
type Label string

const (
	LabelApprove           Label = "APPROVE"
	LabelSend              Label = "SEND"
	LabelReceive           Label = "RECEIVE"
	LabelSwap              Label = "SWAP"
	LabelSwapOrder         Label = "SWAP_ORDER"
	LabelWrap              Label = "WRAP"
	LabelUnwrap            Label = "UNWRAP"
	LabelBridge            Label = "BRIDGE"
	LabelMint              Label = "MINT"
	LabelIncreaseLiquidity Label = "INCREASE_LIQUIDITY"
	LabelDecreaseLiquidity Label = "DECREASE_LIQUIDITY"
	LabelCreatePool        Label = "CREATE_POOL"
	LabelClaim             Label = "CLAIM"
	LabelOnRamp            Label = "ON_RAMP"
	LabelUnknown           Label = "UNKNOWN"
)

// Direction tags a transfer as leaving or entering the subject wallet.
type Direction string

const (
	DirectionSend    Direction = "send"
	DirectionReceive Direction = "receive"
)

// SpamCodeNone is the upstream metadata code for assets not flagged as spam.
// Any other code marks the asset as spam; the classification is a
// pass-through from the feed's token metadata, not a heuristic computed here.
const SpamCodeNone = 0

// Asset identifies the token or NFT moved by a transfer or covered by an
// approval, together with the metadata the parsers need.
type Asset struct {
	ChainID  int    `json:"chainId"`
	Address  string `json:"address"`
	Symbol   string `json:"symbol,omitempty"`
	Decimals int    `json:"decimals,omitempty"`
	SpamCode int    `json:"spamCode,omitempty"`

	// NFT-only metadata.
	IsNFT          bool   `json:"isNft,omitempty"`
	TokenID        string `json:"tokenId,omitempty"`
	Name           string `json:"name,omitempty"`
	CollectionName string `json:"collectionName,omitempty"`
	ImageURL       string `json:"imageUrl,omitempty"`
}

// IsSpam reports the feed's spam classification for the asset.
func (a Asset) IsSpam() bool {
	return a.SpamCode != SpamCodeNone
}

// Transfer is a directional movement of one asset amount between two
// addresses within a transaction.
//
// AmountRaw carries the base-unit amount as a decimal string. Some upstreams
// only supply the display Quantity; in that case the raw amount is derived by
// shifting the quantity by the asset's decimals.
type Transfer struct {
	Direction Direction `json:"direction"`
	Asset     Asset     `json:"asset"`
	AmountRaw string    `json:"amountRaw,omitempty"`
	Quantity  string    `json:"quantity,omitempty"`
	Sender    string    `json:"sender,omitempty"`
	Recipient string    `json:"recipient,omitempty"`
}

// Approval is a spending allowance granted within a transaction.
type Approval struct {
	Asset     Asset  `json:"asset"`
	Spender   string `json:"spender"`
	AmountRaw string `json:"amountRaw,omitempty"`
}

// Fee is the network fee reported by the feed for a settled transaction.
type Fee struct {
	Quantity     string `json:"quantity"`
	TokenSymbol  string `json:"tokenSymbol"`
	TokenAddress string `json:"tokenAddress"`
	ChainID      int    `json:"chainId"`
}

// Protocol attributes a transaction to the protocol that executed it.
type Protocol struct {
	Name    string `json:"name"`
	LogoURL string `json:"logoUrl,omitempty"`
}

// OnRampDetails carries the fiat side of an on-ramp transaction.
type OnRampDetails struct {
	SourceCurrency  string `json:"sourceCurrency"` // fiat currency code, e.g. "USD"
	SourceAmount    string `json:"sourceAmount,omitempty"`
	Provider        string `json:"provider,omitempty"`
	ProviderLogoURL string `json:"providerLogoUrl,omitempty"`
}

// RawStatus is the settlement status reported by the feed.
type RawStatus string

const (
	RawStatusPending   RawStatus = "PENDING"
	RawStatusConfirmed RawStatus = "CONFIRMED"
	RawStatusFailed    RawStatus = "FAILED"
)

// RawTransaction is the flattened wire form of one activity record, shared by
// the GraphQL and REST upstreams.
type RawTransaction struct {
	Label       Label          `json:"label"`
	Hash        string         `json:"hash"`
	ChainID     int            `json:"chainId"`
	From        string         `json:"from"`
	To          string         `json:"to,omitempty"`
	Status      RawStatus      `json:"status,omitempty"`
	Timestamp   int64          `json:"timestamp,omitempty"` // epoch milliseconds
	BlockNumber int64          `json:"blockNumber,omitempty"`
	Transfers   []Transfer     `json:"transfers"`
	Approvals   []Approval     `json:"approvals"`
	Fee         *Fee           `json:"fee,omitempty"`
	Protocol    *Protocol      `json:"protocol,omitempty"`
	OnRamp      *OnRampDetails `json:"onRamp,omitempty"`
}

// transfersByDirection splits the record's transfers preserving their wire
// order.
func (raw RawTransaction) transfersByDirection() (sends, receives []Transfer) {
	for _, transfer := range raw.Transfers {
		switch transfer.Direction {
		case DirectionSend:
			sends = append(sends, transfer)
		case DirectionReceive:
			receives = append(receives, transfer)
		}
	}
	return sends, receives
}
