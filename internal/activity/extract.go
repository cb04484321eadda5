package activity

import "github.com/gabapcia/txledger/internal/txstore"

// parsers is the fixed label-to-parser dispatch table. Labels sharing a
// parser (classic and order-routed swaps, wrap and unwrap, the four
// liquidity labels) are listed individually so the table stays the single
// source of dispatch truth.
var parsers = map[Label]func(RawTransaction) txstore.TypeInfo{
	LabelApprove:           ParseApprove,
	LabelSend:              ParseSend,
	LabelReceive:           ParseReceive,
	LabelSwap:              ParseSwap,
	LabelSwapOrder:         ParseSwap,
	LabelWrap:              ParseWrap,
	LabelUnwrap:            ParseWrap,
	LabelBridge:            ParseBridge,
	LabelMint:              ParseMint,
	LabelIncreaseLiquidity: ParseLiquidity,
	LabelDecreaseLiquidity: ParseLiquidity,
	LabelCreatePool:        ParseLiquidity,
	LabelClaim:             ParseLiquidity,
	LabelOnRamp:            ParseOnRamp,
}

// Extract maps a raw activity record to exactly one normalized type info.
//
// A recognized label dispatches to its parser; the parser's nil result (the
// record lacks the data its type requires) propagates to the caller, which
// skips the record. An unrecognized or empty label is not an error, since
// the upstream feed is not fully trusted; it degrades to an UnknownInfo
// tagged with the first transferred asset's address when available.
func Extract(raw RawTransaction) txstore.TypeInfo {
	if parse, ok := parsers[raw.Label]; ok {
		return parse(raw)
	}

	unknown := &txstore.UnknownInfo{}
	if len(raw.Transfers) > 0 {
		unknown.TokenAddress = raw.Transfers[0].Asset.Address
	}
	return unknown
}

// RoutingFor classifies the execution path implied by a record's label.
// Order-labeled swaps settle through off-chain fills and bridges through
// cross-chain messaging; everything else is a classic on-chain submission.
func RoutingFor(label Label) txstore.Routing {
	switch label {
	case LabelSwapOrder:
		return txstore.RoutingOrder
	case LabelBridge:
		return txstore.RoutingBridge
	default:
		return txstore.RoutingClassic
	}
}
