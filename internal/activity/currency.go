package activity

import (
	"fmt"
	"strings"
)

// NativeAddress is the sentinel address identifying a chain's native asset in
// currency ids. Feeds that report the native asset by the "NATIVE" alias or
// an empty address are normalized to this sentinel.
const NativeAddress = "0x0000000000000000000000000000000000000000"

// nativeAlias is the symbolic native-asset marker some upstreams use in place
// of an address.
const nativeAlias = "NATIVE"

// CurrencyID derives the cross-chain asset key "{chainId}-{address}".
func CurrencyID(chainID int, address string) string {
	if address == "" || strings.EqualFold(address, nativeAlias) {
		address = NativeAddress
	}
	return fmt.Sprintf("%d-%s", chainID, address)
}

// assetCurrencyID keys the asset by its own chain id, which for bridge legs
// differs from the chain the transaction was submitted on.
func assetCurrencyID(a Asset) string {
	return CurrencyID(a.ChainID, a.Address)
}

// IsNative reports whether the address denotes the chain's native asset.
func IsNative(address string) bool {
	return address == "" || strings.EqualFold(address, nativeAlias) || strings.EqualFold(address, NativeAddress)
}
