package activity

import "github.com/gabapcia/txledger/internal/txstore"

// ParseMint normalizes an NFT mint into an NFTMintInfo. The minted NFT
// arrives as a receive transfer; an optional fungible send transfer is the
// purchase payment. Records without an NFT receive transfer return nil.
func ParseMint(raw RawTransaction) txstore.TypeInfo {
	sends, receives := raw.transfersByDirection()

	var minted *Transfer
	for i := range receives {
		if receives[i].Asset.IsNFT {
			minted = &receives[i]
			break
		}
	}
	if minted == nil {
		return nil
	}

	info := &txstore.NFTMintInfo{
		NFT:    nftSummary(minted.Asset),
		IsSpam: minted.Asset.IsSpam(),
	}

	for _, payment := range sends {
		if payment.Asset.IsNFT {
			continue
		}
		info.PurchaseCurrencyID = assetCurrencyID(payment.Asset)
		info.PurchaseAmountRaw = rawAmount(payment)
		break
	}

	return info
}

// parseNFTTrade detects a swap whose legs pair an NFT against a fungible
// payment and normalizes it into an NFTTradeInfo. It returns nil when no leg
// moves an NFT, letting the caller treat the record as a token swap.
func parseNFTTrade(sends, receives []Transfer) txstore.TypeInfo {
	var (
		nft     *Transfer
		payment *Transfer
		trade   txstore.NFTTradeType
	)

	for i := range receives {
		if receives[i].Asset.IsNFT {
			nft = &receives[i]
			trade = txstore.NFTTradeBuy
			break
		}
	}
	if nft == nil {
		for i := range sends {
			if sends[i].Asset.IsNFT {
				nft = &sends[i]
				trade = txstore.NFTTradeSell
				break
			}
		}
	}
	if nft == nil {
		return nil
	}

	// The payment moves opposite to the NFT.
	counterLegs := sends
	if trade == txstore.NFTTradeSell {
		counterLegs = receives
	}
	for i := range counterLegs {
		if !counterLegs[i].Asset.IsNFT {
			payment = &counterLegs[i]
			break
		}
	}
	if payment == nil {
		return nil
	}

	return &txstore.NFTTradeInfo{
		NFT:                nftSummary(nft.Asset),
		TradeType:          trade,
		PurchaseCurrencyID: assetCurrencyID(payment.Asset),
		PurchaseAmountRaw:  rawAmount(*payment),
	}
}

// nftSummary projects the display metadata of an NFT asset.
func nftSummary(a Asset) txstore.NFTSummary {
	return txstore.NFTSummary{
		Name:            a.Name,
		CollectionName:  a.CollectionName,
		ImageURL:        a.ImageURL,
		TokenID:         a.TokenID,
		ContractAddress: a.Address,
	}
}
