package activity

import "github.com/gabapcia/txledger/internal/txstore"

// ParseApprove normalizes an approval record into an ApproveInfo, or an
// NFTApproveInfo when the approved asset is an NFT. It returns nil when the
// record carries no approvals.
func ParseApprove(raw RawTransaction) txstore.TypeInfo {
	if len(raw.Approvals) == 0 {
		return nil
	}

	approval := raw.Approvals[0]
	if approval.Asset.IsNFT {
		return &txstore.NFTApproveInfo{
			NFT:     nftSummary(approval.Asset),
			Spender: approval.Spender,
		}
	}

	return &txstore.ApproveInfo{
		TokenAddress:      approval.Asset.Address,
		Spender:           approval.Spender,
		ApprovalAmountRaw: approval.AmountRaw,
	}
}
