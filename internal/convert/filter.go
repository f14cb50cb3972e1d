package convert

import (
	"slices"
	"strings"
)

// DefaultStablecoins are the coins treated as USD.
var DefaultStablecoins = []string{"USDC", "TUSD", "USDP", "BUSD", "HUSD"}

// DefaultTransferMarker marks internal transfers in a txid.
const DefaultTransferMarker = "Transfer from"

// Filter decides which records are converted.
type Filter struct {
	Stablecoins    []string
	TransferMarker string
}

// DefaultFilter returns the built-in whitelist and transfer marker.
func DefaultFilter() Filter {
	return Filter{
		Stablecoins:    slices.Clone(DefaultStablecoins),
		TransferMarker: DefaultTransferMarker,
	}
}

// IsStablecoin reports whether coin is on the whitelist. Exact match.
func (f Filter) IsStablecoin(coin string) bool {
	return slices.Contains(f.Stablecoins, coin)
}

// IsInternalTransfer reports whether txid contains the transfer marker
// anywhere. Case-sensitive.
func (f Filter) IsInternalTransfer(txid string) bool {
	if f.TransferMarker == "" {
		return false
	}
	return strings.Contains(txid, f.TransferMarker)
}

// Eligible reports whether a record with this coin and txid is converted.
func (f Filter) Eligible(coin, txid string) bool {
	return f.IsStablecoin(coin) && !f.IsInternalTransfer(txid)
}
