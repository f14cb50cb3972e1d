package model

// Side is the trade direction reported to Koinly.
type Side string

const (
	SideSell Side = "Sell" // deposits
	SideBuy  Side = "Buy"  // withdrawals
)

// QuoteCurrency is the fiat leg of every emitted pair.
const QuoteCurrency = "USD"

// DepositRecord is one row of an exchange deposit export.
// Amounts are kept as text and passed through verbatim.
type DepositRecord struct {
	ID             string
	Time           string
	Coin           string
	Size           string
	Status         string
	AdditionalInfo string
	TxID           string
	Extra          string // trailing unnamed column
}

// WithdrawRecord is one row of an exchange withdrawal export.
type WithdrawRecord struct {
	ID      string
	Time    string
	Coin    string
	Size    string
	Status  string
	Address string
	TxID    string
	Fee     string
}

// OutputRecord is one row of a Koinly custom ledger CSV.
type OutputRecord struct {
	Date        string
	Pair        string
	Side        Side
	Amount      string
	Total       string
	FeeAmount   string
	FeeCurrency string
	OrderID     string
	TradeID     string
}

// Pair returns the Koinly pair for a coin, e.g. "USDC/USD".
func Pair(coin string) string {
	return coin + "/" + QuoteCurrency
}
