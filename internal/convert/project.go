package convert

import "github.com/cleared-dev/koinlyconv/internal/model"

// FromDeposit maps a deposit to a Koinly sell of the stablecoin for USD.
func FromDeposit(r model.DepositRecord) model.OutputRecord {
	return model.OutputRecord{
		Date:        r.Time,
		Pair:        model.Pair(r.Coin),
		Side:        model.SideSell,
		Amount:      r.Size,
		Total:       r.Size,
		FeeAmount:   "",
		FeeCurrency: model.QuoteCurrency,
		OrderID:     "",
		TradeID:     r.TxID,
	}
}

// FromWithdrawal maps a withdrawal to a Koinly buy. The fee is charged in
// the withdrawn coin.
func FromWithdrawal(r model.WithdrawRecord) model.OutputRecord {
	return model.OutputRecord{
		Date:        r.Time,
		Pair:        model.Pair(r.Coin),
		Side:        model.SideBuy,
		Amount:      r.Size,
		Total:       r.Size,
		FeeAmount:   r.Fee,
		FeeCurrency: r.Coin,
		OrderID:     "",
		TradeID:     r.TxID,
	}
}
