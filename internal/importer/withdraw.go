package importer

import (
	"fmt"

	"github.com/cleared-dev/koinlyconv/internal/model"
)

const (
	wdColID      = 0
	wdColTime    = 1
	wdColCoin    = 2
	wdColSize    = 3
	wdColStatus  = 4
	wdColAddress = 5
	wdColTxID    = 6
	wdColFee     = 7
)

// DecodeWithdrawal converts a CSV row to a WithdrawRecord.
func DecodeWithdrawal(record []string) (model.WithdrawRecord, error) {
	if len(record) != numFields {
		return model.WithdrawRecord{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}
	return model.WithdrawRecord{
		ID:      record[wdColID],
		Time:    record[wdColTime],
		Coin:    record[wdColCoin],
		Size:    record[wdColSize],
		Status:  record[wdColStatus],
		Address: record[wdColAddress],
		TxID:    record[wdColTxID],
		Fee:     record[wdColFee],
	}, nil
}
