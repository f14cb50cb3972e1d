package importer

import (
	"fmt"

	"github.com/cleared-dev/koinlyconv/internal/model"
)

const (
	depColID     = 0
	depColTime   = 1
	depColCoin   = 2
	depColSize   = 3
	depColStatus = 4
	depColInfo   = 5
	depColTxID   = 6
	depColExtra  = 7
)

// DecodeDeposit converts a CSV row to a DepositRecord.
func DecodeDeposit(record []string) (model.DepositRecord, error) {
	if len(record) != numFields {
		return model.DepositRecord{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}
	return model.DepositRecord{
		ID:             record[depColID],
		Time:           record[depColTime],
		Coin:           record[depColCoin],
		Size:           record[depColSize],
		Status:         record[depColStatus],
		AdditionalInfo: record[depColInfo],
		TxID:           record[depColTxID],
		Extra:          record[depColExtra],
	}, nil
}
