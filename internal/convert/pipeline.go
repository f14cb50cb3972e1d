package convert

import (
	"errors"
	"fmt"
	"io"

	"github.com/cleared-dev/koinlyconv/internal/importer"
	"github.com/cleared-dev/koinlyconv/internal/model"
)

// RowWriter receives converted rows in input order.
type RowWriter interface {
	Write(r model.OutputRecord) error
}

type teeWriter []RowWriter

func (t teeWriter) Write(r model.OutputRecord) error {
	for _, w := range t {
		if err := w.Write(r); err != nil {
			return err
		}
	}
	return nil
}

// Tee returns a RowWriter that writes each row to every w, in order,
// stopping at the first error.
func Tee(writers ...RowWriter) RowWriter {
	return teeWriter(writers)
}

// Stats counts what a run did with the input.
type Stats struct {
	Kind            importer.Kind
	Rows            int
	Written         int
	SkippedCoin     int
	SkippedTransfer int
}

// Run converts an export read from r and writes eligible rows to w.
// It stops at the first row that cannot be decoded or written.
func Run(r io.Reader, w RowWriter, f Filter) (Stats, error) {
	var stats Stats

	src, err := importer.NewSource(r)
	if err != nil {
		return stats, err
	}
	stats.Kind = src.Kind()

	for {
		rec, row, err := src.Next()
		if errors.Is(err, io.EOF) {
			return stats, nil
		}
		if err != nil {
			return stats, err
		}
		stats.Rows++

		out, ok, err := convertRow(src.Kind(), rec, f, &stats)
		if err != nil {
			return stats, &RowError{Row: row, Kind: src.Kind(), Err: err}
		}
		if !ok {
			continue
		}

		if err := w.Write(out); err != nil {
			return stats, &WriteError{Row: row, Err: err}
		}
		stats.Written++
	}
}

func convertRow(kind importer.Kind, rec []string, f Filter, stats *Stats) (model.OutputRecord, bool, error) {
	var coin, txid string
	var out model.OutputRecord

	switch kind {
	case importer.KindDeposit:
		d, err := importer.DecodeDeposit(rec)
		if err != nil {
			return model.OutputRecord{}, false, err
		}
		coin, txid = d.Coin, d.TxID
		out = FromDeposit(d)
	case importer.KindWithdrawal:
		wd, err := importer.DecodeWithdrawal(rec)
		if err != nil {
			return model.OutputRecord{}, false, err
		}
		coin, txid = wd.Coin, wd.TxID
		out = FromWithdrawal(wd)
	default:
		return model.OutputRecord{}, false, fmt.Errorf("unknown input kind %s", kind)
	}

	if !f.Eligible(coin, txid) {
		if f.IsStablecoin(coin) {
			stats.SkippedTransfer++
		} else {
			stats.SkippedCoin++
		}
		return model.OutputRecord{}, false, nil
	}
	return out, true, nil
}
