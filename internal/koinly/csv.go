package koinly

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/cleared-dev/koinlyconv/internal/model"
)

// Header is the CSV header Koinly expects for custom trade imports.
const Header = "Koinly Date,Pair,Side,Amount,Total,Fee Amount,Fee Currency,Order ID,Trade ID"

const (
	numFields      = 9
	colDate        = 0
	colPair        = 1
	colSide        = 2
	colAmount      = 3
	colTotal       = 4
	colFeeAmount   = 5
	colFeeCurrency = 6
	colOrderID     = 7
	colTradeID     = 8
)

// Columns returns the header labels in output order.
func Columns() []string {
	return strings.Split(Header, ",")
}

// MarshalRow converts an OutputRecord to a CSV row.
func MarshalRow(r model.OutputRecord) []string {
	row := make([]string, numFields)
	row[colDate] = r.Date
	row[colPair] = r.Pair
	row[colSide] = string(r.Side)
	row[colAmount] = r.Amount
	row[colTotal] = r.Total
	row[colFeeAmount] = r.FeeAmount
	row[colFeeCurrency] = r.FeeCurrency
	row[colOrderID] = r.OrderID
	row[colTradeID] = r.TradeID
	return row
}

// UnmarshalRow converts a CSV row to an OutputRecord.
func UnmarshalRow(record []string) (model.OutputRecord, error) {
	if len(record) != numFields {
		return model.OutputRecord{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}
	return model.OutputRecord{
		Date:        record[colDate],
		Pair:        record[colPair],
		Side:        model.Side(record[colSide]),
		Amount:      record[colAmount],
		Total:       record[colTotal],
		FeeAmount:   record[colFeeAmount],
		FeeCurrency: record[colFeeCurrency],
		OrderID:     record[colOrderID],
		TradeID:     record[colTradeID],
	}, nil
}

// Writer streams OutputRecords as Koinly CSV. The header is written
// before the first row, or by Close when no rows were written.
type Writer struct {
	cw          *csv.Writer
	wroteHeader bool
}

// NewWriter returns a Writer on w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{cw: csv.NewWriter(w)}
}

func (w *Writer) writeHeader() error {
	if w.wroteHeader {
		return nil
	}
	w.wroteHeader = true
	if err := w.cw.Write(Columns()); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	return nil
}

// Write appends one record.
func (w *Writer) Write(r model.OutputRecord) error {
	if err := w.writeHeader(); err != nil {
		return err
	}
	return w.cw.Write(MarshalRow(r))
}

// Flush writes any buffered rows to the underlying writer.
func (w *Writer) Flush() error {
	w.cw.Flush()
	return w.cw.Error()
}

// Close ensures the header is present and flushes.
func (w *Writer) Close() error {
	if err := w.writeHeader(); err != nil {
		return err
	}
	return w.Flush()
}

// ReadRows reads all rows from a Koinly CSV, skipping the header.
func ReadRows(r io.Reader) ([]model.OutputRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading koinly CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var rows []model.OutputRecord
	for i, rec := range records[1:] {
		row, err := UnmarshalRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
