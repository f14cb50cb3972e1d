package summary

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/koinlyconv/internal/model"
)

// Line is the running total for one pair and side.
type Line struct {
	Pair   string
	Side   model.Side
	Rows   int
	Amount decimal.Decimal
	Fees   decimal.Decimal
}

type key struct {
	pair string
	side model.Side
}

// Tally totals converted rows per pair and side, in first-seen order.
type Tally struct {
	lines map[key]*Line
	order []key
}

// NewTally creates an empty Tally.
func NewTally() *Tally {
	return &Tally{lines: make(map[key]*Line)}
}

// Write adds one converted row to the totals.
func (t *Tally) Write(r model.OutputRecord) error {
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return fmt.Errorf("summarizing %s: parsing amount %q: %w", r.TradeID, r.Amount, err)
	}

	fee := decimal.Zero
	if r.FeeAmount != "" {
		fee, err = decimal.NewFromString(r.FeeAmount)
		if err != nil {
			return fmt.Errorf("summarizing %s: parsing fee %q: %w", r.TradeID, r.FeeAmount, err)
		}
	}

	k := key{pair: r.Pair, side: r.Side}
	line, ok := t.lines[k]
	if !ok {
		line = &Line{Pair: r.Pair, Side: r.Side}
		t.lines[k] = line
		t.order = append(t.order, k)
	}
	line.Rows++
	line.Amount = line.Amount.Add(amount)
	line.Fees = line.Fees.Add(fee)
	return nil
}

// Lines returns the totals in first-seen order.
func (t *Tally) Lines() []Line {
	lines := make([]Line, 0, len(t.order))
	for _, k := range t.order {
		lines = append(lines, *t.lines[k])
	}
	return lines
}

// Render writes the totals as a table.
func (t *Tally) Render(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Pair", "Side", "Rows", "Amount", "Fees"})
	table.SetAutoFormatHeaders(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	for _, l := range t.Lines() {
		table.Append([]string{
			l.Pair,
			string(l.Side),
			strconv.Itoa(l.Rows),
			l.Amount.String(),
			l.Fees.String(),
		})
	}
	table.Render()
}
