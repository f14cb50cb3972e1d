package importer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/cleared-dev/koinlyconv/internal/model"
)

// Kind identifies which export an input file came from.
type Kind int

const (
	KindDeposit Kind = iota
	KindWithdrawal
)

func (k Kind) String() string {
	switch k {
	case KindDeposit:
		return "deposit"
	case KindWithdrawal:
		return "withdrawal"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// numFields is shared by both exports.
const numFields = 8

// anyColumn accepts whatever label the export puts in that position.
const anyColumn = ""

// Shape is the positional column contract of one export.
type Shape struct {
	Kind    Kind
	columns [numFields]string
}

// Deposit is the deposit export contract.
var Deposit = Shape{
	Kind:    KindDeposit,
	columns: [numFields]string{"id", "time", "coin", "size", "status", "additionalInfo", "txid", anyColumn},
}

// Withdrawal is the withdrawal export contract.
var Withdrawal = Shape{
	Kind:    KindWithdrawal,
	columns: [numFields]string{"id", "time", "coin", "size", "status", "address", "txid", "fee"},
}

// ShapeOf returns the contract for k.
func ShapeOf(k Kind) Shape {
	if k == KindDeposit {
		return Deposit
	}
	return Withdrawal
}

// MatchHeader checks a header row against the shape's column names.
// Labels compare case-insensitively with punctuation and spaces ignored.
func (s Shape) MatchHeader(header []string) error {
	if len(header) != numFields {
		return fmt.Errorf("%s header: expected %d columns, got %d", s.Kind, numFields, len(header))
	}
	for i, want := range s.columns {
		if want == anyColumn {
			continue
		}
		if normalizeLabel(header[i]) != normalizeLabel(want) {
			return fmt.Errorf("%s header: column %d is %q, expected %q", s.Kind, i+1, header[i], want)
		}
	}
	return nil
}

// TryDeposit attempts the deposit contract on the header and first data row.
// A nil error means the file is a deposit export.
func TryDeposit(header, first []string) (model.DepositRecord, error) {
	if err := Deposit.MatchHeader(header); err != nil {
		return model.DepositRecord{}, err
	}
	return DecodeDeposit(first)
}

// Detect classifies a file from its header and first data row. Anything
// that is not a deposit export is treated as a withdrawal export.
func Detect(header, first []string) Kind {
	if _, err := TryDeposit(header, first); err == nil {
		return KindDeposit
	}
	return KindWithdrawal
}

func normalizeLabel(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, s)
}
