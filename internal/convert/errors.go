package convert

import (
	"fmt"

	"github.com/cleared-dev/koinlyconv/internal/importer"
)

// ErrInputEmpty is returned when the input has no data rows.
var ErrInputEmpty = importer.ErrInputEmpty

// RowError reports an input row that does not fit the detected shape.
type RowError = importer.RowError

// WriteError reports a failure to emit the output row for an input row.
type WriteError struct {
	Row int
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing row %d: %v", e.Row, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
