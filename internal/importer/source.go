package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// ErrInputEmpty is returned when a file has no header or no data rows.
var ErrInputEmpty = errors.New("input has no rows")

// RowError reports a row that does not fit the detected shape.
type RowError struct {
	Row  int // 1-based, header is row 1
	Kind Kind // shape the row was decoded against
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// Source streams the rows of one export file. The first data row is read
// during detection and handed back by the first call to Next.
type Source struct {
	cr      *csv.Reader
	header  []string
	pending []string
	row     int
	kind    Kind
}

// NewSource reads the header and first data row from r and detects the
// export kind.
func NewSource(r io.Reader) (*Source, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	s := &Source{cr: cr}

	header, err := s.read()
	if err != nil {
		return nil, err
	}
	first, err := s.read()
	if err != nil {
		return nil, err
	}

	s.header = header
	s.pending = first
	s.kind = Detect(header, first)

	if s.kind == KindWithdrawal {
		if err := Withdrawal.MatchHeader(header); err != nil {
			return nil, &RowError{Row: 1, Kind: KindWithdrawal, Err: err}
		}
	}
	return s, nil
}

func (s *Source) read() ([]string, error) {
	rec, err := s.cr.Read()
	if err == io.EOF {
		if s.row <= 1 {
			return nil, ErrInputEmpty
		}
		return nil, io.EOF
	}
	s.row++
	if err != nil {
		return nil, &RowError{Row: s.row, Kind: s.kind, Err: err}
	}
	return rec, nil
}

// Kind returns the detected export kind.
func (s *Source) Kind() Kind { return s.kind }

// Header returns the header row as read.
func (s *Source) Header() []string { return s.header }

// Next returns the next raw data row and its row number, or io.EOF.
func (s *Source) Next() ([]string, int, error) {
	if s.pending != nil {
		rec := s.pending
		s.pending = nil
		return rec, 2, nil
	}
	rec, err := s.read()
	if err != nil {
		return nil, 0, err
	}
	return rec, s.row, nil
}
