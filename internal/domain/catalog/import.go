package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ImportHeader is the exact first line a bulk upload must carry.
// Column order is fixed and the match is case sensitive; only
// line-ending characters are tolerated (the CSV reader strips them).
const ImportHeader = "Title,Description,Series,Size,Price,Status,Filename"

// HeaderError reports an upload whose first line is not ImportHeader.
// Header echoes the line that was received.
type HeaderError struct {
	Header string
}

func (e *HeaderError) Error() string {
	return "bad header"
}

// RowError reports a row that could not be imported. Row is the line
// number within the upload, counting the header as line 1.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// ImportResult counts the outcome of a bulk import.
type ImportResult struct {
	Added int
	Dup   int
}

// RunImport reads a CSV upload and inserts its rows into the catalog.
// Each non-duplicate row is persisted immediately, so later rows are
// deduplicated against it; a duplicate row is counted and skipped
// without consuming an idnumber. A malformed row (wrong column count,
// non-integer price) aborts the import with a RowError — rows already
// persisted stay persisted, there is no partial-state cleanup.
func RunImport(s Store, r io.Reader) (ImportResult, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		// An empty upload looks the same as a missing one.
		return ImportResult{}, ErrNoFile
	}
	if err != nil {
		return ImportResult{}, &HeaderError{}
	}
	if got := strings.Join(header, ","); got != ImportHeader {
		return ImportResult{}, &HeaderError{Header: got}
	}

	var res ImportResult
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return res, &RowError{Row: line, Err: err}
		}

		price, err := strconv.Atoi(rec[4])
		if err != nil {
			return res, &RowError{Row: line, Err: fmt.Errorf("price %q is not an integer", rec[4])}
		}

		p := Painting{
			Title:       rec[0],
			Description: rec[1],
			Series:      rec[2],
			Size:        rec[3],
			Price:       price,
			Status:      rec[5],
			Filename:    rec[6],
		}
		if err := s.Insert(&p); err != nil {
			if errors.Is(err, ErrDuplicate) {
				res.Dup++
				continue
			}
			return res, err
		}
		res.Added++
	}
	return res, nil
}
