package workbook

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// headerRow is the 1-based physical row holding the column labels. The rows
// above it are banner/title rows and are skipped regardless of content.
const headerRow = 4

// Column labels expected in the header row of the source sheet.
const (
	ColProvince  = "จังหวัด"
	ColDistrict  = "เขตเลือกตั้ง"
	ColCandidate = "ชื่อผู้สมัคร"
	ColParty     = "พรรค"
	ColVotes     = "คะแนน"
)

// ErrNoSheets is returned when the workbook contains no sheets at all.
var ErrNoSheets = errors.New("workbook has no sheets")

// BallotRow is one candidate-district pairing read from the source sheet.
// Fallbacks are applied here, at the workbook boundary: missing or
// unparseable numbers become 0, missing text cells become "".
type BallotRow struct {
	Province      string
	Party         string
	Votes         int
	CandidateName string
	DistrictID    int
}

// Reader streams ballot rows from the first sheet of an Excel workbook.
type Reader struct {
	file   *excelize.File
	sheet  string
	header map[string]int
}

// Open opens the workbook at path and binds to its first sheet in
// declaration order.
func Open(path string) (*Reader, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return newReader(f)
}

// OpenBytes reads a workbook from raw xlsx bytes.
func OpenBytes(data []byte) (*Reader, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open from bytes: %w", err)
	}
	return newReader(f)
}

func newReader(f *excelize.File) (*Reader, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		f.Close()
		return nil, ErrNoSheets
	}
	return &Reader{file: f, sheet: sheets[0]}, nil
}

// Close releases the underlying workbook handle.
func (r *Reader) Close() error {
	return r.file.Close()
}

// Each calls fn once per data row below the header, in sheet order. GetRows
// keeps physical row alignment, so the fixed header offset holds even when
// the banner rows are blank.
func (r *Reader) Each(fn func(BallotRow) error) error {
	rows, err := r.file.GetRows(r.sheet)
	if err != nil {
		return fmt.Errorf("rows of %q: %w", r.sheet, err)
	}

	for i, cols := range rows {
		line := i + 1
		if line < headerRow {
			continue
		}
		if line == headerRow {
			r.header = headerIndex(cols)
			continue
		}

		if err := fn(r.parse(cols)); err != nil {
			return err
		}
	}

	return nil
}

// headerIndex maps trimmed header labels to their 0-based column index.
// Duplicated labels keep the first occurrence.
func headerIndex(cols []string) map[string]int {
	index := make(map[string]int, len(cols))
	for i, label := range cols {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		if _, ok := index[label]; !ok {
			index[label] = i
		}
	}
	return index
}

func (r *Reader) parse(cols []string) BallotRow {
	return BallotRow{
		Province:      r.str(cols, ColProvince),
		Party:         r.str(cols, ColParty),
		Votes:         r.num(cols, ColVotes),
		CandidateName: r.str(cols, ColCandidate),
		DistrictID:    r.num(cols, ColDistrict),
	}
}

func (r *Reader) str(cols []string, label string) string {
	i, ok := r.header[label]
	if !ok || i >= len(cols) {
		return ""
	}
	return strings.TrimSpace(cols[i])
}

func (r *Reader) num(cols []string, label string) int {
	v := r.str(cols, label)
	if v == "" {
		return 0
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	// Numeric cells sometimes render with a decimal part.
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return int(f)
	}
	return 0
}
