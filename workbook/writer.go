package workbook

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// headers defines the column layout written for generated input workbooks.
// The reader locates columns by these labels, not by position.
var headers = []string{ColProvince, ColDistrict, ColCandidate, ColParty, ColVotes}

// columnDef describes one output column: label plus value extractor.
type columnDef struct {
	value func(BallotRow) string
}

var columns = []columnDef{
	{value: func(r BallotRow) string { return r.Province }},
	{value: func(r BallotRow) string { return strconv.Itoa(r.DistrictID) }},
	{value: func(r BallotRow) string { return r.CandidateName }},
	{value: func(r BallotRow) string { return r.Party }},
	{value: func(r BallotRow) string { return strconv.Itoa(r.Votes) }},
}

// WriteFile creates a workbook in the source input format (title banner,
// header on row 4, data below) and saves it to path.
func WriteFile(rows []BallotRow, title, path string) error {
	f, err := build(rows, title)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// WriteBytes creates a workbook in the source input format and returns it
// as raw xlsx bytes.
func WriteBytes(rows []BallotRow, title string) ([]byte, error) {
	f, err := build(rows, title)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write to buffer: %w", err)
	}
	return buf.Bytes(), nil
}

func build(rows []BallotRow, title string) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Sheet1"

	if err := f.SetCellStr(sheet, "A1", title); err != nil {
		return nil, fmt.Errorf("write title: %w", err)
	}

	if err := writeHeaders(f, sheet); err != nil {
		return nil, fmt.Errorf("write headers: %w", err)
	}

	if err := writeRows(f, sheet, rows); err != nil {
		return nil, fmt.Errorf("write rows: %w", err)
	}

	if err := fitColumns(f, sheet); err != nil {
		return nil, fmt.Errorf("fit columns: %w", err)
	}

	return f, nil
}

func writeHeaders(f *excelize.File, sheet string) error {
	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}

	for col, header := range headers {
		cell := cellName(headerRow-1, col)
		if err := f.SetCellStr(sheet, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return err
		}
	}

	return nil
}

func writeRows(f *excelize.File, sheet string, rows []BallotRow) error {
	for i, r := range rows {
		row := headerRow + i // first data row is right below the header
		for col, def := range columns {
			cell := cellName(row, col)
			if err := f.SetCellStr(sheet, cell, def.value(r)); err != nil {
				return fmt.Errorf("row %d, col %d: %w", i, col, err)
			}
		}
	}
	return nil
}

func fitColumns(f *excelize.File, sheet string) error {
	widths := []float64{20, 10, 30, 25, 12}
	for col, w := range widths {
		name := columnName(col)
		if err := f.SetColWidth(sheet, name, name, w); err != nil {
			return err
		}
	}
	return nil
}
