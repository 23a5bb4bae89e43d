package audit

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReportSheet is the sheet name of the written comparison report.
const ReportSheet = "Comparison"

// ErrWriteReport indicates the report workbook could not be written.
var ErrWriteReport = errors.New("write report")

// Fixed leading columns of the report, before the extracted fields.
var reportColumns = []string{
	"Filename",
	"FileType",
	"Title Match %",
	"Status",
	"File Remarks",
	"Inventory Remarks",
}

// WriteReport writes entries as a single-sheet Excel workbook at path.
// Columns are the fixed report columns followed by the sorted union of all
// extracted field names.
func WriteReport(path string, entries []Entry) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	err := f.SetSheetName(f.GetSheetName(0), ReportSheet)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteReport, err)
	}

	fields := fieldColumns(entries)
	columns := append(append([]string{}, reportColumns...), fields...)

	for i, col := range columns {
		err = setCell(f, 1, i+1, col)
		if err != nil {
			return err
		}
	}

	for r, entry := range entries {
		values := []any{
			entry.Filename,
			string(entry.Type),
			entry.TitleMatch,
			string(entry.Status),
			strings.Join(entry.FileRemarks, "; "),
			strings.Join(entry.InventoryRemarks, "; "),
		}

		for _, field := range fields {
			values = append(values, entry.Fields[field])
		}

		for i, v := range values {
			err = setCell(f, r+2, i+1, v)
			if err != nil {
				return err
			}
		}
	}

	err = f.SaveAs(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteReport, err)
	}

	return nil
}

// fieldColumns returns the sorted union of field names across entries.
func fieldColumns(entries []Entry) []string {
	seen := map[string]struct{}{}

	var fields []string

	for _, entry := range entries {
		for field := range entry.Fields {
			_, ok := seen[field]
			if ok {
				continue
			}

			seen[field] = struct{}{}
			fields = append(fields, field)
		}
	}

	sort.Strings(fields)

	return fields
}

func setCell(f *excelize.File, row, col int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteReport, err)
	}

	err = f.SetCellValue(ReportSheet, cell, value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteReport, err)
	}

	return nil
}
