// Package inventory loads the Excel workbook that records which scripts
// should exist and what their header metadata should say.
//
// The first sheet is used. Row 1 holds column names and must include a
// Filename column. Rows sharing a filename (compared case-insensitively
// after trimming) are merged: each column's distinct non-empty values are
// sorted and newline-joined, so a script listed twice contributes one merged
// row.
package inventory

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"
)

// FilenameColumn is the required column naming each script file.
const FilenameColumn = "Filename"

// Sentinel errors returned by the loader.
var (
	ErrOpenWorkbook     = errors.New("open workbook")
	ErrReadWorkbook     = errors.New("read workbook")
	ErrNoFilenameColumn = errors.New("missing Filename column")
)

// Row is one merged inventory row.
type Row struct {
	// Filename is the trimmed name from the first occurrence of this row.
	Filename string
	// Fields maps column names to merged cell values. The Filename column
	// is not repeated here.
	Fields map[string]string
}

// Inventory is the loaded, merged workbook contents.
type Inventory struct {
	byName map[string]*Row
	rows   []*Row
}

// New builds an Inventory from already-merged rows, keyed for
// case-insensitive lookup. Later duplicates replace earlier ones.
func New(rows []Row) *Inventory {
	inv := &Inventory{
		byName: make(map[string]*Row, len(rows)),
	}

	for i := range rows {
		row := rows[i]
		inv.rows = append(inv.rows, &row)
		inv.byName[nameKey(row.Filename)] = &row
	}

	return inv
}

// Load reads the workbook at path and returns its merged inventory.
// The workbook handle is closed on all return paths.
func Load(path string) (*Inventory, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenWorkbook, err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadWorkbook, err)
	}

	return fromRows(rows)
}

// fromRows merges raw sheet rows (row 0 = column names) into an Inventory.
func fromRows(rows [][]string) (*Inventory, error) {
	if len(rows) == 0 {
		return nil, ErrNoFilenameColumn
	}

	columns := rows[0]
	nameIdx := -1

	for i, col := range columns {
		if strings.TrimSpace(col) == FilenameColumn {
			nameIdx = i

			break
		}
	}

	if nameIdx < 0 {
		return nil, ErrNoFilenameColumn
	}

	// Collect every value per (filename, column) before merging, preserving
	// the order filenames first appear in.
	type group struct {
		values map[string][]string
		first  string
	}

	groups := map[string]*group{}

	var order []string

	for _, row := range rows[1:] {
		if nameIdx >= len(row) {
			continue
		}

		name := strings.TrimSpace(row[nameIdx])
		if name == "" {
			continue
		}

		key := nameKey(name)

		g, ok := groups[key]
		if !ok {
			g = &group{values: map[string][]string{}, first: name}
			groups[key] = g
			order = append(order, key)
		}

		for i, cell := range row {
			if i == nameIdx || i >= len(columns) {
				continue
			}

			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}

			col := strings.TrimSpace(columns[i])
			g.values[col] = append(g.values[col], cell)
		}
	}

	merged := make([]Row, 0, len(order))

	for _, key := range order {
		g := groups[key]

		fields := make(map[string]string, len(g.values))
		for col, values := range g.values {
			fields[col] = mergeValues(values)
		}

		merged = append(merged, Row{Filename: g.first, Fields: fields})
	}

	return New(merged), nil
}

// mergeValues deduplicates, sorts, and newline-joins cell values.
func mergeValues(values []string) string {
	seen := make(map[string]struct{}, len(values))
	uniq := make([]string, 0, len(values))

	for _, v := range values {
		_, ok := seen[v]
		if ok {
			continue
		}

		seen[v] = struct{}{}
		uniq = append(uniq, v)
	}

	sort.Strings(uniq)

	return strings.Join(uniq, "\n")
}

// Lookup returns the merged row for name, matching case-insensitively.
func (inv *Inventory) Lookup(name string) (*Row, bool) {
	row, ok := inv.byName[nameKey(name)]

	return row, ok
}

// Filenames returns merged filenames in first-seen order.
func (inv *Inventory) Filenames() []string {
	names := make([]string, 0, len(inv.rows))
	for _, row := range inv.rows {
		names = append(names, row.Filename)
	}

	return names
}

// Len returns the number of merged rows.
func (inv *Inventory) Len() int {
	return len(inv.rows)
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
