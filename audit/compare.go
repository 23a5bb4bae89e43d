package audit

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/agext/levenshtein"

	"github.com/seradco/scriptaudit/inventory"
)

// Status classifies a comparison entry.
type Status string

const (
	// StatusOK means every configured column matched.
	StatusOK Status = "ok"
	// StatusMismatch means at least one script value differs from the
	// inventory.
	StatusMismatch Status = "mismatch"
	// StatusMissing means the inventory has values the script lacks, or
	// vice versa, with no outright mismatches.
	StatusMissing Status = "missing"
	// StatusMissingMismatch combines missing values and mismatches.
	StatusMissingMismatch Status = "missing+mismatch"
	// StatusNotInInventory means the script has no inventory row.
	StatusNotInInventory Status = "not in inventory"
	// StatusFileNotFound means the inventory row has no script on disk.
	StatusFileNotFound Status = "file not found"
)

// Entry is the comparison outcome for one script or inventory row.
type Entry struct {
	Filename string
	Type     FolderType
	// TitleMatch is the filename similarity percentage against the
	// inventory spelling (0 when the script has no inventory row).
	TitleMatch float64
	Status     Status
	// FileRemarks notes fields missing from or mismatching in the script.
	FileRemarks []string
	// InventoryRemarks notes fields the script has but the inventory lacks.
	InventoryRemarks []string
	// Fields is the metadata extracted from the script.
	Fields map[string]string
}

// Comparator matches scanned records against an inventory.
//
// Create instances with [NewComparator].
type Comparator struct {
	inv *inventory.Inventory
	// columns maps inventory column names to extracted field names.
	columns map[string]string
}

// NewComparator creates a Comparator over inv using the given inventory
// column to field name mapping.
func NewComparator(inv *inventory.Inventory, columns map[string]string) *Comparator {
	return &Comparator{
		inv:     inv,
		columns: columns,
	}
}

// Compare produces one entry per scanned record, followed by one
// [StatusFileNotFound] entry per inventory row that no record matched.
func (c *Comparator) Compare(records []Record) []Entry {
	entries := make([]Entry, 0, len(records))
	seen := make(map[string]struct{}, len(records))

	for _, rec := range records {
		entries = append(entries, c.compareRecord(rec))
		seen[strings.ToLower(strings.TrimSpace(rec.Filename))] = struct{}{}
	}

	for _, name := range c.inv.Filenames() {
		_, ok := seen[strings.ToLower(strings.TrimSpace(name))]
		if ok {
			continue
		}

		entries = append(entries, Entry{
			Filename: name,
			Status:   StatusFileNotFound,
		})
	}

	return entries
}

func (c *Comparator) compareRecord(rec Record) Entry {
	entry := Entry{
		Filename: rec.Filename,
		Type:     rec.Type,
		Fields:   rec.Fields,
	}

	row, ok := c.inv.Lookup(rec.Filename)
	if !ok {
		entry.Status = StatusNotInInventory

		return entry
	}

	entry.TitleMatch = Similarity(rec.Filename, row.Filename)

	// Iterate columns in sorted order so remark order is stable.
	columns := make([]string, 0, len(c.columns))
	for col := range c.columns {
		columns = append(columns, col)
	}

	sort.Strings(columns)

	for _, col := range columns {
		field := c.columns[col]
		expected := strings.TrimSpace(row.Fields[col])
		actual := strings.TrimSpace(rec.Fields[field])

		switch {
		case expected != "" && actual == "":
			entry.FileRemarks = append(entry.FileRemarks,
				fmt.Sprintf("%s: missing", field))
		case actual != "" && expected == "":
			entry.InventoryRemarks = append(entry.InventoryRemarks,
				fmt.Sprintf("%s: missing", field))
		case expected != actual:
			entry.FileRemarks = append(entry.FileRemarks,
				fmt.Sprintf("%s: mismatch", field))
		}
	}

	entry.Status = classify(entry.FileRemarks, entry.InventoryRemarks)

	return entry
}

// classify derives a status from which sides have remarks. A mismatch
// remark on the file side dominates a missing remark on the inventory side.
func classify(fileRemarks, invRemarks []string) Status {
	switch {
	case len(fileRemarks) > 0 && len(invRemarks) > 0:
		return StatusMissingMismatch
	case len(fileRemarks) > 0:
		return StatusMismatch
	case len(invRemarks) > 0:
		return StatusMissing
	}

	return StatusOK
}

// Similarity returns the case-insensitive similarity of a and b as a
// percentage rounded to two decimals.
func Similarity(a, b string) float64 {
	sim := levenshtein.Similarity(
		strings.ToLower(a), strings.ToLower(b), levenshtein.NewParams())

	return math.Round(sim*100*100) / 100
}
