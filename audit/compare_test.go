package audit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seradco/scriptaudit/audit"
	"github.com/seradco/scriptaudit/inventory"
)

var testColumns = map[string]string{
	"Excel_ID":     "ID",
	"Excel_Author": "Author",
}

func TestCompare(t *testing.T) {
	t.Parallel()

	inv := inventory.New([]inventory.Row{
		{Filename: "alpha.py", Fields: map[string]string{
			"Excel_ID":     "TC-1",
			"Excel_Author": "Jane",
		}},
		{Filename: "beta.py", Fields: map[string]string{
			"Excel_ID": "TC-2",
		}},
		{Filename: "gamma.py", Fields: map[string]string{
			"Excel_ID": "TC-3",
		}},
	})

	records := []audit.Record{
		{Filename: "alpha.py", Type: audit.FolderPython, Fields: map[string]string{
			"ID":     "TC-1",
			"Author": "Jane",
		}},
		{Filename: "beta.py", Type: audit.FolderPython, Fields: map[string]string{
			"ID":     "TC-99",
			"Author": "Sam",
		}},
		{Filename: "delta.py", Type: audit.FolderPython, Fields: map[string]string{
			"ID": "TC-4",
		}},
	}

	entries := audit.NewComparator(inv, testColumns).Compare(records)
	byName := map[string]audit.Entry{}

	for _, e := range entries {
		byName[e.Filename] = e
	}

	assert.Len(t, entries, 4)

	alpha := byName["alpha.py"]
	assert.Equal(t, audit.StatusOK, alpha.Status)
	assert.InDelta(t, 100.0, alpha.TitleMatch, 0.001)
	assert.Empty(t, alpha.FileRemarks)
	assert.Empty(t, alpha.InventoryRemarks)

	// beta mismatches on ID and has an Author the inventory lacks.
	beta := byName["beta.py"]
	assert.Equal(t, audit.StatusMissingMismatch, beta.Status)
	assert.Equal(t, []string{"Author: missing"}, beta.InventoryRemarks)
	assert.Equal(t, []string{"ID: mismatch"}, beta.FileRemarks)

	delta := byName["delta.py"]
	assert.Equal(t, audit.StatusNotInInventory, delta.Status)
	assert.Zero(t, delta.TitleMatch)

	gamma := byName["gamma.py"]
	assert.Equal(t, audit.StatusFileNotFound, gamma.Status)
}

func TestCompareMissingFieldInFile(t *testing.T) {
	t.Parallel()

	inv := inventory.New([]inventory.Row{
		{Filename: "alpha.py", Fields: map[string]string{
			"Excel_ID":     "TC-1",
			"Excel_Author": "Jane",
		}},
	})

	records := []audit.Record{
		{Filename: "alpha.py", Type: audit.FolderPython, Fields: map[string]string{
			"ID": "TC-1",
		}},
	}

	entries := audit.NewComparator(inv, testColumns).Compare(records)
	assert.Len(t, entries, 1)
	assert.Equal(t, audit.StatusMismatch, entries[0].Status)
	assert.Equal(t, []string{"Author: missing"}, entries[0].FileRemarks)
}

func TestCompareFilenameCaseInsensitive(t *testing.T) {
	t.Parallel()

	inv := inventory.New([]inventory.Row{
		{Filename: "Alpha.PY", Fields: map[string]string{"Excel_ID": "TC-1"}},
	})

	records := []audit.Record{
		{Filename: "alpha.py", Type: audit.FolderPython, Fields: map[string]string{
			"ID": "TC-1",
		}},
	}

	entries := audit.NewComparator(inv, testColumns).Compare(records)
	assert.Len(t, entries, 1)
	assert.Equal(t, audit.StatusOK, entries[0].Status)
	// Case differences do not reduce the similarity score.
	assert.InDelta(t, 100.0, entries[0].TitleMatch, 0.001)
}

func TestSimilarity(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 100.0, audit.Similarity("alpha.py", "ALPHA.py"), 0.001)
	assert.Zero(t, audit.Similarity("abc", "xyz"))

	partial := audit.Similarity("alpha.py", "alpha_v2.py")
	assert.Greater(t, partial, 0.0)
	assert.Less(t, partial, 100.0)
}
