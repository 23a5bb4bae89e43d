package inventory_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/seradco/scriptaudit/inventory"
)

// writeWorkbook saves rows (row 0 = column names) as an xlsx file and
// returns its path.
func writeWorkbook(t *testing.T, rows [][]string) string {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)

	for r, row := range rows {
		for c, cell := range row {
			name, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, name, cell))
		}
	}

	path := filepath.Join(t.TempDir(), "inventory.xlsx")
	require.NoError(t, f.SaveAs(path))

	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeWorkbook(t, [][]string{
		{"Filename", "Excel_ID", "Excel_Author"},
		{"alpha.py", "TC-1", "Jane"},
		{"beta.py", "TC-2", "Sam"},
	})

	inv, err := inventory.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, inv.Len())
	assert.Equal(t, []string{"alpha.py", "beta.py"}, inv.Filenames())

	row, ok := inv.Lookup("alpha.py")
	require.True(t, ok)
	assert.Equal(t, "alpha.py", row.Filename)
	assert.Equal(t, map[string]string{
		"Excel_ID":     "TC-1",
		"Excel_Author": "Jane",
	}, row.Fields)
}

func TestLoadMergesDuplicateFilenames(t *testing.T) {
	t.Parallel()

	path := writeWorkbook(t, [][]string{
		{"Filename", "Excel_ID", "Excel_Author"},
		{"alpha.py", "TC-1", "Jane"},
		{"ALPHA.py", "TC-2", "Jane"},
		{"  alpha.py ", "TC-1", ""},
	})

	inv, err := inventory.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, inv.Len())

	row, ok := inv.Lookup("Alpha.PY")
	require.True(t, ok)
	// First occurrence's spelling is kept.
	assert.Equal(t, "alpha.py", row.Filename)
	// Distinct values sorted and newline-joined; duplicates collapse.
	assert.Equal(t, "TC-1\nTC-2", row.Fields["Excel_ID"])
	assert.Equal(t, "Jane", row.Fields["Excel_Author"])
}

func TestLoadMissingFilenameColumn(t *testing.T) {
	t.Parallel()

	path := writeWorkbook(t, [][]string{
		{"Name", "Excel_ID"},
		{"alpha.py", "TC-1"},
	})

	_, err := inventory.Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, inventory.ErrNoFilenameColumn))
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := inventory.Load(filepath.Join(t.TempDir(), "absent.xlsx"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, inventory.ErrOpenWorkbook))
}

func TestLookupUnknown(t *testing.T) {
	t.Parallel()

	inv := inventory.New([]inventory.Row{
		{Filename: "alpha.py", Fields: map[string]string{"Excel_ID": "TC-1"}},
	})

	_, ok := inv.Lookup("missing.py")
	assert.False(t, ok)
}
