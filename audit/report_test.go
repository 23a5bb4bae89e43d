package audit_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/seradco/scriptaudit/audit"
)

// readSheet reopens a written report and returns its rows.
func readSheet(t *testing.T, path string) [][]string {
	t.Helper()

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)

	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(audit.ReportSheet)
	require.NoError(t, err)

	return rows
}

func TestWriteReport(t *testing.T) {
	t.Parallel()

	entries := []audit.Entry{
		{
			Filename:   "alpha.py",
			Type:       audit.FolderPython,
			TitleMatch: 100,
			Status:     audit.StatusOK,
			Fields: map[string]string{
				"ID":     "TC-1",
				"Author": "Jane",
			},
		},
		{
			Filename:         "beta.py",
			Type:             audit.FolderPython,
			TitleMatch:       92.31,
			Status:           audit.StatusMissingMismatch,
			FileRemarks:      []string{"ID: mismatch"},
			InventoryRemarks: []string{"Author: missing"},
			Fields: map[string]string{
				"ID":        "TC-99",
				"Objective": "exercise the report",
			},
		},
		{
			Filename: "gamma.py",
			Status:   audit.StatusFileNotFound,
		},
	}

	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, audit.WriteReport(path, entries))

	rows := readSheet(t, path)
	require.Len(t, rows, 4)

	assert.Equal(t, []string{
		"Filename", "FileType", "Title Match %", "Status",
		"File Remarks", "Inventory Remarks",
		"Author", "ID", "Objective",
	}, rows[0])

	assert.Equal(t, []string{
		"alpha.py", "python", "100", "ok", "", "", "Jane", "TC-1",
	}, rows[1])

	assert.Equal(t, []string{
		"beta.py", "python", "92.31", "missing+mismatch",
		"ID: mismatch", "Author: missing",
		"", "TC-99", "exercise the report",
	}, rows[2])

	assert.Equal(t, "gamma.py", rows[3][0])
	assert.Equal(t, "file not found", rows[3][3])
}

func TestWriteReportNoEntries(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, audit.WriteReport(path, nil))

	rows := readSheet(t, path)
	require.Len(t, rows, 1)
	assert.Equal(t, "Filename", rows[0][0])
}
