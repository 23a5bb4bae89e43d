package audit

import (
	"log/slog"

	"github.com/seradco/scriptaudit/inventory"
)

// Result is the outcome of a full audit run.
type Result struct {
	Entries []Entry
	// Scanned is the number of script files whose metadata was extracted.
	Scanned int
}

// Run executes a full audit with the effective configuration cfg: load the
// inventory, scan the configured folders, compare, and (when cfg.Report is
// set) write the report workbook.
func Run(cfg *Config) (*Result, error) {
	inv, err := inventory.Load(cfg.Inventory)
	if err != nil {
		return nil, err
	}

	slog.Debug("loaded inventory",
		slog.String("path", cfg.Inventory),
		slog.Int("rows", inv.Len()))

	records, err := NewScanner(cfg).Scan(cfg.Folders)
	if err != nil {
		return nil, err
	}

	slog.Debug("scanned folders",
		slog.Int("folders", len(cfg.Folders)),
		slog.Int("scripts", len(records)))

	entries := NewComparator(inv, cfg.Columns).Compare(records)

	if cfg.Report != "" {
		err = WriteReport(cfg.Report, entries)
		if err != nil {
			return nil, err
		}
	}

	return &Result{
		Entries: entries,
		Scanned: len(records),
	}, nil
}
