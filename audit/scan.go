package audit

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/seradco/scriptaudit/header"
	"github.com/seradco/scriptaudit/javahdr"
)

// ErrScanFolder indicates a folder or one of its scripts could not be read.
var ErrScanFolder = errors.New("scan folder")

// extensions maps folder types to the file extension they select.
var extensions = map[FolderType]string{
	FolderPython: ".py",
	FolderJava:   ".java",
}

// Record is the extracted metadata of one scanned script.
type Record struct {
	Filename string
	Type     FolderType
	Fields   map[string]string
}

// Scanner extracts header metadata from the scripts in configured folders.
//
// Create instances with [NewScanner].
type Scanner struct {
	parser   *header.Parser
	javaKeys map[string]string
}

// NewScanner creates a Scanner using cfg's comment leader and Java key map.
func NewScanner(cfg *Config) *Scanner {
	leader := header.DefaultLeader
	if len(cfg.Leader) > 0 {
		leader = cfg.Leader[0]
	}

	return &Scanner{
		parser:   header.New(header.WithLeader(leader)),
		javaKeys: cfg.JavaKeys,
	}
}

// Scan scans every folder in order and returns the combined records.
func (s *Scanner) Scan(folders []Folder) ([]Record, error) {
	var records []Record

	for _, folder := range folders {
		recs, err := s.ScanFolder(folder)
		if err != nil {
			return nil, err
		}

		records = append(records, recs...)
	}

	return records, nil
}

// ScanFolder lists folder.Path (non-recursively), extracts metadata from
// every file matching the folder type's extension, and returns one record
// per script in directory order.
func (s *Scanner) ScanFolder(folder Folder) ([]Record, error) {
	ext, ok := extensions[folder.Type]
	if !ok {
		return nil, fmt.Errorf("%w: unknown folder type %q", ErrScanFolder, folder.Type)
	}

	entries, err := os.ReadDir(folder.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanFolder, err)
	}

	var records []Record

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ext) {
			continue
		}

		path := filepath.Join(folder.Path, entry.Name())

		var fields map[string]string

		switch folder.Type {
		case FolderPython:
			fields, err = s.parser.ParseFile(path)
		case FolderJava:
			fields, err = javahdr.ExtractFile(path, s.javaKeys)
		}

		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrScanFolder, path, err)
		}

		records = append(records, Record{
			Filename: entry.Name(),
			Type:     folder.Type,
			Fields:   fields,
		})
	}

	return records, nil
}
