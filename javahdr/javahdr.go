// Package javahdr extracts metadata from the header string constant embedded
// in Java test scripts.
//
// The convention it understands is a single concatenated string literal:
//
//	public static String Header =
//	    "id: TC-7\n" +
//	    "author: Jane\n" +
//	    "description: Verify the export job\n";
//
// The literal is reassembled, split on the two-character escape sequence \n,
// and each segment parsed as a first-colon key-value pair. Keys are
// normalized through a caller-supplied map keyed on the lowercased raw key;
// unmapped keys pass through trimmed. Sources without a header constant
// yield an empty mapping.
package javahdr

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// headerMarker begins the header constant declaration.
const headerMarker = "public static String Header"

// ErrReadSource indicates the Java source could not be opened or read.
var ErrReadSource = errors.New("read source")

// Extract reads a Java source from r and returns the metadata parsed from
// its header string constant.
func Extract(r io.Reader, keyMap map[string]string) (map[string]string, error) {
	var (
		lines   []string
		started bool
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()

		if !started {
			started = strings.Contains(line, headerMarker)

			continue
		}

		// The closing `";` ends the literal; keep whatever precedes it on
		// the same line.
		idx := strings.Index(line, `";`)
		if idx >= 0 {
			lines = append(lines, strings.TrimSpace(line[:idx]))

			break
		}

		lines = append(lines, strings.TrimSpace(line))
	}

	err := sc.Err()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadSource, err)
	}

	return parseLiteral(strings.Join(lines, ""), keyMap), nil
}

// ExtractFile opens path, extracts its header constant, and closes the file
// on all return paths.
func ExtractFile(path string, keyMap map[string]string) (map[string]string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is caller-provided input.
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadSource, err)
	}
	defer func() { _ = f.Close() }()

	return Extract(f, keyMap)
}

// parseLiteral strips string-concatenation artifacts from the reassembled
// literal and parses its \n-separated segments as key-value pairs.
func parseLiteral(literal string, keyMap map[string]string) map[string]string {
	literal = strings.NewReplacer(`"+`, "", `"`, "").Replace(literal)

	meta := map[string]string{}

	for _, segment := range strings.Split(literal, `\n`) {
		key, value, found := strings.Cut(segment, ":")
		if !found {
			continue
		}

		meta[normalizeKey(key, keyMap)] = strings.TrimSpace(value)
	}

	return meta
}

func normalizeKey(key string, keyMap map[string]string) string {
	key = strings.TrimSpace(key)

	mapped, ok := keyMap[strings.ToLower(key)]
	if ok {
		return mapped
	}

	return key
}
