package header

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultLeader is the comment-leader character used when no option is given.
const DefaultLeader byte = '#'

// ErrReadSource indicates the underlying source could not be opened or read.
var ErrReadSource = errors.New("read source")

// Parser extracts leading comment-header metadata from text sources.
//
// Create instances with [New]. A Parser holds no per-parse state and is safe
// for concurrent use; each call to [Parser.Parse] builds its own mapping.
type Parser struct {
	leader string
}

// Option configures a Parser.
type Option func(*Parser)

// WithLeader sets the comment-leader character. The default is '#'.
func WithLeader(leader byte) Option {
	return func(p *Parser) {
		p.leader = string(leader)
	}
}

// New creates a Parser with the given options.
func New(opts ...Option) *Parser {
	p := &Parser{
		leader: string(DefaultLeader),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Parse reads r line by line and returns the metadata mapping assembled from
// its leading comment run. A source with no leading comment lines, or none
// containing a colon, yields an empty non-nil mapping.
//
// Read errors are wrapped in [ErrReadSource]; no other error is possible.
func (p *Parser) Parse(r io.Reader) (map[string]string, error) {
	meta := map[string]string{}

	var (
		currentKey string
		haveKey    bool
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(strings.TrimSpace(line), p.leader) {
			break
		}

		// Leader characters are stripped before whitespace, so "## note"
		// and "#note" produce the same content.
		content := strings.TrimSpace(strings.TrimLeft(line, p.leader))

		key, value, found := strings.Cut(content, ":")
		switch {
		case found:
			// Split on the first colon only; a value may itself contain
			// colons. A repeated key overwrites the earlier value.
			currentKey = strings.TrimSpace(key)
			meta[currentKey] = strings.TrimSpace(value)
			haveKey = true

		case haveKey:
			// Continuation line: newline-join onto the current key.
			// Blank content still contributes an empty segment.
			meta[currentKey] += "\n" + content
		}
		// No colon and no key seen yet: the line contributes nothing.
	}

	err := sc.Err()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadSource, err)
	}

	return meta, nil
}

// ParseFile opens path, parses its leading comment header, and closes the
// file on all return paths.
func (p *Parser) ParseFile(path string) (map[string]string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is caller-provided input.
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadSource, err)
	}
	defer func() { _ = f.Close() }()

	return p.Parse(f)
}

// Parse parses r with a default Parser.
func Parse(r io.Reader) (map[string]string, error) {
	return New().Parse(r)
}

// ParseFile parses the file at path with a default Parser.
func ParseFile(path string) (map[string]string, error) {
	return New().ParseFile(path)
}
