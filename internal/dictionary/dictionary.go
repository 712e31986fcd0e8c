// Package dictionary loads the term lists that feed the fuzzy-search
// indexes. It is an external collaborator (out of the algorithmic core):
// plain newline-delimited term files, or free text tokenized via an
// Extractor, both reduced to a flat slice of terms.
package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Options configures loading.
type Options struct {
	// Logger receives loading diagnostics (term counts, duplicates
	// dropped). If nil, slog.Default() is used.
	Logger *slog.Logger

	// Extractor tokenizes free text into terms for LoadText. Unused by
	// Load, which treats each line as a term verbatim per §6.3. If nil,
	// LoadText uses NewStandardExtractor().
	Extractor Extractor
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

func (o Options) extractor() Extractor {
	if o.Extractor != nil {
		return o.Extractor
	}
	return NewStandardExtractor()
}

// Load reads a plain UTF-8, newline-delimited term file: one term per line,
// line terminator '\n'. No whitespace is trimmed, so empty lines become
// empty terms and trailing '\r' from CRLF files is preserved verbatim.
func Load(path string, opts Options) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: open %s: %w", path, err)
	}
	defer f.Close()

	terms, err := LoadReader(f, opts)
	if err != nil {
		return nil, fmt.Errorf("dictionary: %s: %w", path, err)
	}
	return terms, nil
}

// LoadReader is Load over an already-open io.Reader.
func LoadReader(r io.Reader, opts Options) ([]string, error) {
	var terms []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	// Split on '\n' only: bufio.ScanLines would also drop a trailing '\r'.
	scanner.Split(func(data []byte, atEOF bool) (int, []byte, error) {
		for i, b := range data {
			if b == '\n' {
				return i + 1, data[:i], nil
			}
		}
		if atEOF && len(data) > 0 {
			return len(data), data, nil
		}
		return 0, nil, nil
	})
	for scanner.Scan() {
		terms = append(terms, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	opts.logger().Debug("loaded dictionary", "terms", len(terms))
	return terms, nil
}

// LoadText tokenizes free text with opts.Extractor (StandardExtractor by
// default) and returns the distinct terms found, in first-seen order.
func LoadText(text string, opts Options) []string {
	tokens := opts.extractor().Extract(text)

	seen := make(map[string]bool, len(tokens))
	terms := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if seen[tok.Term] {
			continue
		}
		seen[tok.Term] = true
		terms = append(terms, tok.Term)
	}

	opts.logger().Debug("extracted terms", "tokens", len(tokens), "distinct", len(terms))
	return terms
}
