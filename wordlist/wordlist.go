// Package wordlist reads word lists and letter boards from text sources.
// It is the I/O edge in front of lexicon and wordgrid, which never open
// files themselves.
//
// Both formats are line oriented: surrounding whitespace is trimmed, blank
// lines and lines starting with '#' are skipped. Case folding is opt-in;
// use Fold on boards and queries whenever a list is read WithFold(true).
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// DefaultPath is the system dictionary used when no list is configured.
const DefaultPath = "/usr/share/dict/words"

// Option configures Read and ReadFile.
type Option func(*options)

type options struct {
	fold      bool
	minLength int
}

// WithFold enables Unicode case folding of every word.
func WithFold(on bool) Option {
	return func(o *options) {
		o.fold = on
	}
}

// WithMinLength drops words shorter than n letters.
func WithMinLength(n int) Option {
	return func(o *options) {
		o.minLength = n
	}
}

// Fold returns the Unicode case-folded form of s ("CAFÉ" → "café").
func Fold(s string) string {
	return cases.Fold().String(s)
}

// Read returns the distinct words of r, one per line, in first-seen order.
func Read(r io.Reader, opts ...Option) ([]string, error) {
	var o options
	for _, fn := range opts {
		fn(&o)
	}

	var words []string
	seen := make(map[string]struct{})
	err := scanLines(r, func(line string) {
		if o.fold {
			line = Fold(line)
		}
		if utf8.RuneCountInString(line) < o.minLength {
			return
		}
		if _, ok := seen[line]; ok {
			return
		}
		seen[line] = struct{}{}
		words = append(words, line)
	})
	if err != nil {
		return nil, fmt.Errorf("wordlist: read words: %w", err)
	}

	return words, nil
}

// ReadFile reads the word list stored at path.
func ReadFile(path string, opts ...Option) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist: open %s: %w", path, err)
	}
	defer f.Close()

	words, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return words, nil
}

// ReadBoard returns the rows of a letter board. Whitespace inside a line is
// dropped, so "a a r" and "aar" are the same row. Row lengths are not
// checked here; wordgrid.New does that.
func ReadBoard(r io.Reader) ([]string, error) {
	var rows []string
	err := scanLines(r, func(line string) {
		rows = append(rows, strings.Map(func(c rune) rune {
			if unicode.IsSpace(c) {
				return -1
			}
			return c
		}, line))
	})
	if err != nil {
		return nil, fmt.Errorf("wordlist: read board: %w", err)
	}

	return rows, nil
}

// ReadBoardFile reads the board stored at path.
func ReadBoardFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist: open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := ReadBoard(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return rows, nil
}

// scanLines calls fn with every trimmed, non-blank, non-comment line.
func scanLines(r io.Reader, fn func(string)) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fn(line)
	}

	return sc.Err()
}
