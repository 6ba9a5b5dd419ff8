package evaltable

import (
	"errors"
	"fmt"
	"strings"

	"github.com/stacklab/bracelet/classifier"
	"github.com/stacklab/bracelet/deck"
)

// Sentinel errors for table construction.
var (
	// ErrCodeCount is returned when the name list does not hold exactly
	// four entries.
	ErrCodeCount = errors.New("evaltable: exactly four classifier names required")

	// ErrDuplicateCode is returned when a classifier name appears more
	// than once.
	ErrDuplicateCode = errors.New("evaltable: classifier names must be unique")
)

const (
	// codeCount is the fixed number of classifiers per table.
	codeCount = 4
	// patternCount enumerates every polarity combination of codeCount bits.
	patternCount = 1 << codeCount
	// highBit is the polarity bit of the first classifier.
	highBit = 1 << (codeCount - 1)
)

// Table is the evaluation table for four classifiers: one row per
// polarity pattern, listing the full names of the ranks that satisfy
// the pattern.
type Table struct {
	// Codes holds the four classifier names in caller order; the first
	// name owns the most significant polarity bit.
	Codes [codeCount]string

	// Rows maps each pattern 0..15 to the ordered rank names that
	// satisfy it. An empty row renders as NONE.
	Rows [patternCount][]string
}

// ParseCodes splits a comma-delimited argument into classifier names,
// validating count and uniqueness before any lookup or computation.
// The argument is trimmed and upper-cased as a whole; per the CLI
// contract it carries no spaces between names.
func ParseCodes(arg string) ([]string, error) {
	names := strings.Split(strings.ToUpper(strings.TrimSpace(arg)), ",")
	if len(names) != codeCount {
		return nil, fmt.Errorf("%w: got %d", ErrCodeCount, len(names))
	}
	seen := make(map[string]bool, codeCount)
	for _, name := range names {
		if seen[name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCode, name)
		}
		seen[name] = true
	}
	return names, nil
}

// Build resolves the four names against the catalog and fills the
// table. Validation (count, uniqueness, catalog membership) completes
// before any enumeration.
func Build(names ...string) (*Table, error) {
	if len(names) != codeCount {
		return nil, fmt.Errorf("%w: got %d", ErrCodeCount, len(names))
	}
	var cls [codeCount]classifier.Classifier
	seen := make(map[string]bool, codeCount)
	for i, name := range names {
		c, err := classifier.Lookup(name)
		if err != nil {
			return nil, err
		}
		if seen[c.Name()] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCode, c.Name())
		}
		seen[c.Name()] = true
		cls[i] = c
	}

	t := &Table{}
	for i, c := range cls {
		t.Codes[i] = c.Name()
	}
	for pattern := 0; pattern < patternCount; pattern++ {
		for _, rank := range deck.Ranks {
			if rankMatches(cls, pattern, rank) {
				t.Rows[pattern] = append(t.Rows[pattern], rank.Name())
			}
		}
	}
	return t, nil
}

// rankMatches reports whether the rank satisfies all four classifiers
// with the polarities of pattern: a set bit demands membership, a
// clear bit demands non-membership.
func rankMatches(cls [codeCount]classifier.Classifier, pattern int, rank deck.Rank) bool {
	bit := highBit
	for _, c := range cls {
		match := c.MatchesRank(rank)
		if pattern&bit == 0 {
			match = !match
		}
		if !match {
			return false
		}
		bit >>= 1
	}
	return true
}

// Render returns the fixed-width text table: a header naming the four
// codes, one row per polarity pattern, and NONE for patterns no rank
// satisfies.
func (t *Table) Render() string {
	const rule = "----------------------------"
	var b strings.Builder
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "%3s  %3s  %3s  %3s   Card Values\n",
		t.Codes[0], t.Codes[1], t.Codes[2], t.Codes[3])
	b.WriteString(rule + "\n")
	for pattern := 0; pattern < patternCount; pattern++ {
		names := "NONE"
		if len(t.Rows[pattern]) > 0 {
			names = strings.Join(t.Rows[pattern], ", ")
		}
		fmt.Fprintf(&b, "%3d  %3d  %3d  %3d   %s\n",
			pattern>>3&1, pattern>>2&1, pattern>>1&1, pattern&1, names)
	}
	return b.String()
}
