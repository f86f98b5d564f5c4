// Package ucd reads the property files of the Unicode character
// database. Every file in the family shares one line format,
//
//	RANGE ; VALUE  # comment
//
// where RANGE is a hex scalar or START..END. That covers LineBreak.txt
// and its neighbors: WordBreakProperty.txt, SentenceBreakProperty.txt,
// Scripts.txt, DerivedBidiClass.txt, VerticalOrientation.txt,
// EastAsianWidth.txt.
package ucd

import (
	"bufio"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// A Range assigns a property value to an inclusive scalar range.
type Range struct {
	Lo, Hi rune
	Value  string
}

// Parse reads property assignments from r. Comment and blank lines are
// ignored. The result preserves file order; use NewTable for lookups.
func Parse(r io.Reader) ([]Range, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024), 1024*1024)

	ranges := make([]Range, 0, 4096)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		rng, err := parseLine(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
		ranges = append(ranges, rng)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scan property file")
	}
	return ranges, nil
}

// ParseFile reads property assignments from the file at path. Errors
// carry the path and, for malformed content, the line number.
func ParseFile(path string) ([]Range, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open property file")
	}
	defer f.Close()

	ranges, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return ranges, nil
}

func parseLine(line string) (Range, error) {
	semi := strings.IndexByte(line, ';')
	if semi == -1 {
		return Range{}, errors.New("missing ';'")
	}

	left := strings.TrimSpace(line[:semi])
	right := strings.TrimSpace(line[semi+1:])
	if i := strings.IndexByte(right, '#'); i >= 0 {
		right = strings.TrimSpace(right[:i])
	}
	if left == "" || right == "" {
		return Range{}, errors.New("malformed entry")
	}

	lo, hi, err := parseRange(left)
	if err != nil {
		return Range{}, err
	}
	return Range{Lo: lo, Hi: hi, Value: right}, nil
}

func parseRange(s string) (rune, rune, error) {
	if strings.Contains(s, "..") {
		parts := strings.SplitN(s, "..", 2)
		lo, err := parseHexRune(parts[0])
		if err != nil {
			return 0, 0, err
		}
		hi, err := parseHexRune(parts[1])
		if err != nil {
			return 0, 0, err
		}
		if hi < lo {
			return 0, 0, errors.Errorf("descending range %q", s)
		}
		return lo, hi, nil
	}

	r, err := parseHexRune(s)
	if err != nil {
		return 0, 0, err
	}
	return r, r, nil
}

func parseHexRune(s string) (rune, error) {
	u, err := strconv.ParseUint(strings.TrimSpace(s), 16, 32)
	if err != nil {
		return 0, errors.Errorf("invalid code point %q", s)
	}
	if u > 0x10FFFF {
		return 0, errors.Errorf("code point out of range %q", s)
	}
	return rune(u), nil
}

// A Table answers code point → property value, the flat map shape every
// file in the family reduces to. Lookups are binary searches over the
// sorted ranges.
type Table struct {
	ranges []Range
}

// NewTable sorts the ranges and verifies they do not overlap.
func NewTable(ranges []Range) (*Table, error) {
	sorted := make([]Range, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Lo < sorted[j].Lo })

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Lo <= sorted[i-1].Hi {
			return nil, errors.Errorf("overlapping ranges %04X..%04X and %04X..%04X",
				sorted[i-1].Lo, sorted[i-1].Hi, sorted[i].Lo, sorted[i].Hi)
		}
	}
	return &Table{ranges: sorted}, nil
}

// Lookup returns the value assigned to r, if any.
func (t *Table) Lookup(r rune) (string, bool) {
	i := sort.Search(len(t.ranges), func(i int) bool { return t.ranges[i].Hi >= r })
	if i < len(t.ranges) && t.ranges[i].Lo <= r {
		return t.ranges[i].Value, true
	}
	return "", false
}

// LookupDefault returns the value assigned to r, or def when the file
// does not cover it (the UCD convention for defaults, e.g. XX for
// Line_Break).
func (t *Table) LookupDefault(r rune, def string) string {
	if v, ok := t.Lookup(r); ok {
		return v
	}
	return def
}

// Len reports the number of ranges in the table.
func (t *Table) Len() int {
	return len(t.ranges)
}
