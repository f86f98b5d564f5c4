package ucd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `# LineBreak-14.0.0.txt
# © 2021 Unicode®, Inc.

0000..0008;CM # Cc     [9] <control-0000>..<control-0008>
0009;BA       # Cc       <control-0009>
000A;LF       # Cc       <control-000A>
4E00..9FFF;ID
`

func TestParse(t *testing.T) {
	ranges, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, []Range{
		{Lo: 0x0000, Hi: 0x0008, Value: "CM"},
		{Lo: 0x0009, Hi: 0x0009, Value: "BA"},
		{Lo: 0x000A, Hi: 0x000A, Value: "LF"},
		{Lo: 0x4E00, Hi: 0x9FFF, Value: "ID"},
	}, ranges)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"missing separator", "0041 AL\n", "missing ';'"},
		{"empty value", "0041;\n", "malformed entry"},
		{"bad code point", "ZZZZ;AL\n", "invalid code point"},
		{"out of range", "110000;AL\n", "out of range"},
		{"descending range", "0042..0041;AL\n", "descending range"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader("# header\n\n" + tc.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
			assert.Contains(t, err.Error(), "line 3", "errors carry the line number")
		})
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Scripts.txt")
	require.NoError(t, os.WriteFile(path, []byte("0041..005A;Latin\n"), 0o644))

	ranges, err := ParseFile(path)
	require.NoError(t, err)
	require.Len(t, ranges, 1)
	assert.Equal(t, "Latin", ranges[0].Value)

	_, err = ParseFile(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("nonsense\n"), 0o644))
	_, err = ParseFile(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad, "errors carry the source path")
}

func TestTableLookup(t *testing.T) {
	ranges, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	table, err := NewTable(ranges)
	require.NoError(t, err)
	assert.Equal(t, 4, table.Len())

	v, ok := table.Lookup(0x0005)
	assert.True(t, ok)
	assert.Equal(t, "CM", v)

	v, ok = table.Lookup(0x4E2D)
	assert.True(t, ok)
	assert.Equal(t, "ID", v)

	_, ok = table.Lookup(0x0041)
	assert.False(t, ok)

	assert.Equal(t, "XX", table.LookupDefault(0x0041, "XX"))
	assert.Equal(t, "LF", table.LookupDefault(0x000A, "XX"))
}

func TestNewTableRejectsOverlap(t *testing.T) {
	_, err := NewTable([]Range{
		{Lo: 0x0040, Hi: 0x0050, Value: "AL"},
		{Lo: 0x0050, Hi: 0x0060, Value: "ID"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overlapping")
}

func TestNewTableSorts(t *testing.T) {
	table, err := NewTable([]Range{
		{Lo: 0x0100, Hi: 0x01FF, Value: "b"},
		{Lo: 0x0000, Hi: 0x00FF, Value: "a"},
	})
	require.NoError(t, err)

	v, ok := table.Lookup(0x0080)
	assert.True(t, ok)
	assert.Equal(t, "a", v)
}
