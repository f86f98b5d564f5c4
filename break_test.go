package linebreak

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreaks(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Break
	}{
		{
			"empty", "", nil,
		},
		{
			"single code point", "a", nil,
		},
		{
			"required then allowed",
			"hello,\ncruel world",
			[]Break{{Required, 7}, {Allowed, 13}},
		},
		{
			"combining mark attaches to its base",
			"a\u0308b", // LB9, then AL × AL
			nil,
		},
		{
			"crlf is atomic", "\r\n", nil,
		},
		{
			"crlf mid-text",
			"a\r\nb",
			[]Break{{Required, 3}},
		},
		{
			"zwj holds an emoji together",
			"\u200D\u231A", // LB8a: ZWJ × ID
			nil,
		},
		{
			"break after zero width space",
			"a\u200Bb",
			[]Break{{Allowed, 2}},
		},
		{
			"zw space run",
			"a\u200B  b", // LB8: ZW SP* ÷
			[]Break{{Allowed, 4}},
		},
		{
			"no break after open punctuation with spaces",
			"( a", // LB14: OP SP* ×
			nil,
		},
		{
			"spaces do not stack boundaries",
			"a  b",
			[]Break{{Allowed, 3}},
		},
		{
			"hyphenated word",
			"well-known",
			[]Break{{Allowed, 5}},
		},
		{
			"number stays whole",
			"100.50",
			nil,
		},
		{
			"no break before inseparable",
			"—…", // LB22: B2 × IN
			nil,
		},
		{
			"glue is unbreakable",
			"a\u00A0b", // LB12/LB12a
			nil,
		},
		{
			"flag pair",
			"\U0001F1E6\U0001F1FA c", // LB30a: RI × RI
			[]Break{{Allowed, 3}},
		},
		{
			"emoji modifier",
			"\U0001F466\U0001F3FB", // LB30b: EB × EM
			nil,
		},
		{
			"hangul syllable sequence",
			"가각", // LB26 leaves H2 ÷ H3 breakable
			[]Break{{Allowed, 1}},
		},
		{
			"hangul jamo join",
			"\u1100\u1161\u11A8", // JL × JV, JV × JT
			nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Breaks(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBreaksInvalidEncoding(t *testing.T) {
	_, err := Breaks("abc\xFFdef")
	assert.ErrorIs(t, err, ErrInvalidEncoding)

	_, err = Lines(string([]byte{0xC0, 0x80}))
	assert.ErrorIs(t, err, ErrInvalidEncoding)

	_, err = LinePositions("\x80")
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestBreaksDeterministic(t *testing.T) {
	const text = "hello,\nyou cruel, cruel world \U0001F1E6\U0001F1FA 100.50"
	first, err := Breaks(text)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Breaks(text)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestBreaksMonotonic(t *testing.T) {
	texts := []string{
		"hello,\nyou cruel, cruel world",
		"( a ) b ( c )",
		"ä b̈ c̈",
		"100.50 — well-known… “quoted”",
		"가각갂 가 text",
	}
	for _, text := range texts {
		got, err := Breaks(text)
		require.NoError(t, err)
		n := len([]rune(text))
		prev := 0
		for _, br := range got {
			assert.Greater(t, br.Index, prev, "indices must be strictly increasing")
			assert.GreaterOrEqual(t, br.Index, 1)
			assert.Less(t, br.Index, n, "no boundary at or past the end")
			assert.Contains(t, []Verdict{Allowed, Required}, br.Kind)
			prev = br.Index
		}
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single", "a", []string{"a"}},
		{"no breaks", "hello world", []string{"hello world"}},
		{
			"linefeed",
			"hello,\nyou cruel, cruel world",
			[]string{"hello,", "you cruel, cruel world"},
		},
		{"trailing control suppressed", "abc\n", []string{"abc"}},
		{"crlf dropped as a unit", "a\r\nb", []string{"a", "b"}},
		{"next line", "a\u0085b", []string{"a", "b"}},
		{"line separator", "a\u2028b", []string{"a", "b"}},
		{"lone control", "\n", nil},
		{"empty interior line kept", "a\n\nb", []string{"a", "", "b"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Lines(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLinesRoundTrip(t *testing.T) {
	// Concatenating the lines reproduces the text minus the dropped
	// break controls.
	inputs := []string{
		"a\nb\r\nc de",
		"one\ntwo\n",
		"\r\n\r\n",
		"no breaks at all",
	}
	dropControls := func(r rune) rune {
		switch ClassFor(r) {
		case BK, CR, LF, NL:
			return -1
		}
		return r
	}
	for _, input := range inputs {
		lines, err := Lines(input)
		require.NoError(t, err)
		assert.Equal(t, strings.Map(dropControls, input), strings.Join(lines, ""))
	}
}

func TestLinePositions(t *testing.T) {
	got, err := LinePositions("hello,\nyou cruel, cruel world")
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "hello,", got[0].Text)
	assert.Empty(t, got[0].Breaks)
	assert.Equal(t, "you cruel, cruel world", got[1].Text)
	assert.Equal(t, []int{4, 11, 17}, got[1].Breaks)
}

func TestLinePositionsOffsetsAreRelative(t *testing.T) {
	got, err := LinePositions("aa bb\ncc dd\nee ff")
	require.NoError(t, err)

	require.Len(t, got, 3)
	for _, line := range got {
		assert.Equal(t, []int{3}, line.Breaks)
	}
}

func TestCustomClassifier(t *testing.T) {
	// Treat hyphens as glue: "well-known" loses its break opportunity.
	noHyphenBreaks := func(r rune, resolved Class) Class {
		if resolved == HY {
			return GL
		}
		return resolved
	}

	got, err := Breaker{Classifier: noHyphenBreaks}.Breaks("well-known")
	require.NoError(t, err)
	assert.Empty(t, got)

	// The default still breaks after the hyphen.
	got, err = Breaks("well-known")
	require.NoError(t, err)
	assert.Equal(t, []Break{{Allowed, 5}}, got)
}

func TestSpaceCarry(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Break
	}{
		// LB15: QU SP* × OP
		{"quote space open", "” (a)", nil},
		// LB16: (CL | CP) SP* × NS
		{"close space nonstarter", ") ・", nil},
		// LB17: B2 SP* × B2
		{"em dash run", "— —", nil},
		// LB18 still allows the break when no carry rule applies.
		{"plain space", ") a", []Break{{Allowed, 2}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Breaks(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func BenchmarkBreaks(b *testing.B) {
	const text = "The quick (brown) fox — jumps over 100.50 lazy dogs,\nthen rests.\r\n你好，世界。"
	b.ReportAllocs()
	b.SetBytes(int64(len(text)))
	for i := 0; i < b.N; i++ {
		if _, err := Breaks(text); err != nil {
			b.Fatal(err)
		}
	}
}
