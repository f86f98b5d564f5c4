package linebreak

import "testing"

func TestClassForTotality(t *testing.T) {
	for r := rune(0); r <= 0x10FFFF; r++ {
		c := ClassFor(r)
		if c < AI || c > maxClass {
			t.Fatalf("ClassFor(%#U) = %d, outside the closed class set", r, c)
		}
	}
}

func TestClassForSpotChecks(t *testing.T) {
	tests := []struct {
		r    rune
		want Class
	}{
		{'a', AL},
		{'A', AL},
		{'0', NU},
		{' ', SP},
		{'\t', BA},
		{'\n', LF},
		{'\r', CR},
		{'!', EX},
		{'"', QU},
		{'$', PR},
		{'%', PO},
		{'(', OP},
		{')', CP},
		{',', IS},
		{'-', HY},
		{'/', SY},
		{'{', OP},
		{'}', CL},
		{0x0085, NL},
		{0x00A0, GL},     // no-break space
		{0x0308, CM},     // combining diaeresis
		{0x05D0, HL},     // alef
		{0x0E01, SA},     // ko kai
		{0x1100, JL},     // hangul choseong kiyeok
		{0x1160, JV},     // hangul jungseong filler
		{0x11A8, JT},     // hangul jongseong kiyeok
		{0x2014, B2},     // em dash
		{0x2026, IN},     // horizontal ellipsis
		{0x2028, BK},     // line separator
		{0x200B, ZW},     // zero width space
		{0x200D, ZWJ},    // zero width joiner
		{0x2060, WJ},     // word joiner
		{0x231A, ID},     // watch
		{0x3001, CL},     // ideographic comma
		{0x3041, CJ},     // small hiragana a
		{0x4E00, ID},     // CJK unified ideograph
		{0xAC00, H2},     // hangul syllable GA
		{0xAC01, H3},     // hangul syllable GAG
		{0xD800, SG},     // surrogate half
		{0xFFFC, CB},     // object replacement
		{0x1F1E6, RI},    // regional indicator A
		{0x1F3FB, EM},    // emoji modifier fitzpatrick 1-2
		{0x1F466, EB},    // boy
		{0x10FFFF, XX},   // unassigned
		{0xE000, XX},     // private use
	}
	for _, tc := range tests {
		if got := ClassFor(tc.r); got != tc.want {
			t.Errorf("ClassFor(%#U) = %s, want %s", tc.r, got, tc.want)
		}
	}
}

func TestClassNamesRoundTrip(t *testing.T) {
	for c := AI; c <= maxClass; c++ {
		name := c.String()
		got, ok := ClassByName(name)
		if !ok || got != c {
			t.Errorf("ClassByName(%q) = %s, %v; want %s", name, got, ok, c)
		}
	}
	if _, ok := ClassByName("QQ"); ok {
		t.Error("ClassByName accepted a name outside the closed set")
	}
	if Class(0).String() != "??" {
		t.Errorf("zero class String() = %q", Class(0).String())
	}
}

func BenchmarkClassFor(b *testing.B) {
	runes := []rune("Hello, 世界! नमस्ते 🇦🇺 123.45")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for _, r := range runes {
			ClassFor(r)
		}
	}
}
