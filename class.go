package linebreak

// Class is a UAX #14 Line_Break property value.
//
// The zero value is not a valid class. ClassFor returns XX for scalars
// the Unicode data files do not cover.
type Class uint8

// The closed set of Line_Break classes of
// https://www.unicode.org/reports/tr14/#Table1, in name order.
const (
	AI  Class = iota + 1 // Ambiguous (Alphabetic or Ideographic)
	AL                   // Ordinary Alphabetic and Symbol
	B2                   // Break Opportunity Before and After
	BA                   // Break After
	BB                   // Break Before
	BK                   // Mandatory Break
	CB                   // Contingent Break Opportunity
	CJ                   // Conditional Japanese Starter
	CL                   // Close Punctuation
	CM                   // Combining Mark
	CP                   // Close Parenthesis
	CR                   // Carriage Return
	EB                   // Emoji Base
	EM                   // Emoji Modifier
	EX                   // Exclamation/Interrogation
	GL                   // Non-breaking ("Glue")
	H2                   // Hangul LV Syllable
	H3                   // Hangul LVT Syllable
	HL                   // Hebrew Letter
	HY                   // Hyphen
	ID                   // Ideographic
	IN                   // Inseparable
	IS                   // Infix Numeric Separator
	JL                   // Hangul L Jamo
	JT                   // Hangul T Jamo
	JV                   // Hangul V Jamo
	LF                   // Line Feed
	NL                   // Next Line
	NS                   // Nonstarter
	NU                   // Numeric
	OP                   // Open Punctuation
	PO                   // Postfix Numeric
	PR                   // Prefix Numeric
	QU                   // Quotation
	RI                   // Regional Indicator
	SA                   // Complex Context Dependent (South East Asian)
	SG                   // Surrogate
	SP                   // Space
	SY                   // Symbols Allowing Break After
	WJ                   // Word Joiner
	XX                   // Unknown
	ZW                   // Zero Width Space
	ZWJ                  // Zero Width Joiner

	maxClass = ZWJ
)

var classNames = [maxClass + 1]string{
	AI: "AI", AL: "AL", B2: "B2", BA: "BA", BB: "BB", BK: "BK",
	CB: "CB", CJ: "CJ", CL: "CL", CM: "CM", CP: "CP", CR: "CR",
	EB: "EB", EM: "EM", EX: "EX", GL: "GL", H2: "H2", H3: "H3",
	HL: "HL", HY: "HY", ID: "ID", IN: "IN", IS: "IS", JL: "JL",
	JT: "JT", JV: "JV", LF: "LF", NL: "NL", NS: "NS", NU: "NU",
	OP: "OP", PO: "PO", PR: "PR", QU: "QU", RI: "RI", SA: "SA",
	SG: "SG", SP: "SP", SY: "SY", WJ: "WJ", XX: "XX", ZW: "ZW",
	ZWJ: "ZWJ",
}

// String returns the two- or three-letter UAX #14 name of the class.
func (c Class) String() string {
	if c == 0 || c > maxClass {
		return "??"
	}
	return classNames[c]
}

var classesByName = func() map[string]Class {
	m := make(map[string]Class, int(maxClass))
	for c := AI; c <= maxClass; c++ {
		m[classNames[c]] = c
	}
	return m
}()

// ClassByName resolves a UAX #14 class name ("AL", "ZWJ", …) to its
// Class. The second return is false for names outside the closed set.
func ClassByName(name string) (Class, bool) {
	c, ok := classesByName[name]
	return c, ok
}

// classSet is a bitmask over Class, for cheap membership tests in the
// rule predicates.
type classSet uint64

func setOf(classes ...Class) classSet {
	var s classSet
	for _, c := range classes {
		s |= 1 << c
	}
	return s
}

func (s classSet) has(c Class) bool {
	return s&(1<<c) != 0
}
