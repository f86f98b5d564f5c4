package linebreak

import "unicode"

// A Classifier adjusts the class of a scalar after the default LB1
// resolution has run. It is the first tailoring hook: resolved is the
// class the default pipeline assigned, and the return value is the
// class the rule engine will see.
type Classifier func(r rune, resolved Class) Class

// Resolve applies LB1: ambiguous and unassigned classes are rewritten
// to concrete ones before rule evaluation.
//
// https://www.unicode.org/reports/tr14/#LB1
func Resolve(r rune, raw Class) Class {
	switch raw {
	case AI, SG, XX:
		return AL
	case SA:
		// South East Asian scripts without dictionary support: spacing
		// and nonspacing marks stay combining, the rest falls back to AL.
		if unicode.In(r, unicode.Mn, unicode.Mc) {
			return CM
		}
		return AL
	case CJ:
		return NS
	}
	return raw
}

// DefaultClasses is the default classifier: the raw table class with
// LB1 resolution applied. After it runs the stream contains no AI, SG,
// XX, SA or CJ.
func DefaultClasses(r rune) Class {
	return Resolve(r, ClassFor(r))
}
