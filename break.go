package linebreak

import "unicode/utf8"

// A Break is one non-prohibited boundary. Index counts the code points
// to the left of the boundary; Kind is Required or Allowed.
type Break struct {
	Kind  Verdict
	Index int
}

// A Line is a hard line together with the offsets, in code points
// relative to the line's start, at which a soft break is allowed.
type Line struct {
	Text   string
	Breaks []int
}

// A Breaker finds line-break opportunities. The zero value uses the
// default classifier and rule set; set Classifier or Rules to tailor.
// A Breaker holds no per-call state and is safe to share once
// constructed.
type Breaker struct {
	Classifier Classifier
	Rules      RuleSet
}

// Breaks returns every non-prohibited boundary of text, in order.
// Indices are 1-based code-point offsets, strictly increasing, and
// always inside the text: no boundary is reported at the start or at
// the end.
func (b Breaker) Breaks(text string) ([]Break, error) {
	if !utf8.ValidString(text) {
		return nil, ErrInvalidEncoding
	}

	runes := []rune(text)
	if len(runes) < 2 {
		return nil, nil
	}
	tracer().P("len", len(runes)).Debugf("scanning for break opportunities")

	d := decider{rules: b.Rules.or(DefaultRules)}
	var breaks []Break

	left := b.classify(runes[0])
	for i := 1; i < len(runes); i++ {
		right := b.classify(runes[i])
		switch v := d.step(left, right); v {
		case Required, Allowed:
			breaks = append(breaks, Break{Kind: v, Index: i})
		}
		left = right
	}
	return breaks, nil
}

// Lines splits text at required boundaries only. The break control is
// dropped from the end of each line (CR LF counts as one control), and
// an empty trailing line is suppressed.
func (b Breaker) Lines(text string) ([]string, error) {
	segments, err := b.LinePositions(text)
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, seg := range segments {
		lines = append(lines, seg.Text)
	}
	return lines, nil
}

// LinePositions splits text at required boundaries and pairs each hard
// line with its allowed soft-break offsets, relative to the line's
// start.
func (b Breaker) LinePositions(text string) ([]Line, error) {
	breaks, err := b.Breaks(text)
	if err != nil {
		return nil, err
	}

	runes := []rune(text)
	var out []Line
	start := 0
	var soft []int

	for _, br := range breaks {
		if br.Kind != Required {
			soft = append(soft, br.Index-start)
			continue
		}
		out = append(out, Line{Text: b.trimBreak(runes[start:br.Index]), Breaks: soft})
		start = br.Index
		soft = nil
	}

	if start < len(runes) {
		if last := b.trimBreak(runes[start:]); last != "" || len(soft) > 0 {
			out = append(out, Line{Text: last, Breaks: soft})
		}
	}
	return out, nil
}

// classify resolves a scalar through the table, LB1 and the custom
// classifier hook.
func (b Breaker) classify(r rune) Class {
	c := Resolve(r, ClassFor(r))
	if b.Classifier != nil {
		c = b.Classifier(r, c)
	}
	return c
}

// trimBreak drops the break control that signalled the line's end:
// one trailing BK, NL, CR or LF, with CR LF removed as a unit.
func (b Breaker) trimBreak(runes []rune) string {
	n := len(runes)
	if n > 0 {
		switch b.classify(runes[n-1]) {
		case LF:
			n--
			if n > 0 && b.classify(runes[n-1]) == CR {
				n--
			}
		case BK, NL, CR:
			n--
		}
	}
	return string(runes[:n])
}

// Breaks returns every non-prohibited boundary of text using the
// default classifier and rules.
func Breaks(text string) ([]Break, error) {
	return Breaker{}.Breaks(text)
}

// Lines splits text at required boundaries using the default
// classifier and rules.
func Lines(text string) ([]string, error) {
	return Breaker{}.Lines(text)
}

// LinePositions splits text at required boundaries and reports each
// line's allowed soft-break offsets, using the default classifier and
// rules.
func LinePositions(text string) ([]Line, error) {
	return Breaker{}.LinePositions(text)
}
