package linebreak

// decider runs the rule cascade with the LB7–LB10 state injected around
// it. The only state is the carry: the last significant base class
// across a run of spaces or a combining-mark chain. It is reset at the
// start of each text.
type decider struct {
	rules RuleSet
	carry Class
	has   bool
}

// classify runs the required rules, then the tailorable cascade, and
// falls back to LB31.
func (d *decider) classify(left, right Class) Verdict {
	if v := requiredVerdict(left, right); v != NoOpinion {
		return v
	}
	for _, rule := range d.rules.rules {
		if v := rule(left, right); v != NoOpinion {
			return v
		}
	}
	// https://www.unicode.org/reports/tr14/#LB31
	return Allowed
}

var (
	// Classes whose trailing spaces matter to a later rule (LB8 and
	// LB14–LB17); seeing one before SP anchors the carry.
	spaceAnchors = setOf(OP, QU, CL, CP, B2, ZW)

	// Classes that cannot anchor a combining-mark chain (LB9/LB10).
	chainBreakers = setOf(SP, BK, CR, LF, NL, ZW, CM, ZWJ)
)

func (d *decider) set(c Class) { d.carry, d.has = c, true }

func (d *decider) clear() { d.carry, d.has = 0, false }

func (d *decider) is(c Class) bool { return d.has && d.carry == c }

// step emits the verdict for the boundary between left and right,
// updating the carry. The transitions run in order; the first match
// wins.
func (d *decider) step(left, right Class) Verdict {
	switch {
	case right == SP && spaceAnchors.has(left):
		d.set(left)
		return Prohibited

	case right == SP && (left == CM || left == ZWJ) && d.has && spaceAnchors.has(d.carry):
		return Prohibited

	case (right == CM || right == ZWJ) && !chainBreakers.has(left):
		d.set(left)
		return d.classify(left, CM)

	case left == SP && right == SP:
		return Prohibited

	case (right == CM || right == ZWJ) && (left == CM || left == ZWJ):
		return Prohibited

	case left == ZWJ && !d.has && (right == ID || right == EB || right == EM):
		return d.classify(ZWJ, right)

	case left == ZWJ && !d.has && (right == CM || right == ZWJ):
		d.set(AL)
		return d.classify(AL, right)

	case (left == CM || left == ZWJ) && !d.has:
		// LB10: an orphan CM or ZWJ is treated as AL.
		return d.classify(AL, right)

	case (left == CM || left == ZWJ) && d.has:
		// End of a chain: the base class drives the pair.
		base := d.carry
		d.clear()
		return d.classify(base, right)

	case left == SP && d.is(ZW):
		// LB8 outranks LB18.
		d.clear()
		return d.classify(ZW, right)

	case left == SP && d.is(OP):
		// LB14.
		d.clear()
		return Prohibited

	case left == SP && d.is(QU) && right == OP:
		// LB15.
		d.clear()
		return Prohibited

	case left == SP && d.is(CL) && right == NS:
		// LB16.
		d.clear()
		return Prohibited

	case left == SP && d.is(CP) && right == NS:
		// LB16.
		d.clear()
		return Prohibited

	case left == SP && d.is(B2) && right == B2:
		// LB17.
		d.clear()
		return Prohibited

	default:
		return d.classify(left, right)
	}
}
