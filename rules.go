package linebreak

import "github.com/pkg/errors"

// A Rule is a pure pair predicate: given the classes left and right of
// a candidate boundary it returns a Verdict, or NoOpinion to pass the
// decision to the next rule in the cascade.
type Rule func(left, right Class) Verdict

// A RuleSet is the ordered cascade of tailorable rules. The required
// rules (LB4–LB12) always run first and cannot be edited; the first
// rule to return a verdict other than NoOpinion wins, and LB31 allows
// the break when no rule speaks.
//
// RuleSet is a value: edits return a new set and leave the receiver
// untouched, so sets can be shared freely once constructed.
type RuleSet struct {
	rules []Rule
}

// Indices of the default tailorable rules, for use with Replace and
// Remove. The conformance suite replaces RuleLB13 and RuleLB25 with
// numeric-aware variants.
const (
	RuleLB12a = iota
	RuleLB13
	RuleLB14
	RuleLB15
	RuleLB16
	RuleLB17
	RuleLB18
	RuleLB19
	RuleLB20
	RuleLB21
	RuleLB21b
	RuleLB22
	RuleLB23
	RuleLB24
	RuleLB25
	RuleLB26
	RuleLB27
	RuleLB28
	RuleLB29
	RuleLB30
	RuleLB30a
	RuleLB30b
)

// DefaultRules returns the tailorable cascade in standard order,
// LB12a through LB30b.
func DefaultRules() RuleSet {
	return RuleSet{rules: []Rule{
		lb12a, lb13, lb14, lb15, lb16, lb17, lb18, lb19, lb20, lb21,
		lb21b, lb22, lb23, lb24, lb25, lb26, lb27, lb28, lb29, lb30,
		lb30a, lb30b,
	}}
}

// Len reports the number of tailorable rules in the set.
func (rs RuleSet) Len() int {
	return len(rs.rules)
}

// Replace returns a copy of the set with the rule at index i replaced.
// Rule identity is positional: locate rules by the indices of
// DefaultRules (RuleLB13 and friends), not by comparing functions.
func (rs RuleSet) Replace(i int, r Rule) (RuleSet, error) {
	if i < 0 || i >= len(rs.rules) {
		return RuleSet{}, errors.Wrapf(ErrInvalidTailoring, "replace rule %d of %d", i, len(rs.rules))
	}
	if r == nil {
		return RuleSet{}, errors.Wrap(ErrInvalidTailoring, "replace with nil rule")
	}
	tracer().P("rule", i).Debugf("tailoring: replacing rule")
	out := make([]Rule, len(rs.rules))
	copy(out, rs.rules)
	out[i] = r
	return RuleSet{rules: out}, nil
}

// Remove returns a copy of the set without the rule at index i.
func (rs RuleSet) Remove(i int) (RuleSet, error) {
	if i < 0 || i >= len(rs.rules) {
		return RuleSet{}, errors.Wrapf(ErrInvalidTailoring, "remove rule %d of %d", i, len(rs.rules))
	}
	tracer().P("rule", i).Debugf("tailoring: removing rule")
	out := make([]Rule, 0, len(rs.rules)-1)
	out = append(out, rs.rules[:i]...)
	out = append(out, rs.rules[i+1:]...)
	return RuleSet{rules: out}, nil
}

// or returns the default cascade when the receiver is the zero value.
func (rs RuleSet) or(def func() RuleSet) RuleSet {
	if rs.rules == nil {
		return def()
	}
	return rs
}

var (
	hardBreaks    = setOf(BK, CR, LF, NL)
	noChainAnchor = setOf(BK, CR, LF, NL, SP, ZW)
)

// requiredVerdict encodes the non-tailorable rules: LB4–LB8a, the
// chain-tail half of LB9/LB10, LB11 and LB12. It runs before the
// tailorable cascade and its verdicts are final.
func requiredVerdict(left, right Class) Verdict {
	// https://www.unicode.org/reports/tr14/#LB4
	// https://www.unicode.org/reports/tr14/#LB5
	// Break after hard break characters; CR LF stays together.
	if left == BK || left == LF || left == NL {
		return Required
	}
	if left == CR && right != LF {
		return Required
	}

	// https://www.unicode.org/reports/tr14/#LB6
	// No break before a hard break character (CR × LF included).
	if hardBreaks.has(right) {
		return Prohibited
	}

	// https://www.unicode.org/reports/tr14/#LB7
	if right == SP || right == ZW {
		return Prohibited
	}

	// https://www.unicode.org/reports/tr14/#LB8
	// Break after ZW (the driver funnels ZW SP* here via the carry).
	if left == ZW {
		return Allowed
	}

	// https://www.unicode.org/reports/tr14/#LB8a
	if left == ZWJ && (right == ID || right == EB || right == EM) {
		return Prohibited
	}

	// https://www.unicode.org/reports/tr14/#LB9
	// A CM or ZWJ attaches to any base that can anchor a chain.
	if (right == CM || right == ZWJ) && !noChainAnchor.has(left) {
		return Prohibited
	}

	// https://www.unicode.org/reports/tr14/#LB11
	if left == WJ || right == WJ {
		return Prohibited
	}

	// https://www.unicode.org/reports/tr14/#LB12
	if left == GL {
		return Prohibited
	}

	return NoOpinion
}

// The default tailorable rules. Each is the pair form of the
// correspondingly numbered rule in https://www.unicode.org/reports/tr14/#Algorithm.

var lb12aExempt = setOf(SP, BA, HY)

func lb12a(left, right Class) Verdict {
	// [^SP BA HY] × GL
	if right == GL && !lb12aExempt.has(left) {
		return Prohibited
	}
	return NoOpinion
}

var lb13Closers = setOf(CL, CP, EX, IS, SY)

func lb13(left, right Class) Verdict {
	// × CL, × CP, × EX, × IS, × SY
	if lb13Closers.has(right) {
		return Prohibited
	}
	return NoOpinion
}

func lb14(left, right Class) Verdict {
	// OP SP* × (the SP* run is the driver's carry)
	if left == OP {
		return Prohibited
	}
	return NoOpinion
}

func lb15(left, right Class) Verdict {
	// QU SP* × OP
	if left == QU && right == OP {
		return Prohibited
	}
	return NoOpinion
}

func lb16(left, right Class) Verdict {
	// (CL | CP) SP* × NS
	if (left == CL || left == CP) && right == NS {
		return Prohibited
	}
	return NoOpinion
}

func lb17(left, right Class) Verdict {
	// B2 SP* × B2
	if left == B2 && right == B2 {
		return Prohibited
	}
	return NoOpinion
}

func lb18(left, right Class) Verdict {
	// SP ÷
	if left == SP {
		return Allowed
	}
	return NoOpinion
}

func lb19(left, right Class) Verdict {
	// × QU, QU ×
	if left == QU || right == QU {
		return Prohibited
	}
	return NoOpinion
}

func lb20(left, right Class) Verdict {
	// ÷ CB, CB ÷
	if left == CB || right == CB {
		return Allowed
	}
	return NoOpinion
}

func lb21(left, right Class) Verdict {
	// × BA, × HY, × NS, BB ×
	if right == BA || right == HY || right == NS || left == BB {
		return Prohibited
	}
	return NoOpinion
}

func lb21b(left, right Class) Verdict {
	// SY × HL
	if left == SY && right == HL {
		return Prohibited
	}
	return NoOpinion
}

func lb22(left, right Class) Verdict {
	// × IN
	if right == IN {
		return Prohibited
	}
	return NoOpinion
}

var ideographs = setOf(ID, EB, EM)

func lb23(left, right Class) Verdict {
	// (AL | HL) × NU, NU × (AL | HL)
	if (left == AL || left == HL) && right == NU {
		return Prohibited
	}
	if left == NU && (right == AL || right == HL) {
		return Prohibited
	}
	// PR × (ID | EB | EM), (ID | EB | EM) × PO
	if left == PR && ideographs.has(right) {
		return Prohibited
	}
	if ideographs.has(left) && right == PO {
		return Prohibited
	}
	return NoOpinion
}

func lb24(left, right Class) Verdict {
	// (PR | PO) × (AL | HL), (AL | HL) × (PR | PO)
	if (left == PR || left == PO) && (right == AL || right == HL) {
		return Prohibited
	}
	if (left == AL || left == HL) && (right == PR || right == PO) {
		return Prohibited
	}
	return NoOpinion
}

var lb25BeforeNU = setOf(HY, IS, NU, SY)

func lb25(left, right Class) Verdict {
	// (CL | CP | NU) × (PO | PR)
	if (left == CL || left == CP || left == NU) && (right == PO || right == PR) {
		return Prohibited
	}
	// (PO | PR) × (OP | NU)
	if (left == PO || left == PR) && (right == OP || right == NU) {
		return Prohibited
	}
	// (HY | IS | NU | SY) × NU
	if right == NU && lb25BeforeNU.has(left) {
		return Prohibited
	}
	return NoOpinion
}

var (
	lb26AfterJL = setOf(JL, JV, H2, H3)
	lb26AfterJV = setOf(JV, JT)
	hangul      = setOf(JL, JV, JT, H2, H3)
)

func lb26(left, right Class) Verdict {
	// JL × (JL | JV | H2 | H3), (JV | H2) × (JV | JT), (JT | H3) × JT
	if left == JL && lb26AfterJL.has(right) {
		return Prohibited
	}
	if (left == JV || left == H2) && lb26AfterJV.has(right) {
		return Prohibited
	}
	if (left == JT || left == H3) && right == JT {
		return Prohibited
	}
	return NoOpinion
}

func lb27(left, right Class) Verdict {
	// (JL | JV | JT | H2 | H3) × PO, PR × (JL | JV | JT | H2 | H3)
	if hangul.has(left) && right == PO {
		return Prohibited
	}
	if left == PR && hangul.has(right) {
		return Prohibited
	}
	return NoOpinion
}

func lb28(left, right Class) Verdict {
	// (AL | HL) × (AL | HL)
	if (left == AL || left == HL) && (right == AL || right == HL) {
		return Prohibited
	}
	return NoOpinion
}

func lb29(left, right Class) Verdict {
	// IS × (AL | HL)
	if left == IS && (right == AL || right == HL) {
		return Prohibited
	}
	return NoOpinion
}

func lb30(left, right Class) Verdict {
	// (AL | HL | NU) × OP, CP × (AL | HL | NU). The published rule
	// exempts OP and CP with East_Asian_Width F, W or H; a pair
	// predicate sees only classes, so fullwidth brackets are treated
	// like the rest. Load EastAsianWidth.txt through the ucd package
	// and reclassify via the Classifier hook to restore the exemption.
	if (left == AL || left == HL || left == NU) && right == OP {
		return Prohibited
	}
	if left == CP && (right == AL || right == HL || right == NU) {
		return Prohibited
	}
	return NoOpinion
}

func lb30a(left, right Class) Verdict {
	// RI × RI. The pairwise cascade keeps no count of preceding RI, so
	// flag pairs are never split; the even/odd refinement of the
	// published rule needs driver memory this engine does not carry.
	if left == RI && right == RI {
		return Prohibited
	}
	return NoOpinion
}

func lb30b(left, right Class) Verdict {
	// EB × EM
	if left == EB && right == EM {
		return Prohibited
	}
	return NoOpinion
}
