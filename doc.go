/*
Package linebreak finds line-break opportunities in Unicode text, per
UAX #14 (https://unicode.org/reports/tr14/).

The three entry points answer three questions about a text:

  - [Breaks]: where may or must a line end? Each boundary is reported
    with its kind (required or allowed) and its 1-based code-point
    offset.
  - [Lines]: what are the hard lines? The text is split at required
    breaks only, with the break controls dropped.
  - [LinePositions]: both at once, each hard line paired with the
    offsets where a wrapping layout may split it.

	lines, _ := linebreak.LinePositions("hello,\nyou cruel, cruel world")
	// [{hello, []} {you cruel, cruel world [4 11 17]}]

# Tailoring

UAX #14 sanctions replacing individual rules and reclassifying
individual characters. Both hooks live on [Breaker]: Rules is an
ordered cascade editable with [RuleSet.Replace] and [RuleSet.Remove],
and Classifier adjusts the class a scalar resolves to. The required
rules (hard breaks, spaces, combining marks, glue) always run first and
cannot be edited.

	rules, _ := linebreak.DefaultRules().Replace(linebreak.RuleLB13, myLB13)
	b := linebreak.Breaker{Rules: rules}

The conformance suite exercises exactly this surface: it swaps rules
LB13 and LB25 for the numeric-aware variants of UAX #14 §8.2 and then
reproduces the published LineBreakTest.txt boundaries.

Classification data is generated from LineBreak.txt by internal/gen.
The ucd subpackage parses the same file format at runtime, for callers
that need the neighboring properties (scripts, East Asian width, and
so on).
*/
package linebreak
