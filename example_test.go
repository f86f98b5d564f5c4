package linebreak_test

import (
	"fmt"

	"github.com/clipperhouse/linebreak"
)

func ExampleBreaks() {
	breaks, _ := linebreak.Breaks("hello,\ncruel world")
	for _, b := range breaks {
		fmt.Println(b.Kind, b.Index)
	}
	// Output:
	// required 7
	// allowed 13
}

func ExampleLines() {
	lines, _ := linebreak.Lines("hello,\nyou cruel, cruel world")
	for _, line := range lines {
		fmt.Printf("%q\n", line)
	}
	// Output:
	// "hello,"
	// "you cruel, cruel world"
}

func ExampleLinePositions() {
	lines, _ := linebreak.LinePositions("hello,\nyou cruel, cruel world")
	for _, line := range lines {
		fmt.Printf("%q %v\n", line.Text, line.Breaks)
	}
	// Output:
	// "hello," []
	// "you cruel, cruel world" [4 11 17]
}

func ExampleRuleSet_Replace() {
	// Never break on either side of a hyphen: replace LB21 with a
	// variant that looks only at HY (it drops LB21's BA, NS and BB cases).
	noBreak := func(left, right linebreak.Class) linebreak.Verdict {
		if left == linebreak.HY || right == linebreak.HY {
			return linebreak.Prohibited
		}
		return linebreak.NoOpinion
	}
	rules, _ := linebreak.DefaultRules().Replace(linebreak.RuleLB21, noBreak)

	breaks, _ := linebreak.Breaker{Rules: rules}.Breaks("well-known")
	fmt.Println(len(breaks))
	// Output:
	// 0
}
