// Package main generates the Line_Break range table and refreshes the
// conformance test data.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"golang.org/x/text/unicode/rangetable"

	"github.com/clipperhouse/linebreak"
	"github.com/clipperhouse/linebreak/ucd"
)

const (
	unicodeVersion      = "14.0.0"
	defaultLineBreakURL = "https://unicode.org/Public/" + unicodeVersion + "/ucd/LineBreak.txt"
	defaultTestURL      = "https://unicode.org/Public/" + unicodeVersion + "/ucd/auxiliary/LineBreakTest.txt"
	outputFilename      = "../../tables.go"
	testdataFilename    = "../../testdata/LineBreakTest.txt"
	cacheDir            = "cache"
)

var versionRE = regexp.MustCompile(`LineBreak-([0-9]+(?:\.[0-9]+)*)\.txt`)

func main() {
	var inputPath string
	var sourceURL string
	var testInputPath string
	var testURL string
	var refresh bool

	flag.StringVar(&inputPath, "input", "", "path to local LineBreak.txt file (optional)")
	flag.StringVar(&sourceURL, "url", defaultLineBreakURL, "LineBreak.txt URL")
	flag.StringVar(&testInputPath, "testinput", "", "path to local LineBreakTest.txt file (optional)")
	flag.StringVar(&testURL, "testurl", defaultTestURL, "LineBreakTest.txt URL")
	flag.BoolVar(&refresh, "refresh", false, "refresh local cache from network")
	flag.Parse()

	content, sourceLabel, err := loadData(inputPath, sourceURL, cachePath("LineBreak.txt"), refresh)
	if err != nil {
		fail(err)
	}

	if extracted := extractVersion(content); extracted != "unknown" && extracted != unicodeVersion {
		fail(fmt.Errorf("LineBreak.txt version mismatch: got %s, expected %s", extracted, unicodeVersion))
	}

	ranges, err := ucd.Parse(bytes.NewReader(content))
	if err != nil {
		fail(err)
	}

	src, err := generateTableSource(ranges, sourceLabel)
	if err != nil {
		fail(err)
	}
	formatted, err := format.Source(src)
	if err != nil {
		fail(fmt.Errorf("format table file: %w", err))
	}
	if err := os.WriteFile(outputFilename, formatted, 0o644); err != nil {
		fail(fmt.Errorf("write %s: %w", outputFilename, err))
	}

	testContent, _, err := loadData(testInputPath, testURL, cachePath("LineBreakTest.txt"), refresh)
	if err != nil {
		fail(err)
	}
	if err := os.MkdirAll(filepath.Dir(testdataFilename), 0o755); err != nil {
		fail(fmt.Errorf("create testdata dir: %w", err))
	}
	if err := os.WriteFile(testdataFilename, testContent, 0o644); err != nil {
		fail(fmt.Errorf("write %s: %w", testdataFilename, err))
	}
}

func loadData(inputPath, sourceURL, cachedPath string, refresh bool) ([]byte, string, error) {
	if inputPath != "" {
		b, err := os.ReadFile(inputPath)
		if err != nil {
			return nil, "", fmt.Errorf("read input file: %w", err)
		}
		return b, inputPath, nil
	}

	if !refresh && cachedPath != "" {
		b, err := os.ReadFile(cachedPath)
		if err == nil {
			return b, cachedPath, nil
		}
		if !os.IsNotExist(err) {
			return nil, "", fmt.Errorf("read cache %s: %w", cachedPath, err)
		}
	}

	resp, err := http.Get(sourceURL)
	if err != nil {
		return nil, "", fmt.Errorf("download %s: %w", sourceURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("download %s: status %s", sourceURL, resp.Status)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read response body: %w", err)
	}

	if cachedPath != "" {
		if err := os.MkdirAll(filepath.Dir(cachedPath), 0o755); err != nil {
			return nil, "", fmt.Errorf("create cache dir for %s: %w", cachedPath, err)
		}
		if err := os.WriteFile(cachedPath, b, 0o644); err != nil {
			return nil, "", fmt.Errorf("write cache %s: %w", cachedPath, err)
		}
	}

	return b, sourceURL, nil
}

func cachePath(filename string) string {
	return filepath.Join(cacheDir, unicodeVersion, filename)
}

func extractVersion(content []byte) string {
	m := versionRE.FindSubmatch(content)
	if len(m) < 2 {
		return "unknown"
	}
	return string(m[1])
}

type classRange struct {
	lo, hi rune
	class  string
}

func generateTableSource(ranges []ucd.Range, sourceLabel string) ([]byte, error) {
	// Collect the runes of each class, then let rangetable compact them.
	runesByClass := map[string][]rune{}
	for _, rng := range ranges {
		if _, ok := linebreak.ClassByName(rng.Value); !ok {
			return nil, fmt.Errorf("unknown Line_Break class %q", rng.Value)
		}
		for r := rng.Lo; r <= rng.Hi; r++ {
			runesByClass[rng.Value] = append(runesByClass[rng.Value], r)
		}
	}

	var out []classRange
	for class, runes := range runesByClass {
		if class == "XX" {
			continue // table default
		}
		rt := rangetable.New(runes...)
		for _, r16 := range rt.R16 {
			out = appendStrided(out, rune(r16.Lo), rune(r16.Hi), rune(r16.Stride), class)
		}
		for _, r32 := range rt.R32 {
			out = appendStrided(out, rune(r32.Lo), rune(r32.Hi), rune(r32.Stride), class)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].lo < out[j].lo })

	buf := bytes.Buffer{}
	fmt.Fprintln(&buf, "// Code generated by internal/gen; DO NOT EDIT.")
	fmt.Fprintf(&buf, "// Source: %s\n", sourceLabel)
	fmt.Fprintf(&buf, "// Unicode LineBreak version: %s\n\n", unicodeVersion)
	fmt.Fprintln(&buf, "package linebreak")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "var lineBreakRanges = [...]classRange{")
	for _, cr := range out {
		fmt.Fprintf(&buf, "{0x%04X, 0x%04X, %s},\n", cr.lo, cr.hi, cr.class)
	}
	fmt.Fprintln(&buf, "}")
	return buf.Bytes(), nil
}

// appendStrided flattens a strided rangetable entry (e.g. the Hangul
// LV syllables, which repeat every 28 code points) into table rows.
func appendStrided(out []classRange, lo, hi, stride rune, class string) []classRange {
	if stride <= 1 {
		return append(out, classRange{lo: lo, hi: hi, class: class})
	}
	for r := lo; r <= hi; r += stride {
		out = append(out, classRange{lo: r, hi: r, class: class})
	}
	return out
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
