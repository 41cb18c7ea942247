package pipeline

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rshade/countrytable/internal/country"
)

// SizeFilterCountry is the only row the size filter applies to.
const SizeFilterCountry = "Lithuania"

// decimalLiteral matches what numeric coercion of user text accepts in
// decimal form: optional sign, digits with an optional fraction, optional exponent.
var decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ApplyFilter returns the records that pass the size and region filters, in
// input order. The two filters are exclusive per record:
//
//  1. sizeText set, the record has an area and is named "Lithuania":
//     keep iff area < NumericValue(sizeText).
//  2. otherwise regionText set and the record has a region:
//     keep iff the regions match case-insensitively.
//  3. otherwise keep.
func ApplyFilter(records []country.Record, sizeText, regionText string) []country.Record {
	threshold := math.NaN()
	if sizeText != "" {
		threshold = NumericValue(sizeText)
	}

	lower := cases.Lower(language.Und)
	region := lower.String(regionText)

	filtered := make([]country.Record, 0, len(records))
	for _, r := range records {
		if keepRecord(r, sizeText, regionText, threshold, region, lower) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func keepRecord(
	r country.Record,
	sizeText, regionText string,
	threshold float64,
	lowerRegion string,
	lower cases.Caser,
) bool {
	if sizeText != "" && r.HasArea() && r.Name == SizeFilterCountry {
		// NaN thresholds compare false.
		return *r.Area < threshold
	}
	if regionText != "" && r.Region != "" {
		return lower.String(r.Region) == lowerRegion
	}
	return true
}

// NumericValue converts filter text to a number using JavaScript's Number()
// rules. Surrounding whitespace is ignored, blank text is 0, and anything
// unparseable is NaN.
func NumericValue(s string) float64 {
	s = strings.TrimFunc(s, isNumericSpace)
	if s == "" {
		return 0
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			n, err := strconv.ParseUint(s[2:], base, 64)
			if errors.Is(err, strconv.ErrRange) {
				return accumulateDigits(s[2:], base)
			}
			if err != nil {
				return math.NaN()
			}
			return float64(n)
		}
	}

	if !decimalLiteral.MatchString(s) {
		return math.NaN()
	}
	// Out-of-range values come back as ±Inf or 0 alongside ErrRange, which
	// is the result we want.
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return v
}

// isNumericSpace reports the runes trimmed around numeric text. The byte
// order mark counts as space there.
func isNumericSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// accumulateDigits evaluates a prefixed literal too large for uint64,
// returning NaN if any digit is invalid for base.
func accumulateDigits(digits string, base int) float64 {
	var v float64
	for _, c := range digits {
		d, err := strconv.ParseUint(string(c), base, 8)
		if err != nil {
			return math.NaN()
		}
		v = v*float64(base) + float64(d)
	}
	return v
}
