package country

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// AreaUnit is appended to every rendered area.
const AreaUnit = " sq km"

// missingArea is shown for records without an area.
const missingArea = "-"

// AreaFormatter renders areas with locale-specific digit grouping.
type AreaFormatter struct {
	printer *message.Printer
}

// NewAreaFormatter returns a formatter for tag.
func NewAreaFormatter(tag language.Tag) AreaFormatter {
	return AreaFormatter{printer: message.NewPrinter(tag)}
}

// Number formats v with grouped thousands, keeping any fractional digits
// as returned by the API.
func (f AreaFormatter) Number(v float64) string {
	raw := strconv.FormatFloat(v, 'f', -1, 64)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return raw
	}
	intPart, frac, hasFrac := strings.Cut(raw, ".")
	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return raw
	}
	out := f.printer.Sprintf("%d", n)
	if hasFrac {
		out += "." + frac
	}
	return out
}

// Cell renders the "Area Size" column for r.
func (f AreaFormatter) Cell(r Record) string {
	if r.Area == nil {
		return missingArea
	}
	return f.Number(*r.Area) + AreaUnit
}
