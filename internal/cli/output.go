package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/rshade/countrytable/internal/country"
	"github.com/rshade/countrytable/internal/pagination"
	"github.com/rshade/countrytable/internal/pipeline"
	"github.com/rshade/countrytable/internal/tui"
)

// OutputFormat selects how list results are written.
type OutputFormat string

// Supported output formats.
const (
	OutputTable OutputFormat = "table"
	OutputJSON  OutputFormat = "json"
	OutputYAML  OutputFormat = "yaml"
)

// ErrUnsupportedFormat is returned for an unknown --output value.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// ParseOutputFormat validates s as an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case OutputTable, OutputJSON, OutputYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (expected table, json or yaml)", ErrUnsupportedFormat, s)
	}
}

// OutputMode is how table output is decorated.
type OutputMode int

const (
	// OutputModePlain writes aligned text, for pipes and files.
	OutputModePlain OutputMode = iota
	// OutputModeStyled writes a bordered lipgloss table.
	OutputModeStyled
)

// DetectOutputMode picks styled output only for a terminal that has not
// opted out of color through NO_COLOR or TERM=dumb.
func DetectOutputMode(w io.Writer) OutputMode {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return OutputModePlain
	}
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor || os.Getenv("TERM") == "dumb" {
		return OutputModePlain
	}
	return OutputModeStyled
}

// terminalWidth returns the width of w when it is a terminal, or fallback.
func terminalWidth(w io.Writer, fallback int) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return fallback
}

// listResult is the structured form of a list run.
type listResult struct {
	Countries  []country.Record `json:"countries"  yaml:"countries"`
	Pagination pagination.Meta  `json:"pagination" yaml:"pagination"`
	SortOrder  string           `json:"sort_order" yaml:"sort_order"`
	Filters    listFilters      `json:"filters"    yaml:"filters"`
}

type listFilters struct {
	Size   string `json:"size"   yaml:"size"`
	Region string `json:"region" yaml:"region"`
}

func newListResult(v pipeline.View) listResult {
	return listResult{
		Countries:  v.Rows,
		Pagination: v.Meta(),
		SortOrder:  v.SortOrder.String(),
		Filters:    listFilters{Size: v.SizeFilterText, Region: v.RegionFilterText},
	}
}

// renderView writes v in the requested format.
func renderView(w io.Writer, format OutputFormat, v pipeline.View, formatter country.AreaFormatter) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newListResult(v))
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2) //nolint:mnd // Two-space YAML indentation.
		if err := enc.Encode(newListResult(v)); err != nil {
			return err
		}
		return enc.Close()
	case OutputTable:
		if DetectOutputMode(w) == OutputModeStyled {
			return renderStyledTable(w, v, formatter)
		}
		return renderPlainTable(w, v, formatter)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

const tabPadding = 2

// renderPlainTable writes an aligned text table followed by the page strip.
func renderPlainTable(w io.Writer, v pipeline.View, formatter country.AreaFormatter) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)

	fmt.Fprintln(tw, "Country Name\tRegion\tArea Size")
	fmt.Fprintln(tw, "------------\t------\t---------")
	for _, rec := range v.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", rec.Name, rec.Region, formatter.Cell(rec))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, plainPageStrip(v.PageNumbers, v.CurrentPage))
	fmt.Fprintf(w, "%d of %d countries | %s\n", v.Filtered, v.Total, tui.SortButtonLabel(v.SortOrder.String()))
	return nil
}

// plainPageStrip renders page numbers with the current one in brackets.
func plainPageStrip(pageNumbers []int, current int) string {
	if len(pageNumbers) == 0 {
		return "Pages: none"
	}
	parts := make([]string, len(pageNumbers))
	for i, n := range pageNumbers {
		label := strconv.Itoa(n)
		if n == current {
			label = "[" + label + "]"
		}
		parts[i] = label
	}
	return "Pages: " + strings.Join(parts, " ")
}

// renderStyledTable writes a bordered table using the browser's palette.
func renderStyledTable(w io.Writer, v pipeline.View, formatter country.AreaFormatter) error {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tui.SubtleStyle).
		Headers("Country Name", "Region", "Area Size").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tui.HeaderStyle.Padding(0, 1)
			}
			return tui.ValueStyle.Padding(0, 1)
		})
	for _, rec := range v.Rows {
		t.Row(rec.Name, rec.Region, formatter.Cell(rec))
	}

	const fallbackWidth = 80
	out := lipgloss.JoinVertical(lipgloss.Left,
		tui.HeaderStyle.Render("Country List"),
		lipgloss.NewStyle().MaxWidth(terminalWidth(w, fallbackWidth)).Render(t.String()),
		tui.RenderPageStrip(v.PageNumbers, v.CurrentPage),
		tui.SubtleStyle.Render(fmt.Sprintf("%d of %d countries | %s",
			v.Filtered, v.Total, tui.SortButtonLabel(v.SortOrder.String()))),
	)
	_, err := fmt.Fprintln(w, out)
	return err
}
