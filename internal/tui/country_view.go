package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Screen labels.
const (
	titleText       = "Country List"
	sizeFilterLabel = "Filter by size (smaller than Lithuania):"
	regionLabel     = "Filter by region:"
)

// View renders the current view (Bubble Tea interface).
func (m CountryListModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateLoading:
		return lipgloss.JoinVertical(lipgloss.Left,
			HeaderStyle.Render(titleText),
			m.loadingState.View(),
		)
	case ViewStateList:
		return m.renderListView()
	default:
		return ""
	}
}

func (m CountryListModel) renderListView() string {
	view := m.controller.View()

	sections := []string{
		HeaderStyle.Render(titleText),
		LabelStyle.Render(sizeFilterLabel) + " " + m.sizeInput.View(),
		LabelStyle.Render(regionLabel) + " " + m.regionInput.View(),
		ButtonStyle.Render(SortButtonLabel(view.SortOrder.String())),
		m.table.View(),
		RenderPageStrip(view.PageNumbers, view.CurrentPage),
	}

	if m.fetchErr != nil {
		sections = append(sections, ErrorStyle.Render("Could not load countries: "+m.fetchErr.Error()))
	}

	sections = append(sections, m.renderStatusBar())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m CountryListModel) renderStatusBar() string {
	view := m.controller.View()
	status := fmt.Sprintf("Showing %d of %d countries | %s", view.Filtered, view.Total, helpText)
	return SubtleStyle.Render(status)
}

// SortButtonLabel is the caption of the sort toggle. It names the order the
// next press applies.
func SortButtonLabel(order string) string {
	return "Sort by Name (" + order + ")"
}

// RenderPageStrip lists the page numbers with the current one highlighted.
func RenderPageStrip(pageNumbers []int, current int) string {
	if len(pageNumbers) == 0 {
		return ""
	}
	parts := make([]string, len(pageNumbers))
	for i, n := range pageNumbers {
		label := strconv.Itoa(n)
		if n == current {
			parts[i] = ActivePageStyle.Render(label)
		} else {
			parts[i] = PageStyle.Render(label)
		}
	}
	return strings.Join(parts, " ")
}
