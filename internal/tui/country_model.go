package tui

import (
	"context"
	"errors"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"github.com/rshade/countrytable/internal/country"
	"github.com/rshade/countrytable/internal/logging"
	"github.com/rshade/countrytable/internal/pipeline"
)

// CountriesLoadedMsg carries the outcome of the country fetch.
type CountriesLoadedMsg struct {
	Records []country.Record
	Err     error
}

// inputFocus says which filter input receives keystrokes.
type inputFocus int

const (
	focusNone inputFocus = iota
	focusSize
	focusRegion
)

// CountryListModel is the Bubble Tea model for the interactive country table.
// All controller mutations happen inside Update.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type CountryListModel struct {
	ctx        context.Context
	controller *pipeline.Controller
	provider   country.Provider
	logger     zerolog.Logger
	formatter  country.AreaFormatter

	state    ViewState
	fetching bool
	fetchErr error

	table       table.Model
	sizeInput   textinput.Model
	regionInput textinput.Model
	focus       inputFocus

	// pageEntry holds the digits typed so far for a page jump.
	pageEntry string

	width  int
	height int

	loadingState *LoadingState
}

// NewCountryListModel creates the browser model. When the controller has
// not fetched yet, the model starts in the loading state and Init issues
// the fetch; otherwise it shows the current records straight away.
func NewCountryListModel(
	ctx context.Context,
	controller *pipeline.Controller,
	provider country.Provider,
	locale language.Tag,
) CountryListModel {
	m := CountryListModel{
		ctx:          ctx,
		controller:   controller,
		provider:     provider,
		logger:       logging.ComponentLogger(logging.FromContext(ctx), "tui"),
		formatter:    country.NewAreaFormatter(locale),
		state:        ViewStateList,
		sizeInput:    newFilterInput("e.g. 65300"),
		regionInput:  newFilterInput("e.g. Europe"),
		width:        defaultWidth,
		height:       defaultHeight,
		loadingState: NewLoadingState("Loading countries..."),
	}

	if err := controller.Begin(); err == nil {
		m.state = ViewStateLoading
		m.fetching = true
	} else {
		m.logger.Debug().Ctx(ctx).Err(err).Msg("skipping fetch")
	}

	m.table = m.buildCountryTable()
	m.refreshTable()
	return m
}

func newFilterInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "> "
	ti.CharLimit = 64
	ti.Width = 24
	return ti
}

// Init starts the spinner and the fetch (Bubble Tea interface).
func (m CountryListModel) Init() tea.Cmd {
	if !m.fetching {
		return nil
	}
	return tea.Batch(m.loadingState.Init(), m.fetchCmd())
}

// fetchCmd runs the provider off the event loop and reports back through
// CountriesLoadedMsg.
func (m CountryListModel) fetchCmd() tea.Cmd {
	ctx := m.ctx
	provider := m.provider
	return func() tea.Msg {
		records, err := provider.FetchCountries(ctx)
		return CountriesLoadedMsg{Records: records, Err: err}
	}
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m CountryListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(m.tableHeight())
		return m, nil
	case CountriesLoadedMsg:
		return m.handleCountriesLoaded(msg)
	case tea.KeyMsg:
		if msg.String() == keyCtrlC {
			return m.quit()
		}
	}

	switch m.state {
	case ViewStateLoading:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == keyQuit {
			return m.quit()
		}
		return m, m.loadingState.Update(msg)
	case ViewStateList:
		if m.focus != focusNone {
			return m.handleFilterInput(msg)
		}
		return m.handleListUpdate(msg)
	case ViewStateQuitting:
		return m, nil
	default:
		return m, nil
	}
}

func (m CountryListModel) handleCountriesLoaded(msg CountriesLoadedMsg) (tea.Model, tea.Cmd) {
	m.fetching = false
	err := m.controller.Complete(m.ctx, msg.Records, msg.Err)
	if errors.Is(err, pipeline.ErrInactive) {
		return m, nil
	}
	m.fetchErr = err
	m.state = ViewStateList
	m.refreshTable()
	return m, nil
}

func (m CountryListModel) quit() (tea.Model, tea.Cmd) {
	m.controller.Deactivate()
	m.state = ViewStateQuitting
	return m, tea.Quit
}

func (m CountryListModel) handleFilterInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEnter, keyEsc:
			m.blurInputs()
			return m, nil
		case keyTab:
			if m.focus == focusSize {
				m.focusInput(focusRegion)
			} else {
				m.focusInput(focusSize)
			}
			return m, textinput.Blink
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusSize:
		m.sizeInput, cmd = m.sizeInput.Update(msg)
		m.controller.SetSizeFilter(m.sizeInput.Value())
	case focusRegion:
		m.regionInput, cmd = m.regionInput.Update(msg)
		m.controller.SetRegionFilter(m.regionInput.Value())
	case focusNone:
	}
	m.refreshTable()
	return m, cmd
}

func (m CountryListModel) handleListUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m.handleListKeypress(keyMsg)
}

func (m CountryListModel) handleListKeypress(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	view := m.controller.View()

	key := keyMsg.String()
	if isDigits(key) {
		m.jumpToPage(key, view.TotalPages)
		m.refreshTable()
		return m, nil
	}
	m.pageEntry = ""

	switch key {
	case keyQuit:
		return m.quit()
	case keySort:
		m.controller.Sort()
	case keySize:
		m.focusInput(focusSize)
		return m, textinput.Blink
	case keyRegion:
		m.focusInput(focusRegion)
		return m, textinput.Blink
	case keyEsc:
		m.sizeInput.SetValue("")
		m.regionInput.SetValue("")
		m.controller.SetSizeFilter("")
		m.controller.SetRegionFilter("")
	case keyLeft, keyPageUp:
		if view.CurrentPage > 1 {
			m.controller.SetPage(view.CurrentPage - 1)
		}
	case keyRight, keyPageDown:
		if view.CurrentPage < view.TotalPages {
			m.controller.SetPage(view.CurrentPage + 1)
		}
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(keyMsg)
		return m, cmd
	}

	m.refreshTable()
	return m, nil
}

// jumpToPage extends the pending page entry with digits and selects the
// resulting page. An entry that names no page restarts from digits alone;
// if that names no page either, the entry is dropped and the page is kept.
func (m *CountryListModel) jumpToPage(digits string, totalPages int) {
	for _, entry := range []string{m.pageEntry + digits, digits} {
		if n, err := strconv.Atoi(entry); err == nil && n >= 1 && n <= totalPages {
			m.pageEntry = entry
			m.controller.SetPage(n)
			return
		}
	}
	m.pageEntry = ""
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (m *CountryListModel) focusInput(f inputFocus) {
	m.focus = f
	m.table.Blur()
	if f == focusSize {
		m.regionInput.Blur()
		m.sizeInput.Focus()
	} else {
		m.sizeInput.Blur()
		m.regionInput.Focus()
	}
}

func (m *CountryListModel) blurInputs() {
	m.focus = focusNone
	m.sizeInput.Blur()
	m.regionInput.Blur()
	m.table.Focus()
}

// refreshTable pulls the current view from the controller into the table.
func (m *CountryListModel) refreshTable() {
	view := m.controller.View()
	rows := make([]table.Row, len(view.Rows))
	for i, rec := range view.Rows {
		rows[i] = table.Row{rec.Name, rec.Region, m.formatter.Cell(rec)}
	}
	m.table.SetRows(rows)
}

// buildCountryTable creates the table with the three country columns.
func (m *CountryListModel) buildCountryTable() table.Model {
	columns := []table.Column{
		{Title: "Country Name", Width: colWidthName},
		{Title: "Region", Width: colWidthRegion},
		{Title: "Area Size", Width: colWidthArea},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.tableHeight()),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)

	return t
}

func (m *CountryListModel) tableHeight() int {
	h := m.height - chromeHeight
	if h < minHeight {
		h = minHeight
	}
	return h
}

// Controller returns the controller backing the model.
func (m CountryListModel) Controller() *pipeline.Controller {
	return m.controller
}

// FetchErr returns the error from the initial fetch, if any.
func (m CountryListModel) FetchErr() error {
	return m.fetchErr
}
