package pipeline

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"github.com/rshade/countrytable/internal/country"
	"github.com/rshade/countrytable/internal/pagination"
)

// Controller errors.
var (
	// ErrAlreadyLoaded is returned when a second fetch is attempted.
	ErrAlreadyLoaded = errors.New("countries already loaded")
	// ErrInactive is returned when a fetch completes after deactivation.
	ErrInactive = errors.New("controller is no longer active")
)

// View is the derived projection shown to the user. Slices are shared with
// the controller's cache and must not be modified.
type View struct {
	Rows         []country.Record
	Filtered     int
	Total        int
	TotalPages   int
	PageNumbers  []int
	CurrentPage  int
	ItemsPerPage int

	// SortOrder is the order the next Sort will apply.
	SortOrder        SortOrder
	SizeFilterText   string
	RegionFilterText string
}

// Meta returns the pagination metadata of the view.
func (v View) Meta() pagination.Meta {
	return pagination.NewMeta(
		pagination.Params{Page: v.CurrentPage, PageSize: v.ItemsPerPage},
		v.Filtered,
	)
}

// Compute runs filter then paginate over records for state. Sorting is not
// part of it: the canonical order already reflects the last sort.
func Compute(records []country.Record, state ViewState) View {
	filtered := ApplyFilter(records, state.SizeFilterText, state.RegionFilterText)
	page := Paginate(filtered, state.CurrentPage, state.ItemsPerPage)
	return View{
		Rows:             page.Rows,
		Filtered:         len(filtered),
		Total:            len(records),
		TotalPages:       page.TotalPages,
		PageNumbers:      page.PageNumbers,
		CurrentPage:      state.CurrentPage,
		ItemsPerPage:     state.ItemsPerPage,
		SortOrder:        state.SortOrder,
		SizeFilterText:   state.SizeFilterText,
		RegionFilterText: state.RegionFilterText,
	}
}

// Controller owns the canonical record list and the view state. It is not
// safe for concurrent use; drive it from a single goroutine.
type Controller struct {
	records []country.Record
	state   ViewState
	sorter  *Sorter
	logger  zerolog.Logger

	started bool
	active  bool

	// generation increments on every mutation; cached is valid while
	// cachedGen matches.
	generation uint64
	cachedGen  uint64
	cached     *View
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the diagnostic sink for fetch failures.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithLocale sets the collation locale used by Sort.
func WithLocale(tag language.Tag) Option {
	return func(c *Controller) {
		c.sorter = NewSorter(tag)
	}
}

// WithSortOrder sets the order the first Sort applies.
func WithSortOrder(order SortOrder) Option {
	return func(c *Controller) {
		c.state.SortOrder = order
	}
}

// New returns an active controller with an empty record list.
func New(opts ...Option) *Controller {
	c := &Controller{
		records: []country.Record{},
		state:   NewViewState(),
		sorter:  NewSorter(DefaultLocale),
		logger:  zerolog.Nop(),
		active:  true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load fetches the countries once and stores them. On failure the list is
// left as it was, the error is logged, and returned. A result arriving after
// Deactivate or after ctx is done is discarded.
func (c *Controller) Load(ctx context.Context, provider country.Provider) error {
	if err := c.Begin(); err != nil {
		return err
	}

	records, err := provider.FetchCountries(ctx)
	if ctxErr := ctx.Err(); ctxErr != nil {
		c.logger.Debug().Ctx(ctx).Err(ctxErr).Msg("discarding country data after cancellation")
		return fmt.Errorf("%w: %w", ErrInactive, ctxErr)
	}
	return c.Complete(ctx, records, err)
}

// Begin marks the single fetch as started. Callers that run the fetch
// elsewhere (for example as a UI command) pair it with Complete.
func (c *Controller) Begin() error {
	if !c.active {
		return ErrInactive
	}
	if c.started {
		return ErrAlreadyLoaded
	}
	c.started = true
	return nil
}

// Complete applies the outcome of the fetch started by Begin.
func (c *Controller) Complete(ctx context.Context, records []country.Record, fetchErr error) error {
	if !c.active {
		c.logger.Debug().Ctx(ctx).Msg("discarding country data for inactive controller")
		return ErrInactive
	}
	if fetchErr != nil {
		c.logger.Error().Ctx(ctx).Err(fetchErr).Msg("error fetching country data")
		return fetchErr
	}

	if records == nil {
		records = []country.Record{}
	}
	c.records = records
	c.touch()
	c.logger.Debug().Ctx(ctx).Int("count", len(records)).Msg("country data loaded")
	return nil
}

// Deactivate stops the controller from accepting fetch results.
func (c *Controller) Deactivate() {
	c.active = false
}

// Active reports whether the controller still accepts fetch results.
func (c *Controller) Active() bool {
	return c.active
}

// Records returns a copy of the canonical list in its current order.
func (c *Controller) Records() []country.Record {
	return slices.Clone(c.records)
}

// State returns a copy of the view state.
func (c *Controller) State() ViewState {
	return c.state
}

// Sort sorts the canonical list by name in the current order, replaces it,
// and flips the order for the next call.
func (c *Controller) Sort() {
	c.records, c.state.SortOrder = c.sorter.Sort(c.records, c.state.SortOrder)
	c.touch()
}

// SetSizeFilter sets the raw size filter text. The page is not reset.
func (c *Controller) SetSizeFilter(text string) {
	if c.state.SizeFilterText == text {
		return
	}
	c.state.SizeFilterText = text
	c.touch()
}

// SetRegionFilter sets the raw region filter text. The page is not reset.
func (c *Controller) SetRegionFilter(text string) {
	if c.state.RegionFilterText == text {
		return
	}
	c.state.RegionFilterText = text
	c.touch()
}

// SetPage sets the current page without validation.
func (c *Controller) SetPage(page int) {
	if c.state.CurrentPage == page {
		return
	}
	c.state.CurrentPage = page
	c.touch()
}

// View returns the current projection, recomputing it only after a change.
func (c *Controller) View() View {
	if c.cached != nil && c.cachedGen == c.generation {
		return *c.cached
	}
	v := Compute(c.records, c.state)
	c.cached = &v
	c.cachedGen = c.generation
	return v
}

func (c *Controller) touch() {
	c.generation++
}
