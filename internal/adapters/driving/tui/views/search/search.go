// Package search provides the search surface of the TUI.
package search

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/menusearch/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/menusearch/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/menusearch/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/menusearch/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/menusearch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/menusearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/menusearch/internal/core/domain"
	"github.com/custodia-labs/menusearch/internal/core/ports/driving"
	"github.com/custodia-labs/menusearch/internal/logger"
)

var log = logger.For("tui")

// View is the search surface: a query input over a live result list.
// Every keystroke re-runs the query against the in-memory index.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	list      *list.ResultList
	statusbar *status.Bar

	searchService     driving.SearchService
	navigationService driving.NavigationService
	ctx               context.Context

	surface domain.Surface
	// generation ties an index load to the activation that started it.
	generation int

	width  int
	height int
	ready  bool
	err    error
}

// NewView creates a new search view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	searchService driving.SearchService,
	navigationService driving.NavigationService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:            s,
		keymap:            km,
		input:             input.NewSearchInput(s),
		list:              list.NewResultList(s),
		statusbar:         status.NewBar(s, km),
		searchService:     searchService,
		navigationService: navigationService,
		ctx:               context.Background(),
		surface:           domain.Surface{Status: domain.IndexIdle},
		width:             80,
		height:            24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Open shows the surface and starts loading the index.
// A query passed in is kept and run once the index is ready.
func (v *View) Open(query string) tea.Cmd {
	if v.searchService == nil {
		v.err = ErrNoSearchService
		return nil
	}

	v.generation++
	gen := v.generation
	v.err = nil
	v.surface = domain.Surface{Query: query}.Opened()
	v.input.SetValue(query)
	v.list.SetResults(query, nil)
	v.syncStatus()

	svc := v.searchService
	ctx := v.ctx
	load := func() tea.Msg {
		return messages.IndexLoaded{Generation: gen, Err: svc.Open(ctx)}
	}
	return tea.Batch(v.input.Focus(), load)
}

// Close hides the surface and discards its index.
func (v *View) Close() {
	if v.searchService != nil && v.surface.Open {
		v.searchService.Close()
	}
	v.generation++
	v.surface = v.surface.Closed()
	v.input.Reset()
	v.list.SetResults("", nil)
	v.statusbar.Clear()
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.IndexLoaded:
		v.handleIndexLoaded(msg)
		return v, nil

	case messages.IndexChanged:
		if msg.Err != nil {
			log.Warn("catalog reload failed, keeping previous index: %v", msg.Err)
			return v, nil
		}
		if v.surface.Open && v.surface.Status == domain.IndexReady {
			v.refresh()
		}
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input. Only non-text keys act on the
// list; everything else edits the query.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyEsc:
		v.Close()
		return v, func() tea.Msg { return messages.SearchClosed{} }

	case tea.KeyEnter:
		return v, v.selectResult()

	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
		v.list, _ = v.list.Update(msg)
		return v, nil
	}

	before := v.input.Value()
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	if v.input.Value() != before {
		v.refresh()
	}
	return v, cmd
}

// handleIndexLoaded applies the outcome of a load for the current activation.
func (v *View) handleIndexLoaded(msg messages.IndexLoaded) {
	if msg.Generation != v.generation || !v.surface.Open {
		return
	}
	if msg.Err != nil {
		v.err = msg.Err
		v.surface = v.surface.Loaded(domain.IndexFailed)
		v.list.SetResults("", nil)
		v.syncStatus()
		return
	}
	v.surface = v.surface.Loaded(domain.IndexReady)
	v.refresh()
}

// refresh runs the current query and records the results.
func (v *View) refresh() {
	query := v.input.Value()
	var results []domain.SearchResult
	if v.searchService != nil {
		var err error
		results, err = v.searchService.Search(v.ctx, query)
		if err != nil {
			v.err = err
		}
	}
	v.surface = v.surface.Typed(query, results)
	v.list.SetResults(query, results)
	v.syncStatus()
}

// selectResult hands the query to the selected result's page and closes
// the surface.
func (v *View) selectResult() tea.Cmd {
	result := v.list.SelectedResult()
	if result == nil {
		return nil
	}
	if v.navigationService == nil {
		v.err = ErrNoNavigationService
		return nil
	}

	path, err := v.navigationService.Select(v.ctx, v.surface.Query, *result)
	if err != nil {
		v.err = err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(err.Error())
		return nil
	}
	log.Debug("selected %s (%s) for %q", result.ID, result.Field, v.surface.Query)

	v.Close()
	return func() tea.Msg { return messages.Navigate{Path: path} }
}

// syncStatus mirrors the surface into the status bar.
func (v *View) syncStatus() {
	hint := v.surface.Hint(v.input.TrimmedLen())
	v.statusbar.SetResultCount(len(v.surface.Results))
	v.statusbar.SetMessage(hint)
	switch v.surface.Status {
	case domain.IndexLoading:
		v.statusbar.SetState(status.StateLoading)
	case domain.IndexFailed:
		v.statusbar.SetState(status.StateError)
	default:
		v.statusbar.SetState(status.StateResults)
	}
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)
	sections = append(sections, v.input.View(), "")

	if hint := v.Hint(); hint != "" {
		style := v.styles.Muted
		if v.surface.Status == domain.IndexFailed {
			style = v.styles.Error
		}
		sections = append(sections, style.Render(hint))
	} else {
		sections = append(sections, v.list.View())
	}

	sections = append(sections, "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Hint returns the message shown in place of results, or "".
func (v *View) Hint() string {
	return v.surface.Hint(v.input.TrimmedLen())
}

// Surface returns the current surface state.
func (v *View) Surface() domain.Surface {
	return v.surface
}

// Query returns the current query text.
func (v *View) Query() string {
	return v.input.Value()
}

// Results returns the results listed for the current query.
func (v *View) Results() []domain.SearchResult {
	return v.list.Results()
}

// Selected returns the index of the highlighted result.
func (v *View) Selected() int {
	return v.list.Selected()
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.input.SetWidth(width)
	// input (3), gap, gap, status bar
	v.list.SetDimensions(width, height-6)
	v.statusbar.SetWidth(width)
}

// SetReady marks the view as ready to render.
func (v *View) SetReady() {
	v.ready = true
}
