package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/menusearch/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/menusearch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/menusearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/menusearch/internal/adapters/driving/tui/views/detail"
	"github.com/custodia-labs/menusearch/internal/adapters/driving/tui/views/home"
	"github.com/custodia-labs/menusearch/internal/adapters/driving/tui/views/menupage"
	"github.com/custodia-labs/menusearch/internal/adapters/driving/tui/views/search"
	"github.com/custodia-labs/menusearch/internal/core/domain"
	"github.com/custodia-labs/menusearch/internal/logger"
)

var log = logger.For("tui")

// location is a visited page that Back returns to.
type location struct {
	view messages.ViewType
	path string
}

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	homeView   *home.View
	searchView *search.View
	detailView *detail.View
	menuView   *menupage.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// underSearch is the view the search surface was opened over.
	underSearch location

	// current is the page being shown and history the pages before it.
	current location
	history []location

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		homeView:    home.NewView(s),
		searchView:  search.NewView(s, km, ports.Search, ports.Navigation),
		detailView:  detail.NewView(s, km, ports.Detail),
		menuView:    menupage.NewView(s, ports.Detail),
		currentView: messages.ViewHome,
		current:     location{view: messages.ViewHome},
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.searchView.WithContext(ctx)
	a.detailView.WithContext(ctx)
	a.menuView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("menusearch"),
		a.loadMenus(),
	)
}

// loadMenus fetches the menu names for the home view.
func (a *App) loadMenus() tea.Cmd {
	svc := a.ports.Detail
	ctx := a.ctx
	return func() tea.Msg {
		links, err := svc.Menus(ctx)
		return messages.MenusLoaded{Menus: links, Err: err}
	}
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.ViewChanged:
		return a, a.show(msg.View)

	case messages.Navigate:
		return a, a.navigate(msg.Path, true)

	case messages.SearchClosed:
		a.currentView = a.underSearch.view
		return a, nil

	case messages.IndexLoaded, messages.IndexChanged:
		a.searchView, cmd = a.searchView.Update(msg)
		a.err = a.searchView.Err()
		return a, cmd

	case messages.CatalogChanged:
		log.Info("catalog changed")
		cmds := []tea.Cmd{a.loadMenus()}
		if a.searchView.Surface().Open {
			svc := a.ports.Search
			ctx := a.ctx
			cmds = append(cmds, func() tea.Msg {
				return messages.IndexChanged{Err: svc.Reload(ctx)}
			})
		}
		return a, tea.Batch(cmds...)

	case messages.MenusLoaded:
		a.homeView, cmd = a.homeView.Update(msg)
		return a, cmd

	case messages.DetailLoaded:
		if msg.Err != nil {
			a.err = msg.Err
		}
		a.detailView, cmd = a.detailView.Update(msg)
		return a, cmd

	case messages.FlashExpired:
		a.detailView, cmd = a.detailView.Update(msg)
		return a, cmd

	case messages.MenuLoaded:
		if msg.Err != nil {
			a.err = msg.Err
		}
		a.menuView, cmd = a.menuView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.searchView, cmd = a.searchView.Update(msg)
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	return a, a.forward(msg)
}

// handleKey routes a key press. The search surface receives every key but
// ctrl+c, since any rune may be part of the query.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}
	if a.currentView == messages.ViewSearch {
		var cmd tea.Cmd
		a.searchView, cmd = a.searchView.Update(msg)
		a.err = a.searchView.Err()
		return a, cmd
	}

	key := msg.String()
	switch {
	case keymap.Matches(key, a.keymap.OpenSearch):
		return a, a.show(messages.ViewSearch)
	case keymap.Matches(key, a.keymap.Help) && a.currentView != messages.ViewHelp:
		return a, a.show(messages.ViewHelp)
	case keymap.Matches(key, a.keymap.Back) && a.currentView != messages.ViewHome:
		return a, a.back()
	case key == "q" && a.currentView != messages.ViewHome:
		return a, tea.Quit
	}

	return a, a.forward(msg)
}

// forward passes a message to the active view.
func (a *App) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewHome:
		a.homeView, cmd = a.homeView.Update(msg)
	case messages.ViewSearch:
		a.searchView, cmd = a.searchView.Update(msg)
	case messages.ViewDetail:
		a.detailView, cmd = a.detailView.Update(msg)
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't handle messages
	}
	return cmd
}

// show switches to a view that has no path.
func (a *App) show(view messages.ViewType) tea.Cmd {
	switch view {
	case messages.ViewSearch:
		if a.currentView != messages.ViewSearch {
			a.underSearch = a.current
		}
		a.currentView = messages.ViewSearch
		return a.searchView.Open("")
	case messages.ViewHome:
		a.history = nil
		a.current = location{view: messages.ViewHome}
		a.currentView = messages.ViewHome
		return nil
	case messages.ViewHelp:
		a.push(location{view: messages.ViewHelp})
		a.currentView = messages.ViewHelp
		return nil
	case messages.ViewDetail, messages.ViewMenu:
		// These need a path; see navigate.
	}
	return nil
}

// navigate opens the page at path.
func (a *App) navigate(path string, record bool) tea.Cmd {
	route, err := domain.ParsePath(path)
	if err != nil {
		a.err = err
		return nil
	}

	view := messages.ViewDetail
	if route.IsMenu() {
		view = messages.ViewMenu
	}
	if record {
		a.push(location{view: view, path: path})
	} else {
		a.current = location{view: view, path: path}
	}
	a.currentView = view

	if view == messages.ViewMenu {
		return a.menuView.Load(path)
	}
	return a.detailView.Load(path)
}

// push makes loc the current page, remembering the previous one.
func (a *App) push(loc location) {
	a.history = append(a.history, a.current)
	a.current = loc
}

// back returns to the previous page.
func (a *App) back() tea.Cmd {
	if len(a.history) == 0 {
		return a.show(messages.ViewHome)
	}
	prev := a.history[len(a.history)-1]
	a.history = a.history[:len(a.history)-1]

	switch prev.view {
	case messages.ViewDetail, messages.ViewMenu:
		return a.navigate(prev.path, false)
	default:
		a.current = prev
		a.currentView = prev.view
		return nil
	}
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewSearch:
		return a.searchView.View()
	case messages.ViewDetail:
		return a.detailView.View()
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.homeView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Anywhere:
  /, ctrl+k   Open search
  esc         Back
  ?           Help
  ctrl+c      Quit

Search:
  (type)      Results update as you type (2+ characters)
  ↑/↓         Move through results
  enter       Open the result; the page scrolls to the match
  esc         Close search

Item page:
  j/k, ↑/↓    Scroll
  e           Toggle English

Menus:
  j/k, ↑/↓    Move
  enter       Open item

[esc] back`
}

// Run starts the TUI application. Catalog changes reported by the
// watcher rebuild the open search index.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))

	if w := a.ports.Watcher; w != nil {
		ctx, cancel := context.WithCancel(a.ctx)
		defer cancel()
		go func() {
			err := w.Watch(ctx, func() { p.Send(messages.CatalogChanged{}) })
			if err != nil {
				log.Warn("catalog watcher stopped: %v", err)
			}
		}()
	}

	_, err := p.Run()
	return err
}

// Query returns the current search query.
func (a *App) Query() string {
	return a.searchView.Query()
}

// Results returns the current search results.
func (a *App) Results() []domain.SearchResult {
	return a.searchView.Results()
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.homeView.SetDimensions(width, height)
	a.searchView.SetDimensions(width, height)
	a.searchView.SetReady()
	a.detailView.SetDimensions(width, height)
	a.menuView.SetDimensions(width, height)
}
