// Package ui provides a Bubble Tea-based TUI for shortlist.
package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shortlist-tui/shortlist/internal/config"
	"github.com/shortlist-tui/shortlist/internal/fetch"
	"github.com/shortlist-tui/shortlist/internal/listapi"
	"github.com/shortlist-tui/shortlist/internal/liststate"
	"github.com/shortlist-tui/shortlist/internal/pager"
	"github.com/shortlist-tui/shortlist/internal/syncer"
	"github.com/shortlist-tui/shortlist/internal/timing"
)

// Focus identifies which pane receives keyboard input.
type Focus int

const (
	FocusList Focus = iota
	FocusSearch
)

// Options configures the UI.
type Options struct {
	Context context.Context
	Fetcher listapi.Fetcher
	State   *liststate.State
	Sync    *syncer.Syncer
	Config  *config.Config
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx     context.Context
	fetcher listapi.Fetcher
	loader  *fetch.Loader
	state   *liststate.State
	sync    *syncer.Syncer

	// Input pipeline
	search   textinput.Model
	debounce timing.Debounce
	throttle *timing.Throttle
	pager    *pager.Pager

	// Loading indicator
	spin        spinner.Model
	loading     bool
	loadSeq     int
	showSpinner bool

	// UI state
	focus       Focus
	cursor      int
	width       int
	height      int
	ready       bool
	scrollDirty bool
	scrollSeq   int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	state := opts.State
	if state == nil {
		state = liststate.New()
	}

	search := textinput.New()
	search.Placeholder = "type to filter"
	search.Prompt = "/ "
	search.CharLimit = 128
	search.SetValue(state.Search())

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	p := pager.New()
	p.PageSize = cfg.PageSize

	return Model{
		ctx:      ctx,
		fetcher:  opts.Fetcher,
		loader:   fetch.NewLoader(opts.Fetcher),
		state:    state,
		sync:     opts.Sync,
		search:   search,
		debounce: timing.Debounce{Window: cfg.DebounceWindow()},
		throttle: timing.NewThrottle(cfg.ThrottleInterval()),
		pager:    p,
		spin:     spin,
		focus:    FocusList,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnterAltScreen}

	if missing := m.missingItems(); len(missing) > 0 {
		cmds = append(cmds, hydrateCmd(m.ctx, m.fetcher, missing))
	}

	// An empty ordering means a fresh session: load the first page.
	if m.state.Len() == 0 {
		var cmd tea.Cmd
		m, cmd = m.startLoad(0)
		cmds = append(cmds, cmd)
	}

	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case debounceMsg:
		return m.handleDebounce(msg)

	case pageMsg:
		return m.handlePage(msg)

	case scrollSettleMsg:
		return m.handleScrollSettle(msg)

	case hydrateMsg:
		// Hydration failures degrade to unrendered rows; a later fetch
		// can fill them in.
		if msg.err == nil {
			m.state.Hydrate(msg.items)
		}
		return m, nil

	case spinnerShowMsg:
		if m.loading && msg.seq == m.loadSeq {
			m.showSpinner = true
			return m, m.spin.Tick
		}
		return m, nil

	case spinner.TickMsg:
		if !m.showSpinner {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "tab":
		if m.focus == FocusList {
			return m.focusSearch()
		}
		return m.focusList(), nil
	}

	if m.focus == FocusSearch {
		return m.handleSearchKey(msg)
	}
	return m.handleListKey(msg)
}

// handleSearchKey processes keyboard input while the search box is
// focused. Printable keys flow into the input and restart the debounce
// window; the settled value commits in handleDebounce.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.search.Value() != "" {
			m.search.SetValue("")
			seq, wait := m.debounce.Touch("")
			return m, debounceCmd(wait, seq)
		}
		return m.focusList(), nil

	case "enter", "down":
		return m.focusList(), nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)

	if value := m.search.Value(); value != before {
		seq, wait := m.debounce.Touch(value)
		return m, tea.Batch(cmd, debounceCmd(wait, seq))
	}
	return m, cmd
}

// handleListKey processes keyboard input while the list is focused.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "/":
		return m.focusSearch()

	case "j", "down":
		return m.moveCursor(1)

	case "k", "up":
		return m.moveCursor(-1)

	case "pgdown":
		return m.moveCursor(m.visibleRows())

	case "pgup":
		return m.moveCursor(-m.visibleRows())

	case "g", "home":
		return m.moveCursor(-len(m.state.Rows()))

	case "G", "end":
		return m.moveCursor(len(m.state.Rows()))

	case " ":
		rows := m.state.Rows()
		if m.cursor < len(rows) {
			m.state.Toggle(rows[m.cursor].ID)
			m.persist()
		}
		return m, nil

	case "J", "shift+down":
		if m.state.Reorder(m.cursor, m.cursor+1) {
			m.cursor++
			m.persist()
		}
		return m, nil

	case "K", "shift+up":
		if m.state.Reorder(m.cursor, m.cursor-1) {
			m.cursor--
			m.persist()
		}
		return m, nil

	case "esc":
		if m.state.Search() != "" {
			m.search.SetValue("")
			seq, wait := m.debounce.Touch("")
			return m, debounceCmd(wait, seq)
		}
		return m, nil
	}

	return m, nil
}

// handleDebounce commits a settled search term. Wakeups for superseded
// keystrokes are dropped, so only the latest value ever commits.
func (m Model) handleDebounce(msg debounceMsg) (tea.Model, tea.Cmd) {
	value, ok := m.debounce.Settle(msg.seq)
	if !ok || value == m.state.Search() {
		return m, nil
	}

	m.state.SetSearch(value)
	m.state.ResetOffset()
	m.state.SetScrollTop(0)
	m.state.SetTotal(-1)
	m.cursor = 0
	m.throttle.Reset()
	m.persist()

	return m.startLoad(0)
}

// handlePage merges a page load outcome into state.
//
// The currency check runs here, at apply time, not when the response
// returned: a query can come back while still latest and be superseded
// before its message is processed. A superseded result must not touch
// state and must not clear the loading marks, which now belong to the
// newer query. Failed results from the current query only clear the
// indicator; their items never render.
func (m Model) handlePage(msg pageMsg) (tea.Model, tea.Cmd) {
	res := fetch.Result(msg)
	if !m.loader.Current(res.Gen) {
		return m, nil
	}

	m.pager.Finish()
	m.loading = false
	m.showSpinner = false

	if !res.Apply() {
		return m, nil
	}

	m.state.SetTotal(res.Page.Total)
	m.state.Hydrate(res.Page.Items)

	ids := make([]int64, 0, len(res.Page.Items))
	for _, item := range res.Page.Items {
		ids = append(ids, item.ID)
	}

	if res.Query.Offset == 0 {
		m.state.ReplaceOrdering(ids)
		m.state.ResetOffset()
		// Advance by the deduped ordering length, not the raw page
		// length, so a duplicate id in the page cannot drift the offset.
		m.state.Advance(m.state.Len())
		m.clampCursor()
	} else {
		added := m.state.MergeAppend(ids)
		m.state.Advance(added)
	}

	m.persist()
	return m, nil
}

// moveCursor shifts the cursor and follows it with the scroll window.
// The window moves locally on every key, but the scroll signal itself
// is throttled: inside the window the persist and the page check are
// deferred to a trailing settle tick, so a held key coalesces into one
// save and at most one load per window instead of one per repeat.
func (m Model) moveCursor(delta int) (tea.Model, tea.Cmd) {
	rows := len(m.state.Rows())
	if rows == 0 {
		return m, nil
	}

	m.cursor += delta
	m.clampCursor()

	visible := m.visibleRows()
	top := m.state.ScrollTop()
	if m.cursor < top {
		top = m.cursor
	}
	if m.cursor >= top+visible {
		top = m.cursor - visible + 1
	}
	if top != m.state.ScrollTop() {
		m.state.SetScrollTop(top)
		m.scrollDirty = true
	}

	if m.throttle.Allow() {
		return m.flushScroll()
	}
	if m.scrollDirty {
		m.scrollSeq++
		return m, scrollSettleCmd(m.throttle.Interval(), m.scrollSeq)
	}
	return m, nil
}

// handleScrollSettle fires the trailing edge of a throttled scroll
// burst. Stale ticks from earlier bursts are dropped by sequence.
func (m Model) handleScrollSettle(msg scrollSettleMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.scrollSeq {
		return m, nil
	}
	return m.flushScroll()
}

// flushScroll persists a pending scroll position and checks whether the
// settled window warrants the next page.
func (m Model) flushScroll() (tea.Model, tea.Cmd) {
	if m.scrollDirty {
		m.scrollDirty = false
		m.persist()
	}
	return m.maybeLoadNext()
}

// maybeLoadNext issues the next page request when the pager says the
// scroll position warrants one. Rate limiting already happened at the
// scroll signal, so there is no second gate here.
func (m Model) maybeLoadNext() (Model, tea.Cmd) {
	if !m.pager.ShouldLoad(m.state.ScrollTop(), m.visibleRows(), m.state.Len(), m.state.Offset(), m.state.Total()) {
		return m, nil
	}
	return m.startLoad(m.state.Offset())
}

// startLoad marks a page load in flight and returns the commands that
// run it and arm the delayed spinner. The generation is reserved here,
// synchronously in the event loop, so issue order and generation order
// cannot diverge however the command goroutines get scheduled.
func (m Model) startLoad(offset int) (Model, tea.Cmd) {
	reqCtx, gen := m.loader.Begin(m.ctx)
	m.pager.Begin()
	m.loading = true
	m.loadSeq++

	query := listapi.PageQuery{
		Search:    m.state.Search(),
		Offset:    offset,
		Limit:     m.pager.Limit(),
		UseSorted: m.state.Search() == "",
	}

	return m, tea.Batch(
		loadPageCmd(reqCtx, m.loader, gen, query),
		spinnerDelayCmd(m.loadSeq),
	)
}

func (m Model) focusSearch() (Model, tea.Cmd) {
	m.focus = FocusSearch
	return m, m.search.Focus()
}

func (m Model) focusList() Model {
	m.focus = FocusList
	m.search.Blur()
	return m
}

// persist snapshots the state record and hands it to the background
// synchronizer. UI flow never waits on it.
func (m Model) persist() {
	if m.sync == nil {
		return
	}
	m.sync.Save(m.state.Record())
}

func (m *Model) clampCursor() {
	rows := len(m.state.Rows())
	if m.cursor >= rows {
		m.cursor = rows - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// missingItems lists ordering ids without a cached item, in order.
func (m Model) missingItems() []int64 {
	var missing []int64
	for _, id := range m.state.Order() {
		if _, ok := m.state.Item(id); !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

// visibleRows is the list viewport height in rows.
func (m Model) visibleRows() int {
	rows := m.height - chromeRows
	if rows < 1 {
		rows = 1
	}
	return rows
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
