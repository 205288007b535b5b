package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stacksapp/stacks/internal/catalog"
	"github.com/stacksapp/stacks/internal/mutation"
	"github.com/stacksapp/stacks/internal/prefs"
	"github.com/stacksapp/stacks/internal/state"
	"github.com/stacksapp/stacks/internal/view"
)

// Mode represents the current interaction surface.
type Mode int

const (
	ModeList Mode = iota
	ModeForm
	ModeConfirm
)

// noticeKind classifies the transient status line message.
type noticeKind int

const (
	noticeNone noticeKind = iota
	noticeSuccess
	noticeError
)

const noticeTTL = 4 * time.Second

// Options configures the UI.
type Options struct {
	Context     context.Context
	Coordinator *mutation.Coordinator
	Session     *state.Store
	ThemeName   string
	PrefsPath   string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx         context.Context
	coordinator *mutation.Coordinator
	session     *state.Store
	prefsPath   string

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	mode     Mode
	showHelp bool

	// Data state
	snapshot state.Snapshot
	sortMode view.Sort

	// List state
	selectedID  string
	selectedRow int // row within the current page

	// Search state
	searchInput textinput.Model
	searching   bool

	// Pending operation indicator
	spinner spinner.Model
	pending bool

	// Transient notice
	notice     string
	noticeKind noticeKind
	noticeAt   time.Time

	// Form and confirmation surfaces
	form    *bookForm
	confirm *deletePrompt
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	search := textinput.New()
	search.Placeholder = "Search title or author..."
	search.Prompt = "/ "
	search.CharLimit = 120

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return Model{
		ctx:         ctx,
		coordinator: opts.Coordinator,
		session:     opts.Session,
		prefsPath:   prefsPath,
		theme:       GetTheme(themeName),
		mode:        ModeList,
		searchInput: search,
		spinner:     spin,
		pending:     true, // the initial fetch starts in Init
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		m.spinner.Tick,
	}
	if m.coordinator != nil {
		cmds = append(cmds, m.refreshCmd())
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

	case spinner.TickMsg:
		if !m.pending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case refreshDoneMsg:
		return m.handleRefreshDone(msg)

	case bookLoadedMsg:
		return m.handleBookLoaded(msg)

	case mutationDoneMsg:
		return m.handleMutationDone(msg)

	case noticeExpiredMsg:
		if !m.noticeAt.IsZero() && time.Time(msg).After(m.noticeAt.Add(noticeTTL-time.Millisecond)) {
			m.notice = ""
			m.noticeKind = noticeNone
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	switch m.mode {
	case ModeForm:
		return m.renderForm()
	case ModeConfirm:
		return m.renderConfirm()
	default:
		return m.renderList()
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes the help overlay.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	// Ctrl+C always quits, regardless of surface.
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeForm:
		return m.handleFormKey(msg)
	case ModeConfirm:
		return m.handleConfirmKey(msg)
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	return m.handleListKey(msg)
}

// handleListKey processes keyboard input for the listing view.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "h", "?":
		m.showHelp = true
		return m, nil

	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		return m, nil

	case "/":
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink

	case "g":
		m.cycleGenreFilter()
		return m, nil

	case "s":
		m.cycleStatusFilter()
		return m, nil

	case "o":
		// Sorting does not touch filters, so the page stays put.
		m.sortMode = m.sortMode.Next()
		return m, nil

	case "r":
		if m.pending {
			return m, nil
		}
		return m, tea.Batch(m.startPending(), m.refreshCmd())

	case "left", "p":
		return m.changePage(m.snapshot.Page - 1)

	case "right", "n":
		return m.changePage(m.snapshot.Page + 1)

	case "j", "down":
		m.moveSelection(1)
		return m, nil

	case "k", "up":
		m.moveSelection(-1)
		return m, nil

	case "a":
		m.form = newCreateForm()
		m.mode = ModeForm
		return m, m.form.focusCmd()

	case "e", "enter":
		book := m.selectedBook()
		if book == nil || m.pending {
			return m, nil
		}
		return m, tea.Batch(m.startPending(), m.loadBookCmd(book.ID))

	case "d", "x":
		book := m.selectedBook()
		if book == nil {
			return m, nil
		}
		m.confirm = &deletePrompt{id: book.ID, title: book.Title}
		m.mode = ModeConfirm
		return m, nil
	}

	return m, nil
}

// handleSearchKey processes keyboard input while the search box is focused.
// Each keystroke updates the session immediately so results narrow as the
// user types.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.session.SetSearchQuery("")
		m.snapshot = m.session.Snapshot()
		m.clampSelection()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.session.SetSearchQuery(m.searchInput.Value())
	m.snapshot = m.session.Snapshot()
	m.clampSelection()
	return m, cmd
}

// changePage applies a pagination request, ignoring anything out of range.
func (m Model) changePage(page int) (tea.Model, tea.Cmd) {
	derived := view.Compute(m.snapshot, m.sortMode)
	if page < 1 || page > derived.TotalPages {
		return m, nil
	}
	m.session.SetPage(page)
	m.snapshot = m.session.Snapshot()
	m.selectedRow = 0
	m.syncSelectedID()
	return m, nil
}

// cycleGenreFilter advances the genre filter through the enumeration derived
// from the full collection.
func (m *Model) cycleGenreFilter() {
	genres := view.Genres(m.snapshot.Books)
	next := nextOption(genres, m.snapshot.GenreFilter)
	m.session.SetGenreFilter(next)
	m.snapshot = m.session.Snapshot()
	m.clampSelection()
}

// cycleStatusFilter advances the status filter: All -> Available -> Issued.
func (m *Model) cycleStatusFilter() {
	next := nextOption(view.StatusOptions(), m.snapshot.StatusFilter)
	m.session.SetStatusFilter(next)
	m.snapshot = m.session.Snapshot()
	m.clampSelection()
}

func nextOption(options []string, current string) string {
	if len(options) == 0 {
		return state.FilterAll
	}
	for i, option := range options {
		if option == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}

// moveSelection moves the selected row within the current page.
func (m *Model) moveSelection(delta int) {
	derived := view.Compute(m.snapshot, m.sortMode)
	count := len(derived.Paginated)
	if count == 0 {
		m.selectedRow = 0
		m.selectedID = ""
		return
	}
	m.selectedRow += delta
	if m.selectedRow < 0 {
		m.selectedRow = 0
	}
	if m.selectedRow >= count {
		m.selectedRow = count - 1
	}
	m.selectedID = derived.Paginated[m.selectedRow].ID
}

// clampSelection re-resolves the selection after the result set changed.
// Selection is preserved by book ID when the book is still on the page,
// otherwise clamped to the nearest valid row.
func (m *Model) clampSelection() {
	derived := view.Compute(m.snapshot, m.sortMode)
	count := len(derived.Paginated)
	if count == 0 {
		m.selectedRow = 0
		m.selectedID = ""
		return
	}
	if m.selectedID != "" {
		for i, book := range derived.Paginated {
			if book.ID == m.selectedID {
				m.selectedRow = i
				return
			}
		}
	}
	if m.selectedRow >= count {
		m.selectedRow = count - 1
	}
	m.syncSelectedID()
}

func (m *Model) syncSelectedID() {
	derived := view.Compute(m.snapshot, m.sortMode)
	if m.selectedRow >= 0 && m.selectedRow < len(derived.Paginated) {
		m.selectedID = derived.Paginated[m.selectedRow].ID
	} else {
		m.selectedID = ""
	}
}

// selectedBook returns the currently selected book, or nil when the page is
// empty.
func (m *Model) selectedBook() *catalog.Book {
	derived := view.Compute(m.snapshot, m.sortMode)
	if m.selectedRow < 0 || m.selectedRow >= len(derived.Paginated) {
		return nil
	}
	book := derived.Paginated[m.selectedRow]
	return &book
}

// handleRefreshDone applies the result of a collection fetch.
func (m Model) handleRefreshDone(msg refreshDoneMsg) (tea.Model, tea.Cmd) {
	m.pending = false
	m.snapshot = m.session.Snapshot()
	m.clampSelection()
	if msg.err != nil {
		return m.setNotice(noticeError, "Failed to fetch books")
	}
	return m, nil
}

// handleBookLoaded opens the edit form once the record arrives.
func (m Model) handleBookLoaded(msg bookLoadedMsg) (tea.Model, tea.Cmd) {
	m.pending = false
	if msg.err != nil {
		if errors.Is(msg.err, catalog.ErrNotFound) {
			return m.setNotice(noticeError, "Book no longer exists")
		}
		return m.setNotice(noticeError, "Failed to load book")
	}
	m.form = newEditForm(msg.book)
	m.mode = ModeForm
	return m, m.form.focusCmd()
}

// handleMutationDone finishes a create/update/delete round trip.
func (m Model) handleMutationDone(msg mutationDoneMsg) (tea.Model, tea.Cmd) {
	m.pending = false
	m.snapshot = m.session.Snapshot()
	m.clampSelection()

	if msg.err != nil {
		var fieldErrs catalog.FieldErrors
		if errors.As(msg.err, &fieldErrs) && m.form != nil {
			m.form.errors = fieldErrs
			return m, nil
		}
		// The surface stays open so the user can retry with the draft
		// intact.
		return m.setNotice(noticeError, "Failed to "+msg.op+" book. Please try again.")
	}

	m.form = nil
	m.confirm = nil
	m.mode = ModeList
	switch msg.op {
	case "add":
		return m.setNotice(noticeSuccess, "Book added successfully")
	case "update":
		return m.setNotice(noticeSuccess, "Book updated successfully")
	default:
		return m.setNotice(noticeSuccess, "Book deleted successfully")
	}
}

func (m Model) setNotice(kind noticeKind, text string) (tea.Model, tea.Cmd) {
	m.notice = text
	m.noticeKind = kind
	m.noticeAt = time.Now()
	return m, tea.Tick(noticeTTL, func(t time.Time) tea.Msg {
		return noticeExpiredMsg(t)
	})
}

func (m *Model) startPending() tea.Cmd {
	m.pending = true
	return m.spinner.Tick
}

// filterSummary describes the active filters for the header.
func (m Model) filterSummary() string {
	parts := []string{}
	if m.snapshot.GenreFilter != state.FilterAll {
		parts = append(parts, "genre:"+m.snapshot.GenreFilter)
	}
	if m.snapshot.StatusFilter != state.FilterAll {
		parts = append(parts, "status:"+m.snapshot.StatusFilter)
	}
	if strings.TrimSpace(m.snapshot.SearchQuery) != "" {
		parts = append(parts, "search:"+strings.TrimSpace(m.snapshot.SearchQuery))
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, " ")
}

// Messages

type refreshDoneMsg struct {
	err error
}

type bookLoadedMsg struct {
	book catalog.Book
	err  error
}

type mutationDoneMsg struct {
	op  string // add, update, delete
	err error
}

type noticeExpiredMsg time.Time

// Commands

func (m Model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		return refreshDoneMsg{err: m.coordinator.Refresh(m.ctx)}
	}
}

func (m Model) loadBookCmd(id string) tea.Cmd {
	return func() tea.Msg {
		book, err := m.coordinator.Load(m.ctx, id)
		return bookLoadedMsg{book: book, err: err}
	}
}

func (m Model) createCmd(draft catalog.Draft) tea.Cmd {
	return func() tea.Msg {
		return mutationDoneMsg{op: "add", err: m.coordinator.Create(m.ctx, draft)}
	}
}

func (m Model) updateCmd(id string, edit catalog.Edit) tea.Cmd {
	return func() tea.Msg {
		return mutationDoneMsg{op: "update", err: m.coordinator.Update(m.ctx, id, edit)}
	}
}

func (m Model) deleteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return mutationDoneMsg{op: "delete", err: m.coordinator.Delete(m.ctx, id)}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
