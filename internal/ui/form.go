package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/stacksapp/stacks/internal/catalog"
)

// Field error keys match the validation keys in catalog so inline messages
// land next to the offending input.
var (
	createFields = []formField{
		{label: "Title", key: "title", placeholder: "Enter book name"},
		{label: "Author", key: "author", placeholder: "Enter author name"},
		{label: "Genre", key: "genre", placeholder: "Enter genre"},
		{label: "Language", key: "language", placeholder: "Enter language"},
		{label: "Published Year", key: "publishedYear", placeholder: "Enter year"},
		{label: "Pages", key: "pages", placeholder: "Enter page count"},
	}
	editFields = []formField{
		{label: "Title", key: "title", placeholder: "Enter book name"},
		{label: "Author", key: "author", placeholder: "Enter author name"},
		{label: "Genre", key: "genre", placeholder: "Enter genre"},
		{label: "Published Year", key: "publishedYear", placeholder: "Enter year"},
	}
)

type formField struct {
	label       string
	key         string
	placeholder string
}

// bookForm is the create/edit surface. The same form serves both flows; the
// edit variant carries the record identifier and omits the immutable-on-update
// fields.
type bookForm struct {
	editing bool
	id      string

	fields    []formField
	inputs    []textinput.Model
	available bool
	focus     int // len(inputs) means the availability toggle
	errors    catalog.FieldErrors
}

func newCreateForm() *bookForm {
	f := &bookForm{
		fields:    createFields,
		available: true,
	}
	f.inputs = makeInputs(f.fields)
	f.inputs[5].SetValue("1")
	return f
}

func newEditForm(book catalog.Book) *bookForm {
	f := &bookForm{
		editing:   true,
		id:        book.ID,
		fields:    editFields,
		available: book.Available,
	}
	f.inputs = makeInputs(f.fields)
	f.inputs[0].SetValue(book.Title)
	f.inputs[1].SetValue(book.Author)
	f.inputs[2].SetValue(book.Genre)
	f.inputs[3].SetValue(strconv.Itoa(book.PublishedYear))
	return f
}

func makeInputs(fields []formField) []textinput.Model {
	inputs := make([]textinput.Model, len(fields))
	for i, field := range fields {
		input := textinput.New()
		input.Placeholder = field.placeholder
		input.Prompt = "> "
		input.CharLimit = 200
		inputs[i] = input
	}
	return inputs
}

func (f *bookForm) focusCmd() tea.Cmd {
	f.focus = 0
	f.inputs[0].Focus()
	return textinput.Blink
}

func (f *bookForm) onToggle() bool {
	return f.focus == len(f.inputs)
}

func (f *bookForm) moveFocus(delta int) {
	total := len(f.inputs) + 1 // inputs plus the availability toggle
	f.focus = (f.focus + delta + total) % total
	for i := range f.inputs {
		if i == f.focus {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

// value returns the trimmed input value for the given field key.
func (f *bookForm) value(key string) string {
	for i, field := range f.fields {
		if field.key == key {
			return strings.TrimSpace(f.inputs[i].Value())
		}
	}
	return ""
}

// intValue parses the input for key, recording a field error when the text
// is not a number. Parse errors block submission the same way validation
// errors do.
func (f *bookForm) intValue(key string, errs catalog.FieldErrors) int {
	raw := f.value(key)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		errs[key] = "must be a number"
		return 0
	}
	return n
}

// draft assembles the create payload from the form.
func (f *bookForm) draft() (catalog.Draft, catalog.FieldErrors) {
	errs := catalog.FieldErrors{}
	draft := catalog.Draft{
		Title:         f.value("title"),
		Author:        f.value("author"),
		Genre:         f.value("genre"),
		Language:      f.value("language"),
		PublishedYear: f.intValue("publishedYear", errs),
		Pages:         f.intValue("pages", errs),
		Available:     f.available,
	}
	if len(errs) > 0 {
		return draft, errs
	}
	return draft, draft.Validate()
}

// edit assembles the update payload from the form.
func (f *bookForm) edit() (catalog.Edit, catalog.FieldErrors) {
	errs := catalog.FieldErrors{}
	edit := catalog.Edit{
		Title:         f.value("title"),
		Author:        f.value("author"),
		Genre:         f.value("genre"),
		PublishedYear: f.intValue("publishedYear", errs),
		Available:     f.available,
	}
	if len(errs) > 0 {
		return edit, errs
	}
	return edit, edit.Validate()
}

// handleFormKey processes keyboard input while a form is open.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	form := m.form
	if form == nil {
		m.mode = ModeList
		return m, nil
	}

	switch msg.String() {
	case "esc":
		// Cancel discards the draft without touching the record store.
		m.form = nil
		m.mode = ModeList
		return m, nil

	case "tab", "down":
		form.moveFocus(1)
		return m, textinput.Blink

	case "shift+tab", "up":
		form.moveFocus(-1)
		return m, textinput.Blink

	case "enter":
		if form.onToggle() {
			return m.submitForm()
		}
		form.moveFocus(1)
		return m, textinput.Blink

	case "ctrl+s":
		return m.submitForm()

	case " ", "left", "right":
		if form.onToggle() {
			form.available = !form.available
			return m, nil
		}
	}

	if form.focus < len(form.inputs) {
		var cmd tea.Cmd
		form.inputs[form.focus], cmd = form.inputs[form.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

// submitForm validates the draft and dispatches the mutation. Validation
// failures stay inline; nothing is sent until they are resolved.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	form := m.form
	if form == nil || m.pending {
		return m, nil
	}

	if form.editing {
		edit, errs := form.edit()
		if len(errs) > 0 {
			form.errors = errs
			return m, nil
		}
		form.errors = nil
		return m, tea.Batch(m.startPending(), m.updateCmd(form.id, edit))
	}

	draft, errs := form.draft()
	if len(errs) > 0 {
		form.errors = errs
		return m, nil
	}
	form.errors = nil
	return m, tea.Batch(m.startPending(), m.createCmd(draft))
}

// renderForm renders the create/edit surface.
func (m Model) renderForm() string {
	form := m.form
	if form == nil {
		return ""
	}
	styles := m.theme.Styles()

	title := "Add Book"
	if form.editing {
		title = "Edit Book"
	}

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render(title))
	b.WriteString("\n\n")

	for i, field := range form.fields {
		b.WriteString(styles.MutedText.Render(field.label))
		b.WriteString("\n")
		b.WriteString(form.inputs[i].View())
		b.WriteString("\n")
		if msg, ok := form.errors[field.key]; ok {
			b.WriteString(styles.DangerText.Render(msg))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Availability toggle
	label := "Status"
	marker := "( ) Issued"
	if form.available {
		marker = "(x) Available"
	}
	toggle := marker + "  (space toggles)"
	b.WriteString(styles.MutedText.Render(label))
	b.WriteString("\n")
	if form.onToggle() {
		b.WriteString(styles.Selected.Render(toggle))
	} else {
		b.WriteString(styles.Text.Render(toggle))
	}
	b.WriteString("\n\n")

	if m.pending {
		b.WriteString(m.spinner.View())
		b.WriteString(styles.MutedText.Render(" Saving..."))
	} else {
		b.WriteString(styles.FaintText.Render("tab/enter next · ctrl+s save · esc cancel"))
	}

	if m.notice != "" && m.noticeKind == noticeError {
		b.WriteString("\n\n")
		b.WriteString(styles.DangerText.Render(m.notice))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		Padding(1, 2).
		Width(min(m.width-4, 64)).
		Render(b.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
