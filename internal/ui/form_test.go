package ui

import (
	"testing"

	"github.com/stacksapp/stacks/internal/catalog"
)

func setField(t *testing.T, f *bookForm, key, value string) {
	t.Helper()
	for i, field := range f.fields {
		if field.key == key {
			f.inputs[i].SetValue(value)
			return
		}
	}
	t.Fatalf("no field %q", key)
}

func TestCreateFormDraft(t *testing.T) {
	f := newCreateForm()
	setField(t, f, "title", "Dune")
	setField(t, f, "author", "Frank Herbert")
	setField(t, f, "genre", "SciFi")
	setField(t, f, "language", "English")
	setField(t, f, "publishedYear", "1965")
	setField(t, f, "pages", "412")

	draft, errs := f.draft()
	if errs != nil {
		t.Fatalf("draft() errors = %v", errs)
	}
	want := catalog.Draft{
		Title:         "Dune",
		Author:        "Frank Herbert",
		Genre:         "SciFi",
		Language:      "English",
		PublishedYear: 1965,
		Available:     true,
		Pages:         412,
	}
	if draft != want {
		t.Fatalf("draft() = %+v, want %+v", draft, want)
	}
}

func TestCreateFormDefaults(t *testing.T) {
	f := newCreateForm()
	if !f.available {
		t.Fatal("new drafts should default to available")
	}
	if got := f.value("pages"); got != "1" {
		t.Fatalf("pages default = %q, want 1", got)
	}
}

func TestCreateFormNonNumericYear(t *testing.T) {
	f := newCreateForm()
	setField(t, f, "title", "Dune")
	setField(t, f, "author", "Frank Herbert")
	setField(t, f, "genre", "SciFi")
	setField(t, f, "language", "English")
	setField(t, f, "publishedYear", "nineteen sixty-five")

	_, errs := f.draft()
	if errs == nil {
		t.Fatal("non-numeric year accepted")
	}
	if errs["publishedYear"] != "must be a number" {
		t.Fatalf("publishedYear error = %q", errs["publishedYear"])
	}
}

func TestCreateFormValidationErrors(t *testing.T) {
	f := newCreateForm()

	_, errs := f.draft()
	if errs == nil {
		t.Fatal("empty form accepted")
	}
	if _, ok := errs["title"]; !ok {
		t.Fatalf("missing title error: %v", errs)
	}
}

func TestEditFormPrefill(t *testing.T) {
	book := catalog.Book{
		ID:            "a1",
		Title:         "Dune",
		Author:        "Frank Herbert",
		Genre:         "SciFi",
		PublishedYear: 1965,
		Available:     false,
	}
	f := newEditForm(book)

	if !f.editing || f.id != "a1" {
		t.Fatalf("form = editing %v id %q", f.editing, f.id)
	}
	if f.available {
		t.Fatal("availability not carried over from the record")
	}

	edit, errs := f.edit()
	if errs != nil {
		t.Fatalf("edit() errors = %v", errs)
	}
	want := catalog.Edit{
		Title:         "Dune",
		Author:        "Frank Herbert",
		Genre:         "SciFi",
		PublishedYear: 1965,
		Available:     false,
	}
	if edit != want {
		t.Fatalf("edit() = %+v, want %+v", edit, want)
	}
}

func TestFormFocusCycle(t *testing.T) {
	f := newCreateForm()
	total := len(f.inputs) + 1

	f.focus = 0
	for i := 0; i < total; i++ {
		if i == total-1 && !f.onToggle() {
			t.Fatalf("focus %d should be the availability toggle", f.focus)
		}
		f.moveFocus(1)
	}
	if f.focus != 0 {
		t.Fatalf("focus = %d after a full cycle, want 0", f.focus)
	}

	f.moveFocus(-1)
	if !f.onToggle() {
		t.Fatalf("focus = %d after moving back from 0, want the toggle", f.focus)
	}
}
