package catalog

import (
	"strings"
	"testing"
	"time"
)

func validDraft() Draft {
	return Draft{
		Title:         "Dune",
		Author:        "Frank Herbert",
		Genre:         "SciFi",
		Language:      "English",
		PublishedYear: 1965,
		Available:     true,
		Pages:         412,
	}
}

func TestDraftValidate(t *testing.T) {
	cases := []struct {
		name      string
		mutate    func(*Draft)
		wantField string
	}{
		{"valid", func(d *Draft) {}, ""},
		{"missing title", func(d *Draft) { d.Title = "" }, "title"},
		{"whitespace title", func(d *Draft) { d.Title = "   " }, "title"},
		{"missing author", func(d *Draft) { d.Author = "" }, "author"},
		{"missing genre", func(d *Draft) { d.Genre = "" }, "genre"},
		{"missing language", func(d *Draft) { d.Language = "" }, "language"},
		{"year too old", func(d *Draft) { d.PublishedYear = 999 }, "publishedYear"},
		{"year in future", func(d *Draft) { d.PublishedYear = time.Now().Year() + 1 }, "publishedYear"},
		{"zero pages", func(d *Draft) { d.Pages = 0 }, "pages"},
		{"negative pages", func(d *Draft) { d.Pages = -3 }, "pages"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			draft := validDraft()
			tc.mutate(&draft)

			errs := draft.Validate()
			if tc.wantField == "" {
				if errs != nil {
					t.Fatalf("Validate() = %v, want nil", errs)
				}
				return
			}
			if errs == nil {
				t.Fatalf("Validate() = nil, want error on %q", tc.wantField)
			}
			if _, ok := errs[tc.wantField]; !ok {
				t.Fatalf("Validate() = %v, missing %q", errs, tc.wantField)
			}
		})
	}
}

func TestDraftValidateCurrentYear(t *testing.T) {
	draft := validDraft()
	draft.PublishedYear = time.Now().Year()
	if errs := draft.Validate(); errs != nil {
		t.Fatalf("current year rejected: %v", errs)
	}
}

func TestDraftValidateCollectsAllFields(t *testing.T) {
	errs := Draft{}.Validate()
	if errs == nil {
		t.Fatal("empty draft passed validation")
	}
	for _, field := range []string{"title", "author", "genre", "language", "publishedYear", "pages"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("missing error for %q: %v", field, errs)
		}
	}
}

func TestEditValidate(t *testing.T) {
	edit := Edit{
		Title:         "Dune",
		Author:        "Frank Herbert",
		Genre:         "SciFi",
		PublishedYear: 1965,
	}
	if errs := edit.Validate(); errs != nil {
		t.Fatalf("Validate() = %v, want nil", errs)
	}

	edit.Title = ""
	edit.PublishedYear = 0
	errs := edit.Validate()
	if errs == nil {
		t.Fatal("invalid edit passed validation")
	}
	if _, ok := errs["title"]; !ok {
		t.Fatalf("missing title error: %v", errs)
	}
	if _, ok := errs["publishedYear"]; !ok {
		t.Fatalf("missing publishedYear error: %v", errs)
	}
}

func TestFieldErrorsError(t *testing.T) {
	errs := FieldErrors{
		"title": "is required",
		"pages": "must be at least 1",
	}
	msg := errs.Error()
	if !strings.Contains(msg, "title: is required") {
		t.Fatalf("Error() = %q, missing title message", msg)
	}
	// Fields render in stable sorted order.
	if strings.Index(msg, "pages") > strings.Index(msg, "title") {
		t.Fatalf("Error() = %q, fields not sorted", msg)
	}
}
