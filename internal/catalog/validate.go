package catalog

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// minPublishedYear is the earliest year a draft may claim. Anything older is
// assumed to be a typo rather than an incunable.
const minPublishedYear = 1000

// FieldErrors maps field names to human-readable validation messages.
// It implements error so a rejected draft can travel through error returns.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "invalid input"
	}
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e[field]))
	}
	return strings.Join(parts, "; ")
}

// Validate checks the draft against the create rules. A nil result means the
// draft may be submitted.
func (d Draft) Validate() FieldErrors {
	errs := FieldErrors{}
	requireNonEmpty(errs, "title", d.Title)
	requireNonEmpty(errs, "author", d.Author)
	requireNonEmpty(errs, "genre", d.Genre)
	requireNonEmpty(errs, "language", d.Language)
	checkYear(errs, d.PublishedYear)
	if d.Pages < 1 {
		errs["pages"] = "must be at least 1"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Validate checks the edit payload against the update rules.
func (e Edit) Validate() FieldErrors {
	errs := FieldErrors{}
	requireNonEmpty(errs, "title", e.Title)
	requireNonEmpty(errs, "author", e.Author)
	requireNonEmpty(errs, "genre", e.Genre)
	checkYear(errs, e.PublishedYear)
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func requireNonEmpty(errs FieldErrors, field, value string) {
	if strings.TrimSpace(value) == "" {
		errs[field] = "is required"
	}
}

func checkYear(errs FieldErrors, year int) {
	switch {
	case year > time.Now().Year():
		errs["publishedYear"] = "cannot be in the future"
	case year < minPublishedYear:
		errs["publishedYear"] = fmt.Sprintf("must be %d or later", minPublishedYear)
	}
}
