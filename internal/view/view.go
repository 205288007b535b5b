package view

import (
	"sort"
	"strings"

	"github.com/stacksapp/stacks/internal/catalog"
	"github.com/stacksapp/stacks/internal/state"
)

// PageSize is the fixed number of books shown per page.
const PageSize = 10

// Sort selects the ordering applied to the filtered sequence.
type Sort int

const (
	SortNone Sort = iota
	SortTitle
	SortStatus
	SortYear
)

// Label returns the display name for the sort mode.
func (s Sort) Label() string {
	switch s {
	case SortTitle:
		return "Title"
	case SortStatus:
		return "Status"
	case SortYear:
		return "Year"
	default:
		return "None"
	}
}

// Next returns the following sort mode in the cycle.
func (s Sort) Next() Sort {
	switch s {
	case SortNone:
		return SortTitle
	case SortTitle:
		return SortStatus
	case SortStatus:
		return SortYear
	default:
		return SortNone
	}
}

// View is the derived subset of the catalog to render. It is recomputed from
// a snapshot on every read; nothing here is cached or incrementally
// maintained.
type View struct {
	Filtered   []catalog.Book
	Paginated  []catalog.Book
	Page       int
	TotalPages int
}

// Compute derives the filtered, sorted, and paginated view from the snapshot.
// All three predicates must hold for a book to be included: case-insensitive
// substring match of the search text against title or author, exact genre
// match (unless "All"), and availability match (unless "All").
func Compute(snap state.Snapshot, sortMode Sort) View {
	filtered := make([]catalog.Book, 0, len(snap.Books))
	query := strings.ToLower(strings.TrimSpace(snap.SearchQuery))

	for _, book := range snap.Books {
		if !matchesSearch(book, query) {
			continue
		}
		if !matchesGenre(book, snap.GenreFilter) {
			continue
		}
		if !matchesStatus(book, snap.StatusFilter) {
			continue
		}
		filtered = append(filtered, book)
	}

	applySort(filtered, sortMode)

	totalPages := (len(filtered) + PageSize - 1) / PageSize
	if totalPages < 1 {
		totalPages = 1
	}

	return View{
		Filtered:   filtered,
		Paginated:  pageSlice(filtered, snap.Page),
		Page:       snap.Page,
		TotalPages: totalPages,
	}
}

// Genres enumerates the distinct non-empty genre values of the full
// collection, prefixed with the "All" sentinel. Order is first occurrence so
// the options stay stable while other filters change.
func Genres(books []catalog.Book) []string {
	genres := []string{state.FilterAll}
	seen := map[string]bool{}
	for _, book := range books {
		genre := strings.TrimSpace(book.Genre)
		if genre == "" || seen[genre] {
			continue
		}
		seen[genre] = true
		genres = append(genres, genre)
	}
	return genres
}

// StatusOptions lists the status filter choices in cycle order.
func StatusOptions() []string {
	return []string{state.FilterAll, state.StatusAvailable, state.StatusIssued}
}

func matchesSearch(book catalog.Book, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(book.Title), query) ||
		strings.Contains(strings.ToLower(book.Author), query)
}

func matchesGenre(book catalog.Book, filter string) bool {
	return filter == state.FilterAll || filter == "" || book.Genre == filter
}

func matchesStatus(book catalog.Book, filter string) bool {
	switch filter {
	case state.StatusAvailable:
		return book.Available
	case state.StatusIssued:
		return !book.Available
	default:
		return true
	}
}

func applySort(books []catalog.Book, mode Sort) {
	switch mode {
	case SortTitle:
		sort.SliceStable(books, func(i, j int) bool {
			return strings.ToLower(books[i].Title) < strings.ToLower(books[j].Title)
		})
	case SortStatus:
		sort.SliceStable(books, func(i, j int) bool {
			return books[i].Available && !books[j].Available
		})
	case SortYear:
		sort.SliceStable(books, func(i, j int) bool {
			return books[i].PublishedYear > books[j].PublishedYear
		})
	}
}

// pageSlice returns the window of books for the given 1-based page. An
// out-of-range page yields an empty slice rather than an error.
func pageSlice(books []catalog.Book, page int) []catalog.Book {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * PageSize
	if start >= len(books) {
		return nil
	}
	end := start + PageSize
	if end > len(books) {
		end = len(books)
	}
	return books[start:end]
}
