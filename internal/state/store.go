package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/stacksapp/stacks/internal/catalog"
)

// Filter sentinels. "All" means no restriction on that dimension.
const (
	FilterAll       = "All"
	StatusAvailable = "Available"
	StatusIssued    = "Issued"
)

// Snapshot is the session state the UI derives its views from: the last
// fetched collection plus the user-chosen query parameters.
type Snapshot struct {
	Books        []catalog.Book
	SearchQuery  string
	GenreFilter  string
	StatusFilter string
	Page         int

	Loaded      bool // at least one fetch succeeded
	LastUpdated time.Time
	LastError   error
}

// Store coordinates concurrent updates to the session snapshot. Fetch results
// are applied through generation tokens so a slow stale response can never
// overwrite a newer one.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
	fetchGen uint64
}

// NewStore returns a store with the default query parameters.
func NewStore() *Store {
	return &Store{
		snapshot: Snapshot{
			GenreFilter:  FilterAll,
			StatusFilter: FilterAll,
			Page:         1,
		},
	}
}

// SetBooks replaces the collection snapshot without touching filters or page.
func (s *Store) SetBooks(books []catalog.Book) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Books = cloneBooks(books)
	s.snapshot.Loaded = true
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
}

// SetSearchQuery replaces the search text and resets the page to 1.
func (s *Store) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.SearchQuery = query
	s.snapshot.Page = 1
}

// SetGenreFilter replaces the genre filter and resets the page to 1.
func (s *Store) SetGenreFilter(genre string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if genre == "" {
		genre = FilterAll
	}
	s.snapshot.GenreFilter = genre
	s.snapshot.Page = 1
}

// SetStatusFilter replaces the status filter and resets the page to 1.
func (s *Store) SetStatusFilter(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if status == "" {
		status = FilterAll
	}
	s.snapshot.StatusFilter = status
	s.snapshot.Page = 1
}

// SetPage sets the current page without bounds checking. Bounds enforcement
// belongs to the pagination surface, which knows the derived page count.
func (s *Store) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Page = page
}

// BeginFetch registers a new collection fetch and returns its generation
// token. Only the most recently issued token may apply its result.
func (s *Store) BeginFetch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetchGen++
	return s.fetchGen
}

// ApplyFetch applies a fetch result if gen is still the latest issued token.
// Stale results are discarded and the method reports false. On error the
// previous collection is kept and the error recorded for visibility.
func (s *Store) ApplyFetch(gen uint64, books []catalog.Book, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.fetchGen {
		return false
	}

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		return true
	}

	s.snapshot.Books = cloneBooks(books)
	s.snapshot.Loaded = true
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	return true
}

// Snapshot returns an independent copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Books = cloneBooks(s.snapshot.Books)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneBooks(books []catalog.Book) []catalog.Book {
	if len(books) == 0 {
		return nil
	}
	dup := make([]catalog.Book, len(books))
	copy(dup, books)
	return dup
}
