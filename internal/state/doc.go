// Package state holds the in-memory session state for stacks: the fetched
// book collection and the active query parameters (search text, genre and
// status filters, current page).
//
// Changing any filter resets the page to 1 so a shrinking result set can
// never strand the user on an out-of-range page. Collection fetches carry
// generation tokens; when two fetches overlap, only the most recently issued
// one may land, so the displayed snapshot always reflects the latest request
// rather than whichever response happened to finish last.
package state
