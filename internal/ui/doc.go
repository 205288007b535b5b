// Package ui implements the stacks terminal interface on Bubble Tea.
//
// The Model is the single event loop: user input and asynchronous results
// (collection fetches, mutations) all arrive as messages and are applied in
// arrival order, so session state is never mutated concurrently from the
// UI's point of view. Slow network work runs in commands; while one is in
// flight a spinner shows and the rest of the interface stays responsive.
//
// Surfaces: the listing (search, filters, sort, pagination), the add/edit
// form, the delete confirmation, and the help overlay. The listing is always
// derived by view.Compute from the latest session snapshot; the UI holds no
// copy of the collection beyond that snapshot.
package ui
