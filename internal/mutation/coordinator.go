package mutation

import (
	"context"
	"fmt"

	"github.com/stacksapp/stacks/internal/catalog"
	"github.com/stacksapp/stacks/internal/state"
)

// Coordinator orchestrates record store mutations and keeps the session
// state consistent afterward. Every successful mutation is followed by a
// full collection refetch; a failed mutation leaves the prior snapshot
// untouched.
type Coordinator struct {
	store   catalog.Store
	session *state.Store
}

// New builds a Coordinator around the given record store and session state.
func New(store catalog.Store, session *state.Store) *Coordinator {
	return &Coordinator{store: store, session: session}
}

// Refresh refetches the collection and applies it to the session under a
// fresh generation token. A stale overlapping fetch cannot clobber the
// result.
func (c *Coordinator) Refresh(ctx context.Context) error {
	gen := c.session.BeginFetch()
	books, err := c.store.List(ctx)
	c.session.ApplyFetch(gen, books, err)
	if err != nil {
		return fmt.Errorf("fetch books: %w", err)
	}
	return nil
}

// Create validates and submits a new book, then refetches the collection.
// A validation failure is returned as catalog.FieldErrors and never reaches
// the network.
func (c *Coordinator) Create(ctx context.Context, draft catalog.Draft) error {
	if errs := draft.Validate(); errs != nil {
		return errs
	}
	if _, err := c.store.Create(ctx, draft); err != nil {
		return fmt.Errorf("create book: %w", err)
	}
	return c.Refresh(ctx)
}

// Load fetches a single record to populate an edit form.
func (c *Coordinator) Load(ctx context.Context, id string) (catalog.Book, error) {
	book, err := c.store.Get(ctx, id)
	if err != nil {
		return catalog.Book{}, fmt.Errorf("load book: %w", err)
	}
	return book, nil
}

// Update validates and submits the merged edit payload for an existing
// record, then refetches the collection.
func (c *Coordinator) Update(ctx context.Context, id string, edit catalog.Edit) error {
	if errs := edit.Validate(); errs != nil {
		return errs
	}
	if _, err := c.store.Update(ctx, id, edit); err != nil {
		return fmt.Errorf("update book: %w", err)
	}
	return c.Refresh(ctx)
}

// Delete removes a record after the caller has confirmed the action, then
// refetches the collection.
func (c *Coordinator) Delete(ctx context.Context, id string) error {
	if err := c.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	return c.Refresh(ctx)
}
