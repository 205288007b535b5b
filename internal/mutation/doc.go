// Package mutation coordinates create, update, and delete operations against
// the record store. Each successful mutation triggers a full refetch of the
// collection rather than patching local state, so the session snapshot only
// ever holds what the store confirmed. Failures leave the snapshot exactly
// as it was.
package mutation
