// Package catalog provides the HTTP client for the book record store along
// with the record types and draft validation rules.
//
// The record store is an external collection resource: GET /books lists all
// records, GET /books/{id} fetches one, POST /books creates, PUT /books/{id}
// replaces the mutable fields, DELETE /books/{id} removes. All payloads are
// JSON. The client never caches; callers own consistency by refetching the
// collection after every successful mutation.
//
// Validation lives here rather than in the UI so that a rejected draft can
// never reach the network layer regardless of which surface submitted it.
package catalog
