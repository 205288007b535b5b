// Package view computes the derived, displayable subset of the catalog from
// a state snapshot: filtering, sorting, and pagination. Every function here
// is pure; the same snapshot always yields the same view, so it is safe to
// recompute on each render instead of maintaining caches.
package view
