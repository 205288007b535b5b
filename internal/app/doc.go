// Package app is the composition root for the stacks application. It loads
// configuration and user preferences, builds the record store client, the
// session state store, and the mutation coordinator, and hands everything to
// the UI, which blocks until the user exits or the context is cancelled.
//
// Fatal errors (unreadable config, bad record store URL) are returned from
// Run. Everything that can fail after startup is recoverable and surfaces
// inside the UI instead.
package app
