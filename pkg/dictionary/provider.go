// Package dictionary implements the external collaborator contract the
// suggestion engine depends on (spec §6.3): dictionaries() and tags(),
// idempotent and cacheable, matched by kind case-insensitively.
//
// Provider is the interface pkg/suggest consumes. StaticProvider is an
// in-memory implementation for tests and embedders with a fixed word list.
// FileProvider is the production reference implementation: a JSON manifest
// on disk, schema-validated, hot-reloaded via fsnotify, and fingerprinted
// with blake2b so that only a reload which actually changed something is
// logged.
package dictionary

import "context"

// Info describes one dictionary kind and its word count (spec §3).
type Info struct {
	Kind  string
	Count int
}

// Tag describes one tag available within a dictionary kind (spec §3).
type Tag struct {
	Kind        string
	Tag         string
	Description string
	OptInOnly   bool
	WordCount   int
}

// Provider is the collaborator contract pkg/suggest depends on (spec §6.3).
// Implementations must match Kind case-insensitively and may cache freely;
// both methods are expected to be idempotent.
type Provider interface {
	Dictionaries(ctx context.Context) ([]Info, error)
	Tags(ctx context.Context) ([]Tag, error)
}
