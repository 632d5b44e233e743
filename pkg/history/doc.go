// Package history keeps a bounded, in-memory list of generated names for the
// caller that owns it. Nothing is persisted.
//
// Entries are kept newest first and keyed by the result ID so a single name
// can be looked up again. Once the configured capacity is reached the oldest
// entry is dropped, optionally notifying an eviction callback.
//
// # Usage
//
//	h := history.New(history.DefaultCapacity)
//	h.Add(result)
//	recent := h.List(10)
package history
