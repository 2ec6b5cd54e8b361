// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MergeResult is the outcome of reconciling a local collection with a remote
// one.
type MergeResult struct {
	// Merged is the reconciled collection: every surviving local entity plus
	// every remote entity that won.
	Merged []Entity

	// Upserted lists the entities that differ from the local side and must be
	// written to the local store.
	Upserted []Entity

	// Removed lists ids of local entities deleted by a remote tombstone.
	Removed []string

	Added        int
	Updated      int
	RemovedCount int

	// Skipped counts remote entities that lost to a newer local copy and
	// malformed remote entities that were dropped.
	Skipped int

	// Malformed counts the dropped entities included in Skipped.
	Malformed int
}

// Changed reports whether applying the result modifies the local store.
func (r MergeResult) Changed() bool {
	return len(r.Upserted) > 0 || len(r.Removed) > 0
}

// Conflicts returns the number of local-wins events, i.e. skipped entities
// that were well-formed.
func (r MergeResult) Conflicts() int {
	return r.Skipped - r.Malformed
}
