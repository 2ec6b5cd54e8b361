// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
)

// Entity is a single business record (account, contact, invoice, ...) as seen
// by the synchronization engine.
//
// Only ID, UpdatedAt and Deleted are interpreted. Payload carries the
// collection-specific fields and is passed through untouched between the
// remote store, the local store and the state sink.
type Entity struct {
	// ID is the opaque identifier of the record. It is stable across the
	// local cache and the remote store and unique within one collection.
	ID string `json:"id"`

	// UpdatedAt is a monotonic version marker. The reference server stamps it
	// with unix milliseconds on every accepted write.
	UpdatedAt int64 `json:"updated_at"`

	// Deleted marks a remote tombstone: the record was removed on the server
	// at UpdatedAt.
	Deleted bool `json:"deleted,omitempty"`

	// Payload holds the collection-specific fields as raw JSON.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Valid reports whether the entity carries the fields the engine relies on.
func (e Entity) Valid() bool {
	return e.ID != ""
}

// Clone returns a deep copy of e. Payload bytes are copied so the receiver
// can be handed to code that does not own the original.
func (e Entity) Clone() Entity {
	c := e
	if e.Payload != nil {
		c.Payload = bytes.Clone(e.Payload)
	}
	return c
}

// CloneEntities deep-copies a slice of entities. A nil slice stays nil.
func CloneEntities(in []Entity) []Entity {
	if in == nil {
		return nil
	}
	out := make([]Entity, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}

// EntityIDs returns the identifiers of entities in their original order.
func EntityIDs(entities []Entity) []string {
	ids := make([]string, 0, len(entities))
	for _, e := range entities {
		ids = append(ids, e.ID)
	}
	return ids
}
