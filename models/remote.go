// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// FetchRequest asks the remote store for whole collections. An empty
// Collections list means every collection of the tenant.
type FetchRequest struct {
	TenantID    string   `json:"tenant_id"`
	Collections []string `json:"collections,omitempty"`
}

// FetchResponse maps a collection name to its full list of entities.
type FetchResponse map[string][]Entity

// PushRequest carries a single pending change to the remote store.
type PushRequest struct {
	TenantID   string          `json:"-"`
	Collection string          `json:"collection"`
	Operation  Operation       `json:"operation"`
	EntityID   string          `json:"entity_id"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}

// PushResponse is the remote acknowledgment of a [PushRequest].
//
// ServerUpdatedAt is the version marker the server assigned to the entity and
// is nil when the change was rejected.
type PushResponse struct {
	Accepted        bool   `json:"accepted"`
	ServerUpdatedAt *int64 `json:"server_updated_at,omitempty"`
	Reason          string `json:"reason,omitempty"`
}

// NewPushRequest converts a queued change into its wire form.
func NewPushRequest(change PendingChange) PushRequest {
	return PushRequest{
		TenantID:   change.TenantID,
		Collection: change.Collection,
		Operation:  change.Operation,
		EntityID:   change.EntityID,
		Payload:    change.Payload,
	}
}
