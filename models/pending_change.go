// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// Operation is the kind of local mutation recorded in a [PendingChange].
type Operation string

const (
	OperationCreate Operation = "create"
	OperationUpdate Operation = "update"
	OperationDelete Operation = "delete"
)

// Valid reports whether op is one of the known operations.
func (op Operation) Valid() bool {
	switch op {
	case OperationCreate, OperationUpdate, OperationDelete:
		return true
	}
	return false
}

// Escalate folds a new local mutation into an already queued one for the same
// entity and returns the operation that must be pushed upstream.
//
//   - anything followed by delete is a delete;
//   - create followed by update stays a create (the server has never seen it);
//   - delete followed by create or update is an update (the server still holds
//     the record because the delete was never pushed);
//   - otherwise the newer operation wins.
func (op Operation) Escalate(next Operation) Operation {
	switch {
	case next == OperationDelete:
		return OperationDelete
	case op == OperationCreate:
		return OperationCreate
	case op == OperationDelete:
		return OperationUpdate
	default:
		return next
	}
}

// PendingChange is a local mutation that has not been acknowledged by the
// remote store yet.
//
// The queue holds at most one change per (tenant, collection, entity). Repeated
// edits collapse into the latest payload and bump Revision, which lets the
// upstream phase detect that a change was superseded while it was in flight.
type PendingChange struct {
	// Seq orders changes by the time the entity was first queued.
	Seq int64 `json:"seq"`

	TenantID   string          `json:"tenant_id"`
	Collection string          `json:"collection"`
	EntityID   string          `json:"entity_id"`
	Operation  Operation       `json:"operation"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`

	// Revision increments every time a newer edit collapses into this change.
	Revision int64 `json:"revision"`

	// Attempts counts failed pushes.
	Attempts int `json:"attempts"`

	// LastError is the message of the most recent failed push.
	LastError string `json:"last_error,omitempty"`
}
