// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EventKind classifies a [ProgressEvent].
type EventKind string

const (
	EventPhaseChanged   EventKind = "phase_changed"
	EventCriticalLoaded EventKind = "critical_loaded"
	EventProgress       EventKind = "progress"
	EventComplete       EventKind = "complete"
	EventWarning        EventKind = "warning"
	EventError          EventKind = "error"
)

// ProgressEvent is published by the orchestrator while a sync runs. Hosts
// subscribe to a stream of these instead of registering callbacks deep in the
// loader.
type ProgressEvent struct {
	Kind       EventKind `json:"kind"`
	TenantID   string    `json:"tenant_id"`
	SessionID  string    `json:"session_id"`
	Phase      SyncPhase `json:"phase,omitempty"`
	Collection string    `json:"collection,omitempty"`
	Loaded     int       `json:"loaded,omitempty"`
	Total      int       `json:"total,omitempty"`
	ErrorKind  ErrorKind `json:"error_kind,omitempty"`
	Message    string    `json:"message,omitempty"`
	At         time.Time `json:"at"`

	// RunLoaded and RunTotal sum Loaded and Total over every collection the
	// run has touched so far. RunLoaded never decreases within a run.
	RunLoaded int `json:"run_loaded,omitempty"`
	RunTotal  int `json:"run_total,omitempty"`
}

// CollectionSnapshot is the result of one chunk merge handed to the state
// sink. It is a private copy; the sink may keep it.
type CollectionSnapshot struct {
	TenantID   string
	Collection string
	Upserted   []Entity
	Removed    []string
	// Final is set on the last snapshot of a collection in a run.
	Final bool
}
