// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ErrorKind names an entry of the sync error taxonomy as it is reported to the
// host.
type ErrorKind string

const (
	ErrorKindTransport     ErrorKind = "transport"
	ErrorKindAuth          ErrorKind = "auth"
	ErrorKindMergeConflict ErrorKind = "merge_conflict"
	ErrorKindMalformed     ErrorKind = "malformed_entity"
	ErrorKindPushRejected  ErrorKind = "push_rejected"
	ErrorKindAborted       ErrorKind = "aborted"
	ErrorKindStorage       ErrorKind = "storage"
)

// SyncWarning is a non-fatal problem recorded during a run.
type SyncWarning struct {
	Kind       ErrorKind `json:"kind"`
	Collection string    `json:"collection,omitempty"`
	EntityID   string    `json:"entity_id,omitempty"`
	Message    string    `json:"message"`
}

// CollectionReport aggregates merge statistics of one collection over a run.
type CollectionReport struct {
	Loaded   int  `json:"loaded"`
	Total    int  `json:"total"`
	Added    int  `json:"added"`
	Updated  int  `json:"updated"`
	Removed  int  `json:"removed"`
	Skipped  int  `json:"skipped"`
	Partial  bool `json:"partial,omitempty"`
	FellBack bool `json:"fell_back,omitempty"`
}

// Add accumulates the counters of a merge into the report.
func (c *CollectionReport) Add(r MergeResult) {
	c.Added += r.Added
	c.Updated += r.Updated
	c.Removed += r.RemovedCount
	c.Skipped += r.Skipped
}

// SyncReport summarises one orchestrator run.
type SyncReport struct {
	SessionID  string                      `json:"session_id,omitempty"`
	TenantID   string                      `json:"tenant_id"`
	Phase      SyncPhase                   `json:"phase"`
	StartedAt  time.Time                   `json:"started_at"`
	FinishedAt time.Time                   `json:"finished_at"`
	Pushed     int                         `json:"pushed"`
	PushFailed int                         `json:"push_failed"`
	Critical   bool                        `json:"critical_loaded"`
	Collection map[string]CollectionReport `json:"collections,omitempty"`
	Warnings   []SyncWarning               `json:"warnings,omitempty"`

	// Coalesced is set when the request found an active session for the
	// tenant and did nothing.
	Coalesced bool `json:"coalesced,omitempty"`
}

// Warn appends a warning to the report.
func (r *SyncReport) Warn(kind ErrorKind, collection, message string) {
	r.Warnings = append(r.Warnings, SyncWarning{Kind: kind, Collection: collection, Message: message})
}
