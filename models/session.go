// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncPhase is the state of a sync session.
type SyncPhase string

const (
	PhaseIdle                 SyncPhase = "idle"
	PhaseUpstream             SyncPhase = "upstream"
	PhaseDownstreamCritical   SyncPhase = "downstream-critical"
	PhaseDownstreamBackground SyncPhase = "downstream-background"
	PhaseDone                 SyncPhase = "done"
	PhaseFailed               SyncPhase = "failed"
)

// Terminal reports whether no further transition except back to idle is
// possible from p.
func (p SyncPhase) Terminal() bool {
	return p == PhaseDone || p == PhaseFailed
}

// Progress counts loaded entities against the total the remote reported.
type Progress struct {
	Loaded int `json:"loaded"`
	Total  int `json:"total"`
}

// SyncSession is the state of one orchestrator run for a tenant.
type SyncSession struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Phase     SyncPhase `json:"phase"`
	StartedAt time.Time `json:"started_at"`
	Progress  Progress  `json:"progress"`
}
