// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Page size limits shared by the chunked loader, the HTTP adapter and the
// reference server.
const (
	DefaultChunkSize = 200
	MaxChunkSize     = 500
)

// ClampChunkSize normalises a requested page size: non-positive values fall
// back to [DefaultChunkSize], values above [MaxChunkSize] are capped.
func ClampChunkSize(size int) int {
	switch {
	case size <= 0:
		return DefaultChunkSize
	case size > MaxChunkSize:
		return MaxChunkSize
	default:
		return size
	}
}

// ChunkRequest asks the remote store for one page of a collection.
type ChunkRequest struct {
	TenantID   string `json:"tenant_id"`
	Collection string `json:"collection"`
	Limit      int    `json:"limit"`
	Offset     int    `json:"offset"`
}

// ChunkResponse is one page of a paginated collection fetch.
//
// NextOffset equals Offset + len(Entities) and HasMore equals
// NextOffset < Total. Ordering is stable for a fixed (Limit, Offset) pair as
// long as nobody writes to the collection between pages.
type ChunkResponse struct {
	Entities   []Entity `json:"entities"`
	Total      int      `json:"total"`
	HasMore    bool     `json:"has_more"`
	NextOffset int      `json:"next_offset"`
	Limit      int      `json:"limit"`
	Offset     int      `json:"offset"`
}

// NewChunkResponse builds a page for entities starting at offset within a
// collection of total records, filling the derived fields.
func NewChunkResponse(entities []Entity, total, limit, offset int) ChunkResponse {
	next := offset + len(entities)
	return ChunkResponse{
		Entities:   entities,
		Total:      total,
		HasMore:    next < total,
		NextOffset: next,
		Limit:      limit,
		Offset:     offset,
	}
}
