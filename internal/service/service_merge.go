package service

import (
	"slices"
	"strings"

	"github.com/MKhiriev/go-records-sync/models"
)

// Merge reconciles a local collection with a remote one of the same entity
// type. It is a pure function: neither input is modified and the result
// shares no payload memory with them.
//
// For every well-formed remote entity:
//
//   - absent locally: added (a tombstone for an unknown id is ignored);
//   - present and remote.UpdatedAt >= local.UpdatedAt: the remote copy
//     replaces the local one (updated), or removes it when it is a tombstone;
//   - present and strictly older: the local copy is kept (skipped).
//
// Equal timestamps resolve in favour of the remote side. Local entities the
// remote side does not mention are kept as they are. Remote entities with an
// empty id are dropped and counted as skipped and malformed. When the remote
// side repeats an id, the last occurrence is used.
//
// Merged is ordered by id.
func Merge(local, remote []models.Entity) models.MergeResult {
	var result models.MergeResult

	localIndex := make(map[string]models.Entity, len(local))
	for _, e := range local {
		if !e.Valid() {
			continue
		}
		localIndex[e.ID] = e
	}

	remoteIndex := make(map[string]models.Entity, len(remote))
	remoteOrder := make([]string, 0, len(remote))
	for _, r := range remote {
		if !r.Valid() {
			result.Skipped++
			result.Malformed++
			continue
		}
		if _, seen := remoteIndex[r.ID]; !seen {
			remoteOrder = append(remoteOrder, r.ID)
		}
		remoteIndex[r.ID] = r
	}

	merged := make(map[string]models.Entity, len(localIndex)+len(remoteIndex))
	for id, e := range localIndex {
		merged[id] = e
	}

	for _, id := range remoteOrder {
		r := remoteIndex[id]
		l, existsLocally := localIndex[id]

		switch {
		case !existsLocally && r.Deleted:
			// never seen here, nothing to remove

		case !existsLocally:
			merged[id] = r
			result.Upserted = append(result.Upserted, r.Clone())
			result.Added++

		case r.UpdatedAt < l.UpdatedAt:
			// unacknowledged newer local edit
			result.Skipped++

		case r.Deleted:
			delete(merged, id)
			result.Removed = append(result.Removed, id)
			result.RemovedCount++

		default:
			merged[id] = r
			result.Upserted = append(result.Upserted, r.Clone())
			result.Updated++
		}
	}

	result.Merged = make([]models.Entity, 0, len(merged))
	for _, e := range merged {
		result.Merged = append(result.Merged, e.Clone())
	}
	slices.SortFunc(result.Merged, func(a, b models.Entity) int { return strings.Compare(a.ID, b.ID) })

	return result
}
