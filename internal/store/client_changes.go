package store

import (
	"fmt"

	"github.com/MKhiriev/go-records-sync/models"
)

func validateChange(change models.PendingChange) error {
	switch {
	case change.TenantID == "":
		return fmt.Errorf("%w: empty tenant id", ErrInvalidChange)
	case change.Collection == "":
		return fmt.Errorf("%w: empty collection", ErrInvalidChange)
	case change.EntityID == "":
		return fmt.Errorf("%w: empty entity id", ErrInvalidChange)
	case !change.Operation.Valid():
		return fmt.Errorf("%w: unknown operation %q", ErrInvalidChange, change.Operation)
	}
	return nil
}

// foldChange merges a newer local mutation into the queued change of the
// same entity. The queued change keeps its seq and creation time.
func foldChange(queued, next models.PendingChange) models.PendingChange {
	folded := queued
	folded.Operation = queued.Operation.Escalate(next.Operation)
	folded.Payload = next.Payload
	if folded.Operation == models.OperationDelete {
		folded.Payload = nil
	}
	folded.Revision = queued.Revision + 1

	return folded
}

// withholdDeleted drops remote entities whose local delete is still queued.
// The second value counts them; they are local wins for the merge result.
func withholdDeleted(remote []models.Entity, deleted map[string]struct{}) ([]models.Entity, int) {
	if len(deleted) == 0 {
		return remote, 0
	}

	kept := make([]models.Entity, 0, len(remote))
	for _, e := range remote {
		if _, ok := deleted[e.ID]; ok {
			continue
		}
		kept = append(kept, e)
	}
	return kept, len(remote) - len(kept)
}
