package service

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-records-sync/models"
)

func ent(id string, updatedAt int64, payload string) models.Entity {
	e := models.Entity{ID: id, UpdatedAt: updatedAt}
	if payload != "" {
		e.Payload = json.RawMessage(payload)
	}
	return e
}

func tomb(id string, updatedAt int64) models.Entity {
	return models.Entity{ID: id, UpdatedAt: updatedAt, Deleted: true}
}

func byID(entities []models.Entity) map[string]models.Entity {
	out := make(map[string]models.Entity, len(entities))
	for _, e := range entities {
		out[e.ID] = e
	}
	return out
}

// ── Precedence ──────────────────────────────────────────────────────────────

func TestMerge_Precedence(t *testing.T) {
	tests := []struct {
		name        string
		local       []models.Entity
		remote      []models.Entity
		wantPayload map[string]string
		wantAdded   int
		wantUpdated int
		wantSkipped int
	}{
		{
			name:        "remote only is added",
			remote:      []models.Entity{ent("a", 1, `{"v":1}`)},
			wantPayload: map[string]string{"a": `{"v":1}`},
			wantAdded:   1,
		},
		{
			name:        "local only is kept",
			local:       []models.Entity{ent("a", 1, `{"v":1}`)},
			wantPayload: map[string]string{"a": `{"v":1}`},
		},
		{
			name:        "newer remote replaces local",
			local:       []models.Entity{ent("a", 1, `{"v":"local"}`)},
			remote:      []models.Entity{ent("a", 2, `{"v":"remote"}`)},
			wantPayload: map[string]string{"a": `{"v":"remote"}`},
			wantUpdated: 1,
		},
		{
			name:        "newer local wins",
			local:       []models.Entity{ent("a", 3, `{"v":"local"}`)},
			remote:      []models.Entity{ent("a", 2, `{"v":"remote"}`)},
			wantPayload: map[string]string{"a": `{"v":"local"}`},
			wantSkipped: 1,
		},
		{
			name:        "equal timestamps resolve to remote",
			local:       []models.Entity{ent("a", 100, `{"v":"local"}`)},
			remote:      []models.Entity{ent("a", 100, `{"v":"remote"}`)},
			wantPayload: map[string]string{"a": `{"v":"remote"}`},
			wantUpdated: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Merge(tt.local, tt.remote)

			got := byID(result.Merged)
			require.Len(t, got, len(tt.wantPayload))
			for id, payload := range tt.wantPayload {
				assert.JSONEq(t, payload, string(got[id].Payload), "entity %s", id)
			}
			assert.Equal(t, tt.wantAdded, result.Added)
			assert.Equal(t, tt.wantUpdated, result.Updated)
			assert.Equal(t, tt.wantSkipped, result.Skipped)
		})
	}
}

// Пример из описания: local {a@5, b@10}, remote {a@7, c@3}.
func TestMerge_MixedCollection(t *testing.T) {
	local := []models.Entity{ent("a", 5, `{"n":"a-local"}`), ent("b", 10, `{"n":"b"}`)}
	remote := []models.Entity{ent("a", 7, `{"n":"a-remote"}`), ent("c", 3, `{"n":"c"}`)}

	result := Merge(local, remote)

	require.Len(t, result.Merged, 3)
	assert.Equal(t, []string{"a", "b", "c"}, models.EntityIDs(result.Merged))
	assert.Equal(t, int64(7), result.Merged[0].UpdatedAt)
	assert.Equal(t, int64(10), result.Merged[1].UpdatedAt)
	assert.Equal(t, 1, result.Added)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 0, result.Skipped)
	assert.ElementsMatch(t, []string{"a", "c"}, models.EntityIDs(result.Upserted))
	assert.True(t, result.Changed())
}

// ── Tombstones ──────────────────────────────────────────────────────────────

func TestMerge_Tombstones(t *testing.T) {
	t.Run("newer tombstone removes local", func(t *testing.T) {
		result := Merge([]models.Entity{ent("a", 1, `{}`)}, []models.Entity{tomb("a", 2)})

		assert.Empty(t, result.Merged)
		assert.Equal(t, []string{"a"}, result.Removed)
		assert.Equal(t, 1, result.RemovedCount)
	})

	t.Run("equal tombstone removes local", func(t *testing.T) {
		result := Merge([]models.Entity{ent("a", 2, `{}`)}, []models.Entity{tomb("a", 2)})

		assert.Empty(t, result.Merged)
		assert.Equal(t, 1, result.RemovedCount)
	})

	t.Run("older tombstone loses to local edit", func(t *testing.T) {
		result := Merge([]models.Entity{ent("a", 5, `{}`)}, []models.Entity{tomb("a", 2)})

		require.Len(t, result.Merged, 1)
		assert.Empty(t, result.Removed)
		assert.Equal(t, 1, result.Skipped)
	})

	t.Run("tombstone for unknown id is ignored", func(t *testing.T) {
		result := Merge(nil, []models.Entity{tomb("ghost", 2)})

		assert.Empty(t, result.Merged)
		assert.Empty(t, result.Removed)
		assert.False(t, result.Changed())
	})
}

// ── Malformed and duplicates ────────────────────────────────────────────────

func TestMerge_MalformedRemoteIsSkipped(t *testing.T) {
	result := Merge(nil, []models.Entity{ent("", 1, `{}`), ent("a", 1, `{}`)})

	assert.Equal(t, []string{"a"}, models.EntityIDs(result.Merged))
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 1, result.Malformed)
	assert.Equal(t, 0, result.Conflicts())
}

func TestMerge_DuplicateRemoteIDs_LastWins(t *testing.T) {
	result := Merge(nil, []models.Entity{ent("a", 1, `{"v":1}`), ent("a", 2, `{"v":2}`)})

	require.Len(t, result.Merged, 1)
	assert.Equal(t, int64(2), result.Merged[0].UpdatedAt)
	assert.Equal(t, 1, result.Added)
}

// ── Properties ──────────────────────────────────────────────────────────────

func randomCollection(r *rand.Rand, n int, tombstones bool) []models.Entity {
	out := make([]models.Entity, 0, n)
	for range n {
		id := fmt.Sprintf("id-%02d", r.IntN(30))
		ts := r.Int64N(20)
		if tombstones && r.IntN(5) == 0 {
			out = append(out, tomb(id, ts))
			continue
		}
		out = append(out, ent(id, ts, fmt.Sprintf(`{"ts":%d}`, ts)))
	}
	return out
}

func uniqueByID(in []models.Entity) []models.Entity {
	return Merge(nil, in).Merged
}

func TestMerge_Properties(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 7))

	for i := range 200 {
		local := uniqueByID(randomCollection(r, 15, false))
		remote := randomCollection(r, 15, true)

		localCopy := models.CloneEntities(local)
		remoteCopy := models.CloneEntities(remote)

		result := Merge(local, remote)
		merged := byID(result.Merged)

		// входные данные не меняются
		require.Equal(t, localCopy, local, "iteration %d: local mutated", i)
		require.Equal(t, remoteCopy, remote, "iteration %d: remote mutated", i)

		// идемпотентность: merge(merge(L, R), R) == merge(L, R)
		again := Merge(result.Merged, remote)
		require.Equal(t, result.Merged, again.Merged, "iteration %d: not idempotent", i)

		remoteLast := make(map[string]models.Entity)
		for _, e := range remote {
			remoteLast[e.ID] = e
		}

		// полнота и приоритет
		for _, l := range local {
			rem, inRemote := remoteLast[l.ID]
			got, inMerged := merged[l.ID]
			switch {
			case !inRemote:
				require.True(t, inMerged, "iteration %d: local %s lost", i, l.ID)
				require.Equal(t, l, got)
			case rem.UpdatedAt < l.UpdatedAt:
				require.Equal(t, l, got, "iteration %d: newer local %s overwritten", i, l.ID)
			case rem.Deleted:
				require.False(t, inMerged, "iteration %d: %s should be removed", i, l.ID)
			default:
				require.Equal(t, rem, got, "iteration %d: remote %s should win", i, l.ID)
			}
		}
		for id, rem := range remoteLast {
			if _, inLocal := byID(local)[id]; inLocal || rem.Deleted {
				continue
			}
			require.Contains(t, merged, id, "iteration %d: remote %s missing", i, id)
		}
	}
}

func TestMerge_ResultDoesNotAliasInputs(t *testing.T) {
	remote := []models.Entity{ent("a", 1, `{"v":1}`)}

	result := Merge(nil, remote)
	result.Merged[0].Payload[2] = 'X'
	result.Upserted[0].Payload[2] = 'Y'

	assert.Equal(t, `{"v":1}`, string(remote[0].Payload))
}
