package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-records-sync/internal/logger"
	"github.com/MKhiriev/go-records-sync/internal/utils"
	"github.com/MKhiriev/go-records-sync/models"
)

// fetchCollections serves GET /api/v1/collections?collections=a,b. Without
// the query parameter every collection of the tenant is returned.
func (h *Handler) fetchCollections(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	tenantID, found := utils.GetTenantIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.fetchCollections").Msg("no tenant id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	req := models.FetchRequest{TenantID: tenantID, Collections: splitList(r.URL.Query().Get("collections"))}

	resp, err := h.services.RecordService.FetchCollections(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.fetchCollections").Msg("error fetching collections")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

// fetchChunk serves GET /api/v1/collections/{collection}/chunks?limit=&offset=.
func (h *Handler) fetchChunk(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	tenantID, found := utils.GetTenantIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.fetchChunk").Msg("no tenant id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	limit, err := intParam(r, "limit")
	if err != nil {
		http.Error(w, "invalid limit", http.StatusBadRequest)
		return
	}
	offset, err := intParam(r, "offset")
	if err != nil {
		http.Error(w, "invalid offset", http.StatusBadRequest)
		return
	}

	resp, err := h.services.RecordService.FetchChunk(ctx, models.ChunkRequest{
		TenantID:   tenantID,
		Collection: chi.URLParam(r, "collection"),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		log.Err(err).Str("func", "*Handler.fetchChunk").Msg("error fetching chunk")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

// pushChange serves POST /api/v1/changes. The tenant always comes from the
// token, never from the body.
func (h *Handler) pushChange(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	tenantID, found := utils.GetTenantIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.pushChange").Msg("no tenant id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.PushRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.pushChange").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	req.TenantID = tenantID

	resp, err := h.services.RecordService.ApplyChange(ctx, req)
	if err != nil {
		log.Err(err).
			Str("func", "*Handler.pushChange").
			Str("collection", req.Collection).
			Str("entity_id", req.EntityID).
			Msg("change rejected")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// intParam reads an optional integer query parameter; absent means zero.
func intParam(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
