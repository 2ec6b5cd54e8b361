package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-records-sync/internal/config"
	"github.com/MKhiriev/go-records-sync/internal/logger"
	"github.com/MKhiriev/go-records-sync/internal/utils"
	"github.com/MKhiriev/go-records-sync/models"
	"github.com/go-resty/resty/v2"
)

const (
	collectionsPath = "/api/v1/collections"
	chunksPath      = "/api/v1/collections/{collection}/chunks"
	changesPath     = "/api/v1/changes"
)

type httpRemoteAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPRemoteAdapter constructs an HTTP/REST implementation of
// [RemoteAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the request timeout. The bearer
// token from the config, if any, is installed right away.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPRemoteAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (RemoteAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpRemoteAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}
	a.SetToken(adapterCfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [RemoteAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent requests.
func (h *httpRemoteAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [RemoteAdapter].
func (h *httpRemoteAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// TenantID implements [RemoteAdapter]. The token is decoded without
// verifying its signature; the server does the verification.
func (h *httpRemoteAdapter) TenantID() (string, error) {
	token := h.Token()
	if token == "" {
		return "", ErrEmptyToken
	}
	return utils.ParseTenantIDFromJWT(token)
}

// FetchCollections implements [RemoteAdapter] with
// GET /api/v1/collections?collections=a,b.
func (h *httpRemoteAdapter) FetchCollections(ctx context.Context, req models.FetchRequest) (models.FetchResponse, error) {
	log := logger.FromContext(ctx)

	request := h.authedRequest(ctx)
	if len(req.Collections) > 0 {
		request.SetQueryParam("collections", strings.Join(req.Collections, ","))
	}

	resp, err := request.Get(collectionsPath)
	if err != nil {
		log.Err(err).Str("func", "httpRemoteAdapter.FetchCollections").Msg("fetch collections request failed")
		return nil, mapRequestError(ctx, "fetch collections", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var out models.FetchResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("%w: decode collections: %w", ErrInvalidResponse, err)
	}
	if out == nil {
		out = models.FetchResponse{}
	}

	return out, nil
}

// FetchChunk implements [RemoteAdapter] with
// GET /api/v1/collections/{collection}/chunks?limit=&offset=.
func (h *httpRemoteAdapter) FetchChunk(ctx context.Context, req models.ChunkRequest) (models.ChunkResponse, error) {
	log := logger.FromContext(ctx)

	resp, err := h.authedRequest(ctx).
		SetPathParam("collection", req.Collection).
		SetQueryParams(map[string]string{
			"limit":  strconv.Itoa(req.Limit),
			"offset": strconv.Itoa(req.Offset),
		}).
		Get(chunksPath)
	if err != nil {
		log.Err(err).
			Str("func", "httpRemoteAdapter.FetchChunk").
			Str("collection", req.Collection).
			Int("offset", req.Offset).
			Msg("fetch chunk request failed")
		return models.ChunkResponse{}, mapRequestError(ctx, "fetch chunk", err)
	}
	if err = mapChunkError(resp); err != nil {
		return models.ChunkResponse{}, err
	}

	var out models.ChunkResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.ChunkResponse{}, fmt.Errorf("%w: decode chunk: %w", ErrInvalidResponse, err)
	}

	return out, nil
}

// Push implements [RemoteAdapter] with POST /api/v1/changes. A 400, 409 or
// 422 response is a rejection of this particular change.
func (h *httpRemoteAdapter) Push(ctx context.Context, req models.PushRequest) (models.PushResponse, error) {
	log := logger.FromContext(ctx)

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(changesPath)
	if err != nil {
		log.Err(err).
			Str("func", "httpRemoteAdapter.Push").
			Str("collection", req.Collection).
			Str("entity_id", req.EntityID).
			Msg("push request failed")
		return models.PushResponse{}, mapRequestError(ctx, "push", err)
	}

	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrBadRequest) || errors.Is(err, ErrConflict) || resp.StatusCode() == http.StatusUnprocessableEntity {
			return models.PushResponse{Accepted: false, Reason: strings.TrimSpace(string(resp.Body()))}, nil
		}
		return models.PushResponse{}, err
	}

	var out models.PushResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.PushResponse{}, fmt.Errorf("%w: decode push result: %w", ErrInvalidResponse, err)
	}

	return out, nil
}

func (h *httpRemoteAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
