package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mirrorlake/docsync/internal/logger"
	"github.com/mirrorlake/docsync/models"
)

const defaultRequestTimeout = 15 * time.Second

type httpEndpointAdapter struct {
	client     *resty.Client
	collection string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPEndpointAdapter constructs an HTTP/REST implementation of
// [EndpointAdapter] for one remote endpoint. It normalises and validates the
// endpoint's base URL and configures the underlying client with the request
// timeout. The endpoint's token, when present, is installed immediately.
func NewHTTPEndpointAdapter(endpoint models.RemoteEndpoint, timeout time.Duration, log *logger.Logger) (EndpointAdapter, error) {
	baseURL, err := normalizeBaseURL(endpoint.URL)
	if err != nil {
		log.Err(err).Str("func", "NewHTTPEndpointAdapter").Msg("invalid endpoint base URL")
		return nil, err
	}

	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	a := &httpEndpointAdapter{
		client:     cli,
		collection: endpoint.Collection,
		logger:     log,
	}
	if endpoint.Token != "" {
		a.SetToken(endpoint.Token)
	}

	return a, nil
}

func (h *httpEndpointAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpEndpointAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpEndpointAdapter) PushBatch(ctx context.Context, batch models.ChangeBatch) error {
	req := models.PushRequest{
		Documents: batch.Results,
		Length:    len(batch.Results),
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/replication/" + url.PathEscape(h.collection) + "/push")
	if err != nil {
		return fmt.Errorf("push request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpEndpointAdapter) PullSince(ctx context.Context, checkpoint json.RawMessage, limit int) ([]models.Document, json.RawMessage, error) {
	req := models.PullRequest{
		Checkpoint: checkpoint,
		Limit:      limit,
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/replication/" + url.PathEscape(h.collection) + "/pull")
	if err != nil {
		return nil, nil, fmt.Errorf("pull request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, nil, err
	}

	var pr models.PullResponse
	if err = json.Unmarshal(resp.Body(), &pr); err != nil {
		return nil, nil, fmt.Errorf("decode pull response: %w", err)
	}

	return pr.Documents, pr.Checkpoint, nil
}

func (h *httpEndpointAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// normalizeBaseURL accepts "host:port", "//host:port" or a full URL and
// returns a scheme-qualified base URL without a trailing slash.
func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("endpoint URL is empty")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + strings.TrimPrefix(raw, "//")
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint URL %q: %w", raw, err)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("endpoint URL %q has no host", raw)
	}

	return strings.TrimRight(parsed.String(), "/"), nil
}
