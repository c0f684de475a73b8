package resource

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"backoffice/internal/domain"
)

// Entity is any backend-managed record. The only contract the client
// imposes is "has an id once persisted".
type Entity interface {
	EntityID() int64
}

// CredentialProvider returns the bearer credential to attach to one call.
// It is consulted on every request, not cached at client construction, so a
// refreshed credential is honored without rebuilding clients.
type CredentialProvider func(ctx context.Context) string

// API is the shared configuration for every resource client: core API root,
// version prefix and the per-call credential lookup.
type API struct {
	BaseURL     string
	Prefix      string
	HTTPClient  *http.Client
	Credentials CredentialProvider
}

func NewAPI(baseURL, prefix string, creds CredentialProvider) *API {
	return &API{
		BaseURL:     baseURL,
		Prefix:      prefix,
		HTTPClient:  &http.Client{Timeout: 30 * time.Second},
		Credentials: creds,
	}
}

func (a *API) httpClient() *http.Client {
	if a.HTTPClient != nil {
		return a.HTTPClient
	}
	return http.DefaultClient
}

// Endpoint joins base URL, version prefix and path segments.
func (a *API) Endpoint(parts ...string) string {
	segs := []string{strings.TrimRight(a.BaseURL, "/")}
	if p := strings.Trim(a.Prefix, "/"); p != "" {
		segs = append(segs, p)
	}
	for _, part := range parts {
		if part = strings.Trim(part, "/"); part != "" {
			segs = append(segs, part)
		}
	}
	return strings.Join(segs, "/")
}

// Do performs one JSON call. Transport errors propagate untouched; non-2xx
// answers come back as domain.UpstreamError. No retries, no caching, no
// de-duplication: independent calls stay independent.
func (a *API) Do(ctx context.Context, method, endpoint string, query url.Values, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, err
	}
	if query != nil {
		req.URL.RawQuery = query.Encode()
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.Credentials != nil {
		if tok := a.Credentials(ctx); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	res, err := a.httpClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, domain.UpstreamError{Status: res.StatusCode, Body: strings.TrimSpace(string(raw))}
	}
	return raw, nil
}

// Client gives uniform CRUD + pagination access to one entity collection
// under basePath. It is stateless; every method is an independent call.
type Client[T Entity] struct {
	api      *API
	basePath string
}

func NewClient[T Entity](api *API, basePath string) *Client[T] {
	return &Client[T]{api: api, basePath: strings.Trim(basePath, "/")}
}

// BasePath returns the collection path this client is bound to.
func (c *Client[T]) BasePath() string { return c.basePath }

// FetchPaginated issues one GET with q's defaults-filled parameters. A
// response missing the expected envelope decodes to an empty page rather
// than an error.
func (c *Client[T]) FetchPaginated(ctx context.Context, q Query) (Page[T], error) {
	var page Page[T]
	values, err := q.values()
	if err != nil {
		return page, err
	}
	raw, err := c.api.Do(ctx, http.MethodGet, c.api.Endpoint(c.basePath), values, nil)
	if err != nil {
		return page, err
	}
	if len(raw) > 0 {
		// missing or malformed fields fall back to zero values
		_ = json.Unmarshal(raw, &page)
	}
	if page.Items == nil {
		page.Items = []T{}
	}
	return page, nil
}

// FetchAll returns the whole collection from {basePath}/all. The body may
// be `{"data":[...]}` or a bare array; both shapes are accepted.
func (c *Client[T]) FetchAll(ctx context.Context) ([]T, error) {
	raw, err := c.api.Do(ctx, http.MethodGet, c.api.Endpoint(c.basePath, "all"), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[T](raw), nil
}

// FetchGrouped returns {basePath}/groups as-is (a bare array).
func (c *Client[T]) FetchGrouped(ctx context.Context) ([]T, error) {
	raw, err := c.api.Do(ctx, http.MethodGet, c.api.Endpoint(c.basePath, "groups"), nil, nil)
	if err != nil {
		return nil, err
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return []T{}, nil
	}
	return items, nil
}

func (c *Client[T]) GetByID(ctx context.Context, id int64) (T, error) {
	var item T
	raw, err := c.api.Do(ctx, http.MethodGet, c.idEndpoint(id), nil, nil)
	if err != nil {
		return item, err
	}
	if err := json.Unmarshal(raw, &item); err != nil {
		return item, domain.InternalError{Msg: "undecodable entity body", Err: err}
	}
	return item, nil
}

func (c *Client[T]) Create(ctx context.Context, item T) (T, error) {
	raw, err := c.api.Do(ctx, http.MethodPost, c.api.Endpoint(c.basePath), nil, item)
	if err != nil {
		return item, err
	}
	var created T
	if err := json.Unmarshal(raw, &created); err != nil {
		return item, domain.InternalError{Msg: "undecodable entity body", Err: err}
	}
	return created, nil
}

// Update PUTs item to {basePath}/{id}; the id comes from the item itself
// and must be set.
func (c *Client[T]) Update(ctx context.Context, item T) (T, error) {
	if item.EntityID() == 0 {
		return item, domain.ValidationError{Field: "id", Msg: "required for update"}
	}
	raw, err := c.api.Do(ctx, http.MethodPut, c.idEndpoint(item.EntityID()), nil, item)
	if err != nil {
		return item, err
	}
	var updated T
	if err := json.Unmarshal(raw, &updated); err != nil {
		return item, domain.InternalError{Msg: "undecodable entity body", Err: err}
	}
	return updated, nil
}

// Remove DELETEs {basePath}/{id}. Backends that answer with an empty body
// get the original payload echoed back as the result.
func (c *Client[T]) Remove(ctx context.Context, item T) (T, error) {
	if item.EntityID() == 0 {
		return item, domain.ValidationError{Field: "id", Msg: "required for delete"}
	}
	raw, err := c.api.Do(ctx, http.MethodDelete, c.idEndpoint(item.EntityID()), nil, nil)
	if err != nil {
		return item, err
	}
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return item, nil
	}
	var removed T
	if err := json.Unmarshal(raw, &removed); err != nil {
		return item, nil
	}
	return removed, nil
}

func (c *Client[T]) idEndpoint(id int64) string {
	return c.api.Endpoint(c.basePath, strconv.FormatInt(id, 10))
}

// decodeList accepts either the `{"data":[...]}` envelope or a bare array
// so callers always see one canonical shape.
func decodeList[T any](raw []byte) []T {
	var env struct {
		Data []T `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err == nil && env.Data != nil {
		return env.Data
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err == nil && items != nil {
		return items
	}
	return []T{}
}
