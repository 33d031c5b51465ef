package lattice

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

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/holodeck/pkg/domain/interfaces"
	"github.com/secmon-lab/holodeck/pkg/domain/model"
	"github.com/secmon-lab/holodeck/pkg/domain/types"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	TraceAttributeEntitySetID = "entity-set-id"
	TraceAttributeEntityKeyID = "entity-key-id"
)

// DefaultTimeout bounds one call when no timeout is configured
const DefaultTimeout = 30 * time.Second

var tracer = otel.Tracer("holodeck/lattice")

// Client calls the data, search and analysis API over HTTP
type Client struct {
	baseURL    string
	httpClient *http.Client
	debug      bool
}

var _ interfaces.LatticeClient = &Client{}

// Option configures a Client
type Option func(*Client)

// WithTimeout sets the timeout of every call
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithDebug dumps failed requests to the log
func WithDebug(enabled bool) Option {
	return func(c *Client) {
		c.debug = enabled
	}
}

// WithTransport replaces the base transport. It is still wrapped for tracing.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.httpClient.Transport = otelhttp.NewTransport(rt)
	}
}

// New creates a Client for the API rooted at baseURL
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   DefaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetTopUtilizers runs a ranking query over an entity set
func (c *Client) GetTopUtilizers(ctx context.Context, entitySetID types.EntitySetID, numResults int, query *model.RankingQuery) (rows []model.RankingRow, err error) {
	ctx, span := startSpan(ctx, "get-top-utilizers", entitySetID)
	defer func() { endSpan(span, err) }()

	endpoint := "/datastore/analysis/" + url.PathEscape(entitySetID.String()) + "?numResults=" + strconv.Itoa(numResults)
	if err = c.call(ctx, http.MethodPost, endpoint, query, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// GetNeighborTypes lists the association/neighbor types observed around an entity set
func (c *Client) GetNeighborTypes(ctx context.Context, entitySetID types.EntitySetID) (result []model.NeighborType, err error) {
	ctx, span := startSpan(ctx, "get-neighbor-types", entitySetID)
	defer func() { endSpan(span, err) }()

	endpoint := "/datastore/analysis/" + url.PathEscape(entitySetID.String()) + "/types"
	if err = c.call(ctx, http.MethodGet, endpoint, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

type entitySetSelection struct {
	IDs []types.EntityKeyID `json:"ids"`
}

// GetEntitySetData fetches full records of the given entities
func (c *Client) GetEntitySetData(ctx context.Context, entitySetID types.EntitySetID, ids []types.EntityKeyID) (result []model.Entity, err error) {
	ctx, span := startSpan(ctx, "get-entity-set-data", entitySetID)
	defer func() { endSpan(span, err) }()

	if len(ids) == 0 {
		return nil, nil
	}
	endpoint := "/datastore/data/set/" + url.PathEscape(entitySetID.String())
	if err = c.call(ctx, http.MethodPost, endpoint, entitySetSelection{IDs: ids}, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// SearchEntityNeighbors lists the neighbors of one entity
func (c *Client) SearchEntityNeighbors(ctx context.Context, entitySetID types.EntitySetID, id types.EntityKeyID) (result []*model.NeighborRecord, err error) {
	ctx, span := startSpan(ctx, "search-entity-neighbors", entitySetID,
		attribute.String(TraceAttributeEntityKeyID, id.String()))
	defer func() { endSpan(span, err) }()

	endpoint := "/datastore/search/" + url.PathEscape(entitySetID.String()) + "/" + url.PathEscape(id.String())
	if err = c.call(ctx, http.MethodGet, endpoint, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// SearchEntityNeighborsBulk lists the neighbors of many entities in one call
func (c *Client) SearchEntityNeighborsBulk(ctx context.Context, entitySetID types.EntitySetID, ids []types.EntityKeyID) (result model.NeighborsByEntity, err error) {
	ctx, span := startSpan(ctx, "search-entity-neighbors-bulk", entitySetID,
		attribute.Int("entity-count", len(ids)))
	defer func() { endSpan(span, err) }()

	if len(ids) == 0 {
		return model.NeighborsByEntity{}, nil
	}
	endpoint := "/datastore/search/" + url.PathEscape(entitySetID.String()) + "/neighbors"
	if err = c.call(ctx, http.MethodPost, endpoint, ids, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// SearchEntitySetData runs a keyword search inside an entity set
func (c *Client) SearchEntitySetData(ctx context.Context, entitySetID types.EntitySetID, constraints model.SearchConstraints) (result *model.SearchResult, err error) {
	ctx, span := startSpan(ctx, "search-entity-set-data", entitySetID)
	defer func() { endSpan(span, err) }()

	endpoint := "/datastore/search/" + url.PathEscape(entitySetID.String())
	result = &model.SearchResult{}
	if err = c.call(ctx, http.MethodPost, endpoint, constraints, result); err != nil {
		return nil, err
	}
	return result, nil
}

// SearchEntitySets searches the entity set catalog
func (c *Client) SearchEntitySets(ctx context.Context, search model.EntitySetSearch) (result *model.EntitySetSearchResult, err error) {
	ctx, span := tracer.Start(ctx, "search-entity-sets")
	defer func() { endSpan(span, err) }()

	result = &model.EntitySetSearchResult{}
	if err = c.call(ctx, http.MethodPost, "/datastore/search", search, result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetEntityTypes lists every entity and association type
func (c *Client) GetEntityTypes(ctx context.Context) (result []*model.EntityType, err error) {
	ctx, span := tracer.Start(ctx, "get-entity-types")
	defer func() { endSpan(span, err) }()

	if err = c.call(ctx, http.MethodGet, "/datastore/edm/entity/type", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetPropertyTypes lists every property type
func (c *Client) GetPropertyTypes(ctx context.Context) (result []*model.PropertyType, err error) {
	ctx, span := tracer.Start(ctx, "get-property-types")
	defer func() { endSpan(span, err) }()

	if err = c.call(ctx, http.MethodGet, "/datastore/edm/property/type", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetEntitySets lists every entity set
func (c *Client) GetEntitySets(ctx context.Context) (result []*model.EntitySet, err error) {
	ctx, span := tracer.Start(ctx, "get-entity-sets")
	defer func() { endSpan(span, err) }()

	if err = c.call(ctx, http.MethodGet, "/datastore/entity-sets", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func startSpan(ctx context.Context, name string, entitySetID types.EntitySetID, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs, attribute.String(TraceAttributeEntitySetID, entitySetID.String()))
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// call sends body as JSON and decodes the response into out. Any failure to reach the
// API, a status >= 400 or an undecodable body is a transport error.
func (c *Client) call(ctx context.Context, method, endpoint string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return goerr.Wrap(err, "failed to encode request body", goerr.V("endpoint", endpoint))
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return goerr.Wrap(err, "failed to create request", goerr.V("endpoint", endpoint))
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authCtx, ok := model.GetAuthContext(ctx); ok && authCtx.Token != "" {
		req.Header.Set("Authorization", "Bearer "+authCtx.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to send request",
			goerr.V("method", method),
			goerr.V("endpoint", endpoint),
			goerr.T(model.ErrTagTransport))
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return goerr.Wrap(err, "failed to read response body",
			goerr.V("endpoint", endpoint),
			goerr.T(model.ErrTagTransport))
	}

	if resp.StatusCode >= http.StatusBadRequest {
		if c.debug {
			// Headers carry the caller's bearer token and stay out of the log.
			ctxlog.From(ctx).Error("upstream request failed",
				"method", method,
				"endpoint", endpoint,
				"status", resp.StatusCode,
				"response", truncate(string(respBody), 1000))
		}
		return goerr.New("upstream request failed",
			goerr.V("method", method),
			goerr.V("endpoint", endpoint),
			goerr.V("status", resp.StatusCode),
			goerr.T(model.ErrTagTransport))
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return goerr.Wrap(err, "failed to decode response body",
			goerr.V("endpoint", endpoint),
			goerr.V("body", truncate(string(respBody), 200)),
			goerr.T(model.ErrTagTransport))
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
