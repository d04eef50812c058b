package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/vendrmcp/pkg/metricskey"
	"github.com/effective-security/xlog"
	"github.com/google/uuid"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/vendrmcp", "backend")

// DefaultBaseURL is the production API endpoint
const DefaultBaseURL = "https://api.vendr.com"

// maxResponseSize limits the body read from the backend
const maxResponseSize = 32 << 20

// HTTPClient implements Client over the REST API.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	user       UserHeaders
	httpClient *http.Client
}

// ensure HTTPClient implements the Client interface
var _ Client = (*HTTPClient)(nil)

// New returns a client for the API at baseURL.
// Empty baseURL selects DefaultBaseURL.
func New(baseURL, apiKey string) (*HTTPClient, error) {
	if apiKey == "" {
		return nil, errors.New("API key is required")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, errors.Wrapf(err, "invalid base URL: %s", baseURL)
	}
	return &HTTPClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: http.DefaultClient,
	}, nil
}

// WithHTTPClient sets the HTTP client
func (c *HTTPClient) WithHTTPClient(client *http.Client) *HTTPClient {
	c.httpClient = client
	return c
}

// WithUser sets the end user headers sent with every call
func (c *HTTPClient) WithUser(user UserHeaders) *HTTPClient {
	c.user = user
	return c
}

// BaseURL returns the API endpoint
func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

func (c *HTTPClient) ListCategories(ctx context.Context, q *ListQuery) (*CategoryList, error) {
	return call[CategoryList](ctx, c, "ListCategories", http.MethodGet, "/v1/catalog/categories", q.values(), nil)
}

func (c *HTTPClient) ListCompanies(ctx context.Context, q *ListCompaniesQuery) (*CompanyList, error) {
	return call[CompanyList](ctx, c, "ListCompanies", http.MethodGet, "/v1/catalog/companies", q.values(), nil)
}

func (c *HTTPClient) GetCompany(ctx context.Context, companyID string) (*Company, error) {
	return call[Company](ctx, c, "GetCompany", http.MethodGet, "/v1/catalog/companies/"+url.PathEscape(companyID), nil, nil)
}

func (c *HTTPClient) ListCompanyProducts(ctx context.Context, companyID string, q *ListProductsQuery) (*ProductList, error) {
	path := "/v1/catalog/companies/" + url.PathEscape(companyID) + "/products"
	return call[ProductList](ctx, c, "ListCompanyProducts", http.MethodGet, path, q.values(), nil)
}

func (c *HTTPClient) ListProductFamilies(ctx context.Context, companyID string, q *ListQuery) (*ProductFamilyList, error) {
	path := "/v1/catalog/companies/" + url.PathEscape(companyID) + "/product-families"
	return call[ProductFamilyList](ctx, c, "ListProductFamilies", http.MethodGet, path, q.values(), nil)
}

func (c *HTTPClient) GetProduct(ctx context.Context, productID string) (*Product, error) {
	return call[Product](ctx, c, "GetProduct", http.MethodGet, "/v1/catalog/products/"+url.PathEscape(productID), nil, nil)
}

func (c *HTTPClient) GetProductFamily(ctx context.Context, productFamilyID string) (*ProductFamily, error) {
	return call[ProductFamily](ctx, c, "GetProductFamily", http.MethodGet, "/v1/catalog/product-families/"+url.PathEscape(productFamilyID), nil, nil)
}

func (c *HTTPClient) CreateScope(ctx context.Context, body *CreateScopeBody) (*Scope, error) {
	if body == nil {
		return nil, errors.New("scope body is required")
	}
	js, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal scope")
	}
	return call[Scope](ctx, c, "CreateScope", http.MethodPost, "/v1/scope", nil, &payload{
		contentType: "application/json",
		body:        js,
	})
}

func (c *HTTPClient) CreateScopeFromDocument(ctx context.Context, doc *Document) (*Scope, error) {
	if doc == nil || len(doc.Content) == 0 {
		return nil, errors.New("document content is required")
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	filename := doc.Filename
	if filename == "" {
		filename = "document"
	}
	contentType := doc.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create multipart")
	}
	if _, err = part.Write(doc.Content); err != nil {
		return nil, errors.Wrap(err, "failed to write document")
	}
	if err = w.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to close multipart")
	}

	return call[Scope](ctx, c, "CreateScopeFromDocument", http.MethodPost, "/v1/scope/from-document", nil, &payload{
		contentType: w.FormDataContentType(),
		body:        buf.Bytes(),
	})
}

func (c *HTTPClient) GetScope(ctx context.Context, scopeID string) (*Scope, error) {
	return call[Scope](ctx, c, "GetScope", http.MethodGet, "/v1/scope/"+url.PathEscape(scopeID), nil, nil)
}

func (c *HTTPClient) GetBasicPriceEstimate(ctx context.Context, scopeID string) (*BasicEstimate, error) {
	return call[BasicEstimate](ctx, c, "GetBasicPriceEstimate", http.MethodGet, "/v1/pricing/basic/"+url.PathEscape(scopeID), nil, nil)
}

func (c *HTTPClient) GetAdvancedPriceEstimate(ctx context.Context, scopeID string) (*AdvancedEstimate, error) {
	return call[AdvancedEstimate](ctx, c, "GetAdvancedPriceEstimate", http.MethodGet, "/v1/pricing/advanced/"+url.PathEscape(scopeID), nil, nil)
}

func (c *HTTPClient) GetNegotiationFAQs(ctx context.Context, companyID string) (*NegotiationFAQs, error) {
	return call[NegotiationFAQs](ctx, c, "GetNegotiationFAQs", http.MethodGet, "/v1/negotiation/faqs/"+url.PathEscape(companyID), nil, nil)
}

type payload struct {
	contentType string
	body        []byte
}

func call[T any](ctx context.Context, c *HTTPClient, op, method, path string, query url.Values, p *payload) (*T, error) {
	started := time.Now()
	defer metricskey.PerfBackendCall.MeasureSince(started, op)
	metricskey.StatsBackendCalls.IncrCounter(1, op)

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if p != nil {
		body = bytes.NewReader(p.body)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create %s request", op)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set(HeaderRequestID, requestID)
	if p != nil {
		req.Header.Set("Content-Type", p.contentType)
	}
	user := c.user
	if u, ok := UserFromContext(ctx); ok {
		user = user.Merge(u)
	}
	for k, v := range user.Map() {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metricskey.StatsBackendCallsFailed.IncrCounter(1, op, "transport")
		logger.ContextKV(ctx, xlog.ERROR,
			"operation", op,
			"request_id", requestID,
			"err", err.Error(),
		)
		return nil, errors.Wrapf(err, "failed to call %s", op)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		metricskey.StatsBackendCallsFailed.IncrCounter(1, op, "read")
		return nil, errors.Wrapf(err, "failed to read %s response", op)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		be := newError(resp.StatusCode, raw)
		metricskey.StatsBackendCallsFailed.IncrCounter(1, op, strconv.Itoa(resp.StatusCode))
		logger.ContextKV(ctx, xlog.WARNING,
			"operation", op,
			"request_id", requestID,
			"status", resp.StatusCode,
			"detail", be.Detail,
			"elapsed", time.Since(started).String(),
		)
		return nil, be
	}

	var res T
	if err = json.Unmarshal(raw, &res); err != nil {
		metricskey.StatsBackendCallsFailed.IncrCounter(1, op, "decode")
		return nil, errors.Wrapf(err, "failed to decode %s response", op)
	}

	logger.ContextKV(ctx, xlog.DEBUG,
		"operation", op,
		"request_id", requestID,
		"status", resp.StatusCode,
		"elapsed", time.Since(started).String(),
	)
	return &res, nil
}
