package backend_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/effective-security/vendrmcp/backend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *backend.HTTPClient {
	t.Helper()
	server := httptest.NewServer(h)
	t.Cleanup(server.Close)

	c, err := backend.New(server.URL+"/", "testkey")
	require.NoError(t, err)
	return c.WithHTTPClient(server.Client())
}

func Test_New(t *testing.T) {
	_, err := backend.New("", "")
	assert.EqualError(t, err, "API key is required")

	c, err := backend.New("", "key")
	require.NoError(t, err)
	assert.Equal(t, backend.DefaultBaseURL, c.BaseURL())
}

func Test_Headers(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/catalog/companies/c%2F1", r.URL.EscapedPath())
		assert.Equal(t, "Bearer testkey", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get(backend.HeaderRequestID))
		assert.Equal(t, "user-1", r.Header.Get(backend.HeaderUserIdentifier))
		assert.Equal(t, "u@example.com", r.Header.Get(backend.HeaderUserEmail))
		assert.Equal(t, "Acme", r.Header.Get(backend.HeaderUserOrganizationName))
		_, hasIP := r.Header[http.CanonicalHeaderKey(backend.HeaderUserIP)]
		assert.False(t, hasIP, "empty header must not be sent")

		_, _ = w.Write([]byte(`{"id":"c/1","name":"Slack","competitors":[],"productFamilies":[],"products":[],"defaultPriceRange":{"min":100,"max":300,"currency":"USD"}}`))
	})
	c.WithUser(backend.UserHeaders{
		Identifier:       "user-1",
		Email:            "u@example.com",
		OrganizationName: "Acme",
	})

	company, err := c.GetCompany(context.Background(), "c/1")
	require.NoError(t, err)
	assert.Equal(t, "Slack", company.Name)
	require.NotNil(t, company.DefaultPriceRange)
	assert.Equal(t, 300.0, company.DefaultPriceRange.Max)
}

func Test_ListQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/catalog/companies", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "Slack", q.Get("name"))
		assert.Equal(t, "1", q.Get("limit"))
		assert.Equal(t, "0", q.Get("offset"))
		assert.Equal(t, "name", q.Get("sortBy"))
		assert.Equal(t, "asc", q.Get("sortOrder"))
		assert.False(t, q.Has("categoryId"))

		_, _ = w.Write([]byte(`{"data":[{"id":"c1","name":"Slack"}],"pagination":{"total":1,"limit":1,"offset":0}}`))
	})

	limit, offset := 1, 0
	res, err := c.ListCompanies(context.Background(), &backend.ListCompaniesQuery{
		ListQuery: backend.ListQuery{Limit: &limit, Offset: &offset, SortBy: "name", SortOrder: "asc"},
		Name:      "Slack",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Pagination.Total)
	require.Len(t, res.Data, 1)
	assert.Equal(t, "c1", res.Data[0].ID)
}

func Test_Errors(t *testing.T) {
	tcases := []struct {
		name   string
		status int
		body   string
		exp    string
	}{
		{name: "string detail", status: http.StatusNotFound, body: `{"detail":"Scope not found"}`, exp: "Scope not found"},
		{name: "no body", status: http.StatusBadGateway, body: ``, exp: "Bad Gateway"},
		{name: "null detail", status: http.StatusForbidden, body: `{"detail":null}`, exp: "Forbidden"},
		{name: "structured detail", status: http.StatusUnprocessableEntity, body: `{"detail":[{"msg":"bad"}]}`, exp: `[{"msg":"bad"}]`},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})

			_, err := c.GetScope(context.Background(), "s1")
			require.Error(t, err)
			assert.EqualError(t, err, tc.exp)

			be, ok := backend.AsError(err)
			require.True(t, ok)
			assert.Equal(t, tc.status, be.StatusCode)
			assert.Equal(t, tc.status == http.StatusNotFound, be.IsNotFound())
		})
	}
}

func Test_CreateScope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/scope", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.NotContains(t, body, "previousScopeId")
		terms := body["productTerms"].([]any)
		require.Len(t, terms, 1)
		term := terms[0].(map[string]any)
		assert.Equal(t, "p1", term["productId"])
		assert.Equal(t, 0.0, term["discount"])
		assert.NotContains(t, term, "listPrice")

		_, _ = w.Write([]byte(`{"id":"s1","productTerms":[{"productId":"p1","discount":0}],"scopeTerms":[]}`))
	})

	zero := 0.0
	scope, err := c.CreateScope(context.Background(), &backend.CreateScopeBody{
		ProductTerms: []backend.ProductTerm{{ProductID: "p1", Discount: &zero}},
		ScopeTerms:   []backend.ScopeTerm{},
	})
	require.NoError(t, err)
	assert.Equal(t, "s1", scope.ID)
	require.Len(t, scope.ProductTerms, 1)
	require.NotNil(t, scope.ProductTerms[0].Discount)

	_, err = c.CreateScope(context.Background(), nil)
	assert.EqualError(t, err, "scope body is required")
}

func Test_CreateScopeFromDocument(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/scope/from-document", r.URL.Path)
		file, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, "quote.pdf", hdr.Filename)
		assert.Equal(t, "application/pdf", hdr.Header.Get("Content-Type"))
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "%PDF-1.4", string(content))

		_, _ = w.Write([]byte(`{"id":"s2","productTerms":[],"scopeTerms":[]}`))
	})

	scope, err := c.CreateScopeFromDocument(context.Background(), &backend.Document{
		Filename:    "quote.pdf",
		ContentType: "application/pdf",
		Content:     []byte("%PDF-1.4"),
	})
	require.NoError(t, err)
	assert.Equal(t, "s2", scope.ID)

	_, err = c.CreateScopeFromDocument(context.Background(), &backend.Document{})
	assert.EqualError(t, err, "document content is required")
}

func Test_Estimates(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/pricing/basic/s1":
			_, _ = w.Write([]byte(`{"currency":"USD","timestamp":"2024-01-01T00:00:00Z","estimate":{"percentile25":10.4,"percentile50":20.5,"percentile75":30.6}}`))
		case "/v1/pricing/advanced/s1":
			_, _ = w.Write([]byte(`{"currency":"USD","timestamp":"2024-01-01T00:00:00Z","estimate":{"percentile10":1.5},"productEstimates":[{"productId":"p1","status":"failure"}]}`))
		case "/v1/negotiation/faqs/c1":
			_, _ = w.Write([]byte(`{"faqs":[{"question":"Q","answer":"<b>A</b>"}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	ctx := context.Background()
	basic, err := c.GetBasicPriceEstimate(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 20.5, basic.Estimate.Percentile50)

	adv, err := c.GetAdvancedPriceEstimate(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, adv.Estimate)
	assert.Equal(t, 1.5, adv.Estimate.Percentile10)
	require.Len(t, adv.ProductEstimates, 1)
	assert.Equal(t, backend.EstimateStatusFailure, adv.ProductEstimates[0].Status)
	assert.Nil(t, adv.ProductEstimates[0].Estimate)

	faqs, err := c.GetNegotiationFAQs(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, faqs.FAQs, 1)

	_, err = c.GetProduct(ctx, "missing")
	assert.EqualError(t, err, "Not Found")
}

func Test_TransportError(t *testing.T) {
	c, err := backend.New("http://127.0.0.1:1", "key")
	require.NoError(t, err)

	_, err = c.ListCategories(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to call ListCategories")
	_, ok := backend.AsError(err)
	assert.False(t, ok)
}

func Test_UserHeadersMap(t *testing.T) {
	assert.Empty(t, backend.UserHeaders{}.Map())
	assert.Equal(t, map[string]string{
		backend.HeaderUserIP: "10.0.0.1",
	}, backend.UserHeaders{IP: "10.0.0.1"}.Map())
}

func Test_ContextUser(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "user-1", r.Header.Get(backend.HeaderUserIdentifier))
		assert.Equal(t, "caller@example.com", r.Header.Get(backend.HeaderUserEmail))
		assert.Equal(t, "10.0.0.2", r.Header.Get(backend.HeaderUserIP))
		_, _ = w.Write([]byte(`{"id":"s1","productTerms":[],"scopeTerms":[]}`))
	})
	c.WithUser(backend.UserHeaders{
		Identifier: "user-1",
		Email:      "u@example.com",
	})

	h := http.Header{}
	h.Set(backend.HeaderUserEmail, "caller@example.com")
	h.Set(backend.HeaderUserIP, "10.0.0.2")
	caller := backend.UserFromHeader(h)
	assert.Equal(t, backend.UserHeaders{Email: "caller@example.com", IP: "10.0.0.2"}, caller)

	_, ok := backend.UserFromContext(context.Background())
	assert.False(t, ok)

	ctx := backend.ContextWithUser(context.Background(), caller)
	got, ok := backend.UserFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, caller, got)

	_, err := c.GetScope(ctx, "s1")
	require.NoError(t, err)
}

func Test_UserHeadersMerge(t *testing.T) {
	base := backend.UserHeaders{Identifier: "id", Email: "a@example.com"}
	assert.Equal(t, base, base.Merge(backend.UserHeaders{}))
	assert.Equal(t,
		backend.UserHeaders{Identifier: "id", Email: "b@example.com", OrganizationName: "Acme"},
		base.Merge(backend.UserHeaders{Email: "b@example.com", OrganizationName: "Acme"}))
}
