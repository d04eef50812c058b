package pricing_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/vendrmcp/backend"
	"github.com/effective-security/vendrmcp/mocks/mockbackend"
	"github.com/effective-security/vendrmcp/mocks/mockobserver"
	"github.com/effective-security/vendrmcp/observer"
	"github.com/effective-security/vendrmcp/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 1, 2, 3, 4, 5, 6000000, time.UTC)

func clock() time.Time {
	return fixedNow
}

func f64(v float64) *float64 {
	return &v
}

func notFound(detail string) error {
	return &backend.Error{StatusCode: 404, Detail: detail}
}

// expectRange sets up the calls resolving the company default price range of scope s1
func expectRange(m *mockbackend.MockClient, pr *backend.PriceRange) {
	m.EXPECT().GetScope(gomock.Any(), "s1").Return(&backend.Scope{
		ID:           "s1",
		ProductTerms: []backend.ProductTerm{{ProductID: "p1"}, {ProductID: "p2"}},
	}, nil)
	m.EXPECT().GetProduct(gomock.Any(), "p1").Return(&backend.Product{
		ID:      "p1",
		Company: backend.Ref{ID: "c1"},
	}, nil)
	m.EXPECT().GetCompany(gomock.Any(), "c1").Return(&backend.Company{
		ID:                "c1",
		DefaultPriceRange: pr,
	}, nil)
}

func fallbackTags(scopeID string) observer.Tags {
	return observer.Tags{
		observer.TagKind:    observer.KindFallback,
		observer.TagScopeID: scopeID,
	}
}

func Test_Message(t *testing.T) {
	assert.Empty(t, pricing.Message(nil))
	assert.Equal(t, "Scope not found", pricing.Message(notFound("Scope not found")))
	assert.Equal(t, "Scope not found", pricing.Message(errors.Wrap(notFound("Scope not found"), "failed")))
	assert.Equal(t, "boom", pricing.Message(errors.New("boom")))
	assert.Equal(t, pricing.MsgNoProductsOnScope, pricing.Message(pricing.ErrNoProductsOnScope))
}

func Test_CompanyPriceRange(t *testing.T) {
	ctx := context.Background()

	t.Run("as returned", func(t *testing.T) {
		m := mockbackend.NewMockClient(gomock.NewController(t))
		expectRange(m, &backend.PriceRange{Min: 99.5, Max: 300.4, Currency: "USD"})

		pr, err := pricing.New(m).CompanyPriceRange(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, backend.PriceRange{Min: 99.5, Max: 300.4, Currency: "USD"}, *pr)
	})

	t.Run("no products", func(t *testing.T) {
		m := mockbackend.NewMockClient(gomock.NewController(t))
		m.EXPECT().GetScope(gomock.Any(), "s1").Return(&backend.Scope{ID: "s1", ProductTerms: []backend.ProductTerm{}}, nil)

		_, err := pricing.New(m).CompanyPriceRange(ctx, "s1")
		require.Error(t, err)
		assert.Equal(t, "Unable to find products on the scope.", pricing.Message(err))
	})

	t.Run("no range", func(t *testing.T) {
		m := mockbackend.NewMockClient(gomock.NewController(t))
		expectRange(m, nil)

		_, err := pricing.New(m).CompanyPriceRange(ctx, "s1")
		require.Error(t, err)
		assert.Equal(t, "Company does not have default price range.", pricing.Message(err))
	})

	t.Run("scope not found", func(t *testing.T) {
		m := mockbackend.NewMockClient(gomock.NewController(t))
		m.EXPECT().GetScope(gomock.Any(), "s1").Return(nil, notFound("Scope not found"))

		_, err := pricing.New(m).CompanyPriceRange(ctx, "s1")
		require.Error(t, err)
		assert.Equal(t, "Scope not found", pricing.Message(err))
	})

	t.Run("product not found", func(t *testing.T) {
		m := mockbackend.NewMockClient(gomock.NewController(t))
		m.EXPECT().GetScope(gomock.Any(), "s1").Return(&backend.Scope{
			ID:           "s1",
			ProductTerms: []backend.ProductTerm{{ProductID: "p1"}},
		}, nil)
		m.EXPECT().GetProduct(gomock.Any(), "p1").Return(nil, notFound("Product not found"))

		_, err := pricing.New(m).CompanyPriceRange(ctx, "s1")
		require.Error(t, err)
		assert.Equal(t, "Product not found", pricing.Message(err))
	})
}

func Test_BasicEstimate(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		m := mockbackend.NewMockClient(gomock.NewController(t))
		m.EXPECT().GetBasicPriceEstimate(gomock.Any(), "s1").Return(&backend.BasicEstimate{
			Currency:  "USD",
			Timestamp: "2024-01-01T00:00:00.000Z",
			Estimate:  backend.BasicPercentiles{Percentile25: 100.4, Percentile50: 200.5, Percentile75: 299.6},
		}, nil)

		res, err := pricing.New(m).BasicEstimate(ctx, &pricing.ScopeRequest{ScopeID: "s1"})
		require.NoError(t, err)
		assert.Equal(t, &backend.BasicEstimate{
			Currency:  "USD",
			Timestamp: "2024-01-01T00:00:00.000Z",
			Estimate:  backend.BasicPercentiles{Percentile25: 100, Percentile50: 201, Percentile75: 300},
		}, res)
	})

	t.Run("fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := mockbackend.NewMockClient(ctrl)
		o := mockobserver.NewMockObserver(ctrl)

		m.EXPECT().GetBasicPriceEstimate(gomock.Any(), "s1").Return(nil, &backend.Error{StatusCode: 422, Detail: "Not enough data"})
		expectRange(m, &backend.PriceRange{Min: 100, Max: 300, Currency: "USD"})
		o.EXPECT().OnSuccess(gomock.Any(), pricing.OpBasicEstimate, fallbackTags("s1"))

		res, err := pricing.New(m, pricing.WithObserver(o), pricing.WithClock(clock)).
			BasicEstimate(ctx, &pricing.ScopeRequest{ScopeID: "s1"})
		require.NoError(t, err)
		assert.Equal(t, &backend.BasicEstimate{
			Currency:  "USD",
			Timestamp: "2024-01-02T03:04:05.006Z",
			Estimate:  backend.BasicPercentiles{Percentile25: 100, Percentile50: 200, Percentile75: 300},
		}, res)
	})

	t.Run("fallback midpoint of the raw range", func(t *testing.T) {
		m := mockbackend.NewMockClient(gomock.NewController(t))
		m.EXPECT().GetBasicPriceEstimate(gomock.Any(), "s1").Return(nil, notFound("Estimate not found"))
		expectRange(m, &backend.PriceRange{Min: 100.6, Max: 101.6, Currency: "USD"})

		res, err := pricing.New(m, pricing.WithClock(clock)).BasicEstimate(ctx, &pricing.ScopeRequest{ScopeID: "s1"})
		require.NoError(t, err)
		// round((100.6+101.6)/2) = 101, while the rounded bounds would give 102
		assert.Equal(t, backend.BasicPercentiles{Percentile25: 101, Percentile50: 101, Percentile75: 102}, res.Estimate)
	})

	t.Run("fallback without products", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := mockbackend.NewMockClient(ctrl)
		o := mockobserver.NewMockObserver(ctrl)

		m.EXPECT().GetBasicPriceEstimate(gomock.Any(), "s1").Return(nil, errors.New("connection refused"))
		m.EXPECT().GetScope(gomock.Any(), "s1").Return(&backend.Scope{ID: "s1"}, nil)
		o.EXPECT().OnError(gomock.Any(), pricing.OpBasicEstimate, gomock.Any(), fallbackTags("s1"))

		_, err := pricing.New(m, pricing.WithObserver(o)).BasicEstimate(ctx, &pricing.ScopeRequest{ScopeID: "s1"})
		require.Error(t, err)
		assert.Equal(t, pricing.MsgNoProductsOnScope, pricing.Message(err))
	})

	t.Run("fallback without range", func(t *testing.T) {
		m := mockbackend.NewMockClient(gomock.NewController(t))
		m.EXPECT().GetBasicPriceEstimate(gomock.Any(), "s1").Return(nil, notFound("Estimate not found"))
		expectRange(m, nil)

		_, err := pricing.New(m).BasicEstimate(ctx, &pricing.ScopeRequest{ScopeID: "s1"})
		require.Error(t, err)
		assert.Equal(t, pricing.MsgNoDefaultPriceRange, pricing.Message(err))
	})
}

func Test_AdvancedEstimate(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		m := mockbackend.NewMockClient(gomock.NewController(t))
		m.EXPECT().GetAdvancedPriceEstimate(gomock.Any(), "s1").Return(&backend.AdvancedEstimate{
			Currency:  "EUR",
			Timestamp: "2024-01-01T00:00:00.000Z",
			Estimate:  &backend.AdvancedPercentiles{Percentile10: 10.5, Percentile90: 89.4},
			ProductEstimates: []backend.ProductEstimate{
				{ProductID: "p1", Status: backend.EstimateStatusSuccess, Estimate: &backend.AdvancedPercentiles{Percentile50: 49.5}},
				{ProductID: "p2", Status: backend.EstimateStatusFailure, Estimate: &backend.AdvancedPercentiles{Percentile50: 1}},
			},
			RealSimilarPurchases: []backend.SimilarPurchase{{ProductNames: []string{"Zoom"}, NegotiatedPrice: f64(1234.5)}},
		}, nil)

		res, err := pricing.New(m).AdvancedEstimate(ctx, &pricing.ScopeRequest{ScopeID: "s1"})
		require.NoError(t, err)
		assert.Equal(t, "EUR", res.Currency)
		assert.Equal(t, 11.0, res.Estimate.Percentile10)
		assert.Equal(t, 89.0, res.Estimate.Percentile90)
		require.Len(t, res.ProductEstimates, 2)
		assert.Equal(t, 50.0, res.ProductEstimates[0].Estimate.Percentile50)
		assert.Nil(t, res.ProductEstimates[1].Estimate)
		assert.Equal(t, 1235.0, *res.RealSimilarPurchases[0].NegotiatedPrice)
	})

	t.Run("fallback midpoint of the raw range", func(t *testing.T) {
		m := mockbackend.NewMockClient(gomock.NewController(t))
		m.EXPECT().GetAdvancedPriceEstimate(gomock.Any(), "s1").Return(nil, notFound("Estimate not found"))
		expectRange(m, &backend.PriceRange{Min: 100.6, Max: 101.6, Currency: "USD"})

		res, err := pricing.New(m, pricing.WithClock(clock)).AdvancedEstimate(ctx, &pricing.ScopeRequest{ScopeID: "s1"})
		require.NoError(t, err)
		assert.Equal(t, &backend.AdvancedPercentiles{Percentile25: 101, Percentile50: 101, Percentile75: 102}, res.Estimate)
	})

	t.Run("fallback", func(t *testing.T) {
		m := mockbackend.NewMockClient(gomock.NewController(t))
		m.EXPECT().GetAdvancedPriceEstimate(gomock.Any(), "s1").Return(nil, notFound("Estimate not found"))
		expectRange(m, &backend.PriceRange{Min: 100, Max: 300, Currency: "USD"})

		stats := observer.NewStats()
		res, err := pricing.New(m, pricing.WithObserver(stats), pricing.WithClock(clock)).
			AdvancedEstimate(ctx, &pricing.ScopeRequest{ScopeID: "s1"})
		require.NoError(t, err)

		assert.Equal(t, "USD", res.Currency)
		assert.Equal(t, "2024-01-02T03:04:05.006Z", res.Timestamp)
		assert.Equal(t, &backend.AdvancedPercentiles{Percentile25: 100, Percentile50: 200, Percentile75: 300}, res.Estimate)
		assert.NotNil(t, res.ProductEstimates)
		assert.Empty(t, res.ProductEstimates)
		assert.Nil(t, res.RealSimilarPurchases)
		assert.Equal(t, uint32(1), stats.Get(pricing.OpAdvancedEstimate).Succeeded)

		js, err := json.Marshal(res)
		require.NoError(t, err)
		assert.Contains(t, string(js), `"productEstimates":[]`)
		assert.NotContains(t, string(js), "realSimilarPurchases")
	})
}

func Test_CustomEstimate(t *testing.T) {
	ctx := context.Background()
	req := &pricing.CreateScopeRequest{
		ProductTerms: []pricing.ProductTermInput{{
			ProductID:  "p1",
			Dimensions: []backend.DimensionValue{{DimensionID: "seats", Quantity: 50}},
			Discount:   f64(0),
			FinalPrice: f64(999.5),
			StartDate:  "2024-01-01",
		}},
	}

	t.Run("success", func(t *testing.T) {
		m := mockbackend.NewMockClient(gomock.NewController(t))
		m.EXPECT().CreateScope(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, body *backend.CreateScopeBody) (*backend.Scope, error) {
				require.Len(t, body.ProductTerms, 1)
				pt := body.ProductTerms[0]
				assert.Equal(t, 0.0, *pt.Discount)
				assert.Equal(t, 1000.0, *pt.FinalPrice)
				assert.Nil(t, pt.ListPrice)
				assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *pt.StartDate)
				assert.NotNil(t, body.ScopeTerms)
				return &backend.Scope{ID: "s2", ProductTerms: body.ProductTerms}, nil
			})
		m.EXPECT().GetAdvancedPriceEstimate(gomock.Any(), "s2").Return(&backend.AdvancedEstimate{
			Currency:         "USD",
			Timestamp:        "2024-01-01T00:00:00.000Z",
			Estimate:         &backend.AdvancedPercentiles{Percentile50: 500.5},
			ProductEstimates: []backend.ProductEstimate{},
		}, nil)

		res, err := pricing.New(m).CustomEstimate(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, 501.0, res.Estimate.Percentile50)
		assert.Nil(t, res.CompanyDefaultPriceRange)

		js, err := json.Marshal(res)
		require.NoError(t, err)
		assert.Contains(t, string(js), `"companyDefaultPriceRange":null`)
	})

	t.Run("fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := mockbackend.NewMockClient(ctrl)
		o := mockobserver.NewMockObserver(ctrl)

		m.EXPECT().CreateScope(gomock.Any(), gomock.Any()).Return(&backend.Scope{ID: "s1"}, nil)
		m.EXPECT().GetAdvancedPriceEstimate(gomock.Any(), "s1").Return(nil, notFound("Estimate not found"))
		expectRange(m, &backend.PriceRange{Min: 100.2, Max: 299.7, Currency: "USD"})
		o.EXPECT().OnSuccess(gomock.Any(), pricing.OpCustomEstimate, fallbackTags("s1"))

		res, err := pricing.New(m, pricing.WithObserver(o), pricing.WithClock(clock)).CustomEstimate(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, &pricing.CustomEstimate{
			Currency:                 "USD",
			Timestamp:                "2024-01-02T03:04:05.006Z",
			CompanyDefaultPriceRange: &backend.PriceRange{Min: 100, Max: 300, Currency: "USD"},
		}, res)

		js, err := json.Marshal(res)
		require.NoError(t, err)
		assert.Contains(t, string(js), `"estimate":null`)
		assert.Contains(t, string(js), `"productEstimates":null`)
		assert.Contains(t, string(js), `"companyDefaultPriceRange":{"min":100,"max":300,"currency":"USD"}`)
	})

	t.Run("fallback fails", func(t *testing.T) {
		m := mockbackend.NewMockClient(gomock.NewController(t))
		m.EXPECT().CreateScope(gomock.Any(), gomock.Any()).Return(&backend.Scope{ID: "s1"}, nil)
		m.EXPECT().GetAdvancedPriceEstimate(gomock.Any(), "s1").Return(nil, notFound("Estimate not found"))
		expectRange(m, nil)

		_, err := pricing.New(m).CustomEstimate(ctx, req)
		require.Error(t, err)
		assert.Equal(t, pricing.MsgNoDefaultPriceRange, pricing.Message(err))
	})

	t.Run("create fails", func(t *testing.T) {
		m := mockbackend.NewMockClient(gomock.NewController(t))
		m.EXPECT().CreateScope(gomock.Any(), gomock.Any()).Return(nil, &backend.Error{StatusCode: 400, Detail: "Invalid product"})

		_, err := pricing.New(m).CustomEstimate(ctx, req)
		require.Error(t, err)
		assert.Equal(t, "Invalid product", pricing.Message(err))
	})
}

func Test_Scope(t *testing.T) {
	ctx := context.Background()

	t.Run("get", func(t *testing.T) {
		m := mockbackend.NewMockClient(gomock.NewController(t))
		m.EXPECT().GetScope(gomock.Any(), "s1").Return(&backend.Scope{
			ID:           "s1",
			ProductTerms: []backend.ProductTerm{{ProductID: "p1", ListPrice: f64(10.5)}},
			ScopeTerms:   []backend.ScopeTerm{{Discount: f64(-2.5)}},
		}, nil)

		res, err := pricing.New(m).GetScope(ctx, &pricing.ScopeRequest{ScopeID: "s1"})
		require.NoError(t, err)
		assert.Equal(t, 11.0, *res.ProductTerms[0].ListPrice)
		assert.Equal(t, -3.0, *res.ScopeTerms[0].Discount)
	})

	t.Run("create with scope terms", func(t *testing.T) {
		m := mockbackend.NewMockClient(gomock.NewController(t))
		prev := "s0"
		m.EXPECT().CreateScope(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, body *backend.CreateScopeBody) (*backend.Scope, error) {
				assert.Equal(t, "s0", *body.PreviousScopeID)
				require.Len(t, body.ScopeTerms, 1)
				assert.Equal(t, 120.0, *body.ScopeTerms[0].ListPrice)
				assert.Equal(t, "annual", body.ScopeTerms[0].BillingFrequency)
				assert.Equal(t, time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC), *body.ScopeTerms[0].EndDate)
				return &backend.Scope{ID: "s1", PreviousScopeID: body.PreviousScopeID}, nil
			})

		res, err := pricing.New(m).CreateScope(ctx, &pricing.CreateScopeRequest{
			PreviousScopeID: &prev,
			ProductTerms:    []pricing.ProductTermInput{{ProductID: "p1"}},
			ScopeTerms: []pricing.ScopeTermInput{{
				ListPrice:        f64(119.5),
				EndDate:          "2025-01-01T12:00:00+02:00",
				BillingFrequency: "annual",
			}},
		})
		require.NoError(t, err)
		assert.Equal(t, "s1", res.ID)
	})

	t.Run("invalid date", func(t *testing.T) {
		m := mockbackend.NewMockClient(gomock.NewController(t))
		_, err := pricing.New(m).CreateScope(ctx, &pricing.CreateScopeRequest{
			ProductTerms: []pricing.ProductTermInput{{ProductID: "p1", EndDate: "tomorrow"}},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid productTerms[0].endDate")
	})

	t.Run("document", func(t *testing.T) {
		m := mockbackend.NewMockClient(gomock.NewController(t))
		m.EXPECT().CreateScopeFromDocument(gomock.Any(), &backend.Document{
			Filename:    "quote.pdf",
			ContentType: "application/pdf",
			Content:     []byte("%PDF-1.4"),
		}).Return(&backend.Scope{ID: "s3"}, nil)

		res, err := pricing.New(m).CreateScopeWithDocument(ctx, &pricing.CreateScopeWithDocumentRequest{
			Content:     base64.StdEncoding.EncodeToString([]byte("%PDF-1.4")),
			Filename:    "quote.pdf",
			ContentType: "application/pdf",
		})
		require.NoError(t, err)
		assert.Equal(t, "s3", res.ID)

		_, err = pricing.New(m).CreateScopeWithDocument(ctx, &pricing.CreateScopeWithDocumentRequest{Content: "not base64!"})
		assert.Error(t, err)
	})
}

func Test_Catalog(t *testing.T) {
	ctx := context.Background()
	price := &backend.Price{Amount: 10, Currency: "USD"}
	pr := &backend.PriceRange{Min: 1, Max: 2, Currency: "USD"}

	t.Run("company", func(t *testing.T) {
		m := mockbackend.NewMockClient(gomock.NewController(t))
		company := &backend.Company{
			ID:                "c1",
			DefaultPriceRange: pr,
			ProductFamilies:   []backend.ProductFamilySummary{{ID: "f1", DefaultPriceRange: pr}},
			Products:          []backend.ProductSummary{{ID: "p1", DefaultPrice: price}},
		}
		m.EXPECT().GetCompany(gomock.Any(), "c1").Return(company, nil)

		res, err := pricing.New(m).GetCompany(ctx, &pricing.CompanyRequest{CompanyID: "c1"})
		require.NoError(t, err)
		assert.Nil(t, res.DefaultPriceRange)
		assert.Nil(t, res.ProductFamilies[0].DefaultPriceRange)
		assert.Nil(t, res.Products[0].DefaultPrice)
		// the backend response is not modified
		assert.NotNil(t, company.DefaultPriceRange)
		assert.NotNil(t, company.Products[0].DefaultPrice)
	})

	t.Run("product", func(t *testing.T) {
		m := mockbackend.NewMockClient(gomock.NewController(t))
		m.EXPECT().GetProduct(gomock.Any(), "p1").Return(&backend.Product{
			ID:           "p1",
			DefaultPrice: price,
			Competitors:  []backend.CompetitorProduct{{ID: "x1", DefaultPrice: price}},
		}, nil)

		res, err := pricing.New(m).GetProduct(ctx, &pricing.ProductRequest{ProductID: "p1"})
		require.NoError(t, err)
		assert.Nil(t, res.DefaultPrice)
		assert.Nil(t, res.Competitors[0].DefaultPrice)
	})

	t.Run("product family", func(t *testing.T) {
		m := mockbackend.NewMockClient(gomock.NewController(t))
		m.EXPECT().GetProductFamily(gomock.Any(), "f1").Return(&backend.ProductFamily{
			ID:                "f1",
			DefaultPriceRange: pr,
			Products:          []backend.ProductSummary{{ID: "p1", DefaultPrice: price}},
		}, nil)

		res, err := pricing.New(m).GetProductFamily(ctx, &pricing.ProductFamilyRequest{ProductFamilyID: "f1"})
		require.NoError(t, err)
		assert.Nil(t, res.DefaultPriceRange)
		assert.Nil(t, res.Products[0].DefaultPrice)
	})

	t.Run("products", func(t *testing.T) {
		m := mockbackend.NewMockClient(gomock.NewController(t))
		limit := 5
		m.EXPECT().ListCompanyProducts(gomock.Any(), "c1", &backend.ListProductsQuery{
			ListQuery:       backend.ListQuery{Limit: &limit, SortOrder: "desc"},
			ProductFamilyID: "f1",
		}).Return(&backend.ProductList{
			Data: []backend.Product{{
				ID:           "p1",
				DefaultPrice: price,
				Competitors:  []backend.CompetitorProduct{{ID: "x1", DefaultPrice: price}},
			}},
			Pagination: backend.Pagination{Total: 1, Limit: 5},
		}, nil)

		res, err := pricing.New(m).ListProducts(ctx, &pricing.ListProductsRequest{
			CompanyID:       "c1",
			ProductFamilyID: "f1",
			Limit:           &limit,
			SortOrder:       "desc",
		})
		require.NoError(t, err)
		require.Len(t, res.Data, 1)
		assert.Equal(t, price, res.Data[0].DefaultPrice)
		assert.Nil(t, res.Data[0].Competitors[0].DefaultPrice)
		assert.Equal(t, 1, res.Pagination.Total)
	})

	t.Run("product families", func(t *testing.T) {
		m := mockbackend.NewMockClient(gomock.NewController(t))
		m.EXPECT().ListProductFamilies(gomock.Any(), "c1", &backend.ListQuery{SortBy: "name"}).Return(&backend.ProductFamilyList{
			Data: []backend.ProductFamily{{ID: "f1", DefaultPriceRange: pr}},
		}, nil)

		res, err := pricing.New(m).ListProductFamilies(ctx, &pricing.ListProductFamiliesRequest{CompanyID: "c1", SortBy: "name"})
		require.NoError(t, err)
		assert.Nil(t, res.Data[0].DefaultPriceRange)
	})

	t.Run("companies", func(t *testing.T) {
		m := mockbackend.NewMockClient(gomock.NewController(t))
		m.EXPECT().ListCompanies(gomock.Any(), &backend.ListCompaniesQuery{
			Name:       "zoom",
			CategoryID: "cat1",
		}).Return(&backend.CompanyList{Data: []backend.CompanySummary{{ID: "c1", Name: "Zoom"}}}, nil)

		res, err := pricing.New(m).ListCompanies(ctx, &pricing.ListCompaniesRequest{Name: "zoom", CategoryID: "cat1"})
		require.NoError(t, err)
		assert.Equal(t, "Zoom", res.Data[0].Name)
	})

	t.Run("categories", func(t *testing.T) {
		m := mockbackend.NewMockClient(gomock.NewController(t))
		m.EXPECT().ListCategories(gomock.Any(), gomock.Any()).Return(nil, &backend.Error{StatusCode: 401, Detail: "Unauthorized"})

		_, err := pricing.New(m).ListCategories(ctx, &pricing.ListCategoriesRequest{})
		require.Error(t, err)
		assert.Equal(t, "Unauthorized", pricing.Message(err))
	})
}

func Test_NegotiationInsights(t *testing.T) {
	m := mockbackend.NewMockClient(gomock.NewController(t))
	m.EXPECT().GetNegotiationFAQs(gomock.Any(), "c1").Return(&backend.NegotiationFAQs{
		CompanyID: "c1",
		FAQs: []backend.FAQ{
			{Question: "<p>How to <b>negotiate</b>?</p>", Answer: "Ask for <a href=\"x\">multi-year</a> terms<br"},
		},
	}, nil)

	res, err := pricing.New(m).NegotiationInsights(context.Background(), &pricing.CompanyRequest{CompanyID: "c1"})
	require.NoError(t, err)
	assert.Equal(t, "c1", res.CompanyID)
	// questions are returned as is
	assert.Equal(t, []backend.FAQ{{Question: "<p>How to <b>negotiate</b>?</p>", Answer: "Ask for multi-year terms"}}, res.FAQs)
}

func Test_StripHTML(t *testing.T) {
	tcases := []struct {
		in, exp string
	}{
		{"plain", "plain"},
		{"<div>a<br/>b</div>", "ab"},
		{"unterminated <span", "unterminated "},
		{"", ""},
	}
	for _, tc := range tcases {
		assert.Equal(t, tc.exp, pricing.StripHTML(tc.in), tc.in)
	}
}

func Test_SearchCompaniesAndProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		m := mockbackend.NewMockClient(gomock.NewController(t))
		m.EXPECT().ListCompanies(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, q *backend.ListCompaniesQuery) (*backend.CompanyList, error) {
				assert.Equal(t, "Slack", q.Name)
				assert.Equal(t, 1, *q.Limit)
				assert.Equal(t, 0, *q.Offset)
				assert.Equal(t, "name", q.SortBy)
				assert.Equal(t, "asc", q.SortOrder)
				return &backend.CompanyList{
					Data:       []backend.CompanySummary{{ID: "c1", Name: "Slack"}},
					Pagination: backend.Pagination{Total: 3, Limit: 1},
				}, nil
			})
		m.EXPECT().GetCompany(gomock.Any(), "c1").Return(&backend.Company{ID: "c1", Name: "Slack"}, nil)
		m.EXPECT().ListCompanyProducts(gomock.Any(), "c1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, q *backend.ListProductsQuery) (*backend.ProductList, error) {
				assert.Equal(t, pricing.DefaultProductLimit, *q.Limit)
				assert.Equal(t, "sortOrder", q.SortBy)
				return &backend.ProductList{Data: []backend.Product{{ID: "p1"}}}, nil
			})

		res, err := pricing.New(m).SearchCompaniesAndProducts(ctx, &pricing.SearchRequest{CompanyName: "Slack"})
		require.NoError(t, err)
		assert.Equal(t, "c1", res.MatchedCompany.ID)
		assert.Len(t, res.Products.Data, 1)
	})

	t.Run("not found", func(t *testing.T) {
		m := mockbackend.NewMockClient(gomock.NewController(t))
		m.EXPECT().ListCompanies(gomock.Any(), gomock.Any()).Return(&backend.CompanyList{}, nil)

		_, err := pricing.New(m).SearchCompaniesAndProducts(ctx, &pricing.SearchRequest{CompanyName: "Nope"})
		require.Error(t, err)
		assert.Equal(t, `No companies found matching the name "Nope".`, pricing.Message(err))
	})
}
