package normalize_test

import (
	"math"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/effective-security/vendrmcp/backend"
	"github.com/effective-security/vendrmcp/normalize"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func Test_Round(t *testing.T) {
	tcases := []struct {
		in  float64
		exp float64
	}{
		{0, 0},
		{0.4, 0},
		{0.5, 1},
		{1.5, 2},
		{2.5, 3},
		{-0.5, -1},
		{-2.5, -3},
		{99.49, 99},
		{1234.5678, 1235},
	}
	for _, tc := range tcases {
		assert.Equal(t, tc.exp, normalize.Round(tc.in), "Round(%v)", tc.in)
	}

	assert.Nil(t, normalize.RoundPtr(nil))
	assert.Equal(t, 0.0, *normalize.RoundPtr(ptr(0.0)))
	assert.Equal(t, 11.0, *normalize.RoundPtr(ptr(10.5)))
}

func Test_Scope(t *testing.T) {
	in := &backend.Scope{
		ID: "s1",
		ProductTerms: []backend.ProductTerm{
			{ProductID: "p1", Discount: ptr(10.5), ListPrice: ptr(999.49)},
			{ProductID: "p2", FinalPrice: ptr(0.0)},
		},
		ScopeTerms: []backend.ScopeTerm{
			{ListPrice: ptr(1000.5), AutoRenew: ptr(true)},
		},
	}

	exp := &backend.Scope{
		ID: "s1",
		ProductTerms: []backend.ProductTerm{
			{ProductID: "p1", Discount: ptr(11.0), ListPrice: ptr(999.0)},
			{ProductID: "p2", FinalPrice: ptr(0.0)},
		},
		ScopeTerms: []backend.ScopeTerm{
			{ListPrice: ptr(1001.0), AutoRenew: ptr(true)},
		},
	}

	out := normalize.Scope(in)
	if diff := cmp.Diff(exp, out); diff != "" {
		t.Errorf("Scope() mismatch (-want +got):\n%s", diff)
	}

	// input is not modified
	assert.Equal(t, 10.5, *in.ProductTerms[0].Discount)
	// absent stays absent
	assert.Nil(t, out.ProductTerms[0].FinalPrice)
	assert.Nil(t, out.ProductTerms[1].Discount)

	assert.Nil(t, normalize.Scope(nil))
}

func Test_CreateScopeBody(t *testing.T) {
	in := &backend.CreateScopeBody{
		PreviousScopeID: ptr("s0"),
		ProductTerms:    []backend.ProductTerm{{ProductID: "p1", ListPrice: ptr(12.5)}},
		ScopeTerms:      []backend.ScopeTerm{},
	}
	out := normalize.CreateScopeBody(in)
	assert.Equal(t, 13.0, *out.ProductTerms[0].ListPrice)
	assert.Equal(t, "s0", *out.PreviousScopeID)
	assert.NotNil(t, out.ScopeTerms)
	assert.Empty(t, out.ScopeTerms)
}

func Test_BasicEstimate(t *testing.T) {
	in := &backend.BasicEstimate{
		Currency:  "USD",
		Timestamp: "2024-01-01T00:00:00.000Z",
		Estimate:  backend.BasicPercentiles{Percentile25: 100.4, Percentile50: 200.5, Percentile75: 300.6},
	}
	out := normalize.BasicEstimate(in)
	assert.Equal(t, backend.BasicPercentiles{Percentile25: 100, Percentile50: 201, Percentile75: 301}, out.Estimate)
	assert.Equal(t, "USD", out.Currency)
	assert.Equal(t, 100.4, in.Estimate.Percentile25)
}

func Test_AdvancedEstimate(t *testing.T) {
	est := &backend.AdvancedPercentiles{}
	for i, slot := range est.Slots() {
		*slot = float64(i) + 0.5
	}

	in := &backend.AdvancedEstimate{
		Currency: "EUR",
		Estimate: est,
		ProductEstimates: []backend.ProductEstimate{
			{ProductID: "p1", Status: backend.EstimateStatusSuccess, Estimate: &backend.AdvancedPercentiles{Percentile50: 49.5}},
			{ProductID: "p2", Status: backend.EstimateStatusFailure, Estimate: &backend.AdvancedPercentiles{Percentile50: 10}},
			{ProductID: "p3", Status: backend.EstimateStatusSuccess},
		},
		RealSimilarPurchases: []backend.SimilarPurchase{
			{ProductNames: []string{"Slack Pro"}, NegotiatedPrice: ptr(1234.56)},
			{ProductNames: []string{"Slack Business+"}},
		},
	}

	out := normalize.AdvancedEstimate(in)
	require.NotNil(t, out.Estimate)
	for i, slot := range out.Estimate.Slots() {
		assert.Equal(t, float64(i)+1, *slot)
	}

	require.Len(t, out.ProductEstimates, 3)
	require.NotNil(t, out.ProductEstimates[0].Estimate)
	assert.Equal(t, 50.0, out.ProductEstimates[0].Estimate.Percentile50)
	assert.Nil(t, out.ProductEstimates[1].Estimate, "failed estimate must be dropped")
	assert.Nil(t, out.ProductEstimates[2].Estimate)

	assert.Equal(t, 1235.0, *out.RealSimilarPurchases[0].NegotiatedPrice)
	assert.Nil(t, out.RealSimilarPurchases[1].NegotiatedPrice)

	// input is not modified
	assert.Equal(t, 0.5, in.Estimate.Percentile10)
	assert.NotNil(t, in.ProductEstimates[1].Estimate)

	nilEstimate := normalize.AdvancedEstimate(&backend.AdvancedEstimate{Currency: "USD"})
	assert.Nil(t, nilEstimate.Estimate)
	assert.Nil(t, nilEstimate.ProductEstimates)
}

func Test_FromRange(t *testing.T) {
	r := backend.PriceRange{Min: 100, Max: 300, Currency: "USD"}

	assert.Equal(t, backend.BasicPercentiles{Percentile25: 100, Percentile50: 200, Percentile75: 300}, normalize.BasicFromRange(r))

	adv := normalize.AdvancedFromRange(r)
	assert.Equal(t, 100.0, adv.Percentile25)
	assert.Equal(t, 200.0, adv.Percentile50)
	assert.Equal(t, 300.0, adv.Percentile75)
	for _, slot := range adv.Slots() {
		if slot == &adv.Percentile25 || slot == &adv.Percentile50 || slot == &adv.Percentile75 {
			continue
		}
		assert.Equal(t, 0.0, *slot)
	}

	assert.Equal(t, 201.0, normalize.Midpoint(backend.PriceRange{Min: 101, Max: 300}))
	assert.Equal(t, backend.PriceRange{Min: 10, Max: 21, Currency: "USD"}, normalize.PriceRange(backend.PriceRange{Min: 9.5, Max: 20.5, Currency: "USD"}))
}

func Test_Idempotent(t *testing.T) {
	f := gofakeit.New(42)

	for range 100 {
		est := &backend.AdvancedPercentiles{}
		for _, slot := range est.Slots() {
			*slot = f.Float64Range(-1e6, 1e6)
		}
		in := &backend.AdvancedEstimate{
			Currency: f.CurrencyShort(),
			Estimate: est,
			ProductEstimates: []backend.ProductEstimate{
				{ProductID: f.UUID(), Status: backend.EstimateStatusSuccess, Estimate: est},
			},
			RealSimilarPurchases: []backend.SimilarPurchase{
				{NegotiatedPrice: ptr(f.Price(0, 100000))},
			},
		}

		once := normalize.AdvancedEstimate(in)
		twice := normalize.AdvancedEstimate(once)
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Fatalf("AdvancedEstimate() is not idempotent (-once +twice):\n%s", diff)
		}
		for _, slot := range once.Estimate.Slots() {
			assert.Equal(t, math.Trunc(*slot), *slot)
		}

		scope := &backend.Scope{
			ID: f.UUID(),
			ProductTerms: []backend.ProductTerm{
				{ProductID: f.UUID(), ListPrice: ptr(f.Price(0, 10000)), Discount: ptr(f.Float64Range(0, 100))},
			},
			ScopeTerms: []backend.ScopeTerm{{FinalPrice: ptr(f.Price(0, 10000))}},
		}
		s1 := normalize.Scope(scope)
		if diff := cmp.Diff(s1, normalize.Scope(s1)); diff != "" {
			t.Fatalf("Scope() is not idempotent:\n%s", diff)
		}
		assert.Equal(t, math.Round(*scope.ProductTerms[0].ListPrice), *s1.ProductTerms[0].ListPrice)
	}

	// already integer payload is unchanged
	integral := &backend.BasicEstimate{Currency: "USD", Estimate: backend.BasicPercentiles{Percentile25: 1, Percentile50: 2, Percentile75: 3}}
	if diff := cmp.Diff(integral, normalize.BasicEstimate(integral)); diff != "" {
		t.Errorf("BasicEstimate() changed integer payload:\n%s", diff)
	}
}
