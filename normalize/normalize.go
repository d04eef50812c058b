// Package normalize rounds monetary and percentile values returned by the pricing backend.
//
// All functions are pure: inputs are never modified, absent values stay absent
// and a present zero stays zero. Rounding is half away from zero, so applying
// any function twice gives the same result as applying it once.
package normalize

import (
	"math"

	"github.com/effective-security/vendrmcp/backend"
)

// Round returns the nearest integer value, rounding half away from zero.
func Round(v float64) float64 {
	return math.Round(v)
}

// RoundPtr returns a rounded copy of the value, or nil if the value is absent.
func RoundPtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := math.Round(*v)
	return &r
}

// ProductTerm returns the term with discount, listPrice and finalPrice rounded.
func ProductTerm(t backend.ProductTerm) backend.ProductTerm {
	t.Discount = RoundPtr(t.Discount)
	t.ListPrice = RoundPtr(t.ListPrice)
	t.FinalPrice = RoundPtr(t.FinalPrice)
	if t.Dimensions != nil {
		t.Dimensions = append([]backend.DimensionValue{}, t.Dimensions...)
	}
	return t
}

// ScopeTerm returns the term with discount, listPrice and finalPrice rounded.
func ScopeTerm(t backend.ScopeTerm) backend.ScopeTerm {
	t.Discount = RoundPtr(t.Discount)
	t.ListPrice = RoundPtr(t.ListPrice)
	t.FinalPrice = RoundPtr(t.FinalPrice)
	return t
}

// ProductTerms returns a rounded copy of the terms.
func ProductTerms(terms []backend.ProductTerm) []backend.ProductTerm {
	if terms == nil {
		return nil
	}
	res := make([]backend.ProductTerm, len(terms))
	for i, t := range terms {
		res[i] = ProductTerm(t)
	}
	return res
}

// ScopeTerms returns a rounded copy of the terms.
func ScopeTerms(terms []backend.ScopeTerm) []backend.ScopeTerm {
	if terms == nil {
		return nil
	}
	res := make([]backend.ScopeTerm, len(terms))
	for i, t := range terms {
		res[i] = ScopeTerm(t)
	}
	return res
}

// Scope returns a copy of the scope with all terms rounded.
func Scope(s *backend.Scope) *backend.Scope {
	if s == nil {
		return nil
	}
	res := *s
	res.ProductTerms = ProductTerms(s.ProductTerms)
	res.ScopeTerms = ScopeTerms(s.ScopeTerms)
	return &res
}

// CreateScopeBody returns a copy of the request with all monetary inputs rounded.
func CreateScopeBody(b *backend.CreateScopeBody) *backend.CreateScopeBody {
	if b == nil {
		return nil
	}
	res := *b
	res.ProductTerms = ProductTerms(b.ProductTerms)
	res.ScopeTerms = ScopeTerms(b.ScopeTerms)
	return &res
}

// BasicPercentiles returns the rounded percentiles.
func BasicPercentiles(p backend.BasicPercentiles) backend.BasicPercentiles {
	return backend.BasicPercentiles{
		Percentile25: math.Round(p.Percentile25),
		Percentile50: math.Round(p.Percentile50),
		Percentile75: math.Round(p.Percentile75),
	}
}

// BasicEstimate returns a copy of the estimate with the percentiles rounded.
func BasicEstimate(e *backend.BasicEstimate) *backend.BasicEstimate {
	if e == nil {
		return nil
	}
	res := *e
	res.Estimate = BasicPercentiles(e.Estimate)
	return &res
}

// AdvancedPercentiles returns a rounded copy of all 17 percentiles, or nil.
func AdvancedPercentiles(p *backend.AdvancedPercentiles) *backend.AdvancedPercentiles {
	if p == nil {
		return nil
	}
	res := *p
	for _, slot := range res.Slots() {
		*slot = math.Round(*slot)
	}
	return &res
}

// ProductEstimates returns a rounded copy of the per-product estimates.
// An estimate is kept only when the status is success.
func ProductEstimates(list []backend.ProductEstimate) []backend.ProductEstimate {
	if list == nil {
		return nil
	}
	res := make([]backend.ProductEstimate, len(list))
	for i, pe := range list {
		res[i] = pe
		if pe.Status == backend.EstimateStatusSuccess {
			res[i].Estimate = AdvancedPercentiles(pe.Estimate)
		} else {
			res[i].Estimate = nil
		}
	}
	return res
}

// SimilarPurchases returns a copy with negotiated prices rounded.
func SimilarPurchases(list []backend.SimilarPurchase) []backend.SimilarPurchase {
	if list == nil {
		return nil
	}
	res := make([]backend.SimilarPurchase, len(list))
	for i, sp := range list {
		res[i] = sp
		res[i].NegotiatedPrice = RoundPtr(sp.NegotiatedPrice)
	}
	return res
}

// AdvancedEstimate returns a copy of the estimate with every price rounded.
func AdvancedEstimate(e *backend.AdvancedEstimate) *backend.AdvancedEstimate {
	if e == nil {
		return nil
	}
	res := *e
	res.Estimate = AdvancedPercentiles(e.Estimate)
	res.ProductEstimates = ProductEstimates(e.ProductEstimates)
	res.RealSimilarPurchases = SimilarPurchases(e.RealSimilarPurchases)
	return &res
}

// Midpoint returns the rounded midpoint of the range.
func Midpoint(r backend.PriceRange) float64 {
	return math.Round((r.Min + r.Max) / 2)
}

// BasicFromRange derives basic percentiles from a price range:
// min, midpoint and max for percentile 25, 50 and 75.
func BasicFromRange(r backend.PriceRange) backend.BasicPercentiles {
	return backend.BasicPercentiles{
		Percentile25: math.Round(r.Min),
		Percentile50: Midpoint(r),
		Percentile75: math.Round(r.Max),
	}
}

// AdvancedFromRange derives advanced percentiles from a price range.
// Only percentile 25, 50 and 75 are populated, every other slot is zero
// to mark it as not computed.
func AdvancedFromRange(r backend.PriceRange) *backend.AdvancedPercentiles {
	return &backend.AdvancedPercentiles{
		Percentile25: math.Round(r.Min),
		Percentile50: Midpoint(r),
		Percentile75: math.Round(r.Max),
	}
}

// PriceRange returns the range with min and max rounded.
func PriceRange(r backend.PriceRange) backend.PriceRange {
	r.Min = math.Round(r.Min)
	r.Max = math.Round(r.Max)
	return r
}
