package pricing

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/vendrmcp/backend"
	"github.com/effective-security/vendrmcp/normalize"
	"github.com/effective-security/vendrmcp/observer"
	"github.com/effective-security/xlog"
)

// Messages reported when the default price range can not be derived
const (
	MsgNoProductsOnScope   = "Unable to find products on the scope."
	MsgNoDefaultPriceRange = "Company does not have default price range."
)

var (
	// ErrNoProductsOnScope is returned when the scope has no product terms
	ErrNoProductsOnScope = errors.New(MsgNoProductsOnScope)
	// ErrNoDefaultPriceRange is returned when the company has no default price range
	ErrNoDefaultPriceRange = errors.New(MsgNoDefaultPriceRange)
)

// Operation names reported to the observer
const (
	OpBasicEstimate    = "getBasicPriceEstimate"
	OpAdvancedEstimate = "getAdvancedPriceEstimate"
	OpCustomEstimate   = "getCustomPriceEstimate"
)

// timestampLayout matches the millisecond ISO 8601 format of the backend
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// CustomEstimate is the result of a custom price estimate.
// When the estimate can not be computed, Estimate and ProductEstimates are null
// and CompanyDefaultPriceRange is provided instead.
type CustomEstimate struct {
	Currency                 string                       `json:"currency" yaml:"currency"`
	Timestamp                string                       `json:"timestamp" yaml:"timestamp"`
	Estimate                 *backend.AdvancedPercentiles `json:"estimate" yaml:"estimate"`
	ProductEstimates         []backend.ProductEstimate    `json:"productEstimates" yaml:"productEstimates"`
	RealSimilarPurchases     []backend.SimilarPurchase    `json:"realSimilarPurchases,omitempty" yaml:"realSimilarPurchases,omitempty"`
	CompanyDefaultPriceRange *backend.PriceRange          `json:"companyDefaultPriceRange" yaml:"companyDefaultPriceRange"`
}

// CompanyPriceRange returns the default price range of the company
// that sells the first product of the scope, as returned by the backend.
func (s *Service) CompanyPriceRange(ctx context.Context, scopeID string) (*backend.PriceRange, error) {
	scope, err := s.client.GetScope(ctx, scopeID)
	if err != nil {
		return nil, err
	}
	if len(scope.ProductTerms) == 0 {
		return nil, ErrNoProductsOnScope
	}

	product, err := s.client.GetProduct(ctx, scope.ProductTerms[0].ProductID)
	if err != nil {
		return nil, err
	}

	company, err := s.client.GetCompany(ctx, product.Company.ID)
	if err != nil {
		return nil, err
	}
	if company.DefaultPriceRange == nil {
		return nil, ErrNoDefaultPriceRange
	}

	pr := *company.DefaultPriceRange
	return &pr, nil
}

// BasicEstimate returns the basic estimate of the scope, or an estimate
// derived from the company default price range when the backend fails to compute one.
func (s *Service) BasicEstimate(ctx context.Context, req *ScopeRequest) (*backend.BasicEstimate, error) {
	est, err := s.client.GetBasicPriceEstimate(ctx, req.ScopeID)
	if err == nil {
		return normalize.BasicEstimate(est), nil
	}

	pr, err := s.fallback(ctx, OpBasicEstimate, req.ScopeID, err)
	if err != nil {
		return nil, err
	}
	return &backend.BasicEstimate{
		Currency:  pr.Currency,
		Timestamp: s.timestamp(),
		Estimate:  normalize.BasicFromRange(*pr),
	}, nil
}

// AdvancedEstimate returns the advanced estimate of the scope, or an estimate
// derived from the company default price range when the backend fails to compute one.
func (s *Service) AdvancedEstimate(ctx context.Context, req *ScopeRequest) (*backend.AdvancedEstimate, error) {
	est, err := s.client.GetAdvancedPriceEstimate(ctx, req.ScopeID)
	if err == nil {
		return normalize.AdvancedEstimate(est), nil
	}

	pr, err := s.fallback(ctx, OpAdvancedEstimate, req.ScopeID, err)
	if err != nil {
		return nil, err
	}
	return &backend.AdvancedEstimate{
		Currency:         pr.Currency,
		Timestamp:        s.timestamp(),
		Estimate:         normalize.AdvancedFromRange(*pr),
		ProductEstimates: []backend.ProductEstimate{},
	}, nil
}

// CustomEstimate creates a scope and returns its advanced estimate.
// When the estimate fails, the company default price range is returned instead.
func (s *Service) CustomEstimate(ctx context.Context, req *CreateScopeRequest) (*CustomEstimate, error) {
	scope, err := s.CreateScope(ctx, req)
	if err != nil {
		return nil, err
	}

	est, err := s.client.GetAdvancedPriceEstimate(ctx, scope.ID)
	if err == nil {
		est = normalize.AdvancedEstimate(est)
		return &CustomEstimate{
			Currency:             est.Currency,
			Timestamp:            est.Timestamp,
			Estimate:             est.Estimate,
			ProductEstimates:     est.ProductEstimates,
			RealSimilarPurchases: est.RealSimilarPurchases,
		}, nil
	}

	pr, err := s.fallback(ctx, OpCustomEstimate, scope.ID, err)
	if err != nil {
		return nil, err
	}
	rounded := normalize.PriceRange(*pr)
	return &CustomEstimate{
		Currency:                 pr.Currency,
		Timestamp:                s.timestamp(),
		CompanyDefaultPriceRange: &rounded,
	}, nil
}

// fallback resolves the company price range after the estimate call failed,
// and reports the outcome to the observer.
func (s *Service) fallback(ctx context.Context, op, scopeID string, cause error) (*backend.PriceRange, error) {
	logger.ContextKV(ctx, xlog.DEBUG,
		"reason", "estimate_failed",
		"op", op,
		"scope_id", scopeID,
		"err", cause.Error())

	tags := observer.Tags{
		observer.TagKind:    observer.KindFallback,
		observer.TagScopeID: scopeID,
	}

	pr, err := s.CompanyPriceRange(ctx, scopeID)
	if err != nil {
		s.observer.OnError(ctx, op, err, tags)
		return nil, err
	}
	s.observer.OnSuccess(ctx, op, tags)
	return pr, nil
}

func (s *Service) timestamp() string {
	return FormatTimestamp(s.now())
}

// FormatTimestamp returns the time in the format used for estimate timestamps
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
