package pricing

import (
	"context"
	"encoding/base64"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/vendrmcp/backend"
	"github.com/effective-security/vendrmcp/normalize"
)

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// CreateScope creates a scope with the monetary inputs rounded,
// and returns the created scope rounded
func (s *Service) CreateScope(ctx context.Context, req *CreateScopeRequest) (*backend.Scope, error) {
	body, err := req.Body()
	if err != nil {
		return nil, err
	}
	scope, err := s.client.CreateScope(ctx, normalize.CreateScopeBody(body))
	if err != nil {
		return nil, err
	}
	return normalize.Scope(scope), nil
}

// CreateScopeWithDocument creates a scope from an uploaded quote or contract
func (s *Service) CreateScopeWithDocument(ctx context.Context, req *CreateScopeWithDocumentRequest) (*backend.Scope, error) {
	content, err := base64.StdEncoding.DecodeString(req.Content)
	if err != nil {
		return nil, errors.Wrap(err, "invalid document content")
	}
	scope, err := s.client.CreateScopeFromDocument(ctx, &backend.Document{
		Filename:    req.Filename,
		ContentType: req.ContentType,
		Content:     content,
	})
	if err != nil {
		return nil, err
	}
	return normalize.Scope(scope), nil
}

// GetScope returns the scope with the monetary values rounded
func (s *Service) GetScope(ctx context.Context, req *ScopeRequest) (*backend.Scope, error) {
	scope, err := s.client.GetScope(ctx, req.ScopeID)
	if err != nil {
		return nil, err
	}
	return normalize.Scope(scope), nil
}

// Body returns the backend request body, values are not rounded
func (r *CreateScopeRequest) Body() (*backend.CreateScopeBody, error) {
	body := &backend.CreateScopeBody{
		PreviousScopeID: r.PreviousScopeID,
		ProductTerms:    make([]backend.ProductTerm, 0, len(r.ProductTerms)),
		ScopeTerms:      make([]backend.ScopeTerm, 0, len(r.ScopeTerms)),
	}

	for i, t := range r.ProductTerms {
		start, err := parseDate(t.StartDate)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid productTerms[%d].startDate", i)
		}
		end, err := parseDate(t.EndDate)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid productTerms[%d].endDate", i)
		}
		body.ProductTerms = append(body.ProductTerms, backend.ProductTerm{
			ProductID:  t.ProductID,
			Dimensions: t.Dimensions,
			Discount:   t.Discount,
			ListPrice:  t.ListPrice,
			FinalPrice: t.FinalPrice,
			StartDate:  start,
			EndDate:    end,
		})
	}

	for i, t := range r.ScopeTerms {
		start, err := parseDate(t.StartDate)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid scopeTerms[%d].startDate", i)
		}
		end, err := parseDate(t.EndDate)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid scopeTerms[%d].endDate", i)
		}
		body.ScopeTerms = append(body.ScopeTerms, backend.ScopeTerm{
			Discount:         t.Discount,
			ListPrice:        t.ListPrice,
			FinalPrice:       t.FinalPrice,
			StartDate:        start,
			EndDate:          end,
			AutoRenew:        t.AutoRenew,
			BillingFrequency: t.BillingFrequency,
		})
	}
	return body, nil
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, errors.Newf("unsupported date format: %q", s)
}
