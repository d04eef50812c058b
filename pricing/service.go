// Package pricing implements the Vendr catalog, scope and estimate operations
// on top of the backend client, including the fallback to the company
// default price range when an estimate can not be computed.
package pricing

import (
	"context"
	"time"

	"github.com/effective-security/vendrmcp/backend"
	"github.com/effective-security/vendrmcp/observer"
	"github.com/effective-security/xlog"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/vendrmcp", "pricing")

// Service provides the pricing operations
type Service struct {
	client   backend.Client
	observer observer.Observer
	now      func() time.Time
}

// Option configures the Service
type Option func(*Service)

// WithObserver sets the observer notified about fallback outcomes
func WithObserver(o observer.Observer) Option {
	return func(s *Service) {
		s.observer = observer.OrNoop(o)
	}
}

// WithClock sets the clock used for fallback timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New returns a Service using the backend client
func New(client backend.Client, opts ...Option) *Service {
	s := &Service{
		client:   client,
		observer: observer.NewNoop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Message returns the message reported to the caller for the error:
// the backend detail when the error came from the backend, the error text otherwise.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if be, ok := backend.AsError(err); ok {
		return be.Detail
	}
	return err.Error()
}

// ListCategories returns a page of the catalog categories
func (s *Service) ListCategories(ctx context.Context, req *ListCategoriesRequest) (*backend.CategoryList, error) {
	return s.client.ListCategories(ctx, &backend.ListQuery{
		Limit:  req.Limit,
		Offset: req.Offset,
	})
}

// ListCompanies returns a page of companies matching the filters
func (s *Service) ListCompanies(ctx context.Context, req *ListCompaniesRequest) (*backend.CompanyList, error) {
	return s.client.ListCompanies(ctx, &backend.ListCompaniesQuery{
		ListQuery: backend.ListQuery{
			Limit:     req.Limit,
			Offset:    req.Offset,
			SortBy:    req.SortBy,
			SortOrder: req.SortOrder,
		},
		Name:          req.Name,
		CategoryID:    req.CategoryID,
		SubCategoryID: req.SubCategoryID,
	})
}

// GetCompany returns the company without default prices
func (s *Service) GetCompany(ctx context.Context, req *CompanyRequest) (*backend.Company, error) {
	c, err := s.client.GetCompany(ctx, req.CompanyID)
	if err != nil {
		return nil, err
	}
	return stripCompany(c), nil
}

// GetProduct returns the product without default prices
func (s *Service) GetProduct(ctx context.Context, req *ProductRequest) (*backend.Product, error) {
	p, err := s.client.GetProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	res := *p
	res.DefaultPrice = nil
	res.Competitors = stripCompetitors(p.Competitors)
	return &res, nil
}

// GetProductFamily returns the product family without default prices
func (s *Service) GetProductFamily(ctx context.Context, req *ProductFamilyRequest) (*backend.ProductFamily, error) {
	pf, err := s.client.GetProductFamily(ctx, req.ProductFamilyID)
	if err != nil {
		return nil, err
	}
	return stripProductFamily(pf), nil
}

// ListProducts returns a page of the company products,
// competitor prices are removed
func (s *Service) ListProducts(ctx context.Context, req *ListProductsRequest) (*backend.ProductList, error) {
	list, err := s.client.ListCompanyProducts(ctx, req.CompanyID, &backend.ListProductsQuery{
		ListQuery: backend.ListQuery{
			Limit:     req.Limit,
			Offset:    req.Offset,
			SortBy:    req.SortBy,
			SortOrder: req.SortOrder,
		},
		ProductFamilyID: req.ProductFamilyID,
	})
	if err != nil {
		return nil, err
	}

	res := *list
	if list.Data != nil {
		res.Data = make([]backend.Product, len(list.Data))
		for i, p := range list.Data {
			res.Data[i] = p
			res.Data[i].Competitors = stripCompetitors(p.Competitors)
		}
	}
	return &res, nil
}

// ListProductFamilies returns a page of the company product families without default prices
func (s *Service) ListProductFamilies(ctx context.Context, req *ListProductFamiliesRequest) (*backend.ProductFamilyList, error) {
	list, err := s.client.ListProductFamilies(ctx, req.CompanyID, &backend.ListQuery{
		Limit:     req.Limit,
		Offset:    req.Offset,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		return nil, err
	}

	res := *list
	if list.Data != nil {
		res.Data = make([]backend.ProductFamily, len(list.Data))
		for i := range list.Data {
			res.Data[i] = *stripProductFamily(&list.Data[i])
		}
	}
	return &res, nil
}

func stripCompany(c *backend.Company) *backend.Company {
	res := *c
	res.DefaultPriceRange = nil
	if c.ProductFamilies != nil {
		res.ProductFamilies = make([]backend.ProductFamilySummary, len(c.ProductFamilies))
		for i, pf := range c.ProductFamilies {
			pf.DefaultPriceRange = nil
			res.ProductFamilies[i] = pf
		}
	}
	res.Products = stripProducts(c.Products)
	return &res
}

func stripProductFamily(pf *backend.ProductFamily) *backend.ProductFamily {
	res := *pf
	res.DefaultPriceRange = nil
	res.Products = stripProducts(pf.Products)
	return &res
}

func stripProducts(list []backend.ProductSummary) []backend.ProductSummary {
	if list == nil {
		return nil
	}
	res := make([]backend.ProductSummary, len(list))
	for i, p := range list {
		p.DefaultPrice = nil
		res[i] = p
	}
	return res
}

func stripCompetitors(list []backend.CompetitorProduct) []backend.CompetitorProduct {
	if list == nil {
		return nil
	}
	res := make([]backend.CompetitorProduct, len(list))
	for i, c := range list {
		c.DefaultPrice = nil
		res[i] = c
	}
	return res
}
