// Package vendr provides the catalog of tools over the Vendr pricing service.
package vendr

import (
	"github.com/cockroachdb/errors"
	"github.com/effective-security/vendrmcp/backend"
	"github.com/effective-security/vendrmcp/envelope"
	"github.com/effective-security/vendrmcp/observer"
	"github.com/effective-security/vendrmcp/pricing"
	"github.com/effective-security/vendrmcp/tools"
)

var (
	readOnly = tools.Annotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  true,
	}
	writer = tools.Annotations{
		OpenWorldHint: true,
	}
)

func titled(a tools.Annotations, title string) tools.Annotations {
	a.Title = title
	return a
}

// Option configures the tools
type Option func(*options)

type options struct {
	observer observer.Observer
	builder  *envelope.Builder
}

// WithObserver sets the observer notified about every tool call
func WithObserver(o observer.Observer) Option {
	return func(opts *options) {
		opts.observer = o
	}
}

// WithBuilder sets the envelope builder of the responses
func WithBuilder(b *envelope.Builder) Option {
	return func(opts *options) {
		opts.builder = b
	}
}

type catalog struct {
	opts options
	list []tools.IMCPTool
	err  error
}

func add[I any, O any](c *catalog, name string, a tools.Annotations, run tools.RunFunc[I, O]) {
	if c.err != nil {
		return
	}
	t, err := tools.New(name, Description(name), run)
	if err != nil {
		c.err = err
		return
	}
	t.WithAnnotations(a).
		WithObserver(c.opts.observer).
		WithBuilder(c.opts.builder).
		WithMessage(pricing.Message)
	c.list = append(c.list, t)
}

// Tools returns all tools bound to the service, in the catalog order
func Tools(svc *pricing.Service, opts ...Option) ([]tools.IMCPTool, error) {
	if svc == nil {
		return nil, errors.New("pricing service is required")
	}
	c := &catalog{}
	for _, opt := range opts {
		opt(&c.opts)
	}

	add(c, ListCategories, titled(readOnly, "List Categories"),
		tools.RunFunc[pricing.ListCategoriesRequest, backend.CategoryList](svc.ListCategories))
	add(c, ListCompanies, titled(readOnly, "List Companies"),
		tools.RunFunc[pricing.ListCompaniesRequest, backend.CompanyList](svc.ListCompanies))
	add(c, GetCompany, titled(readOnly, "Get Company"),
		tools.RunFunc[pricing.CompanyRequest, backend.Company](svc.GetCompany))
	add(c, GetProduct, titled(readOnly, "Get Product"),
		tools.RunFunc[pricing.ProductRequest, backend.Product](svc.GetProduct))
	add(c, GetProductFamily, titled(readOnly, "Get Product Family"),
		tools.RunFunc[pricing.ProductFamilyRequest, backend.ProductFamily](svc.GetProductFamily))
	add(c, ListProducts, titled(readOnly, "List Products"),
		tools.RunFunc[pricing.ListProductsRequest, backend.ProductList](svc.ListProducts))
	add(c, ListProductFamilies, titled(readOnly, "List Product Families"),
		tools.RunFunc[pricing.ListProductFamiliesRequest, backend.ProductFamilyList](svc.ListProductFamilies))
	add(c, CreateScope, titled(writer, "Create Scope"),
		tools.RunFunc[pricing.CreateScopeRequest, backend.Scope](svc.CreateScope))
	add(c, CreateScopeWithDocument, titled(writer, "Create Scope With Document"),
		tools.RunFunc[pricing.CreateScopeWithDocumentRequest, backend.Scope](svc.CreateScopeWithDocument))
	add(c, GetScope, titled(readOnly, "Get Scope"),
		tools.RunFunc[pricing.ScopeRequest, backend.Scope](svc.GetScope))
	add(c, GetBasicPriceEstimate, titled(readOnly, "Get Basic Price Estimate"),
		tools.RunFunc[pricing.ScopeRequest, backend.BasicEstimate](svc.BasicEstimate))
	add(c, GetAdvancedPriceEstimate, titled(readOnly, "Get Advanced Price Estimate"),
		tools.RunFunc[pricing.ScopeRequest, backend.AdvancedEstimate](svc.AdvancedEstimate))
	add(c, GetNegotiationInsights, titled(readOnly, "Get Negotiation Insights"),
		tools.RunFunc[pricing.CompanyRequest, backend.NegotiationFAQs](svc.NegotiationInsights))
	add(c, SearchCompaniesAndProducts, titled(readOnly, "Get Companies and Products"),
		tools.RunFunc[pricing.SearchRequest, pricing.SearchResult](svc.SearchCompaniesAndProducts))
	add(c, GetCustomPriceEstimate, titled(writer, "Get Custom Price Estimate"),
		tools.RunFunc[pricing.CreateScopeRequest, pricing.CustomEstimate](svc.CustomEstimate))

	if c.err != nil {
		return nil, c.err
	}
	return c.list, nil
}

// NewRegistry returns the registry of the tools bound to the service
func NewRegistry(svc *pricing.Service, opts ...Option) (*tools.Registry, error) {
	list, err := Tools(svc, opts...)
	if err != nil {
		return nil, err
	}
	return tools.NewRegistry(list...)
}
