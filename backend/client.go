package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

//go:generate mockgen -source=client.go -destination=../mocks/mockbackend/client_mock.gen.go -package mockbackend

// Client is the pricing backend API.
// Every method returns *Error when the backend answers with a non-2xx status.
type Client interface {
	ListCategories(ctx context.Context, q *ListQuery) (*CategoryList, error)
	ListCompanies(ctx context.Context, q *ListCompaniesQuery) (*CompanyList, error)
	GetCompany(ctx context.Context, companyID string) (*Company, error)
	ListCompanyProducts(ctx context.Context, companyID string, q *ListProductsQuery) (*ProductList, error)
	ListProductFamilies(ctx context.Context, companyID string, q *ListQuery) (*ProductFamilyList, error)
	GetProduct(ctx context.Context, productID string) (*Product, error)
	GetProductFamily(ctx context.Context, productFamilyID string) (*ProductFamily, error)

	CreateScope(ctx context.Context, body *CreateScopeBody) (*Scope, error)
	CreateScopeFromDocument(ctx context.Context, doc *Document) (*Scope, error)
	GetScope(ctx context.Context, scopeID string) (*Scope, error)

	GetBasicPriceEstimate(ctx context.Context, scopeID string) (*BasicEstimate, error)
	GetAdvancedPriceEstimate(ctx context.Context, scopeID string) (*AdvancedEstimate, error)
	GetNegotiationFAQs(ctx context.Context, companyID string) (*NegotiationFAQs, error)
}

// UserHeaders identify the end user on whose behalf the calls are made.
// Empty values are not sent.
type UserHeaders struct {
	Identifier       string
	IP               string
	Email            string
	OrganizationName string
}

// Header names for the end user identification.
const (
	HeaderUserIdentifier       = "x-vendr-end-user-identifier"
	HeaderUserIP               = "x-vendr-end-user-ip"
	HeaderUserEmail            = "x-vendr-end-user-email"
	HeaderUserOrganizationName = "x-vendr-end-user-organization-name"
	HeaderRequestID            = "x-request-id"
)

// Map returns the non-empty headers.
func (u UserHeaders) Map() map[string]string {
	m := map[string]string{}
	add := func(k, v string) {
		if v != "" {
			m[k] = v
		}
	}
	add(HeaderUserIdentifier, u.Identifier)
	add(HeaderUserIP, u.IP)
	add(HeaderUserEmail, u.Email)
	add(HeaderUserOrganizationName, u.OrganizationName)
	return m
}

// Merge returns the headers with the non-empty values of o
func (u UserHeaders) Merge(o UserHeaders) UserHeaders {
	if o.Identifier != "" {
		u.Identifier = o.Identifier
	}
	if o.IP != "" {
		u.IP = o.IP
	}
	if o.Email != "" {
		u.Email = o.Email
	}
	if o.OrganizationName != "" {
		u.OrganizationName = o.OrganizationName
	}
	return u
}

// UserFromHeader returns the end user headers of an incoming request
func UserFromHeader(h http.Header) UserHeaders {
	return UserHeaders{
		Identifier:       h.Get(HeaderUserIdentifier),
		IP:               h.Get(HeaderUserIP),
		Email:            h.Get(HeaderUserEmail),
		OrganizationName: h.Get(HeaderUserOrganizationName),
	}
}

type userContextKey struct{}

// ContextWithUser returns a context carrying the end user headers,
// their non-empty values override the client ones.
func ContextWithUser(ctx context.Context, u UserHeaders) context.Context {
	return context.WithValue(ctx, userContextKey{}, u)
}

// UserFromContext returns the end user headers of the context
func UserFromContext(ctx context.Context) (UserHeaders, bool) {
	u, ok := ctx.Value(userContextKey{}).(UserHeaders)
	return u, ok
}

// ListQuery is the common pagination and sorting query.
type ListQuery struct {
	Limit     *int
	Offset    *int
	SortBy    string
	SortOrder string
}

// ListCompaniesQuery filters ListCompanies.
type ListCompaniesQuery struct {
	ListQuery
	Name          string
	CategoryID    string
	SubCategoryID string
}

// ListProductsQuery filters ListCompanyProducts.
type ListProductsQuery struct {
	ListQuery
	ProductFamilyID string
}

func (q *ListQuery) values() url.Values {
	v := url.Values{}
	if q == nil {
		return v
	}
	if q.Limit != nil {
		v.Set("limit", strconv.Itoa(*q.Limit))
	}
	if q.Offset != nil {
		v.Set("offset", strconv.Itoa(*q.Offset))
	}
	if q.SortBy != "" {
		v.Set("sortBy", q.SortBy)
	}
	if q.SortOrder != "" {
		v.Set("sortOrder", q.SortOrder)
	}
	return v
}

func (q *ListCompaniesQuery) values() url.Values {
	if q == nil {
		return url.Values{}
	}
	v := q.ListQuery.values()
	if q.Name != "" {
		v.Set("name", q.Name)
	}
	if q.CategoryID != "" {
		v.Set("categoryId", q.CategoryID)
	}
	if q.SubCategoryID != "" {
		v.Set("subCategoryId", q.SubCategoryID)
	}
	return v
}

func (q *ListProductsQuery) values() url.Values {
	if q == nil {
		return url.Values{}
	}
	v := q.ListQuery.values()
	if q.ProductFamilyID != "" {
		v.Set("productFamilyId", q.ProductFamilyID)
	}
	return v
}
