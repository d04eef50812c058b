package pricing

import "github.com/effective-security/vendrmcp/backend"

// DefaultProductLimit is used by SearchCompaniesAndProducts when no limit is given
const DefaultProductLimit = 10

// ListCategoriesRequest is the input of ListCategories.
type ListCategoriesRequest struct {
	Limit  *int `json:"limit,omitempty" yaml:"limit,omitempty" validate:"omitempty,gte=1,lte=100" jsonschema:"minimum=1,maximum=100,description=Maximum number of categories to return"`
	Offset *int `json:"offset,omitempty" yaml:"offset,omitempty" validate:"omitempty,gte=0" jsonschema:"minimum=0,description=Number of categories to skip"`
}

// ListCompaniesRequest is the input of ListCompanies.
type ListCompaniesRequest struct {
	Name          string `json:"name,omitempty" yaml:"name,omitempty" jsonschema:"description=Filter companies by name"`
	CategoryID    string `json:"categoryId,omitempty" yaml:"categoryId,omitempty" jsonschema:"description=Filter companies by category ID"`
	SubCategoryID string `json:"subCategoryId,omitempty" yaml:"subCategoryId,omitempty" jsonschema:"description=Filter companies by sub-category ID"`
	Limit         *int   `json:"limit,omitempty" yaml:"limit,omitempty" validate:"omitempty,gte=1,lte=100" jsonschema:"minimum=1,maximum=100,description=Maximum number of companies to return"`
	Offset        *int   `json:"offset,omitempty" yaml:"offset,omitempty" validate:"omitempty,gte=0" jsonschema:"minimum=0,description=Number of companies to skip"`
	SortBy        string `json:"sortBy,omitempty" yaml:"sortBy,omitempty" jsonschema:"description=Field to sort by"`
	SortOrder     string `json:"sortOrder,omitempty" yaml:"sortOrder,omitempty" validate:"omitempty,oneof=asc desc" jsonschema:"enum=asc,enum=desc,description=Sort order"`
}

// CompanyRequest identifies a company.
type CompanyRequest struct {
	CompanyID string `json:"companyId" yaml:"companyId" validate:"required" jsonschema:"description=ID of the company"`
}

// ProductRequest identifies a product.
type ProductRequest struct {
	ProductID string `json:"productId" yaml:"productId" validate:"required" jsonschema:"description=ID of the product"`
}

// ProductFamilyRequest identifies a product family.
type ProductFamilyRequest struct {
	ProductFamilyID string `json:"productFamilyId" yaml:"productFamilyId" validate:"required" jsonschema:"description=ID of the product family"`
}

// ScopeRequest identifies a scope.
type ScopeRequest struct {
	ScopeID string `json:"scopeId" yaml:"scopeId" validate:"required" jsonschema:"description=ID of the scope"`
}

// ListProductsRequest is the input of ListProducts.
type ListProductsRequest struct {
	CompanyID       string `json:"companyId" yaml:"companyId" validate:"required" jsonschema:"description=ID of the company"`
	ProductFamilyID string `json:"productFamilyId,omitempty" yaml:"productFamilyId,omitempty" jsonschema:"description=Filter products by product family ID"`
	Limit           *int   `json:"limit,omitempty" yaml:"limit,omitempty" validate:"omitempty,gte=1,lte=100" jsonschema:"minimum=1,maximum=100,description=Maximum number of products to return"`
	Offset          *int   `json:"offset,omitempty" yaml:"offset,omitempty" validate:"omitempty,gte=0" jsonschema:"minimum=0,description=Number of products to skip"`
	SortBy          string `json:"sortBy,omitempty" yaml:"sortBy,omitempty" jsonschema:"description=Field to sort by"`
	SortOrder       string `json:"sortOrder,omitempty" yaml:"sortOrder,omitempty" validate:"omitempty,oneof=asc desc" jsonschema:"enum=asc,enum=desc,description=Sort order"`
}

// ListProductFamiliesRequest is the input of ListProductFamilies.
type ListProductFamiliesRequest struct {
	CompanyID string `json:"companyId" yaml:"companyId" validate:"required" jsonschema:"description=ID of the company"`
	Limit     *int   `json:"limit,omitempty" yaml:"limit,omitempty" validate:"omitempty,gte=1,lte=100" jsonschema:"minimum=1,maximum=100,description=Maximum number of product families to return"`
	Offset    *int   `json:"offset,omitempty" yaml:"offset,omitempty" validate:"omitempty,gte=0" jsonschema:"minimum=0,description=Number of product families to skip"`
	SortBy    string `json:"sortBy,omitempty" yaml:"sortBy,omitempty" jsonschema:"description=Field to sort by"`
	SortOrder string `json:"sortOrder,omitempty" yaml:"sortOrder,omitempty" validate:"omitempty,oneof=asc desc" jsonschema:"enum=asc,enum=desc,description=Sort order"`
}

// ProductTermInput is a product line of a new scope.
type ProductTermInput struct {
	ProductID  string                   `json:"productId" yaml:"productId" validate:"required" jsonschema:"description=ID of the product"`
	Dimensions []backend.DimensionValue `json:"dimensions,omitempty" yaml:"dimensions,omitempty" validate:"omitempty,dive" jsonschema:"description=Requested quantities of the product pricing dimensions"`
	Discount   *float64                 `json:"discount,omitempty" yaml:"discount,omitempty" validate:"omitempty,gte=0" jsonschema:"description=Discount received"`
	ListPrice  *float64                 `json:"listPrice,omitempty" yaml:"listPrice,omitempty" validate:"omitempty,gte=0" jsonschema:"description=List price quoted"`
	FinalPrice *float64                 `json:"finalPrice,omitempty" yaml:"finalPrice,omitempty" validate:"omitempty,gte=0" jsonschema:"description=Final price quoted"`
	StartDate  string                   `json:"startDate,omitempty" yaml:"startDate,omitempty" validate:"omitempty,datetime=2006-01-02|datetime=2006-01-02T15:04:05Z07:00" jsonschema:"description=Start date of the term (YYYY-MM-DD or RFC 3339)"`
	EndDate    string                   `json:"endDate,omitempty" yaml:"endDate,omitempty" validate:"omitempty,datetime=2006-01-02|datetime=2006-01-02T15:04:05Z07:00" jsonschema:"description=End date of the term (YYYY-MM-DD or RFC 3339)"`
}

// ScopeTermInput is a contract level term of a new scope.
type ScopeTermInput struct {
	Discount         *float64 `json:"discount,omitempty" yaml:"discount,omitempty" validate:"omitempty,gte=0" jsonschema:"description=Discount received on the contract"`
	ListPrice        *float64 `json:"listPrice,omitempty" yaml:"listPrice,omitempty" validate:"omitempty,gte=0" jsonschema:"description=List price of the contract"`
	FinalPrice       *float64 `json:"finalPrice,omitempty" yaml:"finalPrice,omitempty" validate:"omitempty,gte=0" jsonschema:"description=Final price of the contract"`
	StartDate        string   `json:"startDate,omitempty" yaml:"startDate,omitempty" validate:"omitempty,datetime=2006-01-02|datetime=2006-01-02T15:04:05Z07:00" jsonschema:"description=Start date of the contract (YYYY-MM-DD or RFC 3339)"`
	EndDate          string   `json:"endDate,omitempty" yaml:"endDate,omitempty" validate:"omitempty,datetime=2006-01-02|datetime=2006-01-02T15:04:05Z07:00" jsonschema:"description=End date of the contract (YYYY-MM-DD or RFC 3339)"`
	AutoRenew        *bool    `json:"autoRenew,omitempty" yaml:"autoRenew,omitempty" jsonschema:"description=Whether the contract renews automatically"`
	BillingFrequency string   `json:"billingFrequency,omitempty" yaml:"billingFrequency,omitempty" jsonschema:"description=Billing frequency of the contract"`
}

// CreateScopeRequest is the input of CreateScope and CustomEstimate.
type CreateScopeRequest struct {
	PreviousScopeID *string            `json:"previousScopeId,omitempty" yaml:"previousScopeId,omitempty" jsonschema:"description=ID of the scope this one supersedes"`
	ProductTerms    []ProductTermInput `json:"productTerms" yaml:"productTerms" validate:"min=1,dive" jsonschema:"description=Products in scope with their dimension values"`
	ScopeTerms      []ScopeTermInput   `json:"scopeTerms,omitempty" yaml:"scopeTerms,omitempty" validate:"omitempty,dive" jsonschema:"description=Contract level terms"`
}

// CreateScopeWithDocumentRequest is the input of CreateScopeWithDocument.
type CreateScopeWithDocumentRequest struct {
	Content     string `json:"content" yaml:"content" validate:"required,base64" jsonschema:"description=Base64 encoded content of the quote or contract"`
	Filename    string `json:"filename,omitempty" yaml:"filename,omitempty" jsonschema:"description=File name of the document"`
	ContentType string `json:"contentType,omitempty" yaml:"contentType,omitempty" jsonschema:"description=MIME type of the document"`
}

// SearchRequest is the input of SearchCompaniesAndProducts.
type SearchRequest struct {
	CompanyName  string `json:"companyName" yaml:"companyName" validate:"required" jsonschema:"description=Name of the company to search for"`
	ProductLimit *int   `json:"productLimit,omitempty" yaml:"productLimit,omitempty" validate:"required,gte=1,lte=100" jsonschema:"minimum=1,maximum=100,default=10,description=Maximum number of products to retrieve for the matched company"`
}

// SetDefaults sets ProductLimit when it is not provided
func (r *SearchRequest) SetDefaults() {
	if r.ProductLimit == nil {
		limit := DefaultProductLimit
		r.ProductLimit = &limit
	}
}
