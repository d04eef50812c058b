package backend

import "time"

// Pagination describes a page of a list response.
type Pagination struct {
	Total  int `json:"total" yaml:"total"`
	Limit  int `json:"limit" yaml:"limit"`
	Offset int `json:"offset" yaml:"offset"`
}

// Ref is a short reference to a catalog entity.
type Ref struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// PriceRange is a min/max price pair in a currency.
type PriceRange struct {
	Min      float64 `json:"min" yaml:"min" jsonschema:"description=Lower bound of the typical price"`
	Max      float64 `json:"max" yaml:"max" jsonschema:"description=Upper bound of the typical price"`
	Currency string  `json:"currency,omitempty" yaml:"currency,omitempty" jsonschema:"description=ISO currency code"`
}

// Price is a single default price in a currency.
type Price struct {
	Amount   float64 `json:"amount" yaml:"amount"`
	Currency string  `json:"currency,omitempty" yaml:"currency,omitempty"`
	Unit     string  `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// SubCategory of the catalog.
type SubCategory struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Category of the catalog.
type Category struct {
	ID            string        `json:"id" yaml:"id"`
	Name          string        `json:"name" yaml:"name"`
	Description   string        `json:"description,omitempty" yaml:"description,omitempty"`
	SubCategories []SubCategory `json:"subCategories,omitempty" yaml:"subCategories,omitempty"`
}

// CategoryList is the response of ListCategories.
type CategoryList struct {
	Data       []Category `json:"data" yaml:"data"`
	Pagination Pagination `json:"pagination" yaml:"pagination"`
}

// CompanySummary is a company as returned in lists.
type CompanySummary struct {
	ID                string `json:"id" yaml:"id"`
	Name              string `json:"name" yaml:"name"`
	Description       string `json:"description,omitempty" yaml:"description,omitempty"`
	Website           string `json:"website,omitempty" yaml:"website,omitempty"`
	CategoryID        string `json:"categoryId,omitempty" yaml:"categoryId,omitempty"`
	SubCategoryID     string `json:"subCategoryId,omitempty" yaml:"subCategoryId,omitempty"`
	RealPurchaseCount *int   `json:"realPurchaseCount,omitempty" yaml:"realPurchaseCount,omitempty"`
}

// CompanyList is the response of ListCompanies.
type CompanyList struct {
	Data       []CompanySummary `json:"data" yaml:"data"`
	Pagination Pagination       `json:"pagination" yaml:"pagination"`
}

// ProductFamilySummary is a product family nested in a company.
type ProductFamilySummary struct {
	ID                string      `json:"id" yaml:"id"`
	Name              string      `json:"name" yaml:"name"`
	Description       string      `json:"description,omitempty" yaml:"description,omitempty"`
	ProductCount      *int        `json:"productCount,omitempty" yaml:"productCount,omitempty"`
	DefaultPriceRange *PriceRange `json:"defaultPriceRange,omitempty" yaml:"defaultPriceRange,omitempty"`
}

// ProductSummary is a product nested in a company or a product family.
type ProductSummary struct {
	ID                        string `json:"id" yaml:"id"`
	Name                      string `json:"name" yaml:"name"`
	Description               string `json:"description,omitempty" yaml:"description,omitempty"`
	ProductFamilyID           string `json:"productFamilyId,omitempty" yaml:"productFamilyId,omitempty"`
	IsCustomEstimateAvailable bool   `json:"isCustomEstimateAvailable" yaml:"isCustomEstimateAvailable"`
	DefaultPrice              *Price `json:"defaultPrice,omitempty" yaml:"defaultPrice,omitempty"`
}

// Company is the detailed company record.
type Company struct {
	ID                string                 `json:"id" yaml:"id"`
	Name              string                 `json:"name" yaml:"name"`
	Description       string                 `json:"description,omitempty" yaml:"description,omitempty"`
	Website           string                 `json:"website,omitempty" yaml:"website,omitempty"`
	RealPurchaseCount *int                   `json:"realPurchaseCount,omitempty" yaml:"realPurchaseCount,omitempty"`
	Competitors       []Ref                  `json:"competitors" yaml:"competitors"`
	ProductFamilies   []ProductFamilySummary `json:"productFamilies" yaml:"productFamilies"`
	Products          []ProductSummary       `json:"products" yaml:"products"`
	DefaultPriceRange *PriceRange            `json:"defaultPriceRange,omitempty" yaml:"defaultPriceRange,omitempty"`
}

// ProductFamily is the detailed product family record.
type ProductFamily struct {
	ID                string           `json:"id" yaml:"id"`
	Name              string           `json:"name" yaml:"name"`
	Description       string           `json:"description,omitempty" yaml:"description,omitempty"`
	CompanyID         string           `json:"companyId,omitempty" yaml:"companyId,omitempty"`
	ProductCount      *int             `json:"productCount,omitempty" yaml:"productCount,omitempty"`
	DefaultPriceRange *PriceRange      `json:"defaultPriceRange,omitempty" yaml:"defaultPriceRange,omitempty"`
	Products          []ProductSummary `json:"products,omitempty" yaml:"products,omitempty"`
}

// ProductFamilyList is the response of ListProductFamilies.
type ProductFamilyList struct {
	Data       []ProductFamily `json:"data" yaml:"data"`
	Pagination Pagination      `json:"pagination" yaml:"pagination"`
}

// PricingDimension describes a quantity the price of a product depends on.
type PricingDimension struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	UnitName    string   `json:"unitName,omitempty" yaml:"unitName,omitempty"`
	MinQuantity *float64 `json:"minQuantity,omitempty" yaml:"minQuantity,omitempty"`
	MaxQuantity *float64 `json:"maxQuantity,omitempty" yaml:"maxQuantity,omitempty"`
	IsPrimary   bool     `json:"isPrimary,omitempty" yaml:"isPrimary,omitempty"`
}

// CompetitorProduct is a competing product with its own optional default price.
type CompetitorProduct struct {
	ID           string `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	CompanyID    string `json:"companyId,omitempty" yaml:"companyId,omitempty"`
	CompanyName  string `json:"companyName,omitempty" yaml:"companyName,omitempty"`
	DefaultPrice *Price `json:"defaultPrice,omitempty" yaml:"defaultPrice,omitempty"`
}

// Product is the detailed product record.
type Product struct {
	ID                        string              `json:"id" yaml:"id"`
	Name                      string              `json:"name" yaml:"name"`
	Description               string              `json:"description,omitempty" yaml:"description,omitempty"`
	Company                   Ref                 `json:"company" yaml:"company"`
	ProductFamily             *Ref                `json:"productFamily,omitempty" yaml:"productFamily,omitempty"`
	IsCustomEstimateAvailable bool                `json:"isCustomEstimateAvailable" yaml:"isCustomEstimateAvailable"`
	DefaultPrice              *Price              `json:"defaultPrice,omitempty" yaml:"defaultPrice,omitempty"`
	PricingDimensions         []PricingDimension  `json:"pricingDimensions" yaml:"pricingDimensions"`
	IncludedFeatures          []string            `json:"includedFeatures" yaml:"includedFeatures"`
	Competitors               []CompetitorProduct `json:"competitors" yaml:"competitors"`
}

// ProductList is the response of ListCompanyProducts.
type ProductList struct {
	Data       []Product  `json:"data" yaml:"data"`
	Pagination Pagination `json:"pagination" yaml:"pagination"`
}

// DimensionValue is the requested quantity of a pricing dimension.
type DimensionValue struct {
	DimensionID string  `json:"dimensionId" yaml:"dimensionId" validate:"required" jsonschema:"description=ID of the pricing dimension"`
	Quantity    float64 `json:"quantity" yaml:"quantity" validate:"gte=0" jsonschema:"description=Requested quantity for the dimension"`
}

// ProductTerm is a product line of a scope.
type ProductTerm struct {
	ProductID  string           `json:"productId" yaml:"productId"`
	Dimensions []DimensionValue `json:"dimensions,omitempty" yaml:"dimensions,omitempty"`
	Discount   *float64         `json:"discount,omitempty" yaml:"discount,omitempty"`
	ListPrice  *float64         `json:"listPrice,omitempty" yaml:"listPrice,omitempty"`
	FinalPrice *float64         `json:"finalPrice,omitempty" yaml:"finalPrice,omitempty"`
	StartDate  *time.Time       `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	EndDate    *time.Time       `json:"endDate,omitempty" yaml:"endDate,omitempty"`
}

// ScopeTerm is a contract-level term of a scope.
type ScopeTerm struct {
	Discount         *float64   `json:"discount,omitempty" yaml:"discount,omitempty"`
	ListPrice        *float64   `json:"listPrice,omitempty" yaml:"listPrice,omitempty"`
	FinalPrice       *float64   `json:"finalPrice,omitempty" yaml:"finalPrice,omitempty"`
	StartDate        *time.Time `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	EndDate          *time.Time `json:"endDate,omitempty" yaml:"endDate,omitempty"`
	AutoRenew        *bool      `json:"autoRenew,omitempty" yaml:"autoRenew,omitempty"`
	BillingFrequency string     `json:"billingFrequency,omitempty" yaml:"billingFrequency,omitempty"`
}

// Scope is a persisted pricing request.
type Scope struct {
	ID              string        `json:"id" yaml:"id"`
	PreviousScopeID *string       `json:"previousScopeId,omitempty" yaml:"previousScopeId,omitempty"`
	CreatedAt       *time.Time    `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
	ProductTerms    []ProductTerm `json:"productTerms" yaml:"productTerms"`
	ScopeTerms      []ScopeTerm   `json:"scopeTerms" yaml:"scopeTerms"`
}

// CreateScopeBody is the request body of CreateScope.
type CreateScopeBody struct {
	PreviousScopeID *string       `json:"previousScopeId,omitempty"`
	ProductTerms    []ProductTerm `json:"productTerms"`
	ScopeTerms      []ScopeTerm   `json:"scopeTerms"`
}

// Document is an uploaded quote or contract.
type Document struct {
	Filename    string
	ContentType string
	Content     []byte
}

// BasicPercentiles holds the basic estimate.
type BasicPercentiles struct {
	Percentile25 float64 `json:"percentile25" yaml:"percentile25"`
	Percentile50 float64 `json:"percentile50" yaml:"percentile50"`
	Percentile75 float64 `json:"percentile75" yaml:"percentile75"`
}

// BasicEstimate is the response of GetBasicPriceEstimate.
type BasicEstimate struct {
	Currency  string           `json:"currency" yaml:"currency"`
	Timestamp string           `json:"timestamp" yaml:"timestamp"`
	Estimate  BasicPercentiles `json:"estimate" yaml:"estimate"`
}

// AdvancedPercentiles holds percentiles 10 through 90 in 5-point steps.
type AdvancedPercentiles struct {
	Percentile10 float64 `json:"percentile10" yaml:"percentile10"`
	Percentile15 float64 `json:"percentile15" yaml:"percentile15"`
	Percentile20 float64 `json:"percentile20" yaml:"percentile20"`
	Percentile25 float64 `json:"percentile25" yaml:"percentile25"`
	Percentile30 float64 `json:"percentile30" yaml:"percentile30"`
	Percentile35 float64 `json:"percentile35" yaml:"percentile35"`
	Percentile40 float64 `json:"percentile40" yaml:"percentile40"`
	Percentile45 float64 `json:"percentile45" yaml:"percentile45"`
	Percentile50 float64 `json:"percentile50" yaml:"percentile50"`
	Percentile55 float64 `json:"percentile55" yaml:"percentile55"`
	Percentile60 float64 `json:"percentile60" yaml:"percentile60"`
	Percentile65 float64 `json:"percentile65" yaml:"percentile65"`
	Percentile70 float64 `json:"percentile70" yaml:"percentile70"`
	Percentile75 float64 `json:"percentile75" yaml:"percentile75"`
	Percentile80 float64 `json:"percentile80" yaml:"percentile80"`
	Percentile85 float64 `json:"percentile85" yaml:"percentile85"`
	Percentile90 float64 `json:"percentile90" yaml:"percentile90"`
}

// Slots returns pointers to all percentile values, lowest first.
func (p *AdvancedPercentiles) Slots() []*float64 {
	return []*float64{
		&p.Percentile10, &p.Percentile15, &p.Percentile20, &p.Percentile25,
		&p.Percentile30, &p.Percentile35, &p.Percentile40, &p.Percentile45,
		&p.Percentile50, &p.Percentile55, &p.Percentile60, &p.Percentile65,
		&p.Percentile70, &p.Percentile75, &p.Percentile80, &p.Percentile85,
		&p.Percentile90,
	}
}

// EstimateStatus of a per-product estimate.
type EstimateStatus string

const (
	EstimateStatusSuccess EstimateStatus = "success"
	EstimateStatusFailure EstimateStatus = "failure"
)

// ProductEstimate is the per-product part of an advanced estimate.
type ProductEstimate struct {
	ProductID string               `json:"productId" yaml:"productId"`
	Status    EstimateStatus       `json:"status" yaml:"status"`
	Estimate  *AdvancedPercentiles `json:"estimate,omitempty" yaml:"estimate,omitempty"`
}

// SimilarPurchase is a real purchase similar to the requested scope.
type SimilarPurchase struct {
	ProductNames            []string `json:"productNames" yaml:"productNames"`
	PrimaryDimensionName    string   `json:"primaryDimensionName,omitempty" yaml:"primaryDimensionName,omitempty"`
	PrimaryDimensionValue   *float64 `json:"primaryDimensionValue,omitempty" yaml:"primaryDimensionValue,omitempty"`
	NumberOfOtherDimensions *int     `json:"numberOfOtherDimensions,omitempty" yaml:"numberOfOtherDimensions,omitempty"`
	NegotiatedPrice         *float64 `json:"negotiatedPrice,omitempty" yaml:"negotiatedPrice,omitempty"`
	StartDate               string   `json:"startDate,omitempty" yaml:"startDate,omitempty"`
}

// AdvancedEstimate is the response of GetAdvancedPriceEstimate.
type AdvancedEstimate struct {
	Currency             string               `json:"currency" yaml:"currency"`
	Timestamp            string               `json:"timestamp" yaml:"timestamp"`
	Estimate             *AdvancedPercentiles `json:"estimate" yaml:"estimate"`
	ProductEstimates     []ProductEstimate    `json:"productEstimates" yaml:"productEstimates"`
	RealSimilarPurchases []SimilarPurchase    `json:"realSimilarPurchases,omitempty" yaml:"realSimilarPurchases,omitempty"`
}

// FAQ is a negotiation question with its answer.
type FAQ struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// NegotiationFAQs is the response of GetNegotiationFAQs.
type NegotiationFAQs struct {
	CompanyID string `json:"companyId,omitempty" yaml:"companyId,omitempty"`
	FAQs      []FAQ  `json:"faqs" yaml:"faqs"`
}
