package pricing

import (
	"context"
	"regexp"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/vendrmcp/backend"
)

// matches tags, including an unterminated one at the end of the text
var htmlTag = regexp.MustCompile(`<[^>]*>?`)

// StripHTML removes HTML tags from the text
func StripHTML(s string) string {
	return htmlTag.ReplaceAllString(s, "")
}

// NegotiationInsights returns the negotiation FAQs of the company with HTML removed from the answers
func (s *Service) NegotiationInsights(ctx context.Context, req *CompanyRequest) (*backend.NegotiationFAQs, error) {
	res, err := s.client.GetNegotiationFAQs(ctx, req.CompanyID)
	if err != nil {
		return nil, err
	}

	out := *res
	if res.FAQs != nil {
		out.FAQs = make([]backend.FAQ, len(res.FAQs))
		for i, f := range res.FAQs {
			out.FAQs[i] = backend.FAQ{
				Question: f.Question,
				Answer:   StripHTML(f.Answer),
			}
		}
	}
	return &out, nil
}

// SearchResult is the result of SearchCompaniesAndProducts
type SearchResult struct {
	MatchedCompany *backend.Company     `json:"matchedCompany" yaml:"matchedCompany"`
	Products       *backend.ProductList `json:"products" yaml:"products"`
}

// SearchCompaniesAndProducts finds the first company matching the name
// and returns it with its products.
func (s *Service) SearchCompaniesAndProducts(ctx context.Context, req *SearchRequest) (*SearchResult, error) {
	req.SetDefaults()

	limit, offset := 1, 0
	companies, err := s.client.ListCompanies(ctx, &backend.ListCompaniesQuery{
		ListQuery: backend.ListQuery{
			Limit:     &limit,
			Offset:    &offset,
			SortBy:    "name",
			SortOrder: "asc",
		},
		Name: req.CompanyName,
	})
	if err != nil {
		return nil, err
	}
	if companies.Pagination.Total == 0 || len(companies.Data) == 0 {
		return nil, errors.Newf("No companies found matching the name \"%s\".", req.CompanyName)
	}

	companyID := companies.Data[0].ID
	company, err := s.client.GetCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	products, err := s.client.ListCompanyProducts(ctx, companyID, &backend.ListProductsQuery{
		ListQuery: backend.ListQuery{
			Limit:     req.ProductLimit,
			Offset:    &offset,
			SortBy:    "sortOrder",
			SortOrder: "asc",
		},
	})
	if err != nil {
		return nil, err
	}

	return &SearchResult{
		MatchedCompany: company,
		Products:       products,
	}, nil
}
