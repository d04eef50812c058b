package vendr

import (
	_ "embed"
	"strings"
)

//go:embed preamble.md
var preamble string

// Preamble is the shared part of every tool description
var Preamble = strings.TrimSpace(preamble) + "\n"

// Tool names
const (
	ListCategories             = "listCategories"
	ListCompanies              = "listCompanies"
	GetCompany                 = "getCompany"
	GetProduct                 = "getProduct"
	GetProductFamily           = "getProductFamily"
	ListProducts               = "listProducts"
	ListProductFamilies        = "listProductFamilies"
	CreateScope                = "createScope"
	CreateScopeWithDocument    = "createScopeWithDocument"
	GetScope                   = "getScope"
	GetBasicPriceEstimate      = "getBasicPriceEstimate"
	GetAdvancedPriceEstimate   = "getAdvancedPriceEstimate"
	GetNegotiationInsights     = "getNegotiationInsights"
	SearchCompaniesAndProducts = "searchCompaniesAndProducts"
	GetCustomPriceEstimate     = "getCustomPriceEstimate"
)

var descriptions = map[string]string{
	ListCategories: `Use this tool to retrieve the categories and sub-categories of Vendr's catalog with their descriptions. ` +
		`Use it to understand which sub-categories belong to a category and which companies belong to a sub-category. ` +
		`When the user asks a category specific question, for example "I'm looking for collaboration and communication software", ` +
		`get the sub-category and company details by filtering with the category ID.`,

	ListCompanies: `Use this tool to retrieve a paginated list of companies of Vendr's catalog with their attributes. ` +
		`The list can be filtered by name, category ID or sub-category ID.`,

	GetCompany: `Use this tool to retrieve the details of a single company, including its product offerings, ` +
		`when the user asks for the details of a company or to compare companies, for example "Tell me more about Slack pricing". ` +
		`Show the details to the user and ask follow up questions to generate a customized price estimate.`,

	GetProduct: `Use this tool to retrieve the details of a product, including the attributes of its pricing dimensions and its included features. ` +
		`When the user asks about the price of a product, ask them to share the pricing dimension values to get a customized price estimate. ` +
		`Use the dimension description and unitName to explain what each dimension means, ` +
		`and use the quantity properties of the dimensions to help them provide valid answers.`,

	GetProductFamily: `Use this tool to retrieve the details of a product family, including the products of the family. ` +
		`Use the getProduct tool for more details about those products. ` +
		`Show the details to the user and ask follow up questions to generate a customized price estimate.`,

	ListProducts: `Use this tool to retrieve the products of a company or of a product family with their details. ` +
		`It is typically used when the user wants to learn about the products offered by a company.`,

	ListProductFamilies: `Use this tool to retrieve the product families of a company, including the products of each family. ` +
		`It is typically used when the user asks for the details of a company. ` +
		`For example, if the user asks "Tell me more about Slack pricing", use it to show the product families offered by Slack ` +
		`with their description and number of products.`,

	CreateScope: `When the user shares dimension values after reviewing the dimension questions, use this tool to register them as a scope and get a scope ID. ` +
		`Then immediately call getBasicPriceEstimate or getAdvancedPriceEstimate with the scope ID to get a price estimate.

When the user uploads a quote or contract for analysis, extract the dimensions and their values from it and register them as a scope with this tool. ` +
		`Then get the price estimate for the scope ID and show Vendr's estimate range along with a comparison to the quote or contract, ` +
		`so the user knows whether they received a fair price.`,

	CreateScopeWithDocument: `Don't ever use this tool.`,

	GetScope: `Use this tool to retrieve a previously created scope by its scope ID. ` +
		`It may be used to show the scope to the user later in a conversation.`,

	GetBasicPriceEstimate: `Use this tool with a scope ID to generate 3 pre-tax price estimate values: the 25th percentile, the median and the 75th percentile. ` +
		`Show the estimate to the user as follows: "The estimate price for your requirement is <median value>. ` +
		`Buyers typically achieve a price between <25th percentile>-<75th percentile>."`,

	GetAdvancedPriceEstimate: `Use this tool with a scope ID to generate the product level breakdown of the price estimate, ` +
		`when the user asks for a multi-product price estimate.`,

	GetNegotiationInsights: `Use this tool with a company ID to retrieve negotiation insights for the company as questions and answers. ` +
		`Present them to the user along with a price estimate to help them negotiate a better deal.`,

	SearchCompaniesAndProducts: `Use this tool with a company name to find the best matching company of Vendr's catalog along with its products. ` +
		`Use realPurchaseCount of the company to build user confidence in Vendr data, use competitors to present alternatives, ` +
		`and present includedFeatures along with the price benchmark to create awareness of no cost features. ` +
		`If isCustomEstimateAvailable is false for a product, get a price estimate for another product of the same productFamily instead. ` +
		`If isCustomEstimateAvailable is false for all products of a company, ask the user whether they would like to explore the company's competitors.`,

	GetCustomPriceEstimate: `Use this tool with the products and dimension values of the user to create a scope and get its price estimate in one call. ` +
		`If the response has no estimate, present companyDefaultPriceRange as the typical price range of the company. ` +
		`If available, present up to 3 realSimilarPurchases after the price benchmark with the statement ` +
		`"Here are recent examples of real purchases on Vendr that are similar to your requirement. ` +
		`I measure similarity based on products purchased, quantity, term length and recency." ` +
		`Present them in this order: productNames, primaryDimensionName, primaryDimensionValue, numberOfOtherDimensions, negotiatedPrice and startDate.`,
}

// Description returns the description of the tool, composed of the Preamble and the tool text
func Description(name string) string {
	return Preamble + descriptions[name]
}
