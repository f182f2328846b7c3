// Package reference holds the static investment-type and country catalog
// surfaced by the examples command and the reference API. Typical rates are
// expressed in percent, the way they are quoted to users.
package reference

import "strings"

// InvestmentType describes a common investment class and its typical return.
type InvestmentType struct {
	Key           string  `json:"key"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	TypicalReturn float64 `json:"typicalReturn"`
	RiskLevel     string  `json:"riskLevel"`
	Category      string  `json:"category"`
}

// Country describes a supported country and its typical inflation rate.
type Country struct {
	Code             string  `json:"code"`
	Name             string  `json:"name"`
	CurrencySymbol   string  `json:"currencySymbol"`
	TypicalInflation float64 `json:"typicalInflation"`
}

// Example is a worked sample calculation shown in the examples command and
// API. Rates are in percent.
type Example struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Nominal     float64 `json:"nominal"`
	Inflation   float64 `json:"inflation"`
}

var investmentTypes = []InvestmentType{
	{Key: "stocks", Name: "Stocks/Equity", Description: "Stock market investments", TypicalReturn: 12.0, RiskLevel: "High", Category: "equity"},
	{Key: "mutual_funds_equity", Name: "Equity Mutual Funds", Description: "Diversified equity mutual funds", TypicalReturn: 11.0, RiskLevel: "High", Category: "mutual_funds"},
	{Key: "elss", Name: "ELSS (Tax Saving Funds)", Description: "Equity Linked Savings Scheme", TypicalReturn: 10.5, RiskLevel: "High", Category: "tax_saving"},
	{Key: "mutual_funds_hybrid", Name: "Hybrid Mutual Funds", Description: "Balanced equity and debt funds", TypicalReturn: 9.0, RiskLevel: "Medium", Category: "mutual_funds"},
	{Key: "real_estate", Name: "Real Estate", Description: "Property investments", TypicalReturn: 9.0, RiskLevel: "Medium", Category: "real_estate"},
	{Key: "gold", Name: "Gold", Description: "Physical gold or gold ETFs", TypicalReturn: 8.0, RiskLevel: "Medium", Category: "commodities"},
	{Key: "corporate_bonds", Name: "Corporate Bonds", Description: "Corporate debt securities", TypicalReturn: 7.5, RiskLevel: "Low", Category: "fixed_income"},
	{Key: "ppf", Name: "Public Provident Fund (PPF)", Description: "15-year tax-saving investment", TypicalReturn: 7.1, RiskLevel: "Very Low", Category: "fixed_income"},
	{Key: "mutual_funds_debt", Name: "Debt Mutual Funds", Description: "Corporate bond and government securities", TypicalReturn: 7.0, RiskLevel: "Low", Category: "mutual_funds"},
	{Key: "nsc", Name: "National Savings Certificate (NSC)", Description: "5-year tax-saving investment", TypicalReturn: 6.8, RiskLevel: "Very Low", Category: "fixed_income"},
	{Key: "fixed_deposits", Name: "Fixed Deposits (FD)", Description: "Bank fixed deposits", TypicalReturn: 6.5, RiskLevel: "Very Low", Category: "fixed_income"},
	{Key: "bonds", Name: "Government Bonds", Description: "Government securities", TypicalReturn: 6.0, RiskLevel: "Very Low", Category: "fixed_income"},
}

var countries = []Country{
	{Code: "IN", Name: "India", CurrencySymbol: "₹", TypicalInflation: 4.5},
	{Code: "US", Name: "United States", CurrencySymbol: "$", TypicalInflation: 2.5},
	{Code: "GB", Name: "United Kingdom", CurrencySymbol: "£", TypicalInflation: 2.0},
	{Code: "JP", Name: "Japan", CurrencySymbol: "¥", TypicalInflation: 0.5},
	{Code: "DE", Name: "Germany", CurrencySymbol: "€", TypicalInflation: 1.8},
	{Code: "FR", Name: "France", CurrencySymbol: "€", TypicalInflation: 1.9},
	{Code: "CA", Name: "Canada", CurrencySymbol: "C$", TypicalInflation: 2.2},
	{Code: "AU", Name: "Australia", CurrencySymbol: "A$", TypicalInflation: 2.4},
	{Code: "CN", Name: "China", CurrencySymbol: "¥", TypicalInflation: 2.8},
	{Code: "BR", Name: "Brazil", CurrencySymbol: "R$", TypicalInflation: 4.0},
}

var examples = []Example{
	{Name: "Stock Market Investment", Description: "Typical stock market return vs. normal inflation", Nominal: 8, Inflation: 3},
	{Name: "Government Bonds", Description: "Conservative bond investment", Nominal: 5, Inflation: 2},
	{Name: "High Growth Stock", Description: "Growth stock in high inflation period", Nominal: 12, Inflation: 6},
	{Name: "Savings Account", Description: "Low-yield savings during inflation", Nominal: 1, Inflation: 4},
	{Name: "Real Estate", Description: "Real estate investment return", Nominal: 7, Inflation: 3.5},
}

// InvestmentTypes returns the investment catalog ordered by typical return,
// highest first.
func InvestmentTypes() []InvestmentType {
	return append([]InvestmentType(nil), investmentTypes...)
}

// InvestmentTypeByKey looks up an investment type by its key.
func InvestmentTypeByKey(key string) (InvestmentType, bool) {
	for _, it := range investmentTypes {
		if it.Key == key {
			return it, true
		}
	}
	return InvestmentType{}, false
}

// Countries returns the supported country catalog.
func Countries() []Country {
	return append([]Country(nil), countries...)
}

// CountryByCode looks up a country by its ISO code, case-insensitively.
func CountryByCode(code string) (Country, bool) {
	upper := strings.ToUpper(strings.TrimSpace(code))
	for _, c := range countries {
		if c.Code == upper {
			return c, true
		}
	}
	return Country{}, false
}

// Examples returns the worked sample calculations.
func Examples() []Example {
	return append([]Example(nil), examples...)
}
