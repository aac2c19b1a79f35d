package invoicing

import (
	"github.com/shopspring/decimal"

	"backoffice/internal/domain/company"
)

// VAT is the outcome of the default VAT rules for a new invoice. Keep means
// no rule applied and the requested percentage stands.
type VAT struct {
	Rule                     string
	Percentage               decimal.Decimal
	NetherlandsReverseCharge bool
	CrossBorder              bool
	Keep                     bool
}

type vatRule struct {
	name    string
	applies func(t Type, p Parties) bool
	outcome func(p Parties) VAT
}

func taxCode(c company.Company, code int64) bool {
	return c.ApplicableTaxRate.Equal(decimal.NewFromInt(code))
}

// vatRules are evaluated in order; the first rule that applies wins.
var vatRules = []vatRule{
	{
		name: "german_hiring_company",
		applies: func(_ Type, p Parties) bool {
			return p.HiringCompany.Country == company.CountryGermany && taxCode(p.HiringCompany, vatGermany)
		},
		outcome: func(Parties) VAT { return VAT{Percentage: decimal.NewFromInt(vatGermany)} },
	},
	{
		name: "freelancer_domestic",
		applies: func(t Type, p Parties) bool {
			return t == TypeFreelancerToPaymentCompany && p.Company.Country == company.CountryNetherlands
		},
		outcome: func(Parties) VAT { return VAT{Percentage: decimal.NewFromInt(vatNetherlands)} },
	},
	{
		name:    "freelancer_cross_border",
		applies: func(t Type, _ Parties) bool { return t == TypeFreelancerToPaymentCompany },
		outcome: func(Parties) VAT { return VAT{Percentage: decimal.Zero, CrossBorder: true} },
	},
	{
		name: "hiring_company_reverse_charge",
		applies: func(t Type, p Parties) bool {
			return t == TypePaymentCompanyToHiringCompany && taxCode(p.HiringCompany, company.TaxRateNetherlandsReverseCharge)
		},
		outcome: func(Parties) VAT { return VAT{Percentage: decimal.Zero, NetherlandsReverseCharge: true} },
	},
	{
		name: "hiring_company_cross_border",
		applies: func(t Type, p Parties) bool {
			return t == TypePaymentCompanyToHiringCompany && taxCode(p.HiringCompany, company.TaxRateCrossBorder)
		},
		outcome: func(Parties) VAT { return VAT{Percentage: decimal.Zero, CrossBorder: true} },
	},
	{
		name:    "hiring_company_rate",
		applies: func(t Type, _ Parties) bool { return t == TypePaymentCompanyToHiringCompany },
		outcome: func(p Parties) VAT { return VAT{Percentage: p.HiringCompany.ApplicableTaxRate} },
	},
}

// DefaultVAT derives the VAT percentage and reverse-charge flags of a new
// invoice from its type and the parties' countries and tax-rate codes.
func DefaultVAT(t Type, p Parties) VAT {
	for _, rule := range vatRules {
		if rule.applies(t, p) {
			v := rule.outcome(p)
			v.Rule = rule.name
			return v
		}
	}
	return VAT{Rule: "requested", Keep: true}
}
