package company

import "github.com/shopspring/decimal"

const (
	TypeNormal       = "normal"
	TypeIntermediary = "intermediary"

	AllowStateAllowed = "allowed"
	AllowStatePending = "pending"

	AllowTypeIntermediary = "intermediary"
	AllowTypePayment      = "payment"

	CountryNetherlands = "Netherlands"
	CountryGermany     = "Germany"

	// Applicable tax rate codes that are not literal percentages.
	TaxRateNetherlandsReverseCharge = -1
	TaxRateCrossBorder              = -2
)

type AllowedCompany struct {
	CompanyID string `json:"companyId"`
	Status    string `json:"status"`
	Type      string `json:"type"`
}

// Company is one party of a staffing relationship. A company may act as
// intermediary, hiring and payment company at once.
type Company struct {
	ID                      string           `json:"id"`
	Name                    string           `json:"name"`
	Type                    string           `json:"type"`
	Country                 string           `json:"country"`
	City                    string           `json:"city"`
	Street                  string           `json:"street"`
	HouseNumber             string           `json:"houseNumber"`
	PostalCode              string           `json:"postalCode"`
	Email                   string           `json:"email"`
	Phone                   string           `json:"phone"`
	VAT                     string           `json:"vat"`
	BIC                     string           `json:"bic"`
	IBAN                    string           `json:"iban"`
	KvKNumber               string           `json:"kvkNumber"`
	ApplicableTaxRate       decimal.Decimal  `json:"applicableTaxRate"`
	GAccountEnabled         bool             `json:"gAccountEnabled"`
	GAccount                decimal.Decimal  `json:"gAccount"`
	GAccountIBAN            string           `json:"gAccountIban"`
	InvoiceLanguage         string           `json:"invoiceLanguage"`
	CanCreateRegularInvoice bool             `json:"canCreateRegularInvoice"`
	AllowedCompanies        []AllowedCompany `json:"allowedCompanies"`
}

type Worker struct {
	ID         string `json:"id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Freelancer bool   `json:"freelancer"`
	Email      string `json:"email"`
	IBAN       string `json:"iban"`
	BIC        string `json:"bic"`
	VAT        string `json:"vat"`
	KvKNumber  string `json:"kvkNumber"`
}

// FullName joins first and last name, skipping empty parts.
func (w Worker) FullName() string {
	switch {
	case w.FirstName == "":
		return w.LastName
	case w.LastName == "":
		return w.FirstName
	}
	return w.FirstName + " " + w.LastName
}

// Allows reports whether c has an allowed intermediary relationship with
// the company id, or is that company.
func (c Company) Allows(companyID string) bool {
	if c.ID == companyID {
		return true
	}
	for _, allowed := range c.AllowedCompanies {
		if allowed.Status == AllowStateAllowed && allowed.Type == AllowTypeIntermediary && allowed.CompanyID == companyID {
			return true
		}
	}
	return false
}

// FullAddress formats the postal address on one line.
func (c Company) FullAddress() string {
	out := c.Street
	if c.HouseNumber != "" {
		out += " " + c.HouseNumber
	}
	if c.PostalCode != "" || c.City != "" {
		if out != "" {
			out += ", "
		}
		out += c.PostalCode
		if c.City != "" {
			if c.PostalCode != "" {
				out += " "
			}
			out += c.City
		}
	}
	if c.Country != "" {
		if out != "" {
			out += ", "
		}
		out += c.Country
	}
	return out
}
