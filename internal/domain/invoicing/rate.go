package invoicing

import (
	"github.com/shopspring/decimal"

	"backoffice/internal/domain/company"
	"backoffice/internal/domain/joboffer"
)

// ResolveType decides the invoice direction for a worklog triad and the
// requesting user.
func ResolveType(companyID, paymentCompanyID string, r Requester) Type {
	if paymentCompanyID == "" || paymentCompanyID == companyID {
		if r.Freelancer {
			return TypeFreelancerToPaymentCompany
		}
		return TypeCompanyToHiringCompany
	}
	switch {
	case r.Role == RoleManager && r.CompanyID == companyID:
		return TypeCompanyToPaymentCompany
	case r.Role == RoleManager:
		return TypePaymentCompanyToHiringCompany
	case r.Freelancer:
		return TypeFreelancerToPaymentCompany
	case r.Role == RoleAdmin:
		return TypeCompanyToPaymentCompany
	}
	return TypePaymentCompanyToHiringCompany
}

// Rate returns the base hourly rate an invoice of type t charges for work
// under the given period variable.
func Rate(t Type, offer joboffer.JobOffer, pv joboffer.PeriodVariable) decimal.Decimal {
	if t == TypeCompanyToPaymentCompany {
		return pv.BrokerFee
	}
	if offer.IsFreelancer() {
		if pv.Freelancer == nil {
			return decimal.Zero
		}
		if t == TypeFreelancerToPaymentCompany {
			return pv.Freelancer.HourlyRateToPaymentCompany
		}
		return pv.Freelancer.HourlyRateToHiringCompany
	}
	return pv.PayRate
}

// SenderReceiver returns who issues and who receives an invoice of type t.
func SenderReceiver(t Type, p Parties) (Party, Party, error) {
	switch t {
	case TypeCompanyToHiringCompany:
		return companyParty(p.Company), companyParty(p.HiringCompany), nil
	case TypePaymentCompanyToHiringCompany:
		return companyParty(p.PaymentCompany), companyParty(p.HiringCompany), nil
	case TypeCompanyToPaymentCompany:
		return companyParty(p.Company), companyParty(p.PaymentCompany), nil
	case TypeFreelancerToPaymentCompany:
		return workerParty(p.Worker), companyParty(p.PaymentCompany), nil
	}
	return Party{}, Party{}, ErrInvalidType
}

func companyParty(c company.Company) Party {
	lang := c.InvoiceLanguage
	if lang == "" {
		lang = "en"
	}
	return Party{
		ID:              c.ID,
		Name:            c.Name,
		Address:         c.FullAddress(),
		Country:         c.Country,
		Email:           c.Email,
		Phone:           c.Phone,
		VAT:             c.VAT,
		BIC:             c.BIC,
		IBAN:            c.IBAN,
		KvKNumber:       c.KvKNumber,
		GAccountEnabled: c.GAccountEnabled,
		GAccount:        c.GAccount,
		GAccountIBAN:    c.GAccountIBAN,
		Language:        lang,
	}
}

func workerParty(w company.Worker) Party {
	return Party{
		ID:        w.ID,
		Name:      w.FullName(),
		Email:     w.Email,
		VAT:       w.VAT,
		BIC:       w.BIC,
		IBAN:      w.IBAN,
		KvKNumber: w.KvKNumber,
		Language:  "en",
	}
}
