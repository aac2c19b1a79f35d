package invoicing

import "backoffice/internal/domain/company"

// Authorize checks that r may manage an invoice of inv's type between the
// parties, and that the paying company can receive payments. isCreate
// enables the checks that only guard new invoices.
func Authorize(inv Invoice, p Parties, r Requester, isCreate bool) error {
	if p.Company.Type != company.TypeIntermediary {
		return ErrUnauthorized
	}
	if inv.Type == TypeFreelancerToPaymentCompany && !p.Worker.Freelancer {
		return ErrRegularInvoiceNotCreated
	}
	if isCreate && r.Role == RoleManager && inv.Type == TypeCompanyToHiringCompany && !p.Company.CanCreateRegularInvoice {
		return ErrRegularInvoiceNotCreated
	}
	if !p.Company.Allows(p.HiringCompany.ID) {
		return ErrUnauthorized
	}

	switch {
	case p.PaymentCompany.VAT == "":
		return ErrCompanyVATInvalid
	case p.PaymentCompany.BIC == "":
		return ErrCompanyBICInvalid
	case p.PaymentCompany.IBAN == "":
		return ErrCompanyIBANInvalid
	}
	if inv.AllowNetherlandsVAT && p.HiringCompany.VAT == "" {
		return ErrHiringCompanyVATInvalid
	}
	return nil
}
