package invoicing

import (
	"net/http"

	"backoffice/internal/platform/errs"
)

var (
	ErrUnauthorized             = errs.New(http.StatusForbidden, "UNAUTHORIZED")
	ErrRegularInvoiceNotCreated = errs.New(http.StatusForbidden, "REGULAR_INVOICE_NOT_CREATED")
	ErrCompanyVATInvalid        = errs.New(http.StatusUnprocessableEntity, "INVOICE_COMPANY_VAT_INVALID")
	ErrCompanyBICInvalid        = errs.New(http.StatusUnprocessableEntity, "INVOICE_COMPANY_BIC_INVALID")
	ErrCompanyIBANInvalid       = errs.New(http.StatusUnprocessableEntity, "INVOICE_COMPANY_IBAN_INVALID")
	ErrHiringCompanyVATInvalid  = errs.New(http.StatusUnprocessableEntity, "INVOICE_HIRING_COMPANY_VAT_INVALID")
	ErrInvalidItems             = errs.New(http.StatusUnprocessableEntity, "INVOICE_INVALID_ITEMS")
	ErrInvalidType              = errs.New(http.StatusUnprocessableEntity, "INVOICE_TYPE_INVALID")
	ErrJobOfferNotFound         = errs.New(http.StatusNotFound, "JOB_OFFER_NOT_FOUND")
	ErrWorkerNotFound           = errs.New(http.StatusNotFound, "WORKER_NOT_FOUND")
	ErrInvoiceNotCreditable     = errs.New(http.StatusConflict, "INVOICE_NOT_CREDITABLE")
	ErrInvoiceNotEditable       = errs.New(http.StatusConflict, "INVOICE_NOT_EDITABLE")
)
