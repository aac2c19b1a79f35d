package invoicing

import (
	"strings"

	"github.com/shopspring/decimal"

	"backoffice/internal/domain/worklog"
)

// WorkLogAmounts prices every worklog of s on its own as an invoice of type
// t and keeps those that would contribute. Client invoices only take
// worklogs of the company's own payment company and broker invoices only
// third-party ones.
func WorkLogAmounts(s Snapshot, t Type) ([]WorkLogAmount, error) {
	var out []WorkLogAmount
	for _, w := range s.WorkLogs {
		single := s
		single.WorkLogs = []worklog.WorkLog{w}
		items, err := Generate(single, t)
		if err != nil {
			return nil, err
		}
		total := decimal.Zero
		for _, item := range append(items.TimeSheet, items.Expense...) {
			total = total.Add(item.TotalAmount)
		}
		if total.IsZero() {
			continue
		}
		ownPayment := w.CompanyID == w.PaymentCompanyID
		if t == TypeCompanyToHiringCompany && !ownPayment {
			continue
		}
		if t == TypeCompanyToPaymentCompany && ownPayment {
			continue
		}
		out = append(out, WorkLogAmount{
			WorkLogID:          w.ID,
			JobOfferID:         w.JobOfferID,
			WorkerID:           w.WorkerID,
			CompanyID:          w.CompanyID,
			PaymentCompanyID:   w.PaymentCompanyID,
			TotalInvoiceAmount: total,
		})
	}
	return out, nil
}

// ProjectIDs lists the projects the worklogs were booked on.
func ProjectIDs(s Snapshot) []string {
	return worklog.ProjectIDs(s.WorkLogs)
}

// PONumber joins project codes into the purchase order reference.
func PONumber(projects []Project) string {
	codes := make([]string, 0, len(projects))
	for _, p := range projects {
		codes = append(codes, p.Code)
	}
	return strings.Join(codes, ",")
}

// FileName is the download name of an invoice PDF, e.g. invoice_000123.pdf.
func FileName(number string) string {
	if number == "" {
		return "invoice.pdf"
	}
	padded := "000000" + number
	return "invoice_" + padded[len(padded)-6:] + ".pdf"
}
