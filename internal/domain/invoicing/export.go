package invoicing

import (
	"encoding/csv"
	"io"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"backoffice/internal/platform/money"
)

var exportColumns = []string{
	"Invoice number", "Type", "Currency", "VAT %", "VAT amount", "Invoice date",
	"Net invoice amount", "Invoice total", "Status", "Sender", "Receiver",
	"Created Date", "Credited date", "Payment date", "Due date", "Related Invoice",
}

// ExportRow is the flat listing of one invoice.
type ExportRow struct {
	Number         string `json:"invoiceNumber"`
	Type           string `json:"type"`
	Currency       string `json:"currency"`
	VATPercentage  string `json:"vatPercentage"`
	VATAmount      string `json:"vatAmount"`
	InvoiceDate    string `json:"invoiceDate"`
	NetAmount      string `json:"netInvoiceAmount"`
	Total          string `json:"invoiceTotal"`
	Status         string `json:"status"`
	Sender         string `json:"sender"`
	Receiver       string `json:"receiver"`
	CreatedDate    string `json:"createdDate"`
	CreditedDate   string `json:"creditedDate"`
	PaymentDate    string `json:"paymentDate"`
	DueDate        string `json:"dueDate"`
	RelatedInvoice string `json:"relatedInvoice"`
}

func (r ExportRow) values() []string {
	return []string{
		r.Number, r.Type, r.Currency, r.VATPercentage, r.VATAmount, r.InvoiceDate,
		r.NetAmount, r.Total, r.Status, r.Sender, r.Receiver,
		r.CreatedDate, r.CreditedDate, r.PaymentDate, r.DueDate, r.RelatedInvoice,
	}
}

// ExportRows projects invoices to listing rows. Pending invoices are shown
// as if they were submitted now.
func ExportRows(invoices []Invoice, now time.Time) []ExportRow {
	title := cases.Title(language.English)
	rows := make([]ExportRow, 0, len(invoices))
	for _, inv := range invoices {
		submit, due := inv.SubmitDate, inv.DueDate
		if inv.Status == StatusPending {
			submit = &now
			due = DueDate(now, inv.TermOfPayment)
		}
		related := ""
		switch inv.Status {
		case StatusCancelled:
			related = inv.CreditInvoiceNumber
		case StatusCredited:
			related = inv.CancelledInvoiceNumber
		}
		row := ExportRow{
			Number:         inv.Number,
			Type:           strings.ToUpper(string(inv.Type)),
			Currency:       inv.Currency,
			VATPercentage:  inv.VATPercentage.String(),
			VATAmount:      money.Round(inv.TotalVatAmount).StringFixed(money.Places),
			InvoiceDate:    exportDate(submit),
			NetAmount:      money.Round(inv.TotalAmountVatExcluded).StringFixed(money.Places),
			Total:          money.Round(inv.TotalAmount).StringFixed(money.Places),
			Status:         title.String(string(inv.Status)),
			CreatedDate:    exportDate(inv.CreatedAt),
			CreditedDate:   exportDate(inv.CreditDate),
			PaymentDate:    exportDate(inv.PaidDate),
			DueDate:        exportDate(due),
			RelatedInvoice: related,
		}
		if inv.Sender != nil {
			row.Sender = inv.Sender.Name
		}
		if inv.Receiver != nil {
			row.Receiver = inv.Receiver.Name
		}
		rows = append(rows, row)
	}
	return rows
}

// WriteExportCSV writes rows with a header line.
func WriteExportCSV(w io.Writer, rows []ExportRow) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(exportColumns); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writer.Write(row.values()); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func exportDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return money.NLDate(*t)
}
