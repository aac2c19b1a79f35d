package invoicing

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"backoffice/internal/platform/money"
)

// RenderPDF writes v as an A4 invoice document.
func RenderPDF(v View, w io.Writer) error {
	l := newLabeler(money.Lang(v.Language))
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, tr(v.Title))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	partyBlock(pdf, tr, v.Sender)
	pdf.Ln(4)
	partyBlock(pdf, tr, v.Receiver)
	pdf.Ln(6)

	meta := [][2]string{
		{l.label("invoice_number"), v.Number},
		{l.label("invoice_date"), v.SubmitDate},
		{l.label("due_date"), v.DueDate},
	}
	if v.PONumber != "" {
		meta = append(meta, [2]string{l.label("po_number"), v.PONumber})
	}
	if v.CancelledInvoiceNumber != "" {
		meta = append(meta, [2]string{l.label("credits"), v.CancelledInvoiceNumber})
	}
	for _, m := range meta {
		pdf.Cell(45, 6, tr(m[0]+":"))
		pdf.Cell(0, 6, tr(m[1]))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	itemTable(pdf, tr, l, l.label("timesheets"), v.TimeSheetItems)
	itemTable(pdf, tr, l, l.label("expenses"), v.ExpenseItems)
	if len(v.Others) > 0 {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(0, 8, tr(l.label("others")))
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 9)
		for _, o := range v.Others {
			pdf.CellFormat(20, 6, o.YearWeek, "", 0, "L", false, 0, "")
			pdf.CellFormat(110, 6, tr(o.Description), "", 0, "L", false, 0, "")
			pdf.CellFormat(25, 6, tr(o.FormattedRate), "", 0, "R", false, 0, "")
			pdf.CellFormat(25, 6, tr(o.FormattedTotal), "", 1, "R", false, 0, "")
		}
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "", 10)
	totals := [][2]string{
		{l.label("subtotal"), v.FormattedTotalAmountVatExcluded},
		{fmt.Sprintf("%s %s", l.label("vat"), v.FormattedVATPercentage), v.FormattedTotalVatAmount},
		{l.label("total"), v.FormattedTotalAmount},
	}
	if v.GAccount != nil {
		totals = append(totals,
			[2]string{fmt.Sprintf("%s %s%%", l.label("g_account"), v.GAccount.GAccount), v.FormattedGAmount},
			[2]string{fmt.Sprintf("%s %s%%", l.label("c_account"), v.GAccount.CAccount), v.FormattedCAmount},
		)
	}
	for _, t := range totals {
		pdf.CellFormat(155, 6, tr(t[0]), "", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, tr(t[1]), "", 1, "R", false, 0, "")
	}
	if v.AllowNetherlandsVAT {
		pdf.Ln(4)
		pdf.Cell(0, 6, tr(l.label("reverse_charge")))
	}
	if v.AllowCrossBorderVAT {
		pdf.Ln(4)
		pdf.Cell(0, 6, tr(l.label("cross_border")))
	}

	return pdf.Output(w)
}

func partyBlock(pdf *gofpdf.Fpdf, tr func(string) string, p Party) {
	for _, line := range []string{p.Name, p.Address, p.Email, p.VAT, p.IBAN} {
		if line == "" {
			continue
		}
		pdf.Cell(0, 5, tr(line))
		pdf.Ln(5)
	}
}

func itemTable(pdf *gofpdf.Fpdf, tr func(string) string, l labeler, title string, items []ViewItem) {
	if len(items) == 0 {
		return
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 8, tr(title))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 9)
	header := []struct {
		text  string
		width float64
	}{
		{l.label("week"), 32}, {l.label("worker"), 35}, {l.label("description"), 45},
		{l.label("quantity"), 25}, {l.label("rate"), 20}, {l.label("amount"), 23},
	}
	for _, h := range header {
		pdf.CellFormat(h.width, 6, tr(h.text), "B", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range items {
		desc := item.Label
		if item.SubCategory != "" {
			desc += " " + item.SubCategory
		}
		pdf.CellFormat(32, 6, tr(item.YearWeek), "", 0, "L", false, 0, "")
		pdf.CellFormat(35, 6, tr(item.WorkerName), "", 0, "L", false, 0, "")
		pdf.CellFormat(45, 6, tr(desc), "", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, tr(item.FormattedAmount), "", 0, "L", false, 0, "")
		pdf.CellFormat(20, 6, tr(item.FormattedRate), "", 0, "R", false, 0, "")
		pdf.CellFormat(23, 6, tr(item.FormattedTotalAmount), "", 1, "R", false, 0, "")
	}
	pdf.Ln(4)
}
