package invoicing

import (
	"slices"
	"time"
)

// Credit derives the credit note of inv: a new invoice mirroring inv with
// every amount negated, dated now and pointing back at inv's number. It also
// returns the worklogs the credited invoice was built from.
func Credit(inv Invoice, now time.Time) (Invoice, []string, error) {
	if inv.Status == StatusCredited || inv.Status == StatusCancelled {
		return Invoice{}, nil, ErrInvoiceNotCreditable
	}
	out := cloneInvoice(inv)
	for i := range out.TimeSheetItems {
		out.TimeSheetItems[i].TotalAmount = out.TimeSheetItems[i].TotalAmount.Neg()
	}
	for i := range out.ExpenseItems {
		out.ExpenseItems[i].TotalAmount = out.ExpenseItems[i].TotalAmount.Neg()
	}
	for i := range out.Others {
		out.Others[i].Rate = out.Others[i].Rate.Neg()
		out.Others[i].Total = out.Others[i].Total.Neg()
	}
	out.TotalTimeSheetAmount = out.TotalTimeSheetAmount.Neg()
	out.TotalExpenseAmount = out.TotalExpenseAmount.Neg()
	out.TotalOtherAmount = out.TotalOtherAmount.Neg()
	out.TotalAmountVatExcluded = out.TotalAmountVatExcluded.Neg()
	out.TotalVatAmount = out.TotalVatAmount.Neg()
	out.TotalAmount = out.TotalAmount.Neg()

	out.ID = ""
	out.Number = ""
	out.Status = StatusCredited
	out.CancelledInvoiceNumber = inv.Number
	out.CreditInvoiceNumber = ""
	out.SubmitDate = &now
	out.DispatchDate = &now
	out.DueDate = DueDate(now, inv.TermOfPayment)
	out.CreatedAt = nil
	out.CreditDate = nil
	out.PaidDate = nil
	return out, WorkLogIDs(inv), nil
}

// Cancel marks inv as cancelled by the credit note numbered creditNumber.
func Cancel(inv Invoice, creditNumber string, now time.Time) Invoice {
	out := cloneInvoice(inv)
	out.Status = StatusCancelled
	out.CreditInvoiceNumber = creditNumber
	out.CreditDate = &now
	return out
}

// WorkLogIDs lists the distinct worklogs referenced by inv's items.
func WorkLogIDs(inv Invoice) []string {
	var ids []string
	for _, items := range [][]Item{inv.TimeSheetItems, inv.ExpenseItems} {
		for _, item := range items {
			if item.WorkLogID != "" && !slices.Contains(ids, item.WorkLogID) {
				ids = append(ids, item.WorkLogID)
			}
		}
	}
	return ids
}
