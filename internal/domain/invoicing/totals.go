package invoicing

import (
	"slices"

	"github.com/shopspring/decimal"

	"backoffice/internal/platform/money"
)

var hundred = decimal.NewFromInt(100)

// Serialize recomputes every derived field of an invoice before it is
// stored. With stored == nil the invoice is new and the default VAT rules
// apply. Otherwise req is an edit of stored and every item of req is taken
// as a complete edit; see SerializeEdit. Totals are always recomputed from
// the items.
func Serialize(req Invoice, stored *Invoice, p Parties) (Invoice, error) {
	if stored == nil {
		return serialize(req, nil, ItemEdits{}, p)
	}
	return SerializeEdit(req, EditsOf(req), *stored, p)
}

// SerializeEdit applies edits to the items of stored. The item lists must
// match by count and id; fields an edit leaves unset keep their stored
// value. Credit notes and cancelled invoices are final and cannot be
// edited.
func SerializeEdit(req Invoice, edits ItemEdits, stored Invoice, p Parties) (Invoice, error) {
	if stored.Status == StatusCredited || stored.Status == StatusCancelled {
		return Invoice{}, ErrInvoiceNotEditable
	}
	return serialize(req, &stored, edits, p)
}

func serialize(req Invoice, stored *Invoice, edits ItemEdits, p Parties) (Invoice, error) {
	if !req.Type.Valid() {
		return Invoice{}, ErrInvalidType
	}
	// credit notes and cancellations only come from Credit and Cancel
	if req.Status == StatusCredited || req.Status == StatusCancelled {
		return Invoice{}, ErrInvoiceNotEditable
	}
	out := cloneInvoice(req)

	if stored != nil {
		var err error
		if out.TimeSheetItems, err = mergeItems(stored.TimeSheetItems, edits.TimeSheetItems); err != nil {
			return Invoice{}, err
		}
		if out.ExpenseItems, err = mergeItems(stored.ExpenseItems, edits.ExpenseItems); err != nil {
			return Invoice{}, err
		}
	} else if vat := DefaultVAT(req.Type, p); !vat.Keep {
		out.VATPercentage = vat.Percentage
		out.AllowNetherlandsVAT = vat.NetherlandsReverseCharge
		out.AllowCrossBorderVAT = vat.CrossBorder
	}
	if out.AllowNetherlandsVAT || out.AllowCrossBorderVAT {
		out.VATPercentage = decimal.Zero
	}

	sender, receiver, err := SenderReceiver(out.Type, p)
	if err != nil {
		return Invoice{}, err
	}
	out.Sender, out.Receiver = &sender, &receiver
	out.SenderID, out.ReceiverID = sender.ID, receiver.ID
	if out.CompanyID == "" {
		out.CompanyID = p.Company.ID
	}
	if out.HiringCompanyID == "" {
		out.HiringCompanyID = p.HiringCompany.ID
	}
	if out.PaymentCompanyID == "" {
		out.PaymentCompanyID = p.PaymentCompany.ID
	}
	if out.WorkerID == "" && out.Type == TypeFreelancerToPaymentCompany {
		out.WorkerID = p.Worker.ID
	}
	if out.Currency == "" {
		out.Currency = DefaultCurrency
	}
	if out.Status == "" {
		out.Status = StatusPending
	}

	out.TimeSheetItems, out.TotalTimeSheetAmount = SubTotal(out.TimeSheetItems, false)
	out.ExpenseItems, out.TotalExpenseAmount = SubTotal(out.ExpenseItems, true)
	otherTotal := decimal.Zero
	for i := range out.Others {
		out.Others[i].Total = money.Round(out.Others[i].Total)
		otherTotal = otherTotal.Add(out.Others[i].Total)
	}
	out.TotalOtherAmount = money.Round(otherTotal)

	out.TotalAmountVatExcluded = money.Sum(out.TotalTimeSheetAmount, out.TotalExpenseAmount, out.TotalOtherAmount)
	out.TotalVatAmount = money.Round(money.Percent(out.TotalAmountVatExcluded, out.VATPercentage))
	out.TotalAmount = money.Round(out.TotalAmountVatExcluded.Add(out.TotalVatAmount))

	if p.HiringCompany.GAccountEnabled && out.Type == TypePaymentCompanyToHiringCompany {
		g := p.HiringCompany.GAccount
		if out.GAccount.Valid {
			g = out.GAccount.Decimal
		}
		out.GAccount = decimal.NewNullDecimal(g)
		out.CAccount = decimal.NewNullDecimal(hundred.Sub(g))
	}
	return out, nil
}

// SubTotal recomputes the total of every item and returns their sum. Only
// chargeable items count; the rest are zeroed. In the expense list an item
// without a rate is an amount, not a quantity.
func SubTotal(items []Item, expense bool) ([]Item, decimal.Decimal) {
	out := slices.Clone(items)
	total := decimal.Zero
	for i := range out {
		item := &out[i]
		item.TotalAmount = decimal.Zero
		if item.Chargeable == ChargeableYes {
			pct := item.ChargeablePercentage.Decimal
			if expense && item.Rate.IsZero() {
				item.TotalAmount = money.Round(money.Percent(item.Amount, pct))
			} else {
				item.TotalAmount = money.Round(money.Percent(item.Amount.Mul(item.Rate), pct))
			}
		}
		total = total.Add(item.TotalAmount)
	}
	return out, total
}

// GAccountSplit is the share of an invoice total paid into the blocked
// G-account and the remainder paid into the regular C-account.
type GAccountSplit struct {
	GAccount decimal.Decimal `json:"gAccount"`
	CAccount decimal.Decimal `json:"cAccount"`
	GAmount  decimal.Decimal `json:"gAmount"`
	CAmount  decimal.Decimal `json:"cAmount"`
}

func SplitGAccount(total, gAccount decimal.Decimal) GAccountSplit {
	c := hundred.Sub(gAccount)
	return GAccountSplit{
		GAccount: gAccount,
		CAccount: c,
		GAmount:  money.Round(money.Percent(total, gAccount)),
		CAmount:  money.Round(money.Percent(total, c)),
	}
}

// ItemEdit carries the editable fields of an invoice item. Unset fields
// keep the stored value.
type ItemEdit struct {
	ID                   string              `json:"id"`
	Amount               decimal.NullDecimal `json:"amount"`
	Rate                 decimal.NullDecimal `json:"rate"`
	Chargeable           Chargeable          `json:"chargeable"`
	ChargeablePercentage decimal.NullDecimal `json:"chargeablePercentage"`
}

type ItemEdits struct {
	TimeSheetItems []ItemEdit `json:"timeSheetItems"`
	ExpenseItems   []ItemEdit `json:"expenseItems"`
}

// EditsOf turns every item of inv into a complete edit.
func EditsOf(inv Invoice) ItemEdits {
	return ItemEdits{TimeSheetItems: itemEdits(inv.TimeSheetItems), ExpenseItems: itemEdits(inv.ExpenseItems)}
}

func itemEdits(items []Item) []ItemEdit {
	out := make([]ItemEdit, len(items))
	for i, item := range items {
		out[i] = ItemEdit{
			ID:                   item.ID,
			Amount:               decimal.NewNullDecimal(item.Amount),
			Rate:                 decimal.NewNullDecimal(item.Rate),
			Chargeable:           item.Chargeable,
			ChargeablePercentage: item.ChargeablePercentage,
		}
	}
	return out
}

func mergeItems(stored []Item, edits []ItemEdit) ([]Item, error) {
	if len(stored) != len(edits) {
		return nil, ErrInvalidItems
	}
	out := make([]Item, 0, len(edits))
	for _, e := range edits {
		i := slices.IndexFunc(stored, func(s Item) bool { return s.ID != "" && s.ID == e.ID })
		if i < 0 {
			return nil, ErrInvalidItems
		}
		merged := stored[i]
		if e.Amount.Valid {
			merged.Amount = e.Amount.Decimal
		}
		if e.Rate.Valid {
			merged.Rate = e.Rate.Decimal
		}
		if e.Chargeable != "" {
			merged.Chargeable = e.Chargeable
		}
		if e.ChargeablePercentage.Valid {
			merged.ChargeablePercentage = e.ChargeablePercentage
		}
		out = append(out, merged)
	}
	return out, nil
}

func cloneInvoice(in Invoice) Invoice {
	out := in
	out.TimeSheetItems = slices.Clone(in.TimeSheetItems)
	out.ExpenseItems = slices.Clone(in.ExpenseItems)
	out.Others = slices.Clone(in.Others)
	if in.Sender != nil {
		s := *in.Sender
		out.Sender = &s
	}
	if in.Receiver != nil {
		r := *in.Receiver
		out.Receiver = &r
	}
	return out
}
