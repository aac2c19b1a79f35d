package invoicing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DraftInput is everything needed to draw up a new invoice. An empty Type
// is resolved from the parties and the requester.
type DraftInput struct {
	Type          Type            `json:"type,omitempty"`
	Currency      string          `json:"currency,omitempty"`
	Snapshot      Snapshot        `json:"snapshot"`
	Parties       Parties         `json:"parties"`
	Projects      []Project       `json:"projects"`
	Others        []Other         `json:"others"`
	VATPercentage decimal.Decimal `json:"vatPercentage"`
}

// Draft generates, prices and authorizes a new invoice for r. Nothing is
// returned unless every step succeeds.
func Draft(in DraftInput, r Requester) (Invoice, error) {
	t := in.Type
	if t == "" {
		t = ResolveType(in.Parties.Company.ID, in.Parties.PaymentCompany.ID, r)
	}
	items, err := Generate(in.Snapshot, t)
	if err != nil {
		return Invoice{}, err
	}
	if len(items.TimeSheet)+len(items.Expense)+len(in.Others) == 0 {
		return Invoice{}, ErrInvalidItems
	}

	others := make([]Other, len(in.Others))
	for i, o := range in.Others {
		if o.ID == "" {
			o.ID = uuid.NewString()
		}
		others[i] = o
	}
	inv, err := Serialize(Invoice{
		Type:           t,
		Currency:       in.Currency,
		TimeSheetItems: items.TimeSheet,
		ExpenseItems:   items.Expense,
		Others:         others,
		VATPercentage:  in.VATPercentage,
		TermOfPayment:  TermOfPayment(in.Snapshot, t),
		PONumber:       PONumber(in.Projects),
	}, nil, in.Parties)
	if err != nil {
		return Invoice{}, err
	}
	if err := Authorize(inv, in.Parties, r, true); err != nil {
		return Invoice{}, err
	}
	return inv, nil
}
