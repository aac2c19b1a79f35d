package invoicing

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"backoffice/internal/domain/company"
	"backoffice/internal/domain/joboffer"
)

func regularInvoice(t *testing.T, typ Type) Invoice {
	t.Helper()
	s := snapshot([]joboffer.JobOffer{regularOffer()}, timeSheet("wl-1", "jo-1", weekDays("8")))
	items, err := Generate(s, typ)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return Invoice{Type: typ, TimeSheetItems: items.TimeSheet, ExpenseItems: items.Expense, VATPercentage: dec("21")}
}

func TestSerializeRegularInvoice(t *testing.T) {
	inv, err := Serialize(regularInvoice(t, TypeCompanyToHiringCompany), nil, parties())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !inv.TotalTimeSheetAmount.Equal(dec("1000")) || !inv.TotalAmountVatExcluded.Equal(dec("1000")) {
		t.Fatalf("expected 1000 excluding VAT, got %s", inv.TotalAmountVatExcluded)
	}
	if !inv.TotalVatAmount.Equal(dec("210")) || !inv.TotalAmount.Equal(dec("1210")) {
		t.Fatalf("expected requested 21%% VAT, got %s and %s", inv.TotalVatAmount, inv.TotalAmount)
	}
	if !inv.TotalAmount.Equal(inv.TotalAmountVatExcluded.Add(inv.TotalVatAmount)) {
		t.Fatal("total must equal net plus VAT")
	}
	if !inv.TotalTimeSheetAmount.Equal(sumTotals(inv.TimeSheetItems)) {
		t.Fatal("timesheet subtotal must equal the sum of chargeable items")
	}
	if inv.Status != StatusPending || inv.Currency != "EUR" {
		t.Fatalf("expected pending EUR invoice, got %s %s", inv.Status, inv.Currency)
	}
	if inv.SenderID != "c-1" || inv.ReceiverID != "h-1" || inv.HiringCompanyID != "h-1" {
		t.Fatalf("unexpected parties %s -> %s", inv.SenderID, inv.ReceiverID)
	}
}

func TestSubTotalChargeablePercentage(t *testing.T) {
	items := []Item{
		{Amount: dec("40"), Rate: dec("25"), Chargeable: ChargeableYes, ChargeablePercentage: decimal.NewNullDecimal(dec("50"))},
		{Amount: dec("10"), Rate: dec("25"), Chargeable: ChargeableNo, ChargeablePercentage: fullyChargeable, TotalAmount: dec("250")},
		{Amount: dec("3"), Rate: dec("25"), Chargeable: ChargeableHide, ChargeablePercentage: fullyChargeable},
	}
	out, total := SubTotal(items, false)
	if !total.Equal(dec("500")) {
		t.Fatalf("expected 500, got %s", total)
	}
	if !out[1].TotalAmount.IsZero() || !items[1].TotalAmount.Equal(dec("250")) {
		t.Fatal("non-chargeable items are zeroed on a copy")
	}

	expenses := []Item{{Amount: dec("12.345"), Chargeable: ChargeableYes, ChargeablePercentage: fullyChargeable}}
	if _, total := SubTotal(expenses, true); !total.Equal(dec("12.35")) {
		t.Fatalf("expected rate-less expense to count its amount, got %s", total)
	}
}

func TestDefaultVAT(t *testing.T) {
	p := parties()
	p.HiringCompany.ApplicableTaxRate = decimal.NewFromInt(company.TaxRateNetherlandsReverseCharge)
	inv, err := Serialize(regularInvoice(t, TypePaymentCompanyToHiringCompany), nil, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !inv.VATPercentage.IsZero() || !inv.AllowNetherlandsVAT || inv.AllowCrossBorderVAT {
		t.Fatalf("expected reverse-charged VAT, got %s %v %v", inv.VATPercentage, inv.AllowNetherlandsVAT, inv.AllowCrossBorderVAT)
	}
	if !inv.TotalAmount.Equal(inv.TotalAmountVatExcluded) {
		t.Fatal("reverse-charged invoice must carry no VAT")
	}

	p.HiringCompany.ApplicableTaxRate = decimal.NewFromInt(company.TaxRateCrossBorder)
	if v := DefaultVAT(TypePaymentCompanyToHiringCompany, p); !v.CrossBorder || !v.Percentage.IsZero() {
		t.Fatalf("expected cross-border VAT, got %+v", v)
	}

	p.HiringCompany.ApplicableTaxRate = dec("9")
	if v := DefaultVAT(TypePaymentCompanyToHiringCompany, p); !v.Percentage.Equal(dec("9")) || v.Rule != "hiring_company_rate" {
		t.Fatalf("expected hiring company rate 9, got %+v", v)
	}

	german := parties()
	german.HiringCompany.Country = company.CountryGermany
	german.HiringCompany.ApplicableTaxRate = dec("19")
	for _, typ := range []Type{TypeCompanyToHiringCompany, TypePaymentCompanyToHiringCompany, TypeFreelancerToPaymentCompany} {
		if v := DefaultVAT(typ, german); !v.Percentage.Equal(dec("19")) || v.Keep {
			t.Fatalf("%s: expected German 19%%, got %+v", typ, v)
		}
	}

	if v := DefaultVAT(TypeFreelancerToPaymentCompany, parties()); !v.Percentage.Equal(dec("21")) {
		t.Fatalf("expected domestic freelancer 21%%, got %+v", v)
	}
	foreign := parties()
	foreign.Company.Country = "Belgium"
	if v := DefaultVAT(TypeFreelancerToPaymentCompany, foreign); !v.CrossBorder {
		t.Fatalf("expected cross-border freelancer VAT, got %+v", v)
	}
	if v := DefaultVAT(TypeCompanyToHiringCompany, parties()); !v.Keep {
		t.Fatalf("expected requested VAT to stand, got %+v", v)
	}
}

func TestSerializeFlagsForceZeroVAT(t *testing.T) {
	inv := regularInvoice(t, TypeCompanyToHiringCompany)
	inv.AllowCrossBorderVAT = true
	out, err := Serialize(inv, nil, parties())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.VATPercentage.IsZero() || !out.TotalVatAmount.IsZero() {
		t.Fatalf("expected zero VAT, got %s", out.VATPercentage)
	}
}

func TestSerializeGAccount(t *testing.T) {
	p := parties()
	p.HiringCompany.GAccountEnabled = true
	p.HiringCompany.GAccount = dec("20")
	inv := regularInvoice(t, TypePaymentCompanyToHiringCompany)
	out, err := Serialize(inv, nil, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.GAccount.Decimal.Equal(dec("20")) || !out.CAccount.Decimal.Equal(dec("80")) {
		t.Fatalf("expected 20/80 split, got %s/%s", out.GAccount.Decimal, out.CAccount.Decimal)
	}

	split := SplitGAccount(dec("1000"), dec("20"))
	if !split.GAmount.Equal(dec("200")) || !split.CAmount.Equal(dec("800")) {
		t.Fatalf("expected 200/800, got %s/%s", split.GAmount, split.CAmount)
	}

	inv.GAccount = decimal.NewNullDecimal(dec("35"))
	out, _ = Serialize(inv, nil, p)
	if !out.CAccount.Decimal.Equal(dec("65")) {
		t.Fatalf("expected explicit G-account to be kept, got C %s", out.CAccount.Decimal)
	}
}

func TestSerializeEdit(t *testing.T) {
	stored, err := Serialize(regularInvoice(t, TypeCompanyToHiringCompany), nil, parties())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	edit := cloneInvoice(stored)
	edit.TimeSheetItems[0].Amount = dec("20")
	edit.TimeSheetItems[0].WorkerName = "someone else"
	out, err := Serialize(edit, &stored, parties())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.TotalAmountVatExcluded.Equal(dec("500")) {
		t.Fatalf("expected 500 after editing the amount, got %s", out.TotalAmountVatExcluded)
	}
	if out.TimeSheetItems[0].WorkerName != "Jan Jansen" {
		t.Fatal("only editable fields may be taken over")
	}

	edit = cloneInvoice(stored)
	edit.TimeSheetItems = append(edit.TimeSheetItems, Item{ID: "extra"})
	if _, err := Serialize(edit, &stored, parties()); !errors.Is(err, ErrInvalidItems) {
		t.Fatalf("expected invalid items for count mismatch, got %v", err)
	}

	edit = cloneInvoice(stored)
	edit.TimeSheetItems[0].ID = "unknown"
	if _, err := Serialize(edit, &stored, parties()); !errors.Is(err, ErrInvalidItems) {
		t.Fatalf("expected invalid items for unknown id, got %v", err)
	}

	if _, err := Serialize(Invoice{Type: "bogus"}, nil, parties()); !errors.Is(err, ErrInvalidType) {
		t.Fatalf("expected invalid type, got %v", err)
	}
}

func TestCredit(t *testing.T) {
	inv, err := Serialize(regularInvoice(t, TypeCompanyToHiringCompany), nil, parties())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	inv.ID = "inv-1"
	inv.Number = "42"
	inv.TermOfPayment = "30_days"
	inv.Others = []Other{{Description: "Parking", Rate: dec("10"), Total: dec("10")}}
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	credit, ids, err := Credit(inv, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !credit.TotalAmount.Equal(inv.TotalAmount.Neg()) || !credit.TimeSheetItems[0].TotalAmount.Equal(dec("-1000")) {
		t.Fatalf("expected negated amounts, got %s", credit.TotalAmount)
	}
	if !credit.Others[0].Rate.Equal(dec("-10")) || !inv.Others[0].Rate.Equal(dec("10")) {
		t.Fatal("expected others negated on the credit note only")
	}
	if credit.ID != "" || credit.Number != "" || credit.Status != StatusCredited || credit.CancelledInvoiceNumber != "42" {
		t.Fatalf("unexpected credit note identity %+v", credit)
	}
	if credit.DueDate == nil || !credit.DueDate.Equal(now.AddDate(0, 0, 30)) {
		t.Fatalf("unexpected due date %v", credit.DueDate)
	}
	if !slices.Equal(ids, []string{"wl-1"}) {
		t.Fatalf("expected worklog wl-1, got %v", ids)
	}

	cancelled := Cancel(inv, "43", now)
	if cancelled.Status != StatusCancelled || cancelled.CreditInvoiceNumber != "43" {
		t.Fatalf("unexpected cancelled invoice %+v", cancelled)
	}
	if _, _, err := Credit(cancelled, now); !errors.Is(err, ErrInvoiceNotCreditable) {
		t.Fatalf("expected not creditable, got %v", err)
	}
	if _, _, err := Credit(credit, now); !errors.Is(err, ErrInvoiceNotCreditable) {
		t.Fatalf("expected credit notes not creditable, got %v", err)
	}
}

func TestCreditNoteIsFinal(t *testing.T) {
	inv, err := Serialize(regularInvoice(t, TypeCompanyToHiringCompany), nil, parties())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	credit, _, err := Credit(inv, time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !credit.TotalAmount.Equal(inv.TotalAmount.Neg()) {
		t.Fatalf("expected %s, got %s", inv.TotalAmount.Neg(), credit.TotalAmount)
	}

	if _, err := Serialize(credit, &credit, parties()); !errors.Is(err, ErrInvoiceNotEditable) {
		t.Fatalf("expected credit note edit to fail, got %v", err)
	}
	if _, err := Serialize(credit, nil, parties()); !errors.Is(err, ErrInvoiceNotEditable) {
		t.Fatalf("expected credit note recompute to fail, got %v", err)
	}
	cancelled := Cancel(inv, "43", time.Now())
	if _, err := Serialize(inv, &cancelled, parties()); !errors.Is(err, ErrInvoiceNotEditable) {
		t.Fatalf("expected cancelled invoice edit to fail, got %v", err)
	}
	if credit.TotalAmount.IsPositive() {
		t.Fatalf("credit note must stay negative, got %s", credit.TotalAmount)
	}
}

func TestSerializeEditKeepsUnsetFields(t *testing.T) {
	stored, err := Serialize(regularInvoice(t, TypeCompanyToHiringCompany), nil, parties())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	edits := ItemEdits{TimeSheetItems: []ItemEdit{{ID: stored.TimeSheetItems[0].ID, Amount: decimal.NewNullDecimal(dec("20"))}}}
	out, err := SerializeEdit(stored, edits, stored, parties())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.TimeSheetItems[0].Rate.Equal(dec("25")) {
		t.Fatalf("expected stored rate 25, got %s", out.TimeSheetItems[0].Rate)
	}
	if !out.TotalAmountVatExcluded.Equal(dec("500")) {
		t.Fatalf("expected 500, got %s", out.TotalAmountVatExcluded)
	}

	edits.TimeSheetItems[0] = ItemEdit{ID: stored.TimeSheetItems[0].ID, Rate: decimal.NewNullDecimal(dec("30"))}
	out, err = SerializeEdit(stored, edits, stored, parties())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.TimeSheetItems[0].Amount.Equal(dec("40")) || !out.TotalAmountVatExcluded.Equal(dec("1200")) {
		t.Fatalf("expected stored amount 40 at rate 30, got %s / %s", out.TimeSheetItems[0].Amount, out.TotalAmountVatExcluded)
	}
}
