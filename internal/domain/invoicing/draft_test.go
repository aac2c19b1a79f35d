package invoicing

import (
	"errors"
	"testing"

	"backoffice/internal/domain/company"
	"backoffice/internal/domain/joboffer"
)

func draftInput() DraftInput {
	return DraftInput{
		Snapshot:      snapshot([]joboffer.JobOffer{regularOffer()}, timeSheet("wl-1", "jo-1", weekDays("8"))),
		Parties:       parties(),
		Projects:      []Project{{ID: "p-1", Code: "PO-7"}},
		Others:        []Other{{Description: "Parking", Rate: dec("5"), Amount: dec("1"), Total: dec("5")}},
		VATPercentage: dec("21"),
	}
}

func TestDraftResolvesTypeAndPrices(t *testing.T) {
	manager := Requester{UserID: "u-1", Role: RoleManager, CompanyID: "c-1"}
	inv, err := Draft(draftInput(), manager)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.Type != TypeCompanyToHiringCompany {
		t.Fatalf("expected own payment company to invoice the client, got %s", inv.Type)
	}
	if !inv.TotalAmountVatExcluded.Equal(dec("1005")) || !inv.TotalAmount.Equal(dec("1216.05")) {
		t.Fatalf("expected 1005 net and 1216.05 total, got %s and %s", inv.TotalAmountVatExcluded, inv.TotalAmount)
	}
	if inv.TermOfPayment != "30_days" || inv.PONumber != "PO-7" {
		t.Fatalf("unexpected term %q or po %q", inv.TermOfPayment, inv.PONumber)
	}
	if inv.Others[0].ID == "" {
		t.Fatal("expected manual lines to get an id")
	}
}

func TestDraftRejectsUnauthorizedAndEmpty(t *testing.T) {
	manager := Requester{Role: RoleManager, CompanyID: "c-1"}

	in := draftInput()
	in.Parties.Company.Type = company.TypeNormal
	if _, err := Draft(in, manager); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}

	in = draftInput()
	in.Snapshot.WorkLogs = nil
	in.Others = nil
	if _, err := Draft(in, manager); !errors.Is(err, ErrInvalidItems) {
		t.Fatalf("expected no items to fail, got %v", err)
	}

	in = draftInput()
	in.Type = Type("bogus")
	if _, err := Draft(in, manager); !errors.Is(err, ErrInvalidType) {
		t.Fatalf("expected invalid type, got %v", err)
	}
}
