package joboffer

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr(t time.Time) *time.Time { return &t }

func contiguousOffer() JobOffer {
	return JobOffer{
		StartDate: day(2024, 1, 1),
		PeriodVariables: []PeriodVariable{
			{StartDate: day(2024, 1, 1), EndDate: ptr(day(2024, 3, 31)), PayRate: decimal.NewFromInt(25)},
			{StartDate: day(2024, 4, 1), EndDate: ptr(day(2024, 6, 30)), PayRate: decimal.NewFromInt(27)},
			{StartDate: day(2024, 7, 1), PayRate: decimal.NewFromInt(30)},
		},
	}
}

func TestPeriodVariableAtContiguousRanges(t *testing.T) {
	offer := contiguousOffer()
	cases := []struct {
		date    time.Time
		version int
		rate    int64
	}{
		{day(2024, 2, 15), 1, 25},
		{day(2024, 3, 31), 1, 25},
		{day(2024, 4, 1), 2, 27},
		{day(2024, 12, 1), 3, 30},
	}
	for _, tc := range cases {
		pv, version := offer.PeriodVariableAt(tc.date)
		if version != tc.version {
			t.Fatalf("date %s: expected version %d, got %d", tc.date.Format("2006-01-02"), tc.version, version)
		}
		if !pv.PayRate.Equal(decimal.NewFromInt(tc.rate)) {
			t.Fatalf("date %s: expected rate %d, got %s", tc.date.Format("2006-01-02"), tc.rate, pv.PayRate)
		}
		again, againVersion := offer.PeriodVariableAt(tc.date)
		if againVersion != version || !again.PayRate.Equal(pv.PayRate) {
			t.Fatal("expected lookup to be idempotent")
		}
	}
}

func TestPeriodVariableAtBoundaries(t *testing.T) {
	offer := contiguousOffer()
	offer.EndDate = ptr(day(2024, 12, 31))

	if _, v := offer.PeriodVariableAt(day(2023, 6, 1)); v != 1 {
		t.Fatalf("expected first variable before start, got version %d", v)
	}
	if _, v := offer.PeriodVariableAt(day(2025, 2, 1)); v != 3 {
		t.Fatalf("expected last variable after end, got version %d", v)
	}
}

func TestPeriodVariableAtSingleVariable(t *testing.T) {
	offer := JobOffer{
		StartDate:       day(2024, 1, 1),
		PeriodVariables: []PeriodVariable{{StartDate: day(2024, 5, 1), PayRate: decimal.NewFromInt(10)}},
	}
	if _, v := offer.PeriodVariableAt(day(2020, 1, 1)); v != 1 {
		t.Fatalf("expected the only variable, got version %d", v)
	}
}

func TestPeriodVariableAtOverlapFirstMatchWins(t *testing.T) {
	offer := JobOffer{
		StartDate: day(2024, 1, 1),
		PeriodVariables: []PeriodVariable{
			{StartDate: day(2024, 1, 1), PayRate: decimal.NewFromInt(20)},
			{StartDate: day(2024, 2, 1), EndDate: ptr(day(2024, 2, 28)), PayRate: decimal.NewFromInt(40)},
		},
	}
	pv, v := offer.PeriodVariableAt(day(2024, 2, 10))
	if v != 1 || !pv.PayRate.Equal(decimal.NewFromInt(20)) {
		t.Fatalf("expected first overlapping variable, got version %d rate %s", v, pv.PayRate)
	}
}

func TestPeriodVariableAtNoMatch(t *testing.T) {
	offer := JobOffer{
		StartDate: day(2024, 1, 1),
		PeriodVariables: []PeriodVariable{
			{StartDate: day(2024, 1, 1), EndDate: ptr(day(2024, 1, 31))},
			{StartDate: day(2024, 3, 1)},
		},
	}
	if _, v := offer.PeriodVariableAt(day(2024, 2, 10)); v != 0 {
		t.Fatalf("expected no match in a gap, got version %d", v)
	}
	if _, v := (JobOffer{}).PeriodVariableAt(day(2024, 2, 10)); v != 0 {
		t.Fatalf("expected version 0 without variables, got %d", v)
	}
}

func TestContractKind(t *testing.T) {
	cases := map[ContractKind]ContractType{
		ContractFreelancer: {Version: ContractVersionTraditional, CompanyContractTemplatePath: "templates/freelancer_nl.docx"},
		ContractOffline:    {Version: ContractVersionTraditional, CompanyContractTemplatePath: "templates/offline.docx"},
		ContractDocusign:   {Version: ContractVersionDocusign},
		ContractRegular:    {Version: ContractVersionTraditional, CompanyContractTemplatePath: "templates/regular.docx"},
	}
	for want, ct := range cases {
		if got := ct.Kind(); got != want {
			t.Fatalf("expected %s, got %s", want, got)
		}
	}
}

func TestIsBroker(t *testing.T) {
	if !IsBroker("c1", "h1", "p1") {
		t.Fatal("expected broker relationship")
	}
	if IsBroker("c1", "h1", "c1") {
		t.Fatal("own payment company is not a broker")
	}
	if IsBroker("c1", "c1", "p1") {
		t.Fatal("company hiring itself is not a broker")
	}
}

func TestCovers(t *testing.T) {
	offer := JobOffer{StartDate: day(2024, 1, 10), EndDate: ptr(day(2024, 1, 20))}
	if offer.Covers(day(2024, 1, 9)) {
		t.Fatal("day before start must not be covered")
	}
	if !offer.Covers(time.Date(2024, 1, 20, 18, 0, 0, 0, time.UTC)) {
		t.Fatal("end day must be covered")
	}
	offer.EndDate = ptr(day(2023, 1, 1))
	if !offer.Covers(day(2030, 1, 1)) {
		t.Fatal("end before start is treated as open ended")
	}
}
