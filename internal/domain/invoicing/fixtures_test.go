package invoicing

import (
	"time"

	"github.com/shopspring/decimal"

	"backoffice/internal/domain/company"
	"backoffice/internal/domain/joboffer"
	"backoffice/internal/domain/worklog"
)

func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func regularOffer() joboffer.JobOffer {
	return joboffer.JobOffer{
		ID:               "jo-1",
		JobID:            "job-1",
		JobTitle:         "Warehouse operator",
		CompanyID:        "c-1",
		HiringCompanyID:  "h-1",
		PaymentCompanyID: "c-1",
		WorkerID:         "w-1",
		StartDate:        day(2024, 1, 1),
		Contract:         joboffer.ContractType{Version: joboffer.ContractVersionTraditional, CompanyContractTemplatePath: "templates/regular.docx"},
		PeriodVariables: []joboffer.PeriodVariable{{
			StartDate:     day(2024, 1, 1),
			PayRate:       dec("25"),
			HourlyWage:    dec("15"),
			BrokerFee:     dec("3"),
			TermOfPayment: "30_days",
		}},
	}
}

func freelancerOffer() joboffer.JobOffer {
	offer := regularOffer()
	offer.ID = "jo-fl"
	offer.Contract.CompanyContractTemplatePath = "templates/freelancer.docx"
	offer.PeriodVariables[0].ChargeWorkLogExpenses = true
	offer.PeriodVariables[0].Freelancer = &joboffer.FreelancerTerms{
		HourlyRateToPaymentCompany: dec("50"),
		HourlyRateToHiringCompany:  dec("60"),
		MediationAmount:            dec("2"),
		PrefinancingPercentage:     dec("5"),
		TermOfPayment:              "7_days",
	}
	return offer
}

// weekDays returns Monday to Friday of ISO week 7 of 2024 with the given
// normal hours per day.
func weekDays(hours string) []worklog.Day {
	days := make([]worklog.Day, 0, 5)
	for i := 0; i < 5; i++ {
		days = append(days, worklog.Day{Date: day(2024, 2, 12+i), NormalWageHours: dec(hours)})
	}
	return days
}

func timeSheet(id, offerID string, days []worklog.Day) worklog.WorkLog {
	return worklog.Serialize(worklog.WorkLog{
		ID:               id,
		Type:             worklog.TypeTimeSheet,
		Status:           worklog.StatusApproved,
		JobOfferID:       offerID,
		WorkerID:         "w-1",
		CompanyID:        "c-1",
		HiringCompanyID:  "h-1",
		PaymentCompanyID: "c-1",
		TimeSheet:        &worklog.TimeSheet{Days: days},
	})
}

func expenseLog(id, offerID, category, amount string, date time.Time) worklog.WorkLog {
	return worklog.Serialize(worklog.WorkLog{
		ID:               id,
		Type:             worklog.TypeExpense,
		Status:           worklog.StatusApproved,
		JobOfferID:       offerID,
		WorkerID:         "w-1",
		CompanyID:        "c-1",
		HiringCompanyID:  "h-1",
		PaymentCompanyID: "c-1",
		Expense:          &worklog.Expense{Category: category, Amount: dec(amount), ProjectID: "p-1", Date: date},
	})
}

func snapshot(offers []joboffer.JobOffer, logs ...worklog.WorkLog) Snapshot {
	s := Snapshot{
		WorkLogs:  logs,
		JobOffers: map[string]joboffer.JobOffer{},
		Workers: map[string]company.Worker{
			"w-1": {ID: "w-1", FirstName: "Jan", LastName: "Jansen", Freelancer: true},
		},
	}
	for _, o := range offers {
		s.JobOffers[o.ID] = o
	}
	return s
}

func parties() Parties {
	return Parties{
		Company: company.Company{
			ID: "c-1", Name: "Intermediary BV", Type: company.TypeIntermediary, Country: company.CountryNetherlands,
			VAT: "NL001", BIC: "INGBNL2A", IBAN: "NL00INGB0001", CanCreateRegularInvoice: true,
			AllowedCompanies: []company.AllowedCompany{{CompanyID: "h-1", Status: company.AllowStateAllowed, Type: company.AllowTypeIntermediary}},
		},
		HiringCompany: company.Company{
			ID: "h-1", Name: "Hiring BV", Type: company.TypeNormal, Country: company.CountryNetherlands,
			VAT: "NL002", ApplicableTaxRate: dec("21"),
		},
		PaymentCompany: company.Company{
			ID: "c-1", Name: "Intermediary BV", Type: company.TypeIntermediary, Country: company.CountryNetherlands,
			VAT: "NL001", BIC: "INGBNL2A", IBAN: "NL00INGB0001",
		},
		Worker: company.Worker{ID: "w-1", FirstName: "Jan", LastName: "Jansen", Freelancer: true},
	}
}

func sumTotals(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		if item.Chargeable == ChargeableYes {
			total = total.Add(item.TotalAmount)
		}
	}
	return total
}
