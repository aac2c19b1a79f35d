package invoicing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"backoffice/internal/domain/joboffer"
	"backoffice/internal/domain/worklog"
	"backoffice/internal/platform/money"
)

// OtherExpenseItems builds the weekly lines that are not tied to a single
// worklog. Client invoices get travel-time and recurring expense lines;
// freelancer invoices get the mediation and pre-financing deductions, the
// latter computed from the already generated items of the same job offer.
func OtherExpenseItems(offers []OfferWeeks, t Type, timeSheet, expenses []Item) []Item {
	var out []Item
	for _, ow := range offers {
		offer := ow.Offer
		base := Item{
			JobID:                offer.JobID,
			JobOfferID:           offer.ID,
			WorkerID:             ow.Worker.ID,
			WorkerName:           ow.Worker.FullName(),
			Type:                 worklog.TypeExpense,
			Chargeable:           ChargeableYes,
			ChargeablePercentage: fullyChargeable,
			Unit:                 UnitPerHour,
		}
		add := func(item Item) {
			item.ID = uuid.NewString()
			out = append(out, item)
		}

		for _, week := range ow.Weeks {
			pv, _ := offer.PeriodVariableAt(week.Date)
			item := base
			item.JobTitle = week.JobTitle
			item.WeekNumber = week.WeekNumber
			item.Date = week.Date
			item.HourlyWage = pv.HourlyWage

			switch t {
			case TypeCompanyToHiringCompany, TypePaymentCompanyToHiringCompany:
				if pv.ChargeTravelHoursExpenses && pv.TravelHoursPerWeek.IsPositive() {
					travel := item
					travel.Category = CategoryTravelTimeExpenses
					travel.Rate = pv.PayRate
					travel.Amount = pv.TravelHoursPerWeek
					travel.TotalAmount = pv.PayRate.Mul(pv.TravelHoursPerWeek)
					add(travel)
				}
				if pv.ChargeOtherExpenses && pv.OtherExpenses.IsPositive() {
					amount := otherExpenseAmount(pv.OtherExpensesUnit, week.TotalHours, week.TotalWorkedDays)
					other := item
					other.Category = CategoryDefaultExpenses
					other.Rate = pv.OtherExpenses
					other.Unit = Unit(pv.OtherExpensesUnit)
					other.Amount = amount
					other.TotalAmount = pv.OtherExpenses.Mul(amount)
					add(other)
				}
			case TypeFreelancerToPaymentCompany:
				terms := pv.Freelancer
				if terms == nil {
					continue
				}
				if terms.MediationAmount.IsPositive() {
					mediation := item
					mediation.Category = CategoryMeditationTimeExpenses
					mediation.Rate = terms.MediationAmount
					mediation.Amount = week.TotalHours.Neg()
					mediation.TotalAmount = terms.MediationAmount.Mul(week.TotalHours).Neg()
					add(mediation)
				}
				if terms.PrefinancingPercentage.IsPositive() && len(timeSheet) > 0 {
					financed := weekTotal(timeSheet, offer.ID, week)
					rate := prefinancingRate(terms)
					finance := item
					finance.Unit = UnitPerAmount
					finance.Category = CategoryFinanceTimeExpenses
					finance.Rate = rate
					finance.Amount = financed
					finance.TotalAmount = rate.Mul(financed)
					add(finance)
				}
			}
		}

		if t != TypeFreelancerToPaymentCompany {
			continue
		}
		for _, exp := range expenses {
			if exp.JobOfferID != offer.ID {
				continue
			}
			pv, _ := offer.PeriodVariableAt(exp.Date)
			if pv.Freelancer == nil || !pv.Freelancer.PrefinancingPercentage.IsPositive() {
				continue
			}
			rate := prefinancingRate(pv.Freelancer)
			finance := base
			finance.JobTitle = exp.JobTitle
			finance.WeekNumber = exp.WeekNumber
			finance.Date = exp.Date
			finance.HourlyWage = pv.HourlyWage
			finance.Unit = UnitPerAmount
			finance.Category = CategoryFinanceTimeExpenses
			finance.Rate = rate
			finance.Amount = exp.TotalAmount
			finance.TotalAmount = rate.Mul(exp.TotalAmount)
			finance.IsExpenses = true
			add(finance)
		}
	}
	return out
}

// otherExpenseAmount is the quantity a recurring expense is charged for in
// one week.
func otherExpenseAmount(unit joboffer.ExpenseUnit, hours decimal.Decimal, workedDays int) decimal.Decimal {
	switch unit {
	case joboffer.PerHour:
		return money.Round(hours)
	case joboffer.PerDay:
		return decimal.NewFromInt(int64(workedDays))
	case joboffer.PerWeek:
		if hours.IsPositive() {
			return decimal.NewFromInt(1)
		}
	}
	return decimal.Zero
}

func prefinancingRate(terms *joboffer.FreelancerTerms) decimal.Decimal {
	return terms.PrefinancingPercentage.Div(decimal.NewFromInt(100)).Neg()
}

// weekTotal sums the timesheet item totals of one job offer and week.
func weekTotal(items []Item, offerID string, week WeekData) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		if item.JobOfferID != offerID || item.WeekNumber != week.WeekNumber {
			continue
		}
		if year, _ := item.Date.ISOWeek(); year != week.Year {
			continue
		}
		total = total.Add(item.TotalAmount)
	}
	return total
}
