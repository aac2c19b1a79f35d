package invoicing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"backoffice/internal/domain/joboffer"
	"backoffice/internal/domain/worklog"
)

var fullyChargeable = decimal.NewNullDecimal(decimal.NewFromInt(100))

// Generate turns the approved worklogs of s into invoice lines of type t:
// per-worklog timesheet and expense items followed by the weekly items of
// every job offer touched.
func Generate(s Snapshot, t Type) (Items, error) {
	if !t.Valid() {
		return Items{}, ErrInvalidType
	}
	agg, err := Aggregate(s)
	if err != nil {
		return Items{}, err
	}

	var out Items
	for _, e := range agg.TimeSheets {
		ts, exp := timeSheetItems(e, t, s.CodePercentages)
		out.TimeSheet = append(out.TimeSheet, ts...)
		out.Expense = append(out.Expense, exp...)
	}
	for _, e := range agg.Expenses {
		if item, ok := expenseItem(e, t); ok {
			out.Expense = append(out.Expense, item)
		}
	}
	out.Expense = append(out.Expense, OtherExpenseItems(agg.Offers, t, out.TimeSheet, out.Expense)...)
	return out, nil
}

func skeleton(e Entry, rate decimal.Decimal) Item {
	w := e.WorkLog
	jobID := w.JobID
	if jobID == "" {
		jobID = e.Offer.JobID
	}
	return Item{
		ID:                   uuid.NewString(),
		WorkLogID:            w.ID,
		JobID:                jobID,
		JobOfferID:           e.Offer.ID,
		JobTitle:             e.Offer.JobTitle,
		WorkerID:             e.Worker.ID,
		WorkerName:           e.Worker.FullName(),
		Type:                 worklog.TypeTimeSheet,
		Category:             CategoryRegularHours,
		WeekNumber:           w.WeekNumber(),
		Date:                 w.Date(),
		Rate:                 rate,
		HourlyWage:           e.Period.HourlyWage,
		Chargeable:           ChargeableYes,
		ChargeablePercentage: fullyChargeable,
		Unit:                 UnitPerHour,
	}
}

func timeSheetItems(e Entry, t Type, codePercentages map[string]decimal.Decimal) (timeSheet, expenses []Item) {
	rate := Rate(t, e.Offer, e.Period)
	base := skeleton(e, rate)
	next := func() Item {
		item := base
		item.ID = uuid.NewString()
		return item
	}

	if !e.Regular.IsZero() {
		item := next()
		item.Amount = e.Regular
		item.TotalAmount = e.Regular.Mul(rate)
		timeSheet = append(timeSheet, item)
	}

	orpID := e.Offer.ORPID()
	for _, g := range e.Adjusted {
		item := next()
		item.Code = g.Code
		item.Amount = g.Hours
		if orpID != "" {
			itemRate := g.ORPItem.InvoiceRate
			if e.Offer.IsFreelancer() && t == TypeFreelancerToPaymentCompany {
				itemRate = g.ORPItem.HourlyWageSurcharge
			}
			item.Rate = itemRate
			item.Category = Category(g.ORPItem.InvoiceLabel)
			item.TotalAmount = g.Hours.Mul(itemRate)
			item.ChargeablePercentage = fullyChargeable
			item.OriginalPercentage = fullyChargeable
			item.ORPID = orpID
			item.ORPItemID = g.ORPItem.ID
		} else {
			item.Category = CategoryAdjustedHours
			item.TotalAmount = g.Weighted.Mul(rate)
			item.ChargeablePercentage = decimal.NullDecimal{}
			if pct, ok := codePercentages[g.Code]; ok && !pct.IsZero() {
				item.ChargeablePercentage = decimal.NewNullDecimal(pct)
			}
			item.OriginalPercentage = decimal.NewNullDecimal(g.Percent)
		}
		timeSheet = append(timeSheet, item)
	}

	if t == TypePaymentCompanyToHiringCompany && e.Offer.ORP != nil {
		for _, fixed := range e.Offer.ORP.FixedCompensationItems {
			if !fixed.InvoiceToHC {
				continue
			}
			amount := compensationAmount(e.WorkLog.TimeSheet, fixed)
			item := next()
			item.ORPID = orpID
			item.Category = CategoryFixedCompensation
			item.SubCategory = fixed.Description
			item.Rate = fixed.InvoiceRate
			item.Unit = compensationUnit(fixed)
			item.Amount = amount
			item.TotalAmount = amount.Mul(fixed.InvoiceRate)
			timeSheet = append(timeSheet, item)
		}
	}

	if t != TypeCompanyToPaymentCompany && e.Period.ChargeTravelDistanceExpenses && !e.Distance.IsZero() {
		item := next()
		item.Category = CategoryTravelExpenses
		item.Unit = UnitPerKilometer
		item.Rate = e.Period.TravelDistanceExpenseRate
		item.Amount = e.Distance
		item.TotalAmount = e.Distance.Mul(e.Period.TravelDistanceExpenseRate)
		expenses = append(expenses, item)
	}
	return timeSheet, expenses
}

func expenseItem(e Entry, t Type) (Item, bool) {
	if t == TypeCompanyToPaymentCompany || !e.Period.ChargeWorkLogExpenses {
		return Item{}, false
	}
	exp := e.WorkLog.Expense
	item := skeleton(e, decimal.Zero)
	item.Type = worklog.TypeExpense
	item.Unit = UnitPerAmount
	item.ProjectID = exp.ProjectID
	item.Category = Category(exp.Category + "_expenses")
	item.Amount = exp.Amount
	item.TotalAmount = exp.Amount
	return item, true
}

// compensationAmount is how many compensation units a timesheet earns.
func compensationAmount(ts *worklog.TimeSheet, fixed joboffer.FixedCompensation) decimal.Decimal {
	switch fixed.CompensationUnit {
	case joboffer.CompensationHour:
		return ts.TotalHours
	case joboffer.CompensationWeek:
		if ts.TotalHours.IsZero() {
			return decimal.Zero
		}
		return decimal.NewFromInt(1)
	case joboffer.CompensationDay, joboffer.CompensationWeekDay:
		days := 0
		for _, d := range ts.Days {
			if !d.Worked() {
				continue
			}
			if fixed.CompensationUnit == joboffer.CompensationWeekDay {
				if wd := d.Date.Weekday(); wd == time.Saturday || wd == time.Sunday {
					continue
				}
			}
			days++
		}
		return decimal.NewFromInt(int64(days))
	}
	return decimal.Zero
}

func compensationUnit(fixed joboffer.FixedCompensation) Unit {
	switch fixed.CompensationUnit {
	case joboffer.CompensationHour:
		return UnitPerHour
	case joboffer.CompensationWeek:
		return UnitPerWeek
	}
	return UnitPerDay
}
