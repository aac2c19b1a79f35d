package worklog

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"backoffice/internal/domain/joboffer"
)

// Serialize returns a copy of w with derived fields recomputed: zero-hour
// adjusted wages are dropped and the timesheet totals are summed from the
// days. Expense week, month and year are derived from the expense date.
func Serialize(w WorkLog) WorkLog {
	out := Clone(w)
	if out.Type == TypeTimeSheet && out.TimeSheet != nil && len(out.TimeSheet.Days) > 0 {
		ts := out.TimeSheet
		normal, adjusted, distance := decimal.Zero, decimal.Zero, decimal.Zero
		for i := range ts.Days {
			d := &ts.Days[i]
			d.AdjustedWages = slices.DeleteFunc(d.AdjustedWages, func(a AdjustedWage) bool {
				return a.Hours.IsZero()
			})
			normal = normal.Add(d.NormalWageHours)
			for _, a := range d.AdjustedWages {
				adjusted = adjusted.Add(a.Hours)
			}
			distance = distance.Add(d.DistanceTraveled)
		}
		ts.TotalNormalWageHours = normal
		ts.TotalAdjustedWageHours = adjusted
		ts.TotalDistanceTraveled = distance
		ts.TotalHours = normal.Add(adjusted)
		if ts.WeekNumber == 0 {
			_, ts.WeekNumber = ts.Days[0].Date.ISOWeek()
		}
	}
	if out.Type == TypeExpense && out.Expense != nil && !out.Expense.Date.IsZero() {
		e := out.Expense
		e.Month = int(e.Date.Month())
		e.Year = e.Date.Year()
		if e.WeekNumber == 0 {
			_, e.WeekNumber = e.Date.ISOWeek()
		}
	}
	return out
}

// Reverse builds the worklog that backs out w after it was invoiced: every
// numeric field is negated and the result is approved immediately under a
// new id, pointing back at w.
func Reverse(w WorkLog, now time.Time) WorkLog {
	out := Clone(w)
	if out.TimeSheet != nil {
		ts := out.TimeSheet
		for i := range ts.Days {
			d := &ts.Days[i]
			d.NormalWageHours = d.NormalWageHours.Neg()
			d.DistanceTraveled = d.DistanceTraveled.Neg()
			for j := range d.AdjustedWages {
				d.AdjustedWages[j].Hours = d.AdjustedWages[j].Hours.Neg()
			}
		}
		ts.TotalNormalWageHours = ts.TotalNormalWageHours.Neg()
		ts.TotalAdjustedWageHours = ts.TotalAdjustedWageHours.Neg()
		ts.TotalDistanceTraveled = ts.TotalDistanceTraveled.Neg()
		ts.TotalHours = ts.TotalHours.Neg()
	}
	if out.Expense != nil {
		out.Expense.Amount = out.Expense.Amount.Neg()
	}

	out.ReversedID = w.ID
	out.ID = uuid.NewString()
	out.Status = StatusApproved
	out.ApprovalDate = &now
	out.ReversedAt = &now
	out.InvoiceNumber = ""
	out.BrokerInvoiceNumber = ""
	out.FreelancerInvoiceNumber = ""
	out.ProcessedAt = nil
	return out
}

// Transition validates a lifecycle change and returns the updated copy.
func Transition(w WorkLog, to Status, now time.Time) (WorkLog, error) {
	if !CanTransition(w.Status, to) {
		return WorkLog{}, fmt.Errorf("%s -> %s: %w", w.Status, to, ErrInvalidTransition)
	}
	out := Clone(w)
	out.Status = to
	if to == StatusApproved {
		out.ApprovalDate = &now
	}
	if to == StatusProcessed || to == StatusMarkProcessed {
		out.ProcessedAt = &now
	}
	return out, nil
}

func CanTransition(from, to Status) bool {
	return slices.Contains(transitions[from], to)
}

// WithinContract reports whether every day carrying hours lies inside the
// job offer's contract dates.
func WithinContract(w WorkLog, offer joboffer.JobOffer) bool {
	if w.TimeSheet == nil {
		return true
	}
	for _, d := range w.TimeSheet.Days {
		if offer.Covers(d.Date) {
			continue
		}
		hours := d.NormalWageHours
		for _, a := range d.AdjustedWages {
			hours = hours.Add(a.Hours)
		}
		if !hours.IsZero() {
			return false
		}
	}
	return true
}

// WorkedDays counts the days with any regular or adjusted hours.
func WorkedDays(ts *TimeSheet) int {
	if ts == nil {
		return 0
	}
	n := 0
	for _, d := range ts.Days {
		if d.Worked() {
			n++
		}
	}
	return n
}

// YearWeek formats the booking week as "2024-07".
func YearWeek(w WorkLog) string {
	week := w.WeekNumber()
	weekStr := ""
	if week > 0 {
		weekStr = fmt.Sprintf("%02d", week)
	}
	date := w.Date()
	if date.IsZero() {
		return weekStr
	}
	return fmt.Sprintf("%d-%s", date.Year(), weekStr)
}

// ProjectIDs lists distinct project ids referenced by the worklogs, in
// first-seen order.
func ProjectIDs(workLogs []WorkLog) []string {
	var ids []string
	add := func(id string) {
		if id != "" && !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}
	for _, w := range workLogs {
		switch {
		case w.Type == TypeTimeSheet && w.TimeSheet != nil:
			for _, d := range w.TimeSheet.Days {
				add(d.ProjectID)
			}
		case w.Type == TypeExpense && w.Expense != nil:
			add(w.Expense.ProjectID)
		}
	}
	return ids
}

// Clone deep-copies w so callers' snapshots are never mutated.
func Clone(w WorkLog) WorkLog {
	out := w
	if w.TimeSheet != nil {
		ts := *w.TimeSheet
		ts.Days = make([]Day, len(w.TimeSheet.Days))
		for i, d := range w.TimeSheet.Days {
			d.AdjustedWages = slices.Clone(d.AdjustedWages)
			ts.Days[i] = d
		}
		out.TimeSheet = &ts
	}
	if w.Expense != nil {
		e := *w.Expense
		out.Expense = &e
	}
	return out
}
