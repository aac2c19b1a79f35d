package invoicing

import (
	"fmt"

	"backoffice/internal/domain/worklog"
	"backoffice/internal/platform/money"
)

// Aggregate resolves the context of every worklog in s and groups the work
// by job offer and week. Worklogs keep their input order; job offers are
// listed in the order they are first touched.
func Aggregate(s Snapshot) (Aggregation, error) {
	var agg Aggregation
	offerIndex := map[string]int{}
	weekIndex := map[string]int{}

	for _, raw := range s.WorkLogs {
		if raw.Status != worklog.StatusApproved {
			return Aggregation{}, fmt.Errorf("worklog %s: %w", raw.ID, worklog.ErrNotApproved)
		}
		offer, ok := s.JobOffers[raw.JobOfferID]
		if !ok {
			return Aggregation{}, fmt.Errorf("worklog %s: %w", raw.ID, ErrJobOfferNotFound)
		}
		worker, ok := s.Workers[raw.WorkerID]
		if !ok {
			return Aggregation{}, fmt.Errorf("worklog %s: %w", raw.ID, ErrWorkerNotFound)
		}

		w := worklog.Serialize(raw)
		pv, _ := offer.PeriodVariableAt(w.Date())
		entry := Entry{WorkLog: w, Offer: offer, Period: pv, Worker: worker}

		idx, seen := offerIndex[offer.ID]
		if !seen {
			idx = len(agg.Offers)
			offerIndex[offer.ID] = idx
			agg.Offers = append(agg.Offers, OfferWeeks{Offer: offer, Worker: worker})
		}

		switch {
		case w.Type == worklog.TypeTimeSheet && w.TimeSheet != nil && len(w.TimeSheet.Days) > 0:
			ts := w.TimeSheet
			entry.Regular = ts.TotalNormalWageHours
			entry.Distance = ts.TotalDistanceTraveled
			entry.Adjusted = groupAdjusted(w, offer.ORPID() != "")
			agg.TimeSheets = append(agg.TimeSheets, entry)

			year, _ := ts.Days[0].Date.ISOWeek()
			key := fmt.Sprintf("%s/%d/%d", offer.ID, year, ts.WeekNumber)
			if wi, ok := weekIndex[key]; ok {
				wd := &agg.Offers[idx].Weeks[wi]
				wd.TotalHours = wd.TotalHours.Add(ts.TotalHours)
				wd.TotalWorkedDays += worklog.WorkedDays(ts)
				continue
			}
			weekIndex[key] = len(agg.Offers[idx].Weeks)
			agg.Offers[idx].Weeks = append(agg.Offers[idx].Weeks, WeekData{
				Year:            year,
				WeekNumber:      ts.WeekNumber,
				JobTitle:        offer.JobTitle,
				Date:            ts.Days[0].Date,
				TotalHours:      ts.TotalHours,
				TotalWorkedDays: worklog.WorkedDays(ts),
			})
		case w.Type == worklog.TypeExpense && w.Expense != nil:
			agg.Expenses = append(agg.Expenses, entry)
		}
	}
	return agg, nil
}

// groupAdjusted buckets the adjusted wages of w. With a rate plan, entries
// without a rate-plan item are left out.
func groupAdjusted(w worklog.WorkLog, byORPItem bool) []AdjustedGroup {
	var groups []AdjustedGroup
	index := map[string]int{}
	for _, d := range w.TimeSheet.Days {
		for _, a := range d.AdjustedWages {
			key := a.PercentCode
			if byORPItem {
				if a.ORPItem == nil {
					continue
				}
				key = a.ORPItem.ID
			}
			weighted := money.Percent(a.Hours, a.Percent)
			if i, ok := index[key]; ok {
				groups[i].Hours = groups[i].Hours.Add(a.Hours)
				groups[i].Weighted = groups[i].Weighted.Add(weighted)
				continue
			}
			index[key] = len(groups)
			groups = append(groups, AdjustedGroup{
				Key:      key,
				Code:     a.PercentCode,
				ORPItem:  a.ORPItem,
				Percent:  a.Percent,
				Hours:    a.Hours,
				Weighted: weighted,
			})
		}
	}
	return groups
}
