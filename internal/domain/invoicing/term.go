package invoicing

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"backoffice/internal/domain/worklog"
)

// TermOfPayment returns the shortest payment term, formatted "N_days", over
// the job offers of the worklogs in s. Freelancer invoices use the
// freelancer contract term. Terms that do not start with a day count are
// ignored; "" means no term is known.
func TermOfPayment(s Snapshot, t Type) string {
	best := 0
	for _, w := range s.WorkLogs {
		offer, ok := s.JobOffers[w.JobOfferID]
		if !ok {
			continue
		}
		pv, _ := offer.PeriodVariableAt(worklog.Serialize(w).Date())
		term := pv.TermOfPayment
		if t == TypeFreelancerToPaymentCompany {
			term = ""
			if pv.Freelancer != nil {
				term = pv.Freelancer.TermOfPayment
			}
		}
		days, ok := termDays(term)
		if !ok {
			continue
		}
		if best == 0 || days < best {
			best = days
		}
	}
	if best == 0 {
		return ""
	}
	return fmt.Sprintf("%d_days", best)
}

// DueDate adds the days of a "N_days" term to submit. It returns nil when
// the term carries no day count.
func DueDate(submit time.Time, term string) *time.Time {
	days, ok := termDays(term)
	if !ok {
		return nil
	}
	due := submit.AddDate(0, 0, days)
	return &due
}

func termDays(term string) (int, bool) {
	head, _, _ := strings.Cut(strings.TrimSpace(term), "_")
	days, err := strconv.Atoi(head)
	if err != nil || days <= 0 {
		return 0, false
	}
	return days, true
}
