package joboffer

import (
	"strings"
	"time"
)

// Kind classifies the contract. Traditional contracts are told apart by
// the template they were generated from.
func (c ContractType) Kind() ContractKind {
	switch c.Version {
	case ContractVersionDocusign:
		return ContractDocusign
	case ContractVersionTraditional:
		if strings.Contains(c.CompanyContractTemplatePath, "freelancer") {
			return ContractFreelancer
		}
		if strings.Contains(c.CompanyContractTemplatePath, "offline") {
			return ContractOffline
		}
	}
	return ContractRegular
}

func (o JobOffer) IsFreelancer() bool {
	return o.Contract.Kind() == ContractFreelancer
}

// ORPID returns the assigned rate plan id or "" when none is assigned.
func (o JobOffer) ORPID() string {
	if o.ORP == nil {
		return ""
	}
	return o.ORP.ID
}

// IsBroker reports whether a third-party payment company sits between an
// intermediary and a hiring company that differ.
func IsBroker(companyID, hiringCompanyID, paymentCompanyID string) bool {
	return paymentCompanyID != "" && paymentCompanyID != companyID && companyID != hiringCompanyID
}

// PeriodVariableAt returns the period variable covering date and its 1-based
// version. Ranges are scanned in stored order and the first match wins; they
// are not assumed to be sorted or disjoint. Version 0 means no match.
func (o JobOffer) PeriodVariableAt(date time.Time) (PeriodVariable, int) {
	n := len(o.PeriodVariables)
	if n == 0 {
		return PeriodVariable{}, 0
	}
	if n == 1 {
		return o.PeriodVariables[0], 1
	}
	if date.Before(o.StartDate) {
		return o.PeriodVariables[0], 1
	}
	if o.EndDate != nil && date.After(*o.EndDate) {
		return o.PeriodVariables[n-1], n
	}
	for i, pv := range o.PeriodVariables {
		if pv.StartDate.After(date) {
			continue
		}
		if pv.EndDate == nil || !pv.EndDate.Before(date) {
			return pv, i + 1
		}
	}
	return PeriodVariable{}, 0
}

// Covers reports whether day lies inside the job offer's contract dates,
// compared on calendar days. An end before the start is treated as open.
func (o JobOffer) Covers(day time.Time) bool {
	d := truncateDay(day)
	if d.Before(truncateDay(o.StartDate)) {
		return false
	}
	if o.EndDate == nil {
		return true
	}
	end := truncateDay(*o.EndDate)
	if end.Before(truncateDay(o.StartDate)) {
		return true
	}
	return !d.After(end)
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
