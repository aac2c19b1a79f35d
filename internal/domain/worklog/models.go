package worklog

import (
	"time"

	"github.com/shopspring/decimal"

	"backoffice/internal/domain/joboffer"
)

// AdjustedWage is a block of overtime or surcharge hours on one day. It is
// tagged either with a percent code or with a rate-plan item.
type AdjustedWage struct {
	PercentCode string            `json:"percentCodeOfAdjustedWage"`
	Percent     decimal.Decimal   `json:"percentOfAdjustedWage"`
	Hours       decimal.Decimal   `json:"adjustedWageHours"`
	ORPItem     *joboffer.ORPItem `json:"orpItem,omitempty"`
}

type Day struct {
	Date             time.Time       `json:"date"`
	ProjectID        string          `json:"projectId,omitempty"`
	NormalWageHours  decimal.Decimal `json:"normalWageHours"`
	AdjustedWages    []AdjustedWage  `json:"adjustedWages"`
	DistanceTraveled decimal.Decimal `json:"distanceTraveled"`
}

// Worked reports whether any regular or adjusted hours were logged.
func (d Day) Worked() bool {
	return !d.NormalWageHours.IsZero() || len(d.AdjustedWages) > 0
}

// TimeSheet holds one ISO week of entries. The totals always equal the sum
// of the days; Serialize recomputes them.
type TimeSheet struct {
	WeekNumber             int             `json:"weekNumber"`
	Days                   []Day           `json:"data"`
	TotalNormalWageHours   decimal.Decimal `json:"totalNormalWageHours"`
	TotalAdjustedWageHours decimal.Decimal `json:"totalAdjustedWageHours"`
	TotalDistanceTraveled  decimal.Decimal `json:"totalDistanceTraveled"`
	TotalHours             decimal.Decimal `json:"totalHours"`
}

type Expense struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	ProjectID  string          `json:"projectId,omitempty"`
	Date       time.Time       `json:"date"`
	WeekNumber int             `json:"weekNumber"`
	Month      int             `json:"month"`
	Year       int             `json:"year"`
}

type WorkLog struct {
	ID               string `json:"id"`
	Type             Type   `json:"type"`
	Status           Status `json:"status"`
	JobID            string `json:"jobId"`
	JobOfferID       string `json:"jobOfferId"`
	WorkerID         string `json:"workerId"`
	CompanyID        string `json:"companyId"`
	HiringCompanyID  string `json:"hiringCompanyId"`
	PaymentCompanyID string `json:"paymentCompanyId"`

	TimeSheet *TimeSheet `json:"timeSheetData,omitempty"`
	Expense   *Expense   `json:"expenseData,omitempty"`

	InvoiceNumber           string     `json:"invoiceNumber,omitempty"`
	BrokerInvoiceNumber     string     `json:"brokerInvoiceNumber,omitempty"`
	FreelancerInvoiceNumber string     `json:"freelancerInvoiceNumber,omitempty"`
	ApprovalDate            *time.Time `json:"approvalDate,omitempty"`
	ProcessedAt             *time.Time `json:"processedAt,omitempty"`
	ReversedAt              *time.Time `json:"reversedAt,omitempty"`
	ReversedID              string     `json:"reversedId,omitempty"`
}

// Date is the first timesheet day or the expense date.
func (w WorkLog) Date() time.Time {
	switch {
	case w.Type == TypeTimeSheet && w.TimeSheet != nil && len(w.TimeSheet.Days) > 0:
		return w.TimeSheet.Days[0].Date
	case w.Type == TypeExpense && w.Expense != nil:
		return w.Expense.Date
	}
	return time.Time{}
}

// WeekNumber is the ISO week the worklog was booked in.
func (w WorkLog) WeekNumber() int {
	switch {
	case w.Type == TypeTimeSheet && w.TimeSheet != nil:
		return w.TimeSheet.WeekNumber
	case w.Type == TypeExpense && w.Expense != nil:
		return w.Expense.WeekNumber
	}
	return 0
}
