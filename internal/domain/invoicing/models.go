package invoicing

import (
	"time"

	"github.com/shopspring/decimal"

	"backoffice/internal/domain/company"
	"backoffice/internal/domain/joboffer"
	"backoffice/internal/domain/worklog"
)

// Item is one invoice line. Items are generated from worklogs or from the
// weekly job-offer policies and are never shared between invoices.
type Item struct {
	ID          string       `json:"id"`
	WorkLogID   string       `json:"workLogId,omitempty"`
	JobID       string       `json:"jobId"`
	JobOfferID  string       `json:"jobOfferId"`
	JobTitle    string       `json:"jobTitle"`
	WorkerID    string       `json:"workerId"`
	WorkerName  string       `json:"workerName"`
	Type        worklog.Type `json:"type"`
	Category    Category     `json:"category"`
	SubCategory string       `json:"subCategory,omitempty"`
	Code        string       `json:"code,omitempty"`
	WeekNumber  int          `json:"weekNumber"`
	Date        time.Time    `json:"date"`
	ProjectID   string       `json:"projectId,omitempty"`

	Rate                 decimal.Decimal     `json:"rate"`
	HourlyWage           decimal.Decimal     `json:"hourlyWage"`
	Chargeable           Chargeable          `json:"chargeable"`
	ChargeablePercentage decimal.NullDecimal `json:"chargeablePercentage"`
	OriginalPercentage   decimal.NullDecimal `json:"originalPercentage"`
	Unit                 Unit                `json:"unit"`
	Amount               decimal.Decimal     `json:"amount"`
	TotalAmount          decimal.Decimal     `json:"totalAmount"`

	ORPID      string `json:"orpId,omitempty"`
	ORPItemID  string `json:"orpItemId,omitempty"`
	IsExpenses bool   `json:"isExpenses,omitempty"`
}

// Other is a free-form line added by hand on top of generated items.
type Other struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
	Total       decimal.Decimal `json:"total"`
}

// Party is the sender or receiver block printed on an invoice.
type Party struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	CompanyName     string          `json:"companyName,omitempty"`
	Address         string          `json:"fullAddress"`
	Country         string          `json:"country"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone"`
	VAT             string          `json:"vat"`
	BIC             string          `json:"bic"`
	IBAN            string          `json:"iban"`
	KvKNumber       string          `json:"kvkNumber"`
	GAccountEnabled bool            `json:"gAccountEnabled"`
	GAccount        decimal.Decimal `json:"gAccount"`
	GAccountIBAN    string          `json:"gAccountIban"`
	Language        string          `json:"invoiceLanguage"`
}

type Invoice struct {
	ID       string `json:"id,omitempty"`
	Number   string `json:"number,omitempty"`
	Type     Type   `json:"type"`
	Status   Status `json:"status"`
	Currency string `json:"currency"`

	CompanyID        string `json:"companyId"`
	HiringCompanyID  string `json:"hiringCompanyId"`
	PaymentCompanyID string `json:"paymentCompanyId"`
	WorkerID         string `json:"workerId,omitempty"`
	SenderID         string `json:"senderId"`
	ReceiverID       string `json:"receiverId"`
	Sender           *Party `json:"sender,omitempty"`
	Receiver         *Party `json:"receiver,omitempty"`

	TimeSheetItems []Item  `json:"timeSheetItems"`
	ExpenseItems   []Item  `json:"expenseItems"`
	Others         []Other `json:"others"`

	VATPercentage       decimal.Decimal `json:"vatPercentage"`
	AllowNetherlandsVAT bool            `json:"allowNetherlandsVat"`
	AllowCrossBorderVAT bool            `json:"allowCrossBorderVat"`

	TotalTimeSheetAmount   decimal.Decimal `json:"totalTimeSheetAmount"`
	TotalExpenseAmount     decimal.Decimal `json:"totalExpenseAmount"`
	TotalOtherAmount       decimal.Decimal `json:"totalOtherAmount"`
	TotalAmountVatExcluded decimal.Decimal `json:"totalAmountVatExcluded"`
	TotalVatAmount         decimal.Decimal `json:"totalVatAmount"`
	TotalAmount            decimal.Decimal `json:"totalAmount"`

	GAccount decimal.NullDecimal `json:"gAccount"`
	CAccount decimal.NullDecimal `json:"cAccount"`

	TermOfPayment string `json:"termOfPayment,omitempty"`
	PONumber      string `json:"poNumber,omitempty"`

	SubmitDate   *time.Time `json:"submitDate,omitempty"`
	DispatchDate *time.Time `json:"dispatchDate,omitempty"`
	DueDate      *time.Time `json:"dueDate,omitempty"`
	CreatedAt    *time.Time `json:"createdAt,omitempty"`
	CreditDate   *time.Time `json:"creditDate,omitempty"`
	PaidDate     *time.Time `json:"paidDate,omitempty"`

	CancelledInvoiceNumber string `json:"cancelledInvoiceNumber,omitempty"`
	CreditInvoiceNumber    string `json:"creditInvoiceNumber,omitempty"`
}

// Requester is the authenticated user asking for an invoice.
type Requester struct {
	UserID     string `json:"userId"`
	Role       Role   `json:"role"`
	CompanyID  string `json:"companyId"`
	Freelancer bool   `json:"freelancer"`
}

// Parties are the company records an invoice is drawn up between.
type Parties struct {
	Company        company.Company `json:"company"`
	HiringCompany  company.Company `json:"hiringCompany"`
	PaymentCompany company.Company `json:"paymentCompany"`
	Worker         company.Worker  `json:"worker"`
}

type Project struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// Snapshot is the materialized input of an invoice run: approved worklogs
// and the job offers and workers they reference.
type Snapshot struct {
	WorkLogs  []worklog.WorkLog            `json:"workLogs"`
	JobOffers map[string]joboffer.JobOffer `json:"jobOffers"`
	Workers   map[string]company.Worker    `json:"workers"`
	// CodePercentages maps an adjusted-wage percent code to the share of
	// its hours that is chargeable to the client.
	CodePercentages map[string]decimal.Decimal `json:"codePercentages"`
}

// WeekData summarizes one ISO week of timesheets for a job offer.
type WeekData struct {
	Year            int             `json:"year"`
	WeekNumber      int             `json:"weekNumber"`
	JobTitle        string          `json:"jobTitle"`
	Date            time.Time       `json:"date"`
	TotalHours      decimal.Decimal `json:"totalHours"`
	TotalWorkedDays int             `json:"totalWorkedDays"`
}

// OfferWeeks is a job offer touched by an invoice run together with its
// worker and per-week aggregates.
type OfferWeeks struct {
	Offer  joboffer.JobOffer `json:"jobOffer"`
	Worker company.Worker    `json:"worker"`
	Weeks  []WeekData        `json:"weeksData"`
}

// AdjustedGroup is a bucket of adjusted-wage hours of one worklog, keyed by
// rate-plan item when the job offer has a rate plan and by percent code
// otherwise.
type AdjustedGroup struct {
	Key     string            `json:"key"`
	Code    string            `json:"code"`
	ORPItem *joboffer.ORPItem `json:"orpItem,omitempty"`
	Percent decimal.Decimal   `json:"percent"`
	Hours   decimal.Decimal   `json:"hours"`
	// Weighted is the sum of hours * percent / 100 over the bucket.
	Weighted decimal.Decimal `json:"weighted"`
}

// Entry is one worklog with the context it is invoiced under.
type Entry struct {
	WorkLog  worklog.WorkLog         `json:"workLog"`
	Offer    joboffer.JobOffer       `json:"jobOffer"`
	Period   joboffer.PeriodVariable `json:"periodVariable"`
	Worker   company.Worker          `json:"worker"`
	Regular  decimal.Decimal         `json:"regularHours"`
	Adjusted []AdjustedGroup         `json:"adjusted"`
	Distance decimal.Decimal         `json:"distance"`
}

// Aggregation is the output of Aggregate.
type Aggregation struct {
	TimeSheets []Entry      `json:"timeSheets"`
	Expenses   []Entry      `json:"expenses"`
	Offers     []OfferWeeks `json:"jobOffers"`
}

// Items are the generated lines of an invoice run.
type Items struct {
	TimeSheet []Item `json:"timeSheetItems"`
	Expense   []Item `json:"expenseItems"`
}

// WorkLogAmount is what a single worklog would contribute to an invoice.
type WorkLogAmount struct {
	WorkLogID          string          `json:"workLogId"`
	JobOfferID         string          `json:"jobOfferId"`
	WorkerID           string          `json:"workerId"`
	CompanyID          string          `json:"companyId"`
	PaymentCompanyID   string          `json:"paymentCompanyId"`
	TotalInvoiceAmount decimal.Decimal `json:"totalInvoiceAmount"`
}
