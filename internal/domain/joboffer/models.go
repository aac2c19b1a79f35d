package joboffer

import (
	"time"

	"github.com/shopspring/decimal"
)

type ContractType struct {
	Version                     string `json:"version"`
	CompanyContractTemplatePath string `json:"companyContractTemplatePath"`
}

// FreelancerTerms are the negotiated constants of a freelancer contract.
type FreelancerTerms struct {
	// BIJLAGE_2: hourly rate the freelancer invoices the payment company.
	HourlyRateToPaymentCompany decimal.Decimal `json:"hourlyRateToPaymentCompany"`
	// BIJLAGE_3: hourly rate the payment company invoices the hiring company.
	HourlyRateToHiringCompany decimal.Decimal `json:"hourlyRateToHiringCompany"`
	// BEMIDDELING: mediation fee per worked hour.
	MediationAmount decimal.Decimal `json:"mediationAmount"`
	// VOORFINANCIERING: pre-financing percentage withheld on invoiced amounts.
	PrefinancingPercentage decimal.Decimal `json:"prefinancingPercentage"`
	TermOfPayment          string          `json:"termOfPayment"`
}

// PeriodVariable is a date-ranged snapshot of negotiated rates and policies.
type PeriodVariable struct {
	StartDate time.Time  `json:"startDate"`
	EndDate   *time.Time `json:"endDate,omitempty"`

	PayRate       decimal.Decimal `json:"payRate"`
	HourlyWage    decimal.Decimal `json:"hourlyWage"`
	BrokerFee     decimal.Decimal `json:"brokerFee"`
	TermOfPayment string          `json:"termOfPayment"`

	ChargeTravelDistanceExpenses bool            `json:"chargeTravelDistanceExpenses"`
	TravelDistanceExpenseRate    decimal.Decimal `json:"travelDistanceExpenseRate"`
	ChargeTravelHoursExpenses    bool            `json:"chargeTravelHoursExpenses"`
	TravelHoursPerWeek           decimal.Decimal `json:"travelHoursPerWeek"`
	ChargeWorkLogExpenses        bool            `json:"chargeWorkLogExpenses"`
	ChargeOtherExpenses          bool            `json:"chargeOtherExpenses"`
	OtherExpenses                decimal.Decimal `json:"otherExpenses"`
	OtherExpensesUnit            ExpenseUnit     `json:"otherExpensesUnit"`

	Freelancer *FreelancerTerms `json:"freelancer,omitempty"`
}

// ORPItem is one overtime/irregular-hours category of an Overtime Rate Plan.
type ORPItem struct {
	ID                  string          `json:"id"`
	InvoiceLabel        string          `json:"invoiceLabel"`
	InvoiceRate         decimal.Decimal `json:"invoiceRate"`
	HourlyWageSurcharge decimal.Decimal `json:"hourlyWageSurcharge"`
	OverWorkType        string          `json:"overWorkType"`
}

type FixedCompensation struct {
	Description        string           `json:"description"`
	CompensationUnit   CompensationUnit `json:"compensationUnit"`
	CompensationAmount decimal.Decimal  `json:"compensationAmount"`
	InvoiceRate        decimal.Decimal  `json:"invoiceRate"`
	InvoiceToHC        bool             `json:"invoiceToHC"`
	Gross              bool             `json:"gross"`
}

// ORP is an Overtime Rate Plan assigned to a job offer.
type ORP struct {
	ID                     string              `json:"id"`
	Items                  []ORPItem           `json:"items"`
	FixedCompensationItems []FixedCompensation `json:"fixedCompensationItems"`
}

type JobOffer struct {
	ID               string     `json:"id"`
	JobID            string     `json:"jobId"`
	JobTitle         string     `json:"jobTitle"`
	CompanyID        string     `json:"companyId"`
	HiringCompanyID  string     `json:"hiringCompanyId"`
	PaymentCompanyID string     `json:"paymentCompanyId"`
	WorkerID         string     `json:"workerId"`
	StartDate        time.Time  `json:"startDate"`
	EndDate          *time.Time `json:"endDate,omitempty"`

	Contract        ContractType     `json:"contractType"`
	ORP             *ORP             `json:"orp,omitempty"`
	PeriodVariables []PeriodVariable `json:"periodVariables"`
}
