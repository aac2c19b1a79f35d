package invoicing

// Type is the sender to receiver direction of an invoice.
type Type string

const (
	TypeFreelancerToPaymentCompany    Type = "freelancer_to_payment_company"
	TypeCompanyToHiringCompany        Type = "company_to_hiring_company"
	TypeCompanyToPaymentCompany       Type = "company_to_payment_company"
	TypePaymentCompanyToHiringCompany Type = "payment_company_to_hiring_company"
)

func (t Type) Valid() bool {
	switch t {
	case TypeFreelancerToPaymentCompany, TypeCompanyToHiringCompany, TypeCompanyToPaymentCompany, TypePaymentCompanyToHiringCompany:
		return true
	}
	return false
}

// Category labels a line item. Rate-plan items carry the plan's own invoice
// label and worklog expenses carry "<expense category>_expenses", so the set
// is open.
type Category string

const (
	CategoryRegularHours           Category = "regular_hours"
	CategoryAdjustedHours          Category = "adjusted_hours"
	CategoryFixedCompensation      Category = "fixed_compensation"
	CategoryTravelExpenses         Category = "travel_expenses"
	CategoryTravelTimeExpenses     Category = "travel_time_expenses"
	CategoryFoodExpenses           Category = "food_expenses"
	CategoryOtherExpenses          Category = "other_expenses"
	CategoryDefaultExpenses        Category = "default_expenses"
	CategoryMeditationTimeExpenses Category = "meditation_time_expenses"
	CategoryFinanceTimeExpenses    Category = "finance_time_expenses"
)

type Unit string

const (
	UnitPerHour      Unit = "per_hour"
	UnitPerDay       Unit = "per_day"
	UnitPerWeek      Unit = "per_week"
	UnitPerKilometer Unit = "per_kilometer"
	UnitPerAmount    Unit = "per_amount"
)

type Chargeable string

const (
	ChargeableYes  Chargeable = "YES"
	ChargeableNo   Chargeable = "NO"
	ChargeableHide Chargeable = "HIDE"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCredited  Status = "credited"
	StatusCancelled Status = "cancelled"
	StatusPaid      Status = "paid"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleWorker  Role = "worker"
)

const (
	DefaultCurrency = "EUR"

	// maxJobTitle is the display width of job titles in formatted items.
	maxJobTitle = 20

	vatNetherlands = 21
	vatGermany     = 19
)
