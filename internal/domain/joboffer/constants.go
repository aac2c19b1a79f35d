package joboffer

const (
	ContractVersionTraditional = "traditional"
	ContractVersionDocusign    = "docusign"
)

// ContractKind classifies a job offer's contract for rate resolution.
type ContractKind string

const (
	ContractRegular    ContractKind = "regular"
	ContractFreelancer ContractKind = "freelancer"
	ContractOffline    ContractKind = "offline"
	ContractDocusign   ContractKind = "docusign"
)

// CompensationUnit is the unit a fixed ORP compensation is granted in.
type CompensationUnit string

const (
	CompensationHour    CompensationUnit = "hour"
	CompensationDay     CompensationUnit = "day"
	CompensationWeekDay CompensationUnit = "week_day"
	CompensationWeek    CompensationUnit = "week"
)

// ExpenseUnit is the unit a recurring job-offer expense is charged in.
type ExpenseUnit string

const (
	PerHour      ExpenseUnit = "per_hour"
	PerDay       ExpenseUnit = "per_day"
	PerWeek      ExpenseUnit = "per_week"
	PerKilometer ExpenseUnit = "per_kilometer"
	PerAmount    ExpenseUnit = "per_amount"
)

const (
	OverWorkOvertime  = "overtime"
	OverWorkIrregular = "irregular_working_hours"
)
