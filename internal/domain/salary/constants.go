package salary

// PensionType selects the StiPP pension scheme.
type PensionType string

const (
	PensionBasic PensionType = "BASIC"
	PensionPlus  PensionType = "PLUS"
)

const (
	// maxETShare is the highest percentage of the CAO hourly rate that may be
	// exchanged under the ET scheme.
	maxETShare = 30

	// franchisePerHour is the hourly pension franchise of the PLUS scheme.
	franchisePerHour = "7.01"

	// employer and employee parts of the supplementary health insurance are
	// the configured rate minus these offsets.
	healthEmployerOffset = "1.33"
	healthEmployeeOffset = "2.07"

	// encashableShare of the basic salary is the ceiling for other overtime
	// encashment.
	encashableShare = "0.3"
)

// Bracket table columns. Regular income tax rows are
// [from, standard, with discount]; special-rate rows are
// [from, standard, ..., with discount].
const (
	columnIncomeTax           = 1
	columnIncomeTaxDiscount   = 2
	columnSpecialRate         = 1
	columnSpecialRateDiscount = 4

	weeksPerYear = 52
)
