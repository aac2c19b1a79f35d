package salary

import (
	"net/http"

	"backoffice/internal/platform/errs"
)

var (
	ErrETCostsExceeded = errs.New(http.StatusUnprocessableEntity, "Max. 30% uit te ruilen")
	ErrInvalidTables   = errs.New(http.StatusInternalServerError, "PAYROLL_TAX_TABLES_INVALID")
)
