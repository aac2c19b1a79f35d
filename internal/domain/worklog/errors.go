package worklog

import (
	"net/http"

	"backoffice/internal/platform/errs"
)

var (
	ErrInvalidTransition = errs.New(http.StatusConflict, "WORKLOG_INVALID_STATUS")
	ErrOutsideContract   = errs.New(http.StatusUnprocessableEntity, "WORKLOG_OUTSIDE_CONTRACT")
	ErrNotApproved       = errs.New(http.StatusConflict, "WORKLOG_NOT_APPROVED")
)
