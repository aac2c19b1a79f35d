package workloghandler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"backoffice/internal/domain/joboffer"
	"backoffice/internal/domain/worklog"
	"backoffice/internal/platform/metrics"
	"backoffice/internal/transport/http/api"
	"backoffice/internal/transport/http/middleware"
	"backoffice/internal/transport/http/shared"
)

type Handler struct {
	Metrics *metrics.Collector
	Now     func() time.Time
}

func NewHandler(collector *metrics.Collector) *Handler {
	return &Handler{Metrics: collector, Now: time.Now}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/worklogs", func(r chi.Router) {
		r.Use(middleware.RequireRequester)
		r.Post("/serialize", h.handleSerialize)
		r.Post("/transition", h.handleTransition)
		r.Post("/reverse", h.handleReverse)
	})
}

func (h *Handler) observe(operation string, err error) {
	if h.Metrics != nil {
		h.Metrics.Observe(operation, err)
	}
}

type workLogRequest struct {
	WorkLog worklog.WorkLog `json:"workLog"`
}

func (h *Handler) handleSerialize(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload workLogRequest
	if !shared.DecodeJSON(w, r, &payload, reqID) {
		return
	}
	if rejectInvalid(w, payload.WorkLog, reqID) {
		return
	}
	h.observe("worklog.serialize", nil)
	api.Success(w, worklog.Serialize(payload.WorkLog), reqID)
}

type transitionRequest struct {
	WorkLog  worklog.WorkLog    `json:"workLog"`
	Status   worklog.Status     `json:"status" validate:"required,oneof=not_submitted submitted approved declined processed mark_processed"`
	JobOffer *joboffer.JobOffer `json:"jobOffer"`
}

// handleTransition moves a worklog through its lifecycle. Submitting with
// the job offer attached also checks that no hours fall outside the
// contract.
func (h *Handler) handleTransition(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload transitionRequest
	if !shared.DecodeJSON(w, r, &payload, reqID) {
		return
	}
	v := shared.NewValidator()
	v.Struct(payload)
	if v.Reject(w, reqID) {
		return
	}

	var err error
	if payload.Status == worklog.StatusSubmitted && payload.JobOffer != nil && !worklog.WithinContract(payload.WorkLog, *payload.JobOffer) {
		err = worklog.ErrOutsideContract
	}
	var out worklog.WorkLog
	if err == nil {
		out, err = worklog.Transition(worklog.Serialize(payload.WorkLog), payload.Status, h.Now())
	}
	h.observe("worklog.transition", err)
	if err != nil {
		api.FailError(w, err, "worklog_transition_failed", reqID)
		return
	}
	api.Success(w, out, reqID)
}

func (h *Handler) handleReverse(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload workLogRequest
	if !shared.DecodeJSON(w, r, &payload, reqID) {
		return
	}
	if rejectInvalid(w, payload.WorkLog, reqID) {
		return
	}
	v := shared.NewValidator()
	v.Required("workLog.id", payload.WorkLog.ID, "is required")
	if v.Reject(w, reqID) {
		return
	}
	h.observe("worklog.reverse", nil)
	api.Created(w, worklog.Reverse(worklog.Serialize(payload.WorkLog), h.Now()), reqID)
}

func rejectInvalid(w http.ResponseWriter, wl worklog.WorkLog, reqID string) bool {
	v := shared.NewValidator()
	switch wl.Type {
	case worklog.TypeTimeSheet:
		if wl.TimeSheet == nil {
			v.Add("workLog.timeSheet", "is required for timesheets")
		}
	case worklog.TypeExpense:
		if wl.Expense == nil {
			v.Add("workLog.expense", "is required for expenses")
		}
	default:
		v.Add("workLog.type", "must be timesheet or expense")
	}
	return v.Reject(w, reqID)
}
