package salaryhandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"backoffice/internal/domain/invoicing"
	"backoffice/internal/domain/salary"
	"backoffice/internal/platform/metrics"
	"backoffice/internal/transport/http/api"
	"backoffice/internal/transport/http/middleware"
	"backoffice/internal/transport/http/shared"
)

type Handler struct {
	Tables  salary.Tables
	Metrics *metrics.Collector
}

func NewHandler(tables salary.Tables, collector *metrics.Collector) *Handler {
	return &Handler{Tables: tables, Metrics: collector}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/salary", func(r chi.Router) {
		r.Use(middleware.RequireRole(invoicing.RoleAdmin, invoicing.RoleManager))
		r.Post("/calculate", h.handleCalculate)
	})
}

func (h *Handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload salary.Input
	if !shared.DecodeJSON(w, r, &payload, reqID) {
		return
	}
	v := shared.NewValidator()
	if payload.HoursPerWeek.IsNegative() {
		v.Add("hours_per_week", "must not be negative")
	}
	if payload.HourlyRate.IsNegative() {
		v.Add("hourly_rate", "must not be negative")
	}
	v.Enum("stipp_pension_type", string(payload.StippPensionType), []string{string(salary.PensionBasic), string(salary.PensionPlus)}, "must be BASIC or PLUS")
	if v.Reject(w, reqID) {
		return
	}

	calc, err := salary.Calculate(payload, h.Tables)
	if h.Metrics != nil {
		h.Metrics.Observe("salary.calculate", err)
	}
	if err != nil {
		api.FailError(w, err, "salary_calculate_failed", reqID)
		return
	}
	api.Success(w, calc, reqID)
}
