package invoicehandler

import (
	"bytes"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"backoffice/internal/domain/invoicing"
	"backoffice/internal/platform/metrics"
	"backoffice/internal/transport/http/api"
	"backoffice/internal/transport/http/middleware"
	"backoffice/internal/transport/http/shared"
)

type Handler struct {
	Metrics  *metrics.Collector
	Language string
	Now      func() time.Time
}

func NewHandler(collector *metrics.Collector, language string) *Handler {
	return &Handler{Metrics: collector, Language: language, Now: time.Now}
}

func (h *Handler) RegisterRoutes(r chi.Router, renderLimit func(http.Handler) http.Handler) {
	r.Route("/invoices", func(r chi.Router) {
		r.Use(middleware.RequireRequester)
		r.Post("/generate", h.handleGenerate)
		r.Post("/serialize", h.handleSerialize)
		r.Post("/worklogs", h.handleWorkLogAmounts)
		r.Post("/view", h.handleView)
		r.With(renderLimit).Post("/pdf", h.handlePDF)
		r.With(middleware.RequireRole(invoicing.RoleAdmin, invoicing.RoleManager)).Post("/credit", h.handleCredit)
		r.With(middleware.RequireRole(invoicing.RoleAdmin, invoicing.RoleManager), renderLimit).Post("/export", h.handleExport)
	})
}

func (h *Handler) observe(operation string, err error) {
	if h.Metrics != nil {
		h.Metrics.Observe(operation, err)
	}
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	requester, _ := middleware.GetRequester(r.Context())

	var payload invoicing.DraftInput
	if !shared.DecodeJSON(w, r, &payload, reqID) {
		return
	}
	v := shared.NewValidator()
	if payload.Type != "" && !payload.Type.Valid() {
		v.Add("type", "must be a known invoice type")
	}
	v.Required("parties.company.id", payload.Parties.Company.ID, "is required")
	if v.Reject(w, reqID) {
		return
	}

	inv, err := invoicing.Draft(payload, requester)
	h.observe("invoice.generate", err)
	if err != nil {
		api.FailError(w, err, "invoice_generate_failed", reqID)
		return
	}
	api.Created(w, inv, reqID)
}

type serializeRequest struct {
	Invoice json.RawMessage    `json:"invoice"`
	Stored  *invoicing.Invoice `json:"stored"`
	Parties invoicing.Parties  `json:"parties"`
}

func (h *Handler) handleSerialize(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	requester, _ := middleware.GetRequester(r.Context())

	var payload serializeRequest
	if !shared.DecodeJSON(w, r, &payload, reqID) {
		return
	}
	// items are decoded twice: as full items and as edits that know which
	// fields the caller left out
	var req invoicing.Invoice
	var edits invoicing.ItemEdits
	if err := json.Unmarshal(payload.Invoice, &req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid invoice", reqID)
		return
	}
	if err := json.Unmarshal(payload.Invoice, &edits); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid invoice", reqID)
		return
	}

	var inv invoicing.Invoice
	var err error
	if payload.Stored == nil {
		inv, err = invoicing.Serialize(req, nil, payload.Parties)
	} else {
		inv, err = invoicing.SerializeEdit(req, edits, *payload.Stored, payload.Parties)
	}
	if err == nil {
		err = invoicing.Authorize(inv, payload.Parties, requester, payload.Stored == nil)
	}
	h.observe("invoice.serialize", err)
	if err != nil {
		api.FailError(w, err, "invoice_serialize_failed", reqID)
		return
	}
	api.Success(w, inv, reqID)
}

type workLogAmountsRequest struct {
	Type     invoicing.Type     `json:"type" validate:"required"`
	Snapshot invoicing.Snapshot `json:"snapshot"`
}

func (h *Handler) handleWorkLogAmounts(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload workLogAmountsRequest
	if !shared.DecodeJSON(w, r, &payload, reqID) {
		return
	}
	v := shared.NewValidator()
	v.Struct(payload)
	if v.Reject(w, reqID) {
		return
	}
	amounts, err := invoicing.WorkLogAmounts(payload.Snapshot, payload.Type)
	h.observe("invoice.worklogs", err)
	if err != nil {
		api.FailError(w, err, "invoice_worklogs_failed", reqID)
		return
	}
	if amounts == nil {
		amounts = []invoicing.WorkLogAmount{}
	}
	api.Success(w, amounts, reqID)
}

type creditRequest struct {
	Invoice      invoicing.Invoice `json:"invoice"`
	CreditNumber string            `json:"creditNumber" validate:"omitempty,max=32"`
}

type creditResponse struct {
	CreditNote invoicing.Invoice  `json:"creditNote"`
	Cancelled  *invoicing.Invoice `json:"cancelled,omitempty"`
	WorkLogIDs []string           `json:"workLogIds"`
}

func (h *Handler) handleCredit(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload creditRequest
	if !shared.DecodeJSON(w, r, &payload, reqID) {
		return
	}
	v := shared.NewValidator()
	v.Struct(payload)
	if v.Reject(w, reqID) {
		return
	}
	now := h.Now()
	note, ids, err := invoicing.Credit(payload.Invoice, now)
	h.observe("invoice.credit", err)
	if err != nil {
		api.FailError(w, err, "invoice_credit_failed", reqID)
		return
	}
	resp := creditResponse{CreditNote: note, WorkLogIDs: ids}
	if payload.CreditNumber != "" {
		resp.CreditNote.Number = payload.CreditNumber
		cancelled := invoicing.Cancel(payload.Invoice, payload.CreditNumber, now)
		resp.Cancelled = &cancelled
	}
	if resp.WorkLogIDs == nil {
		resp.WorkLogIDs = []string{}
	}
	api.Created(w, resp, reqID)
}

type viewRequest struct {
	Invoice  invoicing.Invoice   `json:"invoice"`
	Parties  invoicing.Parties   `json:"parties"`
	Projects []invoicing.Project `json:"projects"`
	Language string              `json:"language" validate:"omitempty,oneof=nl en de"`
}

func (h *Handler) buildView(w http.ResponseWriter, r *http.Request, operation string) (invoicing.View, bool) {
	reqID := middleware.GetRequestID(r.Context())
	var payload viewRequest
	if !shared.DecodeJSON(w, r, &payload, reqID) {
		return invoicing.View{}, false
	}
	v := shared.NewValidator()
	v.Struct(payload)
	if v.Reject(w, reqID) {
		return invoicing.View{}, false
	}
	lang := payload.Language
	if lang == "" {
		lang = h.Language
	}
	view, err := invoicing.BuildView(payload.Invoice, payload.Parties, payload.Projects, lang)
	h.observe(operation, err)
	if err != nil {
		api.FailError(w, err, "invoice_view_failed", reqID)
		return invoicing.View{}, false
	}
	return view, true
}

func (h *Handler) handleView(w http.ResponseWriter, r *http.Request) {
	view, ok := h.buildView(w, r, "invoice.view")
	if !ok {
		return
	}
	api.Success(w, view, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handlePDF(w http.ResponseWriter, r *http.Request) {
	view, ok := h.buildView(w, r, "invoice.pdf")
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := invoicing.RenderPDF(view, &buf); err != nil {
		api.FailError(w, err, "invoice_pdf_failed", middleware.GetRequestID(r.Context()))
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+view.FileName+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

type exportRequest struct {
	Invoices []invoicing.Invoice `json:"invoices" validate:"max=10000"`
}

// handleExport lists invoices as rows. format=csv streams a CSV file;
// limit and offset page the rows, asOf pins the date pending invoices are
// shown at.
func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload exportRequest
	if !shared.DecodeJSON(w, r, &payload, reqID) {
		return
	}
	query := r.URL.Query()
	v := shared.NewValidator()
	v.Struct(payload)
	v.Enum("format", query.Get("format"), []string{"json", "csv"}, "must be json or csv")
	now := h.Now()
	if raw := query.Get("asOf"); raw != "" {
		parsed, err := shared.ParseDate(raw)
		if err != nil {
			v.Add("asOf", "must be a valid date in YYYY-MM-DD format")
		}
		now = parsed
	}
	if v.Reject(w, reqID) {
		return
	}

	rows := invoicing.ExportRows(payload.Invoices, now)
	start, end := shared.ParsePage(r, 0).Bounds(len(rows))
	rows = rows[start:end]
	h.observe("invoice.export", nil)

	if strings.EqualFold(query.Get("format"), "csv") {
		var buf bytes.Buffer
		if err := invoicing.WriteExportCSV(&buf, rows); err != nil {
			api.FailError(w, err, "invoice_export_failed", reqID)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="invoices.csv"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(buf.Bytes())
		return
	}
	api.Success(w, rows, reqID)
}
