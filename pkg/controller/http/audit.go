package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/complia-lab/themis/pkg/domain/model"
	"github.com/complia-lab/themis/pkg/domain/types"
	"github.com/complia-lab/themis/pkg/usecase"
)

// transitionRequest is the JSON body of the status transition endpoints
type transitionRequest struct {
	Answers   []model.Answer `json:"answers"`
	ChangedBy string         `json:"changedBy"`
	Note      string         `json:"note"`
}

// auditInputFromForm decodes the multipart audit payload the scheduling
// form sends. Dates arrive as bare dates or RFC3339 timestamps.
func auditInputFromForm(r *http.Request) (*usecase.AuditInput, error) {
	form, err := parseForm(r)
	if err != nil {
		return nil, err
	}

	start, _, err := parseDateParam(form.Get("startDate"))
	if err != nil {
		return nil, goerr.Wrap(err, "invalid start date")
	}
	end, dateOnly, err := parseDateParam(form.Get("endDate"))
	if err != nil {
		return nil, goerr.Wrap(err, "invalid end date")
	}
	if dateOnly {
		end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	return &usecase.AuditInput{
		TemplateID: types.TemplateID(form.Get("questionReportId")),
		Title:      form.Get("title"),
		FactoryID:  types.FactoryID(form.Get("factoryId")),
		Division:   form.Get("division"),
		AuditorID:  types.ContactID(form.Get("auditorId")),
		StartDate:  start,
		EndDate:    end,
		CreatedBy:  form.Get("createdBy"),
	}, nil
}

func (h *handler) auditList(w http.ResponseWriter, r *http.Request) {
	audits, err := h.ucs.Audit.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, audits)
}

func (h *handler) auditGet(w http.ResponseWriter, r *http.Request) {
	id, err := auditIDFromPath(r)
	if err != nil {
		writeBadRequest(w, r, err)
		return
	}

	audit, err := h.ucs.Audit.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, audit)
}

func (h *handler) auditHistory(w http.ResponseWriter, r *http.Request) {
	id, err := auditIDFromPath(r)
	if err != nil {
		writeBadRequest(w, r, err)
		return
	}

	histories, err := h.ucs.Audit.History(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, histories)
}

// auditCreateForm creates a draft audit from the multipart scheduling
// form. The JSON endpoint under /internal-audit-draft takes the same
// fields as a JSON body.
func (h *handler) auditCreateForm(w http.ResponseWriter, r *http.Request) {
	input, err := auditInputFromForm(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	audit, err := h.ucs.Audit.CreateDraft(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, audit)
}

func (h *handler) auditDelete(w http.ResponseWriter, r *http.Request) {
	id, err := auditIDFromPath(r)
	if err != nil {
		writeBadRequest(w, r, err)
		return
	}

	if err := h.ucs.Audit.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"deleted": id.String()})
}

func (h *handler) draftCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.AuditInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBadRequest(w, r, err)
		return
	}

	audit, err := h.ucs.Audit.CreateDraft(r.Context(), &input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, audit)
}

func (h *handler) draftUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := auditIDFromPath(r)
	if err != nil {
		writeBadRequest(w, r, err)
		return
	}

	var input usecase.AuditInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBadRequest(w, r, err)
		return
	}

	audit, err := h.ucs.Audit.UpdateDraft(r.Context(), id, &input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, audit)
}

// advance moves an audit to the given status, carrying any answers from
// the request body
func (h *handler) advance(w http.ResponseWriter, r *http.Request, next types.AuditStatus) {
	id, err := auditIDFromPath(r)
	if err != nil {
		writeBadRequest(w, r, err)
		return
	}

	var req transitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, r, err)
		return
	}

	audit, err := h.ucs.Audit.Advance(r.Context(), id, next, req.Answers, req.ChangedBy, req.Note)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, audit)
}

func (h *handler) advanceScheduled(w http.ResponseWriter, r *http.Request) {
	h.advance(w, r, types.AuditStatusScheduled)
}

func (h *handler) advanceOngoing(w http.ResponseWriter, r *http.Request) {
	h.advance(w, r, types.AuditStatusOngoing)
}

func (h *handler) advanceCompleted(w http.ResponseWriter, r *http.Request) {
	h.advance(w, r, types.AuditStatusCompleted)
}
