package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/complia-lab/themis/pkg/domain/types"
	"github.com/complia-lab/themis/pkg/usecase"
)

// actionPlanList lists the action plans raised against one audit,
// selected by the auditId query parameter
func (h *handler) actionPlanList(w http.ResponseWriter, r *http.Request) {
	auditID, err := types.ParseAuditID(r.URL.Query().Get("auditId"))
	if err != nil {
		writeBadRequest(w, r, err)
		return
	}

	plans, err := h.ucs.ActionPlan.ListByAudit(r.Context(), auditID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, plans)
}

func (h *handler) actionPlanCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.ActionPlanInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBadRequest(w, r, err)
		return
	}

	plan, err := h.ucs.ActionPlan.Create(r.Context(), &input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, plan)
}

func (h *handler) actionPlanUpdate(w http.ResponseWriter, r *http.Request) {
	var input usecase.ActionPlanInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBadRequest(w, r, err)
		return
	}

	plan, err := h.ucs.ActionPlan.Update(r.Context(), types.ActionPlanID(chi.URLParam(r, "id")), &input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, plan)
}

func (h *handler) actionPlanDelete(w http.ResponseWriter, r *http.Request) {
	id := types.ActionPlanID(chi.URLParam(r, "id"))
	if err := h.ucs.ActionPlan.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"deleted": id.String()})
}
