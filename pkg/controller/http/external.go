package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/complia-lab/themis/pkg/domain/types"
	"github.com/complia-lab/themis/pkg/usecase"
)

func (h *handler) externalList(w http.ResponseWriter, r *http.Request) {
	audits, err := h.ucs.External.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, audits)
}

func (h *handler) externalCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.ExternalAuditInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBadRequest(w, r, err)
		return
	}

	audit, err := h.ucs.External.Create(r.Context(), &input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, audit)
}

func (h *handler) externalUpdate(w http.ResponseWriter, r *http.Request) {
	var input usecase.ExternalAuditInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeBadRequest(w, r, err)
		return
	}

	audit, err := h.ucs.External.Update(r.Context(), types.ExternalAuditID(chi.URLParam(r, "id")), &input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, audit)
}

func (h *handler) externalDelete(w http.ResponseWriter, r *http.Request) {
	id := types.ExternalAuditID(chi.URLParam(r, "id"))
	if err := h.ucs.External.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"deleted": id.String()})
}
