package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/complia-lab/themis/pkg/domain/types"
)

type factoryRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

type processTypeRequest struct {
	Name string `json:"name"`
}

type contactRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

func (h *handler) factoryList(w http.ResponseWriter, r *http.Request) {
	factories, err := h.ucs.Reference.ListFactories(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, factories)
}

func (h *handler) factoryCreate(w http.ResponseWriter, r *http.Request) {
	var req factoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, r, err)
		return
	}

	factory, err := h.ucs.Reference.CreateFactory(r.Context(), req.Name, req.Location)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, factory)
}

func (h *handler) factoryDelete(w http.ResponseWriter, r *http.Request) {
	id := types.FactoryID(chi.URLParam(r, "id"))
	if err := h.ucs.Reference.DeleteFactory(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"deleted": id.String()})
}

func (h *handler) processTypeList(w http.ResponseWriter, r *http.Request) {
	processTypes, err := h.ucs.Reference.ListProcessTypes(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, processTypes)
}

func (h *handler) processTypeCreate(w http.ResponseWriter, r *http.Request) {
	var req processTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, r, err)
		return
	}

	pt, err := h.ucs.Reference.CreateProcessType(r.Context(), req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, pt)
}

func (h *handler) processTypeDelete(w http.ResponseWriter, r *http.Request) {
	id := types.ProcessTypeID(chi.URLParam(r, "id"))
	if err := h.ucs.Reference.DeleteProcessType(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"deleted": id.String()})
}

func (h *handler) contactList(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.ucs.Reference.ListContacts(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, contacts)
}

func (h *handler) contactCreate(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, r, err)
		return
	}

	contact, err := h.ucs.Reference.CreateContact(r.Context(), req.Name, req.Email, req.Phone, req.Role)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, contact)
}

func (h *handler) contactDelete(w http.ResponseWriter, r *http.Request) {
	id := types.ContactID(chi.URLParam(r, "id"))
	if err := h.ucs.Reference.DeleteContact(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"deleted": id.String()})
}
