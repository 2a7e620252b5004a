package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/complia-lab/themis/pkg/domain/types"
	"github.com/complia-lab/themis/pkg/usecase"
)

// templateInputFromForm decodes a form builder payload: scalar fields as
// plain values, question groups flattened to queGroups[index] entries.
func templateInputFromForm(r *http.Request) (*usecase.TemplateInput, error) {
	form, err := parseForm(r)
	if err != nil {
		return nil, err
	}

	groups, err := decodeFormArray[usecase.GroupInput](form, "queGroups")
	if err != nil {
		return nil, err
	}

	return &usecase.TemplateInput{
		Name:      form.Get("name"),
		CreatedBy: form.Get("createdBy"),
		Groups:    groups,
	}, nil
}

func (h *handler) templateList(w http.ResponseWriter, r *http.Request) {
	templates, err := h.ucs.Template.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, templates)
}

func (h *handler) templateGet(w http.ResponseWriter, r *http.Request) {
	tmpl, err := h.ucs.Template.Get(r.Context(), types.TemplateID(chi.URLParam(r, "id")))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, tmpl)
}

func (h *handler) templateCreate(w http.ResponseWriter, r *http.Request) {
	input, err := templateInputFromForm(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	tmpl, err := h.ucs.Template.Create(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, tmpl)
}

func (h *handler) templateUpdate(w http.ResponseWriter, r *http.Request) {
	input, err := templateInputFromForm(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	tmpl, err := h.ucs.Template.Update(r.Context(), types.TemplateID(chi.URLParam(r, "id")), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, tmpl)
}

func (h *handler) templateDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.ucs.Template.Delete(r.Context(), types.TemplateID(chi.URLParam(r, "id"))); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"deleted": chi.URLParam(r, "id")})
}

// auditIDFromPath parses the {id} path parameter as an audit number
func auditIDFromPath(r *http.Request) (types.AuditID, error) {
	return types.ParseAuditID(chi.URLParam(r, "id"))
}
