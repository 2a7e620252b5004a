package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/complia-lab/themis/pkg/domain/model"
	"github.com/complia-lab/themis/pkg/utils/apperr"
)

var notFoundErrors = []error{
	model.ErrTemplateNotFound,
	model.ErrAuditNotFound,
	model.ErrExternalAuditNotFound,
	model.ErrFactoryNotFound,
	model.ErrProcessTypeNotFound,
	model.ErrContactNotFound,
	model.ErrActionPlanNotFound,
}

// writeJSON renders v as a JSON response
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}

// writeError maps a use case error onto an HTTP status: 404 for missing
// entities, 409 for rejected status transitions, 400 for validation
// failures, 500 otherwise. Internal errors are logged; the others are
// the client's to fix.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, model.ErrIllegalTransition) || errors.Is(err, model.ErrAuditCompleted):
		status = http.StatusConflict
	case isNotFound(err):
		status = http.StatusNotFound
	case goerr.HasTag(err, model.ErrTagInvalid):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		apperr.Handle(r.Context(), err)
	}
	writeJSON(w, r, status, map[string]string{"error": err.Error()})
}

// writeBadRequest responds 400 for malformed request input
func writeBadRequest(w http.ResponseWriter, r *http.Request, err error) {
	writeJSON(w, r, http.StatusBadRequest, map[string]string{"error": err.Error()})
}

func isNotFound(err error) bool {
	for _, sentinel := range notFoundErrors {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
