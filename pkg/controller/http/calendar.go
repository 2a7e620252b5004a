package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/complia-lab/themis/pkg/domain/model"
	"github.com/complia-lab/themis/pkg/usecase"
)

// parseDateParam accepts a bare date or an RFC3339 timestamp. The bool
// result reports whether the value was date-only.
func parseDateParam(s string) (time.Time, bool, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, false, nil
	}
	return time.Time{}, false, goerr.New("unparseable date",
		goerr.V("value", s),
		goerr.T(model.ErrTagInvalid))
}

// rangeFromPath builds the queried range from the {start}/{end} path
// parameters. Date-only boundaries cover their whole day.
func rangeFromPath(r *http.Request) (model.DateRange, error) {
	start, _, err := parseDateParam(chi.URLParam(r, "start"))
	if err != nil {
		return model.DateRange{}, err
	}
	end, dateOnly, err := parseDateParam(chi.URLParam(r, "end"))
	if err != nil {
		return model.DateRange{}, err
	}
	if dateOnly {
		end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	rng := model.DateRange{Start: start, End: end}
	if err := rng.Validate(); err != nil {
		return model.DateRange{}, err
	}
	return rng, nil
}

func (h *handler) calendarRange(w http.ResponseWriter, r *http.Request) {
	rng, err := rangeFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	view := usecase.CalendarView(r.URL.Query().Get("view"))
	events, err := h.ucs.Calendar.EventsInRange(r.Context(), rng, view)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, events)
}

func (h *handler) calendarExport(w http.ResponseWriter, r *http.Request) {
	rng, err := rangeFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.ucs.Calendar.ExportICS(r.Context(), rng)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="audit-calendar.ics"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(out))
}
