package model

import (
	"time"

	"github.com/complia-lab/themis/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// EventKind distinguishes the audit type behind a calendar event
type EventKind string

const (
	EventKindInternal EventKind = "internal"
	EventKindExternal EventKind = "external"
)

// CalendarEvent is a read-only projection of an audit onto the calendar.
// Events are produced server-side from scheduled and external audits and
// fetched by date range; clients never mutate them directly.
type CalendarEvent struct {
	ID      types.EventID     `json:"id" firestore:"id"`
	Title   string            `json:"title" firestore:"title"`
	Start   time.Time         `json:"start" firestore:"start"`
	End     time.Time         `json:"end" firestore:"end"`
	Kind    EventKind         `json:"kind" firestore:"kind"`
	AuditID string            `json:"auditId" firestore:"auditId"`
	Status  types.AuditStatus `json:"status,omitempty" firestore:"status,omitempty"`
}

// DateRange is a half-open-free inclusive time window. Ranges are the
// cache key dimension: each window is cached under its exact boundaries,
// overlapping windows are not deduplicated.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Validate checks the range boundaries
func (r DateRange) Validate() error {
	if r.Start.IsZero() || r.End.IsZero() {
		return goerr.New("date range boundaries are required", goerr.T(ErrTagInvalid))
	}
	if r.End.Before(r.Start) {
		return goerr.New("date range end is before start",
			goerr.V("start", r.Start),
			goerr.V("end", r.End), goerr.T(ErrTagInvalid))
	}
	return nil
}

// Contains reports whether t falls within the range (inclusive)
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Overlaps reports whether the audit window [start, end] intersects r
func (r DateRange) Overlaps(start, end time.Time) bool {
	return !end.Before(r.Start) && !start.After(r.End)
}

// EventFromScheduledAudit projects a scheduled audit onto the calendar
func EventFromScheduledAudit(a *ScheduledAudit) CalendarEvent {
	return CalendarEvent{
		ID:      types.EventID("int-" + a.ID.String()),
		Title:   a.Title,
		Start:   a.StartDate,
		End:     a.EndDate,
		Kind:    EventKindInternal,
		AuditID: a.ID.String(),
		Status:  a.Status,
	}
}

// EventFromExternalAudit projects an external audit onto the calendar
func EventFromExternalAudit(a *ExternalAudit) CalendarEvent {
	return CalendarEvent{
		ID:      types.EventID("ext-" + a.ID.String()),
		Title:   a.Title,
		Start:   a.StartDate,
		End:     a.EndDate,
		Kind:    EventKindExternal,
		AuditID: a.ID.String(),
	}
}
