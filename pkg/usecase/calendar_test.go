package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/complia-lab/themis/pkg/domain/model"
	"github.com/complia-lab/themis/pkg/domain/types"
	"github.com/complia-lab/themis/pkg/service/calendar"
	"github.com/complia-lab/themis/pkg/usecase"
)

func TestCalendarEventsInRange(t *testing.T) {
	ucs, _ := newTestUseCases(t)
	ctx := context.Background()

	tmpl := createTestTemplate(t, ucs)
	audit := createTestDraft(t, ucs, tmpl)

	_, err := ucs.External.Create(ctx, &usecase.ExternalAuditInput{
		Title:     "ISO 45001 surveillance",
		Agency:    "DNV",
		FactoryID: types.NewFactoryID(),
		StartDate: time.Date(2026, 4, 10, 8, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 4, 11, 17, 0, 0, 0, time.UTC),
	})
	gt.NoError(t, err)

	rng := calendar.MonthGridSpan(2026, time.April, time.UTC)
	events, err := ucs.Calendar.EventsInRange(ctx, rng, usecase.CalendarViewMonth)
	gt.NoError(t, err)
	gt.Equal(t, len(events), 2)

	kinds := map[model.EventKind]int{}
	for _, ev := range events {
		kinds[ev.Kind]++
	}
	gt.Equal(t, kinds[model.EventKindInternal], 1)
	gt.Equal(t, kinds[model.EventKindExternal], 1)

	// Internal events carry the audit's serial reference and status
	for _, ev := range events {
		if ev.Kind == model.EventKindInternal {
			gt.Equal(t, ev.AuditID, audit.ID.String())
			gt.Equal(t, ev.Status, types.AuditStatusDraft)
		}
	}
}

func TestCalendarRejectsUnknownView(t *testing.T) {
	ucs, _ := newTestUseCases(t)

	rng := calendar.DaySpan(time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC))
	_, err := ucs.Calendar.EventsInRange(context.Background(), rng, usecase.CalendarView("year"))
	gt.Error(t, err)
}

func TestCalendarInvalidatedByMutation(t *testing.T) {
	ucs, _ := newTestUseCases(t)
	ctx := context.Background()

	tmpl := createTestTemplate(t, ucs)

	rng := calendar.MonthGridSpan(2026, time.April, time.UTC)
	events, err := ucs.Calendar.EventsInRange(ctx, rng, usecase.CalendarViewNone)
	gt.NoError(t, err)
	gt.Equal(t, len(events), 0)

	// A new audit invalidates the cached range; the next read sees it
	createTestDraft(t, ucs, tmpl)
	events, err = ucs.Calendar.EventsInRange(ctx, rng, usecase.CalendarViewNone)
	gt.NoError(t, err)
	gt.Equal(t, len(events), 1)
}

func TestCalendarExportICS(t *testing.T) {
	ucs, _ := newTestUseCases(t)
	ctx := context.Background()

	tmpl := createTestTemplate(t, ucs)
	createTestDraft(t, ucs, tmpl)

	rng := calendar.MonthGridSpan(2026, time.April, time.UTC)
	out, err := ucs.Calendar.ExportICS(ctx, rng)
	gt.NoError(t, err)
	gt.S(t, out).Contains("BEGIN:VCALENDAR")
	gt.S(t, out).Contains("Q2 fire safety walkthrough")
}
