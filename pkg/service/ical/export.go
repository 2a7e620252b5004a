package ical

import (
	"fmt"

	ics "github.com/arran4/golang-ical"

	"github.com/complia-lab/themis/pkg/domain/model"
)

// prodID identifies this server in exported calendars.
const prodID = "-//themis//EHS Audit Calendar//EN"

// Export serializes calendar events into an iCalendar document. Event
// UIDs reuse the projection IDs so re-imports update in place instead of
// duplicating.
func Export(events []model.CalendarEvent) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(prodID)

	for _, ev := range events {
		ve := cal.AddEvent(ev.ID.String() + "@themis")
		ve.SetSummary(ev.Title)
		ve.SetStartAt(ev.Start.UTC())
		ve.SetEndAt(ev.End.UTC())

		desc := fmt.Sprintf("%s audit", ev.Kind)
		if ev.Status != "" {
			desc = fmt.Sprintf("%s audit (%s)", ev.Kind, ev.Status)
		}
		ve.SetDescription(desc)
	}

	return cal.Serialize()
}
