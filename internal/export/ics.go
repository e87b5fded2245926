package export

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"taskboard/pkg/jalali"
)

const productID = "-//taskboard//calendar-service//EN"

// Event is one all-day entry; Start and End are inclusive days
type Event struct {
	UID         string
	Summary     string
	Description string
	Start       jalali.GregorianDate
	End         jalali.GregorianDate
	Categories  []string
	Color       string
}

// Calendar renders events as an iCalendar (RFC 5545) document
func Calendar(name string, events []Event, stamp time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)
	cal.SetXWRCalName(name)

	for _, e := range events {
		end := e.End
		if end.Before(e.Start) {
			end = e.Start
		}

		event := cal.AddEvent(e.UID)
		event.SetDtStampTime(stamp.UTC())
		event.SetSummary(e.Summary)
		if e.Description != "" {
			event.SetDescription(e.Description)
		}
		event.SetAllDayStartAt(e.Start.Time(time.UTC))
		// DTEND of an all-day event is exclusive.
		event.SetAllDayEndAt(end.AddDays(1).Time(time.UTC))
		for _, c := range e.Categories {
			event.AddProperty(ics.ComponentPropertyCategories, c)
		}
		if e.Color != "" {
			event.SetColor(e.Color)
		}
	}

	return cal.Serialize()
}

// TaskUID is the stable iCalendar UID of a task
func TaskUID(taskID string) string {
	return fmt.Sprintf("task-%s@taskboard", taskID)
}
