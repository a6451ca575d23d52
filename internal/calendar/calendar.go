// Package calendar builds deep links handed to the external calendar
// service. No response is consumed; the link is opened by the client.
package calendar

import (
	"net/url"
	"time"
)

const (
	renderURL = "https://calendar.google.com/calendar/render"

	// Events default to one hour when the task carries only a due date.
	defaultDuration = time.Hour

	stampLayout = "20060102T150405Z"
)

// Event is the payload encoded into the deep link.
type Event struct {
	Title       string
	Description string
	Location    string
	Start       time.Time
}

// Link encodes the event into a Google Calendar template URL. Start and end
// are rendered in UTC; end defaults to start plus one hour.
func Link(ev Event) string {
	start := ev.Start.UTC()
	end := start.Add(defaultDuration)

	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", ev.Title)
	q.Set("dates", start.Format(stampLayout)+"/"+end.Format(stampLayout))
	q.Set("details", ev.Description)
	q.Set("location", ev.Location)

	return renderURL + "?" + q.Encode()
}
