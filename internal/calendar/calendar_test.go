package calendar

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLinkEncodesEvent(t *testing.T) {
	link := Link(Event{
		Title:       "Follow up with Sarah",
		Description: "Discuss contract terms & pricing",
		Location:    "TechCorp",
		Start:       time.Date(2024, 1, 20, 14, 0, 0, 0, time.UTC),
	})

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	require.Equal(t, "calendar.google.com", parsed.Host)
	require.Equal(t, "/calendar/render", parsed.Path)

	q := parsed.Query()
	require.Equal(t, "TEMPLATE", q.Get("action"))
	require.Equal(t, "Follow up with Sarah", q.Get("text"))
	require.Equal(t, "20240120T140000Z/20240120T150000Z", q.Get("dates"))
	require.Equal(t, "Discuss contract terms & pricing", q.Get("details"))
	require.Equal(t, "TechCorp", q.Get("location"))
}

func TestLinkConvertsToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	link := Link(Event{
		Title: "Demo",
		Start: time.Date(2024, 1, 20, 16, 0, 0, 0, loc),
	})

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	require.Equal(t, "20240120T140000Z/20240120T150000Z", parsed.Query().Get("dates"))
}
