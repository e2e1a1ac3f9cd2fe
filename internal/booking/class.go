package booking

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Class is the recurring class on offer.
type Class struct {
	ID           string
	Name         string
	Description  string
	Time         string // "HH:MM", 24h
	Weekday      time.Weekday
	Duration     time.Duration
	Location     string
	Address      string
	Price        float64
	Capacity     int
	WhatToExpect []string
}

// DefaultClass is the weekly Monday evening class.
var DefaultClass = Class{
	ID:          "weekly-dance-class",
	Name:        "Weekly Dance Class",
	Description: "Join us for an energizing dance class every week!",
	Time:        "18:00",
	Weekday:     time.Monday,
	Duration:    60 * time.Minute,
	Location:    "Dance Studio",
	Address:     "123 Main Street, City, State 12345",
	Price:       25.00,
	Capacity:    20,
	WhatToExpect: []string{
		"Warm-up and stretching",
		"Dance technique instruction",
		"Choreography practice",
		"Cool-down and stretching",
		"Fun and supportive environment",
	},
}

// NextDate returns the next session strictly after today's date, at the
// class time in now's location. A class on today's weekday is a week out.
func (c Class) NextDate(now time.Time) time.Time {
	days := (int(c.Weekday) - int(now.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	return c.SessionOn(now.AddDate(0, 0, days))
}

// SessionOn returns the class start time on day's date, in day's location.
func (c Class) SessionOn(day time.Time) time.Time {
	hour, minute := c.clock()
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}

func (c Class) clock() (hour, minute int) {
	t, err := time.Parse("15:04", c.Time)
	if err != nil {
		return 0, 0
	}
	return t.Hour(), t.Minute()
}

// DateKey is the calendar-day key a booking is filed under.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatClassDate renders t as "Monday, January 2, 2006 at 6:00 PM".
func FormatClassDate(t time.Time) string {
	return t.Format("Monday, January 2, 2006 at 3:04 PM")
}

// FormatDay renders t without the time of day.
func FormatDay(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}

var pricePrinter = message.NewPrinter(language.AmericanEnglish)

// FormatPrice renders an amount in dollars, e.g. "$1,025.00".
func FormatPrice(amount float64) string {
	return pricePrinter.Sprintf("$%.2f", amount)
}

// Summary is a one-line description of the class slot.
func (c Class) Summary(now time.Time) string {
	return fmt.Sprintf("%s, %s (%d min)", c.Name, FormatClassDate(c.NextDate(now)), int(c.Duration.Minutes()))
}
