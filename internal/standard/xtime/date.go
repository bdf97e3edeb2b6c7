// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package xtime provides extensions to the standard time package.
package xtime

import (
	"fmt"
	"time"
)

// Date is a civil date in the proleptic Gregorian calendar.
//
// Year zero and negative years are allowed.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// IsValid reports whether the date names a real day.
func (d Date) IsValid() bool {
	if d.Month < time.January || d.Month > time.December {
		return false
	}
	return d.Day >= 1 && d.Day <= DaysIn(d.Year, d.Month)
}

// String returns the date in RFC3339 full-date format.
func (d Date) String() string {
	if d.Year < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -d.Year, d.Month, d.Day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// IsValidDate reports whether year, month and day name a real day.
func IsValidDate(year int, month time.Month, day int) bool {
	return Date{Year: year, Month: month, Day: day}.IsValid()
}

// DaysIn returns the number of days in the month of the year.
//
// Returns 0 if month is not in [1,12].
func DaysIn(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	case time.January, time.March, time.May, time.July, time.August, time.October, time.December:
		return 31
	default:
		return 0
	}
}

// IsLeapYear reports whether the year is a leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
