// Copyright 2026 Peter Edge
//
// All rights reserved.

package partialdate

import (
	"regexp"
	"strconv"
)

var (
	yearRegexp  = regexp.MustCompile(`^-?[0-9]{1,7}$`)
	monthRegexp = regexp.MustCompile(`^[0-9]{1,2}$`)
	dayRegexp   = regexp.MustCompile(`^[0-9]{1,2}$`)
)

// ParseYear parses an optional leading minus sign followed by 1 to 7 digits.
//
// The range of the year is not checked. Returns an error matching ErrYear
// if the value is malformed.
func ParseYear(value string) (int, error) {
	if !yearRegexp.MatchString(value) {
		return 0, newYearErrorf("year must be a valid string of up to seven digits with an optional leading minus sign, got %q", value)
	}
	return atoi(value), nil
}

// ParseMonth parses a 1 or 2 digit month.
//
// The range of the month is not checked. Returns an error matching ErrMonth
// if the value is malformed.
func ParseMonth(value string) (int, error) {
	if !monthRegexp.MatchString(value) {
		return 0, newMonthErrorf("month must be a valid one or two digit string, got %q", value)
	}
	return atoi(value), nil
}

// ParseDay parses a 1 or 2 digit day.
//
// The range of the day is not checked. Returns an error matching ErrDay
// if the value is malformed.
func ParseDay(value string) (int, error) {
	if !dayRegexp.MatchString(value) {
		return 0, newDayErrorf("day must be a valid one or two digit string, got %q", value)
	}
	return atoi(value), nil
}

// atoi converts a string already matched by one of the regexps above.
func atoi(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		// At most seven digits always fit in an int.
		panic(err)
	}
	return n
}
