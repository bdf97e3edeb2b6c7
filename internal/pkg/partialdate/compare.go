// Copyright 2026 Peter Edge
//
// All rights reserved.

package partialdate

import (
	"cmp"
	"slices"
)

// Compare returns -1 if a is before b, +1 if a is after b, and 0 if they are equal.
//
// Dates are ordered by year, then month, then day. An unset field compares as zero,
// so a date with only a year sorts before every date in that year with a month.
func Compare(a Date, b Date) int {
	if c := cmp.Compare(a.Year(), b.Year()); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Month(), b.Month()); c != 0 {
		return c
	}
	return cmp.Compare(a.Day(), b.Day())
}

// Compare compares d and other. See the package-level Compare.
func (d Date) Compare(other Date) int {
	return Compare(d, other)
}

// Before returns true if d is before other.
func (d Date) Before(other Date) bool {
	return Compare(d, other) < 0
}

// After returns true if d is after other.
func (d Date) After(other Date) bool {
	return Compare(d, other) > 0
}

// Equal returns true if d and other have the same year, month, and day.
func (d Date) Equal(other Date) bool {
	return Compare(d, other) == 0
}

// Sort sorts the dates in ascending order.
func Sort(dates []Date) {
	slices.SortFunc(dates, Compare)
}
