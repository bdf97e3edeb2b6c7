// Copyright 2026 Peter Edge
//
// All rights reserved.

package partialdate

import (
	"errors"
	"fmt"
)

var (
	// ErrPartialDate matches every error returned by this package.
	ErrPartialDate = errors.New("partial date error")
	// ErrYear matches errors from setting a year.
	ErrYear = errors.New("year error")
	// ErrMonth matches errors from setting a month.
	ErrMonth = errors.New("month error")
	// ErrDay matches errors from setting a day.
	ErrDay = errors.New("day error")
	// ErrRange matches errors from setting a combined value outside the supported bounds.
	ErrRange = errors.New("range error")
)

// Error is a validation failure.
//
// Use errors.Is with ErrYear, ErrMonth, ErrDay, or ErrRange to determine the kind.
type Error struct {
	kind    error
	message string
}

// Error implements error.
func (e *Error) Error() string {
	return e.message
}

// Unwrap returns the kind of the error and ErrPartialDate.
func (e *Error) Unwrap() []error {
	return []error{e.kind, ErrPartialDate}
}

func newYearErrorf(format string, args ...any) *Error {
	return newErrorf(ErrYear, format, args...)
}

func newMonthErrorf(format string, args ...any) *Error {
	return newErrorf(ErrMonth, format, args...)
}

func newDayErrorf(format string, args ...any) *Error {
	return newErrorf(ErrDay, format, args...)
}

func newRangeErrorf(format string, args ...any) *Error {
	return newErrorf(ErrRange, format, args...)
}

func newErrorf(kind error, format string, args ...any) *Error {
	return &Error{
		kind:    kind,
		message: fmt.Sprintf(format, args...),
	}
}
