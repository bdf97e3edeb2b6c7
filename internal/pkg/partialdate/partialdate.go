// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package partialdate provides a calendar date whose month and day may be absent.
//
// A Date is stored in a single pdregister.Register. Year, month, and day are
// each optional and use zero to mean "unset". A day may only be set once a
// month is set, and a non-zero day must exist in the month of the year,
// where an unset year is validated as proleptic Gregorian year zero.
//
// The combined value of a Date is the decimal integer
//
//	sign * (|year|*10000 + month*100 + day)
//
// which is used for storage and interchange.
package partialdate

import (
	"time"

	"github.com/bufdev/partialdate/internal/pkg/pdregister"
	"github.com/bufdev/partialdate/internal/standard/xtime"
)

const (
	// MaxYear is the largest supported year.
	MaxYear = 1048576
	// MinYear is the smallest supported year.
	MinYear = -MaxYear
	// MaxValue is the largest supported combined value.
	MaxValue int64 = MaxYear*10000 + 1231
	// MinValue is the smallest supported combined value.
	MinValue int64 = -MaxValue
)

// Date is a partial date.
//
// The zero value is the empty date, with year, month, and day unset.
type Date struct {
	register pdregister.Register
}

// New returns a new Date after applying each initializer to it in order.
//
// Returns the first error returned by an initializer.
//
//	date, err := partialdate.New(func(d *partialdate.Date) error {
//		if err := d.SetYear(2012); err != nil {
//			return err
//		}
//		return d.SetMonth(12)
//	})
func New(initializers ...func(*Date) error) (Date, error) {
	var date Date
	for _, initializer := range initializers {
		if err := initializer(&date); err != nil {
			return Date{}, err
		}
	}
	return date, nil
}

// Load returns a new Date from a combined value.
func Load(value int64) (Date, error) {
	return New(
		func(date *Date) error {
			return date.SetValue(value)
		},
	)
}

// FromRegister returns a Date holding the register.
//
// The register is not validated.
func FromRegister(register pdregister.Register) Date {
	return Date{register: register}
}

// Register returns the packed representation of the Date.
func (d Date) Register() pdregister.Register {
	return d.register
}

// Value returns the combined value of the Date.
func (d Date) Value() int64 {
	return pdregister.Combined(d.register)
}

// SetValue replaces the year, month, and day with the fields of the combined value.
//
// Returns an error matching ErrRange if the value is outside [MinValue, MaxValue],
// if its month or day digits cannot be a month or day, or if it is negative
// with no year digits.
func (d *Date) SetValue(value int64) error {
	if value < MinValue || value > MaxValue {
		return newRangeErrorf("date value must be an integer between %d and %d", MinValue, MaxValue)
	}
	// The sign is carried by the year, so a negative value needs a year.
	if value < 0 && -value < 10000 {
		return newRangeErrorf("date value %d is negative but has no year", value)
	}
	magnitude := value
	if magnitude < 0 {
		magnitude = -magnitude
	}
	if month := magnitude % 10000 / 100; month > 12 {
		return newRangeErrorf("date value %d has invalid month digits %02d", value, month)
	}
	if day := magnitude % 100; day > 31 {
		return newRangeErrorf("date value %d has invalid day digits %02d", value, day)
	}
	d.register = pdregister.SetCombined(d.register, value)
	return nil
}

// Year returns the year, 0 if unset.
func (d Date) Year() int {
	return pdregister.Year(d.register)
}

// SetYear sets the year. A year of 0 unsets the year.
//
// Returns an error matching ErrYear if the year is outside [MinYear, MaxYear].
func (d *Date) SetYear(year int) error {
	if year < MinYear || year > MaxYear {
		return newYearErrorf("year must be an integer between %d and %d", MinYear, MaxYear)
	}
	d.register = pdregister.SetYear(d.register, year)
	return nil
}

// SetYearString parses and sets the year.
//
// See ParseYear for the accepted format.
func (d *Date) SetYearString(value string) error {
	year, err := ParseYear(value)
	if err != nil {
		return err
	}
	return d.SetYear(year)
}

// ClearYear unsets the year.
func (d *Date) ClearYear() {
	d.register = pdregister.SetYear(d.register, 0)
}

// Month returns the month, 0 if unset.
func (d Date) Month() int {
	return pdregister.Month(d.register)
}

// SetMonth sets the month. A month of 0 unsets both the month and the day.
//
// Returns an error matching ErrMonth if the month is outside [0, 12].
func (d *Date) SetMonth(month int) error {
	if month < 0 || month > 12 {
		return newMonthErrorf("month must be an integer between 1 and 12")
	}
	register := pdregister.SetMonth(d.register, month)
	if month == 0 {
		register = pdregister.SetDay(register, 0)
	}
	d.register = register
	return nil
}

// SetMonthString parses and sets the month.
//
// See ParseMonth for the accepted format.
func (d *Date) SetMonthString(value string) error {
	month, err := ParseMonth(value)
	if err != nil {
		return err
	}
	return d.SetMonth(month)
}

// ClearMonth unsets the month and the day.
func (d *Date) ClearMonth() {
	// Month 0 is always accepted.
	_ = d.SetMonth(0)
}

// Day returns the day, 0 if unset.
func (d Date) Day() int {
	return pdregister.Day(d.register)
}

// SetDay sets the day. A day of 0 unsets the day.
//
// Returns an error matching ErrDay if the month is unset, if the day is
// outside [0, 31], or if the day does not exist in the month of the year.
func (d *Date) SetDay(day int) error {
	month := d.Month()
	if month == 0 && day != 0 {
		return newDayErrorf("a month must be set before a day")
	}
	if day < 0 || day > 31 {
		return newDayErrorf("day must be an integer between 1 and 31")
	}
	if day > 0 && !xtime.IsValidDate(d.Year(), time.Month(month), day) {
		return newDayErrorf("day must be a valid day for the given month, %d is not a day of %s %d", day, MonthName(month), d.Year())
	}
	d.register = pdregister.SetDay(d.register, day)
	return nil
}

// SetDayString parses and sets the day.
//
// See ParseDay for the accepted format.
func (d *Date) SetDayString(value string) error {
	day, err := ParseDay(value)
	if err != nil {
		return err
	}
	return d.SetDay(day)
}

// ClearDay unsets the day.
func (d *Date) ClearDay() {
	d.register = pdregister.SetDay(d.register, 0)
}

// HasYear returns true if the year is set.
func (d Date) HasYear() bool {
	return d.Year() != 0
}

// HasMonth returns true if the month is set.
func (d Date) HasMonth() bool {
	return d.Month() != 0
}

// HasDay returns true if the day is set.
func (d Date) HasDay() bool {
	return d.Day() != 0
}

// IsZero returns true if no field is set.
func (d Date) IsZero() bool {
	return d.Year() == 0 && d.Month() == 0 && d.Day() == 0
}

// IsComplete returns true if the year, month, and day are all set.
func (d Date) IsComplete() bool {
	return d.HasYear() && d.HasMonth() && d.HasDay()
}

// String returns the Date formatted with LayoutDefault.
func (d Date) String() string {
	return d.Format(LayoutDefault)
}
