// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package pdregister packs the sign, year, month, and day of a partial date
// into a single 31-bit register.
//
// Layout, least significant bit first:
//
//	bits  0-4   day   (0-31)
//	bits  5-8   month (0-15, 0-12 used)
//	bits  9-29  year magnitude
//	bit   30    sign (1 if the year is negative)
//
// Bit 31 is always zero. A field value of zero means the field is unset.
//
// The functions in this package do not validate ranges. Each setter masks
// its value to the width of its field and leaves every other field untouched.
package pdregister

import "fmt"

// Register is a packed partial date.
type Register uint32

const (
	dayShift   = 0
	monthShift = 5
	yearShift  = 9
	signShift  = 30

	dayWidth   = 5
	monthWidth = 4
	yearWidth  = 21
	signWidth  = 1

	dayMask   Register = (1<<dayWidth - 1) << dayShift
	monthMask Register = (1<<monthWidth - 1) << monthShift
	yearMask  Register = (1<<yearWidth - 1) << yearShift
	signMask  Register = (1<<signWidth - 1) << signShift
)

// MaxYearMagnitude is the largest year magnitude the register can hold.
const MaxYearMagnitude = 1<<yearWidth - 1

// New returns a register holding the given fields.
func New(year int, month int, day int) Register {
	return SetDay(SetMonth(SetYear(0, year), month), day)
}

// Sign returns 1 if the year is negative, 0 otherwise.
func Sign(r Register) uint32 {
	return uint32((r & signMask) >> signShift)
}

// SetSign returns r with the sign bit set to bit, which must be 0 or 1.
func SetSign(r Register, bit uint32) Register {
	return (r &^ signMask) | (Register(bit)<<signShift)&signMask
}

// Year returns the signed year.
func Year(r Register) int {
	magnitude := int((r & yearMask) >> yearShift)
	if Sign(r) == 1 {
		return -magnitude
	}
	return magnitude
}

// SetYear returns r with the year set.
//
// The sign bit is derived from the sign of year. Year zero is non-negative.
func SetYear(r Register, year int) Register {
	var sign uint32
	if year < 0 {
		sign = 1
		year = -year
	}
	r = (r &^ yearMask) | (Register(year)<<yearShift)&yearMask
	return SetSign(r, sign)
}

// Month returns the month, 0 if unset.
func Month(r Register) int {
	return int((r & monthMask) >> monthShift)
}

// SetMonth returns r with the month set.
func SetMonth(r Register, month int) Register {
	return (r &^ monthMask) | (Register(month)<<monthShift)&monthMask
}

// Day returns the day, 0 if unset.
func Day(r Register) int {
	return int((r & dayMask) >> dayShift)
}

// SetDay returns r with the day set.
func SetDay(r Register, day int) Register {
	return (r &^ dayMask) | (Register(day)<<dayShift)&dayMask
}

// Combined returns the decimal interchange value of r:
//
//	sign * (|year|*10000 + month*100 + day)
func Combined(r Register) int64 {
	year := int64(Year(r))
	magnitude := year
	if magnitude < 0 {
		magnitude = -magnitude
	}
	combined := magnitude*10000 + int64(Month(r))*100 + int64(Day(r))
	if year < 0 {
		return -combined
	}
	return combined
}

// SetCombined returns r with the year, month, and day replaced by the fields
// of the decimal interchange value.
//
// The year takes the sign of value.
func SetCombined(r Register, value int64) Register {
	negative := value < 0
	if negative {
		value = -value
	}
	year := int(value / 10000)
	if negative {
		year = -year
	}
	r = SetYear(r, year)
	r = SetMonth(r, int(value%10000/100))
	return SetDay(r, int(value%100))
}

// Sign returns 1 if the year is negative, 0 otherwise.
func (r Register) Sign() uint32 {
	return Sign(r)
}

// Year returns the signed year.
func (r Register) Year() int {
	return Year(r)
}

// Month returns the month, 0 if unset.
func (r Register) Month() int {
	return Month(r)
}

// Day returns the day, 0 if unset.
func (r Register) Day() int {
	return Day(r)
}

// Combined returns the decimal interchange value.
func (r Register) Combined() int64 {
	return Combined(r)
}

// String returns the register in binary, grouped by field.
func (r Register) String() string {
	return fmt.Sprintf(
		"%01b %021b %04b %05b",
		Sign(r),
		uint32((r&yearMask)>>yearShift),
		Month(r),
		Day(r),
	)
}
