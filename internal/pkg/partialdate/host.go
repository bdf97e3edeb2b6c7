// Copyright 2026 Peter Edge
//
// All rights reserved.

package partialdate

import "github.com/bufdev/partialdate/internal/pkg/pdregister"

// Host is implemented by types that keep a partial date in a single register field.
//
// The functions below give a Host the same year, month, and day semantics as a Date.
// Setters validate before writing, and leave the Host unchanged on error.
type Host interface {
	PartialDateRegister() pdregister.Register
	SetPartialDateRegister(pdregister.Register)
}

// HostDate returns the Date stored in the Host.
func HostDate(host Host) Date {
	return FromRegister(host.PartialDateRegister())
}

// HostValue returns the combined value stored in the Host.
func HostValue(host Host) int64 {
	return HostDate(host).Value()
}

// SetHostValue sets the combined value stored in the Host.
func SetHostValue(host Host, value int64) error {
	return updateHost(host, func(date *Date) error { return date.SetValue(value) })
}

// SetHostYear sets the year stored in the Host.
func SetHostYear(host Host, year int) error {
	return updateHost(host, func(date *Date) error { return date.SetYear(year) })
}

// SetHostMonth sets the month stored in the Host.
func SetHostMonth(host Host, month int) error {
	return updateHost(host, func(date *Date) error { return date.SetMonth(month) })
}

// SetHostDay sets the day stored in the Host.
func SetHostDay(host Host, day int) error {
	return updateHost(host, func(date *Date) error { return date.SetDay(day) })
}

func updateHost(host Host, update func(*Date) error) error {
	date := HostDate(host)
	if err := update(&date); err != nil {
		return err
	}
	host.SetPartialDateRegister(date.Register())
	return nil
}
