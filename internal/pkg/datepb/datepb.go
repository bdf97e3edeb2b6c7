// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package datepb provides conversion functions between partialdate.Date and google.type.Date.
//
// Both use zero for an unset year, month, or day. google.type.Date only
// supports years 1 through 9999, so partial dates outside that range cannot
// be converted to proto.
package datepb

import (
	"errors"
	"fmt"

	"github.com/bufdev/partialdate/internal/pkg/partialdate"
	"google.golang.org/genproto/googleapis/type/date"
)

// maxProtoYear is the largest year google.type.Date supports.
const maxProtoYear = 9999

// NewProtoDate creates a new validated proto Date from year, month, and day.
func NewProtoDate(year int, month int, day int) (*date.Date, error) {
	partialDate, err := newDate(year, month, day)
	if err != nil {
		return nil, err
	}
	return DateToProto(partialDate)
}

// DateToProto converts a partialdate.Date to a proto Date.
func DateToProto(partialDate partialdate.Date) (*date.Date, error) {
	year := partialDate.Year()
	if year < 0 || year > maxProtoYear {
		return nil, fmt.Errorf("year %d cannot be represented as a google.type.Date, must be between 0 and %d", year, maxProtoYear)
	}
	return &date.Date{
		Year:  int32(year),
		Month: int32(partialDate.Month()),
		Day:   int32(partialDate.Day()),
	}, nil
}

// ProtoToDate converts a proto Date to a validated partialdate.Date.
func ProtoToDate(protoDate *date.Date) (partialdate.Date, error) {
	if protoDate == nil {
		return partialdate.Date{}, errors.New("nil google.type.Date")
	}
	if protoDate.GetYear() < 0 || protoDate.GetYear() > maxProtoYear {
		return partialdate.Date{}, fmt.Errorf("google.type.Date year %d must be between 0 and %d", protoDate.GetYear(), maxProtoYear)
	}
	return newDate(int(protoDate.GetYear()), int(protoDate.GetMonth()), int(protoDate.GetDay()))
}

// newDate stops at the first invalid field.
func newDate(year int, month int, day int) (partialdate.Date, error) {
	return partialdate.New(
		func(d *partialdate.Date) error {
			if err := d.SetYear(year); err != nil {
				return err
			}
			if err := d.SetMonth(month); err != nil {
				return err
			}
			return d.SetDay(day)
		},
	)
}
