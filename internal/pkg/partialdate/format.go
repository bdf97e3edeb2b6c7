// Copyright 2026 Peter Edge
//
// All rights reserved.

package partialdate

import (
	"slices"
	"strconv"
	"strings"
)

// Layouts for Format.
//
// A layout is literal text with the directives:
//
//	%Y  year, at least 4 digits, with a leading "-" if negative
//	%m  month, 2 digits
//	%B  month name, for example "December"
//	%b  abbreviated month name, for example "Dec"
//	%d  day, 2 digits
//	%e  day, no padding
//
// A directive whose field is unset renders as nothing, and one separator
// next to it is removed with it. Separators are '/', ',', '-', and whitespace.
const (
	LayoutDefault = "%Y-%m-%d"
	LayoutShort   = "%d %m %Y"
	LayoutMedium  = "%d %b %Y"
	LayoutLong    = "%d %B %Y"
	LayoutNumber  = "%Y%m%d"
)

var (
	namedLayouts = map[string]string{
		"default": LayoutDefault,
		"short":   LayoutShort,
		"medium":  LayoutMedium,
		"long":    LayoutLong,
		"number":  LayoutNumber,
	}
	monthNames = [...]string{
		"January",
		"February",
		"March",
		"April",
		"May",
		"June",
		"July",
		"August",
		"September",
		"October",
		"November",
		"December",
	}
)

// LookupLayout returns the layout with the given name.
//
// The names are "default", "short", "medium", "long", and "number".
func LookupLayout(name string) (string, bool) {
	layout, ok := namedLayouts[name]
	return layout, ok
}

// LayoutNames returns the sorted names accepted by LookupLayout.
func LayoutNames() []string {
	names := make([]string, 0, len(namedLayouts))
	for name := range namedLayouts {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// MonthName returns the English name of the month, or the empty string
// if month is not in [1, 12].
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

// ShortMonthName returns the three letter English abbreviation of the month,
// or the empty string if month is not in [1, 12].
func ShortMonthName(month int) string {
	name := MonthName(month)
	if name == "" {
		return ""
	}
	return name[:3]
}

// Format returns the Date rendered with the layout.
//
// Unknown directives are copied as is. Separators left behind by unset fields
// are removed, so that LayoutDefault renders a year-only date as "2012" and a
// date with no year as "12-01". The empty Date renders as the empty string.
func (d Date) Format(layout string) string {
	pieces := make([]piece, 0, len(layout))
	for i := 0; i < len(layout); i++ {
		if layout[i] != '%' || i+1 >= len(layout) {
			pieces = append(pieces, newLiteralPiece(layout[i:i+1]))
			continue
		}
		value, ok := d.directive(layout[i+1])
		if !ok {
			pieces = append(pieces, newLiteralPiece(layout[i:i+1]))
			continue
		}
		// Skip the directive character.
		i++
		if value != "" {
			pieces = append(pieces, piece{text: value})
			continue
		}
		// Absorb one neighbouring separator, looking forward first. Between
		// two separator runs, the run after the directive is absorbed whole.
		n := len(pieces)
		previousSeparator := n > 0 && pieces[n-1].isSeparator()
		nextSeparator := i+1 < len(layout) && isSeparator(layout[i+1])
		switch {
		case previousSeparator && nextSeparator:
			for i+1 < len(layout) && isSeparator(layout[i+1]) {
				i++
			}
		case nextSeparator:
			i++
		case previousSeparator:
			pieces = pieces[:n-1]
		}
	}
	return joinPieces(pieces)
}

// piece is either a single literal byte of a layout or a rendered directive.
type piece struct {
	text    string
	literal bool
}

func newLiteralPiece(text string) piece {
	return piece{text: text, literal: true}
}

func (p piece) isSeparator() bool {
	return p.literal && isSeparator(p.text[0])
}

func (p piece) isSpace() bool {
	return p.literal && isSpace(p.text[0])
}

// joinPieces concatenates the pieces without leading or trailing separators,
// collapsing whitespace runs to a single space and runs of the same separator
// to one. Rendered directives are never altered.
func joinPieces(pieces []piece) string {
	for len(pieces) > 0 && pieces[0].isSeparator() {
		pieces = pieces[1:]
	}
	for len(pieces) > 0 && pieces[len(pieces)-1].isSeparator() {
		pieces = pieces[:len(pieces)-1]
	}
	var builder strings.Builder
	var previous piece
	for _, p := range pieces {
		switch {
		case p.isSpace():
			if previous.isSpace() {
				continue
			}
			builder.WriteByte(' ')
		case p.isSeparator() && previous.literal && previous.text == p.text:
			continue
		default:
			builder.WriteString(p.text)
		}
		previous = p
	}
	return builder.String()
}

func (d Date) directive(c byte) (string, bool) {
	switch c {
	case 'Y':
		return formatYear(d.Year()), true
	case 'm':
		return formatPadded(d.Month()), true
	case 'B':
		return MonthName(d.Month()), true
	case 'b':
		return ShortMonthName(d.Month()), true
	case 'd':
		return formatPadded(d.Day()), true
	case 'e':
		if d.Day() == 0 {
			return "", true
		}
		return strconv.Itoa(d.Day()), true
	default:
		return "", false
	}
}

func formatYear(year int) string {
	if year == 0 {
		return ""
	}
	var prefix string
	if year < 0 {
		prefix = "-"
		year = -year
	}
	digits := strconv.Itoa(year)
	if len(digits) < 4 {
		digits = strings.Repeat("0", 4-len(digits)) + digits
	}
	return prefix + digits
}

func formatPadded(value int) string {
	if value == 0 {
		return ""
	}
	if value < 10 {
		return "0" + strconv.Itoa(value)
	}
	return strconv.Itoa(value)
}

func isSeparator(c byte) bool {
	return c == '/' || c == ',' || c == '-' || isSpace(c)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}
