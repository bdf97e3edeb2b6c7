// Copyright 2026 Peter Edge
//
// All rights reserved.

package partialdate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseYear(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		value   string
		want    int
		wantErr bool
	}{
		{value: "2012", want: 2012},
		{value: "0", want: 0},
		{value: "-1", want: -1},
		{value: "-1000", want: -1000},
		{value: "1048576", want: 1048576},
		// Range is checked by SetYear, not ParseYear.
		{value: "9999999", want: 9999999},
		{value: "", wantErr: true},
		{value: "-", wantErr: true},
		{value: "12345678", wantErr: true},
		{value: "+12", wantErr: true},
		{value: "12a", wantErr: true},
		{value: " 12", wantErr: true},
		{value: "12\n", wantErr: true},
		{value: "--12", wantErr: true},
	} {
		got, err := ParseYear(test.value)
		if test.wantErr {
			require.ErrorIs(t, err, ErrYear, "%q", test.value)
			continue
		}
		require.NoError(t, err, "%q", test.value)
		require.Equal(t, test.want, got)
	}
}

func TestParseMonthAndDay(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		value   string
		want    int
		wantErr bool
	}{
		{value: "1", want: 1},
		{value: "01", want: 1},
		{value: "12", want: 12},
		{value: "0", want: 0},
		{value: "99", want: 99},
		{value: "", wantErr: true},
		{value: "001", wantErr: true},
		{value: "-1", wantErr: true},
		{value: "1 ", wantErr: true},
		{value: "AB", wantErr: true},
	} {
		month, err := ParseMonth(test.value)
		day, dayErr := ParseDay(test.value)
		if test.wantErr {
			require.ErrorIs(t, err, ErrMonth, "%q", test.value)
			require.ErrorIs(t, dayErr, ErrDay, "%q", test.value)
			continue
		}
		require.NoError(t, err, "%q", test.value)
		require.NoError(t, dayErr, "%q", test.value)
		require.Equal(t, test.want, month)
		require.Equal(t, test.want, day)
	}
}
