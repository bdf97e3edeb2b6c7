// Copyright 2026 Peter Edge
//
// All rights reserved.

package pdregister

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSign(t *testing.T) {
	t.Parallel()
	r := SetYear(0, -9999)
	require.Equal(t, uint32(1), Sign(r))
	require.Equal(t, -9999, Year(r))
	r = SetYear(r, 9999)
	require.Equal(t, uint32(0), Sign(r))
	require.Equal(t, 9999, Year(r))
	// Year zero is never negative.
	r = SetYear(SetYear(0, -1), 0)
	require.Equal(t, uint32(0), Sign(r))
	require.Equal(t, 0, Year(r))
}

func TestSetSign(t *testing.T) {
	t.Parallel()
	r := New(2012, 12, 31)
	r = SetSign(r, 1)
	require.Equal(t, -2012, Year(r))
	require.Equal(t, 12, Month(r))
	require.Equal(t, 31, Day(r))
	r = SetSign(r, 0)
	require.Equal(t, 2012, Year(r))
}

func TestFieldIsolation(t *testing.T) {
	t.Parallel()
	years := []int{0, 1, -1, 9999, -9999, 1048576, -1048576, MaxYearMagnitude, -MaxYearMagnitude}
	for _, year := range years {
		for month := 0; month <= 15; month++ {
			for day := 0; day <= 31; day++ {
				r := New(year, month, day)
				require.Equal(t, year, Year(r))
				require.Equal(t, month, Month(r))
				require.Equal(t, day, Day(r))
				require.Zero(t, uint32(r)>>31, "bit 31 must stay clear")
				// Rewriting one field leaves the others alone.
				require.Equal(t, New(year, month, 7), SetDay(r, 7))
				require.Equal(t, New(year, 3, day), SetMonth(r, 3))
				require.Equal(t, New(-42, month, day), SetYear(r, -42))
			}
		}
	}
}

func TestSettersMaskToFieldWidth(t *testing.T) {
	t.Parallel()
	r := New(2012, 12, 31)
	// Out of range values cannot spill into neighbouring fields.
	require.Equal(t, New(2012, 12, 0), SetDay(r, 32))
	require.Equal(t, New(2012, 0, 31), SetMonth(r, 16))
	require.Equal(t, New(0, 12, 31), SetYear(r, MaxYearMagnitude+1))
}

func TestCombined(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		year     int
		month    int
		day      int
		combined int64
	}{
		{0, 0, 0, 0},
		{2012, 0, 0, 20120000},
		{2012, 12, 0, 20121200},
		{2012, 12, 31, 20121231},
		{0, 12, 1, 1201},
		{0, 0, 5, 5},
		{1, 1, 1, 10101},
		{-1000, 12, 1, -10001201},
		{-1, 0, 0, -10000},
		{1048576, 12, 31, 10485761231},
		{-1048576, 12, 31, -10485761231},
	} {
		r := New(test.year, test.month, test.day)
		require.Equal(t, test.combined, Combined(r), "%d-%d-%d", test.year, test.month, test.day)
		require.Equal(t, test.combined, r.Combined())
		decoded := SetCombined(0, test.combined)
		require.Equal(t, r, decoded)
		require.Equal(t, test.year, decoded.Year())
		require.Equal(t, test.month, decoded.Month())
		require.Equal(t, test.day, decoded.Day())
	}
}

func TestSetCombinedReplacesAllFields(t *testing.T) {
	t.Parallel()
	r := SetCombined(New(-5, 11, 30), 20120000)
	require.Equal(t, New(2012, 0, 0), r)
	require.Equal(t, uint32(0), r.Sign())
}

func TestString(t *testing.T) {
	t.Parallel()
	require.Equal(t, "1 000000000000000000001 0010 00011", New(-1, 2, 3).String())
	require.Equal(t, "0 000000000000000000000 0000 00000", Register(0).String())
}

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = New(2012, 12, 31)
	}
}

func BenchmarkCombined(b *testing.B) {
	r := New(-2012, 12, 31)
	for i := 0; i < b.N; i++ {
		_ = Combined(r)
	}
}

func BenchmarkSetCombined(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = SetCombined(0, 20121231)
	}
}
