// Copyright 2026 Peter Edge
//
// All rights reserved.

package partialdate

import (
	"testing"

	"github.com/bufdev/partialdate/internal/pkg/pdregister"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	Name      string
	published pdregister.Register
}

func (r *testRecord) PartialDateRegister() pdregister.Register {
	return r.published
}

func (r *testRecord) SetPartialDateRegister(register pdregister.Register) {
	r.published = register
}

func TestHost(t *testing.T) {
	t.Parallel()
	record := &testRecord{Name: "record"}
	require.Equal(t, int64(0), HostValue(record))

	require.NoError(t, SetHostYear(record, 2010))
	require.Equal(t, int64(20100000), HostValue(record))
	require.NoError(t, SetHostMonth(record, 5))
	require.NoError(t, SetHostDay(record, 1))
	require.Equal(t, int64(20100501), HostValue(record))
	require.Equal(t, 5, HostDate(record).Month())

	// Failed writes leave the host unchanged.
	require.ErrorIs(t, SetHostDay(record, 32), ErrDay)
	require.ErrorIs(t, SetHostMonth(record, 13), ErrMonth)
	require.ErrorIs(t, SetHostYear(record, MaxYear+1), ErrYear)
	require.ErrorIs(t, SetHostValue(record, MaxValue+1), ErrRange)
	require.Equal(t, int64(20100501), HostValue(record))

	require.NoError(t, SetHostValue(record, -10001201))
	require.Equal(t, -1000, HostDate(record).Year())
	require.NoError(t, SetHostMonth(record, 0))
	require.Equal(t, int64(-10000000), HostValue(record))
}
