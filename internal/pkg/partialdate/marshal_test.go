// Copyright 2026 Peter Edge
//
// All rights reserved.

package partialdate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type testEvent struct {
	Name string `json:"name" yaml:"name"`
	When Date   `json:"when" yaml:"when"`
}

func TestJSON(t *testing.T) {
	t.Parallel()
	event := testEvent{Name: "moon", When: mustNew(t, 1969, 7, 20)}
	data, err := json.Marshal(event)
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"moon","when":19690720}`, string(data))
	var decoded testEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, event, decoded)

	data, err = json.Marshal(mustNew(t, -44, 3, 0))
	require.NoError(t, err)
	require.Equal(t, "-440300", string(data))

	var date Date
	require.NoError(t, json.Unmarshal([]byte("null"), &date))
	require.True(t, date.IsZero())
	for _, bad := range []string{`"20120000"`, `20121300`, `100000000000`, `1.5`, `"bad"`} {
		require.Error(t, json.Unmarshal([]byte(bad), &date), bad)
	}
	require.True(t, date.IsZero())
}

func TestYAML(t *testing.T) {
	t.Parallel()
	event := testEvent{Name: "moon", When: mustNew(t, 1969, 7, 0)}
	data, err := yaml.Marshal(event)
	require.NoError(t, err)
	require.Equal(t, "name: moon\nwhen: 19690700\n", string(data))
	var decoded testEvent
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	require.Equal(t, event, decoded)

	var date Date
	require.ErrorIs(t, yaml.Unmarshal([]byte("20129900"), &date), ErrRange)
	require.Error(t, yaml.Unmarshal([]byte("abc"), &date))
	require.True(t, date.IsZero())
}

func TestText(t *testing.T) {
	t.Parallel()
	date := mustNew(t, 2012, 12, 31)
	data, err := date.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "20121231", string(data))
	var decoded Date
	require.NoError(t, decoded.UnmarshalText(data))
	require.Equal(t, date, decoded)
	require.ErrorIs(t, decoded.UnmarshalText([]byte("2012-12-31")), ErrRange)
	require.Equal(t, date, decoded)
}
