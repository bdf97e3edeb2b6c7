// Copyright 2026 Peter Edge
//
// All rights reserved.

package pdatecmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/bufdev/partialdate/internal/pkg/partialdate"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Parallel()
	date, err := ParseDate("20121231")
	require.NoError(t, err)
	require.Equal(t, "2012-12-31", date.String())
	date, err = ParseDate("-10001201")
	require.NoError(t, err)
	require.Equal(t, -1000, date.Year())
	_, err = ParseDate("2012-12-31")
	require.ErrorContains(t, err, "YYYYMMDD")
	_, err = ParseDate("20121399")
	require.ErrorIs(t, err, partialdate.ErrRange)
	_, err = ParseDate("-1201")
	require.ErrorIs(t, err, partialdate.ErrRange)
}

func TestParseDates(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		name    string
		values  []string
		want    []int64
		wantErr string
	}{
		{name: "empty", values: nil, want: []int64{}},
		{name: "ordered", values: []string{"20121231", "1201", "0"}, want: []int64{20121231, 1201, 0}},
		{name: "negative", values: []string{"-440315"}, want: []int64{-440315}},
		{name: "not an integer", values: []string{"20121231", "dec"}, wantErr: `"dec"`},
		{name: "out of range", values: []string{"20121232", "2012"}, wantErr: `"20121232"`},
	} {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			dates, err := ParseDates(test.values)
			if test.wantErr != "" {
				require.ErrorContains(t, err, test.wantErr)
				return
			}
			require.NoError(t, err)
			values := make([]int64, 0, len(dates))
			for _, date := range dates {
				values = append(values, date.Value())
			}
			require.Equal(t, test.want, values)
		})
	}
}

func TestReadConfigResolveLayout(t *testing.T) {
	t.Parallel()
	logger := slog.New(slog.DiscardHandler)
	configDirPath := t.TempDir()
	configFilePath := filepath.Join(configDirPath, "custom.yaml")
	require.NoError(t, os.WriteFile(configFilePath, []byte(`version: v1
default_layout: us
layouts:
  - name: us
    pattern: "%m/%d/%Y"
  - name: spoken
    pattern: "%B %e, %Y"
`), 0o644))
	config, err := readConfig(logger, configDirPath, configFilePath)
	require.NoError(t, err)
	defaultConfig, err := readConfig(logger, configDirPath, "")
	require.NoError(t, err)
	date, err := ParseDate("20120307")
	require.NoError(t, err)
	noDay, err := ParseDate("20120300")
	require.NoError(t, err)
	for _, test := range []struct {
		name   string
		date   partialdate.Date
		layout string
		want   string
	}{
		{name: "configured default", date: date, want: "03/07/2012"},
		{name: "configured name", date: date, layout: "spoken", want: "March 7, 2012"},
		{name: "configured name without day", date: noDay, layout: "spoken", want: "March 2012"},
		{name: "built-in name", date: date, layout: "long", want: "07 March 2012"},
		{name: "pattern", date: date, layout: "%Y/%m", want: "2012/03"},
	} {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, test.want, test.date.Format(config.ResolveLayout(test.layout)))
		})
	}
	// Without --config and without a config file, the built-in default applies.
	require.Equal(t, "2012-03-07", date.Format(defaultConfig.ResolveLayout("")))
	require.Equal(t, "spoken", defaultConfig.ResolveLayout("spoken"))
	_, err = readConfig(logger, configDirPath, filepath.Join(configDirPath, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
