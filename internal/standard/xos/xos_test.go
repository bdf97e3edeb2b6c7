// Copyright 2026 Peter Edge
//
// All rights reserved.

package xos

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpandHome(t *testing.T) {
	t.Parallel()
	path, err := ExpandHome("/etc/pdate/config.yaml")
	require.NoError(t, err)
	require.Equal(t, "/etc/pdate/config.yaml", path)
	homeDir, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	path, err = ExpandHome("~/pdate.yaml")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(homeDir, "pdate.yaml"), path)
}

func TestExpandHomeOtherUser(t *testing.T) {
	t.Parallel()
	_, err := ExpandHome("~root/pdate.yaml")
	require.Error(t, err)
}
