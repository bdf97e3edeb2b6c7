// Copyright 2026 Peter Edge
//
// All rights reserved.

package main

import (
	"context"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/partialdate/cmd/pdate/internal/command/config"
	"github.com/bufdev/partialdate/cmd/pdate/internal/command/decode"
	"github.com/bufdev/partialdate/cmd/pdate/internal/command/encode"
	"github.com/bufdev/partialdate/cmd/pdate/internal/command/format"
	"github.com/bufdev/partialdate/cmd/pdate/internal/command/sort"
)

func main() {
	appcmd.Main(context.Background(), newRootCommand("pdate"))
}

// newRootCommand creates the root pdate command with all sub-commands.
func newRootCommand(name string) *appcmd.Command {
	builder := appext.NewBuilder(name)
	return &appcmd.Command{
		Use:                 name,
		Short:               "Encode, decode, format, and sort partial dates",
		BindPersistentFlags: builder.BindRoot,
		SubCommands: []*appcmd.Command{
			config.NewCommand("config", builder),
			decode.NewCommand("decode", builder),
			encode.NewCommand("encode", builder),
			format.NewCommand("format", builder),
			sort.NewCommand("sort", builder),
		},
	}
}
