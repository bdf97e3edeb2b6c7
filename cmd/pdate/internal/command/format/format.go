// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package format implements the "format" command.
package format

import (
	"context"
	"fmt"
	"strings"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/partialdate/cmd/pdate/internal/pdatecmd"
	"github.com/bufdev/partialdate/internal/pkg/partialdate"
	"github.com/spf13/pflag"
)

// layoutFlagName is the flag name for the layout.
const layoutFlagName = "layout"

// NewCommand returns a new format command that prints combined values as formatted strings.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name + " <value>...",
		Short: "Print combined partial date values as formatted strings",
		Long: `Print combined partial date values as formatted strings, one per line.

The layout is either the name of a layout or a pattern using the directives
%Y (year), %m (month), %B (month name), %b (abbreviated month name),
%d (day), and %e (unpadded day). Unset fields are left out together with
one adjacent separator.

Built-in layouts: ` + strings.Join(partialdate.LayoutNames(), ", ") + `.
Additional layouts may be named in the configuration file.

Use -- before negative values.`,
		Args: appcmd.MinimumNArgs(1),
		Run: builder.NewRunFunc(
			func(ctx context.Context, container appext.Container) error {
				return run(ctx, container, flags)
			},
		),
		BindFlags: flags.Bind,
	}
}

type flags struct {
	// Layout is the layout name or pattern.
	Layout string
	// Config is the path to the configuration file.
	Config string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.Layout, layoutFlagName, "", "Layout name or pattern (defaults to the configured default layout)")
	flagSet.StringVar(&f.Config, pdatecmd.ConfigFlagName, "", "The configuration file path (defaults to config.yaml in the pdate config directory)")
}

func run(_ context.Context, container appext.Container, flags *flags) error {
	config, err := pdatecmd.ReadConfig(container, flags.Config)
	if err != nil {
		return err
	}
	dates, err := pdatecmd.ParseDateArgs(container)
	if err != nil {
		return err
	}
	layout := config.ResolveLayout(flags.Layout)
	container.Logger().Debug("resolved layout", "layout", layout)
	for _, date := range dates {
		if _, err := fmt.Fprintln(container.Stdout(), date.Format(layout)); err != nil {
			return err
		}
	}
	return nil
}
