// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package sort implements the "sort" command.
package sort

import (
	"context"
	"fmt"
	"slices"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/partialdate/cmd/pdate/internal/pdatecmd"
	"github.com/bufdev/partialdate/internal/pkg/partialdate"
	"github.com/spf13/pflag"
)

// reverseFlagName is the flag name for sorting in descending order.
const reverseFlagName = "reverse"

// NewCommand returns a new sort command that prints combined values in order.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name + " <value>...",
		Short: "Print combined partial date values in chronological order",
		Long: `Print combined partial date values in chronological order, one per line.

Dates are ordered by year, then month, then day. A date with an unset month
sorts before every date of the same year with a month set.

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
	// Reverse sorts in descending order.
	Reverse bool
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.BoolVar(&f.Reverse, reverseFlagName, false, "Sort in descending order")
}

func run(_ context.Context, container appext.Container, flags *flags) error {
	dates, err := pdatecmd.ParseDateArgs(container)
	if err != nil {
		return err
	}
	partialdate.Sort(dates)
	if flags.Reverse {
		slices.Reverse(dates)
	}
	for _, date := range dates {
		if _, err := fmt.Fprintln(container.Stdout(), date.Value()); err != nil {
			return err
		}
	}
	return nil
}
