// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package encode implements the "encode" command.
package encode

import (
	"context"
	"fmt"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/partialdate/internal/pkg/partialdate"
	"github.com/spf13/pflag"
)

const (
	// yearFlagName is the flag name for the year.
	yearFlagName = "year"
	// monthFlagName is the flag name for the month.
	monthFlagName = "month"
	// dayFlagName is the flag name for the day.
	dayFlagName = "day"
	// registerFlagName is the flag name for printing the packed register.
	registerFlagName = "register"
)

// NewCommand returns a new encode command that prints the combined value of a partial date.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Print the combined value of a partial date",
		Long: `Print the combined value of a partial date given its fields.

Every field is optional. A day requires a month. The combined value is
sign * (|year|*10000 + month*100 + day).`,
		Args: appcmd.NoArgs,
		Run: builder.NewRunFunc(
			func(ctx context.Context, container appext.Container) error {
				return run(ctx, container, flags)
			},
		),
		BindFlags: flags.Bind,
	}
}

type flags struct {
	// Year is the year, optionally negative. Empty means unset.
	Year string
	// Month is the month (1-12). Empty means unset.
	Month string
	// Day is the day (1-31). Empty means unset.
	Day string
	// Register also prints the packed register in binary.
	Register bool
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.Year, yearFlagName, "", "The year, optionally negative (omit to leave unset)")
	flagSet.StringVar(&f.Month, monthFlagName, "", "The month, 1-12 (omit to leave unset)")
	flagSet.StringVar(&f.Day, dayFlagName, "", "The day, 1-31 (omit to leave unset, requires --month)")
	flagSet.BoolVar(&f.Register, registerFlagName, false, "Also print the packed register in binary")
}

func run(_ context.Context, container appext.Container, flags *flags) error {
	date, err := partialdate.New(
		func(d *partialdate.Date) error {
			if flags.Year != "" {
				if err := d.SetYearString(flags.Year); err != nil {
					return fmt.Errorf("--%s: %w", yearFlagName, err)
				}
			}
			if flags.Month != "" {
				if err := d.SetMonthString(flags.Month); err != nil {
					return fmt.Errorf("--%s: %w", monthFlagName, err)
				}
			}
			if flags.Day != "" {
				if err := d.SetDayString(flags.Day); err != nil {
					return fmt.Errorf("--%s: %w", dayFlagName, err)
				}
			}
			return nil
		},
	)
	if err != nil {
		return appcmd.NewInvalidArgumentError(err.Error())
	}
	if _, err := fmt.Fprintf(container.Stdout(), "%d\n", date.Value()); err != nil {
		return err
	}
	if flags.Register {
		_, err = fmt.Fprintf(container.Stdout(), "%s\n", date.Register().String())
	}
	return err
}
