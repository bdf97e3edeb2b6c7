// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package decode implements the "decode" command.
package decode

import (
	"context"
	"strconv"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/partialdate/cmd/pdate/internal/pdatecmd"
	"github.com/bufdev/partialdate/internal/pkg/cliio"
	"github.com/bufdev/partialdate/internal/pkg/datepb"
	"github.com/bufdev/partialdate/internal/pkg/partialdate"
	"github.com/spf13/pflag"
	"google.golang.org/genproto/googleapis/type/date"
)

const (
	// formatFlagName is the flag name for the output format.
	formatFlagName = "format"
	// layoutFlagName is the flag name for the layout of the formatted column.
	layoutFlagName = "layout"
)

// NewCommand returns a new decode command that prints the fields of combined values.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name + " <value>...",
		Short: "Print the fields of combined partial date values",
		Args:  appcmd.MinimumNArgs(1),
		Run: builder.NewRunFunc(
			func(ctx context.Context, container appext.Container) error {
				return run(ctx, container, flags)
			},
		),
		BindFlags: flags.Bind,
	}
}

type flags struct {
	// Format is the output format (table, csv, json, protojson).
	Format string
	// Layout is the layout name or pattern for the formatted column.
	Layout string
	// Config is the path to the configuration file.
	Config string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.Format, formatFlagName, "table", "Output format (table, csv, json, protojson)")
	flagSet.StringVar(&f.Layout, layoutFlagName, "", "Layout name or pattern for the formatted column (defaults to the configured default layout)")
	flagSet.StringVar(&f.Config, pdatecmd.ConfigFlagName, "", "The configuration file path (defaults to config.yaml in the pdate config directory)")
}

// decodedDate is the JSON output of a decoded date.
type decodedDate struct {
	Value     int64  `json:"value"`
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	Day       int    `json:"day"`
	Register  string `json:"register"`
	Formatted string `json:"formatted"`
}

func run(_ context.Context, container appext.Container, flags *flags) error {
	format, err := cliio.ParseFormat(flags.Format)
	if err != nil {
		return appcmd.NewInvalidArgumentError(err.Error())
	}
	config, err := pdatecmd.ReadConfig(container, flags.Config)
	if err != nil {
		return err
	}
	dates, err := pdatecmd.ParseDateArgs(container)
	if err != nil {
		return err
	}
	layout := config.ResolveLayout(flags.Layout)
	decodedDates := make([]decodedDate, 0, len(dates))
	for _, d := range dates {
		decodedDates = append(decodedDates, newDecodedDate(d, layout))
	}
	// Write output in the requested format.
	writer := container.Stdout()
	switch format {
	case cliio.FormatTable:
		return cliio.WriteTable(writer, headers(), toRows(decodedDates))
	case cliio.FormatCSV:
		return cliio.WriteCSVRecords(writer, append([][]string{headers()}, toRows(decodedDates)...))
	case cliio.FormatJSON:
		return cliio.WriteJSON(writer, decodedDates...)
	case cliio.FormatProtoJSON:
		protoDates := make([]*date.Date, 0, len(dates))
		for _, d := range dates {
			protoDate, err := datepb.DateToProto(d)
			if err != nil {
				return err
			}
			protoDates = append(protoDates, protoDate)
		}
		return cliio.WriteProtoMessagesJSON(writer, protoDates...)
	default:
		return appcmd.NewInvalidArgumentErrorf("unsupported format %q", format)
	}
}

func newDecodedDate(d partialdate.Date, layout string) decodedDate {
	return decodedDate{
		Value:     d.Value(),
		Year:      d.Year(),
		Month:     d.Month(),
		Day:       d.Day(),
		Register:  d.Register().String(),
		Formatted: d.Format(layout),
	}
}

func headers() []string {
	return []string{"VALUE", "YEAR", "MONTH", "DAY", "REGISTER", "FORMATTED"}
}

func toRows(decodedDates []decodedDate) [][]string {
	rows := make([][]string, 0, len(decodedDates))
	for _, d := range decodedDates {
		rows = append(rows, []string{
			strconv.FormatInt(d.Value, 10),
			strconv.Itoa(d.Year),
			strconv.Itoa(d.Month),
			strconv.Itoa(d.Day),
			d.Register,
			d.Formatted,
		})
	}
	return rows
}
