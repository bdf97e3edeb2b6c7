// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package configinit implements the "config init" command.
package configinit

import (
	"context"
	"fmt"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/partialdate/cmd/pdate/internal/pdatecmd"
	"github.com/bufdev/partialdate/internal/pdate/pdateconfig"
	"github.com/spf13/pflag"
)

// NewCommand returns a new config init command that creates a default configuration file.
func NewCommand(name string, builder appext.SubCommandBuilder) *appcmd.Command {
	flags := newFlags()
	return &appcmd.Command{
		Use:   name,
		Short: "Create a new configuration file",
		Args:  appcmd.NoArgs,
		Run: builder.NewRunFunc(
			func(ctx context.Context, container appext.Container) error {
				return run(ctx, container, flags)
			},
		),
		BindFlags: flags.Bind,
	}
}

type flags struct {
	// Config is the path to the configuration file.
	Config string
}

func newFlags() *flags {
	return &flags{}
}

// Bind registers the flag definitions with the given flag set.
func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.Config, pdatecmd.ConfigFlagName, "", "The configuration file path (defaults to config.yaml in the pdate config directory)")
}

func run(_ context.Context, container appext.Container, flags *flags) error {
	filePath, err := initConfig(container, flags.Config)
	if err != nil {
		return err
	}
	// Print the path so the user knows where to find it.
	_, err = fmt.Fprintf(container.Stdout(), "%s\n", filePath)
	return err
}

func initConfig(container appext.Container, configFlagValue string) (string, error) {
	if configFlagValue == "" {
		return pdateconfig.InitConfig(container.ConfigDirPath())
	}
	filePath, err := pdatecmd.ConfigFilePath(container, configFlagValue)
	if err != nil {
		return "", err
	}
	if err := pdateconfig.InitConfigFile(filePath); err != nil {
		return "", err
	}
	return filePath, nil
}
