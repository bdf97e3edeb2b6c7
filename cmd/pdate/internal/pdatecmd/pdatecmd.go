// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package pdatecmd provides shared wiring for pdate commands (config file
// resolution, parsing of combined values from arguments).
package pdatecmd

import (
	"fmt"
	"log/slog"
	"strconv"

	"buf.build/go/app/appcmd"
	"buf.build/go/app/appext"
	"github.com/bufdev/partialdate/internal/pdate/pdateconfig"
	"github.com/bufdev/partialdate/internal/pkg/partialdate"
	"github.com/bufdev/partialdate/internal/standard/xos"
)

// ConfigFlagName is the flag name for the configuration file path.
const ConfigFlagName = "config"

// ConfigFilePath returns the configuration file path, either the expanded
// value of the --config flag or the default path within the config directory.
func ConfigFilePath(container appext.Container, configFlagValue string) (string, error) {
	if configFlagValue == "" {
		return pdateconfig.ConfigFilePath(container.ConfigDirPath()), nil
	}
	return xos.ExpandHome(configFlagValue)
}

// ReadConfig reads the configuration file named by the --config flag.
//
// If the flag is not set and the default configuration file does not exist,
// the default configuration is returned.
func ReadConfig(container appext.Container, configFlagValue string) (*pdateconfig.Config, error) {
	return readConfig(container.Logger(), container.ConfigDirPath(), configFlagValue)
}

func readConfig(logger *slog.Logger, configDirPath string, configFlagValue string) (*pdateconfig.Config, error) {
	if configFlagValue == "" {
		logger.Debug("reading config", "dir", configDirPath)
		return pdateconfig.ReadConfigOrDefault(configDirPath)
	}
	filePath, err := xos.ExpandHome(configFlagValue)
	if err != nil {
		return nil, err
	}
	logger.Debug("reading config", "path", filePath)
	return pdateconfig.ReadConfigFile(filePath)
}

// ParseDateArgs parses every argument as a combined value.
//
// Returns an invalid argument error naming the first argument that is not a valid combined value.
func ParseDateArgs(container appext.Container) ([]partialdate.Date, error) {
	args := make([]string, 0, container.NumArgs())
	for i := range container.NumArgs() {
		args = append(args, container.Arg(i))
	}
	dates, err := ParseDates(args)
	if err != nil {
		return nil, appcmd.NewInvalidArgumentError(err.Error())
	}
	container.Logger().Debug("parsed dates", "count", len(dates))
	return dates, nil
}

// ParseDates parses each value as a combined value.
//
// Returns an error for the first value that is not a valid combined value.
func ParseDates(values []string) ([]partialdate.Date, error) {
	dates := make([]partialdate.Date, 0, len(values))
	for _, value := range values {
		date, err := ParseDate(value)
		if err != nil {
			return nil, err
		}
		dates = append(dates, date)
	}
	return dates, nil
}

// ParseDate parses a combined value.
func ParseDate(value string) (partialdate.Date, error) {
	combined, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return partialdate.Date{}, fmt.Errorf("invalid date value %q, must be an integer of the form YYYYMMDD", value)
	}
	date, err := partialdate.Load(combined)
	if err != nil {
		return partialdate.Date{}, fmt.Errorf("invalid date value %q: %w", value, err)
	}
	return date, nil
}
