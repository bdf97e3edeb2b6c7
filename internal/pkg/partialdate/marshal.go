// Copyright 2026 Peter Edge
//
// All rights reserved.

package partialdate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler.
//
// The text form is the combined value in decimal.
func (d Date) MarshalText() ([]byte, error) {
	return strconv.AppendInt(nil, d.Value(), 10), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(data []byte) error {
	value, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return newRangeErrorf("date value must be an integer, got %q", string(data))
	}
	return d.SetValue(value)
}

// MarshalJSON implements json.Marshaler.
//
// The JSON form is the combined value as a number.
func (d Date) MarshalJSON() ([]byte, error) {
	return d.MarshalText()
}

// UnmarshalJSON implements json.Unmarshaler.
//
// null leaves the Date unchanged.
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var value int64
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("could not unmarshal date value %s: %w", string(data), err)
	}
	return d.SetValue(value)
}

// MarshalYAML implements yaml.Marshaler.
//
// The YAML form is the combined value as an integer.
func (d Date) MarshalYAML() (any, error) {
	return d.Value(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	var value int64
	if err := node.Decode(&value); err != nil {
		return fmt.Errorf("could not unmarshal date value: %w", err)
	}
	return d.SetValue(value)
}
