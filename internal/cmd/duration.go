// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"
	"time"
)

type limitedDurationValue struct {
	Value    *time.Duration
	min, max time.Duration
}

func (d *limitedDurationValue) String() string {
	if d.Value == nil {
		return "0s"
	}

	return d.Value.String()
}

func (d *limitedDurationValue) Set(s string) error {
	value, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	if value < d.min {
		return fmt.Errorf("%s < %s: %w", value, d.min, ErrValueOutOfRange)
	}

	if d.max > 0 && value > d.max {
		return fmt.Errorf("%s > %s: %w", value, d.max, ErrValueOutOfRange)
	}

	*d.Value = value

	return nil
}
