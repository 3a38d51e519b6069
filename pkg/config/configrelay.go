// MiSTer Launcher
// Copyright (c) 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of MiSTer Launcher.
//
// MiSTer Launcher is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// MiSTer Launcher is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with MiSTer Launcher.  If not, see <http://www.gnu.org/licenses/>.

package config

import "time"

const (
	DefaultRelayBaudRate = 9600
	DefaultRelayPulseMs  = 200
)

// Relay configures a USB serial relay board pulsed by the relay command.
type Relay struct {
	Port     string `toml:"port,omitempty"`
	BaudRate int    `toml:"baud_rate" validate:"gte=0"`
	PulseMs  int    `toml:"pulse_ms" validate:"gte=0"`
}

func (c *Instance) Relay() Relay {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Relay
}

func (r Relay) Pulse() time.Duration {
	return time.Duration(r.PulseMs) * time.Millisecond
}
