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

import "slices"

// Platforms lists frontend platforms routed to the MiSTer, each as
// "Frontend Platform[:MiSTer system ID]".
type Platforms struct {
	Consoles  []string `toml:"consoles,omitempty,multiline"`
	Computers []string `toml:"computers,omitempty,multiline"`
}

func (c *Instance) Consoles() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.vals.Platforms.Consoles)
}

func (c *Instance) Computers() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.vals.Platforms.Computers)
}

func (c *Instance) SetPlatforms(consoles, computers []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Platforms.Consoles = slices.Clone(consoles)
	c.vals.Platforms.Computers = slices.Clone(computers)
}
