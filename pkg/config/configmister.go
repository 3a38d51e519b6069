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

import (
	"strings"
	"time"
)

type Mister struct {
	APIURL          string `toml:"api_url" validate:"required,url"`
	ArcadePath      string `toml:"arcade_path"`
	APITimeoutMs    int    `toml:"api_timeout_ms" validate:"gte=0"`
	AutosaveTimeMs  int    `toml:"autosave_time_ms" validate:"gte=0"`
	TriggerAutosave bool   `toml:"trigger_autosave"`
}

// Command is an external program run after a game has been launched, e.g.
// to switch a video input over to the MiSTer.
type Command struct {
	FileName  string `toml:"file_name" validate:"required"`
	Arguments string `toml:"arguments,omitempty"`
	DelayMs   int    `toml:"delay_ms" validate:"gte=0"`
}

func (c *Instance) APIURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return strings.TrimRight(c.vals.Mister.APIURL, "/")
}

func (c *Instance) APITimeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return time.Duration(c.vals.Mister.APITimeoutMs) * time.Millisecond
}

func (c *Instance) TriggerAutosave() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Mister.TriggerAutosave
}

func (c *Instance) AutosaveDelay() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return time.Duration(c.vals.Mister.AutosaveTimeMs) * time.Millisecond
}

func (c *Instance) ArcadePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return strings.TrimSpace(c.vals.Mister.ArcadePath)
}

// PostLaunchCommand returns a copy of the post launch command, or nil if
// none is configured.
func (c *Instance) PostLaunchCommand() *Command {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.PostLaunchCommand == nil {
		return nil
	}
	cmd := *c.vals.PostLaunchCommand
	return &cmd
}

func (c *Command) Delay() time.Duration {
	return time.Duration(c.DelayMs) * time.Millisecond
}
