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

// Package command starts external programs behind an interface so launch
// sequences can be tested without running anything.
package command

import (
	"fmt"
	"os/exec"

	"github.com/rs/zerolog/log"
)

// StartOptions configures command startup behavior.
type StartOptions struct {
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// HideWindow prevents a console window from appearing (Windows-only).
	HideWindow bool
}

// Executor starts external programs.
type Executor interface {
	// StartDetached starts a program and returns as soon as it's running.
	// The process isn't bound to any context and its exit is never reported
	// back to the caller.
	StartDetached(opts StartOptions, name string, args ...string) error
}

// RealExecutor starts real processes with os/exec.
type RealExecutor struct{}

var _ Executor = (*RealExecutor)(nil)

func (*RealExecutor) StartDetached(opts StartOptions, name string, args ...string) error {
	//nolint:gosec // program and arguments come from the user's own config
	cmd := exec.Command(name, args...)
	cmd.Dir = opts.Dir
	applyOptions(cmd, opts)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", name, err)
	}

	pid := cmd.Process.Pid
	log.Debug().Int("pid", pid).Msgf("started process: %s", name)

	// reap the process so it doesn't linger as a zombie, exit status is
	// only logged
	go func() {
		if err := cmd.Wait(); err != nil {
			log.Debug().Err(err).Int("pid", pid).Msg("detached process exited with error")
		}
	}()

	return nil
}
