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

//go:build !windows

package command

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealExecutor_StartDetached(t *testing.T) {
	t.Parallel()

	executor := &RealExecutor{}

	t.Run("starts_command_without_waiting", func(t *testing.T) {
		t.Parallel()

		start := time.Now()
		err := executor.StartDetached(StartOptions{}, "sleep", "2")

		require.NoError(t, err)
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("runs_in_working_directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		err := executor.StartDetached(StartOptions{Dir: dir}, "touch", "started")
		require.NoError(t, err)

		assert.Eventually(t, func() bool {
			_, err := os.Stat(filepath.Join(dir, "started"))
			return err == nil
		}, 2*time.Second, 10*time.Millisecond)
	})

	t.Run("returns_error_for_nonexistent_command", func(t *testing.T) {
		t.Parallel()

		err := executor.StartDetached(StartOptions{}, "nonexistent_command_that_should_not_exist_12345")

		require.Error(t, err)
	})
}
