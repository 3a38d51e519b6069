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

package telemetry

import (
	"testing"

	"github.com/ZaparooProject/mister-launcher/pkg/config"
	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "no username in path",
			input:    "/usr/local/bin/mister-launcher",
			expected: "/usr/local/bin/mister-launcher",
		},
		{
			name:     "linux home path",
			input:    "/home/sam/.config/mister-launcher/arcade.db",
			expected: "/home/<user>/.config/mister-launcher/arcade.db",
		},
		{
			name:     "macos users path lowercase",
			input:    "/users/sam/Library/mister-launcher/config.toml",
			expected: "/Users/<user>/Library/mister-launcher/config.toml",
		},
		{
			name:     "windows path",
			input:    `C:\Users\sam\LaunchBox\Plugins\MiSTer\config.toml`,
			expected: `C:\Users\<user>\LaunchBox\Plugins\MiSTer\config.toml`,
		},
		{
			name:     "windows path different drive",
			input:    `D:\Users\admin\LaunchBox\Data\mame.xml`,
			expected: `C:\Users\<user>\LaunchBox\Data\mame.xml`,
		},
		{
			name:     "share path untouched",
			input:    `\\mister\sdcard\_Arcade\Pac-Man.mra`,
			expected: `\\mister\sdcard\_Arcade\Pac-Man.mra`,
		},
		{
			name:     "multiple paths in message",
			input:    "copying /home/alice/arcade.db to /home/bob/arcade.db",
			expected: "copying /home/<user>/arcade.db to /home/<user>/arcade.db",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizePath(tt.input))
		})
	}
}

func TestSanitizeEvent(t *testing.T) {
	t.Parallel()

	event := &sentry.Event{
		ServerName: "sams-pc",
		Message:    "error reading /home/sam/mame.xml",
		Extra: map[string]any{
			"path":  `C:\Users\sam\mame.xml`,
			"count": 3,
		},
		Exception: []sentry.Exception{{
			Value: "open /home/sam/arcade.db: permission denied",
			Stacktrace: &sentry.Stacktrace{
				Frames: []sentry.Frame{{
					AbsPath:  "/home/sam/src/launcher.go",
					Filename: "launcher.go",
				}},
			},
		}},
	}

	got := sanitizeEvent(event)

	assert.Empty(t, got.ServerName)
	assert.Equal(t, "error reading /home/<user>/mame.xml", got.Message)
	assert.Equal(t, `C:\Users\<user>\mame.xml`, got.Extra["path"])
	assert.Equal(t, 3, got.Extra["count"])
	assert.Equal(t, "open /home/<user>/arcade.db: permission denied", got.Exception[0].Value)
	assert.Equal(t, "/home/<user>/src/launcher.go", got.Exception[0].Stacktrace.Frames[0].AbsPath)
	assert.Equal(t, "launcher.go", got.Exception[0].Stacktrace.Frames[0].Filename)
}

func TestInit_Disabled(t *testing.T) {
	t.Parallel()

	require.NoError(t, Init(config.ErrorReporting{}, "device", "1.0.0"))
	assert.False(t, Enabled())
}

func TestInit_NoDSN(t *testing.T) {
	t.Parallel()

	err := Init(config.ErrorReporting{Enabled: true}, "device", "1.0.0")
	require.ErrorIs(t, err, ErrNoDSN)
	assert.False(t, Enabled())
}

func TestCloseAndFlushWhenDisabled(t *testing.T) {
	t.Parallel()

	Flush()
	Close()
}
