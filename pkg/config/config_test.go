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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigAt_WritesDefaults(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), "nested", CfgFile)

	cfg, err := NewConfigAt(cfgPath, BaseDefaults)
	require.NoError(t, err)

	_, err = os.Stat(cfgPath)
	require.NoError(t, err, "default config should be written to disk")

	assert.Equal(t, "http://mister:8182", cfg.APIURL())
	assert.Equal(t, 2*time.Second, cfg.APITimeout())
	assert.True(t, cfg.TriggerAutosave())
	assert.Equal(t, 3*time.Second, cfg.AutosaveDelay())
	assert.Equal(t, "/media/fat", cfg.ArcadePath())
	assert.Nil(t, cfg.PostLaunchCommand())
	assert.Empty(t, cfg.Consoles())
	assert.Empty(t, cfg.Computers())
	assert.NotEmpty(t, cfg.DeviceID(), "a device id should be generated on first save")
}

func TestNewConfigAt_LoadsFileOverDefaults(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), CfgFile)
	data := `
config_schema = 1
debug_logging = true

[mister]
api_url = "http://192.168.1.50:8182/"
trigger_autosave = false

[post_launch_command]
file_name = "relay.exe"
arguments = "COM3 --pulse 200"
delay_ms = 500

[platforms]
consoles = ["Nintendo Entertainment System:NES", "Sega Genesis:Genesis"]
computers = ["Commodore 64:C64"]
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(data), 0o600))

	cfg, err := NewConfigAt(cfgPath, BaseDefaults)
	require.NoError(t, err)

	assert.True(t, cfg.DebugLogging())
	assert.Equal(t, "http://192.168.1.50:8182", cfg.APIURL(), "trailing slash trimmed")
	assert.False(t, cfg.TriggerAutosave())
	assert.Equal(t, 2*time.Second, cfg.APITimeout(), "unset values keep defaults")

	cmd := cfg.PostLaunchCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "relay.exe", cmd.FileName)
	assert.Equal(t, "COM3 --pulse 200", cmd.Arguments)
	assert.Equal(t, 500*time.Millisecond, cmd.Delay())

	assert.Equal(t, []string{"Nintendo Entertainment System:NES", "Sega Genesis:Genesis"}, cfg.Consoles())
	assert.Equal(t, []string{"Commodore 64:C64"}, cfg.Computers())
}

func TestLoad_SchemaMismatch(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), CfgFile)
	require.NoError(t, os.WriteFile(cfgPath, []byte("config_schema = 99\n"), 0o600))

	_, err := NewConfigAt(cfgPath, BaseDefaults)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema version mismatch")
}

func TestLoad_InvalidTOML(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), CfgFile)
	require.NoError(t, os.WriteFile(cfgPath, []byte("config_schema = [\n"), 0o600))

	_, err := NewConfigAt(cfgPath, BaseDefaults)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal config")
}

func TestLoad_ValidationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{
			name: "negative timeout",
			data: "config_schema = 1\n[mister]\napi_timeout_ms = -1\n",
		},
		{
			name: "bad api url",
			data: "config_schema = 1\n[mister]\napi_url = \"not a url\"\n",
		},
		{
			name: "post launch command without program",
			data: "config_schema = 1\n[post_launch_command]\ndelay_ms = 100\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfgPath := filepath.Join(t.TempDir(), CfgFile)
			require.NoError(t, os.WriteFile(cfgPath, []byte(tt.data), 0o600))

			_, err := NewConfigAt(cfgPath, BaseDefaults)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid config")
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), CfgFile)
	cfg, err := NewConfigAt(cfgPath, BaseDefaults)
	require.NoError(t, err)

	cfg.SetPlatforms([]string{"NES"}, []string{"Amiga"})
	cfg.SetDebugLogging(true)
	require.NoError(t, cfg.Save())

	reloaded, err := NewConfigAt(cfgPath, BaseDefaults)
	require.NoError(t, err)

	assert.Equal(t, []string{"NES"}, reloaded.Consoles())
	assert.Equal(t, []string{"Amiga"}, reloaded.Computers())
	assert.True(t, reloaded.DebugLogging())
	assert.Equal(t, cfg.DeviceID(), reloaded.DeviceID())
}

func TestArcadeDBPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := &Instance{cfgPath: filepath.Join(dir, CfgFile)}

	assert.Equal(t, filepath.Join(dir, ArcadeDbFile), cfg.ArcadeDBPath())

	cfg.vals.ArcadeDB.Path = filepath.Join("Metadata", "arcade.db")
	assert.Equal(t, filepath.Join(dir, "Metadata", "arcade.db"), cfg.ArcadeDBPath())

	abs := filepath.Join(dir, "elsewhere", "arcade.db")
	cfg.vals.ArcadeDB.Path = abs
	assert.Equal(t, abs, cfg.ArcadeDBPath())
}

func TestPlatforms_ReturnsCopies(t *testing.T) {
	t.Parallel()

	cfg := &Instance{}
	cfg.SetPlatforms([]string{"NES"}, nil)

	consoles := cfg.Consoles()
	consoles[0] = "changed"

	assert.Equal(t, []string{"NES"}, cfg.Consoles())
}

func TestPostLaunchCommand_ReturnsCopy(t *testing.T) {
	t.Parallel()

	cfg := &Instance{}
	cfg.vals.PostLaunchCommand = &Command{FileName: "cmd.exe"}

	cmd := cfg.PostLaunchCommand()
	cmd.FileName = "changed"

	assert.Equal(t, "cmd.exe", cfg.PostLaunchCommand().FileName)
}
