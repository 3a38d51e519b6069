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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/ZaparooProject/mister-launcher/pkg/helpers/syncutil"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
)

const (
	SchemaVersion = 1
	CfgEnv        = "MISTER_LAUNCHER_CFG"
	AppEnv        = "MISTER_LAUNCHER_APP"
)

type Values struct {
	PostLaunchCommand *Command                   `toml:"post_launch_command,omitempty" validate:"omitempty"`
	Auth              map[string]CredentialEntry `toml:"auth,omitempty"`
	Service           Service                    `toml:"service"`
	ErrorReporting    ErrorReporting             `toml:"error_reporting"`
	Mister            Mister                     `toml:"mister"`
	ArcadeDB          ArcadeDB                   `toml:"arcade_db"`
	Relay             Relay                      `toml:"relay,omitempty"`
	Platforms         Platforms                  `toml:"platforms"`
	Server            Server                     `toml:"server"`
	ConfigSchema      int                        `toml:"config_schema"`
	DebugLogging      bool                       `toml:"debug_logging"`
}

type Service struct {
	DeviceID string `toml:"device_id"`
}

type ErrorReporting struct {
	DSN     string `toml:"dsn,omitempty" validate:"omitempty,url"`
	Enabled bool   `toml:"enabled"`
}

type ArcadeDB struct {
	// Path is resolved relative to the config directory unless absolute.
	Path string `toml:"path"`
}

type Server struct {
	Listen string `toml:"listen" validate:"required,hostname_port"`
	// AllowedIPs are addresses or CIDR ranges allowed to use the bridge in
	// addition to loopback.
	AllowedIPs []string `toml:"allowed_ips,omitempty,multiline"`
}

var BaseDefaults = Values{
	ConfigSchema: SchemaVersion,
	Mister: Mister{
		APIURL:          "http://mister:8182",
		APITimeoutMs:    2000,
		TriggerAutosave: true,
		AutosaveTimeMs:  3000,
		ArcadePath:      "/media/fat",
	},
	ArcadeDB: ArcadeDB{
		Path: ArcadeDbFile,
	},
	Server: Server{
		Listen: "127.0.0.1:7498",
	},
	Relay: Relay{
		BaudRate: DefaultRelayBaudRate,
		PulseMs:  DefaultRelayPulseMs,
	},
}

var validate = validator.New(validator.WithRequiredStructEnabled())

type Instance struct {
	cfgPath  string
	vals     Values
	defaults Values
	mu       syncutil.RWMutex
}

// NewConfig loads the config file from configDir, or from the path set in
// the MISTER_LAUNCHER_CFG env var. A default config is written if none
// exists yet.
//
//nolint:gocritic // config struct copied for immutability
func NewConfig(configDir string, defaults Values) (*Instance, error) {
	cfgPath := os.Getenv(CfgEnv)
	log.Debug().Msgf("env config path: %s", cfgPath)

	if cfgPath == "" {
		cfgPath = filepath.Join(configDir, CfgFile)
	}

	return NewConfigAt(cfgPath, defaults)
}

// NewConfigAt loads the config file at an exact path.
//
//nolint:gocritic // config struct copied for immutability
func NewConfigAt(cfgPath string, defaults Values) (*Instance, error) {
	cfg := Instance{
		mu:       syncutil.RWMutex{},
		cfgPath:  cfgPath,
		vals:     defaults,
		defaults: defaults,
	}

	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		log.Info().Msg("saving new default config to disk")

		err := os.MkdirAll(filepath.Dir(cfgPath), 0o750)
		if err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}

		err = cfg.Save()
		if err != nil {
			return nil, err
		}
	}

	err := cfg.Load()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Instance) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	data, err := os.ReadFile(c.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults, then unmarshal file values on top.
	newVals := c.defaults
	err = toml.Unmarshal(data, &newVals)
	if err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if newVals.ConfigSchema != SchemaVersion {
		log.Error().Msgf(
			"schema version mismatch: got %d, expecting %d",
			newVals.ConfigSchema,
			SchemaVersion,
		)
		return errors.New("schema version mismatch")
	}

	if err := validate.Struct(&newVals); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	c.vals = newVals
	return nil
}

func (c *Instance) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	c.vals.ConfigSchema = SchemaVersion

	if c.vals.Service.DeviceID == "" {
		newID := uuid.New().String()
		c.vals.Service.DeviceID = newID
		log.Info().Msgf("generated new device id: %s", newID)
	}

	data, err := toml.Marshal(&c.vals)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(c.cfgPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (c *Instance) Path() string {
	return c.cfgPath
}

func (c *Instance) DebugLogging() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.DebugLogging
}

func (c *Instance) SetDebugLogging(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.DebugLogging = enabled
}

func (c *Instance) DeviceID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Service.DeviceID
}

func (c *Instance) ErrorReporting() ErrorReporting {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.ErrorReporting
}

// ArcadeDBPath returns the arcade database path, resolving relative paths
// against the directory holding the config file.
func (c *Instance) ArcadeDBPath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	path := c.vals.ArcadeDB.Path
	if path == "" {
		path = ArcadeDbFile
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(filepath.Dir(c.cfgPath), path)
}

func (c *Instance) ServerListen() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Server.Listen
}

func (c *Instance) AllowedIPs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.vals.Server.AllowedIPs)
}
