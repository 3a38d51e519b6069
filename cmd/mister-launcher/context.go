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

package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ZaparooProject/mister-launcher/internal/telemetry"
	"github.com/ZaparooProject/mister-launcher/pkg/config"
	"github.com/ZaparooProject/mister-launcher/pkg/database/arcadedb"
	"github.com/ZaparooProject/mister-launcher/pkg/helpers"
	"github.com/ZaparooProject/mister-launcher/pkg/launcher"
	"github.com/ZaparooProject/mister-launcher/pkg/lookup"
	"github.com/ZaparooProject/mister-launcher/pkg/menu"
	"github.com/ZaparooProject/mister-launcher/pkg/platforms"
	"github.com/ZaparooProject/mister-launcher/pkg/remote"
	"github.com/ZaparooProject/mister-launcher/pkg/shared/httpclient"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type commandContext struct {
	configFlag *string
	debugFlag  *bool

	configOnce sync.Once
	config     *config.Instance
	configErr  error
}

func newCommandContext(configFlag *string, debugFlag *bool) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		debugFlag:  debugFlag,
	}
}

// ensureConfig loads the config once and sets up logging next to it.
// Console logging goes to stderr so command output stays clean.
func (c *commandContext) ensureConfig(stderr io.Writer) (*config.Instance, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}

		var cfg *config.Instance
		var err error
		if path != "" {
			cfg, err = config.NewConfigAt(path, config.BaseDefaults)
		} else {
			if err = helpers.EnsureDirectories(); err != nil {
				c.configErr = fmt.Errorf("failed to create app directories: %w", err)
				return
			}
			cfg, err = config.NewConfig(helpers.ConfigDir(), config.BaseDefaults)
		}
		if err != nil {
			c.configErr = fmt.Errorf("failed to load config: %w", err)
			return
		}

		debug := cfg.DebugLogging() || (c.debugFlag != nil && *c.debugFlag)
		var writers []io.Writer
		if debug {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
			writers = append(writers, zerolog.ConsoleWriter{Out: stderr})
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
		if err := helpers.InitLogging(filepath.Dir(cfg.Path()), writers); err != nil {
			c.configErr = fmt.Errorf("failed to set up logging: %w", err)
			return
		}

		if err := telemetry.Init(cfg.ErrorReporting(), cfg.DeviceID(), config.AppVersion); err != nil {
			log.Warn().Err(err).Msg("error reporting not started")
		}

		log.Debug().Msgf("loaded config: %s", cfg.Path())
		c.config = cfg
	})
	return c.config, c.configErr
}

// services are the lookup and launch components built from the config.
type services struct {
	store       *arcadedb.Store
	menu        *menu.Builder
	coordinator *launcher.Coordinator
}

func (c *commandContext) services(notifier launcher.Notifier) (*services, error) {
	cfg, err := c.ensureConfig(io.Discard)
	if err != nil {
		return nil, err
	}

	registry := platforms.NewRegistry(cfg.Consoles(), cfg.Computers())
	log.Debug().Msgf("routing %d frontend platforms to the MiSTer", registry.Len())

	client := remote.NewClient(cfg.APIURL(), httpclient.NewClientFromConfig(cfg))
	store := arcadedb.NewStore(cfg.ArcadeDBPath())

	return &services{
		store: store,
		menu:  menu.NewBuilder(store, lookup.NewRemote(client, registry), registry),
		coordinator: launcher.NewCoordinator(
			client,
			notifier,
			launcher.SettingsFromConfig(cfg),
		),
	}, nil
}

func printNotifier(w io.Writer) launcher.Notifier {
	return launcher.NotifierFunc(func(msg string) {
		_, _ = fmt.Fprintln(w, msg)
	})
}
