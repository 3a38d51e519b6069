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

// Package launcher runs the launch sequence for a selected candidate: save
// the running game, launch the new one, then run the optional post-launch
// command.
package launcher

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ZaparooProject/mister-launcher/pkg/config"
	"github.com/ZaparooProject/mister-launcher/pkg/games"
	"github.com/ZaparooProject/mister-launcher/pkg/helpers"
	"github.com/ZaparooProject/mister-launcher/pkg/helpers/command"
	"github.com/google/shlex"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

const arcadePrefix = "_Arcade"

// Remote is the part of the MiSTer API used to launch games.
type Remote interface {
	ToggleOSD(ctx context.Context) error
	Launch(ctx context.Context, path string) error
}

// Notifier shows a message to the user.
type Notifier interface {
	Notify(msg string)
}

// NotifierFunc adapts a function to a Notifier.
type NotifierFunc func(msg string)

func (f NotifierFunc) Notify(msg string) {
	f(msg)
}

// Settings is the launch configuration, read once when the coordinator is
// created.
type Settings struct {
	PostLaunch      *config.Command
	ArcadePath      string
	AutosaveDelay   time.Duration
	TriggerAutosave bool
}

// SettingsFromConfig reads the launch settings from the config.
func SettingsFromConfig(cfg *config.Instance) Settings {
	return Settings{
		ArcadePath:      cfg.ArcadePath(),
		TriggerAutosave: cfg.TriggerAutosave(),
		AutosaveDelay:   cfg.AutosaveDelay(),
		PostLaunch:      cfg.PostLaunchCommand(),
	}
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithClock sets the clock used for delays (for testing).
func WithClock(clock clockwork.Clock) Option {
	return func(c *Coordinator) {
		c.clock = clock
	}
}

// WithExecutor sets the executor for the post-launch command.
func WithExecutor(executor command.Executor) Option {
	return func(c *Coordinator) {
		c.executor = executor
	}
}

// Coordinator launches games on a MiSTer.
type Coordinator struct {
	remote   Remote
	notifier Notifier
	clock    clockwork.Clock
	executor command.Executor
	settings Settings
}

//nolint:gocritic // settings struct copied for immutability
func NewCoordinator(remote Remote, notifier Notifier, settings Settings, opts ...Option) *Coordinator {
	c := &Coordinator{
		remote:   remote,
		notifier: notifier,
		settings: settings,
		clock:    clockwork.NewRealClock(),
		executor: &command.RealExecutor{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ResolvePath turns a catalog path into the path sent to the MiSTer. Arcade
// database paths relative to the SD card get the arcade base path in front.
func (c *Coordinator) ResolvePath(path string) string {
	if strings.HasPrefix(path, arcadePrefix) {
		return helpers.JoinArcadePath(c.settings.ArcadePath, path)
	}
	return path
}

// Launch runs the launch sequence for a candidate. A candidate that isn't on
// the MiSTer only produces a notice. Any failed step stops the sequence, is
// reported to the user and returned.
//
//nolint:gocritic // candidate passed by value
func (c *Coordinator) Launch(ctx context.Context, candidate games.Candidate) error {
	return c.LaunchNotify(ctx, candidate, c.notifier)
}

// LaunchNotify is Launch with notices sent to n instead of the coordinator's
// notifier.
//
//nolint:gocritic // candidate passed by value
func (c *Coordinator) LaunchNotify(ctx context.Context, candidate games.Candidate, n Notifier) error {
	if !candidate.Launchable() {
		n.Notify(fmt.Sprintf("Game %s not found on MiSTer!", candidate.Description))
		return nil
	}

	path := c.ResolvePath(candidate.PathOrEmpty())
	if err := c.launch(ctx, path); err != nil {
		log.Error().Err(err).Msgf("error launching MiSTer game: %s", path)
		n.Notify("Error launching MiSTer game: " + path)
		return err
	}
	log.Info().Msgf("launched MiSTer game: %s", path)

	if err := c.runPostLaunch(ctx); err != nil {
		log.Error().Err(err).Msgf("error launching MiSTer game: %s", path)
		n.Notify("Error launching MiSTer game: " + path)
		return err
	}
	return nil
}

func (c *Coordinator) launch(ctx context.Context, path string) error {
	if c.settings.TriggerAutosave {
		log.Debug().Msg("opening OSD to trigger autosave")
		if err := c.remote.ToggleOSD(ctx); err != nil {
			return fmt.Errorf("failed to trigger autosave: %w", err)
		}
		if err := sleep(ctx, c.clock, c.settings.AutosaveDelay); err != nil {
			return fmt.Errorf("autosave wait interrupted: %w", err)
		}
	}

	if err := c.remote.Launch(ctx, path); err != nil {
		return fmt.Errorf("failed to launch game: %w", err)
	}
	return nil
}

// runPostLaunch waits the post-launch command's delay and starts it. The
// process is detached and never waited on.
func (c *Coordinator) runPostLaunch(ctx context.Context) error {
	cmd := c.settings.PostLaunch
	if cmd == nil || cmd.FileName == "" {
		return nil
	}

	args, err := shlex.Split(cmd.Arguments)
	if err != nil {
		return fmt.Errorf("invalid post-launch command arguments %q: %w", cmd.Arguments, err)
	}

	if err = sleep(ctx, c.clock, cmd.Delay()); err != nil {
		return fmt.Errorf("post-launch wait interrupted: %w", err)
	}

	err = c.executor.StartDetached(command.StartOptions{HideWindow: true}, cmd.FileName, args...)
	if err != nil {
		return fmt.Errorf("failed to start post-launch command %s: %w", cmd.FileName, err)
	}
	log.Debug().Msgf("started post-launch command: %s", cmd.FileName)
	return nil
}

func sleep(ctx context.Context, clock clockwork.Clock, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := clock.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err() //nolint:wrapcheck // wrapped by callers
	case <-timer.Chan():
		return nil
	}
}
