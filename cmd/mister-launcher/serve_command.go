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
	"os"
	"os/signal"
	"syscall"

	"github.com/ZaparooProject/mister-launcher/pkg/api"
	"github.com/ZaparooProject/mister-launcher/pkg/api/middleware"
	"github.com/ZaparooProject/mister-launcher/pkg/config"
	"github.com/spf13/cobra"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the local HTTP bridge for frontend plugins",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := ctx.ensureConfig(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if listen == "" {
				listen = cfg.ServerListen()
			}

			svc, err := ctx.services(printNotifier(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}

			sigCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			limiter := middleware.NewLaunchRateLimiter()
			limiter.StartCleanup(sigCtx)

			handler := api.NewRouter(&api.Env{
				Menu:        svc.menu,
				Launcher:    svc.coordinator,
				LaunchLimit: limiter,
				Version:     config.AppVersion,
				AllowedIPs:  cfg.AllowedIPs(),
			})

			return api.Serve(sigCtx, listen, handler)
		},
	}
	cmd.Flags().StringVarP(&listen, "listen", "l", "", "Address to listen on, defaults to the config value")
	return cmd
}
