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
	"errors"
	"fmt"

	"github.com/ZaparooProject/mister-launcher/pkg/relay"
	"github.com/spf13/cobra"
)

var errNoRelayPort = errors.New("no relay port given and none configured")

func newRelayCommand(ctx *commandContext) *cobra.Command {
	var port string
	var channel int
	var list bool

	cmd := &cobra.Command{
		Use:   "relay",
		Short: "Pulse a USB serial relay, e.g. to switch video inputs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if list {
				ports, err := relay.Ports()
				if err != nil {
					return err
				}
				for _, p := range ports {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), p)
				}
				return nil
			}

			cfg, err := ctx.ensureConfig(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			rc := cfg.Relay()
			if port == "" {
				port = rc.Port
			}
			if port == "" {
				return errNoRelayPort
			}

			return relay.Pulse(cmd.Context(), port, relay.Options{
				BaudRate: rc.BaudRate,
				Pulse:    rc.Pulse(),
				Channel:  channel,
			})
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "Serial port, defaults to the configured port")
	cmd.Flags().IntVar(&channel, "channel", relay.DefaultChannel, "Relay channel to pulse")
	cmd.Flags().BoolVar(&list, "list", false, "List available serial ports")
	return cmd
}
