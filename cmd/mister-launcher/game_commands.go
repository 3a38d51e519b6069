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
	"strconv"

	"github.com/ZaparooProject/mister-launcher/pkg/menu"
	"github.com/spf13/cobra"
)

var errIndexOutOfRange = errors.New("menu index out of range")

func addSelectionFlags(cmd *cobra.Command, sel *menu.Selection) {
	cmd.Flags().StringVarP(&sel.Platform, "platform", "p", "", "Frontend platform name, e.g. Arcade")
	cmd.Flags().StringVarP(&sel.ApplicationPath, "path", "f", "", "Frontend application path of the game")
	_ = cmd.MarkFlagRequired("platform")
	_ = cmd.MarkFlagRequired("path")
}

func newMenuCommand(ctx *commandContext) *cobra.Command {
	var sel menu.Selection

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Show the MiSTer menu entries for a frontend game",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := ctx.services(printNotifier(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}

			items, err := svc.menu.Items(cmd.Context(), sel)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(items) == 0 {
				_, _ = fmt.Fprintln(out, "No MiSTer games found.")
				return nil
			}

			rows := make([][]string, 0, len(items))
			for i := range items {
				c := &items[i].Candidate
				rows = append(rows, []string{
					strconv.Itoa(items[i].Index),
					items[i].Caption,
					c.Description,
					c.PathOrEmpty(),
					yesNo(c.Launchable()),
				})
			}
			_, _ = fmt.Fprintln(out, renderTable(
				[]string{"#", "Caption", "Description", "Path", "Found"},
				rows,
				[]columnAlignment{alignRight},
			))
			return nil
		},
	}
	addSelectionFlags(cmd, &sel)
	return cmd
}

func newLaunchCommand(ctx *commandContext) *cobra.Command {
	var sel menu.Selection
	var index int

	cmd := &cobra.Command{
		Use:   "launch",
		Short: "Launch a frontend game on the MiSTer",
		Long: "Launch a frontend game on the MiSTer. The index picks an entry " +
			"from the menu command, the first entry is the best match.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := ctx.services(printNotifier(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}

			candidates, err := svc.menu.Candidates(cmd.Context(), sel)
			if err != nil {
				return err
			}
			if index < 0 || index >= len(candidates) {
				return fmt.Errorf("%w: %d of %d", errIndexOutOfRange, index, len(candidates))
			}

			return svc.coordinator.Launch(cmd.Context(), candidates[index])
		},
	}
	addSelectionFlags(cmd, &sel)
	cmd.Flags().IntVarP(&index, "index", "i", 0, "Menu entry to launch")
	return cmd
}
