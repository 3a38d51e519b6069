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
	"io"
	"os"
	"strconv"

	"github.com/ZaparooProject/mister-launcher/pkg/database/arcadedb"
	"github.com/ZaparooProject/mister-launcher/pkg/database/arcadedb/builder"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newBuildDBCommand(ctx *commandContext) *cobra.Command {
	opts := builder.Options{}

	cmd := &cobra.Command{
		Use:   "build-db",
		Short: "Build the arcade database from MAME metadata and a MiSTer share",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := ctx.ensureConfig(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if opts.Output == "" {
				opts.Output = cfg.ArcadeDBPath()
			}
			if !cmd.Flags().Changed("appliance-path") {
				opts.AppliancePath = cfg.ArcadePath()
			}

			stats, err := builder.Build(cmd.Context(), opts)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Metric", "Count"},
				[][]string{
					{"MAME games", strconv.Itoa(stats.MameGames)},
					{"MRA files", strconv.Itoa(stats.MRAFiles)},
					{"Games written", strconv.Itoa(stats.Games)},
					{"Duplicates skipped", strconv.Itoa(stats.Skipped)},
					{"Unreadable MRAs", strconv.Itoa(stats.Errors)},
				},
				[]columnAlignment{alignLeft, alignRight},
			))
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Arcade database written to %s\n", opts.Output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.MameXML, "mame-xml", "m", "", "LaunchBox MAME.xml or mame -listxml output")
	cmd.Flags().StringVarP(&opts.ShareRoot, "share", "s", "", "Mounted MiSTer SD card containing _Arcade")
	cmd.Flags().StringVar(&opts.AppliancePath, "appliance-path", "",
		"Path of the SD card on the MiSTer, defaults to the configured arcade path")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Database file, defaults to the configured path")
	cmd.Flags().StringSliceVar(&opts.Folders, "folder", builder.DefaultFolders, "Folders under _Arcade to scan")
	_ = cmd.MarkFlagRequired("mame-xml")
	_ = cmd.MarkFlagRequired("share")

	return cmd
}

func newExportDBCommand(ctx *commandContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export-db",
		Short: "Export the arcade database as CSV",
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			cfg, err := ctx.ensureConfig(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, createErr := os.Create(output) //nolint:gosec // user supplied output path
				if createErr != nil {
					return fmt.Errorf("failed to create export file: %w", createErr)
				}
				defer func() {
					if closeErr := f.Close(); closeErr != nil && err == nil {
						err = fmt.Errorf("failed to close export file: %w", closeErr)
					}
				}()
				w = f
			}

			store := arcadedb.NewStore(cfg.ArcadeDBPath())
			count, err := store.ExportCSV(cmd.Context(), w)
			if errors.Is(err, arcadedb.ErrNotBuilt) {
				return fmt.Errorf("%w, run build-db first", err)
			} else if err != nil {
				return err
			}

			log.Info().Msgf("exported %d arcade games", count)
			if w != cmd.OutOrStdout() {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d games to %s\n", count, output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "CSV file to write, defaults to stdout")
	return cmd
}
