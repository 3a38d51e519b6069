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

package platforms

import "strings"

const (
	CategoryConsole  = "Console"
	CategoryComputer = "Computer"
	CategoryHandheld = "Handheld"
	CategoryOther    = "Other"
)

// System is a MiSTer core system as reported by the Remote API search
// results.
type System struct {
	ID       string
	Category string
}

// Systems lists the MiSTer system IDs known to the Remote API. It's only used
// to flag likely typos in platform mappings; unknown IDs still work.
var Systems = []System{
	{ID: "AdventureVision", Category: CategoryConsole},
	{ID: "Arcadia", Category: CategoryConsole},
	{ID: "Astrocade", Category: CategoryConsole},
	{ID: "Atari2600", Category: CategoryConsole},
	{ID: "Atari5200", Category: CategoryConsole},
	{ID: "Atari7800", Category: CategoryConsole},
	{ID: "AtariLynx", Category: CategoryHandheld},
	{ID: "CasioPV1000", Category: CategoryConsole},
	{ID: "ChannelF", Category: CategoryConsole},
	{ID: "ColecoVision", Category: CategoryConsole},
	{ID: "CreatiVision", Category: CategoryConsole},
	{ID: "FDS", Category: CategoryConsole},
	{ID: "Gamate", Category: CategoryHandheld},
	{ID: "Gameboy", Category: CategoryHandheld},
	{ID: "GameboyColor", Category: CategoryHandheld},
	{ID: "Gameboy2P", Category: CategoryHandheld},
	{ID: "GameGear", Category: CategoryHandheld},
	{ID: "GameNWatch", Category: CategoryHandheld},
	{ID: "GBA", Category: CategoryHandheld},
	{ID: "GBA2P", Category: CategoryHandheld},
	{ID: "Genesis", Category: CategoryConsole},
	{ID: "Intellivision", Category: CategoryConsole},
	{ID: "Jaguar", Category: CategoryConsole},
	{ID: "MasterSystem", Category: CategoryConsole},
	{ID: "MegaCD", Category: CategoryConsole},
	{ID: "MegaDuck", Category: CategoryHandheld},
	{ID: "NeoGeo", Category: CategoryConsole},
	{ID: "NeoGeoCD", Category: CategoryConsole},
	{ID: "NES", Category: CategoryConsole},
	{ID: "NESMusic", Category: CategoryOther},
	{ID: "Nintendo64", Category: CategoryConsole},
	{ID: "Odyssey2", Category: CategoryConsole},
	{ID: "PocketChallengeV2", Category: CategoryHandheld},
	{ID: "PokemonMini", Category: CategoryHandheld},
	{ID: "PSX", Category: CategoryConsole},
	{ID: "Sega32X", Category: CategoryConsole},
	{ID: "SG1000", Category: CategoryConsole},
	{ID: "SuperGameboy", Category: CategoryConsole},
	{ID: "SuperVision", Category: CategoryHandheld},
	{ID: "Saturn", Category: CategoryConsole},
	{ID: "SNES", Category: CategoryConsole},
	{ID: "SNESMusic", Category: CategoryOther},
	{ID: "SuperGrafx", Category: CategoryConsole},
	{ID: "TurboGrafx16", Category: CategoryConsole},
	{ID: "TurboGrafx16CD", Category: CategoryConsole},
	{ID: "VC4000", Category: CategoryConsole},
	{ID: "Vectrex", Category: CategoryConsole},
	{ID: "WonderSwan", Category: CategoryHandheld},
	{ID: "WonderSwanColor", Category: CategoryHandheld},
	{ID: "Acorn Atom", Category: CategoryComputer},
	{ID: "AcornElectron", Category: CategoryComputer},
	{ID: "AliceMC10", Category: CategoryComputer},
	{ID: "Amiga", Category: CategoryComputer},
	{ID: "Amstrad", Category: CategoryComputer},
	{ID: "AmstradPCW", Category: CategoryComputer},
	{ID: "ao486", Category: CategoryComputer},
	{ID: "Apogee", Category: CategoryComputer},
	{ID: "AppleI", Category: CategoryComputer},
	{ID: "AppleII", Category: CategoryComputer},
	{ID: "Aquarius", Category: CategoryComputer},
	{ID: "Atari800", Category: CategoryComputer},
	{ID: "AtariST", Category: CategoryComputer},
	{ID: "BBCMicro", Category: CategoryComputer},
	{ID: "BK0011M", Category: CategoryComputer},
	{ID: "C16", Category: CategoryComputer},
	{ID: "C64", Category: CategoryComputer},
	{ID: "CoCo2", Category: CategoryComputer},
	{ID: "EDSAC", Category: CategoryComputer},
	{ID: "Galaksija", Category: CategoryComputer},
	{ID: "Interact", Category: CategoryComputer},
	{ID: "Jupiter", Category: CategoryComputer},
	{ID: "Laser", Category: CategoryComputer},
	{ID: "Lynx48", Category: CategoryComputer},
	{ID: "MacPlus", Category: CategoryComputer},
	{ID: "MSX", Category: CategoryComputer},
	{ID: "MultiComp", Category: CategoryComputer},
	{ID: "Orao", Category: CategoryComputer},
	{ID: "Oric", Category: CategoryComputer},
	{ID: "PCXT", Category: CategoryComputer},
	{ID: "PDP1", Category: CategoryComputer},
	{ID: "PET2001", Category: CategoryComputer},
	{ID: "PMD85", Category: CategoryComputer},
	{ID: "QL", Category: CategoryComputer},
	{ID: "RX78", Category: CategoryComputer},
	{ID: "SAMCoupe", Category: CategoryComputer},
	{ID: "SordM5", Category: CategoryComputer},
	{ID: "Specialist", Category: CategoryComputer},
	{ID: "SVI328", Category: CategoryComputer},
	{ID: "TatungEinstein", Category: CategoryComputer},
	{ID: "TI994A", Category: CategoryComputer},
	{ID: "TomyTutor", Category: CategoryComputer},
	{ID: "TRS80", Category: CategoryComputer},
	{ID: "TSConf", Category: CategoryComputer},
	{ID: "UK101", Category: CategoryComputer},
	{ID: "Vector06C", Category: CategoryComputer},
	{ID: "VIC20", Category: CategoryComputer},
	{ID: "X68000", Category: CategoryComputer},
	{ID: "ZX81", Category: CategoryComputer},
	{ID: "ZXSpectrum", Category: CategoryComputer},
	{ID: "ZXNext", Category: CategoryComputer},
	{ID: "Arcade", Category: CategoryOther},
}

// LookupSystem finds a known system by exact ID.
func LookupSystem(id string) (System, bool) {
	for _, s := range Systems {
		if s.ID == id {
			return s, true
		}
	}
	return System{}, false
}

// LookupSystemFold finds a known system ignoring case. Useful for spotting
// mappings that differ from a real ID only by case, which the MiSTer rejects.
func LookupSystemFold(id string) (System, bool) {
	for _, s := range Systems {
		if strings.EqualFold(s.ID, id) {
			return s, true
		}
	}
	return System{}, false
}
