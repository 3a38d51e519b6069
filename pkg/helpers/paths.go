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

package helpers

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ZaparooProject/mister-launcher/pkg/config"
	"github.com/adrg/xdg"
)

type PathInfo struct {
	Path      string
	Filename  string
	Extension string
	Name      string
}

// GetPathInfo splits a path on both "/" and "\" regardless of the host OS.
// Frontend paths are usually Windows paths while MiSTer paths are always
// Unix paths, and both pass through here.
func GetPathInfo(path string) PathInfo {
	info := PathInfo{Path: path}
	info.Filename = getPathBase(path)
	info.Extension = getPathExt(info.Filename)
	info.Name = strings.TrimSuffix(info.Filename, info.Extension)
	return info
}

// GetPathName returns the file name without its extension.
func GetPathName(path string) string {
	return GetPathInfo(path).Name
}

// GetPathExt returns the extension including the leading dot, or an empty
// string if there isn't one.
func GetPathExt(path string) string {
	return GetPathInfo(path).Extension
}

func getPathBase(path string) string {
	i := strings.LastIndexAny(path, `/\`)
	if i < 0 {
		return path
	}
	return path[i+1:]
}

func getPathExt(base string) string {
	if base == "" || base == "." || base == ".." {
		return ""
	}
	lastDot := strings.LastIndex(base, ".")
	if lastDot <= 0 {
		return ""
	}
	return base[lastDot:]
}

// JoinArcadePath prefixes a MiSTer path with a base directory, adding a "/"
// separator only when the base doesn't already end with one.
func JoinArcadePath(base, path string) string {
	base = strings.TrimSpace(base)
	if strings.HasSuffix(base, "/") {
		return base + path
	}
	return base + "/" + path
}

func ExeDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Dir(exe)
}

var (
	userDirOnce        sync.Once
	userDirCache       string
	userDirCacheExists bool
)

// HasUserDir checks for a "user" directory next to the executable, used for
// portable installs such as a copy inside the frontend's plugin folder.
func HasUserDir() (string, bool) {
	userDirOnce.Do(func() {
		exeDir := os.Getenv(config.AppEnv)
		if exeDir == "" {
			exe, err := os.Executable()
			if err != nil {
				return
			}
			exeDir = filepath.Dir(exe)
		}

		userDir := filepath.Join(exeDir, config.UserDir)
		info, err := os.Stat(userDir)
		if err != nil || !info.IsDir() {
			return
		}

		userDirCache = userDir
		userDirCacheExists = true
	})

	return userDirCache, userDirCacheExists
}

func ConfigDir() string {
	if v, ok := HasUserDir(); ok {
		return v
	}
	return filepath.Join(xdg.ConfigHome, config.AppName)
}

func DataDir() string {
	if v, ok := HasUserDir(); ok {
		return v
	}
	return filepath.Join(xdg.DataHome, config.AppName)
}

// EnsureDirectories creates the config and data directories.
func EnsureDirectories() error {
	for _, dir := range []string{ConfigDir(), DataDir()} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return err //nolint:wrapcheck // path is already in the error
		}
	}
	return nil
}
