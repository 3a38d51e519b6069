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

package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testGame struct {
	Platform string `json:"platform" validate:"required,notblank"`
	Path     string `json:"applicationPath" validate:"required"`
}

type testParams struct {
	Games []testGame `json:"games" validate:"min=1,max=1,dive"`
	Index int        `json:"index" validate:"gte=0"`
}

func TestDecodeAndValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		wantErr   error
		wantField string
	}{
		{
			name: "valid",
			body: `{"games":[{"platform":"Arcade","applicationPath":"pacman.zip"}],"index":0}`,
		},
		{
			name:    "empty body",
			body:    "  ",
			wantErr: ErrMissingParams,
		},
		{
			name:    "bad json",
			body:    `{"games":`,
			wantErr: ErrInvalidParams,
		},
		{
			name:      "no games",
			body:      `{"games":[]}`,
			wantField: "games",
		},
		{
			name:      "blank platform",
			body:      `{"games":[{"platform":"  ","applicationPath":"pacman.zip"}]}`,
			wantField: "platform",
		},
		{
			name:      "missing path",
			body:      `{"games":[{"platform":"Arcade"}]}`,
			wantField: "applicationPath",
		},
		{
			name:      "negative index",
			body:      `{"games":[{"platform":"Arcade","applicationPath":"a"}],"index":-1}`,
			wantField: "index",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var params testParams
			err := DecodeAndValidate(strings.NewReader(tt.body), &params)

			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.wantField != "":
				var ve *Error
				require.True(t, errors.As(err, &ve), "expected validation error, got %v", err)
				require.Len(t, ve.Fields, 1)
				assert.Equal(t, tt.wantField, ve.Fields[0].Field)
			default:
				require.NoError(t, err)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	err := DefaultValidator.Validate(&testParams{Games: []testGame{{}}, Index: -2})

	var ve *Error
	require.ErrorAs(t, err, &ve)
	assert.Equal(t,
		"platform is required; applicationPath is required; index must be greater than or equal to 0",
		ve.Error(),
	)
}

func TestError_Empty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "validation failed", (&Error{}).Error())
}
