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

// Package relay pulses a USB serial relay board. Wired across a button, such
// as the input switch of a video scaler, it lets a launch press the button.
package relay

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"go.bug.st/serial"
)

const (
	DefaultBaudRate = 9600
	DefaultPulse    = 200 * time.Millisecond
	DefaultChannel  = 1
)

// OpenFunc opens a serial port for writing.
type OpenFunc func(name string, mode *serial.Mode) (io.WriteCloser, error)

func openSerial(name string, mode *serial.Mode) (io.WriteCloser, error) {
	port, err := serial.Open(name, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port: %w", err)
	}
	return port, nil
}

type Options struct {
	Clock    clockwork.Clock
	Open     OpenFunc
	BaudRate int
	Channel  int
	Pulse    time.Duration
}

func (o *Options) setDefaults() {
	if o.Clock == nil {
		o.Clock = clockwork.NewRealClock()
	}
	if o.Open == nil {
		o.Open = openSerial
	}
	if o.BaudRate <= 0 {
		o.BaudRate = DefaultBaudRate
	}
	if o.Channel <= 0 {
		o.Channel = DefaultChannel
	}
	if o.Pulse <= 0 {
		o.Pulse = DefaultPulse
	}
}

func command(channel int, closed bool) []byte {
	state := 0
	if closed {
		state = 1
	}
	return fmt.Appendf(nil, "AT+CH%d=%d\r\n", channel, state)
}

// Pulse closes the relay, holds it for the pulse duration and opens it
// again. The relay is opened even if ctx is cancelled during the pulse.
//
//nolint:gocritic // options struct passed by value
func Pulse(ctx context.Context, port string, opts Options) (err error) {
	opts.setDefaults()

	log.Debug().Msgf("pulsing relay channel %d on %s", opts.Channel, port)
	p, err := opts.Open(port, &serial.Mode{
		BaudRate: opts.BaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return fmt.Errorf("failed to open relay port %s: %w", port, err)
	}
	defer func() {
		if closeErr := p.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msgf("failed to close relay port %s", port)
		}
	}()

	if _, err := p.Write(command(opts.Channel, true)); err != nil {
		return fmt.Errorf("failed to close relay: %w", err)
	}

	timer := opts.Clock.NewTimer(opts.Pulse)
	defer timer.Stop()
	var waitErr error
	select {
	case <-ctx.Done():
		waitErr = ctx.Err()
	case <-timer.Chan():
	}

	if _, err := p.Write(command(opts.Channel, false)); err != nil {
		return errors.Join(waitErr, fmt.Errorf("failed to open relay: %w", err))
	}
	if waitErr != nil {
		return fmt.Errorf("relay pulse interrupted: %w", waitErr)
	}
	return nil
}

// Ports lists the serial ports available for a relay.
func Ports() ([]string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("failed to get serial ports list: %w", err)
	}
	return ports, nil
}
