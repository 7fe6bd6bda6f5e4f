/*
 *    Copyright (c) 2026 The ViKey-Bridge Authors
 *
 *    This file is part of ViKey-Bridge.
 *
 *    ViKey-Bridge is free software: you can redistribute it and/or modify
 *    it under the terms of the GNU General Public License as published by
 *    the Free Software Foundation, either version 3 of the License, or
 *    (at your option) any later version.
 *
 *    ViKey-Bridge is distributed in the hope that it will be useful,
 *    but WITHOUT ANY WARRANTY; without even the implied warranty of
 *    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 *    GNU General Public License for more details.
 *
 *    You should have received a copy of the GNU General Public License
 *    along with ViKey-Bridge.  If not, see <http://www.gnu.org/licenses/>.
 */

package inputcontrol

import (
	"sort"

	"github.com/rs/zerolog"
	"github.com/vikey/vikey-bridge/keymap"
)

// Options are handed to every controller constructor. Controllers that
// cannot work with them return an UnsupportedPlatformError.
type Options struct {
	// RemoteURL is the websocket URL of the remote keyboard target.
	RemoteURL string
	// Origin is sent in the websocket handshake.
	Origin string
	// NoLoopback refuses controllers that inject into the local machine.
	// Set when the keys come from a local input method, which would see
	// the injected keys again.
	NoLoopback bool
	Logger zerolog.Logger
}

type ControllerInfo struct {
	Name string
	Init func(options Options) (Controller, error)

	priority int
}

var Controllers []ControllerInfo

func RegisterController(name string, init func(options Options) (Controller, error), priority int) {
	Controllers = append(Controllers, ControllerInfo{name, init, priority})
	sort.SliceStable(Controllers, func(i, j int) bool {
		return Controllers[i].priority < Controllers[j].priority
	})
}

type UnsupportedPlatformError struct {
	err error
}

func (e UnsupportedPlatformError) Error() string {
	return e.err.Error()
}

func (e UnsupportedPlatformError) Unwrap() error {
	return e.err
}

// Controller injects virtual keycodes into a keyboard target. It is
// never called with keymap.NoMapping.
type Controller interface {
	Close() error
	KeyboardKey(key keymap.VirtualKey, press bool) error
}
