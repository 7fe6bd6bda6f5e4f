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

// Package dbusengine exposes the bridge on the session bus with the key
// event method an IBus engine receives, so an input method can forward
// its key events to it.
package dbusengine

import (
	"errors"
	"fmt"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"
	"github.com/rs/zerolog"
	"github.com/vikey/vikey-bridge/keymap"
)

const (
	BusName   = "org.vikey.Bridge"
	Path      = dbus.ObjectPath("/org/vikey/Engine")
	Interface = "org.vikey.Engine"

	// ibus/ibustypes.h IBUS_RELEASE_MASK
	releaseMask uint32 = 1 << 30
)

const introspectXML = `
<node>
	<interface name="` + Interface + `">
		<method name="ProcessKeyEvent">
			<arg direction="in" type="u" name="keyval"/>
			<arg direction="in" type="u" name="keycode"/>
			<arg direction="in" type="u" name="state"/>
			<arg direction="out" type="b" name="handled"/>
		</method>
		<method name="SetEnabled">
			<arg direction="in" type="b" name="enabled"/>
		</method>
		<method name="Enabled">
			<arg direction="out" type="b" name="enabled"/>
		</method>
	</interface>` + introspect.IntrospectDeclarationString + `</node>`

type KeyHandler interface {
	KeyEvent(event keymap.Event, press bool) (bool, error)
	SetEnabled(enabled bool)
	Enabled() bool
}

type Engine struct {
	handler KeyHandler
	log     zerolog.Logger
}

func NewEngine(handler KeyHandler, logger zerolog.Logger) *Engine {
	return &Engine{
		handler: handler,
		log:     logger.With().Str("subsystem", "dbusengine").Logger(),
	}
}

// ProcessKeyEvent receives an evdev keycode together with its keysym.
// Returning false lets the input method pass the key through.
func (e *Engine) ProcessKeyEvent(keyval, keycode, state uint32) (bool, *dbus.Error) {
	event := keymap.FullEvent(keymap.ScancodeFromEvdev(keycode), keyval)
	handled, err := e.handler.KeyEvent(event, state&releaseMask == 0)
	if err != nil {
		e.log.Warn().Err(err).Uint32("keyval", keyval).Uint32("keycode", keycode).Msg("key event failed")
		return false, nil
	}
	return handled, nil
}

// SetEnabled lets the input method switch translation off, for example
// from its toggle hotkey. Keys then pass through untouched.
func (e *Engine) SetEnabled(enabled bool) *dbus.Error {
	e.handler.SetEnabled(enabled)
	return nil
}

func (e *Engine) Enabled() (bool, *dbus.Error) {
	return e.handler.Enabled(), nil
}

// Serve exports the engine on bus and claims BusName.
func (e *Engine) Serve(bus *dbus.Conn) error {
	if err := bus.Export(e, Path, Interface); err != nil {
		return fmt.Errorf("export engine: %w", err)
	}
	if err := bus.Export(introspect.Introspectable(introspectXML), Path,
		"org.freedesktop.DBus.Introspectable"); err != nil {
		return fmt.Errorf("export introspection: %w", err)
	}
	reply, err := bus.RequestName(BusName, dbus.NameFlagDoNotQueue)
	if err != nil {
		return fmt.Errorf("request name %s: %w", BusName, err)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		return errors.New("name " + BusName + " already taken")
	}
	e.log.Info().Str("name", BusName).Str("path", string(Path)).Msg("engine exported")
	return nil
}
