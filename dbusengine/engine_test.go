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

package dbusengine

import (
	"errors"
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vikey/vikey-bridge/bridge"
	"github.com/vikey/vikey-bridge/keymap"
)

type handlerFunc func(event keymap.Event, press bool) (bool, error)

func (f handlerFunc) KeyEvent(event keymap.Event, press bool) (bool, error) {
	return f(event, press)
}

func (f handlerFunc) SetEnabled(bool) {}

func (f handlerFunc) Enabled() bool {
	return true
}

type pressedKeys []keymap.VirtualKey

func (p *pressedKeys) Close() error {
	return nil
}

func (p *pressedKeys) KeyboardKey(key keymap.VirtualKey, press bool) error {
	if press {
		*p = append(*p, key)
	}
	return nil
}

func newBridgeEngine(t *testing.T) (*Engine, *pressedKeys) {
	keys := &pressedKeys{}
	b, err := bridge.New(keymap.Default, keys, zerolog.Nop(), nil)
	require.NoError(t, err)
	return NewEngine(b, zerolog.Nop()), keys
}

func TestProcessKeyEvent(t *testing.T) {
	var gotEvent keymap.Event
	var gotPress bool
	engine := NewEngine(handlerFunc(func(event keymap.Event, press bool) (bool, error) {
		gotEvent, gotPress = event, press
		return keymap.Translate(event).Mapped(), nil
	}), zerolog.Nop())

	// KEY_A, XK_a
	handled, dbusErr := engine.ProcessKeyEvent(0x61, 30, 0)
	assert.Nil(t, dbusErr)
	assert.True(t, handled)
	assert.Equal(t, keymap.FullEvent(38, 0x61), gotEvent)
	assert.True(t, gotPress)

	// release of KEY_LEFTSHIFT with shift state set
	handled, dbusErr = engine.ProcessKeyEvent(0xffe1, 42, releaseMask|1)
	assert.Nil(t, dbusErr)
	assert.False(t, handled)
	assert.False(t, gotPress)
}

func TestProcessKeyEventHandlerError(t *testing.T) {
	engine := NewEngine(handlerFunc(func(keymap.Event, bool) (bool, error) {
		return true, errors.New("controller closed")
	}), zerolog.Nop())
	handled, dbusErr := engine.ProcessKeyEvent(0x61, 30, 0)
	assert.Nil(t, dbusErr)
	assert.False(t, handled)
}

func TestSetEnabled(t *testing.T) {
	engine, keys := newBridgeEngine(t)

	enabled, dbusErr := engine.Enabled()
	assert.Nil(t, dbusErr)
	assert.True(t, enabled)

	assert.Nil(t, engine.SetEnabled(false))
	enabled, _ = engine.Enabled()
	assert.False(t, enabled)
	handled, _ := engine.ProcessKeyEvent(0x61, 30, 0)
	assert.False(t, handled)
	assert.Empty(t, *keys)

	assert.Nil(t, engine.SetEnabled(true))
	handled, _ = engine.ProcessKeyEvent(0x61, 30, 0)
	assert.True(t, handled)
	assert.Equal(t, pressedKeys{keymap.VKA}, *keys)
}

func TestServe(t *testing.T) {
	bus, err := dbus.ConnectSessionBus()
	if err != nil {
		t.Skipf("no session bus: %v", err)
	}
	defer bus.Close()
	engine, _ := newBridgeEngine(t)
	if err := engine.Serve(bus); err != nil {
		t.Skipf("cannot own %s: %v", BusName, err)
	}
	defer bus.ReleaseName(BusName)

	client, err := dbus.ConnectSessionBus()
	require.NoError(t, err)
	defer client.Close()
	object := client.Object(BusName, Path)

	var handled bool
	require.NoError(t, object.Call(Interface+".ProcessKeyEvent", 0, uint32(0xff51), uint32(105), uint32(0)).Store(&handled))
	assert.True(t, handled)

	require.NoError(t, object.Call(Interface+".SetEnabled", 0, false).Err)
	var enabled bool
	require.NoError(t, object.Call(Interface+".Enabled", 0).Store(&enabled))
	assert.False(t, enabled)

	var xml string
	require.NoError(t, object.Call("org.freedesktop.DBus.Introspectable.Introspect", 0).Store(&xml))
	assert.Contains(t, xml, "ProcessKeyEvent")

	other, _ := newBridgeEngine(t)
	assert.Error(t, other.Serve(client))
}
