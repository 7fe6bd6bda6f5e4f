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
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vikey/vikey-bridge/keymap"
	"golang.org/x/net/websocket"
)

func TestControllersSortedByPriority(t *testing.T) {
	require.NotEmpty(t, Controllers)
	for i := 1; i < len(Controllers); i++ {
		assert.LessOrEqual(t, Controllers[i-1].priority, Controllers[i].priority)
	}
	assert.Equal(t, "remote", Controllers[0].Name)
	assert.Equal(t, "null", Controllers[len(Controllers)-1].Name)
}

func TestRemoteControllerWithoutURL(t *testing.T) {
	_, err := InitRemoteController(Options{Logger: zerolog.Nop()})
	var unsupported UnsupportedPlatformError
	assert.True(t, errors.As(err, &unsupported))
}

func TestRemoteControllerSendsKeys(t *testing.T) {
	messages := make(chan string, 4)
	server := httptest.NewServer(websocket.Handler(func(ws *websocket.Conn) {
		for {
			var message string
			if err := websocket.Message.Receive(ws, &message); err != nil {
				close(messages)
				return
			}
			messages <- message
		}
	}))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	controller, err := InitRemoteController(Options{RemoteURL: url, Logger: zerolog.Nop()})
	require.NoError(t, err)

	require.NoError(t, controller.KeyboardKey(keymap.VKA, true))
	require.NoError(t, controller.KeyboardKey(keymap.VKA, false))
	require.NoError(t, controller.KeyboardKey(keymap.VKLeftArrow, true))
	require.NoError(t, controller.Close())

	var got []string
	for message := range messages {
		got = append(got, message)
	}
	assert.Equal(t, []string{"k0;1", "k0;0", "k123;1"}, got)
}

func TestRemoteControllerReconnects(t *testing.T) {
	messages := make(chan string, 4)
	connections := make(chan struct{}, 4)
	server := httptest.NewServer(websocket.Handler(func(ws *websocket.Conn) {
		connections <- struct{}{}
		for {
			var message string
			if err := websocket.Message.Receive(ws, &message); err != nil {
				return
			}
			messages <- message
		}
	}))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	controller, err := InitRemoteController(Options{RemoteURL: url, Logger: zerolog.Nop()})
	require.NoError(t, err)
	defer controller.Close()
	<-connections

	// drop the link from our side, the next key must redial
	remote := controller.(*remoteController)
	require.NoError(t, remote.ws.Close())
	require.NoError(t, controller.KeyboardKey(keymap.VKB, true))
	<-connections
	assert.Equal(t, "k11;1", <-messages)

	// closed controllers dial again on use as well
	require.NoError(t, controller.Close())
	require.NoError(t, controller.KeyboardKey(keymap.VKB, false))
	assert.Equal(t, "k11;0", <-messages)
}

func TestRemoteControllerUnreachable(t *testing.T) {
	server := httptest.NewServer(websocket.Handler(func(ws *websocket.Conn) {
		var message string
		websocket.Message.Receive(ws, &message)
	}))
	url := "ws" + strings.TrimPrefix(server.URL, "http")
	controller, err := InitRemoteController(Options{RemoteURL: url, Logger: zerolog.Nop()})
	require.NoError(t, err)
	controller.(*remoteController).ws.Close()
	server.Close()
	assert.Error(t, controller.KeyboardKey(keymap.VKA, true))
}

func TestNullController(t *testing.T) {
	var out strings.Builder
	controller, err := InitNullController(Options{Logger: zerolog.New(&out)})
	require.NoError(t, err)
	require.NoError(t, controller.KeyboardKey(keymap.VKSpace, true))
	assert.Contains(t, out.String(), `"key":"kVK_Space"`)
	assert.NoError(t, controller.Close())
}
