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
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/vikey/vikey-bridge/keymap"
	"golang.org/x/net/websocket"
)

const defaultOrigin = "http://localhost/"

// remoteController forwards virtual keycodes to a remote keyboard target
// as "k<key>;<press>" websocket messages. A failed send redials once.
type remoteController struct {
	mutex  sync.Mutex
	url    string
	origin string
	ws     *websocket.Conn
	log    zerolog.Logger
}

func init() {
	RegisterController("remote", InitRemoteController, 0)
}

func InitRemoteController(options Options) (Controller, error) {
	if options.RemoteURL == "" {
		return nil, UnsupportedPlatformError{errors.New("no remote URL configured")}
	}
	p := &remoteController{
		url:    options.RemoteURL,
		origin: options.Origin,
		log:    options.Logger.With().Str("controller", "remote").Str("remote", options.RemoteURL).Logger(),
	}
	if p.origin == "" {
		p.origin = defaultOrigin
	}
	if err := p.dial(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *remoteController) dial() error {
	ws, err := websocket.Dial(p.url, "", p.origin)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", p.url, err)
	}
	p.ws = ws
	return nil
}

func (p *remoteController) Close() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.ws == nil {
		return nil
	}
	err := p.ws.Close()
	p.ws = nil
	return err
}

func (p *remoteController) KeyboardKey(key keymap.VirtualKey, press bool) error {
	pressValue := 0
	if press {
		pressValue = 1
	}
	message := fmt.Sprintf("k%d;%d", key, pressValue)
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.ws != nil {
		err := websocket.Message.Send(p.ws, message)
		if err == nil {
			p.log.Debug().Stringer("key", key).Bool("press", press).Msg("sent")
			return nil
		}
		p.log.Warn().Err(err).Msg("send failed, reconnecting")
		p.ws.Close()
		p.ws = nil
	}
	if err := p.dial(); err != nil {
		return err
	}
	if err := websocket.Message.Send(p.ws, message); err != nil {
		return fmt.Errorf("send %v: %w", key, err)
	}
	p.log.Info().Msg("reconnected")
	return nil
}
