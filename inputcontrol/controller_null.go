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
	"github.com/rs/zerolog"
	"github.com/vikey/vikey-bridge/keymap"
)

type nullController struct {
	log zerolog.Logger
}

func init() {
	RegisterController("null", InitNullController, 1000)
}

func InitNullController(options Options) (Controller, error) {
	return &nullController{
		log: options.Logger.With().Str("controller", "null").Logger(),
	}, nil
}

func (p *nullController) Close() error {
	return nil
}

func (p *nullController) KeyboardKey(key keymap.VirtualKey, press bool) error {
	p.log.Info().Stringer("key", key).Bool("press", press).Msg("KeyboardKey")
	return nil
}
