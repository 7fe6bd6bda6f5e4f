//go:build uinput

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

	"github.com/bendahl/uinput"
	"github.com/rs/zerolog"
	"github.com/vikey/vikey-bridge/keymap"
)

// Loops translated keys back into the local machine, only works with
// QWERTY. Useful to check a translation without a remote target.
var ukeysMap = map[keymap.VirtualKey]int{
	keymap.VKA:            uinput.KeyA,
	keymap.VKB:            uinput.KeyB,
	keymap.VKC:            uinput.KeyC,
	keymap.VKD:            uinput.KeyD,
	keymap.VKE:            uinput.KeyE,
	keymap.VKF:            uinput.KeyF,
	keymap.VKG:            uinput.KeyG,
	keymap.VKH:            uinput.KeyH,
	keymap.VKI:            uinput.KeyI,
	keymap.VKJ:            uinput.KeyJ,
	keymap.VKK:            uinput.KeyK,
	keymap.VKL:            uinput.KeyL,
	keymap.VKM:            uinput.KeyM,
	keymap.VKN:            uinput.KeyN,
	keymap.VKO:            uinput.KeyO,
	keymap.VKP:            uinput.KeyP,
	keymap.VKQ:            uinput.KeyQ,
	keymap.VKR:            uinput.KeyR,
	keymap.VKS:            uinput.KeyS,
	keymap.VKT:            uinput.KeyT,
	keymap.VKU:            uinput.KeyU,
	keymap.VKV:            uinput.KeyV,
	keymap.VKW:            uinput.KeyW,
	keymap.VKX:            uinput.KeyX,
	keymap.VKY:            uinput.KeyY,
	keymap.VKZ:            uinput.KeyZ,
	keymap.VK0:            uinput.Key0,
	keymap.VK1:            uinput.Key1,
	keymap.VK2:            uinput.Key2,
	keymap.VK3:            uinput.Key3,
	keymap.VK4:            uinput.Key4,
	keymap.VK5:            uinput.Key5,
	keymap.VK6:            uinput.Key6,
	keymap.VK7:            uinput.Key7,
	keymap.VK8:            uinput.Key8,
	keymap.VK9:            uinput.Key9,
	keymap.VKSpace:        uinput.KeySpace,
	keymap.VKDelete:       uinput.KeyBackspace,
	keymap.VKTab:          uinput.KeyTab,
	keymap.VKReturn:       uinput.KeyEnter,
	keymap.VKEscape:       uinput.KeyEsc,
	keymap.VKLeftArrow:    uinput.KeyLeft,
	keymap.VKRightArrow:   uinput.KeyRight,
	keymap.VKDownArrow:    uinput.KeyDown,
	keymap.VKUpArrow:      uinput.KeyUp,
	keymap.VKPeriod:       uinput.KeyDot,
	keymap.VKComma:        uinput.KeyComma,
	keymap.VKSlash:        uinput.KeySlash,
	keymap.VKSemicolon:    uinput.KeySemicolon,
	keymap.VKQuote:        uinput.KeyApostrophe,
	keymap.VKLeftBracket:  uinput.KeyLeftbrace,
	keymap.VKRightBracket: uinput.KeyRightbrace,
	keymap.VKBackslash:    uinput.KeyBackslash,
	keymap.VKMinus:        uinput.KeyMinus,
	keymap.VKEqual:        uinput.KeyEqual,
	keymap.VKGrave:        uinput.KeyGrave,
}

type uinputController struct {
	keyboard uinput.Keyboard
	log      zerolog.Logger
}

func init() {
	RegisterController("uinput", InitUinputController, 1)
}

func InitUinputController(options Options) (Controller, error) {
	if options.NoLoopback {
		return nil, UnsupportedPlatformError{errors.New("local injection would loop back into the event source")}
	}
	keyboard, err := uinput.CreateKeyboard("/dev/uinput", []byte("vikey-bridge-keyboard"))
	if err != nil {
		return nil, UnsupportedPlatformError{err}
	}
	return &uinputController{
		keyboard: keyboard,
		log:      options.Logger.With().Str("controller", "uinput").Logger(),
	}, nil
}

func (p *uinputController) Close() error {
	return p.keyboard.Close()
}

func (p *uinputController) KeyboardKey(key keymap.VirtualKey, press bool) error {
	uinputKey, found := ukeysMap[key]
	if !found {
		return fmt.Errorf("unsupported key: %v", key)
	}
	if press {
		return p.keyboard.KeyDown(uinputKey)
	}
	return p.keyboard.KeyUp(uinputKey)
}
