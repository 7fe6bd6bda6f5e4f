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

package bridge

import (
	"errors"
	"strconv"
	"strings"

	"github.com/vikey/vikey-bridge/keymap"
)

// ParseCommand parses "e<scancode>;<keysym>;<press>". An empty scancode or
// keysym field marks the code as absent.
func ParseCommand(command string) (event keymap.Event, press bool, err error) {
	if len(command) == 0 {
		return event, false, errors.New("empty command")
	}
	if command[0] != 'e' {
		return event, false, errors.New("unsupported command")
	}
	arguments := strings.Split(command[1:], ";")
	if len(arguments) != 3 {
		return event, false, errors.New("wrong number of arguments")
	}
	if arguments[0] != "" {
		if event.Scancode, err = parseCode(arguments[0]); err != nil {
			return event, false, err
		}
		event.HasScancode = true
	}
	if arguments[1] != "" {
		if event.Keysym, err = parseCode(arguments[1]); err != nil {
			return event, false, err
		}
		event.HasKeysym = true
	}
	switch arguments[2] {
	case "0":
		press = false
	case "1":
		press = true
	default:
		return event, false, errors.New("invalid press state")
	}
	return event, press, nil
}

// parseCode accepts decimal or 0x prefixed hexadecimal.
func parseCode(s string) (uint32, error) {
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
		base = 16
	}
	code, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return 0, err
	}
	return uint32(code), nil
}
