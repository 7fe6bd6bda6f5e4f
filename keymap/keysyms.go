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

package keymap

import "fmt"

// Keysym is an X11 keysym.
type Keysym = uint32

const (
	// X11/keysymdef.h
	xkBackSpace Keysym = 0xff08
	xkTab       Keysym = 0xff09
	xkReturn    Keysym = 0xff0d
	xkEscape    Keysym = 0xff1b
	xkLeft      Keysym = 0xff51
	xkUp        Keysym = 0xff52
	xkRight     Keysym = 0xff53
	xkDown      Keysym = 0xff54

	// Latin-1 keysyms equal their code points
	xkSpace        Keysym = ' '
	xkApostrophe   Keysym = '\''
	xkComma        Keysym = ','
	xkMinus        Keysym = '-'
	xkPeriod       Keysym = '.'
	xkSlash        Keysym = '/'
	xkSemicolon    Keysym = ';'
	xkEqual        Keysym = '='
	xkBracketLeft  Keysym = '['
	xkBackslash    Keysym = '\\'
	xkBracketRight Keysym = ']'
	xkGrave        Keysym = '`'

	// Offset between XK_a and XK_A
	xkCaseOffset Keysym = 'a' - 'A'
)

// Letters are listed once by their lowercase keysym, the uppercase
// keysym is added during initialisation.
var keysymLetterMap = []struct {
	keysym Keysym
	key    VirtualKey
}{
	{'a', VKA},
	{'b', VKB},
	{'c', VKC},
	{'d', VKD},
	{'e', VKE},
	{'f', VKF},
	{'g', VKG},
	{'h', VKH},
	{'i', VKI},
	{'j', VKJ},
	{'k', VKK},
	{'l', VKL},
	{'m', VKM},
	{'n', VKN},
	{'o', VKO},
	{'p', VKP},
	{'q', VKQ},
	{'r', VKR},
	{'s', VKS},
	{'t', VKT},
	{'u', VKU},
	{'v', VKV},
	{'w', VKW},
	{'x', VKX},
	{'y', VKY},
	{'z', VKZ},
}

var keysymMap = []struct {
	keysym Keysym
	key    VirtualKey
}{
	// Digits
	{'0', VK0},
	{'1', VK1},
	{'2', VK2},
	{'3', VK3},
	{'4', VK4},
	{'5', VK5},
	{'6', VK6},
	{'7', VK7},
	{'8', VK8},
	{'9', VK9},

	// Control
	{xkSpace, VKSpace},
	{xkBackSpace, VKDelete},
	{xkTab, VKTab},
	{xkReturn, VKReturn},
	{xkEscape, VKEscape},

	// Arrows
	{xkLeft, VKLeftArrow},
	{xkRight, VKRightArrow},
	{xkDown, VKDownArrow},
	{xkUp, VKUpArrow},

	// Punctuation
	{xkPeriod, VKPeriod},
	{xkComma, VKComma},
	{xkSlash, VKSlash},
	{xkSemicolon, VKSemicolon},
	{xkApostrophe, VKQuote},
	{xkBracketLeft, VKLeftBracket},
	{xkBracketRight, VKRightBracket},
	{xkBackslash, VKBackslash},
	{xkMinus, VKMinus},
	{xkEqual, VKEqual},
	{xkGrave, VKGrave},
}

var keysymTable = make(map[Keysym]VirtualKey, 2*len(keysymLetterMap)+len(keysymMap))

func addKeysym(keysym Keysym, key VirtualKey) {
	if _, found := keysymTable[keysym]; found {
		panic(fmt.Sprintf("keymap: duplicate keysym %#04x", keysym))
	}
	keysymTable[keysym] = key
}

func init() {
	for _, entry := range keysymLetterMap {
		addKeysym(entry.keysym, entry.key)
		addKeysym(entry.keysym-xkCaseOffset, entry.key)
	}
	for _, entry := range keysymMap {
		addKeysym(entry.keysym, entry.key)
	}
}

// KeysymTranslator maps X11 keysyms to virtual keycodes. Both cases of a
// letter translate to the same key.
type KeysymTranslator struct{}

func (KeysymTranslator) Translate(keysym uint32) VirtualKey {
	if key, found := keysymTable[keysym]; found {
		return key
	}
	return NoMapping
}
