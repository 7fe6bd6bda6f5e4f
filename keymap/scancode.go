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

// EvdevOffset is the distance between a Linux evdev key code
// (linux/input-event-codes.h) and the X11 keycode of the same key.
const EvdevOffset = 8

// X11 keycodes (evdev + EvdevOffset) of a standard pc105 keyboard
const (
	keycodeEscape       uint32 = 9
	keycode1            uint32 = 10
	keycode2            uint32 = 11
	keycode3            uint32 = 12
	keycode4            uint32 = 13
	keycode5            uint32 = 14
	keycode6            uint32 = 15
	keycode7            uint32 = 16
	keycode8            uint32 = 17
	keycode9            uint32 = 18
	keycode0            uint32 = 19
	keycodeMinus        uint32 = 20
	keycodeEqual        uint32 = 21
	keycodeBackSpace    uint32 = 22
	keycodeTab          uint32 = 23
	keycodeQ            uint32 = 24
	keycodeW            uint32 = 25
	keycodeE            uint32 = 26
	keycodeR            uint32 = 27
	keycodeT            uint32 = 28
	keycodeY            uint32 = 29
	keycodeU            uint32 = 30
	keycodeI            uint32 = 31
	keycodeO            uint32 = 32
	keycodeP            uint32 = 33
	keycodeLeftBracket  uint32 = 34
	keycodeRightBracket uint32 = 35
	keycodeReturn       uint32 = 36
	keycodeA            uint32 = 38
	keycodeS            uint32 = 39
	keycodeD            uint32 = 40
	keycodeF            uint32 = 41
	keycodeG            uint32 = 42
	keycodeH            uint32 = 43
	keycodeJ            uint32 = 44
	keycodeK            uint32 = 45
	keycodeL            uint32 = 46
	keycodeSemicolon    uint32 = 47
	keycodeApostrophe   uint32 = 48
	keycodeGrave        uint32 = 49
	keycodeBackslash    uint32 = 51
	keycodeZ            uint32 = 52
	keycodeX            uint32 = 53
	keycodeC            uint32 = 54
	keycodeV            uint32 = 55
	keycodeB            uint32 = 56
	keycodeN            uint32 = 57
	keycodeM            uint32 = 58
	keycodeComma        uint32 = 59
	keycodePeriod       uint32 = 60
	keycodeSlash        uint32 = 61
	keycodeSpace        uint32 = 65
	keycodeUp           uint32 = 111
	keycodeLeft         uint32 = 113
	keycodeRight        uint32 = 114
	keycodeDown         uint32 = 116
)

// Upper bound of the X11 keycode range.
const maxScancode = 256

var scancodeMap = []struct {
	code uint32
	key  VirtualKey
}{
	// Letters
	{keycodeA, VKA},
	{keycodeB, VKB},
	{keycodeC, VKC},
	{keycodeD, VKD},
	{keycodeE, VKE},
	{keycodeF, VKF},
	{keycodeG, VKG},
	{keycodeH, VKH},
	{keycodeI, VKI},
	{keycodeJ, VKJ},
	{keycodeK, VKK},
	{keycodeL, VKL},
	{keycodeM, VKM},
	{keycodeN, VKN},
	{keycodeO, VKO},
	{keycodeP, VKP},
	{keycodeQ, VKQ},
	{keycodeR, VKR},
	{keycodeS, VKS},
	{keycodeT, VKT},
	{keycodeU, VKU},
	{keycodeV, VKV},
	{keycodeW, VKW},
	{keycodeX, VKX},
	{keycodeY, VKY},
	{keycodeZ, VKZ},

	// Digits
	{keycode1, VK1},
	{keycode2, VK2},
	{keycode3, VK3},
	{keycode4, VK4},
	{keycode5, VK5},
	{keycode6, VK6},
	{keycode7, VK7},
	{keycode8, VK8},
	{keycode9, VK9},
	{keycode0, VK0},

	// Control
	{keycodeSpace, VKSpace},
	{keycodeBackSpace, VKDelete},
	{keycodeTab, VKTab},
	{keycodeReturn, VKReturn},
	{keycodeEscape, VKEscape},

	// Arrows
	{keycodeLeft, VKLeftArrow},
	{keycodeRight, VKRightArrow},
	{keycodeDown, VKDownArrow},
	{keycodeUp, VKUpArrow},

	// Punctuation
	{keycodePeriod, VKPeriod},
	{keycodeComma, VKComma},
	{keycodeSlash, VKSlash},
	{keycodeSemicolon, VKSemicolon},
	{keycodeApostrophe, VKQuote},
	{keycodeLeftBracket, VKLeftBracket},
	{keycodeRightBracket, VKRightBracket},
	{keycodeBackslash, VKBackslash},
	{keycodeMinus, VKMinus},
	{keycodeEqual, VKEqual},
	{keycodeGrave, VKGrave},
}

var scancodeTable [maxScancode]VirtualKey

func init() {
	for i := range scancodeTable {
		scancodeTable[i] = NoMapping
	}
	for _, entry := range scancodeMap {
		if scancodeTable[entry.code] != NoMapping {
			panic(fmt.Sprintf("keymap: duplicate scancode %d", entry.code))
		}
		scancodeTable[entry.code] = entry.key
	}
}

// ScancodeTranslator maps X11 keycodes to virtual keycodes.
type ScancodeTranslator struct{}

// Translate returns NoMapping for every code outside the curated set.
func (ScancodeTranslator) Translate(code uint32) VirtualKey {
	if code >= maxScancode {
		return NoMapping
	}
	return scancodeTable[code]
}

// ScancodeFromEvdev converts a Linux evdev key code to an X11 keycode.
func ScancodeFromEvdev(code uint32) uint32 {
	return code + EvdevOffset
}
