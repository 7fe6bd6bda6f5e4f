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

// Key describes one physical key of the supported set by all three of
// its identities. Letters are listed with their lowercase keysym.
type Key struct {
	Name       string
	VirtualKey VirtualKey
	Scancode   uint32
	Keysym     Keysym
}

var curatedKeys = [...]Key{
	{"ANSI_A", VKA, keycodeA, 'a'},
	{"ANSI_B", VKB, keycodeB, 'b'},
	{"ANSI_C", VKC, keycodeC, 'c'},
	{"ANSI_D", VKD, keycodeD, 'd'},
	{"ANSI_E", VKE, keycodeE, 'e'},
	{"ANSI_F", VKF, keycodeF, 'f'},
	{"ANSI_G", VKG, keycodeG, 'g'},
	{"ANSI_H", VKH, keycodeH, 'h'},
	{"ANSI_I", VKI, keycodeI, 'i'},
	{"ANSI_J", VKJ, keycodeJ, 'j'},
	{"ANSI_K", VKK, keycodeK, 'k'},
	{"ANSI_L", VKL, keycodeL, 'l'},
	{"ANSI_M", VKM, keycodeM, 'm'},
	{"ANSI_N", VKN, keycodeN, 'n'},
	{"ANSI_O", VKO, keycodeO, 'o'},
	{"ANSI_P", VKP, keycodeP, 'p'},
	{"ANSI_Q", VKQ, keycodeQ, 'q'},
	{"ANSI_R", VKR, keycodeR, 'r'},
	{"ANSI_S", VKS, keycodeS, 's'},
	{"ANSI_T", VKT, keycodeT, 't'},
	{"ANSI_U", VKU, keycodeU, 'u'},
	{"ANSI_V", VKV, keycodeV, 'v'},
	{"ANSI_W", VKW, keycodeW, 'w'},
	{"ANSI_X", VKX, keycodeX, 'x'},
	{"ANSI_Y", VKY, keycodeY, 'y'},
	{"ANSI_Z", VKZ, keycodeZ, 'z'},
	{"ANSI_1", VK1, keycode1, '1'},
	{"ANSI_2", VK2, keycode2, '2'},
	{"ANSI_3", VK3, keycode3, '3'},
	{"ANSI_4", VK4, keycode4, '4'},
	{"ANSI_5", VK5, keycode5, '5'},
	{"ANSI_6", VK6, keycode6, '6'},
	{"ANSI_7", VK7, keycode7, '7'},
	{"ANSI_8", VK8, keycode8, '8'},
	{"ANSI_9", VK9, keycode9, '9'},
	{"ANSI_0", VK0, keycode0, '0'},
	{"Space", VKSpace, keycodeSpace, xkSpace},
	{"Delete", VKDelete, keycodeBackSpace, xkBackSpace},
	{"Tab", VKTab, keycodeTab, xkTab},
	{"Return", VKReturn, keycodeReturn, xkReturn},
	{"Escape", VKEscape, keycodeEscape, xkEscape},
	{"LeftArrow", VKLeftArrow, keycodeLeft, xkLeft},
	{"RightArrow", VKRightArrow, keycodeRight, xkRight},
	{"DownArrow", VKDownArrow, keycodeDown, xkDown},
	{"UpArrow", VKUpArrow, keycodeUp, xkUp},
	{"ANSI_Period", VKPeriod, keycodePeriod, xkPeriod},
	{"ANSI_Comma", VKComma, keycodeComma, xkComma},
	{"ANSI_Slash", VKSlash, keycodeSlash, xkSlash},
	{"ANSI_Semicolon", VKSemicolon, keycodeSemicolon, xkSemicolon},
	{"ANSI_Quote", VKQuote, keycodeApostrophe, xkApostrophe},
	{"ANSI_LeftBracket", VKLeftBracket, keycodeLeftBracket, xkBracketLeft},
	{"ANSI_RightBracket", VKRightBracket, keycodeRightBracket, xkBracketRight},
	{"ANSI_Backslash", VKBackslash, keycodeBackslash, xkBackslash},
	{"ANSI_Minus", VKMinus, keycodeMinus, xkMinus},
	{"ANSI_Equal", VKEqual, keycodeEqual, xkEqual},
	{"ANSI_Grave", VKGrave, keycodeGrave, xkGrave},
}

// CuratedKeys returns a copy of the supported key set.
func CuratedKeys() []Key {
	keys := make([]Key, len(curatedKeys))
	copy(keys, curatedKeys[:])
	return keys
}
