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

// Package keymap translates Linux key identities (X11 keycodes and
// keysyms) into macOS virtual keycodes.
//
// All tables are built once during package initialisation and never
// change afterwards, so every lookup is safe for concurrent use and does
// not allocate.
package keymap

import "fmt"

// VirtualKey is a macOS virtual keycode (Carbon HIToolbox/Events.h).
type VirtualKey uint16

// NoMapping is returned for every key outside the curated set.
const NoMapping VirtualKey = 0xFF

// HIToolbox/Events.h
const (
	VKA            VirtualKey = 0x00
	VKS            VirtualKey = 0x01
	VKD            VirtualKey = 0x02
	VKF            VirtualKey = 0x03
	VKH            VirtualKey = 0x04
	VKG            VirtualKey = 0x05
	VKZ            VirtualKey = 0x06
	VKX            VirtualKey = 0x07
	VKC            VirtualKey = 0x08
	VKV            VirtualKey = 0x09
	VKB            VirtualKey = 0x0B
	VKQ            VirtualKey = 0x0C
	VKW            VirtualKey = 0x0D
	VKE            VirtualKey = 0x0E
	VKR            VirtualKey = 0x0F
	VKY            VirtualKey = 0x10
	VKT            VirtualKey = 0x11
	VK1            VirtualKey = 0x12
	VK2            VirtualKey = 0x13
	VK3            VirtualKey = 0x14
	VK4            VirtualKey = 0x15
	VK6            VirtualKey = 0x16
	VK5            VirtualKey = 0x17
	VKEqual        VirtualKey = 0x18
	VK9            VirtualKey = 0x19
	VK7            VirtualKey = 0x1A
	VKMinus        VirtualKey = 0x1B
	VK8            VirtualKey = 0x1C
	VK0            VirtualKey = 0x1D
	VKRightBracket VirtualKey = 0x1E
	VKO            VirtualKey = 0x1F
	VKU            VirtualKey = 0x20
	VKLeftBracket  VirtualKey = 0x21
	VKI            VirtualKey = 0x22
	VKP            VirtualKey = 0x23
	VKReturn       VirtualKey = 0x24
	VKL            VirtualKey = 0x25
	VKJ            VirtualKey = 0x26
	VKQuote        VirtualKey = 0x27
	VKK            VirtualKey = 0x28
	VKSemicolon    VirtualKey = 0x29
	VKBackslash    VirtualKey = 0x2A
	VKComma        VirtualKey = 0x2B
	VKSlash        VirtualKey = 0x2C
	VKN            VirtualKey = 0x2D
	VKM            VirtualKey = 0x2E
	VKPeriod       VirtualKey = 0x2F
	VKTab          VirtualKey = 0x30
	VKSpace        VirtualKey = 0x31
	VKGrave        VirtualKey = 0x32
	VKDelete       VirtualKey = 0x33
	VKEscape       VirtualKey = 0x35
	VKLeftArrow    VirtualKey = 0x7B
	VKRightArrow   VirtualKey = 0x7C
	VKDownArrow    VirtualKey = 0x7D
	VKUpArrow      VirtualKey = 0x7E
)

// Mapped reports whether k is a real keycode rather than NoMapping.
func (k VirtualKey) Mapped() bool {
	return k != NoMapping
}

func (k VirtualKey) String() string {
	if k == NoMapping {
		return "NoMapping"
	}
	if name, found := virtualKeyNames[k]; found {
		return "kVK_" + name
	}
	return fmt.Sprintf("VirtualKey(%d)", uint16(k))
}

var virtualKeyNames = make(map[VirtualKey]string, len(curatedKeys))

func init() {
	for _, key := range curatedKeys {
		virtualKeyNames[key.VirtualKey] = key.Name
	}
}
