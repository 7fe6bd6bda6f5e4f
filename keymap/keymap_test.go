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

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScancodeTranslate(t *testing.T) {
	tests := []struct {
		name string
		code uint32
		want VirtualKey
	}{
		{"A", 38, 0},
		{"Space", 65, 49},
		{"Left", 113, 123},
		{"Up", 111, 126},
		{"Escape", 9, 53},
		{"BackSpace", 22, 51},
		{"Grave", 49, 50},
		{"Unrecognized", 999999, NoMapping},
		{"ShiftL", 50, NoMapping},
		{"F1", 67, NoMapping},
		{"KP_Enter", 104, NoMapping},
		{"Zero", 0, NoMapping},
		{"Max", math.MaxUint32, NoMapping},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScancodeTranslator{}.Translate(tt.code))
		})
	}
}

func TestKeysymTranslate(t *testing.T) {
	tests := []struct {
		name   string
		keysym uint32
		want   VirtualKey
	}{
		{"a", 0x0061, 0},
		{"A", 0x0041, 0},
		{"z", 0x007a, 6},
		{"Z", 0x005a, 6},
		{"0", 0x0030, 29},
		{"space", 0x0020, 49},
		{"BackSpace", 0xff08, 51},
		{"Return", 0xff0d, 36},
		{"Left", 0xff51, 123},
		{"backslash", 0x005c, 42},
		{"Shift_L", 0xffe1, NoMapping},
		{"F1", 0xffbe, NoMapping},
		{"XF86AudioMute", 0x1008ff12, NoMapping},
		{"exclam", 0x0021, NoMapping},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KeysymTranslator{}.Translate(tt.keysym))
		})
	}
}

func TestTranslatorsTotal(t *testing.T) {
	valid := make(map[VirtualKey]bool)
	for _, key := range CuratedKeys() {
		valid[key.VirtualKey] = true
	}
	valid[NoMapping] = true
	for _, translator := range []Translator{ScancodeTranslator{}, KeysymTranslator{}} {
		for code := uint32(0); code < 0x20000; code++ {
			key := translator.Translate(code)
			require.True(t, valid[key], "%T(%#x) = %v", translator, code, key)
		}
		for code := uint32(math.MaxUint32); code > math.MaxUint32-0x1000; code-- {
			require.Equal(t, NoMapping, translator.Translate(code))
		}
	}
}

func TestCrossTableConsistency(t *testing.T) {
	keys := CuratedKeys()
	require.Len(t, keys, 56)
	for _, key := range keys {
		t.Run(key.Name, func(t *testing.T) {
			assert.Equal(t, key.VirtualKey, ScancodeTranslator{}.Translate(key.Scancode))
			assert.Equal(t, key.VirtualKey, KeysymTranslator{}.Translate(key.Keysym))
		})
	}
}

func TestCaseAliasing(t *testing.T) {
	for lower := uint32('a'); lower <= 'z'; lower++ {
		upper := lower - ('a' - 'A')
		key := KeysymTranslator{}.Translate(lower)
		assert.True(t, key.Mapped(), "keysym %#x", lower)
		assert.Equal(t, key, KeysymTranslator{}.Translate(upper), "keysym %#x", upper)
	}
}

func TestInjectivity(t *testing.T) {
	seen := make(map[VirtualKey]string)
	for _, key := range CuratedKeys() {
		require.True(t, key.VirtualKey.Mapped())
		require.LessOrEqual(t, key.VirtualKey, VirtualKey(126))
		other, found := seen[key.VirtualKey]
		require.False(t, found, "%s and %s share %v", key.Name, other, key.VirtualKey)
		seen[key.VirtualKey] = key.Name
	}
	assert.Len(t, scancodeMap, len(curatedKeys))
	assert.Len(t, keysymTable, len(curatedKeys)+26)
}

func TestEvdevOffset(t *testing.T) {
	// KEY_A in linux/input-event-codes.h
	assert.Equal(t, uint32(38), ScancodeFromEvdev(30))
	assert.Equal(t, VKA, ScancodeTranslator{}.Translate(ScancodeFromEvdev(30)))
	// KEY_LEFT
	assert.Equal(t, VKLeftArrow, ScancodeTranslator{}.Translate(ScancodeFromEvdev(105)))
}

func TestVirtualKeyString(t *testing.T) {
	assert.Equal(t, "kVK_ANSI_A", VKA.String())
	assert.Equal(t, "kVK_LeftArrow", VKLeftArrow.String())
	assert.Equal(t, "NoMapping", NoMapping.String())
	assert.Equal(t, "VirtualKey(122)", VirtualKey(122).String())
	assert.False(t, NoMapping.Mapped())
	assert.True(t, VKA.Mapped())
}

func TestCuratedKeysCopy(t *testing.T) {
	keys := CuratedKeys()
	keys[0].VirtualKey = NoMapping
	assert.Equal(t, VKA, CuratedKeys()[0].VirtualKey)
}
