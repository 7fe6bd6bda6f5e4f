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

// Translator maps codes of one key space to virtual keycodes. Codes
// without a mapping translate to NoMapping.
type Translator interface {
	Translate(code uint32) VirtualKey
}

// Event carries the identities the event source knows for one key.
type Event struct {
	Scancode    uint32
	HasScancode bool
	Keysym      uint32
	HasKeysym   bool
}

func ScancodeEvent(scancode uint32) Event {
	return Event{Scancode: scancode, HasScancode: true}
}

func KeysymEvent(keysym uint32) Event {
	return Event{Keysym: keysym, HasKeysym: true}
}

func FullEvent(scancode, keysym uint32) Event {
	return Event{Scancode: scancode, HasScancode: true, Keysym: keysym, HasKeysym: true}
}

// Tier is one lookup step: Code extracts the tier's input from the event
// and reports false when the event does not carry it.
type Tier struct {
	Name       string
	Translator Translator
	Code       func(Event) (uint32, bool)
}

// Policy lists tiers in order of precedence.
type Policy []Tier

const (
	TierScancode = "scancode"
	TierKeysym   = "keysym"
)

func eventScancode(event Event) (uint32, bool) {
	return event.Scancode, event.HasScancode
}

func eventKeysym(event Event) (uint32, bool) {
	return event.Keysym, event.HasKeysym
}

// DefaultPolicy tries the scancode first and falls back to the keysym.
func DefaultPolicy() Policy {
	return Policy{
		{Name: TierScancode, Translator: ScancodeTranslator{}, Code: eventScancode},
		{Name: TierKeysym, Translator: KeysymTranslator{}, Code: eventKeysym},
	}
}

// Resolution is the outcome of a facade lookup. Tier names the tier that
// produced Key and is empty when Key is NoMapping.
type Resolution struct {
	Key  VirtualKey
	Tier string
}

// Facade applies a Policy to key events. It keeps no state between
// calls.
type Facade struct {
	policy Policy
}

// NewFacade panics if a tier lacks its Translator or Code.
func NewFacade(policy Policy) *Facade {
	for i, tier := range policy {
		if tier.Translator == nil || tier.Code == nil {
			panic(fmt.Sprintf("keymap: incomplete tier %d %q", i, tier.Name))
		}
	}
	tiers := make(Policy, len(policy))
	copy(tiers, policy)
	return &Facade{policy: tiers}
}

// Default uses DefaultPolicy.
var Default = NewFacade(DefaultPolicy())

// Resolve returns the result of the first tier that maps the event.
func (f *Facade) Resolve(event Event) Resolution {
	for _, tier := range f.policy {
		code, ok := tier.Code(event)
		if !ok {
			continue
		}
		if key := tier.Translator.Translate(code); key.Mapped() {
			return Resolution{Key: key, Tier: tier.Name}
		}
	}
	return Resolution{Key: NoMapping}
}

func (f *Facade) Translate(event Event) VirtualKey {
	return f.Resolve(event).Key
}

// Translate translates event with the Default facade.
func Translate(event Event) VirtualKey {
	return Default.Translate(event)
}
