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

// Package bridge connects key event sources to an inputcontrol.Controller.
package bridge

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/vikey/vikey-bridge/inputcontrol"
	"github.com/vikey/vikey-bridge/keymap"
)

const (
	resultMapped   = "mapped"
	resultUnmapped = "unmapped"
	resultDisabled = "disabled"
)

type Bridge struct {
	facade  *keymap.Facade
	log     zerolog.Logger
	enabled atomic.Bool

	controllerMutex sync.Mutex
	controller      inputcontrol.Controller

	translations *prometheus.CounterVec
	failures     prometheus.Counter
}

// New creates a bridge and registers its metrics with registerer, which
// may be nil.
func New(facade *keymap.Facade, controller inputcontrol.Controller, logger zerolog.Logger, registerer prometheus.Registerer) (*Bridge, error) {
	b := &Bridge{
		facade:     facade,
		controller: controller,
		log:        logger.With().Str("subsystem", "bridge").Logger(),
		translations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vikey",
			Name:      "translations_total",
			Help:      "Key events by translation result and the lookup tier that produced it.",
		}, []string{"result", "tier"}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vikey",
			Name:      "controller_errors_total",
			Help:      "Translated keys the controller failed to inject.",
		}),
	}
	b.enabled.Store(true)
	if registerer != nil {
		for _, collector := range []prometheus.Collector{b.translations, b.failures} {
			if err := registerer.Register(collector); err != nil {
				return nil, fmt.Errorf("register metrics: %w", err)
			}
		}
	}
	return b, nil
}

// SetEnabled switches translation on or off. A disabled bridge passes
// every key through.
func (b *Bridge) SetEnabled(enabled bool) {
	if b.enabled.Swap(enabled) != enabled {
		b.log.Info().Bool("enabled", enabled).Msg("translation toggled")
	}
}

func (b *Bridge) Enabled() bool {
	return b.enabled.Load()
}

// KeyEvent translates event and forwards the result to the controller.
// Keys without a mapping are dropped and reported as not handled so the
// caller can pass them through.
func (b *Bridge) KeyEvent(event keymap.Event, press bool) (handled bool, err error) {
	if !b.enabled.Load() {
		b.translations.WithLabelValues(resultDisabled, "").Inc()
		return false, nil
	}
	resolution := b.facade.Resolve(event)
	if !resolution.Key.Mapped() {
		b.translations.WithLabelValues(resultUnmapped, "").Inc()
		b.log.Debug().
			Bool("hasScancode", event.HasScancode).Uint32("scancode", event.Scancode).
			Bool("hasKeysym", event.HasKeysym).Uint32("keysym", event.Keysym).
			Msg("no mapping, key dropped")
		return false, nil
	}
	b.translations.WithLabelValues(resultMapped, resolution.Tier).Inc()
	b.controllerMutex.Lock()
	err = b.controller.KeyboardKey(resolution.Key, press)
	b.controllerMutex.Unlock()
	if err != nil {
		b.failures.Inc()
		return false, fmt.Errorf("inject %v: %w", resolution.Key, err)
	}
	return true, nil
}
