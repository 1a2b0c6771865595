// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package host

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"
	"sync"
)

// DefaultName is the host New creates when no name is given.
const DefaultName = "headless"

var (
	// ErrUnknownHost is returned by New for a name nothing registered.
	ErrUnknownHost = errors.New("host: unknown host")

	// ErrInvalidOptions is returned by New for unusable Options.
	ErrInvalidOptions = errors.New("host: invalid options")
)

// Factory creates a host from validated options.
type Factory func(opts Options) (Host, error)

var (
	mu        sync.RWMutex
	factories = map[string]Factory{
		DefaultName: func(opts Options) (Host, error) {
			return NewHeadless(opts.Width, opts.Height), nil
		},
	}
)

// Register makes f available to New under name, replacing any previous
// factory of that name. A nil f removes the name.
//
// Platform integrations call it from an init function:
//
//	func init() {
//	    host.Register("js", newPageHost)
//	}
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	if f == nil {
		delete(factories, name)
		return
	}
	factories[name] = f
}

// Names returns the registered host names in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	return slices.Sorted(maps.Keys(factories))
}

// New validates opts and creates the host registered under name, or the
// DefaultName host when name is empty.
func New(name string, opts Options) (Host, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		name = DefaultName
	}

	mu.RLock()
	f, ok := factories[name]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q (registered: %s)", ErrUnknownHost, name, strings.Join(Names(), ", "))
	}

	h, err := f(opts)
	if err != nil {
		return nil, fmt.Errorf("host: create %s: %w", name, err)
	}
	return h, nil
}

// Validate reports whether the initial container size is usable: both sides
// must be finite and not negative.
func (o Options) Validate() error {
	for _, v := range []struct {
		name string
		val  float64
	}{{"width", o.Width}, {"height", o.Height}} {
		if math.IsNaN(v.val) || math.IsInf(v.val, 0) || v.val < 0 {
			return fmt.Errorf("%w: %s %v", ErrInvalidOptions, v.name, v.val)
		}
	}
	return nil
}
