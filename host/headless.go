// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package host

import (
	"github.com/gogpu/canvas2d/internal/notify"
	"github.com/gogpu/canvas2d/surface"
)

// Headless is an in-memory Host backed by surface.ImageSurface.
//
// Geometry is set explicitly and notifications are delivered synchronously
// from Ready and Resize, which makes Headless suitable for tests and
// offline rendering.
//
// Headless is NOT safe for concurrent use.
type Headless struct {
	bounds Rect
	ready  bool

	styles      map[Target]Style
	subscribers notify.List[Event]

	surfaces []*surface.ImageSurface
}

// NewHeadless creates a headless host reporting a width × height container.
func NewHeadless(width, height float64) *Headless {
	return &Headless{
		bounds: Rect{Width: width, Height: height},
		styles: make(map[Target]Style),
	}
}

// NewSurface returns a new zero-size ImageSurface.
func (h *Headless) NewSurface() (surface.Surface, error) {
	s := surface.NewImageSurface(0, 0)
	h.surfaces = append(h.surfaces, s)
	return s, nil
}

// Surfaces returns the surfaces created so far, in creation order.
func (h *Headless) Surfaces() []*surface.ImageSurface {
	return h.surfaces
}

// Bounds returns the current container geometry.
func (h *Headless) Bounds() Rect {
	return h.bounds
}

// ApplyStyle records style properties for target, merging with earlier ones.
func (h *Headless) ApplyStyle(target Target, style Style) error {
	dst := h.styles[target]
	if dst == nil {
		dst = make(Style, len(style))
		h.styles[target] = dst
	}
	for k, v := range style {
		dst[k] = v
	}
	return nil
}

// Style returns a copy of the properties applied to target.
func (h *Headless) Style(target Target) Style {
	return h.styles[target].Clone()
}

// Subscribe registers fn for lifecycle notifications.
func (h *Headless) Subscribe(fn func(Event)) (cancel func()) {
	return h.subscribers.Add(fn)
}

// Ready fires EventLayoutReady. Only the first call notifies subscribers.
func (h *Headless) Ready() {
	if h.ready {
		return
	}
	h.ready = true
	h.notify(EventLayoutReady)
}

// Resize changes the container geometry and fires EventViewportChanged.
func (h *Headless) Resize(width, height float64) {
	h.bounds = Rect{Width: width, Height: height}
	h.notify(EventViewportChanged)
}

// Subscribers returns the number of active subscriptions.
func (h *Headless) Subscribers() int {
	return h.subscribers.Len()
}

func (h *Headless) notify(kind EventKind) {
	h.subscribers.Notify(Event{Kind: kind, Bounds: h.bounds})
}

var _ Host = (*Headless)(nil)
