// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package host defines the platform collaborator a canvas2d.Canvas attaches to.
//
// A Host supplies raster surfaces, reports container geometry, receives
// style properties and delivers two lifecycle notifications:
//
//   - EventLayoutReady, once after the initial placement
//   - EventViewportChanged, on every later geometry change
//
// Headless is the built-in in-memory implementation, registered as
// DefaultName. Other integrations (a js/wasm page, a native window) register
// a Factory under their own name, and callers pick one by name:
//
//	host.Register("js", newPageHost)
//
//	h, err := host.New("js", host.Options{Width: 800, Height: 600})
package host
