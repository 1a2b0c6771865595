// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package present draws canvas2d frames onto a GPU window.
//
// The host application owns the GPU device and hands a
// gpucontext.DeviceProvider to New. Each frame, the visible surface of a
// canvas is staged and drawn through the host's gpucontext.TextureDrawer:
//
//	p, err := present.New(app.GPUContextProvider())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer p.Close()
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    _ = canvas.FlushBuffer()
//	    if err := p.Render(dc.AsTextureDrawer(), canvas, 0, 0); err != nil {
//	        log.Print(err)
//	    }
//	})
//
// The texture is created on the first Present, updated in place for
// same-size frames and recreated when the canvas is resized.
package present
