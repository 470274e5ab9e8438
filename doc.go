// Package pixelforge is a CPU software rasterizer exposing a fixed-
// function, immediate-mode state-machine API modeled on a classic
// immediate-mode 3D graphics library: matrix stacks, per-vertex attribute
// latches, begin/vertex.../end, vertex arrays, and render lists.
//
// # Overview
//
// A [Context] owns every piece of pipeline state: the three matrix
// stacks, the enable bitset, vertex attribute latches, bound texture and
// framebuffer, material/light tables, fog, and a one-slot sticky error
// code. Every verb is a method on the active context (see [MakeCurrent]);
// there is no global mutable state beyond the thread-local "current
// context" pointer itself.
//
//	ctx := pixelforge.NewContext()
//	ctx.SetMainBuffer(pixels, 64, 64, pixelcodec.RGBA, pixelcodec.UnsignedByte)
//	pixelforge.MakeCurrent(ctx)
//	ctx.Viewport(0, 0, 64, 64)
//	ctx.ClearColor(pixelcodec.Color{A: 255})
//	ctx.Clear(pixelforge.ColorBufferBit)
//	ctx.Begin(pixelforge.Triangles)
//	ctx.Vertex3f(-1, -1, 0)
//	ctx.Vertex3f(1, -1, 0)
//	ctx.Vertex3f(-1, 1, 0)
//	ctx.End()
//
// # Architecture
//
// The rendering engine beneath the public surface lives under internal/:
// mathkernel (vectors/matrices), pixelcodec (pixel layout conversion),
// texture and framebuffer (storage), blend (compositing/depth ops),
// lighting (Blinn-Phong/Phong), geometry (transform/clip/divide),
// raster (point/line/triangle rasterizers), parallel (scanline fan-out),
// and renderlist (record/replay). This package wires them into the
// public verb surface and owns the context state the verbs read.
//
// # Errors
//
// Verbs do not return error values. A verb that fails validation sets
// the context's sticky error slot and takes no side effect; call
// [Context.GetError] to read and clear it.
package pixelforge
