// Package blend implements the eight fixed blend modes and the six depth
// compare modes of §4.5, each as a pure scalar function plus a SIMD batch
// twin, following the teacher's internal/blend package structure (a Mode
// enum dispatching to small per-channel pure functions).
package blend

import "github.com/bigfoot71/pixelforge/internal/pixelcodec"

// Mode selects one of the eight blend functions (§4.5).
type Mode uint8

const (
	Average Mode = iota
	Alpha
	Additive
	Subtractive
	Multiplicative
	Screen
	Lighten
	Darken
)

// Func blends a source color over a destination color, returning the
// result. All eight modes operate purely on the 8-bit channel values.
type Func func(src, dst pixelcodec.Color) pixelcodec.Color

// Get returns the blend function for mode. Unknown modes fall back to
// Alpha (the conventional default in the source's blend table).
func Get(mode Mode) Func {
	switch mode {
	case Average:
		return average
	case Alpha:
		return alphaBlend
	case Additive:
		return additive
	case Subtractive:
		return subtractive
	case Multiplicative:
		return multiplicative
	case Screen:
		return screen
	case Lighten:
		return lighten
	case Darken:
		return darken
	default:
		return alphaBlend
	}
}

func average(src, dst pixelcodec.Color) pixelcodec.Color {
	return pixelcodec.Color{
		R: byte((uint16(src.R) + uint16(dst.R)) >> 1),
		G: byte((uint16(src.G) + uint16(dst.G)) >> 1),
		B: byte((uint16(src.B) + uint16(dst.B)) >> 1),
		A: byte((uint16(src.A) + uint16(dst.A)) >> 1),
	}
}

// alphaBlend implements (α·s + (256−α)·d) >> 8 with α = src.a + 1, and the
// analogous formula for the alpha channel itself (§4.5).
func alphaBlend(src, dst pixelcodec.Color) pixelcodec.Color {
	a := uint16(src.A) + 1
	invA := 256 - a
	mix := func(s, d byte) byte {
		return byte((a*uint16(s) + invA*uint16(d)) >> 8)
	}
	return pixelcodec.Color{
		R: mix(src.R, dst.R),
		G: mix(src.G, dst.G),
		B: mix(src.B, dst.B),
		A: byte((a*255 + invA*uint16(dst.A)) >> 8),
	}
}

func additive(src, dst pixelcodec.Color) pixelcodec.Color {
	add := func(s, d byte) byte {
		v := uint16(s) + uint16(d)
		if v > 255 {
			return 255
		}
		return byte(v)
	}
	return pixelcodec.Color{R: add(src.R, dst.R), G: add(src.G, dst.G), B: add(src.B, dst.B), A: add(src.A, dst.A)}
}

func subtractive(src, dst pixelcodec.Color) pixelcodec.Color {
	sub := func(s, d byte) byte {
		if s >= d {
			return 0
		}
		return d - s
	}
	return pixelcodec.Color{R: sub(src.R, dst.R), G: sub(src.G, dst.G), B: sub(src.B, dst.B), A: sub(src.A, dst.A)}
}

func multiplicative(src, dst pixelcodec.Color) pixelcodec.Color {
	mul := func(s, d byte) byte {
		return byte((uint16(s) * uint16(d)) / 255)
	}
	return pixelcodec.Color{R: mul(src.R, dst.R), G: mul(src.G, dst.G), B: mul(src.B, dst.B), A: mul(src.A, dst.A)}
}

func screen(src, dst pixelcodec.Color) pixelcodec.Color {
	scr := func(s, d byte) byte {
		v := ((uint16(d) * (255 - uint16(s))) >> 8) + uint16(s)
		if v > 255 {
			return 255
		}
		return byte(v)
	}
	return pixelcodec.Color{R: scr(src.R, dst.R), G: scr(src.G, dst.G), B: scr(src.B, dst.B), A: scr(src.A, dst.A)}
}

func lighten(src, dst pixelcodec.Color) pixelcodec.Color {
	max := func(s, d byte) byte {
		if s > d {
			return s
		}
		return d
	}
	return pixelcodec.Color{R: max(src.R, dst.R), G: max(src.G, dst.G), B: max(src.B, dst.B), A: max(src.A, dst.A)}
}

func darken(src, dst pixelcodec.Color) pixelcodec.Color {
	min := func(s, d byte) byte {
		if s < d {
			return s
		}
		return d
	}
	return pixelcodec.Color{R: min(src.R, dst.R), G: min(src.G, dst.G), B: min(src.B, dst.B), A: min(src.A, dst.A)}
}
