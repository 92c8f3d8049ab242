package cubemap

import (
	"image/color"
	"math"
)

// LinearColor is a floating-point RGBA color in linear space. Arithmetic never
// clamps, so it doubles as an accumulator.
type LinearColor struct {
	R, G, B, A float32
}

// Add returns the component-wise sum.
func (c LinearColor) Add(o LinearColor) LinearColor {
	return LinearColor{c.R + o.R, c.G + o.G, c.B + o.B, c.A + o.A}
}

// Scale multiplies every component, alpha included, by s.
func (c LinearColor) Scale(s float32) LinearColor {
	return LinearColor{c.R * s, c.G * s, c.B * s, c.A * s}
}

// Mul returns the component-wise product.
func (c LinearColor) Mul(o LinearColor) LinearColor {
	return LinearColor{c.R * o.R, c.G * o.G, c.B * o.B, c.A * o.A}
}

// Div divides every component by d.
func (c LinearColor) Div(d float32) LinearColor {
	return LinearColor{c.R / d, c.G / d, c.B / d, c.A / d}
}

// Luma returns the Rec. 709 relative luminance of the color.
func (c LinearColor) Luma() float64 {
	return 0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)
}

// ToRGBA8 quantizes the color to 8 bits per channel. Channels are clamped to
// [0,1] first; when srgb is set the color channels (not alpha) are gamma
// encoded with the sRGB transfer curve. Quantization is floor(v*255.999), so
// the result is a pure function of the input.
func (c LinearColor) ToRGBA8(srgb bool) color.RGBA {
	r, g, b, a := clamp01(c.R), clamp01(c.G), clamp01(c.B), clamp01(c.A)
	if srgb {
		r, g, b = encodeSRGB(r), encodeSRGB(g), encodeSRGB(b)
	}
	return color.RGBA{R: quantize(r), G: quantize(g), B: quantize(b), A: quantize(a)}
}

// LinearFromRGBA8 converts an 8-bit color back to linear space. When srgb is
// set the color channels are decoded with the sRGB transfer curve.
func LinearFromRGBA8(c color.RGBA, srgb bool) LinearColor {
	r, g, b := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255
	if srgb {
		r, g, b = decodeSRGB(r), decodeSRGB(g), decodeSRGB(b)
	}
	return LinearColor{R: r, G: g, B: b, A: float32(c.A) / 255}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func quantize(v float32) uint8 {
	return uint8(math.Floor(float64(v) * 255.999))
}

func encodeSRGB(v float32) float32 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return float32(math.Pow(float64(v), 1.0/2.4))*1.055 - 0.055
}

func decodeSRGB(v float32) float32 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return float32(math.Pow((float64(v)+0.055)/1.055, 2.4))
}
