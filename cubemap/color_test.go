package cubemap

import (
	"image/color"
	"testing"
)

func TestToRGBA8(t *testing.T) {
	tests := []struct {
		name string
		in   LinearColor
		srgb bool
		want color.RGBA
	}{
		{"black", LinearColor{A: 1}, true, color.RGBA{0, 0, 0, 255}},
		{"white", LinearColor{1, 1, 1, 1}, true, color.RGBA{255, 255, 255, 255}},
		{"clamped", LinearColor{4, -2, 1.5, 9}, false, color.RGBA{255, 0, 255, 255}},
		{"linear half", LinearColor{0.5, 0.5, 0.5, 0.5}, false, color.RGBA{127, 127, 127, 127}},
		// 0.5 linear encodes to ~0.7354 in sRGB; alpha stays linear.
		{"srgb half", LinearColor{0.5, 0.5, 0.5, 0.5}, true, color.RGBA{188, 188, 188, 127}},
		// Linear segment: 0.001 * 12.92 * 255.999 = 3.3
		{"srgb toe", LinearColor{R: 0.001, A: 1}, true, color.RGBA{3, 0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.ToRGBA8(tt.srgb); got != tt.want {
				t.Errorf("ToRGBA8(%+v, %v) = %v, want %v", tt.in, tt.srgb, got, tt.want)
			}
		})
	}
}

func TestLinearFromRGBA8RoundTrip(t *testing.T) {
	for v := 0; v < 256; v++ {
		in := color.RGBA{uint8(v), uint8(v), uint8(v), 255}
		got := LinearFromRGBA8(in, true).ToRGBA8(true)
		// floor quantization may land one step below after the round trip.
		if d := int(in.R) - int(got.R); d < 0 || d > 1 {
			t.Fatalf("round trip %d -> %d", in.R, got.R)
		}
		if got.A != 255 {
			t.Fatalf("alpha round trip = %d, want 255", got.A)
		}
	}
}

func TestLinearColorArithmetic(t *testing.T) {
	c := LinearColor{1, 2, 3, 4}.Add(LinearColor{1, 1, 1, 1}).Scale(2).Div(4)
	if want := (LinearColor{1, 1.5, 2, 2.5}); c != want {
		t.Errorf("arithmetic = %+v, want %+v", c, want)
	}
	if l := (LinearColor{1, 1, 1, 0}).Luma(); l < 0.9999 || l > 1.0001 {
		t.Errorf("Luma(white) = %v, want 1", l)
	}
}
