package cubemap

import "image"

// Panorama renders the sampler's cubemap as an equirectangular image using the
// EquirectUV layout: row 0 looks up, columns sweep the horizon.
func Panorama(s *Sampler, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			uv := UV{
				U: (float64(x) + 0.5) / float64(width),
				V: (float64(y) + 0.5) / float64(height),
			}
			c := s.Sample(EquirectDirection(uv))
			c.A = 1
			img.SetRGBA(x, y, c.ToRGBA8(true))
		}
	}
	return img
}
