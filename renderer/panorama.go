package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/lumaprobe/cubemap"
)

// PanoramaView shows a probe's cubemap as an equirectangular texture.
type PanoramaView struct {
	texture rl.Texture2D
	width   int
	height  int
}

// NewPanoramaView allocates a width×height texture. Requires an open window.
func NewPanoramaView(width, height int) *PanoramaView {
	img := rl.GenImageColor(width, height, rl.Black)
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	return &PanoramaView{texture: texture, width: width, height: height}
}

// Update re-renders the panorama from s.
func (p *PanoramaView) Update(s *cubemap.Sampler) {
	img := cubemap.Panorama(s, p.width, p.height)
	pixels := make([]rl.Color, p.width*p.height)
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			pixels[x+y*p.width] = img.RGBAAt(x, y)
		}
	}
	rl.UpdateTexture(p.texture, pixels)
}

// Draw renders the panorama into dst with a frame and label.
func (p *PanoramaView) Draw(dst rl.Rectangle, label string) {
	src := rl.Rectangle{Width: float32(p.width), Height: float32(p.height)}
	rl.DrawTexturePro(p.texture, src, dst, rl.Vector2{}, 0, rl.White)
	rl.DrawRectangleLinesEx(dst, 1, rl.DarkGray)
	if label != "" {
		rl.DrawText(label, int32(dst.X)+4, int32(dst.Y)+4, 14, rl.White)
	}
}

// Unload releases GPU resources.
func (p *PanoramaView) Unload() {
	rl.UnloadTexture(p.texture)
}
