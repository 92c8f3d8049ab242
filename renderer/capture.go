package renderer

import (
	"fmt"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/lumaprobe/camera"
	"github.com/pthm-cable/lumaprobe/cubemap"
	"github.com/pthm-cable/lumaprobe/luminance"
	"github.com/pthm-cable/lumaprobe/scene"
)

// CubeCaptureOptions configures a GPU cube capture.
type CubeCaptureOptions struct {
	Resolution      int
	MaxViewDistance float64
	ClearColor      cubemap.LinearColor
	Clock           scene.Clock
	Position        scene.PositionFunc
}

// CubeCapture renders cube captures on the GPU: one render texture per face,
// read back to CPU memory after drawing. It implements
// luminance.CaptureProvider.
//
// Capture reports luminance.ErrCaptureUnavailable until Init has been called
// with a live GL context, and again after Unload.
type CubeCapture struct {
	opts     CubeCaptureOptions
	renderer *SceneRenderer
	views    [cubemap.NumFaces]camera.FaceView
	targets  [cubemap.NumFaces]rl.RenderTexture2D
	ready    bool
}

// NewCubeCapture creates a capture of the scene drawn by r. No GPU resources
// are allocated until Init.
func NewCubeCapture(r *SceneRenderer, opts CubeCaptureOptions) *CubeCapture {
	return &CubeCapture{
		opts:     opts,
		renderer: r,
		views:    camera.FaceViews(),
	}
}

// Init allocates the face render targets. Requires an open window.
func (c *CubeCapture) Init() {
	if c.ready || c.opts.Resolution <= 0 {
		return
	}
	res := int32(c.opts.Resolution)
	for f := range c.targets {
		c.targets[f] = rl.LoadRenderTexture(res, res)
	}
	c.ready = true
}

// Now implements luminance.CaptureProvider.
func (c *CubeCapture) Now() float64 {
	if c.opts.Clock == nil {
		return 0
	}
	return c.opts.Clock.Now()
}

// Position implements luminance.CaptureProvider.
func (c *CubeCapture) Position() r3.Vec {
	if c.opts.Position == nil {
		return r3.Vec{}
	}
	return c.opts.Position()
}

// Capture draws all six faces from the current position and reads them back.
func (c *CubeCapture) Capture() (luminance.Capture, error) {
	if !c.ready || c.renderer == nil {
		return luminance.Capture{}, luminance.ErrCaptureUnavailable
	}

	eye := c.Position()
	for f := range c.targets {
		c.renderFace(cubemap.Face(f), eye)
	}

	out := luminance.Capture{Resolution: c.opts.Resolution}
	for f := range c.targets {
		px, err := c.readback(cubemap.Face(f))
		if err != nil {
			return luminance.Capture{}, err
		}
		out.Faces[f] = px
	}
	return out, nil
}

func (c *CubeCapture) renderFace(f cubemap.Face, eye r3.Vec) {
	v := c.views[f]
	cam := rl.Camera3D{
		Position:   vec3(eye),
		Target:     vec3(v.Target(eye)),
		Up:         vec3(v.Up),
		Fovy:       camera.FaceFovy,
		Projection: rl.CameraPerspective,
	}

	rl.BeginTextureMode(c.targets[f])
	rl.ClearBackground(displayColor(c.opts.ClearColor))
	rl.BeginMode3D(cam)
	c.renderer.Draw(eye, c.opts.MaxViewDistance)
	rl.EndMode3D()
	rl.EndTextureMode()
}

// faceImage reads a face texture back as an image in stored orientation:
// row 0 at the top (OpenGL textures are bottom-up) and u increasing left to
// right. The caller unloads it.
func (c *CubeCapture) faceImage(f cubemap.Face) *rl.Image {
	img := rl.LoadImageFromTexture(c.targets[f].Texture)
	rl.ImageFlipVertical(img)
	if c.views[f].Mirrored {
		rl.ImageFlipHorizontal(img)
	}
	return img
}

func (c *CubeCapture) readback(f cubemap.Face) ([]cubemap.LinearColor, error) {
	img := c.faceImage(f)
	defer rl.UnloadImage(img)

	colors := rl.LoadImageColors(img)
	defer rl.UnloadImageColors(colors)

	n := c.opts.Resolution * c.opts.Resolution
	if len(colors) != n {
		return nil, fmt.Errorf("face %s readback: got %d pixels, want %d", f, len(colors), n)
	}

	px := make([]cubemap.LinearColor, n)
	for i, col := range colors {
		px[i] = cubemap.LinearFromRGBA8(col, true)
	}
	return px, nil
}

// ExportFaces writes the six face textures as face_<n>.png into dir, in the
// orientation they are stored.
func (c *CubeCapture) ExportFaces(dir string) error {
	if !c.ready {
		return luminance.ErrCaptureUnavailable
	}
	for f := range c.targets {
		img := c.faceImage(cubemap.Face(f))
		path := filepath.Join(dir, fmt.Sprintf("face_%d.png", f))
		ok := rl.ExportImage(*img, path)
		rl.UnloadImage(img)
		if !ok {
			return fmt.Errorf("exporting %s", path)
		}
	}
	return nil
}

// Unload releases GPU resources.
func (c *CubeCapture) Unload() {
	if !c.ready {
		return
	}
	for f := range c.targets {
		rl.UnloadRenderTexture(c.targets[f])
	}
	c.ready = false
}
