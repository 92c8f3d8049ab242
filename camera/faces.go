// Package camera derives capture views for the six cube faces and provides
// an orbiting viewer camera for the debug display.
package camera

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/lumaprobe/cubemap"
)

// FaceFovy is the vertical field of view, in degrees, of a face capture.
const FaceFovy = 90

// FaceView is the look-at frame that renders one cube face so that screen
// pixel (x, y) sees cubemap.PixelDirection(face, x, y, res).
type FaceView struct {
	Face    cubemap.Face
	Forward r3.Vec
	Up      r3.Vec
	// Right is the screen-right axis of a right-handed look-at camera.
	Right r3.Vec
	// Mirrored is set when the face's u axis runs against screen right, so
	// the rendered image must be flipped horizontally before storing.
	Mirrored bool
}

// NewFaceView derives the view for face f from the projector's inverse
// mapping: screen up follows decreasing v (row 0 is the top of the image).
func NewFaceView(f cubemap.Face) FaceView {
	center := cubemap.FaceDirection(f, cubemap.UV{U: 0.5, V: 0.5})
	du := r3.Sub(cubemap.FaceDirection(f, cubemap.UV{U: 1, V: 0.5}), center)
	dv := r3.Sub(cubemap.FaceDirection(f, cubemap.UV{U: 0.5, V: 1}), center)

	forward := r3.Unit(center)
	up := r3.Unit(r3.Scale(-1, dv))
	right := r3.Cross(forward, up)

	return FaceView{
		Face:     f,
		Forward:  forward,
		Up:       up,
		Right:    right,
		Mirrored: r3.Dot(right, du) < 0,
	}
}

// FaceViews returns the views for all faces, indexed by face.
func FaceViews() [cubemap.NumFaces]FaceView {
	var views [cubemap.NumFaces]FaceView
	for f := range views {
		views[f] = NewFaceView(cubemap.Face(f))
	}
	return views
}

// Target returns the look-at point for a camera at position.
func (v FaceView) Target(position r3.Vec) r3.Vec {
	return r3.Add(position, v.Forward)
}
