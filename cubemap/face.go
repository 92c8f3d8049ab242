// Package cubemap maps world directions onto the six faces of a captured cubemap
// and resolves them to stored linear pixels.
//
// World space is Z-up. Faces are indexed 0=+X, 1=-X, 2=+Y, 3=-Y, 4=+Z, 5=-Z, and
// each face has a fixed UV orientation (see Project and FaceDirection) that
// matches the layout of existing captured data.
package cubemap

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Face identifies one side of the cube.
type Face uint8

const (
	FacePosX Face = iota // +X, right
	FaceNegX             // -X, left
	FacePosY             // +Y, up
	FaceNegY             // -Y, down
	FacePosZ             // +Z, forwards
	FaceNegZ             // -Z, backwards
)

// NumFaces is the number of cube faces.
const NumFaces = 6

var faceNames = [NumFaces]string{"+X", "-X", "+Y", "-Y", "+Z", "-Z"}

// String returns the signed axis name of the face.
func (f Face) String() string {
	if f.Valid() {
		return faceNames[f]
	}
	return fmt.Sprintf("Face(%d)", uint8(f))
}

// Valid reports whether f is one of the six faces.
func (f Face) Valid() bool {
	return f < NumFaces
}

// Axis returns the outward unit normal of the face.
func (f Face) Axis() r3.Vec {
	switch f {
	case FacePosX:
		return r3.Vec{X: 1}
	case FaceNegX:
		return r3.Vec{X: -1}
	case FacePosY:
		return r3.Vec{Y: 1}
	case FaceNegY:
		return r3.Vec{Y: -1}
	case FacePosZ:
		return r3.Vec{Z: 1}
	case FaceNegZ:
		return r3.Vec{Z: -1}
	}
	return r3.Vec{}
}

// SafeUnit returns v scaled to unit length, or the zero vector when v is too
// short to normalize.
func SafeUnit(v r3.Vec) r3.Vec {
	n2 := r3.Norm2(v)
	if n2 <= 1e-8 {
		return r3.Vec{}
	}
	if n2 == 1 {
		return v
	}
	return r3.Scale(1/math.Sqrt(n2), v)
}
