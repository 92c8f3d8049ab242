package cubemap

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// UV is a face-local texture coordinate. Values produced by this package are
// always in [0,1).
type UV struct {
	U, V float64
}

// faceThreshold is how close to ±1 the dominant-axis component must be for a
// face to be selected.
const faceThreshold = 0.999

// faceRule selects a face and computes its raw UV from the direction scaled so
// that its dominant component is ±1.
type faceRule struct {
	face  Face
	match func(xa, ya, za float64) bool
	raw   func(xa, ya, za float64) UV
}

// faceRules are evaluated in order and the last match wins. Near edges and
// corners more than one rule can match; the order decides which face owns
// those directions, and captured data depends on it.
var faceRules = [NumFaces]faceRule{
	{
		// Right, rotated left
		face:  FacePosX,
		match: func(xa, _, _ float64) bool { return xa > faceThreshold },
		raw:   func(_, ya, za float64) UV { return UV{-za, -ya} },
	},
	{
		// Left, rotated right
		face:  FaceNegX,
		match: func(xa, _, _ float64) bool { return xa < -faceThreshold },
		raw:   func(_, ya, za float64) UV { return UV{za, ya} },
	},
	{
		// Up, upside down and flipped
		face:  FacePosY,
		match: func(_, ya, _ float64) bool { return ya > faceThreshold },
		raw:   func(xa, _, za float64) UV { return UV{-xa, -za} },
	},
	{
		face:  FaceNegY,
		match: func(_, ya, _ float64) bool { return ya < -faceThreshold },
		raw:   func(xa, _, za float64) UV { return UV{xa, za} },
	},
	{
		face:  FacePosZ,
		match: func(_, _, za float64) bool { return za > faceThreshold },
		raw:   func(xa, ya, _ float64) UV { return UV{xa, ya} },
	},
	{
		face:  FaceNegZ,
		match: func(_, _, za float64) bool { return za < -faceThreshold },
		raw:   func(xa, ya, _ float64) UV { return UV{xa, ya} },
	},
}

// Project maps a direction to the cube face it points at and the UV on that
// face. dir does not need to be unit length but must not be the zero vector.
//
// A zero or non-finite direction matches no face; Project then returns
// FacePosX with the face-center UV rather than garbage.
func Project(dir r3.Vec) (UV, Face) {
	a := math.Max(math.Abs(dir.X), math.Max(math.Abs(dir.Y), math.Abs(dir.Z)))
	xa, ya, za := dir.X/a, dir.Y/a, dir.Z/a

	var (
		face    = FacePosX
		raw     UV
		matched bool
	)
	for i := range faceRules {
		r := &faceRules[i]
		if r.match(xa, ya, za) {
			face, raw, matched = r.face, r.raw(xa, ya, za), true
		}
	}
	if !matched {
		return UV{0.5, 0.5}, FacePosX
	}

	return UV{
		U: Wrap01((raw.U - 1) / 2),
		V: Wrap01((raw.V - 1) / 2),
	}, face
}

// Wrap01 wraps v into [0,1) modulo 1. Values are never clamped. NaN and
// infinities wrap to 0.
func Wrap01(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	v -= math.Floor(v)
	// A tiny negative input rounds up to exactly 1 after the subtraction.
	if v >= 1 {
		v = 0
	}
	return v
}

// FaceDirection returns the (non-normalized) world direction that Project maps
// to uv on the given face. It is the inverse of Project away from face edges.
func FaceDirection(f Face, uv UV) r3.Vec {
	ru, rv := 2*uv.U-1, 2*uv.V-1
	switch f {
	case FacePosX:
		return r3.Vec{X: 1, Y: -rv, Z: -ru}
	case FaceNegX:
		return r3.Vec{X: -1, Y: rv, Z: ru}
	case FacePosY:
		return r3.Vec{X: -ru, Y: 1, Z: -rv}
	case FaceNegY:
		return r3.Vec{X: ru, Y: -1, Z: rv}
	case FacePosZ:
		return r3.Vec{X: ru, Y: rv, Z: 1}
	case FaceNegZ:
		return r3.Vec{X: ru, Y: rv, Z: -1}
	}
	return r3.Vec{}
}

// PixelDirection returns the unit direction through the center of pixel (x, y)
// on a face of the given resolution.
func PixelDirection(f Face, x, y, res int) r3.Vec {
	uv := UV{
		U: (float64(x) + 0.5) / float64(res),
		V: (float64(y) + 0.5) / float64(res),
	}
	return SafeUnit(FaceDirection(f, uv))
}
