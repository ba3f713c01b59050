package lighting

import (
	"github.com/Faultbox/tablescene/pkg/math"
)

// DirectionalLight is an infinitely distant light such as the sun.
type DirectionalLight struct {
	Phong
	// Direction the light travels, not the direction towards it.
	Direction math.Vec3
}

// ToLight returns the unit vector pointing back towards the light.
func (l DirectionalLight) ToLight() math.Vec3 {
	return l.Direction.Normalize().Scale(-1)
}

// Lambert returns the diffuse factor max(0, n·l) for a surface normal.
// n need not be unit length.
func (l DirectionalLight) Lambert(n math.Vec3) float32 {
	d := n.Normalize().Dot(l.ToLight())
	if d < 0 {
		return 0
	}
	return d
}

// Sun returns the scene's overhead directional light, slanting towards -X.
func Sun() DirectionalLight {
	return DirectionalLight{
		Phong: Phong{
			Ambient:  [3]float32{0.4, 0.4, 0.4},
			Diffuse:  [3]float32{0.6, 0.6, 0.6},
			Specular: [3]float32{0.3, 0.3, 0.3},
		},
		Direction: math.Vec3{X: -0.5, Y: -1, Z: 0},
	}
}
