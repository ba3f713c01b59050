// Package lighting describes the Phong light sources of the table scene.
package lighting

import (
	"github.com/Faultbox/tablescene/pkg/math"
)

// MaxPointLights is the maximum number of point lights supported in shaders.
const MaxPointLights = 4

// Phong holds the three reflection terms of a light.
type Phong struct {
	Ambient  [3]float32
	Diffuse  [3]float32
	Specular [3]float32
}

// PointLight is an attenuated omnidirectional light.
type PointLight struct {
	Phong
	Position math.Vec3
	Color    [3]float32

	// Attenuation = 1 / (Constant + Linear*d + Quadratic*d^2)
	Constant  float32
	Linear    float32
	Quadratic float32
}

// Attenuation returns the light's falloff factor at distance d.
func (l PointLight) Attenuation(d float32) float32 {
	denom := l.Constant + l.Linear*d + l.Quadratic*d*d
	if denom <= 0 {
		return 0
	}
	return 1 / denom
}

// AttenuationAt returns the falloff factor at a world position.
func (l PointLight) AttenuationAt(p math.Vec3) float32 {
	return l.Attenuation(l.Position.Sub(p).Length())
}

// KeyLights returns the two point lights placed around the table: a white
// key light behind-left and a dimmer fill light to the right.
func KeyLights() []PointLight {
	white := [3]float32{1, 1, 1}
	return []PointLight{
		{
			Phong: Phong{
				Ambient:  [3]float32{0.1, 0.1, 0.1},
				Diffuse:  [3]float32{0.5, 0.5, 0.5},
				Specular: [3]float32{0.6, 0.6, 0.6},
			},
			Position:  math.Vec3{X: -3, Y: 1.5, Z: -3},
			Color:     white,
			Constant:  1,
			Linear:    0.007,
			Quadratic: 0.0002,
		},
		{
			Phong: Phong{
				Ambient:  [3]float32{0.1, 0.1, 0.1},
				Diffuse:  [3]float32{0.3, 0.3, 0.3},
				Specular: [3]float32{1, 1, 1},
			},
			Position:  math.Vec3{X: 4, Y: 0.5, Z: 0},
			Color:     white,
			Constant:  1,
			Linear:    0.007,
			Quadratic: 0.0002,
		},
	}
}
