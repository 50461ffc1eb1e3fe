package material

import (
	"github.com/cg711/raytracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo core.Texture // Metal color (solid or textured)
	Fuzz   float64      // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a metal material with a solid color
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	return NewTexturedMetal(NewSolidColor(albedo), fuzz)
}

// NewTexturedMetal creates a metal material with a texture
func NewTexturedMetal(albedo core.Texture, fuzz float64) *Metal {
	if fuzz > 1 {
		fuzz = 1
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter reflects the ray about the normal, perturbed by the fuzz factor.
// Rays scattered below the surface are absorbed.
func (m *Metal) Scatter(rayIn core.Ray, hit *core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	reflected := rayIn.Direction.Reflect(hit.Normal).Normalize().
		Add(core.RandomUnitVector(sampler).Multiply(m.Fuzz))

	scattered := core.NewRayAt(hit.Point, reflected, rayIn.Time)
	if scattered.Direction.Dot(hit.Normal) <= 0 {
		return core.ScatterResult{}, false
	}

	return core.ScatterResult{
		Scattered:   scattered,
		Attenuation: m.Albedo.Value(hit.UV, hit.Point),
	}, true
}

// Emitted returns black; metal surfaces do not emit
func (m *Metal) Emitted(uv core.Vec2, point core.Vec3) core.Vec3 {
	return core.Vec3{}
}
