package material

import (
	"github.com/cg711/raytracer/pkg/core"
)

// Isotropic is the phase function for a participating medium: it scatters
// into a uniformly random unit direction
type Isotropic struct {
	Albedo core.Texture
}

// NewIsotropic creates an isotropic phase function with a solid color
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo)}
}

// NewTexturedIsotropic creates an isotropic phase function with a texture
func NewTexturedIsotropic(albedo core.Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter picks a uniformly random unit direction
func (iso *Isotropic) Scatter(rayIn core.Ray, hit *core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{
		Scattered:   core.NewRayAt(hit.Point, core.RandomUnitVector(sampler), rayIn.Time),
		Attenuation: iso.Albedo.Value(hit.UV, hit.Point),
	}, true
}

// Emitted returns black; the medium itself does not emit
func (iso *Isotropic) Emitted(uv core.Vec2, point core.Vec3) core.Vec3 {
	return core.Vec3{}
}
