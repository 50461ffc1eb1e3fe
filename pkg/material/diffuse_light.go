package material

import (
	"github.com/cg711/raytracer/pkg/core"
)

// DiffuseLight is a light-emitting material. It absorbs incoming rays and
// contributes only through its emission.
type DiffuseLight struct {
	Emit core.Texture
}

// NewDiffuseLight creates an emitter with a uniform color
func NewDiffuseLight(emit core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: NewSolidColor(emit)}
}

// NewTexturedDiffuseLight creates an emitter whose output varies by texture
func NewTexturedDiffuseLight(emit core.Texture) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

// Scatter never scatters; lights absorb incoming rays
func (dl *DiffuseLight) Scatter(rayIn core.Ray, hit *core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// Emitted returns the emission texture value at the hit
func (dl *DiffuseLight) Emitted(uv core.Vec2, point core.Vec3) core.Vec3 {
	return dl.Emit.Value(uv, point)
}
