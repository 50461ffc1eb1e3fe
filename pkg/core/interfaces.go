package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Texture maps a surface coordinate and hit point to a color
type Texture interface {
	Value(uv Vec2, point Vec3) Vec3
}

// Material scatters incoming rays and optionally emits light
type Material interface {
	// Scatter returns the scattered ray and attenuation for an incoming
	// ray, or false if the ray is absorbed
	Scatter(rayIn Ray, hit *HitRecord, sampler Sampler) (ScatterResult, bool)

	// Emitted returns the light emitted at the hit point. Non-emissive
	// materials return black.
	Emitted(uv Vec2, point Vec3) Vec3
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The scattered ray
	Attenuation Vec3 // Multiplicative throughput applied to the scattered ray
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Surface normal at intersection, against the incoming ray
	T         float64  // Parameter t along the ray
	UV        Vec2     // Texture coordinates at the hit
	FrontFace bool     // Whether ray hit the front face
	Material  Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face.
// The outward normal is assumed to be unit length.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Shape is a surface or volume that rays can intersect. The sampler is
// threaded through for shapes that need randomness on the hit path (the
// constant-density medium); solid surfaces ignore it.
type Shape interface {
	Hit(ray Ray, tMin, tMax float64, sampler Sampler) (*HitRecord, bool)
	BoundingBox() AABB
}
