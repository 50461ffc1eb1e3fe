package material

import (
	"math"
	"math/rand"

	"github.com/cg711/raytracer/pkg/core"
)

const perlinPointCount = 256

// Perlin generates smoothed value noise over a 3D lattice
type Perlin struct {
	randFloat []float64
	permX     []int
	permY     []int
	permZ     []int
}

// NewPerlin creates a Perlin noise source from the given generator
func NewPerlin(random *rand.Rand) *Perlin {
	randFloat := make([]float64, perlinPointCount)
	for i := range randFloat {
		randFloat[i] = random.Float64()
	}

	return &Perlin{
		randFloat: randFloat,
		permX:     generatePerm(random),
		permY:     generatePerm(random),
		permZ:     generatePerm(random),
	}
}

// generatePerm returns a shuffled permutation of [0, perlinPointCount)
func generatePerm(random *rand.Rand) []int {
	perm := make([]int, perlinPointCount)
	for i := range perm {
		perm[i] = i
	}
	random.Shuffle(len(perm), func(i, j int) {
		perm[i], perm[j] = perm[j], perm[i]
	})
	return perm
}

// Noise returns smoothed noise in [0, 1] at the given point
func (p *Perlin) Noise(point core.Vec3) float64 {
	u := point.X - math.Floor(point.X)
	v := point.Y - math.Floor(point.Y)
	w := point.Z - math.Floor(point.Z)

	// Hermite smoothing removes Mach banding at lattice boundaries
	u = u * u * (3 - 2*u)
	v = v * v * (3 - 2*v)
	w = w * w * (3 - 2*w)

	i := int(math.Floor(point.X))
	j := int(math.Floor(point.Y))
	k := int(math.Floor(point.Z))

	var c [2][2][2]float64
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = p.randFloat[p.permX[(i+di)&255]^
					p.permY[(j+dj)&255]^
					p.permZ[(k+dk)&255]]
			}
		}
	}

	return trilinearInterp(c, u, v, w)
}

// trilinearInterp blends the eight lattice corner values
func trilinearInterp(c [2][2][2]float64, u, v, w float64) float64 {
	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				accum += (fi*u + (1-fi)*(1-u)) *
					(fj*v + (1-fj)*(1-v)) *
					(fk*w + (1-fk)*(1-w)) *
					c[i][j][k]
			}
		}
	}
	return accum
}

// Turbulence sums absolute noise over geometrically increasing frequencies
func (p *Perlin) Turbulence(point core.Vec3, depth int) float64 {
	accum := 0.0
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * p.Noise(point)
		weight *= 0.5
		point = point.Multiply(2)
	}
	return math.Abs(accum)
}

// NoiseTexture renders Perlin turbulence as a gray marble-like pattern
type NoiseTexture struct {
	noise *Perlin
	Scale float64
}

// NewNoiseTexture creates a noise texture with the given frequency scale
func NewNoiseTexture(scale float64, random *rand.Rand) *NoiseTexture {
	return &NoiseTexture{noise: NewPerlin(random), Scale: scale}
}

// Value returns a gray level driven by a turbulence-perturbed sine wave
func (n *NoiseTexture) Value(uv core.Vec2, point core.Vec3) core.Vec3 {
	gray := 0.5 * (1 + math.Sin(n.Scale*point.Z+10*n.noise.Turbulence(point, 7)))
	return core.NewVec3(gray, gray, gray)
}
