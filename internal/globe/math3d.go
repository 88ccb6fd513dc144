package globe

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Angles are in degrees throughout the package and only become radians here.

// RotateX rotates the vector around the X axis
func RotateX(v mgl64.Vec3, degrees float64) mgl64.Vec3 {
	return mgl64.Rotate3DX(mgl64.DegToRad(degrees)).Mul3x1(v)
}

// RotateY rotates the vector around the Y axis
func RotateY(v mgl64.Vec3, degrees float64) mgl64.Vec3 {
	return mgl64.Rotate3DY(mgl64.DegToRad(degrees)).Mul3x1(v)
}

// RotateZ rotates the vector around the Z axis
func RotateZ(v mgl64.Vec3, degrees float64) mgl64.Vec3 {
	return mgl64.Rotate3DZ(mgl64.DegToRad(degrees)).Mul3x1(v)
}

// RotateXYZ applies X, then Y, then Z. Each stage consumes the previous
// stage's output, so the order is part of the contract.
func RotateXYZ(v mgl64.Vec3, rx, ry, rz float64) mgl64.Vec3 {
	return RotateZ(RotateY(RotateX(v, rx), ry), rz)
}

// Perspective returns the depth-divide factor for a point at depth z.
// It is not clamped: z <= -FocalLength inverts or blows up.
func Perspective(z float64) float64 {
	return FocalLength / (FocalLength + z)
}

// Spherical converts physics-convention spherical coordinates
// (theta azimuth, phi polar) to Cartesian.
func Spherical(r, theta, phi float64) mgl64.Vec3 {
	sinPhi := math.Sin(phi)
	return mgl64.Vec3{
		r * sinPhi * math.Cos(theta),
		r * sinPhi * math.Sin(theta),
		r * math.Cos(phi),
	}
}
