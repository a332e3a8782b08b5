// Package camera provides an orbit camera for the 3D viewport.
package camera

import "math"

// Camera orbits a target point at a fixed distance, controlled by yaw and
// pitch angles. Angles are in radians.
type Camera struct {
	// Target is the orbit center in world coordinates
	TargetX, TargetY, TargetZ float32

	Yaw      float32
	Pitch    float32
	Distance float32

	// Distance constraints
	MinDistance, MaxDistance float32
}

// pitchLimit keeps the camera off the poles so the view-up vector stays
// well defined.
const pitchLimit = float32(math.Pi/2) - 0.05

// New creates a camera orbiting the origin from a three-quarter view.
func New(distance float32) *Camera {
	c := &Camera{
		Yaw:         0.8,
		Pitch:       0.5,
		MinDistance: 2.0,
		MaxDistance: 60.0,
	}
	c.SetDistance(distance)
	return c
}

// Position returns the camera's world position for the current orbit state.
func (c *Camera) Position() (x, y, z float32) {
	cy := float32(math.Cos(float64(c.Yaw)))
	sy := float32(math.Sin(float64(c.Yaw)))
	cp := float32(math.Cos(float64(c.Pitch)))
	sp := float32(math.Sin(float64(c.Pitch)))

	x = c.TargetX + c.Distance*cp*cy
	y = c.TargetY + c.Distance*sp
	z = c.TargetZ + c.Distance*cp*sy
	return x, y, z
}

// Orbit rotates the camera around the target by the given angle deltas.
func (c *Camera) Orbit(dyaw, dpitch float32) {
	c.Yaw += dyaw
	if c.Yaw > 2*math.Pi {
		c.Yaw -= 2 * math.Pi
	} else if c.Yaw < 0 {
		c.Yaw += 2 * math.Pi
	}

	c.Pitch += dpitch
	if c.Pitch > pitchLimit {
		c.Pitch = pitchLimit
	} else if c.Pitch < -pitchLimit {
		c.Pitch = -pitchLimit
	}
}

// SetDistance sets the orbit radius, clamped to the distance constraints.
func (c *Camera) SetDistance(d float32) {
	if d < c.MinDistance {
		d = c.MinDistance
	}
	if d > c.MaxDistance {
		d = c.MaxDistance
	}
	c.Distance = d
}

// Dolly multiplies the orbit radius by the given factor.
func (c *Camera) Dolly(factor float32) {
	c.SetDistance(c.Distance * factor)
}

// SetTarget recenters the orbit on a new world point.
func (c *Camera) SetTarget(x, y, z float32) {
	c.TargetX, c.TargetY, c.TargetZ = x, y, z
}

// Reset returns the camera to the default framing.
func (c *Camera) Reset() {
	c.TargetX, c.TargetY, c.TargetZ = 0, 0, 0
	c.Yaw = 0.8
	c.Pitch = 0.5
	c.SetDistance(14.0)
}
