package physics

import (
	"github.com/lixenwraith/lines/vmath"
)

// Bounce reflects a circle off the field walls
// The crossing velocity component is negated and the position clamped to [radius, extent-radius]; speed is preserved exactly
func Bounce(pos, vel vmath.Vec2, radius float64, field Field) (vmath.Vec2, vmath.Vec2, bool) {
	bounced := false

	if pos.X-radius < 0 || pos.X+radius > field.Width {
		vel = vmath.ReflectAxisX(vel)
		pos.X = vmath.Clamp(pos.X, radius, field.Width-radius)
		bounced = true
	}
	if pos.Y-radius < 0 || pos.Y+radius > field.Height {
		vel = vmath.ReflectAxisY(vel)
		pos.Y = vmath.Clamp(pos.Y, radius, field.Height-radius)
		bounced = true
	}

	return pos, vel, bounced
}

// Integrate advances pos by vel over dt seconds
func Integrate(pos, vel vmath.Vec2, dt float64) vmath.Vec2 {
	return vmath.V2Add(pos, vmath.V2Scale(vel, dt))
}
