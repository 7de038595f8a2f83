package quarkgl

import (
	"github.com/chewxy/math32"

	"quark/math3d"
)

var (
	axisX = math3d.V3(1, 0, 0)
	axisY = math3d.V3(0, 1, 0)
)

// OrbitController provides basic orbit/zoom interactions for a camera.
//
// The camera offset (0, 0, Radius) is pitched around x and then yawed around
// y. It does not depend on any input system.
type OrbitController struct {
	Target math3d.Vec3
	Yaw    float32
	Pitch  float32
	Radius float32

	MinRadius float32
	MaxRadius float32
}

// Orientation returns the rotor that carries the +z offset to the camera.
func (c *OrbitController) Orientation() math3d.Rotor3 {
	pitch := math3d.Rotor3FromAxisAngle(axisX, -c.Pitch)
	yaw := math3d.Rotor3FromAxisAngle(axisY, c.Yaw)
	return pitch.Then(yaw)
}

func (c *OrbitController) Apply(cam *Camera) {
	if cam == nil {
		return
	}
	r := c.clampRadius(c.Radius)
	if r == 0 {
		r = 3
	}

	cam.Position = c.Target.Add(c.Orientation().Rotate(math3d.V3(0, 0, r)))
	cam.Target = c.Target
	if cam.Up == (math3d.Vec3{}) {
		cam.Up = axisY
	}
}

// Rotate adds to yaw and pitch. Pitch stays short of the poles so the
// look-at up vector never lines up with the view direction.
func (c *OrbitController) Rotate(deltaYaw, deltaPitch float32) {
	const limit = math32.Pi/2 - 0.01
	c.Yaw += deltaYaw
	c.Pitch = max(-limit, min(limit, c.Pitch+deltaPitch))
}

func (c *OrbitController) Zoom(delta float32) {
	c.Radius = c.clampRadius(c.Radius + delta)
}

func (c *OrbitController) clampRadius(r float32) float32 {
	if c.MinRadius != 0 && r < c.MinRadius {
		r = c.MinRadius
	}
	if c.MaxRadius != 0 && r > c.MaxRadius {
		r = c.MaxRadius
	}
	return r
}

// Arcball turns pointer drags into rotors (Shoemake's arcball).
//
// Screen points are lifted onto a unit sphere centered in the viewport and
// expressed in world space through the camera basis. A drag from p to q
// yields NewRotor3(p, q), which turns by twice the arc between them; that
// doubling is what makes the arcball path independent.
type Arcball struct {
	W, H int
	// Radius of the sphere as a fraction of half the smaller viewport side.
	Radius float32

	right, up, back math3d.Vec3

	from     math3d.Vec3
	dragging bool
}

// NewArcball returns an arcball for a w×h viewport seen through cam.
func NewArcball(w, h int, cam Camera) *Arcball {
	a := &Arcball{W: w, H: h, Radius: 0.9}
	a.SetView(cam)
	return a
}

// SetView updates the camera basis used to express sphere points.
func (a *Arcball) SetView(cam Camera) {
	v := cam.View()
	a.right = math3d.V3(v[0], v[1], v[2])
	a.up = math3d.V3(v[4], v[5], v[6])
	a.back = math3d.V3(v[8], v[9], v[10])
}

// Dragging reports whether a drag is in progress.
func (a *Arcball) Dragging() bool { return a.dragging }

// Begin starts a drag at pixel x, y.
func (a *Arcball) Begin(x, y int) {
	a.from = a.spherePoint(x, y)
	a.dragging = true
}

// Drag moves the drag to pixel x, y and returns the incremental rotor since
// the previous call. It returns the identity when no drag is active.
func (a *Arcball) Drag(x, y int) math3d.Rotor3 {
	if !a.dragging {
		return math3d.Rotor3Identity()
	}
	to := a.spherePoint(x, y)
	r := math3d.NewRotor3(a.from, to)
	a.from = to
	return r
}

// End finishes the drag.
func (a *Arcball) End() { a.dragging = false }

func (a *Arcball) spherePoint(x, y int) math3d.Vec3 {
	d := float32(min(a.W, a.H)) * 0.5 * a.Radius
	if d <= 0 {
		d = 1
	}
	px := (float32(x) - float32(a.W)*0.5) / d
	py := (float32(a.H)*0.5 - float32(y)) / d

	var p math3d.Vec3
	if r2 := px*px + py*py; r2 <= 1 {
		p = math3d.V3(px, py, math32.Sqrt(1-r2))
	} else {
		p = math3d.V3(px, py, 0).Normalize()
	}
	return a.right.Mul(p.X).Add(a.up.Mul(p.Y)).Add(a.back.Mul(p.Z)).Normalize()
}
