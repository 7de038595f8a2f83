package app

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"quark/hal"
	"quark/math3d"
	"quark/quarkgl"
)

// ErrQuit is returned by the step function once the user asks to leave.
var ErrQuit = errors.New("quit")

const (
	MeshCube  = "cube"
	MeshTorus = "torus"
)

// Config selects what the viewer shows and how the orientation evolves.
type Config struct {
	Mesh string

	// SpinDegPerSec is the automatic spin speed; 0 disables spinning.
	SpinDegPerSec float32
	// SpinAxis is the world-space spin axis. Zero means a tilted default.
	SpinAxis math3d.Vec3

	// RenormalizeEvery normalizes the orientation after this many
	// compositions.
	RenormalizeEvery int

	Wireframe bool

	// LogDrift logs |R| before each renormalization.
	LogDrift bool
}

// DefaultConfig is the configuration the host binary starts from.
func DefaultConfig() Config {
	return Config{
		Mesh:             MeshCube,
		SpinDegPerSec:    45,
		RenormalizeEvery: 64,
	}
}

func (c Config) withDefaults() Config {
	if c.Mesh == "" {
		c.Mesh = MeshCube
	}
	if c.RenormalizeEvery <= 0 {
		c.RenormalizeEvery = 64
	}
	if c.SpinAxis.Magnitude() == 0 {
		c.SpinAxis = math3d.V3(0.3, 1, 0.2)
	}
	c.SpinAxis = c.SpinAxis.Normalize()
	return c
}

// New creates the viewer with the default configuration.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, DefaultConfig())
}

// NewWithConfig builds the viewer and returns its per-frame step.
//
// Each call drains pending input and ticks, advances the orientation, draws
// one frame and presents it. The step returns ErrQuit after Esc.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	v, err := newViewer(h, cfg)
	if err != nil {
		return func() error { return err }
	}
	return guard(h, v.step)
}

const (
	keyStep    = 15 * math32.Pi / 180
	zoomStep   = 0.25
	frameLabel = "quark"
)

var (
	axisX = math3d.V3(1, 0, 0)
	axisY = math3d.V3(0, 1, 0)
)

type viewer struct {
	cfg Config
	log hal.Logger

	fb     hal.Framebuffer
	target *quarkgl.RGB565Target
	r      *quarkgl.Renderer
	s      *quarkgl.Scene
	meshID int

	orbit quarkgl.OrbitController
	ball  *quarkgl.Arcball
	hud   *hud

	keys  <-chan hal.KeyEvent
	ptr   <-chan hal.PointerEvent
	ticks <-chan uint64

	orient  math3d.Rotor3
	appends int
	rate    float32 // radians per tick
	paused  bool
	quit    bool

	lastTick uint64
	haveTick bool
}

func newViewer(h hal.HAL, cfg Config) (*viewer, error) {
	if h == nil {
		return nil, errors.New("app: nil HAL")
	}
	cfg = cfg.withDefaults()

	disp := h.Display()
	if disp == nil {
		return nil, fmt.Errorf("app: display: %w", hal.ErrNotImplemented)
	}
	fb := disp.Framebuffer()
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 {
		return nil, fmt.Errorf("app: rgb565 framebuffer: %w", hal.ErrNotImplemented)
	}
	w, hgt := fb.Width(), fb.Height()
	if w <= 0 || hgt <= 0 {
		return nil, fmt.Errorf("app: invalid framebuffer size %dx%d", w, hgt)
	}

	mesh, err := buildMesh(cfg.Mesh)
	if err != nil {
		return nil, err
	}

	v := &viewer{
		cfg:    cfg,
		log:    h.Logger(),
		fb:     fb,
		target: &quarkgl.RGB565Target{Stride: fb.StrideBytes(), W: w, H: hgt},
		r:      quarkgl.NewRenderer(w, hgt, true),
		s:      quarkgl.CreateScene(1),
		orient: math3d.Rotor3Identity(),
		rate:   cfg.SpinDegPerSec * math32.Pi / 180 / 1000,
		hud:    newHUD(fb),
	}
	v.r.ClearColor = quarkgl.RGB(0x05, 0x08, 0x12)
	if cfg.Wireframe {
		v.r.Mode = quarkgl.RenderWireframe
	}
	v.meshID = v.s.AddMesh(mesh)

	v.orbit = quarkgl.OrbitController{Pitch: 0.2, Radius: 3.2, MinRadius: 1.5, MaxRadius: 12}
	v.ball = quarkgl.NewArcball(w, hgt, v.s.Camera)
	v.applyCamera()

	if in := h.Input(); in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			v.keys = kbd.Events()
		}
		if p := in.Pointer(); p != nil {
			v.ptr = p.Events()
		}
	}
	if t := h.Time(); t != nil {
		v.ticks = t.Ticks()
	}

	v.logf("quark: mesh=%s spin=%.1fdeg/s renorm=%d mode=%s",
		cfg.Mesh, cfg.SpinDegPerSec, cfg.RenormalizeEvery, v.r.Mode)
	return v, nil
}

func buildMesh(name string) (quarkgl.Mesh, error) {
	switch name {
	case MeshCube:
		return quarkgl.NewCubeMesh(1.2), nil
	case MeshTorus:
		m := quarkgl.NewTorusMesh(1.0, 0.38, 32, 16)
		m.Material.BaseColor = quarkgl.RGB(0xFF, 0x99, 0x33)
		return m, nil
	default:
		return quarkgl.Mesh{}, fmt.Errorf("app: unknown mesh %q", name)
	}
}

func (v *viewer) step() error {
	v.drainKeys()
	if v.quit {
		v.logf("quark: quit")
		return ErrQuit
	}
	v.drainPointer()
	v.spin(v.drainTicks())

	v.s.UpdateMeshOrientation(v.meshID, v.orient)
	v.render()
	if err := v.fb.Present(); err != nil {
		return fmt.Errorf("app: present: %w", err)
	}
	return nil
}

func (v *viewer) drainKeys() {
	for {
		select {
		case ev, ok := <-v.keys:
			if !ok {
				v.keys = nil
				return
			}
			if ev.Press {
				v.handleKey(ev)
			}
		default:
			return
		}
	}
}

func (v *viewer) handleKey(ev hal.KeyEvent) {
	switch ev.Code {
	case hal.KeyEscape:
		v.quit = true
	case hal.KeyLeft:
		v.turn(axisY, -keyStep)
	case hal.KeyRight:
		v.turn(axisY, keyStep)
	case hal.KeyUp:
		v.turn(axisX, -keyStep)
	case hal.KeyDown:
		v.turn(axisX, keyStep)
	case hal.KeySpace:
		v.paused = !v.paused
	case hal.KeyUnknown:
		switch ev.Rune {
		case 'w':
			if v.r.Mode == quarkgl.RenderWireframe {
				v.r.Mode = quarkgl.RenderSolidFlat
			} else {
				v.r.Mode = quarkgl.RenderWireframe
			}
		case 'm':
			v.r.Mode = v.r.Mode.Next()
		case 'r':
			v.orient = math3d.Rotor3Identity()
			v.appends = 0
		case '+', '=':
			v.orbit.Zoom(-zoomStep)
			v.applyCamera()
		case '-':
			v.orbit.Zoom(zoomStep)
			v.applyCamera()
		case 'h':
			v.orbit.Rotate(-keyStep, 0)
			v.applyCamera()
		case 'l':
			v.orbit.Rotate(keyStep, 0)
			v.applyCamera()
		case 'k':
			v.orbit.Rotate(0, keyStep)
			v.applyCamera()
		case 'j':
			v.orbit.Rotate(0, -keyStep)
			v.applyCamera()
		case 'o':
			if v.s.Camera.Type == quarkgl.CameraOrtho {
				v.s.Camera.Type = quarkgl.CameraPerspective
			} else {
				v.s.Camera.Type = quarkgl.CameraOrtho
			}
			v.applyCamera()
		case 'q':
			v.quit = true
		}
	}
}

// applyCamera moves the camera to the orbit position. The orthographic
// half-height matches what the perspective frustum shows at the target.
func (v *viewer) applyCamera() {
	cam := &v.s.Camera
	v.orbit.Apply(cam)
	cam.OrthoSize = cam.Position.Sub(cam.Target).Magnitude() * math32.Tan(cam.FOVYRad/2)
	v.ball.SetView(*cam)
}

func (v *viewer) drainPointer() {
	for {
		select {
		case ev, ok := <-v.ptr:
			if !ok {
				v.ptr = nil
				return
			}
			switch {
			case ev.Down && !v.ball.Dragging():
				v.ball.Begin(ev.X, ev.Y)
			case ev.Down:
				v.compose(v.ball.Drag(ev.X, ev.Y))
			case v.ball.Dragging():
				v.ball.End()
			}
		default:
			return
		}
	}
}

// drainTicks returns the number of ticks elapsed since the previous call.
// Dropped ticks are accounted for by the sequence numbers.
func (v *viewer) drainTicks() uint64 {
	var elapsed uint64
	for {
		select {
		case seq, ok := <-v.ticks:
			if !ok {
				v.ticks = nil
				return elapsed
			}
			if !v.haveTick {
				v.haveTick = true
				v.lastTick = seq
				continue
			}
			if seq > v.lastTick {
				elapsed += seq - v.lastTick
				v.lastTick = seq
			}
		default:
			return elapsed
		}
	}
}

func (v *viewer) spin(ticks uint64) {
	if v.paused || ticks == 0 || v.rate == 0 {
		return
	}
	v.turn(v.cfg.SpinAxis, v.rate*float32(ticks))
}

// turn rotates the current orientation about a world axis.
func (v *viewer) turn(axis math3d.Vec3, angle float32) {
	v.compose(math3d.Rotor3FromAxisAngle(axis, angle))
}

// compose applies next after the current orientation and renormalizes
// periodically to bound float drift.
func (v *viewer) compose(next math3d.Rotor3) {
	v.orient = v.orient.Then(next)
	v.appends++
	if v.appends < v.cfg.RenormalizeEvery {
		return
	}
	if v.cfg.LogDrift {
		v.logf("quark: renormalize |R|=%.7f", v.orient.Magnitude())
	}
	v.orient = v.orient.Normalize()
	v.appends = 0
}

func (v *viewer) render() {
	v.target.Buf = v.fb.Buffer()
	v.r.Render(v.target, v.s)

	r := v.orient
	proj := "persp"
	if v.s.Camera.Type == quarkgl.CameraOrtho {
		proj = "ortho"
	}
	state := "spin"
	if v.paused || v.rate == 0 {
		state = "hold"
	}
	v.hud.lines(hudTitle,
		fmt.Sprintf("%s  %s  %s  %s  %s", frameLabel, v.cfg.Mesh, v.r.Mode, proj, state),
		fmt.Sprintf("s  %+.4f  xy %+.4f", r.S, r.XY),
		fmt.Sprintf("yz %+.4f  zx %+.4f", r.YZ, r.ZX),
		fmt.Sprintf("|R| %.6f  tri %d/%d", r.Magnitude(), v.r.Stats.Drawn, v.r.Stats.Submitted),
	)
	v.hud.footer("arrows turn  hjkl orbit  o ortho  w wire  m mode  r reset  spc pause  esc quit")
}

func (v *viewer) logf(format string, args ...any) {
	if v.log == nil {
		return
	}
	v.log.WriteLineString(fmt.Sprintf(format, args...))
}
