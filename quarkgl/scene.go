package quarkgl

import "quark/math3d"

// Material is a minimal surface description.
type Material struct {
	BaseColor Color
}

// LightMode defines minimal lighting options.
type LightMode uint8

const (
	LightOff LightMode = iota
	LightAmbientDirectional
)

// Light is a minimal light setup.
type Light struct {
	Mode      LightMode
	Ambient   float32     // 0..1
	Dir       math3d.Vec3 // direction *towards* the scene
	DirAmount float32     // 0..1
}

// CameraType selects camera projection.
type CameraType uint8

const (
	CameraPerspective CameraType = iota
	CameraOrtho
)

// Camera describes the viewing transform.
type Camera struct {
	Type CameraType

	Position math3d.Vec3
	Target   math3d.Vec3
	Up       math3d.Vec3

	// Perspective.
	FOVYRad float32

	// Orthographic (half-height).
	OrthoSize float32

	Near float32
	Far  float32
}

// View returns the camera view matrix. Position and Target must differ.
func (c Camera) View() math3d.Mat4 {
	up := c.Up
	if up == (math3d.Vec3{}) {
		up = math3d.V3(0, 1, 0)
	}
	return math3d.Mat4LookAt(c.Position, c.Target, up)
}

// Projection returns the projection matrix for a target aspect.
func (c Camera) Projection(aspect float32) math3d.Mat4 {
	switch c.Type {
	case CameraOrtho:
		size := c.OrthoSize
		if size == 0 {
			size = 1
		}
		top := size
		bottom := -size
		right := size * aspect
		left := -right
		return math3d.Mat4Ortho(left, right, bottom, top, c.Near, c.Far)
	default:
		fov := c.FOVYRad
		if fov == 0 {
			fov = 1
		}
		return math3d.Mat4Perspective(fov, aspect, c.Near, c.Far)
	}
}

// Vertex is a mesh vertex.
type Vertex struct {
	Pos    math3d.Vec3
	Normal math3d.Vec3
	Color  Color
}

// Mesh is a triangle mesh placed by position, orientation and uniform scale.
type Mesh struct {
	Enabled bool

	Vertices []Vertex
	Indices  []uint16 // triangle list

	Position    math3d.Vec3
	Orientation math3d.Rotor3
	Scale       float32

	Material Material
}

// Model returns Translate(Position) · Orientation · Scale.
//
// Orientation must be a unit rotor; a drifted rotor shows up as a size change.
func (m Mesh) Model() math3d.Mat4 {
	s := m.Scale
	if s == 0 {
		s = 1
	}
	return math3d.Mat4Translate(m.Position).
		Mul(m.Orientation.RotationMat()).
		Mul(math3d.Mat4Scale(math3d.V3(s, s, s)))
}

// Scene is a collection of objects to render.
type Scene struct {
	Camera Camera
	Light  Light

	meshes []Mesh
	alive  []bool
}

// CreateScene allocates a scene with a fixed mesh capacity.
func CreateScene(maxMeshes int) *Scene {
	if maxMeshes < 0 {
		maxMeshes = 0
	}
	return &Scene{
		Camera: Camera{
			Type:      CameraPerspective,
			Position:  math3d.V3(0, 0, 3),
			Target:    math3d.V3(0, 0, 0),
			Up:        math3d.V3(0, 1, 0),
			FOVYRad:   1.0,
			Near:      0.05,
			Far:       100,
			OrthoSize: 1,
		},
		Light: Light{
			Mode:      LightAmbientDirectional,
			Ambient:   0.25,
			Dir:       math3d.V3(-1, -1, -1).Normalize(),
			DirAmount: 0.75,
		},
		meshes: make([]Mesh, maxMeshes),
		alive:  make([]bool, maxMeshes),
	}
}

// AddMesh adds a mesh to the scene and returns its id or -1 if full.
//
// A zero Orientation is replaced by the identity rotor.
func (s *Scene) AddMesh(m Mesh) int {
	if s == nil {
		return -1
	}
	for i := range s.meshes {
		if s.alive[i] {
			continue
		}
		if m.Orientation == (math3d.Rotor3{}) {
			m.Orientation = math3d.Rotor3Identity()
		}
		if m.Scale == 0 {
			m.Scale = 1
		}
		if m.Material.BaseColor == (Color{}) {
			m.Material.BaseColor = RGB(0xCC, 0xCC, 0xCC)
		}
		m.Enabled = true
		s.meshes[i] = m
		s.alive[i] = true
		return i
	}
	return -1
}

// RemoveMesh removes a mesh by id.
func (s *Scene) RemoveMesh(id int) {
	if !s.valid(id) {
		return
	}
	s.alive[id] = false
	s.meshes[id] = Mesh{}
}

// SetMeshEnabled enables/disables a mesh by id.
func (s *Scene) SetMeshEnabled(id int, enabled bool) {
	if !s.valid(id) {
		return
	}
	s.meshes[id].Enabled = enabled
}

// UpdateMeshOrientation replaces a mesh orientation by id.
func (s *Scene) UpdateMeshOrientation(id int, r math3d.Rotor3) {
	if !s.valid(id) {
		return
	}
	s.meshes[id].Orientation = r
}

// UpdateMeshPosition moves a mesh by id.
func (s *Scene) UpdateMeshPosition(id int, p math3d.Vec3) {
	if !s.valid(id) {
		return
	}
	s.meshes[id].Position = p
}

// Mesh returns a copy of the mesh with the given id.
func (s *Scene) Mesh(id int) (Mesh, bool) {
	if !s.valid(id) {
		return Mesh{}, false
	}
	return s.meshes[id], true
}

func (s *Scene) valid(id int) bool {
	return s != nil && id >= 0 && id < len(s.meshes) && s.alive[id]
}

func (s *Scene) eachMesh(fn func(m *Mesh)) {
	for i := range s.meshes {
		if !s.alive[i] {
			continue
		}
		fn(&s.meshes[i])
	}
}
