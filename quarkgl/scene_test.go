package quarkgl

import (
	"testing"

	"quark/math3d"
)

func TestAddMeshDefaults(t *testing.T) {
	s := CreateScene(1)
	id := s.AddMesh(NewCubeMesh(1))
	if id != 0 {
		t.Fatalf("id=%d", id)
	}
	if s.AddMesh(NewCubeMesh(1)) != -1 {
		t.Fatal("expected full scene")
	}

	m, ok := s.Mesh(id)
	if !ok {
		t.Fatal("mesh missing")
	}
	if m.Orientation != math3d.Rotor3Identity() || m.Scale != 1 || !m.Enabled {
		t.Fatalf("defaults: orientation=%+v scale=%v enabled=%v", m.Orientation, m.Scale, m.Enabled)
	}
	if m.Material != (Material{BaseColor: RGB(0xCC, 0xCC, 0xCC)}) {
		t.Fatalf("default material=%+v", m.Material)
	}
	if m.Model() != math3d.Mat4Identity() {
		t.Fatalf("identity model=%v", m.Model())
	}

	s.RemoveMesh(id)
	if _, ok := s.Mesh(id); ok {
		t.Fatal("mesh still present after remove")
	}
	if s.AddMesh(NewCubeMesh(1)) != 0 {
		t.Fatal("slot not reused")
	}
}

func TestMeshModelAppliesRotorThenTranslation(t *testing.T) {
	r := math3d.NewRotor3Exact(math3d.V3(1, 0, 0), math3d.V3(0, 1, 0))
	m := Mesh{Position: math3d.V3(0, 0, -5), Orientation: r, Scale: 2}

	got := m.Model().TransformPoint(math3d.V3(1, 0, 0))
	if !got.ApproxEqual(math3d.V3(0, 2, -5), 1e-5) {
		t.Fatalf("model maps x to %v", got)
	}
}

func TestUpdateIgnoresInvalidIDs(t *testing.T) {
	s := CreateScene(2)
	s.UpdateMeshOrientation(1, math3d.Rotor3{})
	s.UpdateMeshPosition(-1, math3d.V3(1, 1, 1))
	s.SetMeshEnabled(5, true)

	var nilScene *Scene
	if nilScene.AddMesh(Mesh{}) != -1 {
		t.Fatal("nil scene accepted a mesh")
	}
}

func TestCubeMeshFacesPointOutward(t *testing.T) {
	m := NewCubeMesh(2)
	if len(m.Vertices) != 24 || len(m.Indices) != 36 {
		t.Fatalf("cube has %d vertices, %d indices", len(m.Vertices), len(m.Indices))
	}
	for i := 0; i < len(m.Indices); i += 3 {
		a := m.Vertices[m.Indices[i]]
		n := triangleNormal(a.Pos, m.Vertices[m.Indices[i+1]].Pos, m.Vertices[m.Indices[i+2]].Pos)
		if !n.ApproxEqual(a.Normal, 1e-6) {
			t.Fatalf("triangle %d normal %v, face normal %v", i/3, n, a.Normal)
		}
		if a.Pos.Dot(a.Normal) <= 0 {
			t.Fatalf("triangle %d faces inward", i/3)
		}
	}
}

func TestTorusMeshFacesPointOutward(t *testing.T) {
	m := NewTorusMesh(1, 0.3, 12, 8)
	if len(m.Vertices) != 96 || len(m.Indices) != 12*8*6 {
		t.Fatalf("torus has %d vertices, %d indices", len(m.Vertices), len(m.Indices))
	}
	for i := 0; i < len(m.Indices); i += 3 {
		a := m.Vertices[m.Indices[i]]
		b := m.Vertices[m.Indices[i+1]]
		c := m.Vertices[m.Indices[i+2]]
		n := triangleNormal(a.Pos, b.Pos, c.Pos)
		avg := a.Normal.Add(b.Normal).Add(c.Normal)
		if n.Dot(avg) <= 0 {
			t.Fatalf("triangle %d faces inward", i/3)
		}
	}
}
