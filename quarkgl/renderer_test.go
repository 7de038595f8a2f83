package quarkgl

import (
	"testing"

	"quark/math3d"
)

func newTestTarget(w, h int) *RGB565Target {
	return &RGB565Target{Buf: make([]byte, w*h*2), Stride: w * 2, W: w, H: h}
}

func unpack565(p uint16) (r, g, b int) {
	return int(p >> 11), int((p >> 5) & 0x3F), int(p & 0x1F)
}

func TestRenderCubeCullsBackFaces(t *testing.T) {
	tgt := newTestTarget(64, 64)
	s := CreateScene(1)
	s.AddMesh(NewCubeMesh(1))

	r := NewRenderer(64, 64, true)
	r.Render(tgt, s)

	if r.Stats.Submitted != 12 {
		t.Fatalf("submitted=%d", r.Stats.Submitted)
	}
	if r.Stats.Culled < 6 || r.Stats.Drawn+r.Stats.Culled+r.Stats.Clipped != 12 {
		t.Fatalf("stats=%+v", r.Stats)
	}
	p, ok := tgt.Pixel(32, 32)
	if !ok || p == 0 {
		t.Fatalf("center pixel=%#04x, want lit face", p)
	}
	if p, _ := tgt.Pixel(0, 0); p != 0 {
		t.Fatalf("corner pixel=%#04x, want clear color", p)
	}
}

func TestRenderFollowsOrientation(t *testing.T) {
	tgt := newTestTarget(64, 64)
	s := CreateScene(1)
	id := s.AddMesh(NewCubeMesh(1))
	s.Light.Mode = LightOff

	r := NewRenderer(64, 64, true)
	r.Mode = RenderSolidVertexColor

	r.Render(tgt, s)
	p, _ := tgt.Pixel(32, 32)
	if red, _, blue := unpack565(p); blue <= red {
		t.Fatalf("unrotated center=%#04x, want the blue +z face", p)
	}

	// Turn +x towards the camera.
	s.UpdateMeshOrientation(id, math3d.NewRotor3Exact(math3d.V3(1, 0, 0), math3d.V3(0, 0, 1)))
	r.Render(tgt, s)
	p, _ = tgt.Pixel(32, 32)
	if red, green, blue := unpack565(p); red <= blue || 2*red <= green {
		t.Fatalf("rotated center=%#04x, want the red +x face", p)
	}
}

func TestRenderOrthoKeepsSizeAtDistance(t *testing.T) {
	s := CreateScene(1)
	s.AddMesh(NewCubeMesh(1))
	s.Camera.Position = math3d.V3(0, 0, 8)
	r := NewRenderer(64, 64, true)

	// The ±0.5 faces cover x 16..47 under a unit half-height, however far
	// away the camera is. Perspective shrinks the cube to a few pixels.
	for _, tc := range []struct {
		typ  CameraType
		want bool
	}{
		{CameraOrtho, true},
		{CameraPerspective, false},
	} {
		tgt := newTestTarget(64, 64)
		s.Camera.Type = tc.typ
		r.Render(tgt, s)
		if r.Stats.Drawn == 0 || r.Stats.Culled < 2 {
			t.Fatalf("type %v stats=%+v", tc.typ, r.Stats)
		}
		if p, _ := tgt.Pixel(32, 32); p == 0 {
			t.Fatalf("type %v: center is clear", tc.typ)
		}
		if p, _ := tgt.Pixel(20, 32); (p != 0) != tc.want {
			t.Fatalf("type %v: pixel (20,32)=%#04x, lit want %v", tc.typ, p, tc.want)
		}
		if p, _ := tgt.Pixel(8, 32); p != 0 {
			t.Fatalf("type %v: pixel (8,32)=%#04x, want clear", tc.typ, p)
		}
	}
}

func TestRenderWireframeSkipsCulling(t *testing.T) {
	tgt := newTestTarget(48, 48)
	s := CreateScene(1)
	s.AddMesh(NewTorusMesh(1, 0.3, 8, 6))

	r := NewRenderer(48, 48, false)
	r.Mode = RenderWireframe
	r.Render(tgt, s)
	if r.Stats.Culled != 0 || r.Stats.Drawn == 0 {
		t.Fatalf("stats=%+v", r.Stats)
	}
}

func TestRenderDropsDisabledAndBehindCamera(t *testing.T) {
	tgt := newTestTarget(32, 32)
	s := CreateScene(2)
	hidden := s.AddMesh(NewCubeMesh(1))
	s.SetMeshEnabled(hidden, false)
	behind := s.AddMesh(NewCubeMesh(1))
	s.UpdateMeshPosition(behind, math3d.V3(0, 0, 10))

	r := NewRenderer(32, 32, true)
	r.Render(tgt, s)
	if r.Stats.Submitted != 12 || r.Stats.Clipped != 12 {
		t.Fatalf("stats=%+v", r.Stats)
	}
}

func TestRenderModeNext(t *testing.T) {
	m := RenderWireframe
	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		seen[m.String()] = true
		m = m.Next()
	}
	if m != RenderWireframe || len(seen) != 3 {
		t.Fatalf("cycle ended at %v, saw %v", m, seen)
	}
}
