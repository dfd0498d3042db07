package graph

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/chewxy/math32"
	"github.com/gogpu/layerfx/internal/linear"
)

func TestGraphAddRemove(t *testing.T) {
	g := New()
	cam := NewPerspectiveCamera(45, 1, 1, 100)
	l1, l2 := NewPointLight(1, 0), NewPointLight(1, 0)
	mesh := &Mesh{}

	g.Add(cam)
	g.Add(l1)
	g.Add(l2)
	g.Add(mesh)
	g.Add(l1)
	g.Add(nil)

	if g.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", g.Len())
	}
	if got := len(g.Cameras()); got != 1 {
		t.Errorf("Cameras() = %d, want 1", got)
	}
	if got := g.Lights(); len(got) != 2 || got[0] != l1 || got[1] != l2 {
		t.Errorf("Lights() = %v, want [l1 l2]", got)
	}
	if got := g.Meshes(); len(got) != 1 || got[0] != mesh {
		t.Errorf("Meshes() = %v, want [mesh]", got)
	}

	if !g.Remove(mesh) {
		t.Error("Remove(mesh) = false, want true")
	}
	if g.Remove(mesh) {
		t.Error("second Remove(mesh) = true, want false")
	}
	if g.Contains(mesh) {
		t.Error("Contains(mesh) after Remove")
	}
}

func TestCameraProjectCenter(t *testing.T) {
	cam := NewPerspectiveCamera(45, 800.0/600.0, 1, 10000)
	cam.SetPosition(0, 0, 250)

	x, y, _, ok := cam.Project(linear.V3{}, 800, 600)
	if !ok {
		t.Fatal("origin should be visible")
	}
	if math32.Abs(x-400) > 0.01 || math32.Abs(y-300) > 0.01 {
		t.Errorf("Project(origin) = (%v, %v), want (400, 300)", x, y)
	}

	if _, _, _, ok := cam.Project(linear.V3{0, 0, 300}, 800, 600); ok {
		t.Error("point behind the camera should not be visible")
	}
}

func TestCameraAspect(t *testing.T) {
	cam := NewPerspectiveCamera(90, 1, 1, 100)
	cam.SetPosition(0, 0, 10)

	x1, _, _, _ := cam.Project(linear.V3{5, 0, 0}, 100, 100)

	cam.Aspect = 2
	cam.UpdateProjectionMatrix()
	x2, _, _, _ := cam.Project(linear.V3{5, 0, 0}, 100, 100)

	if x2 >= x1 {
		t.Errorf("wider aspect should move points toward the center: %v >= %v", x2, x1)
	}
}

func TestPointLightContribution(t *testing.T) {
	l := NewPointLight(2, 0)
	l.SetPosition(0, 10, 0)

	if got := l.Contribution(linear.V3{}, linear.V3{0, 1, 0}); math32.Abs(got-2) > 1e-5 {
		t.Errorf("facing light = %v, want 2", got)
	}
	if got := l.Contribution(linear.V3{}, linear.V3{0, -1, 0}); got != 0 {
		t.Errorf("facing away = %v, want 0", got)
	}

	l.Distance = 5
	if got := l.Contribution(linear.V3{}, linear.V3{0, 1, 0}); got != 0 {
		t.Errorf("out of range = %v, want 0", got)
	}
	l.Distance = 20
	if got := l.Contribution(linear.V3{}, linear.V3{0, 1, 0}); math32.Abs(got-1) > 1e-5 {
		t.Errorf("half range = %v, want 1", got)
	}
}

func TestMeshTransform(t *testing.T) {
	m := &Mesh{Position: linear.V3{1, 2, 3}, RotY: math32.Pi}
	tr := m.Transform()
	got := tr.MulV4(linear.V4{1, 0, 0, 1})
	if math32.Abs(got[0]-0) > 1e-5 || got[1] != 2 || math32.Abs(got[2]-3) > 1e-5 {
		t.Errorf("Transform ⋅ x = %v, want [0 2 3 1]", got)
	}
}

func TestBox(t *testing.T) {
	v := Box(2, 2, 2, 0)
	if len(v) != 12 {
		t.Errorf("Box with step 0 = %d vertices, want 12", len(v))
	}
	if dense := Box(2, 2, 2, 0.5); len(dense) != 48 {
		t.Errorf("Box with step 0.5 = %d vertices, want 48", len(dense))
	}
}

func TestPointRenderer(t *testing.T) {
	g := New()
	cam := NewPerspectiveCamera(45, 800.0/600.0, 1, 10000)
	cam.SetPosition(0, 0, 250)
	light := NewPointLight(1, 0)
	light.SetPosition(0, 1000, 0)
	g.Add(cam)
	g.Add(light)

	red := color.RGBA{R: 255, A: 255}
	g.Add(&Mesh{Vertices: []linear.V3{{0, 10, 0}}, Color: red, PointSize: 1})

	dst := image.NewRGBA(image.Rect(0, 0, 800, 600))
	r := NewPointRenderer()
	if err := r.Render(g, cam, dst); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	x, y, _, _ := cam.Project(linear.V3{0, 10, 0}, 800, 600)
	if got := dst.RGBAAt(int(x), int(y)); got != red {
		t.Errorf("lit point = %v, want %v", got, red)
	}
	if got := dst.RGBAAt(10, 10); got.A != 0 {
		t.Errorf("background = %v, want transparent", got)
	}
}

func TestPointRendererAmbientOnly(t *testing.T) {
	g := New()
	cam := NewPerspectiveCamera(45, 1, 1, 10000)
	cam.SetPosition(0, 0, 250)
	g.Add(&Mesh{Vertices: []linear.V3{{}}, Color: color.RGBA{R: 255, A: 255}, PointSize: 3})

	dst := image.NewRGBA(image.Rect(0, 0, 100, 100))
	if err := NewPointRenderer().Render(g, cam, dst); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	got := dst.RGBAAt(50, 50)
	if got.A != 255 || got.R == 0 || got.R == 255 {
		t.Errorf("ambient-lit point = %v, want partially lit red", got)
	}
}

func TestPointRendererNoCamera(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if err := NewPointRenderer().Render(New(), nil, dst); !errors.Is(err, ErrNoCamera) {
		t.Errorf("Render(nil camera) error = %v, want ErrNoCamera", err)
	}
}

func TestPointRendererSkipsHidden(t *testing.T) {
	g := New()
	cam := NewPerspectiveCamera(45, 1, 1, 10000)
	cam.SetPosition(0, 0, 250)
	g.Add(&Mesh{Vertices: []linear.V3{{}}, Color: color.RGBA{R: 255, A: 255}, PointSize: 3, Hidden: true})

	dst := image.NewRGBA(image.Rect(0, 0, 100, 100))
	if err := NewPointRenderer().Render(g, cam, dst); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := dst.RGBAAt(50, 50); got.A != 0 {
		t.Errorf("hidden mesh pixel = %v, want transparent", got)
	}
}
