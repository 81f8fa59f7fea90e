package julia

import (
	"image/color"
	"testing"

	"github.com/joshvictor1024/go-julia/pkg/types"
)

// recordSurface counts writes and keeps the last color per pixel.
type recordSurface struct {
	writes map[types.Pointi]int
	pixels map[types.Pointi]color.RGBA
}

func newRecordSurface() *recordSurface {
	return &recordSurface{
		writes: make(map[types.Pointi]int),
		pixels: make(map[types.Pointi]color.RGBA),
	}
}

func (s *recordSurface) Set(x, y int, c color.RGBA) {
	p := types.Pointi{X: x, Y: y}
	s.writes[p]++
	s.pixels[p] = c
}

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer(DefaultParams())
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return r
}

func TestRenderer_EveryPixelOnce(t *testing.T) {
	r := newTestRenderer(t)
	s := newRecordSurface()
	r.Render(s, types.Pointi{X: 2, Y: 2}, 4, 4)

	if len(s.writes) != 16 {
		t.Fatalf("wrote %d distinct pixels, want 16", len(s.writes))
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if n := s.writes[types.Pointi{X: x, Y: y}]; n != 1 {
				t.Errorf("pixel (%d, %d) written %d times, want 1", x, y, n)
			}
		}
	}
}

func TestRenderer_PixelColors(t *testing.T) {
	r := newTestRenderer(t)
	s := newRecordSurface()
	const w, h = 6, 5
	pointer := types.Pointi{X: 1, Y: 4}
	f := r.Render(s, pointer, w, h)

	wantC := PixelToPlane(1, 4, w, h)
	if f.Rule.C() != wantC || f.Rule.Degree() != 5 {
		t.Fatalf("frame rule = %s, want c %v degree 5", f.Rule, wantC)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			it := CountIterations(10, 4, PixelToPlane(x, y, w, h), NewRule(wantC, 5))
			want := ColorOf(it).RGBA()
			if got := s.pixels[types.Pointi{X: x, Y: y}]; got != want {
				t.Errorf("pixel (%d, %d) = %v, want %v (%d iterations)", x, y, got, want, it)
			}
		}
	}
}

func TestRenderer_OriginPixelNeverEscapes(t *testing.T) {
	r := newTestRenderer(t)
	s := newRecordSurface()
	// pointer in the middle gives c = 0, and pixel (2, 2) maps to the origin
	r.Render(s, types.Pointi{X: 2, Y: 2}, 4, 4)
	want := ColorOf(10).RGBA()
	if got := s.pixels[types.Pointi{X: 2, Y: 2}]; got != want {
		t.Errorf("origin pixel = %v, want %v", got, want)
	}
}

func TestRenderer_RowBands(t *testing.T) {
	r := newTestRenderer(t)
	whole := newRecordSurface()
	r.Render(whole, types.Pointi{X: 3, Y: 1}, 7, 9)

	banded := newRecordSurface()
	f := r.Begin(types.Pointi{X: 3, Y: 1}, 7, 9)
	r.RenderRows(banded, f, -2, 4)
	r.RenderRows(banded, f, 4, 20)

	if len(banded.pixels) != len(whole.pixels) {
		t.Fatalf("banded wrote %d pixels, whole wrote %d", len(banded.pixels), len(whole.pixels))
	}
	for p, c := range whole.pixels {
		if banded.pixels[p] != c || banded.writes[p] != 1 {
			t.Errorf("pixel %s: banded %v x%d, whole %v", p, banded.pixels[p], banded.writes[p], c)
		}
	}
}

func TestRenderer_EmptyCanvas(t *testing.T) {
	r := newTestRenderer(t)
	s := newRecordSurface()
	for _, size := range []types.Pointi{{X: 0, Y: 4}, {X: 4, Y: 0}, {X: -1, Y: -1}} {
		f := r.Render(s, types.Pointi{}, size.X, size.Y)
		if !f.Empty() {
			t.Errorf("frame for %s is not empty", size)
		}
	}
	if len(s.writes) != 0 {
		t.Errorf("empty canvases wrote %d pixels", len(s.writes))
	}
}

type discardSurface struct{}

func (discardSurface) Set(int, int, color.RGBA) {}

func BenchmarkRenderer_Render(b *testing.B) {
	r, err := NewRenderer(DefaultParams())
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < b.N; i++ {
		r.Render(discardSurface{}, types.Pointi{X: 300, Y: 250}, 800, 600)
	}
}
