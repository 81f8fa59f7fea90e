package julia

import (
	"image/color"

	"github.com/joshvictor1024/go-julia/pkg/types"
	"github.com/pkg/errors"
)

// Surface is the host's pixel buffer. Set must write straight into
// the buffer; drawing calls per pixel are far too slow.
type Surface interface {
	Set(x, y int, c color.RGBA)
}

// Frame is everything a row band needs: the rule for this frame's c
// and the canvas size it was derived against.
type Frame struct {
	Rule   Rule
	Width  int
	Height int
}

// Empty reports whether the frame has no pixels to draw.
func (f Frame) Empty() bool {
	return f.Width <= 0 || f.Height <= 0
}

type Renderer struct {
	params  Params
	palette []color.RGBA // [iterations]
}

func NewRenderer(p Params) (*Renderer, error) {
	if err := p.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid escape parameters")
	}
	palette := make([]color.RGBA, p.MaxIterations+1)
	for it := range palette {
		palette[it] = ColorOf(it).RGBA()
	}
	return &Renderer{
		params:  p,
		palette: palette,
	}, nil
}

// Begin derives c from the pointer and builds the frame's rule once.
func (r *Renderer) Begin(pointer types.Pointi, width, height int) Frame {
	f := Frame{Width: width, Height: height}
	if f.Empty() {
		return f
	}
	c := PixelToPlane(pointer.X, pointer.Y, width, height)
	f.Rule = NewRule(c, r.params.Degree)
	return f
}

// RenderRows draws rows [y0, y1) of f. Disjoint bands of the same frame
// may be drawn concurrently as long as dst tolerates writes to distinct
// pixels.
func (r *Renderer) RenderRows(dst Surface, f Frame, y0, y1 int) {
	if f.Empty() {
		return
	}
	if y0 < 0 {
		y0 = 0
	}
	if y1 > f.Height {
		y1 = f.Height
	}
	maxIts, escapeSq := r.params.MaxIterations, r.params.EscapeRadiusSq
	for y := y0; y < y1; y++ {
		for x := 0; x < f.Width; x++ {
			z := PixelToPlane(x, y, f.Width, f.Height)
			it := CountIterations(maxIts, escapeSq, z, f.Rule)
			dst.Set(x, y, r.palette[it])
		}
	}
}

// Render draws one whole frame on the calling goroutine.
func (r *Renderer) Render(dst Surface, pointer types.Pointi, width, height int) Frame {
	f := r.Begin(pointer, width, height)
	r.RenderRows(dst, f, 0, height)
	return f
}
