package main

import (
	"github.com/BrugadaSyndrome/bslogger"
	"github.com/joshvictor1024/go-julia/pkg/julia"
	"github.com/joshvictor1024/go-julia/pkg/types"
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
)

type scene struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	canvas   *canvas
	pool     *pool
	logger   bslogger.Logger
}

func newScene(w *sdl.Window, r *sdl.Renderer, p *pool, logger bslogger.Logger) (*scene, error) {
	width, height := w.GetSize()
	c, err := newCanvas(r, int(width), int(height))
	if err != nil {
		return nil, err
	}
	return &scene{
		window:   w,
		renderer: r,
		canvas:   c,
		pool:     p,
		logger:   logger,
	}, nil
}

func (s *scene) close() {
	checkError(s.canvas.close(), s.logger, warning)
}

// size is read every frame; the window is resizable
func (s *scene) size() (int, int) {
	w, h := s.window.GetSize()
	return int(w), int(h)
}

func (s *scene) pointer() types.Pointi {
	x, y, _ := sdl.GetMouseState()
	return types.Pointi{X: int(x), Y: int(y)}
}

// draw renders the frame for the current pointer into the texture and
// presents it
func (s *scene) draw() error {
	w, h := s.size()
	if err := s.canvas.resize(w, h); err != nil {
		return err
	}
	if w <= 0 || h <= 0 {
		return nil
	}

	surface, err := s.canvas.lock()
	if err != nil {
		return err
	}
	f := s.pool.render(surface, s.pointer(), w, h)
	s.canvas.unlock()

	if err := s.renderer.Clear(); err != nil {
		return errors.Wrap(err, "unable to clear renderer")
	}
	if err := s.canvas.draw(); err != nil {
		return err
	}
	s.renderer.Present()
	s.logger.Debugf("Drew %dx%d frame %s", f.Width, f.Height, f.Rule)
	return nil
}

var _ julia.Surface = (*textureSurface)(nil)
