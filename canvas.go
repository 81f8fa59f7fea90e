package main

import (
	"image/color"

	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
)

const bytesPerTexel = 4

// canvas is a streaming texture the size of the window. Pixels are
// written straight into the locked texture memory.
type canvas struct {
	renderer *sdl.Renderer
	texture  *sdl.Texture
	w        int
	h        int
}

func newCanvas(r *sdl.Renderer, w, h int) (*canvas, error) {
	c := &canvas{renderer: r}
	if err := c.resize(w, h); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *canvas) close() error {
	if c.texture == nil {
		return nil
	}
	err := c.texture.Destroy()
	c.texture = nil
	return errors.Wrap(err, "unable to destroy texture")
}

// resize recreates the texture when the window size changed
func (c *canvas) resize(w, h int) error {
	if c.texture != nil && w == c.w && h == c.h {
		return nil
	}
	if err := c.close(); err != nil {
		return err
	}
	c.w, c.h = w, h
	if w <= 0 || h <= 0 {
		return nil
	}
	t, err := c.renderer.CreateTexture(
		sdl.PIXELFORMAT_RGBA32, // R, G, B, A bytes whatever the host byte order
		sdl.TEXTUREACCESS_STREAMING, // only textures with TEXTUREACCESS_STREAMING can be locked
		int32(w),
		int32(h),
	)
	if err != nil {
		return errors.Wrapf(err, "unable to create %dx%d texture", w, h)
	}
	c.texture = t
	return nil
}

// lock hands out the texture memory until unlock is called
func (c *canvas) lock() (*textureSurface, error) {
	if c.texture == nil {
		return nil, errors.New("canvas has no texture")
	}
	data, pitch, err := c.texture.Lock(nil)
	if err != nil {
		return nil, errors.Wrap(err, "unable to lock texture")
	}
	return &textureSurface{data: data, pitch: pitch}, nil
}

func (c *canvas) unlock() {
	c.texture.Unlock()
}

func (c *canvas) draw() error {
	if c.texture == nil {
		return nil
	}
	return errors.Wrap(c.renderer.Copy(c.texture, nil, nil), "unable to copy texture")
}

// textureSurface writes RGBA32 texels, laid out in memory as R, G, B, A.
type textureSurface struct {
	data  []byte
	pitch int
}

func (s *textureSurface) Set(x, y int, c color.RGBA) {
	i := y*s.pitch + x*bytesPerTexel
	s.data[i+0] = c.R
	s.data[i+1] = c.G
	s.data[i+2] = c.B
	s.data[i+3] = c.A
}
