package main

import (
	"sync"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/joshvictor1024/go-julia/pkg/julia"
	"github.com/joshvictor1024/go-julia/pkg/types"
)

// bands handed out per worker each frame, so a slow band does not
// hold the whole frame back
const bandsPerWorker = 4

// bandWork is rows [y0, y1) of one frame.
type bandWork struct {
	dst   julia.Surface
	frame julia.Frame
	y0    int
	y1    int
	done  *sync.WaitGroup
}

// pool renders frames either on the caller (one worker) or split into
// disjoint row bands across persistent goroutines.
type pool struct {
	renderer *julia.Renderer
	workers  int
	bq       *bandQueue
	wg       sync.WaitGroup
	logger   bslogger.Logger
}

func newPool(r *julia.Renderer, workers int, logger bslogger.Logger) *pool {
	p := &pool{
		renderer: r,
		workers:  workers,
		logger:   logger,
	}
	if workers <= 1 {
		return p
	}
	p.bq = newBandQueue()
	p.wg.Add(workers)
	for range workers {
		go p.processBandWork()
	}
	p.logger.Infof("Started %d workers", workers)
	return p
}

// close stops the workers and waits for them to exit
func (p *pool) close() {
	if p.bq == nil {
		return
	}
	p.bq.close()
	p.wg.Wait()
	p.logger.Debugf("Stopped %d workers", p.workers)
}

func (p *pool) processBandWork() {
	defer p.wg.Done()
	for {
		bw, ok := p.bq.recv()
		if !ok {
			return
		}
		p.renderer.RenderRows(bw.dst, bw.frame, bw.y0, bw.y1)
		bw.done.Done()
	}
}

// render draws one complete frame into dst and returns once every
// pixel has been written.
func (p *pool) render(dst julia.Surface, pointer types.Pointi, width, height int) julia.Frame {
	f := p.renderer.Begin(pointer, width, height)
	if f.Empty() {
		return f
	}
	if p.bq == nil {
		p.renderer.RenderRows(dst, f, 0, f.Height)
		return f
	}

	bands := splitRows(f.Height, p.workers*bandsPerWorker)
	var done sync.WaitGroup
	done.Add(len(bands))
	for _, b := range bands {
		bw := &bandWork{dst: dst, frame: f, y0: b[0], y1: b[1], done: &done}
		if !p.bq.send(bw) {
			// closed under us; finish the band here
			p.renderer.RenderRows(dst, f, bw.y0, bw.y1)
			done.Done()
		}
	}
	done.Wait()
	return f
}

// splitRows cuts [0, height) into at most n contiguous [y0, y1) bands.
func splitRows(height, n int) [][2]int {
	if height <= 0 {
		return nil
	}
	if n < 1 {
		n = 1
	}
	if n > height {
		n = height
	}
	bands := make([][2]int, 0, n)
	step := (height + n - 1) / n
	for y := 0; y < height; y += step {
		y1 := y + step
		if y1 > height {
			y1 = height
		}
		bands = append(bands, [2]int{y, y1})
	}
	return bands
}
