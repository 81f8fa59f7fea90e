package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/joshvictor1024/go-julia/pkg/julia"
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
)

func sdlInit(s settings) (*sdl.Window, *sdl.Renderer, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_TIMER); err != nil {
		return nil, nil, errors.Wrap(err, "unable to init SDL")
	}
	sdl.StopTextInput()

	window, err := sdl.CreateWindow(
		s.Title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(s.Width), int32(s.Height), sdl.WINDOW_OPENGL|sdl.WINDOW_RESIZABLE,
	)
	if err != nil {
		sdl.Quit()
		return nil, nil, errors.Wrap(err, "unable to create window")
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, nil, errors.Wrap(err, "unable to create renderer")
	}

	return window, renderer, nil
}

func sdlClose(window *sdl.Window, renderer *sdl.Renderer, logger bslogger.Logger) {
	checkError(errors.Wrap(renderer.Destroy(), "unable to destroy renderer"), logger, warning)
	checkError(errors.Wrap(window.Destroy(), "unable to destroy window"), logger, warning)
	sdl.Quit()
}

// runSDL redraws the whole window every frame until it is closed
func runSDL(s settings, p *pool, logFile *os.File) error {
	logger := s.newLogger("Scene", logFile)

	window, renderer, err := sdlInit(s)
	if err != nil {
		return err
	}
	defer sdlClose(window, renderer, logger)

	sc, err := newScene(window, renderer, p, logger)
	if err != nil {
		return err
	}
	defer sc.close()

	clock := newFrameClock(s.FrameRate, logger)
	for {
		start := clock.start()
		for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
			switch t := e.(type) {
			case *sdl.QuitEvent:
				logger.Info("Quit event")
				return nil
			case *sdl.KeyboardEvent:
				if t.Type == sdl.KEYDOWN && t.Keysym.Sym == sdl.K_ESCAPE {
					logger.Info("Escape pressed")
					return nil
				}
			case *sdl.WindowEvent:
				if t.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
					logger.Debugf("Window resized to %dx%d", t.Data1, t.Data2)
				}
			}
		}

		if err := sc.draw(); err != nil {
			return err
		}
		if wait := clock.done(start); wait > 0 {
			sdl.Delay(uint32(wait / time.Millisecond))
		}
	}
}

func run(s settings) error {
	var logFile *os.File
	if s.LogFile != "" {
		f, err := os.Create(s.LogFile)
		if err != nil {
			return errors.Wrapf(err, "unable to create log file %s", s.LogFile)
		}
		defer func() {
			checkError(errors.Wrapf(f.Close(), "unable to close log file %s", s.LogFile), s.newLogger("Julia", nil), warning)
		}()
		logFile = f
	}
	logger := s.newLogger("Julia", logFile)
	logger.Infof("Starting %s host", s.Host)
	settingsLogger := s.newLogger("Settings", logFile)
	settingsLogger.Debug(s.String())

	r, err := julia.NewRenderer(s.Julia)
	if err != nil {
		return err
	}
	p := newPool(r, s.Workers, s.newLogger("Workers", logFile))
	defer p.close()

	switch s.Host {
	case hostTerminal:
		err = runTerminal(s, p, logFile)
	default:
		err = runSDL(s, p, logFile)
	}
	if err == nil {
		logger.Info("Shutting down")
	}
	return err
}

func main() {
	s, err := parseSettings(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	checkError(run(s), bslogger.NewLogger("Julia", bslogger.Normal, nil), fatal)
}
