package main

import (
	"image/color"
	"os"
	"time"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/gdamore/tcell/v2"
	"github.com/joshvictor1024/go-julia/pkg/types"
	"github.com/pkg/errors"
)

// cellSurface treats every character cell as one pixel and paints its
// background. Nothing reaches the terminal until Show.
type cellSurface struct {
	screen tcell.Screen
}

func (s cellSurface) Set(x, y int, c color.RGBA) {
	bg := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	s.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(bg))
}

// terminal draws nothing but frames. bslogger writes to stdout, which
// would tear the screen, so the clock gets a logger that stays silent
// and the host reports once the screen is gone.
type terminal struct {
	screen  tcell.Screen
	pool    *pool
	pointer types.Pointi
	clock   *frameClock
}

func newTerminal(screen tcell.Screen, p *pool, frameRate int, logFile *os.File) *terminal {
	w, h := screen.Size()
	return &terminal{
		screen:  screen,
		pool:    p,
		pointer: types.Pointi{X: w / 2, Y: h / 2},
		clock:   newFrameClock(frameRate, bslogger.NewLogger("Terminal", bslogger.Minimal, logFile)),
	}
}

// handle returns false when the user asked to quit
func (t *terminal) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		t.pointer = types.Pointi{X: x, Y: y}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

func (t *terminal) drawFrame() {
	start := t.clock.start()
	w, h := t.screen.Size()
	t.pool.render(cellSurface{screen: t.screen}, t.pointer, w, h)
	t.screen.Show()
	t.clock.done(start)
}

// poll forwards screen events until the screen is finalized or done is
// closed. eventCh is closed only in the first case.
func (t *terminal) poll(eventCh chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			close(eventCh)
			return
		}
		select {
		case eventCh <- ev:
		case <-done:
			return
		}
	}
}

func (t *terminal) run() {
	ticker := time.NewTicker(t.clock.period)
	defer ticker.Stop()

	eventCh := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go t.poll(eventCh, done)

	t.drawFrame()
	for {
		select {
		case ev, ok := <-eventCh:
			if !ok || !t.handle(ev) {
				return
			}
		case <-ticker.C:
			t.drawFrame()
		}
	}
}

func runTerminal(s settings, p *pool, logFile *os.File) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "unable to create terminal screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "unable to init terminal screen")
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	screen.Clear()

	t := newTerminal(screen, p, s.FrameRate, logFile)
	t.run()
	screen.Fini()

	logger := s.newLogger("Terminal", logFile)
	logger.Infof("Rendered %d frames", t.clock.total)
	return nil
}
