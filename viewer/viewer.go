package viewer

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/render"
	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/search"
	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/terrain"
)

var (
	// ErrNilScreen indicates New was called without a screen.
	ErrNilScreen = errors.New("viewer: screen is nil")

	// ErrNilController indicates New was called without a controller.
	ErrNilController = errors.New("viewer: controller is nil")
)

// Options configures a Viewer.
//
// StepsPerTick – expansions per animation tick (≥ 1). Default 10.
// Tick         – animation period. Default 30ms.
// Seed         – seed of the terrain currently shown; r advances it.
// Generator    – height source used by r. Nil disables regeneration.
type Options struct {
	StepsPerTick int
	Tick         time.Duration
	Seed         int64
	Generator    terrain.HeightGenerator
}

// Option represents a functional option for configuring a Viewer.
type Option func(*Options)

// DefaultOptions returns 10 steps per 30ms tick and no generator.
func DefaultOptions() Options {
	return Options{StepsPerTick: 10, Tick: 30 * time.Millisecond}
}

// WithStepsPerTick sets the expansions per tick. Panics if n < 1.
func WithStepsPerTick(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic("viewer: steps per tick must be at least 1")
		}
		o.StepsPerTick = n
	}
}

// WithTick sets the animation period. Panics if d ≤ 0.
func WithTick(d time.Duration) Option {
	return func(o *Options) {
		if d <= 0 {
			panic("viewer: tick must be positive")
		}
		o.Tick = d
	}
}

// WithGenerator enables regeneration from gen, starting after seed.
func WithGenerator(gen terrain.HeightGenerator, seed int64) Option {
	return func(o *Options) {
		o.Generator = gen
		o.Seed = seed
	}
}

// Viewer draws a controller to a tcell screen and maps input to controller
// operations.
type Viewer struct {
	screen tcell.Screen
	ctrl   *search.Controller
	log    *slog.Logger
	opts   Options

	cursorX, cursorY int
	animating        bool
	status           string
}

// New creates a Viewer. The caller owns the screen: it must be initialized
// before Run and finalized afterwards. A nil logger discards output.
func New(screen tcell.Screen, ctrl *search.Controller, logger *slog.Logger, opts ...Option) (*Viewer, error) {
	if screen == nil {
		return nil, ErrNilScreen
	}
	if ctrl == nil {
		return nil, ErrNilController
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Viewer{
		screen: screen,
		ctrl:   ctrl,
		log:    logger,
		opts:   cfg,
		status: "select start (s) and goal (g)",
	}, nil
}

// Cursor returns the grid cell under the cursor.
func (v *Viewer) Cursor() (x, y int) { return v.cursorX, v.cursorY }

// Animating reports whether ticks advance the search.
func (v *Viewer) Animating() bool { return v.animating }

// Seed returns the seed of the terrain on screen.
func (v *Viewer) Seed() int64 { return v.opts.Seed }

// Status returns the text of the status line.
func (v *Viewer) Status() string { return v.status }

// Run handles events and ticks until the user quits or ctx is done.
func (v *Viewer) Run(ctx context.Context) error {
	v.screen.EnableMouse()
	v.Draw()

	ticker := time.NewTicker(v.opts.Tick)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			if !v.HandleEvent(ev) {
				return nil
			}
			v.Draw()

		case <-ticker.C:
			if v.animating {
				v.Tick()
				v.Draw()
			}
		}
	}
}

// HandleEvent applies one input event. It returns false when the user asked
// to quit.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKey(ev)

	case *tcell.EventMouse:
		x, y := ev.Position()
		switch ev.Buttons() {
		case tcell.Button1:
			v.moveCursorTo(x, y)
			v.selectAt(x, y, true)
		case tcell.Button2:
			v.moveCursorTo(x, y)
			v.selectAt(x, y, false)
		}

	case *tcell.EventResize:
		v.screen.Sync()
	}

	return true
}

func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		v.moveCursorTo(v.cursorX, v.cursorY-1)
	case tcell.KeyDown:
		v.moveCursorTo(v.cursorX, v.cursorY+1)
	case tcell.KeyLeft:
		v.moveCursorTo(v.cursorX-1, v.cursorY)
	case tcell.KeyRight:
		v.moveCursorTo(v.cursorX+1, v.cursorY)
	case tcell.KeyEnter:
		v.runToCompletion()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 's':
			v.selectAt(v.cursorX, v.cursorY, true)
		case 'g':
			v.selectAt(v.cursorX, v.cursorY, false)
		case ' ':
			v.toggleAnimation()
		case 'n':
			v.stepOnce()
		case 'c':
			v.ctrl.Reset()
			v.animating = false
			v.status = "reset"
		case 'r':
			v.regenerate()
		}
	}
	return true
}

// Tick advances an animated search by StepsPerTick expansions.
func (v *Viewer) Tick() {
	if !v.animating {
		return
	}
	for i := 0; i < v.opts.StepsPerTick; i++ {
		out, err := v.ctrl.Step()
		if err != nil {
			v.fail("step", err)
			return
		}
		if out.Terminal() {
			v.finish(out)
			return
		}
	}
	v.status = fmt.Sprintf("searching: %d steps", v.ctrl.Steps())
}

func (v *Viewer) moveCursorTo(x, y int) {
	w, h := v.ctrl.Dimensions()
	v.cursorX = min(max(x, 0), w-1)
	v.cursorY = min(max(y, 0), h-1)
}

func (v *Viewer) selectAt(x, y int, start bool) {
	id, err := v.ctrl.NodeAt(x, y)
	if err != nil {
		return
	}
	v.animating = false
	if start {
		err = v.ctrl.SetStart(id)
		v.status = fmt.Sprintf("start (%d,%d)", x, y)
	} else {
		err = v.ctrl.SetGoal(id)
		v.status = fmt.Sprintf("goal (%d,%d)", x, y)
	}
	if err != nil {
		v.fail("select", err)
	}
}

// ensureSetup initializes the search from the selected endpoints when Idle.
func (v *Viewer) ensureSetup() bool {
	if v.ctrl.State() != search.Idle {
		return true
	}
	if err := v.ctrl.SetupSelected(); err != nil {
		v.fail("setup", err)
		return false
	}
	start, goal := v.ctrl.Endpoints()
	v.log.Debug("search set up", "start", int(start), "goal", int(goal))
	return true
}

func (v *Viewer) toggleAnimation() {
	if v.animating {
		v.animating = false
		v.status = "paused"
		return
	}
	if !v.ensureSetup() {
		return
	}
	if v.ctrl.State() == search.Done {
		v.status = "finished: " + v.ctrl.Outcome().String()
		return
	}
	v.animating = true
	v.status = "searching"
}

func (v *Viewer) stepOnce() {
	if !v.ensureSetup() {
		return
	}
	out, err := v.ctrl.Step()
	if err != nil {
		v.fail("step", err)
		return
	}
	if out.Terminal() {
		v.finish(out)
		return
	}
	v.status = fmt.Sprintf("step %d", v.ctrl.Steps())
}

func (v *Viewer) runToCompletion() {
	if !v.ensureSetup() {
		return
	}
	out, err := v.ctrl.RunToCompletion()
	if err != nil {
		v.fail("run", err)
		return
	}
	v.finish(out)
}

func (v *Viewer) finish(out search.Outcome) {
	v.animating = false
	switch out {
	case search.ReachedGoal:
		total, _ := v.ctrl.PathCost()
		v.status = fmt.Sprintf("reached goal: cost %.2f after %d steps", total, v.ctrl.Steps())
		v.log.Info("search finished", "outcome", out.String(), "steps", v.ctrl.Steps(), "cost", total)
	default:
		v.status = fmt.Sprintf("%s after %d steps", out, v.ctrl.Steps())
		v.log.Info("search finished", "outcome", out.String(), "steps", v.ctrl.Steps())
	}
}

func (v *Viewer) regenerate() {
	if v.opts.Generator == nil {
		v.status = "regeneration disabled"
		return
	}
	v.animating = false
	seed := v.opts.Seed + 1
	if err := v.ctrl.Regenerate(v.opts.Generator, seed); err != nil {
		v.fail("regenerate", err)
		return
	}
	v.opts.Seed = seed
	v.status = fmt.Sprintf("terrain seed %d", seed)
	v.log.Info("terrain regenerated", "seed", seed)
}

func (v *Viewer) fail(op string, err error) {
	v.animating = false
	v.status = fmt.Sprintf("%s: %v", op, err)
	v.log.Warn("viewer operation failed", "op", op, "error", err)
}

// Draw paints the grid, cursor and status line and shows the result.
func (v *Viewer) Draw() {
	v.screen.Clear()
	w, h := v.ctrl.Dimensions()
	sw, sh := v.screen.Size()
	trail := render.TrailSet(v.ctrl)

	for y := 0; y < min(h, sh); y++ {
		for x := 0; x < min(w, sw); x++ {
			cell, err := v.ctrl.Cell(x, y)
			if err != nil {
				continue
			}
			style := Style(render.CellColor(cell, trail.Has([2]int{x, y})))
			ch := ' '
			if x == v.cursorX && y == v.cursorY {
				ch = '+'
				style = style.Foreground(tcell.ColorYellow)
			}
			v.screen.SetContent(x, y, ch, nil, style)
		}
	}

	if h < sh {
		line := fmt.Sprintf("[%s] %s", v.ctrl.State(), v.status)
		for i, r := range []rune(line) {
			if i >= sw {
				break
			}
			v.screen.SetContent(i, h, r, nil, tcell.StyleDefault)
		}
	}

	v.screen.Show()
}

// Style returns the terminal style that paints a cell in c.
func Style(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}
