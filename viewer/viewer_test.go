package viewer_test

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/noise"
	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/render"
	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/search"
	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/terrain"
	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/viewer"
)

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func char(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

// ViewerSuite drives a Viewer on a simulated 20×10 terminal over an 8×6 grid.
type ViewerSuite struct {
	suite.Suite
	screen tcell.SimulationScreen
	grid   *terrain.Grid
	ctrl   *search.Controller
	view   *viewer.Viewer
}

func (s *ViewerSuite) SetupTest() {
	s.screen = tcell.NewSimulationScreen("UTF-8")
	s.Require().NoError(s.screen.Init())
	s.screen.SetSize(20, 10)

	var err error
	s.grid, err = terrain.NewGrid(8, 6)
	s.Require().NoError(err)
	s.ctrl, err = search.New(s.grid)
	s.Require().NoError(err)
	s.view, err = viewer.New(s.screen, s.ctrl, nil,
		viewer.WithStepsPerTick(2),
		viewer.WithGenerator(noise.New(), 41))
	s.Require().NoError(err)
}

func (s *ViewerSuite) TearDownTest() {
	s.screen.Fini()
}

func (s *ViewerSuite) send(evs ...tcell.Event) {
	for _, ev := range evs {
		s.Require().True(s.view.HandleEvent(ev))
	}
}

func (s *ViewerSuite) id(x, y int) terrain.NodeID {
	id, err := s.grid.NodeAt(x, y)
	s.Require().NoError(err)
	return id
}

func (s *ViewerSuite) TestCursorClampsToGrid() {
	s.send(key(tcell.KeyLeft), key(tcell.KeyUp))
	x, y := s.view.Cursor()
	s.Equal([2]int{0, 0}, [2]int{x, y})

	for i := 0; i < 20; i++ {
		s.send(key(tcell.KeyRight), key(tcell.KeyDown))
	}
	x, y = s.view.Cursor()
	s.Equal([2]int{7, 5}, [2]int{x, y})
}

func (s *ViewerSuite) TestKeyboardSelectionAndRun() {
	s.send(char('s'))
	s.send(key(tcell.KeyRight), key(tcell.KeyRight), key(tcell.KeyDown), key(tcell.KeyDown), char('g'))
	start, goal := s.ctrl.Endpoints()
	s.Equal(s.id(0, 0), start)
	s.Equal(s.id(2, 2), goal)

	s.send(key(tcell.KeyEnter))
	s.Equal(search.Done, s.ctrl.State())
	s.Equal(search.ReachedGoal, s.ctrl.Outcome())
	s.Contains(s.view.Status(), "reached goal")

	s.view.Draw()
	_, _, style, _ := s.screen.GetContent(0, 0)
	s.Equal(viewer.Style(render.StartColor), style)
	_, _, style, _ = s.screen.GetContent(1, 1)
	s.Equal(viewer.Style(render.TrailColor), style)
	r, _, _, _ := s.screen.GetContent(2, 2)
	s.Equal('+', r, "cursor marker")
}

func (s *ViewerSuite) TestMouseSelection() {
	s.send(tcell.NewEventMouse(1, 4, tcell.Button1, tcell.ModNone))
	s.send(tcell.NewEventMouse(6, 0, tcell.Button2, tcell.ModNone))
	start, goal := s.ctrl.Endpoints()
	s.Equal(s.id(1, 4), start)
	s.Equal(s.id(6, 0), goal)
	x, y := s.view.Cursor()
	s.Equal([2]int{6, 0}, [2]int{x, y})

	// Clicks below the grid are ignored.
	s.send(tcell.NewEventMouse(3, 8, tcell.Button1, tcell.ModNone))
	start, _ = s.ctrl.Endpoints()
	s.Equal(s.id(1, 4), start)
}

func (s *ViewerSuite) TestAnimation() {
	// Without endpoints, space reports the setup error and stays paused.
	s.send(char(' '))
	s.False(s.view.Animating())
	s.Contains(s.view.Status(), search.ErrMissingEndpoints.Error())

	s.send(char('s'))
	s.send(tcell.NewEventMouse(7, 5, tcell.Button2, tcell.ModNone))
	s.send(char(' '))
	s.True(s.view.Animating())
	s.Equal(search.Initialized, s.ctrl.State())

	s.view.Tick()
	s.Equal(2, s.ctrl.Steps())

	s.send(char(' '))
	s.False(s.view.Animating())
	s.view.Tick()
	s.Equal(2, s.ctrl.Steps(), "paused ticks do nothing")

	s.send(char(' '))
	for i := 0; i < 100 && s.view.Animating(); i++ {
		s.view.Tick()
	}
	s.False(s.view.Animating())
	s.Equal(search.ReachedGoal, s.ctrl.Outcome())
}

func (s *ViewerSuite) TestStepResetRegenerate() {
	s.send(char('s'), key(tcell.KeyRight), char('g'))
	s.send(char('n'))
	s.Equal(search.Stepping, s.ctrl.State())
	s.send(char('n'))
	s.Equal(search.Done, s.ctrl.State())

	s.send(char('c'))
	s.Equal(search.Idle, s.ctrl.State())
	start, _ := s.ctrl.Endpoints()
	s.Equal(s.id(0, 0), start)

	s.send(char('r'))
	s.Equal(int64(42), s.view.Seed())
	start, goal := s.ctrl.Endpoints()
	s.Equal(terrain.NoNode, start)
	s.Equal(terrain.NoNode, goal)
}

func (s *ViewerSuite) TestQuitKeys() {
	s.False(s.view.HandleEvent(char('q')))
	s.False(s.view.HandleEvent(key(tcell.KeyEscape)))
	s.False(s.view.HandleEvent(key(tcell.KeyCtrlC)))
}

func (s *ViewerSuite) TestRunQuitsOnKey() {
	s.Require().NoError(s.screen.PostEvent(char('q')))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.NoError(s.view.Run(ctx))
}

func (s *ViewerSuite) TestRunStopsOnContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.ErrorIs(s.view.Run(ctx), context.Canceled)
}

func TestViewerSuite(t *testing.T) {
	suite.Run(t, new(ViewerSuite))
}

func TestNewValidation(t *testing.T) {
	g, err := terrain.NewGrid(2, 2)
	require.NoError(t, err)
	c, err := search.New(g)
	require.NoError(t, err)

	_, err = viewer.New(nil, c, nil)
	require.ErrorIs(t, err, viewer.ErrNilScreen)
	_, err = viewer.New(tcell.NewSimulationScreen("UTF-8"), nil, nil)
	require.ErrorIs(t, err, viewer.ErrNilController)
	require.Panics(t, func() { viewer.WithTick(0)(&viewer.Options{}) })
}
