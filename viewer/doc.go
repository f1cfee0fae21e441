// Package viewer is an interactive terminal front end for a search.Controller
// built on tcell.
//
// One terminal cell is drawn per grid cell using the render palette, with a
// status line below the grid. Ticks and input events are handled on a single
// loop, so the controller is never touched concurrently.
//
// Keys:
//
//	arrows         move the cursor
//	s / left-click select start
//	g / right-click select goal
//	space          toggle animation (sets up from the selected endpoints when idle)
//	n              single step
//	enter          run to completion
//	c              reset the search
//	r              regenerate terrain with the next seed
//	q / Esc / ^C   quit
package viewer
