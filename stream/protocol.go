package stream

import "github.com/Pascal-Klinkenbergh/perlin-noise-astar/terrain"

// Frame types sent by the server.
const (
	TypeStep  = "step"
	TypeDone  = "done"
	TypeError = "error"
)

// Point is a grid coordinate on the wire.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Request asks the server to search from Start to Goal on the connection's
// terrain.
type Request struct {
	Start Point `json:"start"`
	Goal  Point `json:"goal"`
}

// Frame is one server message.
//
// step  – Expanded lists the cells extracted since the previous frame and
// Trail the current best chain back to the start.
// done  – Outcome is "reached-goal" or "exhausted"; Path (goal first) and
// Cost are set only when the goal was reached.
// error – Error describes why the request was rejected.
type Frame struct {
	Type     string   `json:"type"`
	Steps    int      `json:"steps"`
	Expanded []Point  `json:"expanded,omitempty"`
	Trail    []Point  `json:"trail,omitempty"`
	Outcome  string   `json:"outcome,omitempty"`
	Path     []Point  `json:"path,omitempty"`
	Cost     *float64 `json:"cost,omitempty"`
	Error    string   `json:"error,omitempty"`
}

func pointOf(n terrain.Node) Point {
	return Point{X: n.X, Y: n.Y}
}

func pointsOf(nodes []terrain.Node) []Point {
	out := make([]Point, len(nodes))
	for i, n := range nodes {
		out[i] = pointOf(n)
	}
	return out
}
