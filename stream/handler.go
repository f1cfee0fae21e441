package stream

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"

	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/cost"
	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/render"
	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/search"
	"github.com/Pascal-Klinkenbergh/perlin-noise-astar/terrain"
)

// errClosed signals that the peer went away while writing.
var errClosed = errors.New("stream: connection closed")

// HandlerConfig configures a Handler. Zero values select defaults.
type HandlerConfig struct {
	Logger        *slog.Logger
	StepsPerFrame int        // default 25
	Cost          cost.Model // default cost.New()
}

// Handler upgrades HTTP requests to search sessions.
type Handler struct {
	grid          *terrain.Grid
	model         cost.Model
	stepsPerFrame int
	logger        *slog.Logger
	upgrader      websocket.Upgrader
}

// NewHandler creates a Handler serving searches over copies of grid.
// grid must not be modified while the handler is in use.
func NewHandler(grid *terrain.Grid, cfg HandlerConfig) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	steps := cfg.StepsPerFrame
	if steps < 1 {
		steps = 25
	}
	model := cfg.Cost
	if model == (cost.Model{}) {
		model = cost.New()
	}

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return &Handler{
		grid:          grid,
		model:         model,
		stepsPerFrame: steps,
		logger:        logger,
		upgrader:      upgrader,
	}
}

// Routes returns a mux with the websocket endpoint at /ws and the terrain
// image at /terrain.png.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ws", h.Handle)
	mux.HandleFunc("GET /terrain.png", h.Terrain)
	return mux
}

// Terrain writes the terrain as a PNG. The optional query parameter scale
// sets pixels per cell (default 4).
func (h *Handler) Terrain(w http.ResponseWriter, r *http.Request) {
	scale := 4
	if v := r.URL.Query().Get("scale"); v != "" {
		s, err := strconv.Atoi(v)
		if err != nil || s < 1 || s > 32 {
			http.Error(w, "invalid scale", http.StatusBadRequest)
			return
		}
		scale = s
	}

	ctrl, err := search.New(h.grid.Clone(), search.WithCostModel(h.model))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	if err := render.PNG(w, ctrl, scale); err != nil {
		h.logger.Error("render terrain", "error", err)
	}
}

// Handle runs one websocket session until the client disconnects.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	defer conn.Close()

	ctrl, err := search.New(h.grid.Clone(), search.WithCostModel(h.model))
	if err != nil {
		h.logger.Error("create controller", "error", err)
		return
	}
	log := h.logger.With("remote", r.RemoteAddr)
	log.Info("session opened")

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			log.Info("session closed", "reason", err)
			return
		}

		var req Request
		if err := json.Unmarshal(payload, &req); err != nil {
			if h.write(conn, Frame{Type: TypeError, Error: fmt.Sprintf("malformed request: %v", err)}) != nil {
				return
			}
			continue
		}

		if err := h.serve(conn, ctrl, req); err != nil {
			if errors.Is(err, errClosed) {
				return
			}
			log.Debug("request rejected", "error", err)
			if h.write(conn, Frame{Type: TypeError, Error: err.Error()}) != nil {
				return
			}
		}
	}
}

// serve runs req to completion, streaming frames. Errors not wrapping
// errClosed are request errors the caller reports to the client.
func (h *Handler) serve(conn *websocket.Conn, ctrl *search.Controller, req Request) error {
	start, err := ctrl.NodeAt(req.Start.X, req.Start.Y)
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}
	goal, err := ctrl.NodeAt(req.Goal.X, req.Goal.Y)
	if err != nil {
		return fmt.Errorf("goal: %w", err)
	}
	if err = ctrl.Setup(start, goal); err != nil {
		return err
	}

	expanded := make([]Point, 0, h.stepsPerFrame)
	for {
		out, err := ctrl.Step()
		if err != nil {
			return err
		}
		if out != search.Exhausted {
			n, _ := ctrl.Node(ctrl.LastExpanded())
			expanded = append(expanded, pointOf(n))
		}

		if len(expanded) > 0 && (len(expanded) == h.stepsPerFrame || out.Terminal()) {
			frame := Frame{
				Type:     TypeStep,
				Steps:    ctrl.Steps(),
				Expanded: expanded,
				Trail:    pointsOf(ctrl.Trail()),
			}
			if err = h.write(conn, frame); err != nil {
				return err
			}
			expanded = expanded[:0]
		}

		if out.Terminal() {
			return h.write(conn, doneFrame(ctrl, out))
		}
	}
}

func doneFrame(ctrl *search.Controller, out search.Outcome) Frame {
	frame := Frame{Type: TypeDone, Steps: ctrl.Steps(), Outcome: out.String()}
	path, err := ctrl.ReconstructPath()
	if err != nil {
		return frame
	}
	frame.Path = make([]Point, len(path))
	for i, id := range path {
		n, _ := ctrl.Node(id)
		frame.Path[i] = pointOf(n)
	}
	total, _ := ctrl.PathCost()
	frame.Cost = &total
	return frame
}

func (h *Handler) write(conn *websocket.Conn, frame Frame) error {
	if err := conn.WriteJSON(frame); err != nil {
		return fmt.Errorf("%w: %v", errClosed, err)
	}
	return nil
}
