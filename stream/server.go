package stream

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/courtvision/poseviz"
	"github.com/courtvision/poseviz/skeleton"
)

// Config holds the frame feed settings.
type Config struct {
	// FPS is the number of frames pushed to each client per second.
	FPS int
	// Params sets the figure stroke sizes.
	Params poseviz.Params
}

// DefaultConfig returns the settings used by the dashboard feed.
func DefaultConfig() Config {
	return Config{
		FPS:    30,
		Params: poseviz.DefaultParams(),
	}
}

// Control is the JSON message a client sends over the socket to change
// what its figure shows.  Unknown modes fall back to analysis and
// unknown drills to the default drill.
type Control struct {
	Mode  string             `json:"mode"`
	Drill string             `json:"drill"`
	Risk  poseviz.RiskVector `json:"risk"`
}

// client is one websocket subscriber with its own figure state and
// animation epoch.
type client struct {
	conn *websocket.Conn

	// mu serializes connection writes and guards the figure state
	mu    sync.Mutex
	in    poseviz.Input
	epoch time.Time
}

// setControl applies a control message, restarting the animation clock
// when the mode changes.
func (c *client) setControl(ctl Control, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	mode := poseviz.ModeAnalysis

	if ctl.Mode == string(poseviz.ModeDemo) {
		mode = poseviz.ModeDemo
	}

	if mode != c.in.Mode {
		c.epoch = now
	}

	c.in = poseviz.Input{
		Mode:  mode,
		Drill: skeleton.Drill(ctl.Drill),
		Risk:  ctl.Risk,
	}
}

// snapshot returns the figure state and animation time for a tick at now.
func (c *client) snapshot(now time.Time) (poseviz.Input, float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.in, float64(now.Sub(c.epoch)) / float64(time.Millisecond)
}

// write sends one payload, serialized against concurrent writes.
func (c *client) write(payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.conn.WriteMessage(websocket.BinaryMessage, payload)
}

// Server pushes wire encoded frames to websocket clients at a fixed
// rate.  Each client carries its own mode, drill and risk state, set by
// Control messages, so several dashboard panels can watch different
// figures off one feed.
type Server struct {
	cfg      Config
	engine   *poseviz.Engine
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}

	done chan struct{}
}

// NewServer starts the tick loop and returns the feed, ready to be
// mounted as an HTTP handler.
func NewServer(cfg Config) *Server {
	if cfg.FPS <= 0 {
		cfg.FPS = DefaultConfig().FPS
	}

	s := &Server{
		cfg:    cfg,
		engine: poseviz.New(cfg.Params),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*client]struct{}),
		done:    make(chan struct{}),
	}

	go s.run()

	return s
}

// Close stops the tick loop and disconnects every client.
func (s *Server) Close() {
	close(s.done)

	s.mu.Lock()
	defer s.mu.Unlock()

	for c := range s.clients {
		c.conn.Close()
	}

	s.clients = make(map[*client]struct{})
}

// ServeHTTP upgrades the request to a websocket and subscribes it to
// the frame feed.  A client starts in analysis mode with no risk scores
// until its first control message.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)

	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	c := &client{
		conn:  conn,
		in:    poseviz.Input{Mode: poseviz.ModeAnalysis},
		epoch: time.Now(),
	}

	s.mu.Lock()
	s.clients[c] = struct{}{}
	count := len(s.clients)
	s.mu.Unlock()

	log.Printf("viewer connected, %d watching", count)

	go s.readControls(c)
}

// run pushes frames to every connected client until the server closes.
func (s *Server) run() {
	interval := time.Duration(float64(time.Second) / float64(s.cfg.FPS))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			s.broadcast(now)
		}
	}
}

// broadcast renders and sends one frame per client, dropping any client
// whose connection fails rather than blocking the loop on it.
func (s *Server) broadcast(now time.Time) {
	for _, c := range s.clientList() {
		in, t := c.snapshot(now)

		payload := poseviz.EncodeFrame(s.engine.Render(t, in))

		if err := c.write(payload); err != nil {
			s.drop(c)
		}
	}
}

// readControls consumes control messages until the connection drops.
func (s *Server) readControls(c *client) {
	for {
		var ctl Control

		if err := c.conn.ReadJSON(&ctl); err != nil {
			s.drop(c)
			return
		}

		c.setControl(ctl, time.Now())
	}
}

// clientList snapshots the connected clients for one broadcast pass.
func (s *Server) clientList() []*client {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]*client, 0, len(s.clients))

	for c := range s.clients {
		list = append(list, c)
	}

	return list
}

// drop removes the client and closes its connection.
func (s *Server) drop(c *client) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[c]; !ok {
		return
	}

	delete(s.clients, c)
	c.conn.Close()

	log.Printf("viewer disconnected, %d watching", len(s.clients))
}
