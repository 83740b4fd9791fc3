package server

import (
	"context"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"

	"github.com/greenside/greenside/internal/courses"
	"github.com/greenside/greenside/internal/games"
)

// Server is the WebSocket scorecard server: it upgrades connections,
// routes their messages into rooms, and tears empty rooms down.
type Server struct {
	addr        string
	upgrader    websocket.Upgrader
	logger      *log.Logger
	clock       quartz.Clock
	library     *courses.Library
	catalog     []games.Achievement
	httpServer  *http.Server
	ctx         context.Context
	cancel      context.CancelFunc
	mu          sync.RWMutex
	connections map[*Connection]bool
	rooms       map[string]*Room
	register    chan *Connection
	unregister  chan *Connection
}

// Option configures a server.
type Option func(*Server)

// WithClock overrides the wall clock, for tests.
func WithClock(clock quartz.Clock) Option {
	return func(s *Server) {
		s.clock = clock
	}
}

// WithJunkCatalog sets the achievement catalog new rooms start with.
func WithJunkCatalog(catalog []games.Achievement) Option {
	return func(s *Server) {
		s.catalog = catalog
	}
}

// NewServer creates a scorecard server serving rounds from the given
// course library.
func NewServer(addr string, library *courses.Library, logger *log.Logger, opts ...Option) *Server {
	ctx, cancel := context.WithCancel(context.Background())

	s := &Server{
		addr: addr,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// Scorecards are shared by link on a local network;
				// origin checking is left to a fronting proxy.
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger:      logger.WithPrefix("server"),
		clock:       quartz.NewReal(),
		library:     library,
		ctx:         ctx,
		cancel:      cancel,
		connections: make(map[*Connection]bool),
		rooms:       make(map[string]*Room),
		register:    make(chan *Connection),
		unregister:  make(chan *Connection),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start runs the server until Stop or listener failure.
func (s *Server) Start() error {
	go s.run()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)

	s.httpServer = &http.Server{Addr: s.addr, Handler: mux}
	s.logger.Info("starting scorecard server", "addr", s.addr, "courses", len(s.library.Names()))
	return s.httpServer.ListenAndServe()
}

// Stop shuts the server down and closes every connection.
func (s *Server) Stop() error {
	s.cancel()

	s.mu.Lock()
	for conn := range s.connections {
		_ = conn.Close()
	}
	s.mu.Unlock()

	if s.httpServer != nil {
		return s.httpServer.Shutdown(context.Background())
	}
	return nil
}

// run handles connection lifecycle.
func (s *Server) run() {
	for {
		select {
		case conn := <-s.register:
			s.mu.Lock()
			s.connections[conn] = true
			total := len(s.connections)
			s.mu.Unlock()
			s.logger.Info("client connected", "total", total)

		case conn := <-s.unregister:
			s.mu.Lock()
			if _, ok := s.connections[conn]; ok {
				delete(s.connections, conn)
				_ = conn.Close()
			}
			total := len(s.connections)
			s.mu.Unlock()
			s.leaveRoom(conn)
			s.logger.Info("client disconnected", "total", total)

		case <-s.ctx.Done():
			return
		}
	}
}

// Dispatch routes a client message: join picks a room, everything else
// goes to the room the connection already joined.
func (s *Server) Dispatch(c *Connection, msg *Message) {
	if msg.Type == MessageTypeJoin {
		var p JoinPayload
		if err := decode(msg, &p); err != nil {
			_ = c.SendMessage(NewMessage(MessageTypeError, ErrorPayload{Error: err.Error()}))
			return
		}
		s.joinRoom(c, p.Room)
		return
	}

	room := c.Room()
	if room == nil {
		_ = c.SendMessage(NewMessage(MessageTypeError, ErrorPayload{Error: "join a room first"}))
		return
	}
	room.Handle(c, msg)
}

func (s *Server) joinRoom(c *Connection, name string) {
	if name == "" {
		name = "main"
	}

	if prev := c.Room(); prev != nil {
		if prev.Leave(c) {
			s.dropRoom(prev)
		}
	}

	s.mu.Lock()
	room, ok := s.rooms[name]
	if !ok {
		room = NewRoom(name, s.library, s.catalog, s.logger)
		s.rooms[name] = room
		s.logger.Info("room created", "room", name)
	}
	s.mu.Unlock()

	c.SetRoom(room)
	_ = c.SendMessage(NewMessage(MessageTypeWelcome, WelcomePayload{
		Room:    name,
		Courses: s.library.Names(),
	}))
	room.Join(c)
}

func (s *Server) leaveRoom(c *Connection) {
	if room := c.Room(); room != nil {
		if room.Leave(c) {
			s.dropRoom(room)
		}
		c.SetRoom(nil)
	}
}

func (s *Server) dropRoom(room *Room) {
	s.mu.Lock()
	delete(s.rooms, room.name)
	s.mu.Unlock()
	s.logger.Info("room closed", "room", room.name)
}

// handleWebSocket handles WebSocket upgrade requests.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("failed to upgrade connection", "error", err)
		return
	}

	client := NewConnection(conn, s, s.logger, s.clock)
	s.register <- client
	client.Start()

	go func() {
		<-client.Done()
		select {
		case s.unregister <- client:
		case <-s.ctx.Done():
		}
	}()
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
