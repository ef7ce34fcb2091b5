package web

import (
	"embed"
	"encoding/json"
	"io"
	"io/fs"
	stdlog "log"
	"net/http"
	"sort"
	"sync"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/ktsujino/deckball/internal/game"
	"github.com/ktsujino/deckball/internal/log"
)

//go:embed static
var staticFiles embed.FS

// TeamInfo is the JSON representation of a team for the /api/teams endpoint.
type TeamInfo struct {
	Key     string   `json:"key"`
	Name    string   `json:"name"`
	Pitcher string   `json:"pitcher"`
	Cards   []string `json:"cards"`
}

// Server hosts the browser client and runs matches in-process: the
// WebSocket peer controls the home side against the built-in CPU.
type Server struct {
	teams map[string]*game.TeamDef
	mux   *http.ServeMux

	mu       sync.Mutex
	sessions map[string]*game.Match // session id → running match
}

// NewServer creates a web server backed by the given teams file.
func NewServer(teamsFile string) (*Server, error) {
	teams, err := game.ParseTeamsFile(teamsFile)
	if err != nil {
		return nil, err
	}
	s := &Server{
		teams:    teams,
		mux:      http.NewServeMux(),
		sessions: make(map[string]*game.Match),
	}
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	staticFS, _ := fs.Sub(staticFiles, "static")

	s.mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		f, err := staticFS.Open("index.html")
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		defer f.Close()
		io.Copy(w, f.(io.Reader))
	})
	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	s.mux.HandleFunc("GET /api/cards", s.handleCards)
	s.mux.HandleFunc("GET /api/teams", s.handleTeams)

	s.mux.HandleFunc("GET /ws", s.handleWebSocket)
}

func (s *Server) handleCards(w http.ResponseWriter, r *http.Request) {
	keys := make([]string, 0, len(game.CardRegistry))
	for key := range game.CardRegistry {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var cards []CardView
	for i, key := range keys {
		cards = append(cards, BuildCardView(i, game.PrepareCard(game.LookupCard(key))))
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cards)
}

func (s *Server) handleTeams(w http.ResponseWriter, r *http.Request) {
	keys := make([]string, 0, len(s.teams))
	for key := range s.teams {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var teams []TeamInfo
	for _, key := range keys {
		t := s.teams[key]
		ti := TeamInfo{Key: t.Key, Name: t.Name, Pitcher: t.Pitcher}
		for _, entry := range t.Cards {
			ti.Cards = append(ti.Cards, entry.Key)
		}
		teams = append(teams, ti)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(teams)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // allow connections from any origin
	})
	if err != nil {
		stdlog.Printf("websocket accept: %v", err)
		return
	}
	defer conn.CloseNow()

	ctx := r.Context()
	ctl := NewWSController(conn)

	// The first message selects the teams and starts a match.
	_, data, err := conn.Read(ctx)
	if err != nil {
		stdlog.Printf("websocket read start: %v", err)
		return
	}
	var start ClientMessage
	if err := json.Unmarshal(data, &start); err != nil || start.Type != "start" {
		conn.Close(websocket.StatusPolicyViolation, "expected start message")
		return
	}

	playerTeam, ok := s.teams[start.PlayerTeam]
	if !ok {
		ctl.SendError(ctx, "unknown player team: "+start.PlayerTeam)
		conn.Close(websocket.StatusPolicyViolation, "unknown team")
		return
	}
	cpuTeam, ok := s.teams[start.CPUTeam]
	if !ok {
		ctl.SendError(ctx, "unknown cpu team: "+start.CPUTeam)
		conn.Close(websocket.StatusPolicyViolation, "unknown team")
		return
	}

	match, err := game.NewMatch(game.MatchConfig{
		PlayerTeam: playerTeam,
		CPUTeam:    cpuTeam,
		Logger:     log.NewMemoryLogger(),
		Seed:       start.Seed,
	}, ctl, game.NewCPUController())
	if err != nil {
		ctl.SendError(ctx, err.Error())
		return
	}

	sessionID := uuid.NewString()
	s.mu.Lock()
	s.sessions[sessionID] = match
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.sessions, sessionID)
		s.mu.Unlock()
	}()

	result, err := match.Run(ctx)
	if err != nil {
		stdlog.Printf("session %s aborted: %v", sessionID, err)
		return
	}
	ctl.SendGameOver(ctx, result)
	conn.Close(websocket.StatusNormalClosure, "game ended")
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.mux)
}

// ServeHTTP makes the server usable as an http.Handler in tests.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
