package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/ktsujino/deckball/internal/game"
	"github.com/ktsujino/deckball/internal/log"
	"github.com/ktsujino/deckball/internal/web"
)

// DecisionType identifies what kind of decision the match is waiting for.
type DecisionType string

const (
	DecisionChooseCard  DecisionType = "choose_card"
	DecisionChooseBase  DecisionType = "choose_base"
	DecisionChooseYesNo DecisionType = "choose_yes_no"
	DecisionGameOver    DecisionType = "game_over"
)

// PendingDecision represents a decision the match is waiting for.
type PendingDecision struct {
	Type       DecisionType   `json:"type"`
	State      *web.StateView `json:"state"`
	Prompt     string         `json:"prompt,omitempty"`
	Candidates []web.CardView `json:"candidates,omitempty"`
}

// Response types sent back from MCP tools to the controller.

type CardResponse struct {
	Index int
}

type BaseResponse struct {
	Index int
}

type YesNoResponse struct {
	Answer bool
}

// ToolResponse is the JSON envelope returned by all MCP tools.
type ToolResponse struct {
	SessionID string          `json:"session_id,omitempty"`
	Events    []web.EventView `json:"events"`
	State     *web.StateView  `json:"state,omitempty"`
	Pending   *PendingView    `json:"pending,omitempty"`
	GameOver  bool            `json:"game_over"`
	Result    string          `json:"result,omitempty"`
}

// PendingView is the pending decision as presented in the tool response JSON.
type PendingView struct {
	Type       DecisionType   `json:"type"`
	Prompt     string         `json:"prompt,omitempty"`
	Candidates []web.CardView `json:"candidates,omitempty"`
}

// GameSession holds the state of a single MCP match session. The MCP
// client controls the home side against the built-in CPU.
type GameSession struct {
	ID    string
	match *game.Match
	ctrl  *Controller

	pendingCh      chan *PendingDecision
	currentPending *PendingDecision

	mu       sync.Mutex
	events   []web.EventView
	gameOver bool
	result   string
}

// NewGameSession starts a match against the CPU and returns once it is
// running. The match goroutine blocks on the controller's channels until
// the client answers via tools.
func NewGameSession(teamsFile, playerTeam, cpuTeam string, seed int64) (*GameSession, error) {
	teams, err := game.ParseTeamsFile(teamsFile)
	if err != nil {
		return nil, fmt.Errorf("load teams: %w", err)
	}
	pt, ok := teams[playerTeam]
	if !ok {
		return nil, fmt.Errorf("unknown player team %q", playerTeam)
	}
	ct, ok := teams[cpuTeam]
	if !ok {
		return nil, fmt.Errorf("unknown cpu team %q", cpuTeam)
	}

	sess := &GameSession{
		ID:        uuid.NewString(),
		pendingCh: make(chan *PendingDecision, 1),
	}
	sess.ctrl = NewController(sess)

	match, err := game.NewMatch(game.MatchConfig{
		PlayerTeam: pt,
		CPUTeam:    ct,
		Logger:     log.NewMemoryLogger(),
		Seed:       seed,
	}, sess.ctrl, game.NewCPUController())
	if err != nil {
		return nil, err
	}
	sess.match = match

	go func() {
		result, err := match.Run(context.Background())
		if err != nil {
			result = fmt.Sprintf("error: %v", err)
		}

		sess.mu.Lock()
		sess.gameOver = true
		sess.result = result
		sess.mu.Unlock()

		sess.pendingCh <- &PendingDecision{
			Type:  DecisionGameOver,
			State: web.BuildStateView(match.State()),
		}
	}()

	return sess, nil
}

// appendEvent adds an event to the session's event buffer. Thread-safe.
func (s *GameSession) appendEvent(ev web.EventView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

// drainEvents returns all accumulated events and clears the buffer.
func (s *GameSession) drainEvents() []web.EventView {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := s.events
	s.events = nil
	return events
}

// waitForPending blocks until the next decision arrives from the match,
// then builds a ToolResponse with accumulated events + the pending decision.
func (s *GameSession) waitForPending() (*ToolResponse, error) {
	pending := <-s.pendingCh
	s.currentPending = pending

	resp := &ToolResponse{
		SessionID: s.ID,
		Events:    s.drainEvents(),
		State:     pending.State,
	}
	if resp.Events == nil {
		resp.Events = []web.EventView{}
	}

	if pending.Type == DecisionGameOver {
		s.mu.Lock()
		resp.GameOver = true
		resp.Result = s.result
		s.mu.Unlock()
		return resp, nil
	}

	resp.Pending = &PendingView{
		Type:       pending.Type,
		Prompt:     pending.Prompt,
		Candidates: pending.Candidates,
	}
	return resp, nil
}

// respondJSON marshals a ToolResponse to a JSON string.
func respondJSON(resp *ToolResponse) string {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
