package web

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/coder/websocket"

	"github.com/ktsujino/deckball/internal/game"
	"github.com/ktsujino/deckball/internal/log"
)

// WSController implements game.Controller over a WebSocket connection. The
// browser is always the home player.
type WSController struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// NewWSController wraps an accepted WebSocket connection.
func NewWSController(conn *websocket.Conn) *WSController {
	return &WSController{conn: conn}
}

// send writes a server message. Must be called with mu held.
func (wc *WSController) send(ctx context.Context, msg ServerMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return wc.conn.Write(ctx, websocket.MessageText, data)
}

// recv reads the next client message of the expected type, skipping
// anything else the browser sends. Must be called with mu held.
func (wc *WSController) recv(ctx context.Context, want string) (ClientMessage, error) {
	for {
		_, data, err := wc.conn.Read(ctx)
		if err != nil {
			return ClientMessage{}, err
		}
		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}
		if msg.Type == want {
			return msg, nil
		}
	}
}

// ChooseCard implements game.Controller.
func (wc *WSController) ChooseCard(ctx context.Context, state *game.GameState, prompt string, candidates []*game.Card) (int, error) {
	wc.mu.Lock()
	defer wc.mu.Unlock()

	var views []CardView
	for i, c := range candidates {
		views = append(views, BuildCardView(i, c))
	}
	msg := ServerMessage{
		Type:       "choose_card",
		Prompt:     prompt,
		Candidates: views,
		State:      BuildStateView(state),
	}
	if err := wc.send(ctx, msg); err != nil {
		return 0, fmt.Errorf("send choose_card: %w", err)
	}

	resp, err := wc.recv(ctx, "card")
	if err != nil {
		return 0, fmt.Errorf("recv card: %w", err)
	}
	if resp.Index >= len(candidates) {
		return -1, nil
	}
	return resp.Index, nil
}

// ChooseBase implements game.Controller.
func (wc *WSController) ChooseBase(ctx context.Context, state *game.GameState, prompt string) (int, error) {
	wc.mu.Lock()
	defer wc.mu.Unlock()

	msg := ServerMessage{
		Type:   "choose_base",
		Prompt: prompt,
		State:  BuildStateView(state),
	}
	if err := wc.send(ctx, msg); err != nil {
		return 0, fmt.Errorf("send choose_base: %w", err)
	}

	resp, err := wc.recv(ctx, "base")
	if err != nil {
		return 0, fmt.Errorf("recv base: %w", err)
	}
	if resp.Index >= game.BaseCount {
		return -1, nil
	}
	return resp.Index, nil
}

// ChooseYesNo implements game.Controller.
func (wc *WSController) ChooseYesNo(ctx context.Context, state *game.GameState, prompt string) (bool, error) {
	wc.mu.Lock()
	defer wc.mu.Unlock()

	msg := ServerMessage{
		Type:   "choose_yes_no",
		Prompt: prompt,
		State:  BuildStateView(state),
	}
	if err := wc.send(ctx, msg); err != nil {
		return false, fmt.Errorf("send choose_yes_no: %w", err)
	}

	resp, err := wc.recv(ctx, "yes_no")
	if err != nil {
		return false, fmt.Errorf("recv yes_no: %w", err)
	}
	return resp.Answer, nil
}

// Notify implements game.Controller.
func (wc *WSController) Notify(ctx context.Context, event log.GameEvent) error {
	wc.mu.Lock()
	defer wc.mu.Unlock()

	return wc.send(ctx, ServerMessage{
		Type: "notify",
		Event: &EventView{
			Seq:     event.Seq,
			Inning:  event.Inning,
			Half:    event.Half,
			Side:    event.Side,
			Type:    event.Type.String(),
			Card:    event.Card,
			Details: event.Details,
		},
	})
}

// SendGameOver sends a game_over message to the client.
func (wc *WSController) SendGameOver(ctx context.Context, result string) error {
	wc.mu.Lock()
	defer wc.mu.Unlock()
	return wc.send(ctx, ServerMessage{Type: "game_over", Result: result})
}

// SendError sends an error message to the client.
func (wc *WSController) SendError(ctx context.Context, msg string) error {
	wc.mu.Lock()
	defer wc.mu.Unlock()
	return wc.send(ctx, ServerMessage{Type: "error", Error: msg})
}

// BuildStateView creates a StateView from the home player's perspective.
func BuildStateView(state *game.GameState) *StateView {
	sv := &StateView{
		Inning:    state.Inning,
		Half:      state.Half.String(),
		Outs:      state.Outs,
		ScoreAway: state.Score.Away,
		ScoreHome: state.Score.Home,
		YourTurn:  state.BattingSide() == state.Player,
	}
	for i, b := range state.Bases {
		if b != nil {
			v := BuildCardView(i, b)
			sv.Bases[i] = &v
		}
	}

	sv.You = SideView{
		Team:         state.Player.Team,
		HandCount:    len(state.Player.Hand),
		DeckCount:    state.Player.DeckCount(),
		DiscardCount: len(state.Player.Discard),
	}
	for i, c := range state.Player.Hand {
		sv.You.Hand = append(sv.You.Hand, BuildCardView(i, c))
	}
	if p := state.Player.Pitcher; p != nil {
		v := BuildCardView(0, p)
		sv.You.Pitcher = &v
	}

	sv.Opponent = SideView{
		Team:         state.CPU.Team,
		HandCount:    len(state.CPU.Hand),
		DeckCount:    state.CPU.DeckCount(),
		DiscardCount: len(state.CPU.Discard),
	}
	if p := state.CPU.Pitcher; p != nil {
		v := BuildCardView(0, p)
		sv.Opponent.Pitcher = &v
	}

	return sv
}

// BuildCardView renders a card with its composed stats.
func BuildCardView(index int, c *game.Card) CardView {
	stats := game.ComposedStats(c)
	cv := CardView{
		Index:    index,
		Key:      c.Key,
		Name:     c.Name,
		CardType: c.Type.String(),
		Band:     c.Band,
		OVR:      c.OVR,
		Locked:   c.Locked,
	}
	switch c.Type {
	case game.CardBatter:
		cv.Power = stats.Power
		cv.HitRate = stats.HitRate
		cv.Contact = stats.Contact
		cv.Speed = stats.Speed
	case game.CardPitcher:
		cv.Power = stats.Power
		cv.Velocity = stats.Velocity
		cv.Control = stats.Control
		cv.Technique = stats.Technique
	}
	if play := c.Effects.Play; play != nil {
		cv.Description = play.Description
	}
	return cv
}
