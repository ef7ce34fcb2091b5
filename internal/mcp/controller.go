package mcp

import (
	"context"

	"github.com/ktsujino/deckball/internal/game"
	"github.com/ktsujino/deckball/internal/log"
	"github.com/ktsujino/deckball/internal/web"
)

// Controller implements game.Controller by publishing decisions to the
// session's pending channel and blocking on a response channel until an
// MCP tool call answers.
type Controller struct {
	session    *GameSession
	responseCh chan any
}

// NewController creates a controller bound to the given session.
func NewController(session *GameSession) *Controller {
	return &Controller{
		session:    session,
		responseCh: make(chan any),
	}
}

// ChooseCard implements game.Controller.
func (c *Controller) ChooseCard(ctx context.Context, state *game.GameState, prompt string, candidates []*game.Card) (int, error) {
	var views []web.CardView
	for i, card := range candidates {
		views = append(views, web.BuildCardView(i, card))
	}

	c.session.pendingCh <- &PendingDecision{
		Type:       DecisionChooseCard,
		State:      web.BuildStateView(state),
		Prompt:     prompt,
		Candidates: views,
	}

	resp := <-c.responseCh
	cr := resp.(CardResponse)
	if cr.Index >= len(candidates) {
		return -1, nil
	}
	return cr.Index, nil
}

// ChooseBase implements game.Controller.
func (c *Controller) ChooseBase(ctx context.Context, state *game.GameState, prompt string) (int, error) {
	c.session.pendingCh <- &PendingDecision{
		Type:   DecisionChooseBase,
		State:  web.BuildStateView(state),
		Prompt: prompt,
	}

	resp := <-c.responseCh
	br := resp.(BaseResponse)
	if br.Index >= game.BaseCount {
		return -1, nil
	}
	return br.Index, nil
}

// ChooseYesNo implements game.Controller.
func (c *Controller) ChooseYesNo(ctx context.Context, state *game.GameState, prompt string) (bool, error) {
	c.session.pendingCh <- &PendingDecision{
		Type:   DecisionChooseYesNo,
		State:  web.BuildStateView(state),
		Prompt: prompt,
	}

	resp := <-c.responseCh
	yr := resp.(YesNoResponse)
	return yr.Answer, nil
}

// Notify implements game.Controller.
func (c *Controller) Notify(ctx context.Context, event log.GameEvent) error {
	c.session.appendEvent(web.EventView{
		Seq:     event.Seq,
		Inning:  event.Inning,
		Half:    event.Half,
		Side:    event.Side,
		Type:    event.Type.String(),
		Card:    event.Card,
		Details: event.Details,
	})
	return nil
}
