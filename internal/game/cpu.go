package game

import (
	"context"

	"github.com/ktsujino/deckball/internal/log"
)

// CPUController is the built-in opponent. Its policy is deliberately
// simple: play the first non-lock action card in hand, send the
// highest-rated batter to the plate, lock the lead runner, answer yes.
type CPUController struct{}

// NewCPUController returns the built-in CPU controller.
func NewCPUController() *CPUController {
	return &CPUController{}
}

func (c *CPUController) ChooseCard(ctx context.Context, state *GameState, prompt string, candidates []*Card) (int, error) {
	if len(candidates) == 0 {
		return -1, nil
	}
	if candidates[0].Type == CardAction {
		for i, cd := range candidates {
			eff := cd.Effects.Play
			if eff != nil && eff.Custom == "" && (eff.ActionKeyword() == "lock" || eff.ActionKeyword() == "lockCharacter") {
				continue
			}
			return i, nil
		}
		return -1, nil
	}
	// Batter selection: pick the highest rating.
	best := 0
	for i, cd := range candidates {
		if cd.OVR > candidates[best].OVR {
			best = i
		}
	}
	return best, nil
}

func (c *CPUController) ChooseBase(ctx context.Context, state *GameState, prompt string) (int, error) {
	// Lead runner first: the slot closest to home.
	for i := BaseCount - 1; i >= 0; i-- {
		if state.Bases[i] != nil {
			return i, nil
		}
	}
	return -1, nil
}

func (c *CPUController) ChooseYesNo(ctx context.Context, state *GameState, prompt string) (bool, error) {
	return true, nil
}

func (c *CPUController) Notify(ctx context.Context, event log.GameEvent) error {
	return nil
}
