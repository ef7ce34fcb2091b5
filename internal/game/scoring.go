package game

import (
	"fmt"
	"strings"

	"github.com/ktsujino/deckball/internal/log"
)

// AtBatResult summarizes a resolved at-bat.
type AtBatResult struct {
	PointsScored int
	Description  string
}

// ResolveAtBat turns a rolled outcome into runner movement, scoring and
// death-trigger cascades. The batter card must already be out of any base
// slot (it is removed from the batting hand here).
//
// Runners advance from third base backward to first so that a vacated slot
// is open before the runner behind it moves. A locked runner never advances
// and is skipped entirely. A runner whose computed slot is occupied is
// squeezed forward to the next open slot; with no open slot left, it scores.
func (e *Engine) ResolveAtBat(outcome Outcome, batter *Card) AtBatResult {
	gs := e.state
	side := gs.BattingSide()
	var desc []string

	adv := outcome.Advancement()
	if adv == 0 {
		gs.Outs++
		e.logger.Log(log.NewOutEvent(gs.Inning, gs.Half.String(), batter.Name, gs.Outs))
		// The cascade fires even though the card only returns to the
		// rotation: "death" here models a reset, not removal.
		e.processDeathEffects(batter)
		side.RemoveFromHand(batter)
		gs.Selected = -1
		side.SendToDiscard(batter)
		e.RecomputeAuras()
		return AtBatResult{
			PointsScored: 0,
			Description:  fmt.Sprintf("%s strikes out.", batter.Name),
		}
	}

	points := 0

	// Advance existing runners, third to first.
	for i := BaseCount - 1; i >= 0; i-- {
		runner := gs.Bases[i]
		if runner == nil || runner.Locked {
			continue
		}
		target := i + adv
		if target >= BaseCount {
			points += e.scoreRunner(runner, i)
			desc = append(desc, fmt.Sprintf("%s scores", runner.Name))
			continue
		}
		placed := e.placeRunner(runner, i, target)
		if placed < 0 {
			points += e.scoreRunner(runner, i)
			desc = append(desc, fmt.Sprintf("%s is forced home", runner.Name))
		}
	}

	// Place the new batter.
	side.RemoveFromHand(batter)
	gs.Selected = -1
	if adv >= BaseCount+1 {
		// A home run never occupies a base.
		e.logger.Log(log.NewRunnerScoreEvent(gs.Inning, gs.Half.String(), batter.Name))
		e.processDeathEffects(batter)
		side.SendToDiscard(batter)
		desc = append(desc, fmt.Sprintf("%s rounds the bases", batter.Name))
	} else {
		idx := adv - 1
		placed := e.placeRunner(batter, -1, idx)
		if placed < 0 {
			points += e.scoreRunner(batter, -1)
			desc = append(desc, fmt.Sprintf("%s is forced home", batter.Name))
		}
	}

	points += outcome.HitBonus()
	if points > 0 {
		score := gs.AddScore(points)
		e.logger.Log(log.NewScoreChangeEvent(gs.Inning, gs.Half.String(), score.Away, score.Home))
	}
	e.RecomputeAuras()

	description := fmt.Sprintf("%s hits a %s!", batter.Name, outcome)
	if outcome == OutcomeWalk {
		description = fmt.Sprintf("%s draws a walk.", batter.Name)
	}
	if len(desc) > 0 {
		description += " " + strings.Join(desc, "; ") + "."
	}
	return AtBatResult{PointsScored: points, Description: description}
}

// placeRunner moves a card into the target slot, squeezing forward to the
// next open slot when the direct target is occupied. from is the runner's
// current slot, or -1 for the incoming batter. Returns the slot used, or -1
// when every slot from target onward is occupied (the runner scores).
func (e *Engine) placeRunner(card *Card, from, target int) int {
	gs := e.state
	slot := -1
	for j := target; j < BaseCount; j++ {
		if gs.Bases[j] == nil {
			slot = j
			break
		}
	}
	if slot == -1 {
		return -1
	}
	if from >= 0 {
		gs.Bases[from] = nil
	}
	gs.Bases[slot] = card
	if slot == target {
		e.logger.Log(log.NewRunnerAdvanceEvent(gs.Inning, gs.Half.String(), card.Name, from, slot))
	} else {
		e.logger.Log(log.NewSqueezeEvent(gs.Inning, gs.Half.String(), card.Name, from, slot))
	}
	return slot
}

// scoreRunner awards a run, fires the runner's death cascade, and moves the
// card to the discard pile. from is the vacated slot, or -1 for a batter
// that scored without touching a base.
func (e *Engine) scoreRunner(card *Card, from int) int {
	gs := e.state
	if from >= 0 {
		gs.Bases[from] = nil
	}
	e.logger.Log(log.NewRunnerScoreEvent(gs.Inning, gs.Half.String(), card.Name))
	e.processDeathEffects(card)
	gs.BattingSide().SendToDiscard(card)
	return RunValue
}

// processDeathEffects dispatches a card's death cascade. A bespoke custom
// handler declared on the death descriptor takes precedence over the generic
// keyword path; exactly one of the two runs.
func (e *Engine) processDeathEffects(card *Card) {
	death := card.Effects.Death
	if death == nil {
		return
	}
	gs := e.state
	e.logger.Log(log.NewDeathTriggerEvent(gs.Inning, gs.Half.String(), card.Name))
	e.Process(card, death, TriggerDeath)
}
