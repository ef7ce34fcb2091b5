package game

import (
	"math/rand"

	"github.com/ktsujino/deckball/internal/log"
)

// OutcomeWeights computes the relative likelihood of each at-bat outcome as
// a pure function of the already-composed batter and pitcher stats. Pulling
// the weighting out of the roll keeps the roll replaceable with a seeded
// generator in tests.
func OutcomeWeights(batter, pitcher StatBlock) [6]float64 {
	var w [6]float64
	w[OutcomeStrikeout] = 24 +
		0.35*float64(pitcher.Velocity) +
		0.25*float64(pitcher.Technique) -
		0.30*float64(batter.Contact)
	w[OutcomeWalk] = 8 + 0.20*float64(StatMax/2-pitcher.Control)
	w[OutcomeSingle] = 16 +
		0.25*float64(batter.HitRate) +
		0.10*float64(batter.Contact) -
		0.10*float64(pitcher.Technique)
	w[OutcomeDouble] = 7 +
		0.10*float64(batter.HitRate) +
		0.10*float64(batter.Power) +
		0.05*float64(batter.Speed)
	w[OutcomeTriple] = 2 +
		0.12*float64(batter.Speed) -
		0.03*float64(pitcher.Power)
	w[OutcomeHomeRun] = 3 +
		0.18*float64(batter.Power) -
		0.06*float64(pitcher.Power)

	for i := range w {
		if w[i] < 1 {
			w[i] = 1
		}
	}
	return w
}

// PickOutcome rolls an outcome from the given weights.
func PickOutcome(w [6]float64, rng *rand.Rand) Outcome {
	total := 0.0
	for _, v := range w {
		total += v
	}
	roll := rng.Float64() * total
	for i, v := range w {
		roll -= v
		if roll < 0 {
			return Outcome(i)
		}
	}
	return OutcomeStrikeout
}

// RollOutcome composes the batter's and the opposing pitcher's effective
// stats (active effects folded in, clamped) and rolls the at-bat outcome.
func (e *Engine) RollOutcome(batter *Card) Outcome {
	gs := e.state

	var bs StatBlock
	for _, s := range BatterStats {
		bs.Add(s, e.StatWithEffects(batter, s))
	}
	var ps StatBlock
	if pitcher := gs.FieldingSide().Pitcher; pitcher != nil {
		for _, s := range PitcherStats {
			ps.Add(s, e.StatWithEffects(pitcher, s))
		}
	}

	outcome := PickOutcome(OutcomeWeights(bs, ps), e.rng)
	e.logger.Log(log.NewOutcomeEvent(gs.Inning, gs.Half.String(), batter.Name, outcome.String()))
	return outcome
}
