package game

import (
	"math/rand"
	"testing"
)

func TestOutcomeWeightsFloorAtOne(t *testing.T) {
	// A maxed-out pitcher against a hopeless batter drives several raw
	// weights negative; every weight still stays rollable.
	batter := StatBlock{}
	pitcher := StatBlock{Power: StatMax, Velocity: StatMax, Control: StatMax, Technique: StatMax}
	w := OutcomeWeights(batter, pitcher)
	for i, v := range w {
		if v < 1 {
			t.Errorf("weight[%s] = %f, want >= 1", Outcome(i), v)
		}
	}
}

func TestOutcomeWeightsRewardPower(t *testing.T) {
	weak := StatBlock{Power: 40, HitRate: 60, Contact: 60, Speed: 60}
	strong := weak
	strong.Power = 90
	pitcher := StatBlock{Power: 60, Velocity: 60, Control: 60, Technique: 60}

	if OutcomeWeights(strong, pitcher)[OutcomeHomeRun] <= OutcomeWeights(weak, pitcher)[OutcomeHomeRun] {
		t.Error("more power should raise the home run weight")
	}
	if OutcomeWeights(weak, pitcher)[OutcomeStrikeout] != OutcomeWeights(strong, pitcher)[OutcomeStrikeout] {
		t.Error("power alone should not change the strikeout weight")
	}
}

func TestPickOutcomeIsDeterministicPerSeed(t *testing.T) {
	w := OutcomeWeights(
		StatBlock{Power: 60, HitRate: 70, Contact: 65, Speed: 55},
		StatBlock{Power: 60, Velocity: 70, Control: 60, Technique: 65},
	)
	a := rand.New(rand.NewSource(7))
	b := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		if PickOutcome(w, a) != PickOutcome(w, b) {
			t.Fatal("same seed must produce the same outcome stream")
		}
	}
}

func TestPickOutcomeDegenerateWeights(t *testing.T) {
	var w [6]float64
	w[OutcomeTriple] = 1
	// All other slots carry weight 0, so every roll lands on the triple.
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		if got := PickOutcome(w, rng); got != OutcomeTriple {
			t.Fatalf("roll %d = %s, want triple", i, got)
		}
	}
}

func TestRollOutcomeUsesComposedStats(t *testing.T) {
	e, ml := newTestEngine()
	gs := e.state
	gs.FieldingSide().Pitcher = vanillaPitcher("Ace")
	batter := vanillaBatter("Batter")
	gs.BattingSide().Hand = []*Card{batter}
	gs.Selected = 0

	outcome := e.RollOutcome(batter)
	if outcome < OutcomeStrikeout || outcome > OutcomeHomeRun {
		t.Fatalf("outcome out of range: %d", outcome)
	}
	last := ml.LastEvent()
	if last.Card != "Batter" {
		t.Errorf("outcome event should name the batter, got %+v", last)
	}
}
