package game

import "testing"

func activeWithDuration(d Duration) *ActiveEffect {
	return &ActiveEffect{Kind: KindBuff, Stat: StatPower, Value: 5, Duration: d, Slot: -1}
}

func TestCleanupRemovesAtMostScope(t *testing.T) {
	e, _ := newTestEngine()
	gs := e.state
	gs.ActiveEffects = []*ActiveEffect{
		activeWithDuration(DurationAtBat),
		activeWithDuration(DurationTurn),
		activeWithDuration(DurationInning),
		activeWithDuration(DurationGame),
		activeWithDuration(DurationPermanent),
	}

	removed := e.Cleanup(DurationTurn)
	if removed != 2 {
		t.Errorf("removed = %d, want at-bat and turn entries", removed)
	}
	if len(gs.ActiveEffects) != 3 {
		t.Fatalf("remaining = %d, want 3", len(gs.ActiveEffects))
	}
	for _, a := range gs.ActiveEffects {
		if a.Duration <= DurationTurn {
			t.Errorf("entry with duration %s survived a turn cleanup", a.Duration)
		}
	}
}

func TestCleanupGameKeepsOnlyPermanent(t *testing.T) {
	e, _ := newTestEngine()
	gs := e.state
	gs.ActiveEffects = []*ActiveEffect{
		activeWithDuration(DurationInning),
		activeWithDuration(DurationGame),
		activeWithDuration(DurationPermanent),
	}

	e.Cleanup(DurationGame)
	if len(gs.ActiveEffects) != 1 || gs.ActiveEffects[0].Duration != DurationPermanent {
		t.Errorf("only the permanent entry should survive, have %d", len(gs.ActiveEffects))
	}
}

func TestCleanupClearsTempBonusesEverywhere(t *testing.T) {
	e, _ := newTestEngine()
	gs := e.state

	inHand := vanillaBatter("InHand")
	inHand.TempBonus.Power = 20
	onBase := vanillaBatter("OnBase")
	onBase.TempBonus.Contact = 10
	pitcher := vanillaPitcher("Ace")
	pitcher.TempBonus.Velocity = 10
	perm := vanillaBatter("Keeper")
	perm.PermanentBonus.Speed = 7

	gs.Player.Hand = append(gs.Player.Hand, inHand)
	gs.Player.Discard = append(gs.Player.Discard, perm)
	gs.CPU.Pitcher = pitcher
	gs.Bases[2] = onBase

	e.Cleanup(DurationAtBat)
	if !inHand.TempBonus.IsZero() || !onBase.TempBonus.IsZero() || !pitcher.TempBonus.IsZero() {
		t.Error("temp bonuses should be cleared in every zone")
	}
	if perm.PermanentBonus.Speed != 7 {
		t.Error("permanent bonuses must survive cleanup")
	}
}
