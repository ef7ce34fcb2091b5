package game

import (
	"testing"
)

func auraCount(gs *GameState) int {
	n := 0
	for _, a := range gs.ActiveEffects {
		if a.Kind == KindAura || a.Kind == KindPassive {
			n++
		}
	}
	return n
}

func TestRecomputeAurasIsIdempotent(t *testing.T) {
	e, _ := newTestEngine()
	gs := e.state

	tomori := LookupCard("tomori")
	anon := LookupCard("anon")
	gs.Bases[0] = tomori
	gs.Bases[1] = anon

	e.RecomputeAuras()
	first := auraCount(gs)
	if first != 1 {
		t.Fatalf("aura entries = %d, want Tomori's aura only", first)
	}
	e.RecomputeAuras()
	if got := auraCount(gs); got != first {
		t.Errorf("recompute is not idempotent: %d then %d", first, got)
	}
}

func TestRecomputeAurasRespectsCondition(t *testing.T) {
	e, _ := newTestEngine()
	gs := e.state

	radiator := vanillaBatter("Radiator")
	radiator.Effects.Aura = &EffectDef{
		Condition: &Condition{Tag: "tomoriOnBase"},
		Target:    TargetAllOnBase,
		Stat:      StatPower,
		Value:     10,
		Duration:  DurationInning,
	}
	gs.Bases[0] = radiator

	e.RecomputeAuras()
	if got := auraCount(gs); got != 0 {
		t.Fatalf("aura entries = %d, want 0 while the condition fails", got)
	}

	gs.Bases[2] = LookupCard("tomori")
	e.RecomputeAuras()
	// The radiator's aura plus Tomori's own (she counts herself a bandmate).
	if got := auraCount(gs); got != 2 {
		t.Errorf("aura entries = %d, want 2 once Tomori reaches base", got)
	}
}

func TestLockedRunnerStillRadiates(t *testing.T) {
	e, _ := newTestEngine()
	gs := e.state

	tomori := LookupCard("tomori")
	tomori.Locked = true
	gs.Bases[0] = tomori
	gs.Bases[1] = LookupCard("anon")

	e.RecomputeAuras()
	if got := auraCount(gs); got != 1 {
		t.Errorf("aura entries = %d, want the locked runner's aura to apply", got)
	}

	anonHit := e.StatWithEffects(gs.Bases[1], StatHitRate)
	if want := gs.Bases[1].Base.HitRate + 10; anonHit != want {
		t.Errorf("hitRate under aura = %d, want %d", anonHit, want)
	}
}

func TestInHandPassiveApplies(t *testing.T) {
	e, _ := newTestEngine()
	gs := e.state

	rana := LookupCard("rana")
	gs.CPU.Hand = append(gs.CPU.Hand, rana)
	batter := vanillaBatter("Batter")
	gs.CPU.Hand = append(gs.CPU.Hand, batter)
	gs.Selected = 1

	e.RecomputeAuras()
	if got := e.StatWithEffects(batter, StatContact); got != 55 {
		t.Errorf("contact with Rana in hand = %d, want 55", got)
	}

	// Once Rana leaves the hand the passive disappears.
	gs.CPU.Hand = gs.CPU.Hand[1:]
	gs.Selected = 0
	e.RecomputeAuras()
	if got := e.StatWithEffects(batter, StatContact); got != 50 {
		t.Errorf("contact after Rana leaves = %d, want 50", got)
	}
}

func TestPitcherPassivesCoverBothSides(t *testing.T) {
	e, _ := newTestEngine()
	gs := e.state
	gs.CPU.Pitcher = LookupCard("taki")
	gs.Player.Pitcher = LookupCard("umiri")

	batter := vanillaBatter("Batter")
	gs.CPU.Hand = append(gs.CPU.Hand, batter)
	gs.Selected = 0

	e.RecomputeAuras()
	if got := auraCount(gs); got != 2 {
		t.Fatalf("passive entries = %d, want both pitchers", got)
	}
	// Both pitcher debuffs target the current batter.
	if got := e.StatWithEffects(batter, StatContact); got != 45 {
		t.Errorf("contact = %d, want 45 under Taki's pressure", got)
	}
	if got := e.StatWithEffects(batter, StatHitRate); got != 45 {
		t.Errorf("hitRate = %d, want 45 under Umiri's pressure", got)
	}
}
