package game

import (
	"strings"
	"testing"
)

func TestRegistryConstructsFreshCopies(t *testing.T) {
	a := LookupCard("tomori")
	b := LookupCard("tomori")
	if a == b {
		t.Fatal("registry must return fresh copies")
	}
	a.PermanentBonus.Power = 50
	if b.PermanentBonus.Power != 0 {
		t.Error("copies must not share bonus state")
	}
	if a.Effects.Aura == b.Effects.Aura {
		t.Error("copies must not share effect descriptors")
	}
}

func TestAnonNetworkingScalesWithTomori(t *testing.T) {
	e, _ := newTestEngine()
	side := e.state.BattingSide()
	for i := 0; i < 5; i++ {
		side.Deck = append(side.Deck, vanillaBatter("Filler"))
	}

	anon := LookupCard("anon")
	if res := e.Process(anon, anon.Effects.Play, TriggerPlay); !res.Success {
		t.Fatalf("networking failed: %+v", res)
	}
	if len(side.Hand) != 1 {
		t.Errorf("hand = %d, want 1 without Tomori", len(side.Hand))
	}

	e.state.Bases[0] = LookupCard("tomori")
	if res := e.Process(anon, anon.Effects.Play, TriggerPlay); !res.Success {
		t.Fatalf("networking failed: %+v", res)
	}
	if len(side.Hand) != 4 {
		t.Errorf("hand = %d, want 3 more with Tomori on base", len(side.Hand))
	}
}

func TestSoyoReclaimPrefersHand(t *testing.T) {
	e, _ := newTestEngine()
	side := e.state.BattingSide()
	haru := LookupCard("haruhikage")
	side.Discard = append(side.Discard, vanillaBatter("Other"), haru)

	soyo := LookupCard("soyo")
	res := e.Process(soyo, soyo.Effects.Death, TriggerDeath)
	if !res.Success {
		t.Fatalf("reclaim failed: %+v", res)
	}
	if len(side.Hand) != 1 || side.Hand[0] != haru {
		t.Error("the song should return to hand")
	}
	if len(side.Discard) != 1 {
		t.Error("the reclaimed card should leave the discard pile")
	}
}

func TestSoyoReclaimFallsBackToDeckTop(t *testing.T) {
	e, _ := newTestEngine()
	side := e.state.BattingSide()
	for i := 0; i < HandCap; i++ {
		side.Hand = append(side.Hand, vanillaBatter("Filler"))
	}
	haru := LookupCard("haruhikage")
	side.Discard = append(side.Discard, haru)

	soyo := LookupCard("soyo")
	res := e.Process(soyo, soyo.Effects.Death, TriggerDeath)
	if !res.Success || !strings.Contains(res.Description, "top of the deck") {
		t.Fatalf("got %+v", res)
	}
	if len(side.Deck) != 1 || side.Deck[len(side.Deck)-1] != haru {
		t.Error("the song should sit on top of the deck")
	}
	if len(side.Hand) != HandCap {
		t.Error("the hand must not exceed its cap")
	}
}

func TestSoyoReclaimMissingCardFails(t *testing.T) {
	e, _ := newTestEngine()
	soyo := LookupCard("soyo")
	res := e.Process(soyo, soyo.Effects.Death, TriggerDeath)
	if res.Success {
		t.Fatal("reclaim should fail with an empty discard pile")
	}
}

func TestUikaEncoreAmplifiesPermanentBonus(t *testing.T) {
	e, _ := newTestEngine()
	uika := LookupCard("uika")

	res := e.Process(uika, uika.Effects.Play, TriggerPlay)
	if res.Success || res.Reason != "no permanent bonus to amplify" {
		t.Fatalf("encore without a bonus: %+v", res)
	}

	uika.PermanentBonus.Power = 6
	uika.PermanentBonus.Speed = 4
	if res := e.Process(uika, uika.Effects.Play, TriggerPlay); !res.Success {
		t.Fatalf("encore failed: %+v", res)
	}
	if got := EffectiveStat(uika, StatPower); got != uika.Base.Power+12 {
		t.Errorf("power = %d, want the bonus doubled", got)
	}
	if uika.TempBonus.Speed != 4 {
		t.Errorf("temp speed bonus = %d, want 4", uika.TempBonus.Speed)
	}
}

func TestMutsumiRewindClearsOwnEffects(t *testing.T) {
	e, _ := newTestEngine()
	gs := e.state
	mutsumi := LookupCard("mutsumi")
	mutsumi.TempBonus.Contact = 10
	gs.ActiveEffects = []*ActiveEffect{
		{Source: mutsumi, Kind: KindBuff, Stat: StatContact, Value: 10, Card: mutsumi, Duration: DurationAtBat, Slot: -1},
		{Source: vanillaBatter("Other"), Kind: KindBuff, Stat: StatPower, Value: 5, Duration: DurationTurn, Slot: -1},
	}

	res := e.Process(mutsumi, mutsumi.Effects.Death, TriggerDeath)
	if !res.Success {
		t.Fatalf("rewind failed: %+v", res)
	}
	if !mutsumi.TempBonus.IsZero() {
		t.Error("rewind should clear the temp bonus")
	}
	if len(gs.ActiveEffects) != 1 || gs.ActiveEffects[0].Stat != StatPower {
		t.Errorf("only the foreign effect should survive, have %d", len(gs.ActiveEffects))
	}
}

func TestMutsumiPlayBranches(t *testing.T) {
	// Trailing on a tied score: the draw branch runs.
	e, _ := newTestEngine()
	e.state.BattingSide().Deck = []*Card{vanillaBatter("Top")}
	mutsumi := LookupCard("mutsumi")
	res := e.Process(mutsumi, mutsumi.Effects.Play, TriggerPlay)
	if !res.Success || !strings.Contains(res.Description, "trailing") {
		t.Fatalf("got %+v", res)
	}

	// Leading: the self-buff branch runs.
	e2, _ := newTestEngine()
	e2.state.Score.Home = 3
	mutsumi2 := LookupCard("mutsumi")
	res = e2.Process(mutsumi2, mutsumi2.Effects.Play, TriggerPlay)
	if !res.Success || !strings.Contains(res.Description, "leading") {
		t.Fatalf("got %+v", res)
	}
	if got := e2.StatWithEffects(mutsumi2, StatContact); got != mutsumi2.Base.Contact+10 {
		t.Errorf("contact = %d, want the leading buff applied", got)
	}
}

func TestSakiSynergyNeedsTomori(t *testing.T) {
	e, _ := newTestEngine()
	saki := LookupCard("saki")

	res := e.Process(saki, saki.Effects.Synergy, TriggerSynergy)
	if res.Success || res.Reason != "condition not met" {
		t.Fatalf("synergy without Tomori: %+v", res)
	}

	e.state.Bases[1] = LookupCard("tomori")
	if res := e.Process(saki, saki.Effects.Synergy, TriggerSynergy); !res.Success {
		t.Fatalf("synergy with Tomori on base: %+v", res)
	}
	if got := e.StatWithEffects(saki, StatPower); got != saki.Base.Power+15 {
		t.Errorf("power = %d, want +15", got)
	}
}
