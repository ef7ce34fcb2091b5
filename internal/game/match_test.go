package game

import (
	"context"
	"strings"
	"testing"

	"github.com/ktsujino/deckball/internal/log"
)

func mygoTestTeam() *TeamDef {
	return testTeam("MyGO!!!!!", "taki",
		"tomori", "anon", "rana", "soyo", "tomori", "anon",
		"bandPractice", "newSong", "haruhikage")
}

func mujicaTestTeam() *TeamDef {
	return testTeam("Ave Mujica", "umiri",
		"saki", "uika", "mutsumi", "nyamu", "saki", "uika",
		"newSong", "finalRehearsal", "energyDrink")
}

func TestMatchRunsToCompletion(t *testing.T) {
	cfg := MatchConfig{
		PlayerTeam: mygoTestTeam(),
		CPUTeam:    mujicaTestTeam(),
		Seed:       1,
	}
	player := NewScriptedController(t, "player")
	logger := runMatchToCompletion(t, cfg, player, NewCPUController())

	wins := logger.EventsOfType(log.EventWin)
	if len(wins) != 1 {
		t.Fatalf("win events = %d, want exactly 1", len(wins))
	}
	events := logger.Events()
	if events[len(events)-1].Type != log.EventWin {
		t.Error("the win event should close the log")
	}
	if got := len(logger.EventsOfType(log.EventNewInning)); got != DefaultInnings {
		t.Errorf("innings played = %d, want %d", got, DefaultInnings)
	}
	// Two half-innings per inning.
	if got := len(logger.EventsOfType(log.EventHalfInning)); got != 2*DefaultInnings {
		t.Errorf("half-innings = %d, want %d", got, 2*DefaultInnings)
	}
}

func TestMatchPreservesCardConservation(t *testing.T) {
	playerTeam := mygoTestTeam()
	cpuTeam := mujicaTestTeam()
	cfg := MatchConfig{
		PlayerTeam: playerTeam,
		CPUTeam:    cpuTeam,
		Logger:     log.NewMemoryLogger(),
		Seed:       2,
		NoShuffle:  true,
	}
	match, err := NewMatch(cfg, NewScriptedController(t, "player"), NewCPUController())
	if err != nil {
		t.Fatalf("NewMatch: %v", err)
	}
	if _, err := match.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// Every card dealt into a side's deck must still be reachable in one of
	// its zones when the match ends; bases are cleared with the last half.
	gs := match.State()
	if !gs.BasesEmpty() {
		t.Error("bases should be cleared when the match ends")
	}
	for _, tc := range []struct {
		side *Side
		want int
	}{
		{gs.Player, len(playerTeam.Cards)},
		{gs.CPU, len(cpuTeam.Cards)},
	} {
		got := tc.side.DeckCount() + tc.side.HandCount() + len(tc.side.Discard)
		if got != tc.want {
			t.Errorf("%s zones hold %d cards, want %d", tc.side.Name, got, tc.want)
		}
	}
	if !gs.Over || gs.Result == "" {
		t.Error("match should be marked over with a result")
	}
}

func TestMatchHonorsMaxInnings(t *testing.T) {
	cfg := MatchConfig{
		PlayerTeam: mygoTestTeam(),
		CPUTeam:    mujicaTestTeam(),
		Seed:       3,
		MaxInnings: 1,
	}
	logger := runMatchToCompletion(t, cfg, NewScriptedController(t, "player"), NewCPUController())
	if got := len(logger.EventsOfType(log.EventNewInning)); got != 1 {
		t.Errorf("innings = %d, want 1", got)
	}
}

func TestMatchWithNoBattersEndsScoreless(t *testing.T) {
	// Neither roster holds a batter, so every turn is an automatic out and
	// neither side can ever score.
	cfg := MatchConfig{
		PlayerTeam: testTeam("Home", "taki", "newSong", "newSong", "bandPractice"),
		CPUTeam:    testTeam("Away", "umiri", "newSong", "newSong", "energyDrink"),
		Seed:       4,
	}
	logger := runMatchToCompletion(t, cfg, NewScriptedController(t, "player"), NewScriptedController(t, "cpu"))

	wins := logger.EventsOfType(log.EventWin)
	if len(wins) != 1 || !strings.Contains(wins[0].Details, "Tie game 0-0") {
		t.Fatalf("want a scoreless tie, got %+v", wins)
	}
	outs := logger.EventsOfType(log.EventOut)
	if want := 2 * DefaultInnings * OutsPerHalf; len(outs) != want {
		t.Errorf("outs = %d, want %d automatic outs", len(outs), want)
	}
}

func TestMatchStopsOnCancelledContext(t *testing.T) {
	cfg := MatchConfig{
		PlayerTeam: mygoTestTeam(),
		CPUTeam:    mujicaTestTeam(),
		Logger:     log.NewMemoryLogger(),
		Seed:       5,
		NoShuffle:  true,
	}
	match, err := NewMatch(cfg, NewScriptedController(t, "player"), NewCPUController())
	if err != nil {
		t.Fatalf("NewMatch: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := match.Run(ctx); err == nil {
		t.Fatal("a cancelled context should abort the match")
	}
	if match.State().Over {
		t.Error("an aborted match must not be marked finished")
	}
}

func TestNewMatchRejectsMissingTeam(t *testing.T) {
	_, err := NewMatch(MatchConfig{PlayerTeam: mygoTestTeam()}, NewScriptedController(t, "p"), NewCPUController())
	if err == nil {
		t.Fatal("a match needs both teams")
	}
}

func TestPlayedDiscardCardNeverDiscardsItself(t *testing.T) {
	e, _ := newTestEngine()
	gs := e.state
	side := gs.BattingSide()

	shred := &Card{
		Key:  "shred",
		Name: "Shred",
		Type: CardAction,
		Effects: EffectSet{
			Play: &EffectDef{Action: "discard", Value: 1},
		},
	}
	batter := vanillaBatter("Batter")
	side.Hand = []*Card{shred, batter}

	m := &Match{Engine: e, Logger: e.Logger(), ctx: context.Background()}
	ctl := NewScriptedController(t, "p").AddCardPick("shred").AddPass()
	if err := m.playActionCards(side, ctl); err != nil {
		t.Fatalf("playActionCards: %v", err)
	}

	// The effect discards the batter; the played card follows separately.
	// Each card must land in the discard pile exactly once.
	if len(side.Hand) != 0 {
		t.Errorf("hand = %d, want 0", len(side.Hand))
	}
	if len(side.Discard) != 2 {
		t.Fatalf("discard = %d, want 2", len(side.Discard))
	}
	seen := map[*Card]int{}
	for _, c := range side.Discard {
		seen[c]++
	}
	if seen[shred] != 1 || seen[batter] != 1 {
		t.Errorf("discard pile holds duplicates: %v", seen)
	}
}

func TestConsumedActionCardSurfacesFailure(t *testing.T) {
	e, ml := newTestEngine()
	gs := e.state
	side := gs.BattingSide()

	// EnergyDrink's condition fails with no MyGO runner on base; the card
	// is still consumed and the reason must reach the log.
	drink := LookupCard("energyDrink")
	side.Hand = []*Card{drink}

	m := &Match{Engine: e, Logger: ml, ctx: context.Background()}
	ctl := NewScriptedController(t, "p").AddCardPick("energyDrink")
	if err := m.playActionCards(side, ctl); err != nil {
		t.Fatalf("playActionCards: %v", err)
	}

	if len(side.Discard) != 1 {
		t.Fatalf("the played card should be consumed, discard = %d", len(side.Discard))
	}
	failed := ml.EventsOfType(log.EventEffectFailed)
	if len(failed) != 1 {
		t.Fatalf("fizzle events = %d, want 1", len(failed))
	}
	if !strings.Contains(failed[0].Details, "condition not met") {
		t.Errorf("details = %q, want the failure reason surfaced", failed[0].Details)
	}
}

func TestScriptedLockPinsRunner(t *testing.T) {
	e, ml := newTestEngine()
	gs := e.state
	runner := vanillaBatter("Runner")
	gs.Bases[0] = runner

	glue := LookupCard("superglue")
	gs.BattingSide().Hand = []*Card{glue}

	m := &Match{Engine: e, Logger: ml, ctx: context.Background()}
	ctl := NewScriptedController(t, "p").AddCardPick("superglue").AddBasePick(0)
	if err := m.playActionCards(gs.BattingSide(), ctl); err != nil {
		t.Fatalf("playActionCards: %v", err)
	}
	if !runner.Locked {
		t.Error("the scripted lock should pin the runner")
	}
	if glue.Effects.Play.ResolvedTarget != nil {
		t.Error("the resolved target must be cleared after dispatch")
	}
	if len(ml.EventsOfType(log.EventLock)) != 1 {
		t.Error("expected a lock event")
	}
}
