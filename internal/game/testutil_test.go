package game

import (
	"context"
	"math/rand"
	"testing"

	"github.com/ktsujino/deckball/internal/log"
)

// ScriptedController follows a predefined script of choices. Used in tests
// to deterministically drive a match.
type ScriptedController struct {
	t    *testing.T
	name string

	// Card picks by name; consumed in order. A "" entry declines.
	cardPicks []string
	cardPos   int

	basePicks []int
	basePos   int

	yesNoPicks []bool
	yesNoPos   int
}

func NewScriptedController(t *testing.T, name string) *ScriptedController {
	return &ScriptedController{t: t, name: name}
}

func (sc *ScriptedController) AddCardPick(name string) *ScriptedController {
	sc.cardPicks = append(sc.cardPicks, name)
	return sc
}

func (sc *ScriptedController) AddPass() *ScriptedController {
	sc.cardPicks = append(sc.cardPicks, "")
	return sc
}

func (sc *ScriptedController) AddBasePick(slot int) *ScriptedController {
	sc.basePicks = append(sc.basePicks, slot)
	return sc
}

func (sc *ScriptedController) AddYesNo(answer bool) *ScriptedController {
	sc.yesNoPicks = append(sc.yesNoPicks, answer)
	return sc
}

func (sc *ScriptedController) ChooseCard(ctx context.Context, state *GameState, prompt string, candidates []*Card) (int, error) {
	if sc.cardPos < len(sc.cardPicks) {
		// Peek: only consume the scripted pick if it is available right now.
		// This lets scripts span multiple turns without padding.
		want := sc.cardPicks[sc.cardPos]
		if want == "" {
			sc.cardPos++
			return -1, nil
		}
		for i, c := range candidates {
			if c.Name == want || c.Key == want {
				sc.cardPos++
				return i, nil
			}
		}
	}
	// Default: decline optional action-card prompts, send the first
	// candidate up to bat.
	if len(candidates) > 0 && candidates[0].Type == CardAction {
		return -1, nil
	}
	return 0, nil
}

func (sc *ScriptedController) ChooseBase(ctx context.Context, state *GameState, prompt string) (int, error) {
	if sc.basePos >= len(sc.basePicks) {
		return -1, nil
	}
	slot := sc.basePicks[sc.basePos]
	sc.basePos++
	return slot, nil
}

func (sc *ScriptedController) ChooseYesNo(ctx context.Context, state *GameState, prompt string) (bool, error) {
	if sc.yesNoPos >= len(sc.yesNoPicks) {
		return false, nil
	}
	answer := sc.yesNoPicks[sc.yesNoPos]
	sc.yesNoPos++
	return answer, nil
}

func (sc *ScriptedController) Notify(ctx context.Context, event log.GameEvent) error {
	return nil
}

// --- Test card helpers ---

func vanillaBatter(name string) *Card {
	return &Card{
		Key:  name,
		Name: name,
		Type: CardBatter,
		Base: StatBlock{Power: 50, HitRate: 50, Contact: 50, Speed: 50},
	}
}

func mygoBatter(key, name string) *Card {
	c := vanillaBatter(key)
	c.Name = name
	c.Band = MyGOBand
	return c
}

func vanillaPitcher(name string) *Card {
	return &Card{
		Key:  name,
		Name: name,
		Type: CardPitcher,
		Base: StatBlock{Power: 50, Velocity: 50, Control: 50, Technique: 50},
	}
}

// newTestEngine builds an engine over a fresh state with a memory logger
// and a fixed seed.
func newTestEngine() (*Engine, *log.MemoryLogger) {
	logger := log.NewMemoryLogger()
	e := NewEngine(NewGameState(), logger, rand.New(rand.NewSource(1)))
	return e, logger
}

// testTeam builds a minimal team definition over registry keys.
func testTeam(name, pitcher string, cards ...string) *TeamDef {
	t := &TeamDef{Key: name, Name: name, Pitcher: pitcher}
	for _, key := range cards {
		t.Cards = append(t.Cards, RosterEntry{Key: key, Count: 1})
	}
	return t
}

// runMatchToCompletion runs a match and returns the logger for inspection.
func runMatchToCompletion(t *testing.T, cfg MatchConfig, player, cpu Controller) *log.MemoryLogger {
	t.Helper()
	logger := log.NewMemoryLogger()
	cfg.Logger = logger
	cfg.NoShuffle = true

	match, err := NewMatch(cfg, player, cpu)
	if err != nil {
		t.Fatalf("NewMatch: %v", err)
	}
	result, err := match.Run(context.Background())
	if err != nil {
		t.Logf("Event log:\n%s", log.FormatAll(logger.Events()))
		t.Fatalf("Match error: %v", err)
	}

	t.Logf("Match result: %s", result)
	t.Logf("Event log:\n%s", log.FormatAll(logger.Events()))
	return logger
}
