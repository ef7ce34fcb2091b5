package game

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/ktsujino/deckball/internal/log"
)

// Controller is the interface that both human (WebSocket) and AI (MCP)
// players implement.
type Controller interface {
	// ChooseCard presents candidate cards and waits for the player to pick
	// one. Returns the index into candidates, or -1 to decline when the
	// prompt is optional.
	ChooseCard(ctx context.Context, state *GameState, prompt string, candidates []*Card) (int, error)

	// ChooseBase asks the player to pick a base slot (0 = first base).
	// Returns -1 to decline.
	ChooseBase(ctx context.Context, state *GameState, prompt string) (int, error)

	// ChooseYesNo asks the player a yes/no question.
	ChooseYesNo(ctx context.Context, state *GameState, prompt string) (bool, error)

	// Notify sends a game event notification (no response needed).
	Notify(ctx context.Context, event log.GameEvent) error
}

// MatchConfig holds configuration for creating a new match.
type MatchConfig struct {
	PlayerTeam *TeamDef // home side
	CPUTeam    *TeamDef // away side
	Logger     log.EventLogger
	Seed       int64 // RNG seed (0 for random)
	NoShuffle  bool  // skip deck shuffle (for deterministic tests)
	MaxInnings int   // innings per match (0 = default 3)
}

// DefaultInnings is the regulation match length.
const DefaultInnings = 3

// Match orchestrates an entire match between the home player and the away
// CPU. All state mutation goes through the match's engine.
type Match struct {
	Engine *Engine
	Logger log.EventLogger

	playerCtl Controller
	cpuCtl    Controller

	ctx        context.Context
	rng        *rand.Rand
	noShuffle  bool
	maxInnings int
}

// NewMatch creates a match from the given config and controllers. Both
// decks are built fresh from the team definitions.
func NewMatch(cfg MatchConfig, playerCtl, cpuCtl Controller) (*Match, error) {
	if cfg.PlayerTeam == nil || cfg.CPUTeam == nil {
		return nil, fmt.Errorf("match: both teams must be set")
	}

	gs := NewGameState()
	gs.Player.Team = cfg.PlayerTeam.Name
	gs.Player.Deck = BuildDeck(cfg.PlayerTeam)
	gs.Player.Pitcher = PrepareCard(LookupCard(cfg.PlayerTeam.Pitcher))
	gs.CPU.Team = cfg.CPUTeam.Name
	gs.CPU.Deck = BuildDeck(cfg.CPUTeam)
	gs.CPU.Pitcher = PrepareCard(LookupCard(cfg.CPUTeam.Pitcher))
	if err := gs.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	rng := rand.New(rand.NewSource(seed))

	logger := cfg.Logger
	if logger == nil {
		logger = log.NewMemoryLogger()
	}

	maxInnings := cfg.MaxInnings
	if maxInnings == 0 {
		maxInnings = DefaultInnings
	}

	m := &Match{
		Logger:     logger,
		playerCtl:  playerCtl,
		cpuCtl:     cpuCtl,
		ctx:        context.Background(),
		rng:        rng,
		noShuffle:  cfg.NoShuffle,
		maxInnings: maxInnings,
	}
	// Every event the engine logs is also forwarded to both controllers.
	m.Engine = NewEngine(gs, &notifyLogger{inner: logger, match: m}, rng)
	return m, nil
}

// State returns the match's game state.
func (m *Match) State() *GameState {
	return m.Engine.State()
}

// Run executes the entire match loop. Returns the result string.
func (m *Match) Run(ctx context.Context) (string, error) {
	m.ctx = ctx
	e := m.Engine
	gs := e.State()

	if !m.noShuffle {
		gs.Player.ShuffleDeck(m.rng)
		gs.CPU.ShuffleDeck(m.rng)
	}

	// Initial hands.
	e.DrawCards(gs.CPU, InitialHand)
	e.DrawCards(gs.Player, InitialHand)
	e.RecomputeAuras()

	for !gs.Over {
		m.log(log.NewInningEvent(gs.Inning))

		gs.Half = TopHalf
		if err := m.runHalf(); err != nil {
			return "", err
		}
		gs.Half = BottomHalf
		if err := m.runHalf(); err != nil {
			return "", err
		}

		e.Cleanup(DurationInning)
		if gs.Inning >= m.maxInnings {
			break
		}
		gs.Inning++

		if err := m.ctx.Err(); err != nil {
			return "", err
		}
	}

	return m.finish(), nil
}

// runHalf plays one half-inning: at-bats until three outs, then stranded
// runners return to the discard pile without firing death triggers.
func (m *Match) runHalf() error {
	e := m.Engine
	gs := e.State()
	side := gs.BattingSide()
	ctl := m.controllerFor(side)

	gs.Outs = 0
	m.log(log.NewHalfInningEvent(gs.Inning, gs.Half.String(), side.Name))

	for gs.Outs < OutsPerHalf && !gs.Over {
		if err := m.runTurn(side, ctl); err != nil {
			return err
		}
		if err := m.ctx.Err(); err != nil {
			return err
		}
	}

	for i := range gs.Bases {
		if c := gs.Bases[i]; c != nil {
			gs.Bases[i] = nil
			c.Locked = false
			side.SendToDiscard(c)
			m.log(log.NewDiscardEvent(gs.Inning, gs.Half.String(), side.Name, c.Name))
		}
	}
	e.RecomputeAuras()
	return nil
}

// runTurn plays a single at-bat for the batting side.
func (m *Match) runTurn(side *Side, ctl Controller) error {
	e := m.Engine
	gs := e.State()

	m.log(log.NewTurnEvent(gs.Inning, gs.Half.String(), side.Name))
	e.DrawCards(side, 1)
	e.RecomputeAuras()

	if err := m.playActionCards(side, ctl); err != nil {
		return err
	}

	batterIdx, err := m.chooseBatter(side, ctl)
	if err != nil {
		return err
	}
	if batterIdx < 0 {
		// No batter available: automatic out, nobody reaches base.
		gs.Outs++
		m.log(log.NewOutEvent(gs.Inning, gs.Half.String(), "no batter", gs.Outs))
		e.Cleanup(DurationAtBat)
		e.Cleanup(DurationTurn)
		return nil
	}

	gs.Selected = batterIdx
	batter := side.Hand[batterIdx]
	m.log(log.NewAtBatEvent(gs.Inning, gs.Half.String(), side.Name, batter.Name))

	if play := batter.Effects.Play; play != nil {
		e.Process(batter, play, TriggerPlay)
	}
	e.RecomputeAuras()

	for _, runner := range gs.Runners() {
		if syn := runner.Effects.Synergy; syn != nil {
			e.Process(runner, syn, TriggerSynergy)
		}
	}

	outcome := e.RollOutcome(batter)
	e.ResolveAtBat(outcome, batter)

	e.Cleanup(DurationAtBat)
	e.Cleanup(DurationTurn)
	e.RecomputeAuras()
	return nil
}

// playActionCards lets the batting side play any number of action cards
// before selecting a batter.
func (m *Match) playActionCards(side *Side, ctl Controller) error {
	e := m.Engine
	gs := e.State()

	for {
		var candidates []*Card
		var handIdx []int
		for i, c := range side.Hand {
			if c.Type == CardAction {
				candidates = append(candidates, c)
				handIdx = append(handIdx, i)
			}
		}
		if len(candidates) == 0 {
			return nil
		}

		pick, err := ctl.ChooseCard(m.ctx, gs, "Play an action card? (decline to continue)", candidates)
		if err != nil {
			return err
		}
		if pick < 0 || pick >= len(candidates) {
			return nil
		}

		card := side.Hand[handIdx[pick]]
		play := card.Effects.Play
		m.log(log.NewPlayCardEvent(gs.Inning, gs.Half.String(), side.Name, card.Name))

		if play != nil && play.Custom == "" && (play.ActionKeyword() == "lock" || play.ActionKeyword() == "lockCharacter") {
			if err := m.resolveLockTarget(play, ctl); err != nil {
				return err
			}
		}
		// The card leaves the hand before its effect runs so that hand-wide
		// effects (discard costs, hand scans) never see the card itself.
		side.RemoveFromHand(card)
		e.Process(card, play, TriggerPlay)
		if play != nil {
			play.ResolvedTarget = nil
		}
		side.SendToDiscard(card)
		e.RecomputeAuras()
	}
}

// resolveLockTarget captures the base-slot choice for a lock effect before
// dispatch. Targeting an empty slot leaves the effect without a target and
// it fails as usual.
func (m *Match) resolveLockTarget(play *EffectDef, ctl Controller) error {
	gs := m.Engine.State()
	slot, err := ctl.ChooseBase(m.ctx, gs, "Choose a runner to lock")
	if err != nil {
		return err
	}
	if slot >= 0 && slot < BaseCount {
		play.ResolvedTarget = gs.Bases[slot]
	}
	return nil
}

// chooseBatter asks the controller for a batter from the hand and returns
// the hand index. Returns -1 when the hand holds no batters. A declined or
// out-of-range pick falls back to the first candidate: every at-bat needs a
// batter.
func (m *Match) chooseBatter(side *Side, ctl Controller) (int, error) {
	gs := m.Engine.State()

	var candidates []*Card
	var handIdx []int
	for i, c := range side.Hand {
		if c.Type == CardBatter {
			candidates = append(candidates, c)
			handIdx = append(handIdx, i)
		}
	}
	if len(candidates) == 0 {
		return -1, nil
	}

	pick, err := ctl.ChooseCard(m.ctx, gs, "Choose a batter", candidates)
	if err != nil {
		return 0, err
	}
	if pick < 0 || pick >= len(candidates) {
		pick = 0
	}
	return handIdx[pick], nil
}

// finish closes out the match: game-scope cleanup, result decided by final
// score.
func (m *Match) finish() string {
	e := m.Engine
	gs := e.State()

	e.Cleanup(DurationGame)
	gs.Over = true

	var result string
	switch {
	case gs.Score.Home > gs.Score.Away:
		result = fmt.Sprintf("%s (home) wins %d-%d", gs.Player.Team, gs.Score.Home, gs.Score.Away)
	case gs.Score.Away > gs.Score.Home:
		result = fmt.Sprintf("%s (away) wins %d-%d", gs.CPU.Team, gs.Score.Away, gs.Score.Home)
	default:
		result = fmt.Sprintf("Tie game %d-%d", gs.Score.Home, gs.Score.Away)
	}
	gs.Result = result
	m.log(log.NewWinEvent(gs.Inning, result))
	return result
}

func (m *Match) controllerFor(side *Side) Controller {
	if side == m.Engine.State().Player {
		return m.playerCtl
	}
	return m.cpuCtl
}

// log emits an event through the logger, which also forwards it to both
// controllers.
func (m *Match) log(event log.GameEvent) {
	m.Engine.Logger().Log(event)
}

func (m *Match) notify(event log.GameEvent) {
	for _, ctl := range []Controller{m.playerCtl, m.cpuCtl} {
		if ctl != nil {
			_ = ctl.Notify(m.ctx, event)
		}
	}
}

// notifyLogger wraps an event logger and forwards every record to the match
// controllers.
type notifyLogger struct {
	inner log.EventLogger
	match *Match
}

func (n *notifyLogger) Log(event log.GameEvent) {
	n.inner.Log(event)
	n.match.notify(event)
}

func (n *notifyLogger) Events() []log.GameEvent {
	return n.inner.Events()
}
