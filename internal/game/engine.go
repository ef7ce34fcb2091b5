package game

import (
	"fmt"
	"math/rand"

	"github.com/ktsujino/deckball/internal/log"
)

// Result is the structured outcome of an effect dispatch. Expected failures
// carry a human-readable Reason and never interrupt the turn flow.
type Result struct {
	Success     bool
	Description string
	Reason      string
}

func success(description string) Result {
	return Result{Success: true, Description: description}
}

func failure(reason string) Result {
	return Result{Success: false, Reason: reason}
}

// HandlerFunc implements one effect keyword. Handlers mutate game state
// through the engine, return expected failures as results, and must not
// mutate state before their preconditions are checked.
type HandlerFunc func(e *Engine, eff *EffectDef, card *Card) Result

// Engine is the card-effect resolution engine. One engine is constructed per
// game session and handed to every component that needs it; there is no
// module-level shared instance.
type Engine struct {
	state  *GameState
	logger log.EventLogger
	rng    *rand.Rand

	handlers map[string]HandlerFunc
	custom   map[string]HandlerFunc
}

// NewEngine builds an engine bound to the given state. A nil logger gets a
// memory logger; a nil rng gets an unseeded shared-source wrapper.
func NewEngine(state *GameState, logger log.EventLogger, rng *rand.Rand) *Engine {
	if logger == nil {
		logger = log.NewMemoryLogger()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	e := &Engine{
		state:    state,
		logger:   logger,
		rng:      rng,
		handlers: make(map[string]HandlerFunc),
		custom:   make(map[string]HandlerFunc),
	}
	registerGenericHandlers(e)
	registerCustomHandlers(e)
	return e
}

// State returns the engine's game state.
func (e *Engine) State() *GameState {
	return e.state
}

// Logger returns the engine's event logger.
func (e *Engine) Logger() log.EventLogger {
	return e.logger
}

// RegisterHandler binds a keyword to a handler. Re-registration silently
// overwrites.
func (e *Engine) RegisterHandler(keyword string, fn HandlerFunc) {
	e.handlers[keyword] = fn
}

// RegisterCustom binds a custom effect id to a bespoke handler.
func (e *Engine) RegisterCustom(id string, fn HandlerFunc) {
	e.custom[id] = fn
}

// KnownKeyword reports whether a generic handler is registered.
func (e *Engine) KnownKeyword(keyword string) bool {
	_, ok := e.handlers[keyword]
	return ok
}

// KnownCustom reports whether a bespoke handler is registered.
func (e *Engine) KnownCustom(id string) bool {
	_, ok := e.custom[id]
	return ok
}

// Process is the single entry point for triggering any declared effect.
// Content errors (unknown keywords, malformed descriptors) and precondition
// failures degrade to a failed result with a diagnosable reason; they never
// panic out of the engine.
func (e *Engine) Process(card *Card, eff *EffectDef, trigger Trigger) (res Result) {
	// Malformed content data may panic inside a handler; convert to a
	// content-error result at the dispatch boundary. Every invocation logs
	// exactly one result, precondition failures included, so a consumed
	// card always leaves a diagnosable trace.
	defer func() {
		if r := recover(); r != nil {
			res = failure(fmt.Sprintf("%v", r))
		}
		e.logResult(card, res)
	}()

	if eff == nil {
		return failure("no effect data")
	}
	if eff.Condition != nil && !EvaluateCondition(eff.Condition, card, e.state) {
		return failure("condition not met")
	}

	var handler HandlerFunc
	var label string
	if eff.Custom != "" {
		label = eff.Custom
		handler = e.custom[eff.Custom]
	} else {
		label = eff.ActionKeyword()
		if label == "" {
			return failure("no action specified")
		}
		handler = e.handlers[label]
	}
	if handler == nil {
		return failure(fmt.Sprintf("unknown effect: %s", label))
	}

	res = handler(e, eff, card)
	return res
}

func (e *Engine) logResult(card *Card, res Result) {
	if card == nil {
		return
	}
	gs := e.state
	if res.Success {
		if res.Description != "" {
			e.logger.Log(log.NewEffectEvent(gs.Inning, gs.Half.String(), card.Name, res.Description))
		}
	} else {
		e.logger.Log(log.NewEffectFailedEvent(gs.Inning, gs.Half.String(), card.Name, res.Reason))
	}
}

// StatWithEffects returns a card's effective stat with all matching active
// buffs, debuffs, auras and passives folded in, clamped to the playable
// range at this point of use.
func (e *Engine) StatWithEffects(card *Card, s Stat) int {
	v := EffectiveStat(card, s)
	for _, a := range e.state.ActiveEffects {
		if e.activeAppliesTo(a, card, s) {
			v += a.Value
		}
	}
	return ClampStat(v)
}

// activeAppliesTo reports whether an active-effect entry modifies the given
// card's stat. Buff/debuff entries carry a concrete target; aura/passive
// entries carry a selector evaluated against current positions.
func (e *Engine) activeAppliesTo(a *ActiveEffect, card *Card, s Stat) bool {
	if !a.matchesStat(s) {
		return false
	}
	if a.Card != nil {
		return a.Card == card
	}
	gs := e.state
	switch a.TargetType {
	case TargetSelf:
		return a.Source == card
	case TargetAllOnBase:
		return gs.OnBase(card)
	case TargetAllFriendly:
		if gs.OnBase(card) {
			return true
		}
		for _, c := range gs.BattingSide().Hand {
			if c == card {
				return true
			}
		}
		return false
	case TargetAllMyGOBatters:
		if card.Band != MyGOBand || card.Type != CardBatter {
			return false
		}
		if gs.OnBase(card) {
			return true
		}
		for _, c := range gs.BattingSide().Hand {
			if c == card {
				return true
			}
		}
		return false
	case TargetCurrentBatter:
		return gs.CurrentBatter() == card
	default:
		return false
	}
}

// DrawCards moves up to count cards from the side's deck to its hand,
// respecting the hand cap. A draw that empties the deck reshuffles the
// discard pile into the deck and keeps drawing in the same logical step; a
// request only stops early when both piles are exhausted. Returns the number
// of cards actually drawn.
func (e *Engine) DrawCards(side *Side, count int) int {
	gs := e.state
	drawn := 0
	for i := 0; i < count; i++ {
		if len(side.Hand) >= HandCap {
			break
		}
		if len(side.Deck) == 0 {
			if len(side.Discard) == 0 {
				break
			}
			side.Deck = append(side.Deck, side.Discard...)
			side.Discard = nil
			side.ShuffleDeck(e.rng)
			e.logger.Log(log.NewReshuffleEvent(gs.Inning, gs.Half.String(), side.Name, len(side.Deck)))
		}
		card := side.popDeck()
		if card == nil {
			break
		}
		side.Hand = append(side.Hand, card)
		drawn++
		e.logger.Log(log.NewDrawEvent(gs.Inning, gs.Half.String(), side.Name, card.Name))
	}
	return drawn
}
