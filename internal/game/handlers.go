package game

import (
	"fmt"
	"strings"

	"github.com/ktsujino/deckball/internal/log"
)

// registerGenericHandlers installs the keyword-driven effect library.
func registerGenericHandlers(e *Engine) {
	e.RegisterHandler("draw", handleDraw)
	e.RegisterHandler("discard", handleDiscard)
	e.RegisterHandler("buff", handleBuff)
	e.RegisterHandler("debuff", handleDebuff)
	// The conditional variants differ from the plain ones only in carrying a
	// condition, and the dispatcher has already checked it.
	e.RegisterHandler("conditional_buff", handleBuff)
	e.RegisterHandler("conditional_draw", handleDraw)
	e.RegisterHandler("conditional_effect", handleConditionalEffect)
	e.RegisterHandler("copy_stats", handleCopyStats)
	e.RegisterHandler("power_transfer", handlePowerTransfer)
	e.RegisterHandler("sacrifice_all_bases", handleSacrificeAllBases)
	e.RegisterHandler("deck_peek", handleDeckPeek)
	e.RegisterHandler("lock", handleLock)
	e.RegisterHandler("lockCharacter", handleLock)
}

// effectCount returns the N an effect operates on, defaulting to 1.
func effectCount(eff *EffectDef) int {
	if eff.Value > 0 {
		return eff.Value
	}
	if eff.Count > 0 {
		return eff.Count
	}
	return 1
}

func handleDraw(e *Engine, eff *EffectDef, card *Card) Result {
	n := effectCount(eff)
	drawn := e.DrawCards(e.state.BattingSide(), n)
	// Running out of cards stops the draw early without failing the action.
	return success(fmt.Sprintf("drew %d card(s)", drawn))
}

func handleDiscard(e *Engine, eff *EffectDef, card *Card) Result {
	n := effectCount(eff)
	side := e.state.BattingSide()
	if len(side.Hand) < n {
		return failure(fmt.Sprintf("need %d cards in hand, have %d", n, len(side.Hand)))
	}
	gs := e.state
	for i := 0; i < n; i++ {
		last := side.Hand[len(side.Hand)-1]
		side.Hand = side.Hand[:len(side.Hand)-1]
		side.SendToDiscard(last)
		e.logger.Log(log.NewDiscardEvent(gs.Inning, gs.Half.String(), side.Name, last.Name))
	}
	return success(fmt.Sprintf("discarded %d card(s)", n))
}

func handleBuff(e *Engine, eff *EffectDef, card *Card) Result {
	return applyStatEffect(e, eff, card, KindBuff, eff.Value)
}

func handleDebuff(e *Engine, eff *EffectDef, card *Card) Result {
	value := eff.Value
	if value > 0 {
		value = -value
	}
	return applyStatEffect(e, eff, card, KindDebuff, value)
}

// applyStatEffect appends one active-effect entry per resolved target.
func applyStatEffect(e *Engine, eff *EffectDef, source *Card, kind EffectKind, value int) Result {
	targets := ResolveTargets(eff.Target, source, e.state)
	if len(targets) == 0 {
		return failure("no valid target")
	}
	for _, t := range targets {
		e.state.ActiveEffects = append(e.state.ActiveEffects, &ActiveEffect{
			Source:   source,
			Kind:     kind,
			Stat:     eff.Stat,
			AllStats: eff.AllStats,
			Value:    value,
			Card:     t,
			Duration: eff.Duration,
			Slot:     -1,
		})
	}
	verb := "buffed"
	if kind == KindDebuff {
		verb = "debuffed"
	}
	return success(fmt.Sprintf("%s %d card(s) %+d %s until end of %s",
		verb, len(targets), value, eff.Stat, eff.Duration))
}

// handleConditionalEffect branches on the score and dispatches at most one
// action from the matching list, recursively through the engine. The
// comparison is always Home vs Away: fixed, not relative to whichever
// side is acting.
func handleConditionalEffect(e *Engine, eff *EffectDef, card *Card) Result {
	gs := e.state
	branch := eff.Trailing
	label := "trailing"
	if gs.Score.Home > gs.Score.Away {
		branch = eff.Leading
		label = "leading"
	}
	for _, sub := range branch {
		if sub.Condition != nil && !EvaluateCondition(sub.Condition, card, gs) {
			continue
		}
		res := e.Process(card, sub, TriggerPlay)
		if res.Success {
			res.Description = fmt.Sprintf("(%s) %s", label, res.Description)
		}
		return res
	}
	return failure(fmt.Sprintf("no applicable %s action", label))
}

// handleCopyStats sets a temp bonus on the acting card such that its
// effective stats equal the target's fully composed stats.
func handleCopyStats(e *Engine, eff *EffectDef, card *Card) Result {
	gs := e.state
	side := gs.BattingSide()

	var target *Card
	scan := func(cards []*Card) {
		for _, c := range cards {
			if c != nil && c != card && cardMatchesKey(c, eff.CardKey) {
				target = c
				return
			}
		}
	}
	scan(gs.Bases[:])
	if target == nil {
		scan(side.Hand)
	}
	if target == nil {
		return failure(fmt.Sprintf("no card matching %q on base or in hand", eff.CardKey))
	}

	total := ComposedStats(target)
	for _, s := range BatterStats {
		card.TempBonus.Add(s, total.Get(s)-card.Base.Get(s)-card.TempBonus.Get(s))
	}
	return success(fmt.Sprintf("copied %s's stats", target.Name))
}

// handlePowerTransfer grants a permanent stat bonus to every card matching
// the target key. All zones are searched: death triggers can fire while the
// target is in hand, on base, in the deck or in the discard pile.
func handlePowerTransfer(e *Engine, eff *EffectDef, card *Card) Result {
	side := e.state.BattingSide()
	matches := e.state.FindEverywhere(side, eff.CardKey)
	if len(matches) == 0 {
		return failure(fmt.Sprintf("no card matching %q in any zone", eff.CardKey))
	}
	for _, m := range matches {
		if eff.AllStats {
			m.PermanentBonus.AddAll(eff.Value)
		} else {
			m.PermanentBonus.Add(eff.Stat, eff.Value)
		}
	}
	statName := eff.Stat.String()
	if eff.AllStats {
		statName = "all stats"
	}
	return success(fmt.Sprintf("permanently granted %+d %s to %d card(s)", eff.Value, statName, len(matches)))
}

// handleSacrificeAllBases sends every based card to the discard pile and
// grants every batter in the remaining rotation a permanent bonus to all
// four stats proportional to the number sacrificed.
func handleSacrificeAllBases(e *Engine, eff *EffectDef, card *Card) Result {
	gs := e.state
	side := gs.BattingSide()

	sacrificed := 0
	for i, b := range gs.Bases {
		if b == nil {
			continue
		}
		gs.Bases[i] = nil
		side.SendToDiscard(b)
		sacrificed++
	}
	if sacrificed == 0 {
		return failure("no runners to sacrifice")
	}

	per := effectCount(eff)
	bonus := per * sacrificed
	granted := 0
	grant := func(cards []*Card) {
		for _, c := range cards {
			if c != nil && c.Type == CardBatter {
				c.PermanentBonus.AddAll(bonus)
				granted++
			}
		}
	}
	grant(side.Deck)
	grant(side.Hand)
	grant(side.Discard)

	return success(fmt.Sprintf("sacrificed %d runner(s); %d batter(s) gain %+d to all stats", sacrificed, granted, bonus))
}

// handleDeckPeek inspects the top N deck cards without mutating anything.
// The top of the deck is the slice tail, matching the pop-from-end draw.
func handleDeckPeek(e *Engine, eff *EffectDef, card *Card) Result {
	n := effectCount(eff)
	side := e.state.BattingSide()
	if len(side.Deck) == 0 {
		return failure("deck is empty")
	}
	if n > len(side.Deck) {
		n = len(side.Deck)
	}
	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		names = append(names, side.Deck[len(side.Deck)-1-i].Name)
	}
	return success(fmt.Sprintf("top of deck: %s", strings.Join(names, ", ")))
}

// handleLock locks an explicitly supplied target to its base. Target
// resolution happens in the caller (the orchestrator captures the base-slot
// choice), not in the target resolver.
func handleLock(e *Engine, eff *EffectDef, card *Card) Result {
	target := eff.ResolvedTarget
	if target == nil {
		return failure("no target selected")
	}
	target.Locked = true
	gs := e.state
	e.logger.Log(log.NewLockEvent(gs.Inning, gs.Half.String(), target.Name))
	return success(fmt.Sprintf("locked %s to their base", target.Name))
}
