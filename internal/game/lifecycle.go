package game

import "github.com/ktsujino/deckball/internal/log"

// Cleanup prunes expired temporary effects at a turn/inning/game boundary.
// Duration is an ordered enumeration, so a wider scope implies every
// narrower one: an entry is removed when its duration rank is at most the
// cleanup rank and it is not permanent. Card temp bonuses are cleared on
// every cleanup, since the at-bat scope is implied by all wider ones.
// Returns the number of entries removed.
func (e *Engine) Cleanup(scope Duration) int {
	gs := e.state

	removed := 0
	kept := gs.ActiveEffects[:0]
	for _, a := range gs.ActiveEffects {
		if a.Duration != DurationPermanent && a.Duration <= scope {
			removed++
			continue
		}
		kept = append(kept, a)
	}
	gs.ActiveEffects = kept

	for _, c := range gs.allCards() {
		c.TempBonus = StatBlock{}
	}

	e.logger.Log(log.NewCleanupEvent(gs.Inning, gs.Half.String(), scope.String(), removed))
	return removed
}

// allCards walks every card the state can reach, in no particular order.
func (gs *GameState) allCards() []*Card {
	var result []*Card
	for _, side := range []*Side{gs.CPU, gs.Player} {
		if side == nil {
			continue
		}
		result = append(result, side.Hand...)
		result = append(result, side.Deck...)
		result = append(result, side.Discard...)
		if side.Pitcher != nil {
			result = append(result, side.Pitcher)
		}
	}
	for _, b := range gs.Bases {
		if b != nil {
			result = append(result, b)
		}
	}
	return result
}
