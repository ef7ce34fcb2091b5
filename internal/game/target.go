package game

// ResolveTargets returns the ordered set of cards an effect applies to.
// Unknown target types yield an empty set: an empty target set is always
// safe, unlike the fail-open default used for conditions.
func ResolveTargets(t TargetType, source *Card, gs *GameState) []*Card {
	switch t {
	case TargetSelf:
		return []*Card{source}
	case TargetAllOnBase:
		return gs.Runners()
	case TargetAllFriendly:
		// Hand first, then bases in slot order.
		side := gs.BattingSide()
		var result []*Card
		result = append(result, side.Hand...)
		result = append(result, gs.Runners()...)
		return result
	case TargetAllMyGOBatters:
		side := gs.BattingSide()
		var result []*Card
		for _, c := range side.Hand {
			if c.Band == MyGOBand && c.Type == CardBatter {
				result = append(result, c)
			}
		}
		for _, c := range gs.Runners() {
			if c.Band == MyGOBand && c.Type == CardBatter {
				result = append(result, c)
			}
		}
		return result
	case TargetCurrentBatter:
		if batter := gs.CurrentBatter(); batter != nil {
			return []*Card{batter}
		}
		return nil
	default:
		return nil
	}
}
