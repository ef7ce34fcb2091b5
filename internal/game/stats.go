package game

// EffectiveStat composes a card's own stat from base + permanent bonus +
// temporary bonus. Pure: it never mutates the card and ignores the
// active-effect list (callers fold that in via Engine.StatWithEffects).
func EffectiveStat(c *Card, s Stat) int {
	return c.Base.Get(s) + c.PermanentBonus.Get(s) + c.TempBonus.Get(s)
}

// ComposedStats returns a card's fully composed own stats as a block.
func ComposedStats(c *Card) StatBlock {
	b := c.Base
	for _, s := range BatterStats {
		b.Add(s, c.PermanentBonus.Get(s)+c.TempBonus.Get(s))
	}
	for _, s := range PitcherStats {
		if s == StatPower {
			continue // already folded above
		}
		b.Add(s, c.PermanentBonus.Get(s)+c.TempBonus.Get(s))
	}
	return b
}

// ClampStat bounds a stat value to the playable range. Clamping happens at
// the point of use; stored bonuses are never clamped.
func ClampStat(v int) int {
	if v < 0 {
		return 0
	}
	if v > StatMax {
		return StatMax
	}
	return v
}

// computeOVR derives a card's display rating from its base stats. Computed
// once at preparation time; bonuses never change it.
func computeOVR(c *Card) int {
	var stats [4]Stat
	switch c.Type {
	case CardPitcher:
		stats = PitcherStats
	default:
		stats = BatterStats
	}
	total := 0
	for _, s := range stats {
		total += c.Base.Get(s)
	}
	return total / len(stats)
}

// PrepareCard clones a card definition for use in a game: bonuses zeroed,
// lock cleared, OVR computed. The definition itself is never mutated.
func PrepareCard(def *Card) *Card {
	c := *def
	c.PermanentBonus = StatBlock{}
	c.TempBonus = StatBlock{}
	c.Locked = false
	c.OVR = computeOVR(&c)
	return &c
}
