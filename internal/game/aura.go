package game

import "github.com/ktsujino/deckball/internal/log"

// RecomputeAuras strips every aura and passive entry from the active-effect
// list and rebuilds them from current card positions. Auras and passives are
// derived, never incrementally maintained: this must run after every play and
// death trigger so that coverage reflects the latest base occupancy, and
// running it twice in a row without a state change is a no-op.
func (e *Engine) RecomputeAuras() {
	gs := e.state

	kept := gs.ActiveEffects[:0]
	for _, a := range gs.ActiveEffects {
		if a.Kind == KindAura || a.Kind == KindPassive {
			continue
		}
		kept = append(kept, a)
	}
	gs.ActiveEffects = kept

	// One aura entry per based card whose condition currently holds, slot
	// index preserved. Locked runners still radiate their auras.
	for slot, b := range gs.Bases {
		if b == nil || b.Effects.Aura == nil {
			continue
		}
		aura := b.Effects.Aura
		if !EvaluateCondition(aura.Condition, b, gs) {
			continue
		}
		gs.ActiveEffects = append(gs.ActiveEffects, &ActiveEffect{
			Source:     b,
			Kind:       KindAura,
			Stat:       aura.Stat,
			AllStats:   aura.AllStats,
			Value:      aura.Value,
			TargetType: aura.Target,
			Duration:   aura.Duration,
			Condition:  aura.Condition,
			Slot:       slot,
		})
	}

	// One passive entry per hand card whose passive condition is absent or
	// literally "inHand".
	for _, side := range []*Side{gs.CPU, gs.Player} {
		for _, c := range side.Hand {
			p := c.Effects.Passive
			if p == nil {
				continue
			}
			if p.Condition != nil && p.Condition.Tag != "inHand" {
				continue
			}
			gs.ActiveEffects = append(gs.ActiveEffects, e.passiveEntry(c, p))
		}
		if pitcher := side.Pitcher; pitcher != nil && pitcher.Effects.Passive != nil {
			gs.ActiveEffects = append(gs.ActiveEffects, e.passiveEntry(pitcher, pitcher.Effects.Passive))
		}
	}

	count := 0
	for _, a := range gs.ActiveEffects {
		if a.Kind == KindAura || a.Kind == KindPassive {
			count++
		}
	}
	e.logger.Log(log.NewAuraRecomputeEvent(gs.Inning, gs.Half.String(), count))
}

func (e *Engine) passiveEntry(source *Card, p *EffectDef) *ActiveEffect {
	return &ActiveEffect{
		Source:     source,
		Kind:       KindPassive,
		Stat:       p.Stat,
		AllStats:   p.AllStats,
		Value:      p.Value,
		TargetType: p.Target,
		Duration:   p.Duration,
		Condition:  p.Condition,
		Slot:       -1,
	}
}
