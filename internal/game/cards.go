package game

import "fmt"

// The roster below defines both bands' characters and the shared action
// cards. Character behavior that fits a generic keyword is declared as data;
// the handful of narrative-coupled behaviors that do not are implemented as
// custom handlers keyed by a custom effect id (never by display name).

// --- MyGO!!!!! ---

// Tomori is the vocalist. Radiates a hit-rate aura over her bandmates while on
// base; her death trigger passes her drive on to Anon wherever Anon is.
func Tomori() *Card {
	return &Card{
		Key:     "tomori",
		Name:    "Tomori Takamatsu",
		Aliases: []string{"高松燈"},
		Type:    CardBatter,
		Band:    MyGOBand,
		Base:    StatBlock{Power: 55, HitRate: 80, Contact: 75, Speed: 60},
		Effects: EffectSet{
			Aura: &EffectDef{
				Action:      "buff",
				Condition:   &Condition{Tag: "mygoMembersOnBase"},
				Target:      TargetAllMyGOBatters,
				Stat:        StatHitRate,
				Value:       10,
				Duration:    DurationInning,
				Description: "While Tomori is on base, MyGO batters gain hit rate.",
			},
			Death: &EffectDef{
				Action:      "power_transfer",
				CardKey:     "anon",
				Stat:        StatHitRate,
				Value:       5,
				Description: "When Tomori leaves the bases, Anon permanently gains hit rate.",
			},
		},
	}
}

// Anon is the guitarist. Her battlecry draws deeper when Tomori is already on
// base.
func Anon() *Card {
	return &Card{
		Key:     "anon",
		Name:    "Anon Chihaya",
		Aliases: []string{"千早愛音"},
		Type:    CardBatter,
		Band:    MyGOBand,
		Base:    StatBlock{Power: 60, HitRate: 70, Contact: 70, Speed: 70},
		Effects: EffectSet{
			Play: &EffectDef{
				Custom:      "anon_networking",
				Description: "Draw 1 card; draw 2 more if Tomori is on base.",
			},
		},
	}
}

// Rana is the lead guitarist. Plays whatever catches her interest: copies Tomori's
// composed stats for the at-bat, and hums a contact passive from the hand.
func Rana() *Card {
	return &Card{
		Key:     "rana",
		Name:    "Rana Kaname",
		Aliases: []string{"要楽奈"},
		Type:    CardBatter,
		Band:    MyGOBand,
		Base:    StatBlock{Power: 70, HitRate: 65, Contact: 85, Speed: 80},
		Effects: EffectSet{
			Play: &EffectDef{
				Action:      "copy_stats",
				CardKey:     "tomori",
				Description: "Copy Tomori's current stats for this at-bat.",
			},
			Passive: &EffectDef{
				Condition:   &Condition{Tag: "inHand"},
				Target:      TargetCurrentBatter,
				Stat:        StatContact,
				Value:       5,
				Description: "While Rana is in hand, the current batter gains contact.",
			},
		},
	}
}

// Soyo is the bassist. Never lets go of anything: her death trigger digs
// Haruhikage back out of the discard pile.
func Soyo() *Card {
	return &Card{
		Key:     "soyo",
		Name:    "Soyo Nagasaki",
		Aliases: []string{"長崎そよ"},
		Type:    CardBatter,
		Band:    MyGOBand,
		Base:    StatBlock{Power: 50, HitRate: 75, Contact: 80, Speed: 65},
		Effects: EffectSet{
			Death: &EffectDef{
				Custom:      "soyo_reclaim",
				CardKey:     "haruhikage",
				Description: "Return Haruhikage from the discard pile to your hand.",
			},
		},
	}
}

// Taki is the drummer turned ace pitcher. Keeps the opposing batter off balance.
func Taki() *Card {
	return &Card{
		Key:     "taki",
		Name:    "Taki Shiina",
		Aliases: []string{"椎名立希"},
		Type:    CardPitcher,
		Band:    MyGOBand,
		Base:    StatBlock{Power: 70, Velocity: 80, Control: 65, Technique: 75},
		Effects: EffectSet{
			Passive: &EffectDef{
				Target:      TargetCurrentBatter,
				Stat:        StatContact,
				Value:       -5,
				Description: "The opposing batter loses contact while Taki pitches.",
			},
		},
	}
}

// --- Ave Mujica ---

// Saki has a synergy that only wakes up when Tomori is on the bases.
func Saki() *Card {
	return &Card{
		Key:     "saki",
		Name:    "Sakiko Togawa",
		Aliases: []string{"豊川祥子"},
		Type:    CardBatter,
		Band:    "Ave Mujica",
		Base:    StatBlock{Power: 75, HitRate: 70, Contact: 65, Speed: 60},
		Effects: EffectSet{
			Synergy: &EffectDef{
				Action:      "buff",
				Condition:   &Condition{Tag: "tomoriOnBase"},
				Target:      TargetSelf,
				Stat:        StatPower,
				Value:       15,
				Duration:    DurationTurn,
				Description: "While Tomori is on base, Saki swings harder.",
			},
		},
	}
}

// Uika has a battlecry that doubles whatever permanent growth she has
// accumulated into a temporary surge for this one at-bat.
func Uika() *Card {
	return &Card{
		Key:     "uika",
		Name:    "Uika Misumi",
		Aliases: []string{"三角初華"},
		Type:    CardBatter,
		Band:    "Ave Mujica",
		Base:    StatBlock{Power: 80, HitRate: 70, Contact: 60, Speed: 65},
		Effects: EffectSet{
			Play: &EffectDef{
				Custom:      "uika_encore",
				Description: "This at-bat, double Uika's accumulated permanent bonuses.",
			},
		},
	}
}

// Mutsumi has a score-tracking focus that resets whenever she is retired.
func Mutsumi() *Card {
	return &Card{
		Key:     "mutsumi",
		Name:    "Mutsumi Wakaba",
		Aliases: []string{"若葉睦"},
		Type:    CardBatter,
		Band:    "Ave Mujica",
		Base:    StatBlock{Power: 60, HitRate: 65, Contact: 85, Speed: 70},
		Effects: EffectSet{
			Play: &EffectDef{
				Action:      "conditional_effect",
				Condition:   &Condition{Tag: "scoreComparison"},
				Leading:     []*EffectDef{{Action: "buff", Target: TargetSelf, Stat: StatContact, Value: 10, Duration: DurationAtBat}},
				Trailing:    []*EffectDef{{Action: "draw", Value: 1}},
				Description: "If leading, gain contact; if trailing, draw a card.",
			},
			Death: &EffectDef{
				Custom:      "mutsumi_rewind",
				Description: "Mutsumi's focus resets when she is retired.",
			},
		},
	}
}

// Nyamu is always filming. Peeks at the upcoming deck order.
func Nyamu() *Card {
	return &Card{
		Key:     "nyamu",
		Name:    "Nyamu Yutenji",
		Aliases: []string{"祐天寺にゃむ"},
		Type:    CardBatter,
		Band:    "Ave Mujica",
		Base:    StatBlock{Power: 55, HitRate: 70, Contact: 70, Speed: 85},
		Effects: EffectSet{
			Play: &EffectDef{
				Action:      "deck_peek",
				Value:       3,
				Description: "Look at the top 3 cards of your deck.",
			},
		},
	}
}

// Umiri is Ave Mujica's ace. Unshakeable control.
func Umiri() *Card {
	return &Card{
		Key:     "umiri",
		Name:    "Umiri Yahata",
		Aliases: []string{"八幡海鈴"},
		Type:    CardPitcher,
		Band:    "Ave Mujica",
		Base:    StatBlock{Power: 65, Velocity: 75, Control: 85, Technique: 70},
		Effects: EffectSet{
			Passive: &EffectDef{
				Target:      TargetCurrentBatter,
				Stat:        StatHitRate,
				Value:       -5,
				Description: "The opposing batter loses hit rate while Umiri pitches.",
			},
		},
	}
}

// --- Action cards ---

func BandPractice() *Card {
	return &Card{
		Key:  "bandPractice",
		Name: "Band Practice",
		Type: CardAction,
		Effects: EffectSet{
			Play: &EffectDef{
				Action:      "buff",
				Target:      TargetAllFriendly,
				Stat:        StatContact,
				Value:       10,
				Duration:    DurationTurn,
				Description: "All friendly cards gain contact this turn.",
			},
		},
	}
}

func NewSong() *Card {
	return &Card{
		Key:  "newSong",
		Name: "New Song",
		Type: CardAction,
		Effects: EffectSet{
			Play: &EffectDef{
				Action:      "draw",
				Value:       2,
				Description: "Draw 2 cards.",
			},
		},
	}
}

// Haruhikage is the song itself as a card, so that Soyo's death trigger has
// something to dig back out of the discard pile.
func Haruhikage() *Card {
	return &Card{
		Key:     "haruhikage",
		Name:    "Haruhikage",
		Aliases: []string{"春日影"},
		Type:    CardAction,
		Effects: EffectSet{
			Play: &EffectDef{
				Action:      "conditional_effect",
				Condition:   &Condition{Tag: "scoreComparison"},
				Leading:     []*EffectDef{{Action: "buff", Target: TargetAllMyGOBatters, Stat: StatPower, Value: 10, Duration: DurationTurn}},
				Trailing:    []*EffectDef{{Action: "draw", Value: 2}},
				Description: "If leading, MyGO batters gain power; if trailing, draw 2.",
			},
		},
	}
}

// FinalRehearsal sacrifices the whole lineup for permanent growth.
func FinalRehearsal() *Card {
	return &Card{
		Key:  "finalRehearsal",
		Name: "Final Rehearsal",
		Type: CardAction,
		Effects: EffectSet{
			Play: &EffectDef{
				Action:      "sacrifice_all_bases",
				Value:       2,
				Description: "Sacrifice all runners; every batter in the rotation grows permanently.",
			},
		},
	}
}

// Superglue locks a runner of the caller's choice to their base. The
// orchestrator captures the base-slot click before dispatching.
func Superglue() *Card {
	return &Card{
		Key:  "superglue",
		Name: "Superglue",
		Type: CardAction,
		Effects: EffectSet{
			Play: &EffectDef{
				Action:      "lock",
				Description: "Lock a runner to their base.",
			},
		},
	}
}

func EnergyDrink() *Card {
	return &Card{
		Key:  "energyDrink",
		Name: "Energy Drink",
		Type: CardAction,
		Effects: EffectSet{
			Play: &EffectDef{
				Action:      "conditional_buff",
				Condition:   &Condition{Tag: "mygoMembersOnBase"},
				Target:      TargetAllMyGOBatters,
				Stat:        StatSpeed,
				Value:       8,
				Duration:    DurationAtBat,
				Description: "If a MyGO member is on base, MyGO batters gain speed.",
			},
		},
	}
}

// --- Custom handlers ---

// registerCustomHandlers installs the bespoke per-character behaviors that
// are not expressible as generic parameterized keywords.
func registerCustomHandlers(e *Engine) {
	e.RegisterCustom("anon_networking", customAnonNetworking)
	e.RegisterCustom("soyo_reclaim", customSoyoReclaim)
	e.RegisterCustom("uika_encore", customUikaEncore)
	e.RegisterCustom("mutsumi_rewind", customMutsumiRewind)
}

// customAnonNetworking draws 1 card, or 3 when Tomori is on base.
func customAnonNetworking(e *Engine, eff *EffectDef, card *Card) Result {
	n := 1
	if e.state.NamedOnBase("tomori") {
		n = 3
	}
	drawn := e.DrawCards(e.state.BattingSide(), n)
	return success(fmt.Sprintf("drew %d card(s)", drawn))
}

// customSoyoReclaim searches the discard pile for the declared card and
// returns it to the hand if there is room, else to the top of the deck.
func customSoyoReclaim(e *Engine, eff *EffectDef, card *Card) Result {
	side := e.state.BattingSide()
	for i, c := range side.Discard {
		if c == nil || !cardMatchesKey(c, eff.CardKey) {
			continue
		}
		side.Discard = append(side.Discard[:i], side.Discard[i+1:]...)
		if len(side.Hand) < HandCap {
			side.Hand = append(side.Hand, c)
			return success(fmt.Sprintf("returned %s to hand", c.Name))
		}
		side.Deck = append(side.Deck, c)
		return success(fmt.Sprintf("hand is full; put %s on top of the deck", c.Name))
	}
	return failure(fmt.Sprintf("no card matching %q in the discard pile", eff.CardKey))
}

// customUikaEncore doubles the card's permanent bonus into a temporary
// bonus lasting one at-bat.
func customUikaEncore(e *Engine, eff *EffectDef, card *Card) Result {
	if card.PermanentBonus.IsZero() {
		return failure("no permanent bonus to amplify")
	}
	for _, s := range BatterStats {
		card.TempBonus.Add(s, card.PermanentBonus.Get(s))
	}
	return success("doubled permanent bonuses for this at-bat")
}

// customMutsumiRewind clears the card's temporary bonus and drops any
// lingering active effects it sourced; auras/passives come back on the next
// recompute if still warranted.
func customMutsumiRewind(e *Engine, eff *EffectDef, card *Card) Result {
	card.TempBonus = StatBlock{}
	gs := e.state
	kept := gs.ActiveEffects[:0]
	dropped := 0
	for _, a := range gs.ActiveEffects {
		if a.Source == card {
			dropped++
			continue
		}
		kept = append(kept, a)
	}
	gs.ActiveEffects = kept
	return success(fmt.Sprintf("reset temporary state (%d effect(s) dropped)", dropped))
}
