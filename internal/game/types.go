package game

import "fmt"

// --- Enums ---

type CardType int

const (
	CardBatter CardType = iota
	CardPitcher
	CardAction
)

func (ct CardType) String() string {
	switch ct {
	case CardBatter:
		return "Batter"
	case CardPitcher:
		return "Pitcher"
	case CardAction:
		return "Action"
	default:
		return "Unknown"
	}
}

// Trigger identifies when a declared effect fires.
type Trigger int

const (
	TriggerPlay Trigger = iota
	TriggerDeath
	TriggerSynergy
	TriggerAura
	TriggerPassive
)

func (t Trigger) String() string {
	switch t {
	case TriggerPlay:
		return "play"
	case TriggerDeath:
		return "death"
	case TriggerSynergy:
		return "synergy"
	case TriggerAura:
		return "aura"
	case TriggerPassive:
		return "passive"
	default:
		return "unknown"
	}
}

// Duration scopes how long a temporary effect lives. The values are ordered:
// cleaning up a wider scope also removes everything tagged with a narrower one.
type Duration int

const (
	DurationAtBat Duration = iota
	DurationTurn
	DurationInning
	DurationGame
	DurationPermanent
)

func (d Duration) String() string {
	switch d {
	case DurationAtBat:
		return "atBat"
	case DurationTurn:
		return "turn"
	case DurationInning:
		return "inning"
	case DurationGame:
		return "game"
	case DurationPermanent:
		return "permanent"
	default:
		return "unknown"
	}
}

// ParseDuration maps a content string to a Duration. Unknown strings default
// to atBat, the narrowest scope.
func ParseDuration(s string) Duration {
	switch s {
	case "turn":
		return DurationTurn
	case "inning":
		return DurationInning
	case "game":
		return DurationGame
	case "permanent":
		return DurationPermanent
	default:
		return DurationAtBat
	}
}

// TargetType enumerates how an effect selects the cards it applies to.
type TargetType int

const (
	TargetNone TargetType = iota
	TargetSelf
	TargetAllOnBase
	TargetAllFriendly
	TargetAllMyGOBatters
	TargetCurrentBatter
)

func (t TargetType) String() string {
	switch t {
	case TargetSelf:
		return "self"
	case TargetAllOnBase:
		return "allOnBase"
	case TargetAllFriendly:
		return "allFriendly"
	case TargetAllMyGOBatters:
		return "allMyGOBatters"
	case TargetCurrentBatter:
		return "currentBatter"
	default:
		return "none"
	}
}

// ParseTargetType maps a content string to a TargetType. Unknown strings map
// to TargetNone, which resolves to an empty target set.
func ParseTargetType(s string) TargetType {
	switch s {
	case "self":
		return TargetSelf
	case "allOnBase":
		return TargetAllOnBase
	case "allFriendly":
		return TargetAllFriendly
	case "allMyGOBatters":
		return TargetAllMyGOBatters
	case "currentBatter":
		return TargetCurrentBatter
	default:
		return TargetNone
	}
}

// Outcome is the result of a single at-bat roll.
type Outcome int

const (
	OutcomeStrikeout Outcome = iota
	OutcomeWalk
	OutcomeSingle
	OutcomeDouble
	OutcomeTriple
	OutcomeHomeRun
)

func (o Outcome) String() string {
	switch o {
	case OutcomeStrikeout:
		return "strikeout"
	case OutcomeWalk:
		return "walk"
	case OutcomeSingle:
		return "single"
	case OutcomeDouble:
		return "double"
	case OutcomeTriple:
		return "triple"
	case OutcomeHomeRun:
		return "home run"
	default:
		return "unknown"
	}
}

// Advancement returns how many bases this outcome pushes the batter.
// Zero means no advancement (an out).
func (o Outcome) Advancement() int {
	switch o {
	case OutcomeWalk, OutcomeSingle:
		return 1
	case OutcomeDouble:
		return 2
	case OutcomeTriple:
		return 3
	case OutcomeHomeRun:
		return 4
	default:
		return 0
	}
}

// HitBonus returns the points the hit type itself is worth, on top of any
// runs scored by advancing runners. Only a home run carries its own run.
func (o Outcome) HitBonus() int {
	if o == OutcomeHomeRun {
		return 1
	}
	return 0
}

// --- Stats ---

// Stat names a single card statistic. Batters use Power, HitRate, Contact
// and Speed; pitchers use Power, Velocity, Control and Technique.
type Stat int

const (
	StatNone Stat = iota
	StatPower
	StatHitRate
	StatContact
	StatSpeed
	StatVelocity
	StatControl
	StatTechnique
)

func (s Stat) String() string {
	switch s {
	case StatPower:
		return "power"
	case StatHitRate:
		return "hitRate"
	case StatContact:
		return "contact"
	case StatSpeed:
		return "speed"
	case StatVelocity:
		return "velocity"
	case StatControl:
		return "control"
	case StatTechnique:
		return "technique"
	default:
		return "none"
	}
}

// ParseStat maps a content string to a Stat. Unknown strings map to StatNone.
func ParseStat(s string) Stat {
	switch s {
	case "power":
		return StatPower
	case "hitRate":
		return StatHitRate
	case "contact":
		return StatContact
	case "speed":
		return StatSpeed
	case "velocity":
		return StatVelocity
	case "control":
		return StatControl
	case "technique":
		return StatTechnique
	default:
		return StatNone
	}
}

// BatterStats lists the four batter stats, in display order. This is also the
// set that "allStats" bonuses apply to.
var BatterStats = [4]Stat{StatPower, StatHitRate, StatContact, StatSpeed}

// PitcherStats lists the four pitcher stats, in display order.
var PitcherStats = [4]Stat{StatPower, StatVelocity, StatControl, StatTechnique}

// StatBlock is a fixed record holding one value per stat name. Using a struct
// rather than an open map means only valid stat names can ever be modified.
type StatBlock struct {
	Power     int
	HitRate   int
	Contact   int
	Speed     int
	Velocity  int
	Control   int
	Technique int
}

// Get returns the value for the given stat, or 0 for StatNone.
func (b StatBlock) Get(s Stat) int {
	switch s {
	case StatPower:
		return b.Power
	case StatHitRate:
		return b.HitRate
	case StatContact:
		return b.Contact
	case StatSpeed:
		return b.Speed
	case StatVelocity:
		return b.Velocity
	case StatControl:
		return b.Control
	case StatTechnique:
		return b.Technique
	default:
		return 0
	}
}

// Add adds delta to the given stat in place. StatNone is a no-op.
func (b *StatBlock) Add(s Stat, delta int) {
	switch s {
	case StatPower:
		b.Power += delta
	case StatHitRate:
		b.HitRate += delta
	case StatContact:
		b.Contact += delta
	case StatSpeed:
		b.Speed += delta
	case StatVelocity:
		b.Velocity += delta
	case StatControl:
		b.Control += delta
	case StatTechnique:
		b.Technique += delta
	}
}

// AddAll adds delta to all four batter stats in place.
func (b *StatBlock) AddAll(delta int) {
	for _, s := range BatterStats {
		b.Add(s, delta)
	}
}

// IsZero reports whether every field is zero.
func (b StatBlock) IsZero() bool {
	return b == StatBlock{}
}

// --- Card ---

// Card represents a batter, pitcher, or action card. Cards are prepared once
// per game (cloned from their definition, OVR computed) and then mutated in
// place: bonuses accumulate and the lock flag may be set, but the base stats
// never change.
type Card struct {
	Key     string   // stable content identifier, unique within a roster
	Name    string   // display name, presentational only
	Aliases []string // alternate display spellings, used for search only
	Type    CardType
	Band    string // band membership attribute (e.g. "MyGO!!!!!")

	Base StatBlock
	OVR  int // derived rating, computed at preparation time

	PermanentBonus StatBlock // never reset during a game
	TempBonus      StatBlock // cleared at at-bat/turn boundaries

	Locked bool // immune to removal-on-score and forward advancement

	Effects EffectSet
}

func (c *Card) String() string {
	if c == nil {
		return "(empty)"
	}
	return c.Name
}

// EffectSet holds a card's declared effects keyed by trigger.
type EffectSet struct {
	Play    *EffectDef
	Death   *EffectDef
	Synergy *EffectDef
	Aura    *EffectDef
	Passive *EffectDef
}

// ByTrigger returns the declared effect for the given trigger, or nil.
func (e EffectSet) ByTrigger(t Trigger) *EffectDef {
	switch t {
	case TriggerPlay:
		return e.Play
	case TriggerDeath:
		return e.Death
	case TriggerSynergy:
		return e.Synergy
	case TriggerAura:
		return e.Aura
	case TriggerPassive:
		return e.Passive
	default:
		return nil
	}
}

// EffectDef is a declarative effect descriptor. The Action keyword selects a
// registered handler; Custom selects a bespoke named handler instead of a
// generic one. Not every field is meaningful for every keyword.
type EffectDef struct {
	Action  string
	Keyword string // legacy alias for Action; Action wins when both are set
	Custom  string // custom effect id for card-specific handlers

	Condition *Condition
	Target    TargetType
	Stat      Stat
	AllStats  bool
	Value     int
	Count     int
	Duration  Duration
	CardKey   string // target card key for searches (power_transfer etc.)

	// Branch tables for conditional_effect. The comparison is always
	// state.Score.Home vs state.Score.Away, never relative to the acting
	// player.
	Leading  []*EffectDef
	Trailing []*EffectDef

	// ResolvedTarget is set by the caller for keywords whose targeting
	// happens outside the engine (lock: the orchestrator captures the
	// base-slot choice first).
	ResolvedTarget *Card

	Description string
}

// ActionKeyword returns the effective action keyword: the explicit Action
// field if present, else the legacy Keyword field.
func (e *EffectDef) ActionKeyword() string {
	if e.Action != "" {
		return e.Action
	}
	return e.Keyword
}

// --- Conditions ---

// Condition is either a bare string tag or a structured {type, value} pair.
type Condition struct {
	Tag   string // string-tag form; empty when the structured form is used
	Type  string // structured form
	Value int
}

func (c *Condition) String() string {
	if c == nil {
		return "(none)"
	}
	if c.Tag != "" {
		return c.Tag
	}
	return fmt.Sprintf("%s>=%d", c.Type, c.Value)
}

// --- Active effects ---

// EffectKind categorizes entries on the active-effect list.
type EffectKind int

const (
	KindBuff EffectKind = iota
	KindDebuff
	KindAura
	KindPassive
)

func (k EffectKind) String() string {
	switch k {
	case KindBuff:
		return "buff"
	case KindDebuff:
		return "debuff"
	case KindAura:
		return "aura"
	case KindPassive:
		return "passive"
	default:
		return "unknown"
	}
}

// ActiveEffect is a transient record appended to the per-game list when a
// buff, debuff, aura or passive is created. Buffs and debuffs carry a
// concrete resolved target; auras and passives are derived records that carry
// a target selector and are fully recomputed on every play/death trigger.
type ActiveEffect struct {
	Source   *Card
	Kind     EffectKind
	Stat     Stat
	AllStats bool
	Value    int

	Card       *Card      // concrete target (buff/debuff); nil for auras/passives
	TargetType TargetType // selector used when Card is nil

	Duration  Duration
	Condition *Condition
	Slot      int // base slot index for auras, -1 otherwise
}

// matchesStat reports whether this entry modifies the given stat.
func (a *ActiveEffect) matchesStat(s Stat) bool {
	if a.AllStats {
		for _, bs := range BatterStats {
			if bs == s {
				return true
			}
		}
		return false
	}
	return a.Stat == s
}
