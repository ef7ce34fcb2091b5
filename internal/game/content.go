package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TeamsFile is the top-level YAML structure of the content catalog.
type TeamsFile struct {
	Teams []TeamDef `yaml:"teams"`
}

// TeamDef defines one team: the roster entries reference registry keys.
type TeamDef struct {
	Key     string        `yaml:"key"`
	Name    string        `yaml:"name"`
	Pitcher string        `yaml:"pitcher"`
	Cards   []RosterEntry `yaml:"cards"`
}

// RosterEntry is a card key and its copy count within the deck.
type RosterEntry struct {
	Key   string `yaml:"key"`
	Count int    `yaml:"count"`
}

// ParseTeamsFile parses the YAML catalog and validates every roster
// reference against the card registry. Shape errors here are fatal: the
// engine assumes validated content.
func ParseTeamsFile(path string) (map[string]*TeamDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var tf TeamsFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parse teams YAML: %w", err)
	}

	teams := make(map[string]*TeamDef)
	for i := range tf.Teams {
		t := &tf.Teams[i]
		if t.Key == "" {
			return nil, fmt.Errorf("team %d: missing key", i)
		}
		if _, ok := CardRegistry[t.Pitcher]; !ok {
			return nil, fmt.Errorf("team %q: unknown pitcher %q", t.Key, t.Pitcher)
		}
		for _, entry := range t.Cards {
			if _, ok := CardRegistry[entry.Key]; !ok {
				return nil, fmt.Errorf("team %q: unknown card %q", t.Key, entry.Key)
			}
			if entry.Count < 1 {
				return nil, fmt.Errorf("team %q: card %q has count %d", t.Key, entry.Key, entry.Count)
			}
		}
		teams[t.Key] = t
	}
	return teams, nil
}

// BuildDeck prepares the team's deck: count copies of each roster card,
// cloned and rated for a new game.
func BuildDeck(team *TeamDef) []*Card {
	var deck []*Card
	for _, entry := range team.Cards {
		for i := 0; i < entry.Count; i++ {
			deck = append(deck, PrepareCard(LookupCard(entry.Key)))
		}
	}
	return deck
}

// LintContent walks every registered card and reports content problems the
// runtime would otherwise swallow: unknown condition tags pass fail-open at
// evaluation time, so the only place a typo surfaces is here.
func LintContent() []string {
	var issues []string
	// A throwaway engine gives us the registered keyword set.
	e := NewEngine(NewGameState(), nil, nil)

	for key, ctor := range CardRegistry {
		card := ctor()
		if card.Key != key {
			issues = append(issues, fmt.Sprintf("%s: card key %q does not match registry key", key, card.Key))
		}
		for _, trigger := range []Trigger{TriggerPlay, TriggerDeath, TriggerSynergy, TriggerAura, TriggerPassive} {
			eff := card.Effects.ByTrigger(trigger)
			if eff == nil {
				continue
			}
			lintEffect(e, key, trigger, eff, &issues)
		}
	}
	return issues
}

func lintEffect(e *Engine, key string, trigger Trigger, eff *EffectDef, issues *[]string) {
	if eff.Condition != nil && eff.Condition.Tag != "" && !KnownConditionTags[eff.Condition.Tag] {
		*issues = append(*issues, fmt.Sprintf("%s/%s: unrecognized condition tag %q (would pass fail-open)", key, trigger, eff.Condition.Tag))
	}
	switch {
	case eff.Custom != "":
		if !e.KnownCustom(eff.Custom) {
			*issues = append(*issues, fmt.Sprintf("%s/%s: unregistered custom effect %q", key, trigger, eff.Custom))
		}
	case trigger == TriggerAura || trigger == TriggerPassive:
		// Auras and passives are derived stat entries, not dispatched
		// actions; they only need a stat and a target.
		if eff.Stat == StatNone && !eff.AllStats {
			*issues = append(*issues, fmt.Sprintf("%s/%s: no stat declared", key, trigger))
		}
	case eff.ActionKeyword() == "":
		*issues = append(*issues, fmt.Sprintf("%s/%s: no action specified", key, trigger))
	case !e.KnownKeyword(eff.ActionKeyword()):
		*issues = append(*issues, fmt.Sprintf("%s/%s: unknown effect keyword %q", key, trigger, eff.ActionKeyword()))
	}
	for _, sub := range eff.Leading {
		lintEffect(e, key, trigger, sub, issues)
	}
	for _, sub := range eff.Trailing {
		lintEffect(e, key, trigger, sub, issues)
	}
}
