package game

import (
	"fmt"
	"math/rand"
	"strings"
)

const (
	BaseCount   = 3
	HandCap     = 10
	InitialHand = 5
	OutsPerHalf = 3
	RunValue    = 1
	StatMax     = 200
)

// Half identifies which half of the inning is being played.
type Half int

const (
	TopHalf Half = iota
	BottomHalf
)

func (h Half) String() string {
	if h == TopHalf {
		return "top"
	}
	return "bottom"
}

// Score tracks the match score. The away side is the CPU and the home side is
// the player; score-comparison effects always compare Home vs Away directly.
type Score struct {
	Away int
	Home int
}

// Side holds one side's zones. A card belongs to exactly one zone at a time;
// engine operations move cards between zones, never copy them.
type Side struct {
	Name    string // "away" or "home"
	Team    string
	Deck    []*Card // top of deck is the last element (pop from end)
	Hand    []*Card
	Discard []*Card
	Pitcher *Card
}

// DeckCount returns the number of cards remaining in the deck.
func (s *Side) DeckCount() int {
	return len(s.Deck)
}

// HandCount returns the number of cards in hand.
func (s *Side) HandCount() int {
	return len(s.Hand)
}

// popDeck removes and returns the top deck card, or nil if the deck is empty.
// Reshuffle-on-empty is handled by Engine.DrawCards, not here.
func (s *Side) popDeck() *Card {
	if len(s.Deck) == 0 {
		return nil
	}
	card := s.Deck[len(s.Deck)-1]
	s.Deck = s.Deck[:len(s.Deck)-1]
	return card
}

// RemoveFromHand removes a card from the hand by identity.
func (s *Side) RemoveFromHand(card *Card) {
	for i, c := range s.Hand {
		if c == card {
			s.Hand = append(s.Hand[:i], s.Hand[i+1:]...)
			return
		}
	}
}

// SendToDiscard moves a card to the discard pile.
func (s *Side) SendToDiscard(card *Card) {
	s.Discard = append(s.Discard, card)
}

// ShuffleDeck randomizes the deck order using the given source.
func (s *Side) ShuffleDeck(rng *rand.Rand) {
	rng.Shuffle(len(s.Deck), func(i, j int) {
		s.Deck[i], s.Deck[j] = s.Deck[j], s.Deck[i]
	})
}

// --- GameState ---

// GameState holds the complete state of a match. The engine is the sole
// mutator during its operations; there is no concurrent writer.
type GameState struct {
	Inning int // 1-based
	Half   Half
	Outs   int
	Score  Score

	Bases [BaseCount]*Card

	Player *Side // home
	CPU    *Side // away

	ActiveEffects []*ActiveEffect

	Selected int // index into the batting side's hand, -1 for none

	Over   bool
	Result string
}

// NewGameState creates a fresh match state with empty zones.
func NewGameState() *GameState {
	return &GameState{
		Inning:   1,
		Half:     TopHalf,
		Player:   &Side{Name: "home"},
		CPU:      &Side{Name: "away"},
		Selected: -1,
	}
}

// Validate checks the structural invariants the engine assumes after
// initialization. Shape deviations are fatal, not silently patched.
func (gs *GameState) Validate() error {
	if gs.Player == nil || gs.CPU == nil {
		return fmt.Errorf("state: both sides must be present")
	}
	if gs.Outs < 0 || gs.Outs > OutsPerHalf {
		return fmt.Errorf("state: outs %d out of range", gs.Outs)
	}
	if gs.Inning < 1 {
		return fmt.Errorf("state: inning %d out of range", gs.Inning)
	}
	return nil
}

// BattingSide returns the side currently at bat. The away (CPU) side bats in
// the top half, the home (player) side in the bottom half.
func (gs *GameState) BattingSide() *Side {
	if gs.Half == TopHalf {
		return gs.CPU
	}
	return gs.Player
}

// FieldingSide returns the side currently pitching.
func (gs *GameState) FieldingSide() *Side {
	if gs.Half == TopHalf {
		return gs.Player
	}
	return gs.CPU
}

// BasesEmpty reports whether all three base slots are empty.
func (gs *GameState) BasesEmpty() bool {
	for _, b := range gs.Bases {
		if b != nil {
			return false
		}
	}
	return true
}

// Runners returns all non-nil based cards in slot order.
func (gs *GameState) Runners() []*Card {
	var result []*Card
	for _, b := range gs.Bases {
		if b != nil {
			result = append(result, b)
		}
	}
	return result
}

// OnBase reports whether the given card currently occupies a base slot.
func (gs *GameState) OnBase(card *Card) bool {
	for _, b := range gs.Bases {
		if b == card {
			return true
		}
	}
	return false
}

// BaseSlot returns the slot index the card occupies, or -1.
func (gs *GameState) BaseSlot(card *Card) int {
	for i, b := range gs.Bases {
		if b == card {
			return i
		}
	}
	return -1
}

// CurrentBatter returns the batting side's selected hand card, or nil.
func (gs *GameState) CurrentBatter() *Card {
	side := gs.BattingSide()
	if gs.Selected < 0 || gs.Selected >= len(side.Hand) {
		return nil
	}
	return side.Hand[gs.Selected]
}

// CountBandOnBase counts based cards whose band matches.
func (gs *GameState) CountBandOnBase(band string) int {
	count := 0
	for _, b := range gs.Bases {
		if b != nil && b.Band == band {
			count++
		}
	}
	return count
}

// NamedOnBase reports whether a card with the given content key is on base.
func (gs *GameState) NamedOnBase(key string) bool {
	for _, b := range gs.Bases {
		if b != nil && b.Key == key {
			return true
		}
	}
	return false
}

// FindEverywhere searches the batting side's hand, the bases, the deck and
// the discard pile for every card matching the given key. Death triggers can
// fire while their target is in any zone, so all zones are searched.
func (gs *GameState) FindEverywhere(side *Side, key string) []*Card {
	var matches []*Card
	scan := func(cards []*Card) {
		for _, c := range cards {
			if c != nil && cardMatchesKey(c, key) {
				matches = append(matches, c)
			}
		}
	}
	scan(side.Hand)
	scan(gs.Bases[:])
	scan(side.Deck)
	scan(side.Discard)
	return matches
}

// cardMatchesKey matches a card against a content key. The key match is
// exact; display names and aliases are checked case-insensitively as a
// fallback so legacy content referencing display names keeps working.
func cardMatchesKey(c *Card, key string) bool {
	if c.Key == key {
		return true
	}
	lower := strings.ToLower(key)
	if strings.Contains(strings.ToLower(c.Name), lower) {
		return true
	}
	for _, alias := range c.Aliases {
		if strings.Contains(strings.ToLower(alias), lower) {
			return true
		}
	}
	return false
}

// AddScore credits points to the batting side and returns the new score.
func (gs *GameState) AddScore(points int) Score {
	if gs.Half == TopHalf {
		gs.Score.Away += points
	} else {
		gs.Score.Home += points
	}
	return gs.Score
}
