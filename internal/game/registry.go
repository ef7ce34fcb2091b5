package game

import "fmt"

// CardRegistry maps content keys to card constructor functions.
var CardRegistry = map[string]func() *Card{
	"tomori":     Tomori,
	"anon":       Anon,
	"rana":       Rana,
	"soyo":       Soyo,
	"taki":       Taki,
	"saki":       Saki,
	"uika":       Uika,
	"mutsumi":    Mutsumi,
	"nyamu":      Nyamu,
	"umiri":      Umiri,
	"bandPractice":   BandPractice,
	"newSong":        NewSong,
	"haruhikage":     Haruhikage,
	"finalRehearsal": FinalRehearsal,
	"superglue":      Superglue,
	"energyDrink":    EnergyDrink,
}

// LookupCard looks up a card definition by key and returns a fresh copy.
// Panics if the key is not registered.
func LookupCard(key string) *Card {
	ctor, ok := CardRegistry[key]
	if !ok {
		panic(fmt.Sprintf("card not found in registry: %q", key))
	}
	return ctor()
}
