package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ktsujino/deckball/internal/game"
	"github.com/ktsujino/deckball/internal/log"
)

// ConsoleController implements game.Controller over stdin/stdout.
type ConsoleController struct {
	reader *bufio.Reader
}

// NewConsoleController creates a controller reading from stdin.
func NewConsoleController() *ConsoleController {
	return &ConsoleController{reader: bufio.NewReader(os.Stdin)}
}

// ChooseCard implements game.Controller.
func (c *ConsoleController) ChooseCard(ctx context.Context, state *game.GameState, prompt string, candidates []*game.Card) (int, error) {
	renderState(state)
	fmt.Printf("\n%s\n", prompt)
	for i, card := range candidates {
		fmt.Printf("  %d) %s\n", i+1, formatCard(card))
	}
	fmt.Println("  0) pass")

	for {
		fmt.Print("> ")
		line, err := c.reader.ReadString('\n')
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || n < 0 || n > len(candidates) {
			fmt.Printf("Enter a number between 0 and %d\n", len(candidates))
			continue
		}
		return n - 1, nil // 0 becomes -1 (decline)
	}
}

// ChooseBase implements game.Controller.
func (c *ConsoleController) ChooseBase(ctx context.Context, state *game.GameState, prompt string) (int, error) {
	renderState(state)
	fmt.Printf("\n%s (1-3, 0 to cancel)\n", prompt)

	for {
		fmt.Print("> ")
		line, err := c.reader.ReadString('\n')
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || n < 0 || n > game.BaseCount {
			fmt.Printf("Enter a number between 0 and %d\n", game.BaseCount)
			continue
		}
		return n - 1, nil
	}
}

// ChooseYesNo implements game.Controller.
func (c *ConsoleController) ChooseYesNo(ctx context.Context, state *game.GameState, prompt string) (bool, error) {
	fmt.Printf("\n%s (y/n): ", prompt)
	for {
		line, err := c.reader.ReadString('\n')
		if err != nil {
			return false, err
		}
		switch strings.TrimSpace(strings.ToLower(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			fmt.Print("Enter y or n: ")
		}
	}
}

// Notify implements game.Controller.
func (c *ConsoleController) Notify(ctx context.Context, event log.GameEvent) error {
	fmt.Println(log.FormatEvent(event))
	return nil
}

func renderState(state *game.GameState) {
	fmt.Println()
	fmt.Println("╔══════════════════════════════════════════════════════╗")
	fmt.Printf("║  Inning %d (%s)  Outs: %d\n", state.Inning, state.Half, state.Outs)
	fmt.Printf("║  Away (%s): %d   Home (%s): %d\n",
		state.CPU.Team, state.Score.Away, state.Player.Team, state.Score.Home)
	fmt.Printf("║  3B %s  2B %s  1B %s\n",
		formatBase(state.Bases[2]), formatBase(state.Bases[1]), formatBase(state.Bases[0]))
	fmt.Printf("║  You: hand %d, deck %d, discard %d\n",
		len(state.Player.Hand), state.Player.DeckCount(), len(state.Player.Discard))
	fmt.Printf("║  CPU: hand %d, deck %d\n", len(state.CPU.Hand), state.CPU.DeckCount())
	fmt.Println("╚══════════════════════════════════════════════════════╝")
}

func formatBase(card *game.Card) string {
	if card == nil {
		return "[ ]"
	}
	if card.Locked {
		return fmt.Sprintf("[%s*]", card.Name)
	}
	return fmt.Sprintf("[%s]", card.Name)
}

func formatCard(card *game.Card) string {
	stats := game.ComposedStats(card)
	switch card.Type {
	case game.CardBatter:
		return fmt.Sprintf("%s (Batter OVR %d | POW %d HIT %d CON %d SPD %d)",
			card.Name, card.OVR, stats.Power, stats.HitRate, stats.Contact, stats.Speed)
	case game.CardPitcher:
		return fmt.Sprintf("%s (Pitcher OVR %d)", card.Name, card.OVR)
	default:
		desc := ""
		if play := card.Effects.Play; play != nil && play.Description != "" {
			desc = ": " + play.Description
		}
		return fmt.Sprintf("%s (Action)%s", card.Name, desc)
	}
}
