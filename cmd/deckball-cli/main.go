package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ktsujino/deckball/internal/game"
	"github.com/ktsujino/deckball/internal/log"
)

func main() {
	teamsFile := flag.String("teams", "teams.yaml", "path to teams YAML file")
	playerTeam := flag.String("player", "mygo", "team key for your side (home)")
	cpuTeam := flag.String("cpu", "mujica", "team key for the CPU side (away)")
	seed := flag.Int64("seed", 0, "RNG seed (0 for random)")
	innings := flag.Int("innings", 0, "innings per match (0 for default)")
	auto := flag.Bool("auto", false, "let the CPU play both sides")
	lint := flag.Bool("lint", false, "lint the card catalog and exit")
	flag.Parse()

	if *lint {
		issues := game.LintContent()
		for _, issue := range issues {
			fmt.Println(issue)
		}
		if len(issues) > 0 {
			os.Exit(1)
		}
		fmt.Println("card catalog ok")
		return
	}

	teams, err := game.ParseTeamsFile(*teamsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	pt, ok := teams[*playerTeam]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown team %q\n", *playerTeam)
		os.Exit(1)
	}
	ct, ok := teams[*cpuTeam]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown team %q\n", *cpuTeam)
		os.Exit(1)
	}

	var playerCtl game.Controller = NewConsoleController()
	if *auto {
		playerCtl = game.NewCPUController()
	}

	match, err := game.NewMatch(game.MatchConfig{
		PlayerTeam: pt,
		CPUTeam:    ct,
		Logger:     log.NewMemoryLogger(),
		Seed:       *seed,
		MaxInnings: *innings,
	}, playerCtl, game.NewCPUController())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	result, err := match.Run(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════")
	fmt.Println("          GAME OVER")
	fmt.Println("═══════════════════════════════════")
	fmt.Println(result)
	fmt.Println("═══════════════════════════════════")
}
