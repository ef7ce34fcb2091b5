package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ktsujino/deckball/internal/web"
)

func main() {
	port := flag.Int("port", 8080, "HTTP port to listen on")
	teamsFile := flag.String("teams", "teams.yaml", "path to teams YAML file")
	flag.Parse()

	srv, err := web.NewServer(*teamsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("deckball web UI listening on http://localhost:%d", *port)
	if err := srv.ListenAndServe(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
