package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	ballmcp "github.com/ktsujino/deckball/internal/mcp"
)

func main() {
	teams := flag.String("teams", "teams.yaml", "path to teams YAML file")
	flag.Parse()

	ballmcp.SetTeamsFile(*teams)

	s := server.NewMCPServer("deckball", "1.0.0")
	ballmcp.RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
