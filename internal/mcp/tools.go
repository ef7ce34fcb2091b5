package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ktsujino/deckball/internal/web"
)

// activeSession is the singleton match session (one per stdio process).
var activeSession *GameSession

// teamsFile is the path to the teams YAML file, set by main.
var teamsFile string

// SetTeamsFile sets the path to the teams YAML file.
func SetTeamsFile(path string) {
	teamsFile = path
}

// RegisterTools adds all match tools to the MCP server.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(startGameTool(), handleStartGame)
	s.AddTool(chooseCardTool(), handleChooseCard)
	s.AddTool(chooseBaseTool(), handleChooseBase)
	s.AddTool(answerYesNoTool(), handleAnswerYesNo)
	s.AddTool(getGameStateTool(), handleGetGameState)
}

// --- Tool definitions ---

func startGameTool() mcp.Tool {
	return mcp.NewTool("start_game",
		mcp.WithDescription("Start a new match against the CPU. You control the home side, which bats in the bottom of each inning. "+
			"Returns the initial state and the first pending decision."),
		mcp.WithString("player_team", mcp.Required(), mcp.Description("Team key for your side (from teams.yaml, e.g. 'mygo')")),
		mcp.WithString("cpu_team", mcp.Required(), mcp.Description("Team key for the CPU side")),
		mcp.WithNumber("seed", mcp.Description("RNG seed for reproducible matches (0 or omitted for random)")),
	)
}

func chooseCardTool() mcp.Tool {
	return mcp.NewTool("choose_card",
		mcp.WithDescription("Pick a card from the pending candidates list. Use this when the pending decision type is 'choose_card'. "+
			"Pass -1 to decline an optional prompt (e.g. skip playing an action card)."),
		mcp.WithNumber("index", mcp.Required(), mcp.Description("0-based index into the candidates list, or -1 to decline")),
	)
}

func chooseBaseTool() mcp.Tool {
	return mcp.NewTool("choose_base",
		mcp.WithDescription("Pick a base slot. Use this when the pending decision type is 'choose_base'. 0 = first base, 2 = third base."),
		mcp.WithNumber("index", mcp.Required(), mcp.Description("Base slot 0-2, or -1 to cancel")),
	)
}

func answerYesNoTool() mcp.Tool {
	return mcp.NewTool("answer_yes_no",
		mcp.WithDescription("Answer a yes/no question. Use this when the pending decision type is 'choose_yes_no'."),
		mcp.WithBoolean("answer", mcp.Required(), mcp.Description("true for yes, false for no")),
	)
}

func getGameStateTool() mcp.Tool {
	return mcp.NewTool("get_game_state",
		mcp.WithDescription("Get the current match state, accumulated events, and pending decision without submitting a response. Read-only."),
	)
}

// --- Tool handlers ---

func handleStartGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession != nil {
		return mcp.NewToolResultError("A match is already running. Only one match at a time is supported."), nil
	}

	playerTeam := request.GetString("player_team", "")
	cpuTeam := request.GetString("cpu_team", "")
	seed := request.GetInt("seed", 0)

	sess, err := NewGameSession(teamsFile, playerTeam, cpuTeam, int64(seed))
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to start match: %v", err), nil
	}
	activeSession = sess

	resp, err := sess.waitForPending()
	if err != nil {
		return mcp.NewToolResultErrorf("Error waiting for first decision: %v", err), nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handleChooseCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, pending, errResult := pendingOfType(DecisionChooseCard)
	if errResult != nil {
		return errResult, nil
	}

	index := request.GetInt("index", -1)
	if index >= len(pending.Candidates) {
		return mcp.NewToolResultErrorf("Invalid index %d. Must be -1 or 0-%d.", index, len(pending.Candidates)-1), nil
	}

	sess.ctrl.responseCh <- CardResponse{Index: index}
	return nextDecision(sess)
}

func handleChooseBase(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, _, errResult := pendingOfType(DecisionChooseBase)
	if errResult != nil {
		return errResult, nil
	}

	index := request.GetInt("index", -1)
	sess.ctrl.responseCh <- BaseResponse{Index: index}
	return nextDecision(sess)
}

func handleAnswerYesNo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, _, errResult := pendingOfType(DecisionChooseYesNo)
	if errResult != nil {
		return errResult, nil
	}

	answer := request.GetBool("answer", false)
	sess.ctrl.responseCh <- YesNoResponse{Answer: answer}
	return nextDecision(sess)
}

func handleGetGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession == nil {
		return mcp.NewToolResultError("No match is running. Use start_game first."), nil
	}

	sess := activeSession
	sess.mu.Lock()
	gameOver := sess.gameOver
	result := sess.result
	sess.mu.Unlock()

	resp := &ToolResponse{
		SessionID: sess.ID,
		Events:    sess.drainEvents(),
		GameOver:  gameOver,
		Result:    result,
		State:     web.BuildStateView(sess.match.State()),
	}
	if resp.Events == nil {
		resp.Events = []web.EventView{}
	}
	if !gameOver && sess.currentPending != nil {
		resp.Pending = &PendingView{
			Type:       sess.currentPending.Type,
			Prompt:     sess.currentPending.Prompt,
			Candidates: sess.currentPending.Candidates,
		}
	}

	return mcp.NewToolResultText(respondJSON(resp)), nil
}

// pendingOfType checks the singleton session has a pending decision of the
// expected type, returning a tool error result otherwise.
func pendingOfType(want DecisionType) (*GameSession, *PendingDecision, *mcp.CallToolResult) {
	if activeSession == nil {
		return nil, nil, mcp.NewToolResultError("No match is running. Use start_game first.")
	}
	sess := activeSession
	pending := sess.currentPending
	if pending == nil {
		return nil, nil, mcp.NewToolResultError("No pending decision.")
	}
	if pending.Type != want {
		return nil, nil, mcp.NewToolResultErrorf("Wrong tool: pending decision is '%s', not '%s'. Use the correct tool.", pending.Type, want)
	}
	return sess, pending, nil
}

// nextDecision waits for the match to surface its next decision and clears
// the singleton when the match ends.
func nextDecision(sess *GameSession) (*mcp.CallToolResult, error) {
	resp, err := sess.waitForPending()
	if err != nil {
		return mcp.NewToolResultErrorf("Error waiting for next decision: %v", err), nil
	}
	if resp.GameOver {
		activeSession = nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}
