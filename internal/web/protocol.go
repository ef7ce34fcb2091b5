package web

// Message types for the JSON protocol over the WebSocket.

// --- Server → Client messages ---

// ServerMessage is the envelope for all server-to-client messages.
type ServerMessage struct {
	Type string `json:"type"`

	// For "notify"
	Event *EventView `json:"event,omitempty"`

	// For "choose_card" / "choose_base" / "choose_yes_no"
	Prompt     string     `json:"prompt,omitempty"`
	Candidates []CardView `json:"candidates,omitempty"`
	State      *StateView `json:"state,omitempty"`

	// For "game_over"
	Result string `json:"result,omitempty"`

	// For "error"
	Error string `json:"error,omitempty"`
}

// EventView is a simplified game event for the client.
type EventView struct {
	Seq     int    `json:"seq"`
	Inning  int    `json:"inning"`
	Half    string `json:"half"`
	Side    string `json:"side,omitempty"`
	Type    string `json:"type"`
	Card    string `json:"card,omitempty"`
	Details string `json:"details"`
}

// CardView describes a card candidate for selection or display.
type CardView struct {
	Index    int    `json:"index"`
	Key      string `json:"key"`
	Name     string `json:"name"`
	CardType string `json:"cardType"`
	Band     string `json:"band,omitempty"`
	OVR      int    `json:"ovr,omitempty"`
	Locked   bool   `json:"locked,omitempty"`

	Power     int `json:"power,omitempty"`
	HitRate   int `json:"hitRate,omitempty"`
	Contact   int `json:"contact,omitempty"`
	Speed     int `json:"speed,omitempty"`
	Velocity  int `json:"velocity,omitempty"`
	Control   int `json:"control,omitempty"`
	Technique int `json:"technique,omitempty"`

	Description string `json:"description,omitempty"`
}

// StateView is the match state from the home player's perspective.
type StateView struct {
	Inning int `json:"inning"`

	Half      string       `json:"half"`
	Outs      int          `json:"outs"`
	ScoreAway int          `json:"score_away"`
	ScoreHome int          `json:"score_home"`
	Bases     [3]*CardView `json:"bases"`

	You      SideView `json:"you"`
	Opponent SideView `json:"opponent"`

	YourTurn bool `json:"is_your_turn"`
}

// SideView shows one side's zones. Only the "you" side exposes hand
// contents.
type SideView struct {
	Team         string     `json:"team"`
	HandCount    int        `json:"hand_count"`
	Hand         []CardView `json:"hand,omitempty"`
	DeckCount    int        `json:"deck_count"`
	DiscardCount int        `json:"discard_count"`
	Pitcher      *CardView  `json:"pitcher,omitempty"`
}

// --- Client → Server messages ---

// ClientMessage is the envelope for all client-to-server messages.
type ClientMessage struct {
	Type string `json:"type"`

	// For "start" (initial handshake)
	PlayerTeam string `json:"player_team,omitempty"`
	CPUTeam    string `json:"cpu_team,omitempty"`
	Seed       int64  `json:"seed,omitempty"`

	// For "card" and "base" responses (-1 declines)
	Index int `json:"index"`

	// For "yes_no"
	Answer bool `json:"answer"`
}
