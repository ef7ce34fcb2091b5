package log

// EventType enumerates all observable game events.
type EventType int

const (
	EventNewInning EventType = iota
	EventHalfInning
	EventNewTurn
	EventDraw
	EventReshuffle
	EventDiscard
	EventPlayCard
	EventEffect
	EventEffectFailed
	EventAtBat
	EventOutcome
	EventOut
	EventRunnerAdvance
	EventRunnerScore
	EventSqueeze
	EventLock
	EventDeathTrigger
	EventAuraRecompute
	EventCleanup
	EventScoreChange
	EventWin
)

func (e EventType) String() string {
	switch e {
	case EventNewInning:
		return "NewInning"
	case EventHalfInning:
		return "HalfInning"
	case EventNewTurn:
		return "NewTurn"
	case EventDraw:
		return "Draw"
	case EventReshuffle:
		return "Reshuffle"
	case EventDiscard:
		return "Discard"
	case EventPlayCard:
		return "PlayCard"
	case EventEffect:
		return "Effect"
	case EventEffectFailed:
		return "EffectFailed"
	case EventAtBat:
		return "AtBat"
	case EventOutcome:
		return "Outcome"
	case EventOut:
		return "Out"
	case EventRunnerAdvance:
		return "RunnerAdvance"
	case EventRunnerScore:
		return "RunnerScore"
	case EventSqueeze:
		return "Squeeze"
	case EventLock:
		return "Lock"
	case EventDeathTrigger:
		return "DeathTrigger"
	case EventAuraRecompute:
		return "AuraRecompute"
	case EventCleanup:
		return "Cleanup"
	case EventScoreChange:
		return "ScoreChange"
	case EventWin:
		return "Win"
	default:
		return "Unknown"
	}
}

// GameEvent represents a single observable event in a match.
type GameEvent struct {
	Seq     int       // monotonic sequence number
	Inning  int       // which inning (1-based)
	Half    string    // "top" or "bottom"
	Side    string    // acting side ("away" or "home"), if applicable
	Type    EventType // event type
	Card    string    // card name (if applicable)
	Details string    // human-readable detail string
}
