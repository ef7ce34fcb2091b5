package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for logging game events.
type EventLogger interface {
	Log(event GameEvent)
	Events() []GameEvent
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []GameEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event GameEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []GameEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []GameEvent {
	var result []GameEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() GameEvent {
	if len(l.events) == 0 {
		return GameEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event GameEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- Formatting ---

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e GameEvent) string {
	half := e.Half
	if half == "" {
		half = "   "
	}
	// Pad half to 6 chars for alignment
	for len(half) < 6 {
		half += " "
	}
	return fmt.Sprintf("I%-2d %s| %s", e.Inning, half, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []GameEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewInningEvent(inning int) GameEvent {
	return GameEvent{
		Inning:  inning,
		Type:    EventNewInning,
		Details: fmt.Sprintf("=== Inning %d ===", inning),
	}
}

func NewHalfInningEvent(inning int, half, side string) GameEvent {
	return GameEvent{
		Inning:  inning,
		Half:    half,
		Side:    side,
		Type:    EventHalfInning,
		Details: fmt.Sprintf("--- %s of inning %d (%s batting) ---", half, inning, side),
	}
}

func NewTurnEvent(inning int, half, side string) GameEvent {
	return GameEvent{
		Inning:  inning,
		Half:    half,
		Side:    side,
		Type:    EventNewTurn,
		Details: fmt.Sprintf("%s takes a turn", side),
	}
}

func NewDrawEvent(inning int, half, side, cardName string) GameEvent {
	return GameEvent{
		Inning:  inning,
		Half:    half,
		Side:    side,
		Type:    EventDraw,
		Card:    cardName,
		Details: fmt.Sprintf("%s draws %s", side, cardName),
	}
}

func NewReshuffleEvent(inning int, half, side string, count int) GameEvent {
	return GameEvent{
		Inning:  inning,
		Half:    half,
		Side:    side,
		Type:    EventReshuffle,
		Details: fmt.Sprintf("%s reshuffles %d discards into the deck", side, count),
	}
}

func NewDiscardEvent(inning int, half, side, cardName string) GameEvent {
	return GameEvent{
		Inning:  inning,
		Half:    half,
		Side:    side,
		Type:    EventDiscard,
		Card:    cardName,
		Details: fmt.Sprintf("%s discards %s", side, cardName),
	}
}

func NewPlayCardEvent(inning int, half, side, cardName string) GameEvent {
	return GameEvent{
		Inning:  inning,
		Half:    half,
		Side:    side,
		Type:    EventPlayCard,
		Card:    cardName,
		Details: fmt.Sprintf("%s plays %s", side, cardName),
	}
}

func NewEffectEvent(inning int, half, cardName, description string) GameEvent {
	return GameEvent{
		Inning:  inning,
		Half:    half,
		Type:    EventEffect,
		Card:    cardName,
		Details: fmt.Sprintf("%s: %s", cardName, description),
	}
}

func NewEffectFailedEvent(inning int, half, cardName, reason string) GameEvent {
	return GameEvent{
		Inning:  inning,
		Half:    half,
		Type:    EventEffectFailed,
		Card:    cardName,
		Details: fmt.Sprintf("%s effect fizzles (%s)", cardName, reason),
	}
}

func NewAtBatEvent(inning int, half, side, batterName string) GameEvent {
	return GameEvent{
		Inning:  inning,
		Half:    half,
		Side:    side,
		Type:    EventAtBat,
		Card:    batterName,
		Details: fmt.Sprintf("%s steps up to bat for %s", batterName, side),
	}
}

func NewOutcomeEvent(inning int, half, batterName, outcome string) GameEvent {
	return GameEvent{
		Inning:  inning,
		Half:    half,
		Type:    EventOutcome,
		Card:    batterName,
		Details: fmt.Sprintf("%s: %s", batterName, outcome),
	}
}

func NewOutEvent(inning int, half, batterName string, outs int) GameEvent {
	return GameEvent{
		Inning:  inning,
		Half:    half,
		Type:    EventOut,
		Card:    batterName,
		Details: fmt.Sprintf("%s is out (%d out)", batterName, outs),
	}
}

func NewRunnerAdvanceEvent(inning int, half, runnerName string, from, to int) GameEvent {
	return GameEvent{
		Inning:  inning,
		Half:    half,
		Type:    EventRunnerAdvance,
		Card:    runnerName,
		Details: fmt.Sprintf("%s advances from base %d to base %d", runnerName, from+1, to+1),
	}
}

func NewRunnerScoreEvent(inning int, half, runnerName string) GameEvent {
	return GameEvent{
		Inning:  inning,
		Half:    half,
		Type:    EventRunnerScore,
		Card:    runnerName,
		Details: fmt.Sprintf("%s crosses home plate!", runnerName),
	}
}

func NewSqueezeEvent(inning int, half, runnerName string, from, to int) GameEvent {
	return GameEvent{
		Inning:  inning,
		Half:    half,
		Type:    EventSqueeze,
		Card:    runnerName,
		Details: fmt.Sprintf("%s is squeezed forward from base %d to base %d", runnerName, from+1, to+1),
	}
}

func NewLockEvent(inning int, half, cardName string) GameEvent {
	return GameEvent{
		Inning:  inning,
		Half:    half,
		Type:    EventLock,
		Card:    cardName,
		Details: fmt.Sprintf("%s is locked to their base", cardName),
	}
}

func NewDeathTriggerEvent(inning int, half, cardName string) GameEvent {
	return GameEvent{
		Inning:  inning,
		Half:    half,
		Type:    EventDeathTrigger,
		Card:    cardName,
		Details: fmt.Sprintf("%s's farewell effect triggers", cardName),
	}
}

func NewAuraRecomputeEvent(inning int, half string, count int) GameEvent {
	return GameEvent{
		Inning:  inning,
		Half:    half,
		Type:    EventAuraRecompute,
		Details: fmt.Sprintf("auras recomputed (%d active)", count),
	}
}

func NewCleanupEvent(inning int, half, scope string, removed int) GameEvent {
	return GameEvent{
		Inning:  inning,
		Half:    half,
		Type:    EventCleanup,
		Details: fmt.Sprintf("%s cleanup removed %d effects", scope, removed),
	}
}

func NewScoreChangeEvent(inning int, half string, away, home int) GameEvent {
	return GameEvent{
		Inning:  inning,
		Half:    half,
		Type:    EventScoreChange,
		Details: fmt.Sprintf("score is now away %d - home %d", away, home),
	}
}

func NewWinEvent(inning int, result string) GameEvent {
	return GameEvent{
		Inning:  inning,
		Type:    EventWin,
		Details: result,
	}
}
