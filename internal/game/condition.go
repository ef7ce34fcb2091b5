package game

// MyGOBand is the band attribute the band-membership tags check against.
const MyGOBand = "MyGO!!!!!"

// KnownConditionTags lists every string tag the evaluator recognizes. The
// content lint pass reports tags outside this set at load time; at
// evaluation time unknown tags still pass (see EvaluateCondition).
var KnownConditionTags = map[string]bool{
	"basesEmpty":        true,
	"onBase":            true,
	"mygoMembersOnBase": true,
	"tomoriOnBase":      true,
	"sakiOnBase":        true,
	"scoreComparison":   true,
	"inHand":            true,
}

// EvaluateCondition answers a boolean predicate about game state for the
// given source card.
//
// Two deliberately different defaults apply:
//   - an unrecognized string tag evaluates to true (fail-open), so new
//     content keywords are not silently discarded; typos silently pass,
//     which is why the loader lints tags separately;
//   - any panic during evaluation is recovered and evaluates to false
//     (fail-closed).
func EvaluateCondition(cond *Condition, source *Card, gs *GameState) (result bool) {
	if cond == nil {
		return true
	}
	defer func() {
		if r := recover(); r != nil {
			result = false
		}
	}()

	if cond.Tag != "" {
		return evaluateTag(cond.Tag, source, gs)
	}

	switch cond.Type {
	case "basesEmpty":
		return gs.BasesEmpty()
	case "countMyGOBattersOnBase":
		return gs.CountBandOnBase(MyGOBand) >= cond.Value
	default:
		return true
	}
}

func evaluateTag(tag string, source *Card, gs *GameState) bool {
	switch tag {
	case "basesEmpty":
		return gs.BasesEmpty()
	case "onBase":
		// "self is on base": a based card with the source's key counts.
		for _, b := range gs.Bases {
			if b != nil && b.Key == source.Key {
				return true
			}
		}
		return false
	case "mygoMembersOnBase":
		return gs.CountBandOnBase(MyGOBand) > 0
	case "tomoriOnBase":
		return gs.NamedOnBase("tomori")
	case "sakiOnBase":
		return gs.NamedOnBase("saki")
	case "scoreComparison":
		// The leading/trailing branch choice lives in the conditional_effect
		// handler; the condition itself is always satisfied.
		return true
	case "inHand":
		for _, side := range []*Side{gs.Player, gs.CPU} {
			for _, c := range side.Hand {
				if c == source {
					return true
				}
			}
		}
		return false
	default:
		return true
	}
}
