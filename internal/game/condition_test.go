package game

import "testing"

func TestNilConditionIsTrue(t *testing.T) {
	gs := NewGameState()
	if !EvaluateCondition(nil, vanillaBatter("X"), gs) {
		t.Error("nil condition should evaluate to true")
	}
}

func TestUnknownTagFailsOpen(t *testing.T) {
	gs := NewGameState()
	cond := &Condition{Tag: "mygoMembersOnBsae"} // typo on purpose
	if !EvaluateCondition(cond, vanillaBatter("X"), gs) {
		t.Error("unrecognized tag should evaluate to true")
	}
}

func TestPanicDuringEvaluationFailsClosed(t *testing.T) {
	// A nil state makes every positional tag panic on dereference.
	cond := &Condition{Tag: "onBase"}
	if EvaluateCondition(cond, vanillaBatter("X"), nil) {
		t.Error("a panicking evaluation should evaluate to false")
	}
}

func TestBasesEmptyTag(t *testing.T) {
	gs := NewGameState()
	cond := &Condition{Tag: "basesEmpty"}
	if !EvaluateCondition(cond, nil, gs) {
		t.Error("basesEmpty should hold on a fresh state")
	}
	gs.Bases[1] = vanillaBatter("Runner")
	if EvaluateCondition(cond, nil, gs) {
		t.Error("basesEmpty should fail with a runner on second")
	}
}

func TestOnBaseTagMatchesByKey(t *testing.T) {
	gs := NewGameState()
	src := vanillaBatter("tomori")
	cond := &Condition{Tag: "onBase"}
	if EvaluateCondition(cond, src, gs) {
		t.Error("onBase should fail with empty bases")
	}
	// A different copy with the same key counts.
	gs.Bases[0] = vanillaBatter("tomori")
	if !EvaluateCondition(cond, src, gs) {
		t.Error("onBase should hold for a same-key card on base")
	}
}

func TestMyGOMembersOnBaseTag(t *testing.T) {
	gs := NewGameState()
	cond := &Condition{Tag: "mygoMembersOnBase"}
	gs.Bases[0] = vanillaBatter("Stranger")
	if EvaluateCondition(cond, nil, gs) {
		t.Error("a bandless runner should not satisfy mygoMembersOnBase")
	}
	gs.Bases[1] = mygoBatter("tomori", "Tomori Takamatsu")
	if !EvaluateCondition(cond, nil, gs) {
		t.Error("a MyGO runner should satisfy mygoMembersOnBase")
	}
}

func TestNamedOnBaseTags(t *testing.T) {
	gs := NewGameState()
	gs.Bases[2] = mygoBatter("tomori", "Tomori Takamatsu")

	if !EvaluateCondition(&Condition{Tag: "tomoriOnBase"}, nil, gs) {
		t.Error("tomoriOnBase should hold")
	}
	if EvaluateCondition(&Condition{Tag: "sakiOnBase"}, nil, gs) {
		t.Error("sakiOnBase should fail")
	}
}

func TestStructuredCountCondition(t *testing.T) {
	gs := NewGameState()
	gs.Bases[0] = mygoBatter("tomori", "Tomori Takamatsu")
	gs.Bases[1] = mygoBatter("anon", "Anon Chihaya")

	if !EvaluateCondition(&Condition{Type: "countMyGOBattersOnBase", Value: 2}, nil, gs) {
		t.Error("count>=2 should hold with two MyGO runners")
	}
	if EvaluateCondition(&Condition{Type: "countMyGOBattersOnBase", Value: 3}, nil, gs) {
		t.Error("count>=3 should fail with two MyGO runners")
	}
}

func TestUnknownStructuredTypeFailsOpen(t *testing.T) {
	gs := NewGameState()
	if !EvaluateCondition(&Condition{Type: "phaseOfTheMoon", Value: 1}, nil, gs) {
		t.Error("unknown structured type should evaluate to true")
	}
}

func TestInHandTagChecksBothSides(t *testing.T) {
	gs := NewGameState()
	cond := &Condition{Tag: "inHand"}

	card := vanillaBatter("Rana")
	if EvaluateCondition(cond, card, gs) {
		t.Error("inHand should fail for a card in no hand")
	}
	gs.CPU.Hand = append(gs.CPU.Hand, card)
	if !EvaluateCondition(cond, card, gs) {
		t.Error("inHand should hold for a card in the away hand")
	}
}
