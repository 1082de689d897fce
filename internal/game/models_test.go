package game

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestApplyStatus_ReplacesInPlace(t *testing.T) {
	f := NewFighter("P", RolePlayer, []string{BasicAttackID})
	f.ApplyStatus(StatusPoison, 3, 45)
	f.ApplyStatus(StatusSilence, 2, 0)
	f.ApplyStatus(StatusPoison, 1, 10)

	if len(f.Statuses) != 2 {
		t.Fatalf("expected 2 statuses, got %d", len(f.Statuses))
	}
	if f.Statuses[0].Name != StatusPoison || f.Statuses[0].Duration != 1 || f.Statuses[0].Value != 10 {
		t.Fatalf("poison should be replaced at index 0, got %+v", f.Statuses[0])
	}
}

func TestBattle_JSONRoundTripKeepsOptionalAndIntKeys(t *testing.T) {
	a := int64(9007199254740993)
	b := &Battle{
		RoomID:   -100123,
		Player:   NewFighter("Player", RolePlayer, []string{BasicAttackID}),
		AI:       NewFighter("AI", RoleAI, []string{BasicAttackID}),
		RNGState: "opaque",
		PlayerA:  &a,
		Pending:  map[int64]int{a: 3},
	}

	raw, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got Battle
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Seed != nil || got.PlayerB != nil {
		t.Fatalf("absent seed and player b must stay nil")
	}
	if got.PlayerA == nil || *got.PlayerA != a {
		t.Fatalf("player a id lost precision: %v", got.PlayerA)
	}
	if got.Pending[a] != 3 {
		t.Fatalf("pending key lost: %+v", got.Pending)
	}
	if !reflect.DeepEqual(b, &got) {
		t.Fatalf("round trip mismatch:\n%+v\n%+v", b, &got)
	}
}

func TestBattle_CloneIsDeep(t *testing.T) {
	seed := int64(7)
	b := &Battle{
		Player:  NewFighter("Player", RolePlayer, []string{"x"}),
		AI:      NewFighter("AI", RoleAI, []string{"x"}),
		Seed:    &seed,
		Pending: map[int64]int{1: 2},
	}
	b.Player.ApplyStatus(StatusPoison, 2, 5)

	c := b.Clone()
	c.Player.Statuses[0].Duration = 99
	c.Player.Cooldowns["x"] = 4
	*c.Seed = 8
	c.Pending[1] = 5

	if b.Player.Statuses[0].Duration != 2 || b.Player.Cooldowns["x"] != 0 || *b.Seed != 7 || b.Pending[1] != 2 {
		t.Fatalf("clone shares state with the original")
	}
}
