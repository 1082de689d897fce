package service

import (
	"errors"

	"github.com/ericogr/duel-arena/internal/constants"
	"github.com/ericogr/duel-arena/internal/engine"
	"github.com/ericogr/duel-arena/internal/game"
)

var (
	ErrBattleNotFound = errors.New("no battle record for room")
)

// SubmitStatus tells the caller how a submission was handled.
type SubmitStatus string

const (
	SubmitAccepted     SubmitStatus = "accepted"
	SubmitRoomFull     SubmitStatus = "room_full"
	SubmitAlreadyActed SubmitStatus = "already_acted"
)

// SubmitResult carries the acknowledgement data and, once both participants
// have acted, the resolved round log.
type SubmitResult struct {
	Status    SubmitStatus
	Message   string
	Ordinal   int
	SkillName string
	// Silenced means the previewed skill will be replaced by the basic attack.
	Silenced bool
	// Log is nil until the round resolves.
	Log *game.Log
}

// Duel gates round resolution behind both participants submitting.
type Duel struct {
	engine *engine.Engine
}

func NewDuel(e *engine.Engine) *Duel {
	return &Duel{engine: e}
}

// SubmitAction binds the actor to a free slot if needed, locks in a previewed
// skill for it and resolves the round once both slots have a pending skill.
// Rejections leave the battle untouched.
func (d *Duel) SubmitAction(b *game.Battle, actorID int64) (SubmitResult, error) {
	switch {
	case b.PlayerA == nil:
		id := actorID
		b.PlayerA = &id
	case *b.PlayerA != actorID && b.PlayerB == nil:
		id := actorID
		b.PlayerB = &id
	case *b.PlayerA != actorID && *b.PlayerB != actorID:
		return SubmitResult{Status: SubmitRoomFull, Message: constants.MsgRoomFull}, nil
	}

	if b.Pending == nil {
		b.Pending = map[int64]int{}
	}
	if _, ok := b.Pending[actorID]; ok {
		return SubmitResult{Status: SubmitAlreadyActed, Message: constants.MsgAlreadyActed}, nil
	}

	fighter := engine.FighterFor(b, actorID)
	n, err := d.engine.PickLockedSkillNumber(b, fighter)
	if err != nil {
		return SubmitResult{}, err
	}
	sk, err := d.engine.SkillForNumber(n)
	if err != nil {
		return SubmitResult{}, err
	}
	b.Pending[actorID] = n
	res := SubmitResult{
		Status:    SubmitAccepted,
		Ordinal:   n,
		SkillName: sk.Name,
		Silenced:  sk.ID != game.BasicAttackID && engine.SilencedNextTurn(fighter),
	}

	if b.PlayerA == nil || b.PlayerB == nil {
		return res, nil
	}
	na, okA := b.Pending[*b.PlayerA]
	nb, okB := b.Pending[*b.PlayerB]
	if !okA || !okB {
		return res, nil
	}

	skA, err := d.engine.SkillForNumber(na)
	if err != nil {
		return SubmitResult{}, err
	}
	skB, err := d.engine.SkillForNumber(nb)
	if err != nil {
		return SubmitResult{}, err
	}
	log, err := d.engine.AdvanceRound(b, skA.ID, skB.ID)
	b.Pending = map[int64]int{}
	if err != nil {
		return SubmitResult{}, err
	}
	res.Log = log
	return res, nil
}
