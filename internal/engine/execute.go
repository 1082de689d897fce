package engine

import (
	"fmt"

	"github.com/ericogr/duel-arena/internal/game"
)

// executeSkill applies one skill from attacker to defender and records the result.
func (rc *roundContext) executeSkill(attacker, defender *game.Fighter, sk game.Skill) {
	switch sk.Kind {
	case game.SkillDamage:
		dmg := rc.rng.Between(sk.DamageMin, sk.DamageMax)
		hpLoss, absorbed := applyDamage(defender, dmg)
		rc.add(game.Event{
			Type: game.EventDamage, Actor: attacker.Role, Target: defender.Role,
			SkillID: sk.ID, Amount: dmg, HPLoss: hpLoss, Absorbed: absorbed,
		})

	case game.SkillApplyStatus:
		if sk.Status == "" {
			panic(fmt.Sprintf("engine: apply_status skill %q has no status", sk.ID))
		}
		if rc.rng.Float64() <= sk.Chance {
			defender.ApplyStatus(sk.Status, sk.Duration, sk.Value)
			rc.add(game.Event{
				Type: game.EventStatusApply, Actor: attacker.Role, Target: defender.Role,
				SkillID: sk.ID, Status: sk.Status, Duration: sk.Duration, Value: sk.Value,
			})
		} else {
			rc.add(game.Event{Type: game.EventMiss, Actor: attacker.Role, Target: defender.Role, SkillID: sk.ID})
		}

	case game.SkillAddShield:
		attacker.Shield += sk.ShieldValue
		attacker.ApplyStatus(game.StatusShield, sk.Duration, 0)
		rc.add(game.Event{
			Type: game.EventShieldGain, Actor: attacker.Role,
			SkillID: sk.ID, Value: sk.ShieldValue, Duration: sk.Duration,
		})

	default:
		panic(fmt.Sprintf("engine: skill %q has unknown kind %q", sk.ID, sk.Kind))
	}
}

// applyDamage routes incoming damage through every status's damage hook (the
// shield absorbs first) and then removes the remainder from hit points,
// clamped at zero. It returns the hit points lost and the shield consumed.
func applyDamage(f *game.Fighter, damage int) (hpLoss, absorbed int) {
	remaining := damage
	before := f.Shield
	for i := range f.Statuses {
		st := &f.Statuses[i]
		remaining = handlerFor(st.Name).onDamageTaken(f, remaining, st)
	}
	absorbed = before - f.Shield
	hpLoss = max(0, remaining)
	f.HP = max(0, f.HP-hpLoss)
	return hpLoss, absorbed
}
