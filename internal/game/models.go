package game

// SkillKind selects how a skill is executed.
type SkillKind string

const (
	SkillDamage      SkillKind = "damage"
	SkillApplyStatus SkillKind = "apply_status"
	SkillAddShield   SkillKind = "add_shield"
)

// Valid reports whether k is one of the known skill kinds.
func (k SkillKind) Valid() bool {
	switch k {
	case SkillDamage, SkillApplyStatus, SkillAddShield:
		return true
	}
	return false
}

// BasicAttackID is the skill every catalog must define. It never has a cooldown.
const BasicAttackID = "basic_attack"

// Status names with built-in behavior.
const (
	StatusPoison  = "poison"
	StatusSilence = "silence"
	StatusShield  = "shield"
)

// Skill is an immutable catalog entry.
type Skill struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Kind        SkillKind `json:"type"`
	Cooldown    int       `json:"cd"`
	Weight      int       `json:"weight"`
	DamageMin   int       `json:"damage_min"`
	DamageMax   int       `json:"damage_max"`
	Status      string    `json:"status,omitempty"`
	Duration    int       `json:"duration"`
	Value       int       `json:"value"`
	Chance      float64   `json:"chance"`
	ShieldValue int       `json:"shield_value"`
}

// StatusEffect is attached to a fighter. At most one instance per name.
type StatusEffect struct {
	Name     string `json:"name"`
	Duration int    `json:"duration"`
	Value    int    `json:"value"`
}

// Role identifies which fighter slot a side occupies.
type Role string

const (
	RolePlayer Role = "player"
	RoleAI     Role = "ai"
)

// DefaultMaxHP is the starting hit points of a fresh fighter.
const DefaultMaxHP = 1200

type Fighter struct {
	Name      string         `json:"name"`
	Role      Role           `json:"role"`
	MaxHP     int            `json:"max_hp"`
	HP        int            `json:"hp"`
	Shield    int            `json:"shield"`
	Statuses  []StatusEffect `json:"statuses"`
	Cooldowns map[string]int `json:"cooldowns"`
}

// NewFighter returns a full-health fighter with every listed skill off cooldown.
func NewFighter(name string, role Role, skillIDs []string) Fighter {
	f := Fighter{
		Name:      name,
		Role:      role,
		MaxHP:     DefaultMaxHP,
		HP:        DefaultMaxHP,
		Statuses:  []StatusEffect{},
		Cooldowns: make(map[string]int, len(skillIDs)),
	}
	for _, id := range skillIDs {
		f.Cooldowns[id] = 0
	}
	return f
}

// Status returns the active status with the given name, if any.
func (f *Fighter) Status(name string) (*StatusEffect, bool) {
	for i := range f.Statuses {
		if f.Statuses[i].Name == name {
			return &f.Statuses[i], true
		}
	}
	return nil, false
}

// ApplyStatus attaches a status or fully replaces an existing one of the same
// name in place, keeping its attachment position.
func (f *Fighter) ApplyStatus(name string, duration, value int) {
	for i := range f.Statuses {
		if f.Statuses[i].Name == name {
			f.Statuses[i] = StatusEffect{Name: name, Duration: duration, Value: value}
			return
		}
	}
	f.Statuses = append(f.Statuses, StatusEffect{Name: name, Duration: duration, Value: value})
}

// Down reports whether the fighter has no hit points left.
func (f *Fighter) Down() bool { return f.HP <= 0 }

// Outcome is the terminal result of a battle.
type Outcome string

const (
	OutcomeNone   Outcome = ""
	OutcomeDraw   Outcome = "draw"
	OutcomePlayer Outcome = "player"
	OutcomeAI     Outcome = "ai"
)

// Battle is the full persisted per-room document.
type Battle struct {
	RoomID    int64   `json:"room_id"`
	Player    Fighter `json:"player"`
	AI        Fighter `json:"ai"`
	Round     int     `json:"round_no"`
	IsOver    bool    `json:"is_over"`
	Winner    Outcome `json:"winner"`
	Seed      *int64  `json:"seed"`
	RNGState  string  `json:"rng_state"`
	DebugMode bool    `json:"debug_mode"`
	PlayerA   *int64  `json:"player_a_id"`
	PlayerB   *int64  `json:"player_b_id"`
	// Pending maps a bound participant id to the ordinal of its locked skill.
	Pending map[int64]int `json:"pending_action"`
}

// Fighter returns the fighter for the given role.
func (b *Battle) Fighter(r Role) *Fighter {
	if r == RoleAI {
		return &b.AI
	}
	return &b.Player
}

// Clone returns a deep copy so cached documents are never shared with callers.
func (b *Battle) Clone() *Battle {
	if b == nil {
		return nil
	}
	out := *b
	out.Player = b.Player.clone()
	out.AI = b.AI.clone()
	out.Seed = cloneInt64(b.Seed)
	out.PlayerA = cloneInt64(b.PlayerA)
	out.PlayerB = cloneInt64(b.PlayerB)
	out.Pending = make(map[int64]int, len(b.Pending))
	for k, v := range b.Pending {
		out.Pending[k] = v
	}
	return &out
}

func (f Fighter) clone() Fighter {
	out := f
	out.Statuses = append([]StatusEffect{}, f.Statuses...)
	out.Cooldowns = make(map[string]int, len(f.Cooldowns))
	for k, v := range f.Cooldowns {
		out.Cooldowns[k] = v
	}
	return out
}

func cloneInt64(p *int64) *int64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
