package game

// EventType names a fact recorded during one round resolution.
type EventType string

const (
	EventRoundStart        EventType = "round_start"
	EventForcedBasicAttack EventType = "forced_basic_attack"
	EventSkillUse          EventType = "skill_use"
	EventDamage            EventType = "damage"
	EventStatusApply       EventType = "status_apply"
	EventMiss              EventType = "miss"
	EventShieldGain        EventType = "shield_gain"
	EventShieldExpire      EventType = "shield_expire"
	EventDOT               EventType = "dot"
	EventBattleOver        EventType = "battle_over"
	EventAlreadyOver       EventType = "already_over"
)

// Event is one typed fact. Only the fields relevant to Type are set.
type Event struct {
	Type   EventType `json:"type"`
	Actor  Role      `json:"actor,omitempty"`
	Target Role      `json:"target,omitempty"`

	Round     int     `json:"round,omitempty"`
	SkillID   string  `json:"skill_id,omitempty"`
	SkillName string  `json:"skill_name,omitempty"`
	Reason    string  `json:"reason,omitempty"`
	Amount    int     `json:"amount"`
	HPLoss    int     `json:"hp_loss"`
	Absorbed  int     `json:"shield_absorb"`
	Status    string  `json:"status,omitempty"`
	Duration  int     `json:"duration,omitempty"`
	Value     int     `json:"value,omitempty"`
	Winner    Outcome `json:"winner,omitempty"`
}

// Log is the append-only record of one resolver invocation. It is returned to
// callers for rendering and never persisted.
type Log struct {
	Round  int     `json:"round"`
	Events []Event `json:"events"`
}

func (l *Log) Add(e Event) { l.Events = append(l.Events, e) }

// Has reports whether any event of type t was recorded.
func (l *Log) Has(t EventType) bool {
	for _, e := range l.Events {
		if e.Type == t {
			return true
		}
	}
	return false
}

// Filter returns the events of type t in order.
func (l *Log) Filter(t EventType) []Event {
	var out []Event
	for _, e := range l.Events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}
