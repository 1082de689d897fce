// Package render turns battle snapshots and round logs into chat-style text.
// Rendering never mutates its inputs.
package render

import (
	"strconv"
	"strings"

	"github.com/ericogr/duel-arena/internal/game"
	"github.com/ericogr/duel-arena/internal/skills"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supported = []language.Tag{language.English, language.SimplifiedChinese}

var matcher = language.NewMatcher(supported)

// Match resolves a free-form language value ("zh", "zh-CN", "en-US", ...) to
// one of the supported tags, defaulting to English.
func Match(lang string) language.Tag {
	if strings.TrimSpace(lang) == "" {
		return language.English
	}
	_, idx, conf := matcher.Match(language.Make(lang))
	if conf == language.No {
		return language.English
	}
	return supported[idx]
}

// Renderer formats text in one language.
type Renderer struct {
	tag language.Tag
	p   *message.Printer
}

func New(lang string) *Renderer {
	tag := Match(lang)
	return &Renderer{tag: tag, p: message.NewPrinter(tag)}
}

// Language returns the tag this renderer prints in.
func (r *Renderer) Language() language.Tag { return r.tag }

// Text translates a fixed message such as a synchronizer rejection.
func (r *Renderer) Text(key string) string { return r.p.Sprintf(key) }

// Report renders one round log against the battle state after the round.
func (r *Renderer) Report(b *game.Battle, log *game.Log) string {
	var lines []string
	if log.Has(game.EventAlreadyOver) {
		lines = append(lines, r.p.Sprintf("This battle is over; start a new one."))
		lines = append(lines, r.fighterLines(b)...)
		return strings.Join(lines, "\n")
	}

	lines = append(lines, r.p.Sprintf("=== Round %d ===", log.Round))
	for _, ev := range log.Events {
		if line, ok := r.event(ev); ok {
			lines = append(lines, line)
		}
	}

	lines = append(lines, r.p.Sprintf("-- End-of-round DOT --"))
	dots := log.Filter(game.EventDOT)
	if len(dots) == 0 {
		lines = append(lines, r.p.Sprintf("Nobody is poisoned this round."))
	}
	for _, ev := range dots {
		msg := r.p.Sprintf("%s took %d poison damage", r.subject(ev.Actor), ev.Amount)
		if ev.Absorbed > 0 {
			msg += r.p.Sprintf(" (%d absorbed by shield)", ev.Absorbed)
		}
		msg += r.p.Sprintf(", losing %d HP.", ev.HPLoss)
		lines = append(lines, msg)
	}

	lines = append(lines, r.fighterLines(b)...)
	if b.IsOver {
		switch b.Winner {
		case game.OutcomeDraw:
			lines = append(lines, r.p.Sprintf("Battle over: both fell, it's a draw!"))
		case game.OutcomePlayer:
			lines = append(lines, r.p.Sprintf("Battle over: you win, the AI is down!"))
		default:
			lines = append(lines, r.p.Sprintf("Battle over: you fell, the AI wins."))
		}
	}
	if b.DebugMode && b.Seed != nil {
		lines = append(lines, "[debug] seed="+strconv.FormatInt(*b.Seed, 10))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) event(ev game.Event) (string, bool) {
	switch ev.Type {
	case game.EventForcedBasicAttack:
		return r.p.Sprintf("%s turn is silenced; only [Basic Attack] is available.", r.possessive(ev.Actor)), true
	case game.EventSkillUse:
		return r.p.Sprintf("%s used [%s].", r.subject(ev.Actor), ev.SkillName), true
	case game.EventDamage:
		msg := r.p.Sprintf("Dealt %d damage", ev.Amount)
		if ev.Absorbed > 0 {
			msg += r.p.Sprintf(" (%d absorbed by shield)", ev.Absorbed)
		}
		return msg + r.p.Sprintf(", %s lost %d HP.", r.target(ev.Target), ev.HPLoss), true
	case game.EventStatusApply:
		switch ev.Status {
		case game.StatusPoison:
			return r.p.Sprintf("%s is poisoned for %d rounds (%d damage per round).", r.targetSubject(ev.Target), ev.Duration, ev.Value), true
		case game.StatusSilence:
			return r.p.Sprintf("%s is silenced for %d rounds.", r.targetSubject(ev.Target), ev.Duration), true
		}
	case game.EventMiss:
		return r.p.Sprintf("The skill missed."), true
	case game.EventShieldGain:
		return r.p.Sprintf("%s gained a %d shield for %d rounds.", r.subject(ev.Actor), ev.Value, ev.Duration), true
	case game.EventShieldExpire:
		return r.p.Sprintf("%s shield expired and the remainder was cleared.", r.possessive(ev.Actor)), true
	}
	return "", false
}

// Status renders the room overview: round, hit points, participants, pending
// submissions, cooldowns, seed and outcome.
func (r *Renderer) Status(b *game.Battle, catalog *skills.Catalog) string {
	lines := []string{r.p.Sprintf("Current round: %d", b.Round)}
	lines = append(lines, r.fighterLines(b)...)
	lines = append(lines, r.p.Sprintf("Player A: %s", r.participant(b.PlayerA)))
	lines = append(lines, r.p.Sprintf("Player B: %s", r.participant(b.PlayerB)))
	if len(b.Pending) > 0 {
		lines = append(lines, r.p.Sprintf("Submitted this round:"))
		for _, id := range []*int64{b.PlayerA, b.PlayerB} {
			if id == nil {
				continue
			}
			if n, ok := b.Pending[*id]; ok {
				lines = append(lines, "- "+strconv.FormatInt(*id, 10)+": "+strconv.Itoa(n))
			}
		}
	}
	lines = append(lines, r.p.Sprintf("Your skill cooldowns:"))
	lines = append(lines, cooldownLines(&b.Player, catalog)...)
	lines = append(lines, r.p.Sprintf("Opponent skill cooldowns:"))
	lines = append(lines, cooldownLines(&b.AI, catalog)...)
	if b.Seed != nil {
		lines = append(lines, r.p.Sprintf("Current seed: %s", strconv.FormatInt(*b.Seed, 10)))
	}
	if b.IsOver {
		lines = append(lines, r.p.Sprintf("Battle over, winner: %s", r.outcome(b.Winner)))
	}
	return strings.Join(lines, "\n")
}

// Ack is the acknowledgement sent when a participant's skill is locked in.
// A silenced participant is told the basic attack will be used instead.
func (r *Renderer) Ack(mention string, ordinal int, skillName string, silenced bool) string {
	text := r.p.Sprintf("Round started, waiting for the other player~") + "\n" +
		r.p.Sprintf("This round %s will use #%d %s", mention, ordinal, skillName)
	if silenced {
		text += "\n" + r.p.Sprintf("%s is silenced; [Basic Attack] will be used instead.", mention)
	}
	return text
}

// Seed describes the current seed setting.
func (r *Renderer) Seed(seed *int64) string {
	if seed == nil {
		return r.p.Sprintf("No seed set (system random).")
	}
	return r.p.Sprintf("Current seed: %s", strconv.FormatInt(*seed, 10))
}

// SeedSet confirms an explicit seed change.
func (r *Renderer) SeedSet(seed int64) string {
	return r.p.Sprintf("Seed set: %s (debug seed display enabled)", strconv.FormatInt(seed, 10))
}

func (r *Renderer) Started() string {
	return r.p.Sprintf(startText) + "\n\n" + r.p.Sprintf("A new battle was created for you.")
}

func (r *Renderer) Reset() string {
	return r.p.Sprintf("New battle created; both sides reset. Submit an action to fight!")
}

func (r *Renderer) Help() string { return r.p.Sprintf(helpText) }

// Skills lists the catalog with ordinals.
func (r *Renderer) Skills(catalog *skills.Catalog) string {
	lines := make([]string, 0, catalog.Len())
	for i, sk := range catalog.Skills() {
		lines = append(lines, r.p.Sprintf("#%d %s (cooldown %d)", i+1, sk.Name, sk.Cooldown))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) fighterLines(b *game.Battle) []string {
	return []string{r.fighterLine(&b.Player), r.fighterLine(&b.AI)}
}

func (r *Renderer) fighterLine(f *game.Fighter) string {
	var line string
	if f.Role == game.RolePlayer {
		line = r.p.Sprintf("Your HP: %d/%d", f.HP, f.MaxHP)
	} else {
		line = r.p.Sprintf("Opponent HP: %d/%d", f.HP, f.MaxHP)
	}
	var extras []string
	if f.Shield > 0 {
		extras = append(extras, r.p.Sprintf("shield %d", f.Shield))
	}
	for _, st := range f.Statuses {
		switch st.Name {
		case game.StatusPoison:
			extras = append(extras, r.p.Sprintf("poisoned %d rounds", st.Duration))
		case game.StatusSilence:
			extras = append(extras, r.p.Sprintf("silenced %d rounds", st.Duration))
		case game.StatusShield:
			extras = append(extras, r.p.Sprintf("shielded %d rounds", st.Duration))
		}
	}
	if len(extras) == 0 {
		return line
	}
	return line + " (" + strings.Join(extras, r.p.Sprintf(", ")) + ")"
}

func cooldownLines(f *game.Fighter, catalog *skills.Catalog) []string {
	var out []string
	for _, sk := range catalog.Skills() {
		if sk.ID == game.BasicAttackID {
			continue
		}
		out = append(out, "- "+sk.Name+": "+strconv.Itoa(f.Cooldowns[sk.ID]))
	}
	return out
}

func (r *Renderer) subject(role game.Role) string {
	if role == game.RoleAI {
		return r.p.Sprintf("AI")
	}
	return r.p.Sprintf("You")
}

func (r *Renderer) possessive(role game.Role) string {
	if role == game.RoleAI {
		return r.p.Sprintf("The AI's")
	}
	return r.p.Sprintf("Your")
}

func (r *Renderer) target(role game.Role) string {
	if role == game.RoleAI {
		return r.p.Sprintf("the opponent")
	}
	return r.p.Sprintf("you")
}

func (r *Renderer) targetSubject(role game.Role) string {
	if role == game.RoleAI {
		return r.p.Sprintf("The opponent")
	}
	return r.p.Sprintf("You")
}

func (r *Renderer) participant(id *int64) string {
	if id == nil {
		return r.p.Sprintf("not joined")
	}
	return strconv.FormatInt(*id, 10)
}

func (r *Renderer) outcome(o game.Outcome) string {
	switch o {
	case game.OutcomeDraw:
		return r.p.Sprintf("draw")
	case game.OutcomePlayer:
		return r.p.Sprintf("player")
	case game.OutcomeAI:
		return r.p.Sprintf("AI")
	}
	return ""
}
