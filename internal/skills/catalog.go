// Package skills loads the skill table once at startup and serves lookups by
// identifier and by 1-based ordinal.
package skills

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ericogr/duel-arena/internal/game"

	"gopkg.in/yaml.v3"
)

var (
	// ErrConfig wraps every problem found while loading the skill table.
	ErrConfig = errors.New("skill configuration error")
	// ErrOrdinalOutOfRange is returned for skill numbers outside 1..Len().
	ErrOrdinalOutOfRange = errors.New("invalid skill number")
	// ErrUnknownSkill is returned when an identifier is not in the catalog.
	ErrUnknownSkill = errors.New("unknown skill")
)

// Catalog is immutable after Load.
type Catalog struct {
	byID  map[string]game.Skill
	order []string
}

type skillEntry struct {
	Name        *string  `yaml:"name"`
	Type        *string  `yaml:"type"`
	CD          *int     `yaml:"cd"`
	Weight      int      `yaml:"weight"`
	DamageMin   int      `yaml:"damage_min"`
	DamageMax   int      `yaml:"damage_max"`
	Status      *string  `yaml:"status"`
	Duration    int      `yaml:"duration"`
	Value       int      `yaml:"value"`
	Chance      *float64 `yaml:"chance"`
	ShieldValue int      `yaml:"shield_value"`
}

// LoadFile reads and validates the skill table at path. YAML and JSON documents
// are both accepted.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read skill file %s: %v", ErrConfig, path, err)
	}
	c, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse builds a catalog from a document whose top level maps skill ids to
// entries. Document order defines the ordinals.
func Parse(raw []byte) (*Catalog, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: malformed skill table: %v", ErrConfig, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: skill table is empty", ErrConfig)
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: skill table must be a mapping of skill id to definition", ErrConfig)
	}

	c := &Catalog{byID: make(map[string]game.Skill, len(root.Content)/2)}
	for i := 0; i+1 < len(root.Content); i += 2 {
		id := strings.TrimSpace(root.Content[i].Value)
		if id == "" {
			return nil, fmt.Errorf("%w: empty skill id at line %d", ErrConfig, root.Content[i].Line)
		}
		if _, dup := c.byID[id]; dup {
			return nil, fmt.Errorf("%w: duplicate skill id '%s'", ErrConfig, id)
		}
		var e skillEntry
		if err := root.Content[i+1].Decode(&e); err != nil {
			return nil, fmt.Errorf("%w: skill '%s': %v", ErrConfig, id, err)
		}
		s, err := e.toSkill(id)
		if err != nil {
			return nil, err
		}
		c.byID[id] = s
		c.order = append(c.order, id)
	}

	basic, ok := c.byID[game.BasicAttackID]
	if !ok {
		return nil, fmt.Errorf("%w: skill table is missing %s", ErrConfig, game.BasicAttackID)
	}
	if basic.Cooldown != 0 {
		return nil, fmt.Errorf("%w: %s must have cd 0", ErrConfig, game.BasicAttackID)
	}
	return c, nil
}

func (e skillEntry) toSkill(id string) (game.Skill, error) {
	fail := func(format string, args ...interface{}) (game.Skill, error) {
		return game.Skill{}, fmt.Errorf("%w: skill '%s': %s", ErrConfig, id, fmt.Sprintf(format, args...))
	}
	if e.Name == nil || strings.TrimSpace(*e.Name) == "" {
		return fail("missing 'name'")
	}
	if e.Type == nil {
		return fail("missing 'type'")
	}
	kind := game.SkillKind(*e.Type)
	if !kind.Valid() {
		return fail("unknown type '%s'", *e.Type)
	}
	if e.CD == nil {
		return fail("missing 'cd'")
	}
	if *e.CD < 0 || e.Weight < 0 || e.Duration < 0 {
		return fail("cd, weight and duration must not be negative")
	}
	chance := 1.0
	if e.Chance != nil {
		chance = *e.Chance
	}
	if chance < 0 || chance > 1 {
		return fail("chance %v outside [0,1]", chance)
	}
	s := game.Skill{
		ID:          id,
		Name:        *e.Name,
		Kind:        kind,
		Cooldown:    *e.CD,
		Weight:      e.Weight,
		DamageMin:   e.DamageMin,
		DamageMax:   e.DamageMax,
		Duration:    e.Duration,
		Value:       e.Value,
		Chance:      chance,
		ShieldValue: e.ShieldValue,
	}
	if e.Status != nil {
		s.Status = strings.TrimSpace(*e.Status)
	}
	switch kind {
	case game.SkillDamage:
		if s.DamageMin < 0 || s.DamageMax < s.DamageMin {
			return fail("damage range [%d,%d] is invalid", s.DamageMin, s.DamageMax)
		}
	case game.SkillApplyStatus:
		if s.Status == "" {
			return fail("apply_status requires 'status'")
		}
	case game.SkillAddShield:
		if s.ShieldValue < 0 {
			return fail("shield_value must not be negative")
		}
	}
	return s, nil
}

// Get returns the skill with the given id.
func (c *Catalog) Get(id string) (game.Skill, bool) {
	s, ok := c.byID[id]
	return s, ok
}

// MustGet returns the skill or panics. Only used for ids already validated
// against the catalog.
func (c *Catalog) MustGet(id string) game.Skill {
	s, ok := c.byID[id]
	if !ok {
		panic(fmt.Sprintf("skills: %s %q", ErrUnknownSkill, id))
	}
	return s
}

// BasicAttack returns the distinguished fallback skill.
func (c *Catalog) BasicAttack() game.Skill { return c.byID[game.BasicAttackID] }

// IDs returns skill ids in ordinal order.
func (c *Catalog) IDs() []string { return append([]string(nil), c.order...) }

// Skills returns every skill in ordinal order.
func (c *Catalog) Skills() []game.Skill {
	out := make([]game.Skill, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

func (c *Catalog) Len() int { return len(c.order) }

// Number returns the 1-based ordinal of a skill id.
func (c *Catalog) Number(id string) (int, error) {
	for i, k := range c.order {
		if k == id {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownSkill, id)
}

// ID maps an ordinal back to its skill id.
func (c *Catalog) ID(number int) (string, error) {
	if number < 1 || number > len(c.order) {
		return "", fmt.Errorf("%w: %d", ErrOrdinalOutOfRange, number)
	}
	return c.order[number-1], nil
}
