package statblock

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-statblock/internal/entities"
	"github.com/KirkDiggler/rpg-statblock/internal/pkg/textfmt"
)

// section is one key of the markup. Sections are emitted in table order and
// only when present reports true.
type section struct {
	key     string
	present func(v *view) bool
	render  func(w *lineWriter, v *view)
}

// sections is the emission order consumers of the markup depend on
var sections = []section{
	scalar("name", func(c *entities.Creature) string { return c.Name }),

	typePart("size", func(t *TypeLine) string { return t.Size }),
	typePart("type", func(t *TypeLine) string { return t.Type }),
	typePart("subtype", func(t *TypeLine) string { return t.Subtype }),
	typePart("alignment", func(t *TypeLine) string { return t.Alignment }),

	scalar("columns", func(*entities.Creature) string { return strconv.Itoa(Columns) }),
	scalar("ac", func(c *entities.Creature) string { return formatUint(c.AC.Value) }),
	scalar("hp", func(c *entities.Creature) string { return formatUint(c.HP.Value) }),
	scalar("hit_dice", func(c *entities.Creature) string { return textfmt.StripParens(c.HP.Notes) }),
	scalar("speed", firstSpeed),
	scalar("stats", formatStats),

	modifiers("saves", func(c *entities.Creature) []entities.ModifierEntry { return c.Saves }),
	modifiers("skillsaves", func(c *entities.Creature) []entities.ModifierEntry { return c.Skills }),

	joined("damage_vulnerabilities", func(c *entities.Creature) []string { return c.DamageVulnerabilities }, nil),
	joined("damage_resistances", func(c *entities.Creature) []string { return c.DamageResistances }, nil),
	joined("damage_immunities", func(c *entities.Creature) []string { return c.DamageImmunities }, nil),
	joined("condition_immunities", func(c *entities.Creature) []string { return c.ConditionImmunities }, nil),
	joined("senses", func(c *entities.Creature) []string { return c.Senses }, textfmt.TitleCase),
	joined("languages", func(c *entities.Creature) []string { return c.Languages }, nil),

	{
		key:     "cr",
		present: always,
		render: func(w *lineWriter, v *view) {
			w.quoted("cr", v.creature.Challenge)
		},
	},

	contents("traits", func(c *entities.Creature) []entities.ContentEntry { return c.Traits }),
	contents("actions", func(c *entities.Creature) []entities.ContentEntry { return c.Actions }),
	contents("legendary_actions", func(c *entities.Creature) []entities.ContentEntry { return c.LegendaryActions }),
	contents("reactions", func(c *entities.Creature) []entities.ContentEntry { return c.Reactions }),
	contents("mythic_actions", func(c *entities.Creature) []entities.ContentEntry { return c.MythicActions }),
}

// Keys returns the section keys in emission order
func Keys() []string {
	keys := make([]string, 0, len(sections))
	for _, s := range sections {
		keys = append(keys, s.key)
	}
	return keys
}

func always(*view) bool { return true }

func scalar(key string, value func(c *entities.Creature) string) section {
	return section{
		key:     key,
		present: always,
		render: func(w *lineWriter, v *view) {
			w.field(key, value(v.creature))
		},
	}
}

func typePart(key string, value func(t *TypeLine) string) section {
	return section{
		key:     key,
		present: func(v *view) bool { return v.typeLine != nil },
		render: func(w *lineWriter, v *view) {
			w.field(key, value(v.typeLine))
		},
	}
}

func modifiers(key string, list func(c *entities.Creature) []entities.ModifierEntry) section {
	return section{
		key:     key,
		present: func(v *view) bool { return len(list(v.creature)) > 0 },
		render: func(w *lineWriter, v *view) {
			w.line(key + ":")
			for _, entry := range list(v.creature) {
				w.line("  - " + textfmt.Lower(entry.Name) + ": " + formatUint(entry.Modifier))
			}
		},
	}
}

// joined renders a plain list on one line. format, when set, is applied to
// the joined text.
func joined(key string, list func(c *entities.Creature) []string, format func(string) string) section {
	return section{
		key:     key,
		present: func(v *view) bool { return len(list(v.creature)) > 0 },
		render: func(w *lineWriter, v *view) {
			text := textfmt.JoinList(list(v.creature))
			if format != nil {
				text = format(text)
			}
			w.field(key, text)
		},
	}
}

func contents(key string, list func(c *entities.Creature) []entities.ContentEntry) section {
	return section{
		key:     key,
		present: func(v *view) bool { return len(list(v.creature)) > 0 },
		render: func(w *lineWriter, v *view) {
			w.line(key + ":")
			for _, entry := range list(v.creature) {
				w.quoted("  - name", entry.Name)
				w.quoted("    desc", textfmt.EscapeNewlines(entry.Content))
			}
		},
	}
}

func firstSpeed(c *entities.Creature) string {
	if len(c.Speed) == 0 {
		return ""
	}
	return c.Speed[0]
}

func formatStats(c *entities.Creature) string {
	scores := c.Abilities.Ordered()
	parts := make([]string, len(scores))
	for i, score := range scores {
		parts[i] = formatUint(score)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
