// Package testutils provides shared creature fixtures for tests
package testutils

import (
	"github.com/KirkDiggler/rpg-statblock/internal/entities"
)

// GoblinJSON is a minimal creature export: every optional list is empty and
// the type line carries no subtype or alignment.
const GoblinJSON = `{
  "Source": "Basic Rules",
  "Description": "",
  "Player": "",
  "Version": "3.9.2",
  "ImageURL": "",
  "Name": "Goblin",
  "Type": "Small humanoid",
  "AC": {"Value": 15, "Notes": "(leather armor, shield)"},
  "HP": {"Value": 7, "Notes": "(2d6)"},
  "Speed": ["30 ft."],
  "Abilities": {"Str": 8, "Dex": 14, "Con": 10, "Int": 10, "Wis": 8, "Cha": 8},
  "Saves": [],
  "Skills": [],
  "DamageVulnerabilities": [],
  "DamageResistances": [],
  "DamageImmunities": [],
  "ConditionImmunities": [],
  "Senses": [],
  "Languages": [],
  "Challenge": "1/4",
  "Traits": [],
  "Actions": [],
  "BonusActions": [],
  "Reactions": [],
  "LegendaryActions": [],
  "MythicActions": []
}`

// GoblinMarkup is the statblock rendered from GoblinJSON
const GoblinMarkup = "```statblock\n" +
	"name: Goblin\n" +
	"columns: 2\n" +
	"ac: 15\n" +
	"hp: 7\n" +
	"hit_dice: 2d6\n" +
	"speed: 30 ft.\n" +
	"stats: [8, 14, 10, 10, 8, 8]\n" +
	"cr: \"1/4\"\n" +
	"```\n"

// NewGoblin returns the domain model equivalent of GoblinJSON
func NewGoblin() *entities.Creature {
	return &entities.Creature{
		Source:    "Basic Rules",
		Version:   "3.9.2",
		Name:      "Goblin",
		Type:      "Small humanoid",
		AC:        entities.ValueNotes{Value: 15, Notes: "(leather armor, shield)"},
		HP:        entities.ValueNotes{Value: 7, Notes: "(2d6)"},
		Speed:     []string{"30 ft."},
		Abilities: entities.Abilities{Str: 8, Dex: 14, Con: 10, Int: 10, Wis: 8, Cha: 8},
		Challenge: "1/4",
	}
}
