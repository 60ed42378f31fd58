// Package conversion maps Improved Initiative creature JSON onto entities.Creature
package conversion

import (
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/KirkDiggler/rpg-statblock/internal/entities"
	"github.com/KirkDiggler/rpg-statblock/internal/errors"
)

type creatureDecoder struct{}

// NewCreatureDecoder creates a new creature decoder
func NewCreatureDecoder() CreatureDecoder {
	return &creatureDecoder{}
}

// Decode parses data and looks up every schema key explicitly
func (d *creatureDecoder) Decode(data []byte) (*entities.Creature, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.Parse("input is not valid JSON")
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, errors.Schemaf("top level value must be an object, got %s", kindOf(root))
	}

	r := &fieldReader{vb: errors.NewValidationBuilderFor(errors.CodeSchema)}

	creature := &entities.Creature{
		Source:      r.str(root, "", "Source", true),
		Description: r.str(root, "", "Description", true),
		Player:      r.str(root, "", "Player", true),
		Version:     r.str(root, "", "Version", true),
		ImageURL:    r.str(root, "", "ImageURL", true),

		Name: r.str(root, "", "Name", true),
		Type: r.str(root, "", "Type", true),

		AC:        r.valueNotes(root, "AC"),
		HP:        r.valueNotes(root, "HP"),
		Speed:     r.strList(root, "Speed", true),
		Abilities: r.abilities(root, "Abilities"),

		Saves:  r.modifierList(root, "Saves"),
		Skills: r.modifierList(root, "Skills"),

		DamageVulnerabilities: r.strList(root, "DamageVulnerabilities", true),
		DamageResistances:     r.strList(root, "DamageResistances", true),
		DamageImmunities:      r.strList(root, "DamageImmunities", true),
		ConditionImmunities:   r.strList(root, "ConditionImmunities", true),
		Senses:                r.strList(root, "Senses", true),
		Languages:             r.strList(root, "Languages", true),

		Challenge: r.str(root, "", "Challenge", true),

		Traits:           r.contentList(root, "Traits"),
		Actions:          r.contentList(root, "Actions"),
		BonusActions:     r.contentList(root, "BonusActions"),
		Reactions:        r.contentList(root, "Reactions"),
		LegendaryActions: r.contentList(root, "LegendaryActions"),
		MythicActions:    r.contentList(root, "MythicActions"),
	}

	if err := r.vb.Build(); err != nil {
		return nil, err
	}

	return creature, nil
}

// fieldReader records every shape problem instead of stopping at the first
type fieldReader struct {
	vb *errors.ValidationBuilder
}

func (r *fieldReader) lookup(obj gjson.Result, prefix, key string, required bool) (gjson.Result, bool) {
	res := obj.Get(key)
	if !res.Exists() {
		if required {
			r.vb.RequiredField(fieldName(prefix, key))
		}
		return res, false
	}
	return res, true
}

func (r *fieldReader) str(obj gjson.Result, prefix, key string, required bool) string {
	res, ok := r.lookup(obj, prefix, key, required)
	if !ok {
		return ""
	}
	return r.asString(res, fieldName(prefix, key))
}

func (r *fieldReader) asString(res gjson.Result, field string) string {
	if res.Type != gjson.String {
		r.vb.InvalidField(field, "expected string, got "+kindOf(res))
		return ""
	}
	return res.Str
}

func (r *fieldReader) unsigned(obj gjson.Result, prefix, key string) uint64 {
	res, ok := r.lookup(obj, prefix, key, true)
	if !ok {
		return 0
	}

	field := fieldName(prefix, key)
	if res.Type != gjson.Number {
		r.vb.InvalidField(field, "expected unsigned integer, got "+kindOf(res))
		return 0
	}

	v, err := strconv.ParseUint(res.Raw, 10, 64)
	if err != nil {
		r.vb.InvalidField(field, "expected unsigned integer, got "+res.Raw)
		return 0
	}
	return v
}

func (r *fieldReader) object(obj gjson.Result, prefix, key string) (gjson.Result, bool) {
	res, ok := r.lookup(obj, prefix, key, true)
	if !ok {
		return res, false
	}
	if !res.IsObject() {
		r.vb.InvalidField(fieldName(prefix, key), "expected object, got "+kindOf(res))
		return res, false
	}
	return res, true
}

func (r *fieldReader) array(obj gjson.Result, key string, required bool) ([]gjson.Result, bool) {
	res, ok := r.lookup(obj, "", key, required)
	if !ok {
		return nil, false
	}
	if !res.IsArray() {
		r.vb.InvalidField(key, "expected array, got "+kindOf(res))
		return nil, false
	}
	return res.Array(), true
}

func (r *fieldReader) valueNotes(root gjson.Result, key string) entities.ValueNotes {
	obj, ok := r.object(root, "", key)
	if !ok {
		return entities.ValueNotes{}
	}
	return entities.ValueNotes{
		Value: r.unsigned(obj, key, "Value"),
		Notes: r.str(obj, key, "Notes", true),
	}
}

func (r *fieldReader) abilities(root gjson.Result, key string) entities.Abilities {
	obj, ok := r.object(root, "", key)
	if !ok {
		return entities.Abilities{}
	}
	return entities.Abilities{
		Str: r.unsigned(obj, key, "Str"),
		Dex: r.unsigned(obj, key, "Dex"),
		Con: r.unsigned(obj, key, "Con"),
		Int: r.unsigned(obj, key, "Int"),
		Wis: r.unsigned(obj, key, "Wis"),
		Cha: r.unsigned(obj, key, "Cha"),
	}
}

func (r *fieldReader) strList(root gjson.Result, key string, required bool) []string {
	items, ok := r.array(root, key, required)
	if !ok {
		return nil
	}

	out := make([]string, 0, len(items))
	for i, item := range items {
		out = append(out, r.asString(item, indexName(key, i)))
	}
	return out
}

func (r *fieldReader) modifierList(root gjson.Result, key string) []entities.ModifierEntry {
	items, ok := r.array(root, key, false)
	if !ok {
		return nil
	}

	out := make([]entities.ModifierEntry, 0, len(items))
	for i, item := range items {
		prefix := indexName(key, i)
		if !item.IsObject() {
			r.vb.InvalidField(prefix, "expected object, got "+kindOf(item))
			continue
		}
		out = append(out, entities.ModifierEntry{
			Name:     r.str(item, prefix, "Name", true),
			Modifier: r.unsigned(item, prefix, "Modifier"),
		})
	}
	return out
}

func (r *fieldReader) contentList(root gjson.Result, key string) []entities.ContentEntry {
	items, ok := r.array(root, key, false)
	if !ok {
		return nil
	}

	out := make([]entities.ContentEntry, 0, len(items))
	for i, item := range items {
		prefix := indexName(key, i)
		if !item.IsObject() {
			r.vb.InvalidField(prefix, "expected object, got "+kindOf(item))
			continue
		}
		out = append(out, entities.ContentEntry{
			Name:    r.str(item, prefix, "Name", true),
			Content: r.str(item, prefix, "Content", true),
		})
	}
	return out
}

func fieldName(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func indexName(key string, i int) string {
	return fmt.Sprintf("%s[%d]", key, i)
}

func kindOf(res gjson.Result) string {
	switch {
	case res.IsObject():
		return "object"
	case res.IsArray():
		return "array"
	}

	switch res.Type {
	case gjson.String:
		return "string"
	case gjson.Number:
		return "number"
	case gjson.True, gjson.False:
		return "boolean"
	case gjson.Null:
		return "null"
	default:
		return "unknown"
	}
}
