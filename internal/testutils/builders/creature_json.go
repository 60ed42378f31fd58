// Package builders provides test data builders for creature JSON documents
package builders

import (
	"fmt"

	"github.com/tidwall/sjson"

	"github.com/KirkDiggler/rpg-statblock/internal/testutils"
)

// CreatureJSONBuilder edits a creature export document one path at a time.
// It starts from testutils.GoblinJSON.
type CreatureJSONBuilder struct {
	doc string
	err error
}

// NewCreatureJSONBuilder creates a builder seeded with the goblin fixture
func NewCreatureJSONBuilder() *CreatureJSONBuilder {
	return &CreatureJSONBuilder{doc: testutils.GoblinJSON}
}

// With sets the value at path, e.g. "Name", "HP.Notes" or "Traits.-1" to append
func (b *CreatureJSONBuilder) With(path string, value interface{}) *CreatureJSONBuilder {
	if b.err == nil {
		b.doc, b.err = sjson.Set(b.doc, path, value)
	}
	return b
}

// WithRaw sets raw JSON text at path
func (b *CreatureJSONBuilder) WithRaw(path, raw string) *CreatureJSONBuilder {
	if b.err == nil {
		b.doc, b.err = sjson.SetRaw(b.doc, path, raw)
	}
	return b
}

// Without deletes path from the document
func (b *CreatureJSONBuilder) Without(path string) *CreatureJSONBuilder {
	if b.err == nil {
		b.doc, b.err = sjson.Delete(b.doc, path)
	}
	return b
}

// WithContent appends a Name/Content entry to one of the action-like lists
func (b *CreatureJSONBuilder) WithContent(list, name, content string) *CreatureJSONBuilder {
	return b.With(list+".-1", map[string]interface{}{"Name": name, "Content": content})
}

// WithModifier appends a Name/Modifier entry to Saves or Skills
func (b *CreatureJSONBuilder) WithModifier(list, name string, modifier uint64) *CreatureJSONBuilder {
	return b.With(list+".-1", map[string]interface{}{"Name": name, "Modifier": modifier})
}

// Build returns the document. It panics if an edit failed, which only
// happens when a test passes a malformed path.
func (b *CreatureJSONBuilder) Build() []byte {
	if b.err != nil {
		panic(fmt.Sprintf("creature json builder: %v", b.err))
	}
	return []byte(b.doc)
}
