package textfmt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-statblock/internal/pkg/textfmt"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"single word", "large", "Large"},
		{"multiple words", "chaotic evil", "Chaotic Evil"},
		{"shouting", "ANY RACE", "Any Race"},
		{"mixed case", "lAWFUL gOOD", "Lawful Good"},
		{"whitespace preserved", "  any   race ", "  Any   Race "},
		{"punctuation and digits", "darkvision 60 ft., passive perception 10", "Darkvision 60 Ft., Passive Perception 10"},
		{"hyphen is not a word boundary", "half-orc", "Half-orc"},
		{"empty", "", ""},
		{"only spaces", "   ", "   "},
		{"non ascii", "élan vital", "Élan Vital"},
		{"tabs and newlines", "a\tb\nc", "A\tB\nC"},
		{"leading parenthesis", "(blind beyond", "(Blind Beyond"},
		{"leading quote", `"any" race`, `"Any" Race`},
		{"mixed case words", "passive Perception 10", "Passive Perception 10"},
		{"ordinal", "3rd level", "3rd Level"},
		{"punctuation only", "-- ...", "-- ..."},
		{
			"senses with parenthetical",
			"blindsight 30 ft. (blind beyond this radius), darkvision 60 ft.",
			"Blindsight 30 Ft. (Blind Beyond This Radius), Darkvision 60 Ft.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, textfmt.TitleCase(tc.input))
		})
	}
}

func TestTitleCaseIsIdempotent(t *testing.T) {
	inputs := []string{
		"chaotic evil",
		"Large beast (any race), chaotic evil",
		"blindsight 30 ft. (blind beyond this radius), passive perception 14",
		"(blind beyond this radius)",
		"3RD level",
		"ÉLAN vital",
		"",
	}

	for _, input := range inputs {
		once := textfmt.TitleCase(input)
		assert.Equal(t, once, textfmt.TitleCase(once), "input %q", input)
	}
}

func TestLower(t *testing.T) {
	assert.Equal(t, "perception", textfmt.Lower("Perception"))
	assert.Equal(t, "sleight of hand", textfmt.Lower("Sleight of Hand"))
	assert.Equal(t, "", textfmt.Lower(""))
}

func TestStripParens(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"both", "(8d10+24)", "8d10+24"},
		{"neither", "10", "10"},
		{"leading only", "(2d6", "2d6"},
		{"trailing only", "2d6)", "2d6"},
		{"only one pair removed", "((2d6))", "(2d6)"},
		{"empty", "", ""},
		{"just parens", "()", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, textfmt.StripParens(tc.input))
		})
	}
}

func TestEscapeNewlines(t *testing.T) {
	assert.Equal(t, `line one\nline two`, textfmt.EscapeNewlines("line one\nline two"))
	assert.Equal(t, `a\n\nb`, textfmt.EscapeNewlines("a\n\nb"))
	assert.Equal(t, "no newline", textfmt.EscapeNewlines("no newline"))
	assert.NotContains(t, textfmt.EscapeNewlines("x\ny\nz"), "\n")
}

func TestJoinList(t *testing.T) {
	assert.Equal(t, "Common, Goblin", textfmt.JoinList([]string{"Common", "Goblin"}))
	assert.Equal(t, "Common", textfmt.JoinList([]string{"Common"}))
	assert.Equal(t, "", textfmt.JoinList(nil))
}
