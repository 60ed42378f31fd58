package entities

// Creature is one parsed creature description in the Improved Initiative
// export schema
type Creature struct {
	Source      string
	Description string
	Player      string
	Version     string
	ImageURL    string

	Name string
	// Type is the raw "<size> <type> (<subtype>), <alignment>" line
	Type string

	AC        ValueNotes
	HP        ValueNotes
	Speed     []string
	Abilities Abilities

	Saves  []ModifierEntry
	Skills []ModifierEntry

	DamageVulnerabilities []string
	DamageResistances     []string
	DamageImmunities      []string
	ConditionImmunities   []string
	Senses                []string
	Languages             []string

	Challenge string

	Traits           []ContentEntry
	Actions          []ContentEntry
	BonusActions     []ContentEntry
	Reactions        []ContentEntry
	LegendaryActions []ContentEntry
	MythicActions    []ContentEntry
}

// ValueNotes is a number with free-text notes, e.g. AC 17 "(natural armor)"
// or HP 52 "(8d10+8)"
type ValueNotes struct {
	Value uint64
	Notes string
}

// Abilities holds the six ability scores
type Abilities struct {
	Str uint64
	Dex uint64
	Con uint64
	Int uint64
	Wis uint64
	Cha uint64
}

// Ordered returns the scores in Str, Dex, Con, Int, Wis, Cha order
func (a Abilities) Ordered() []uint64 {
	return []uint64{a.Str, a.Dex, a.Con, a.Int, a.Wis, a.Cha}
}

// ModifierEntry is a saving throw or skill bonus
type ModifierEntry struct {
	Name     string
	Modifier uint64
}

// ContentEntry is a named block of free text such as a trait or an action
type ContentEntry struct {
	Name    string
	Content string
}
