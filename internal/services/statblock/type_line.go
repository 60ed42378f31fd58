package statblock

import (
	"regexp"

	"github.com/KirkDiggler/rpg-statblock/internal/pkg/textfmt"
)

// wordClass is a Unicode word character: letters, marks, decimal digits and
// connector punctuation such as "_"
const wordClass = `\p{L}\p{M}\p{Nd}\p{Pc}`

// typeLineRegex matches "<size> <type> (<subtype>), <alignment>"
var typeLineRegex = regexp.MustCompile(
	`^([` + wordClass + `]+) ([` + wordClass + `]+) \(([` + wordClass + ` ]+)\), ([` + wordClass + ` ]+)$`)

// TypeLine is a decomposed creature type string with every part title-cased
type TypeLine struct {
	Size      string
	Type      string
	Subtype   string
	Alignment string
}

// ParseTypeLine splits s into its four parts. It reports false when s does
// not have the expected shape; callers omit the parts rather than fail.
func ParseTypeLine(s string) (*TypeLine, bool) {
	matches := typeLineRegex.FindStringSubmatch(s)
	if matches == nil {
		return nil, false
	}

	return &TypeLine{
		Size:      textfmt.TitleCase(matches[1]),
		Type:      textfmt.TitleCase(matches[2]),
		Subtype:   textfmt.TitleCase(matches[3]),
		Alignment: textfmt.TitleCase(matches[4]),
	}, true
}
