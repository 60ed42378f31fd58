// Package hitdice parses hit dice expressions such as "8d10+24" and rolls them
package hitdice

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-statblock/internal/errors"
)

//go:generate mockgen -destination=mock/mock.go -package=hitdicemock github.com/KirkDiggler/rpg-statblock/internal/pkg/hitdice Roller

var expressionRegex = regexp.MustCompile(`^\s*(\d+)\s*[dD]\s*(\d+)\s*(?:([+-])\s*(\d+))?\s*$`)

// Expression is a parsed hit dice expression: Count dice of Size sides plus Modifier
type Expression struct {
	Count    int
	Size     int
	Modifier int
}

// Parse parses "NdS", "NdS+M" or "NdS-M". Whitespace around the parts is ignored.
func Parse(s string) (Expression, error) {
	matches := expressionRegex.FindStringSubmatch(s)
	if matches == nil {
		return Expression{}, errors.InvalidArgumentf("invalid hit dice expression: %q (expected format: NdS+M)", s)
	}

	count, err := strconv.Atoi(matches[1])
	if err != nil {
		return Expression{}, errors.InvalidArgumentf("invalid dice count in hit dice: %q", s)
	}
	size, err := strconv.Atoi(matches[2])
	if err != nil {
		return Expression{}, errors.InvalidArgumentf("invalid die size in hit dice: %q", s)
	}
	if count <= 0 || size <= 0 {
		return Expression{}, errors.InvalidArgumentf("dice count and size must be positive: %q", s)
	}

	var modifier int
	if matches[3] != "" {
		modifier, err = strconv.Atoi(matches[4])
		if err != nil {
			return Expression{}, errors.InvalidArgumentf("invalid modifier in hit dice: %q", s)
		}
		if matches[3] == "-" {
			modifier = -modifier
		}
	}

	return Expression{Count: count, Size: size, Modifier: modifier}, nil
}

// String formats the expression in canonical NdS+M form
func (e Expression) String() string {
	switch {
	case e.Modifier > 0:
		return fmt.Sprintf("%dd%d+%d", e.Count, e.Size, e.Modifier)
	case e.Modifier < 0:
		return fmt.Sprintf("%dd%d-%d", e.Count, e.Size, -e.Modifier)
	default:
		return fmt.Sprintf("%dd%d", e.Count, e.Size)
	}
}

// Average returns the rounded-down average, the value printed in published statblocks
func (e Expression) Average() int {
	return e.Count*(e.Size+1)/2 + e.Modifier
}

// Roll rolls the expression with r. A creature always has at least 1 hit point.
func (e Expression) Roll(r Roller) (int, error) {
	total, err := r.Roll(e.Count, e.Size)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to roll %s", e)
	}

	total += e.Modifier
	if total < 1 {
		total = 1
	}
	return total, nil
}

// Roller rolls count dice of the given size and returns their sum
type Roller interface {
	Roll(count, size int) (int, error)
}

type toolkitRoller struct{}

// NewToolkitRoller returns a Roller backed by rpg-toolkit dice
func NewToolkitRoller() Roller {
	return &toolkitRoller{}
}

func (r *toolkitRoller) Roll(count, size int) (int, error) {
	roll, err := dice.NewRoll(count, size)
	if err != nil {
		return 0, errors.Wrap(err, "failed to create dice roll")
	}
	return int(roll.GetValue()), nil
}
