package hitdice_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-statblock/internal/errors"
	"github.com/KirkDiggler/rpg-statblock/internal/pkg/hitdice"
	hitdicemock "github.com/KirkDiggler/rpg-statblock/internal/pkg/hitdice/mock"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		input    string
		expected hitdice.Expression
	}{
		{"2d6", hitdice.Expression{Count: 2, Size: 6}},
		{"8d10+24", hitdice.Expression{Count: 8, Size: 10, Modifier: 24}},
		{"3d8-3", hitdice.Expression{Count: 3, Size: 8, Modifier: -3}},
		{"18d12 + 90", hitdice.Expression{Count: 18, Size: 12, Modifier: 90}},
		{" 1D4 ", hitdice.Expression{Count: 1, Size: 4}},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			expr, err := hitdice.Parse(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, expr)
		})
	}
}

func TestParseRejectsInvalidExpressions(t *testing.T) {
	inputs := []string{"", "10", "d6", "2d", "0d6", "2d0", "2d6+", "2d6*2", "(2d6)", "two d six"}

	for _, input := range inputs {
		t.Run(fmt.Sprintf("%q", input), func(t *testing.T) {
			_, err := hitdice.Parse(input)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}

func TestExpressionString(t *testing.T) {
	assert.Equal(t, "2d6", hitdice.Expression{Count: 2, Size: 6}.String())
	assert.Equal(t, "8d10+24", hitdice.Expression{Count: 8, Size: 10, Modifier: 24}.String())
	assert.Equal(t, "3d8-3", hitdice.Expression{Count: 3, Size: 8, Modifier: -3}.String())
}

func TestExpressionAverage(t *testing.T) {
	assert.Equal(t, 7, hitdice.Expression{Count: 2, Size: 6}.Average())
	assert.Equal(t, 68, hitdice.Expression{Count: 8, Size: 10, Modifier: 24}.Average())
	assert.Equal(t, 10, hitdice.Expression{Count: 3, Size: 8, Modifier: -3}.Average())
	assert.Equal(t, 2, hitdice.Expression{Count: 1, Size: 4}.Average())
}

func TestExpressionRoll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	roller := hitdicemock.NewMockRoller(ctrl)

	t.Run("adds the modifier", func(t *testing.T) {
		roller.EXPECT().Roll(8, 10).Return(40, nil)

		total, err := hitdice.Expression{Count: 8, Size: 10, Modifier: 24}.Roll(roller)
		require.NoError(t, err)
		assert.Equal(t, 64, total)
	})

	t.Run("never drops below one", func(t *testing.T) {
		roller.EXPECT().Roll(1, 4).Return(1, nil)

		total, err := hitdice.Expression{Count: 1, Size: 4, Modifier: -5}.Roll(roller)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
	})

	t.Run("propagates roller errors", func(t *testing.T) {
		roller.EXPECT().Roll(2, 6).Return(0, fmt.Errorf("no dice"))

		_, err := hitdice.Expression{Count: 2, Size: 6}.Roll(roller)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to roll 2d6")
	})
}

func TestToolkitRoller(t *testing.T) {
	roller := hitdice.NewToolkitRoller()

	for i := 0; i < 50; i++ {
		total, err := roller.Roll(2, 6)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, total, 2)
		assert.LessOrEqual(t, total, 12)
	}
}
