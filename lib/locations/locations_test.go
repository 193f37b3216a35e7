package locations

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryIsWellFormed(t *testing.T) {
	seenKeys := map[string]bool{}
	seenCodes := map[string]bool{}

	for _, l := range All {
		require.NotEmpty(t, l.Key)
		require.NotEmpty(t, l.Name)
		require.Len(t, l.Code, 2, "locationNum for %s", l.Key)
		require.NotEmpty(t, l.HoursAnchors, "anchors for %s", l.Key)

		require.False(t, seenKeys[l.Key], "duplicate key %s", l.Key)
		require.False(t, seenCodes[l.Code], "duplicate code %s", l.Code)
		seenKeys[l.Key] = true
		seenCodes[l.Code] = true
	}
}

func TestKindPeriods(t *testing.T) {
	require.Equal(t, 4, FourMeal.Periods())
	require.Equal(t, 2, TwoMeal.Periods())
	require.Equal(t, 1, SingleMeal.Periods())
}

func TestDiningHallsUseDiningHours(t *testing.T) {
	for _, l := range All {
		if l.Kind == FourMeal {
			require.Equal(t, DiningHours, l.HoursStyle, l.Key)
			require.NotEmpty(t, l.BusynessName, l.Key)
		}
	}
}

func TestGet(t *testing.T) {
	l, ok := Get("ninelewis")
	require.True(t, ok)
	require.Equal(t, "40", l.Code)

	_, ok = Get("nowhere")
	require.False(t, ok)
}
