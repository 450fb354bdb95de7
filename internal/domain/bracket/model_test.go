package bracket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMapOrdersByStart(t *testing.T) {
	got := FromMap(map[string][2]int{
		"late":  {6, 10},
		"early": {1, 5},
	})
	require.Len(t, got, 2)
	assert.Equal(t, "early", got[0].Name)
	assert.Equal(t, "late", got[1].Name)
}

func TestValidatePartition(t *testing.T) {
	tests := []struct {
		name     string
		brackets []Bracket
		season   int
		wantErr  bool
	}{
		{
			name:     "contiguous",
			brackets: []Bracket{{"1", 1, 10}, {"2", 11, 20}, {"3", 21, 29}, {"4", 30, 38}},
			season:   38,
		},
		{
			name:     "gap",
			brackets: []Bracket{{"1", 1, 10}, {"2", 12, 38}},
			season:   38,
			wantErr:  true,
		},
		{
			name:     "overlap",
			brackets: []Bracket{{"1", 1, 10}, {"2", 10, 38}},
			season:   38,
			wantErr:  true,
		},
		{
			name:     "does not start at one",
			brackets: []Bracket{{"1", 2, 38}},
			season:   38,
			wantErr:  true,
		},
		{
			name:     "short of season",
			brackets: []Bracket{{"1", 1, 30}},
			season:   38,
			wantErr:  true,
		},
		{
			name:     "inverted",
			brackets: []Bracket{{"1", 5, 1}},
			season:   5,
			wantErr:  true,
		},
		{
			name:     "unsafe name",
			brackets: []Bracket{{"a b", 1, 38}},
			season:   38,
			wantErr:  true,
		},
		{
			name:    "empty",
			season:  38,
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePartition(tc.brackets, tc.season)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestClip(t *testing.T) {
	start, end, ok := Bracket{Name: "3", Start: 21, End: 29}.Clip(25)
	assert.True(t, ok)
	assert.Equal(t, 21, start)
	assert.Equal(t, 25, end)

	_, _, ok = Bracket{Name: "4", Start: 30, End: 38}.Clip(25)
	assert.False(t, ok)
}

func TestPrizeTotals(t *testing.T) {
	standings := []Standing{
		{Bracket: "1", Rank: 1, EntryID: 2, TeamName: "B", Points: 55},
		{Bracket: "1", Rank: 2, EntryID: 1, TeamName: "A", Points: 40},
		{Bracket: "1", Rank: 3, EntryID: 3, TeamName: "C", Points: 12},
		{Bracket: "2", Rank: 1, EntryID: 1, TeamName: "A", Points: 30},
		{Bracket: "2", Rank: 2, EntryID: 2, TeamName: "B", Points: 29},
		{Bracket: "2", Rank: 3, EntryID: 3, TeamName: "C", Points: 1},
		{Bracket: "3", Rank: 1, EntryID: 1, TeamName: "A", Points: 0},
		{Bracket: "3", Rank: 2, EntryID: 2, TeamName: "B", Points: 0},
		{Bracket: "3", Rank: 3, EntryID: 3, TeamName: "C", Points: 0},
	}

	got := PrizeTotals(standings)
	assert.Equal(t, []PrizeTotal{
		{TeamName: "A", Amount: 75},
		{TeamName: "B", Amount: 75},
		{TeamName: "C", Amount: 0},
	}, got)
}
