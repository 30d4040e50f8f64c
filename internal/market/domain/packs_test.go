package domain

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRandom replays a fixed sequence of dice values in [0,100).
type scriptedRandom struct {
	dice []float64
	next int
}

func (s *scriptedRandom) Float64() float64 {
	value := s.dice[s.next]
	s.next++
	return value / 100
}

func (s *scriptedRandom) IntN(n int) int {
	return 0
}

func TestDrawRarities_Boundaries(t *testing.T) {
	t.Parallel()

	probs := [4]float64{65, 25, 8, 2}

	type testCase struct {
		name     string
		dice     float64
		expected Rarity
	}

	tests := []testCase{
		{name: "zero is common", dice: 0, expected: RarityCommon},
		{name: "just below common boundary", dice: 64.999, expected: RarityCommon},
		{name: "common boundary is rare", dice: 65, expected: RarityRare},
		{name: "just below rare boundary", dice: 89.999, expected: RarityRare},
		{name: "rare boundary is epic", dice: 90, expected: RarityEpic},
		{name: "just below epic boundary", dice: 97.999, expected: RarityEpic},
		{name: "epic boundary is legendary", dice: 98, expected: RarityLegendary},
		{name: "top of range is legendary", dice: 99.999, expected: RarityLegendary},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			random := &scriptedRandom{dice: []float64{tt.dice}}
			rarities := DrawRarities(probs, 1, random)

			require.Len(t, rarities, 1)
			assert.Equal(t, tt.expected, rarities[0])
		})
	}
}

func TestDrawRarities_LegendaryIsCatchAll(t *testing.T) {
	t.Parallel()

	// a vector summing under 100 routes the remainder to the final branch
	probs := [4]float64{10, 10, 10, 2}
	random := &scriptedRandom{dice: []float64{50, 99.5, 30.1}}

	rarities := DrawRarities(probs, 3, random)

	assert.Equal(t, []Rarity{RarityLegendary, RarityLegendary, RarityLegendary}, rarities)
}

func TestDrawRarities_PreservesDrawOrder(t *testing.T) {
	t.Parallel()

	probs := [4]float64{65, 25, 8, 2}
	random := &scriptedRandom{dice: []float64{99, 10, 91, 70}}

	rarities := DrawRarities(probs, 4, random)

	assert.Equal(t, []Rarity{RarityLegendary, RarityCommon, RarityEpic, RarityRare}, rarities)
}

func TestDrawRarities_Distribution(t *testing.T) {
	t.Parallel()

	const draws = 200000
	probs := [4]float64{65, 25, 8, 2}
	random := rand.New(rand.NewPCG(7, 13))

	counts := make(map[Rarity]int, 4)
	for _, rarity := range DrawRarities(probs, draws, random) {
		counts[rarity]++
	}

	for i, rarity := range Rarities {
		observed := float64(counts[rarity]) / draws * 100
		assert.InDelta(t, probs[i], observed, 1.0, "rarity %s drifted from its weight", rarity)
	}
}

func TestPackRegistry_Find(t *testing.T) {
	t.Parallel()

	registry := DefaultPackRegistry()

	pack, err := registry.Find("Premium")
	require.NoError(t, err)
	assert.Equal(t, int64(10000), pack.Price)
	assert.Equal(t, 4, pack.CardCount)
	assert.Equal(t, [4]float64{40, 40, 14, 6}, pack.Probabilities)

	_, err = registry.Find("Mythic")
	assert.ErrorIs(t, err, &PackNotFoundError{})
}

func TestPackRegistry_All(t *testing.T) {
	t.Parallel()

	packs := DefaultPackRegistry().All()

	require.Len(t, packs, 3)
	assert.Equal(t, "Default", packs[0].Name)
	assert.Equal(t, "Rare", packs[1].Name)
	assert.Equal(t, "Premium", packs[2].Name)
}

func TestNewPackRegistry_Validation(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name string
		defs []PackDefinition
	}

	tests := []testCase{
		{
			name: "probabilities must sum to 100",
			defs: []PackDefinition{
				{Name: "Skewed", Price: 100, Probabilities: [4]float64{50, 25, 8, 2}, CardCount: 3},
			},
		},
		{
			name: "negative weight",
			defs: []PackDefinition{
				{Name: "Negative", Price: 100, Probabilities: [4]float64{105, -10, 3, 2}, CardCount: 3},
			},
		},
		{
			name: "zero card count",
			defs: []PackDefinition{
				{Name: "Empty", Price: 100, Probabilities: [4]float64{65, 25, 8, 2}, CardCount: 0},
			},
		},
		{
			name: "empty name",
			defs: []PackDefinition{
				{Price: 100, Probabilities: [4]float64{65, 25, 8, 2}, CardCount: 3},
			},
		},
		{
			name: "duplicate name",
			defs: []PackDefinition{
				{Name: "Twin", Price: 100, Probabilities: [4]float64{65, 25, 8, 2}, CardCount: 3},
				{Name: "Twin", Price: 200, Probabilities: [4]float64{65, 25, 8, 2}, CardCount: 3},
			},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewPackRegistry(tt.defs...)
			assert.ErrorIs(t, err, &InvalidArgumentsError{})
		})
	}
}
