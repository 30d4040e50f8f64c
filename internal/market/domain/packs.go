package domain

import (
	"fmt"
	"math"
	"math/rand/v2"
)

const probabilitySumTolerance = 1e-9

// PackDefinition is a static, data-only pack variant. Probabilities is an
// ordered weight vector over (Common, Rare, Epic, Legendary) summing to 100.
type PackDefinition struct {
	Name          string
	Price         int64
	Probabilities [4]float64
	CardCount     int
}

func (p PackDefinition) validate() error {
	if p.Name == "" {
		return &InvalidArgumentsError{Msg: "pack name must not be empty"}
	}

	if p.CardCount <= 0 {
		return &InvalidArgumentsError{Msg: fmt.Sprintf("pack %s: card count must be positive", p.Name)}
	}

	var sum float64
	for _, weight := range p.Probabilities {
		if weight < 0 {
			return &InvalidArgumentsError{Msg: fmt.Sprintf("pack %s: probabilities must be non-negative", p.Name)}
		}
		sum += weight
	}

	if math.Abs(sum-100) > probabilitySumTolerance {
		return &InvalidArgumentsError{Msg: fmt.Sprintf("pack %s: probabilities sum to %v, want 100", p.Name, sum)}
	}

	return nil
}

// PackRegistry maps pack names to their definitions.
type PackRegistry struct {
	packs map[string]PackDefinition
	order []string
}

func NewPackRegistry(defs ...PackDefinition) (*PackRegistry, error) {
	registry := &PackRegistry{
		packs: make(map[string]PackDefinition, len(defs)),
	}

	for _, def := range defs {
		if err := def.validate(); err != nil {
			return nil, err
		}

		if _, exists := registry.packs[def.Name]; exists {
			return nil, &InvalidArgumentsError{Msg: fmt.Sprintf("pack %s registered twice", def.Name)}
		}

		registry.packs[def.Name] = def
		registry.order = append(registry.order, def.Name)
	}

	return registry, nil
}

// DefaultPackRegistry holds the three shipped variants.
func DefaultPackRegistry() *PackRegistry {
	registry, err := NewPackRegistry(
		PackDefinition{Name: "Default", Price: 3000, Probabilities: [4]float64{65, 25, 8, 2}, CardCount: 3},
		PackDefinition{Name: "Rare", Price: 6000, Probabilities: [4]float64{20, 60, 8, 2}, CardCount: 3},
		PackDefinition{Name: "Premium", Price: 10000, Probabilities: [4]float64{40, 40, 14, 6}, CardCount: 4},
	)
	if err != nil {
		panic(err)
	}

	return registry
}

func (r *PackRegistry) Find(name string) (PackDefinition, error) {
	pack, ok := r.packs[name]
	if !ok {
		return PackDefinition{}, &PackNotFoundError{Msg: fmt.Sprintf("pack %s not found", name)}
	}

	return pack, nil
}

func (r *PackRegistry) All() []PackDefinition {
	defs := make([]PackDefinition, 0, len(r.order))
	for _, name := range r.order {
		defs = append(defs, r.packs[name])
	}

	return defs
}

// RandomSource supplies the randomness for pack openings. *rand.Rand from
// math/rand/v2 satisfies it; tests pass scripted sources.
type RandomSource interface {
	Float64() float64
	IntN(n int) int
}

// SystemRandom delegates to the process-wide math/rand/v2 generator, which is
// safe for concurrent use.
type SystemRandom struct{}

func (SystemRandom) Float64() float64 {
	return rand.Float64()
}

func (SystemRandom) IntN(n int) int {
	return rand.IntN(n)
}

// DrawRarities rolls count independent rarities from the weight vector. The
// dice is uniform over [0,100) and walks the cumulative boundaries in order;
// Legendary is the catch-all final branch, so a vector summing under 100
// silently inflates Legendary. That matches the live drop rates and is kept
// deliberately.
func DrawRarities(probs [4]float64, count int, random RandomSource) []Rarity {
	rarities := make([]Rarity, 0, count)

	for i := 0; i < count; i++ {
		dice := random.Float64() * 100

		switch {
		case dice < probs[0]:
			rarities = append(rarities, RarityCommon)
		case dice < probs[0]+probs[1]:
			rarities = append(rarities, RarityRare)
		case dice < probs[0]+probs[1]+probs[2]:
			rarities = append(rarities, RarityEpic)
		default:
			rarities = append(rarities, RarityLegendary)
		}
	}

	return rarities
}
