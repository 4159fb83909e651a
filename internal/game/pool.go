package game

import "strings"

type PoolSize string

const (
	PoolSmall  PoolSize = "small"
	PoolMedium PoolSize = "medium"
	PoolLarge  PoolSize = "large"
)

// Pool is one onsen bath. Cleanliness decays every day and is recovered by
// cleaner staff or an explicit CleanPool action.
type Pool struct {
	Name         string       `json:"name" yaml:"name"`
	Size         PoolSize     `json:"size" yaml:"size"`
	TemperatureC int          `json:"temperature_c" yaml:"temperature_c"`
	Cleanliness  int          `json:"cleanliness" yaml:"cleanliness"`
	Ingredients  []Ingredient `json:"ingredients,omitempty" yaml:"ingredients,omitempty"`
}

// Ingredient is a mineral or additive dissolved in a pool. Radium is the
// historical oddity: popular, actively bad for satisfaction.
type Ingredient struct {
	Name              string `json:"name" yaml:"name"`
	DailyCost         int    `json:"daily_cost" yaml:"daily_cost"`
	PopularityBonus   int    `json:"popularity_bonus" yaml:"popularity_bonus"`
	SatisfactionBonus int    `json:"satisfaction_bonus" yaml:"satisfaction_bonus"`
	Description       string `json:"description" yaml:"description"`
}

type poolSpec struct {
	ConstructionCost int
	MaintenanceCost  int
	Capacity         int
}

var poolSpecs = map[PoolSize]poolSpec{
	PoolSmall:  {ConstructionCost: 50000, MaintenanceCost: 1000, Capacity: 10},
	PoolMedium: {ConstructionCost: 100000, MaintenanceCost: 2000, Capacity: 25},
	PoolLarge:  {ConstructionCost: 200000, MaintenanceCost: 4000, Capacity: 50},
}

func (s PoolSize) valid() bool {
	_, ok := poolSpecs[s]
	return ok
}

func (s PoolSize) ConstructionCost() int {
	return poolSpecs[s].ConstructionCost
}

func (s PoolSize) Capacity() int {
	return poolSpecs[s].Capacity
}

func NewPool(name string, size PoolSize, temperatureC int) Pool {
	return Pool{
		Name:         name,
		Size:         size,
		TemperatureC: temperatureC,
		Cleanliness:  100,
	}
}

// DailyCost is pool maintenance plus temperature upkeep plus ingredient
// upkeep. Holding water far from 40C costs more to heat or cool.
func (p Pool) DailyCost() int {
	cost := poolSpecs[p.Size].MaintenanceCost

	tempDistance := p.TemperatureC - 40
	if tempDistance < 0 {
		tempDistance = -tempDistance
	}
	cost += 500 * tempDistance / 10

	for _, ing := range p.Ingredients {
		cost += ing.DailyCost
	}

	return cost
}

func (p Pool) ingredientSatisfactionBonus() float64 {
	bonus := 0.0
	for _, ing := range p.Ingredients {
		bonus += float64(ing.SatisfactionBonus)
	}
	return bonus
}

func (p Pool) hasIngredient(name string) bool {
	for _, ing := range p.Ingredients {
		if ing.Name == name {
			return true
		}
	}
	return false
}

// IngredientCatalog is the fixed set of additives available for purchase.
func IngredientCatalog() []Ingredient {
	return []Ingredient{
		{Name: "Sulfur", DailyCost: 500, PopularityBonus: 5, SatisfactionBonus: 3,
			Description: "Sulfur-rich waters are known for treating skin conditions."},
		{Name: "Iron", DailyCost: 600, PopularityBonus: 3, SatisfactionBonus: 5,
			Description: "Iron-rich waters are said to be good for anemia and fatigue."},
		{Name: "Sodium Bicarbonate", DailyCost: 400, PopularityBonus: 4, SatisfactionBonus: 4,
			Description: "Leaves skin feeling smooth; the so-called baking soda springs."},
		{Name: "Radium", DailyCost: 1000, PopularityBonus: 10, SatisfactionBonus: -5,
			Description: "Historically popular but now known to be harmful."},
		{Name: "Green Tea Extract", DailyCost: 800, PopularityBonus: 8, SatisfactionBonus: 7,
			Description: "A luxurious addition with a pleasant aroma and skin benefits."},
		{Name: "Sake", DailyCost: 1200, PopularityBonus: 15, SatisfactionBonus: 10,
			Description: "Bathing in sake is a premium experience, very popular with guests."},
		{Name: "Hydrogen Carbonate", DailyCost: 700, PopularityBonus: 6, SatisfactionBonus: 6,
			Description: "Known as beauty baths for making skin smooth."},
		{Name: "Alum", DailyCost: 500, PopularityBonus: 4, SatisfactionBonus: 3,
			Description: "Creates an astringent effect that tightens skin."},
	}
}

// findIngredient resolves a catalog entry regardless of how the name was
// typed; the canonical spelling is what ends up on the pool.
func findIngredient(name string) (Ingredient, bool) {
	for _, ing := range IngredientCatalog() {
		if strings.EqualFold(ing.Name, name) {
			return ing, true
		}
	}
	return Ingredient{}, false
}
