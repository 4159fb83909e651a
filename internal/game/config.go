package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every balance constant the simulation reads. Nothing in the
// engine embeds a tunable literal; rebalancing is a config change.
type Config struct {
	Seed int64 `yaml:"seed"`

	StartingCash       int     `yaml:"starting_cash"`
	StartingReputation float64 `yaml:"starting_reputation"`
	EntryFee           int     `yaml:"entry_fee"`

	BaseOperatingCost int `yaml:"base_operating_cost"`
	LandRent          int `yaml:"land_rent"`

	// Reputation dynamics: delta = (avgSatisfaction - pivot) / gain divisor,
	// with a fixed upkeep decay applied above the decay threshold.
	ReputationGainDivisor    float64 `yaml:"reputation_gain_divisor"`
	ReputationDecay          float64 `yaml:"reputation_decay"`
	ReputationDecayThreshold float64 `yaml:"reputation_decay_threshold"`

	// Below this reputation no customers arrive at all.
	MinReputationForCustomers float64 `yaml:"min_reputation_for_customers"`

	DemandPerReputation float64 `yaml:"demand_per_reputation"`
	DemandJitter        int     `yaml:"demand_jitter"`

	CleanlinessDecayMin     int `yaml:"cleanliness_decay_min"`
	CleanlinessDecayMax     int `yaml:"cleanliness_decay_max"`
	CleanerRecoveryPerSkill int `yaml:"cleaner_recovery_per_skill"`

	SeasonLengthDays int `yaml:"season_length_days"`

	// Up to EventRolls independent events may fire, each with EventChance.
	EventRolls  int     `yaml:"event_rolls"`
	EventChance float64 `yaml:"event_chance"`

	// Guests get bored after this many days without new construction.
	BoredomGraceDays int `yaml:"boredom_grace_days"`
	BoredomMax       int `yaml:"boredom_max"`

	MarketingCampaignBoost float64 `yaml:"marketing_campaign_boost"`

	WageBase        map[StaffRole]int `yaml:"wage_base"`
	WageBaseDefault int               `yaml:"wage_base_default"`
	// WageMultipliers[i] is the multiplier for skill level i+1. Must cover
	// the full 1..10 domain and be monotonically non-decreasing.
	WageMultipliers []float64 `yaml:"wage_multipliers"`

	SeasonDemand    map[Season]float64         `yaml:"season_demand"`
	SeasonBaseTemps map[Season]int             `yaml:"season_base_temps"`
	WeatherWeights  map[Season][]WeatherWeight `yaml:"weather_weights"`

	Personalities []PersonalityProfile `yaml:"personalities"`
	Events        []EventSpec          `yaml:"events"`
}

func DefaultConfig() Config {
	return Config{
		StartingCash:       75000,
		StartingReputation: 50,
		EntryFee:           2000,

		BaseOperatingCost: 8000,
		LandRent:          15000,

		ReputationGainDivisor:    8,
		ReputationDecay:          0.5,
		ReputationDecayThreshold: 50,

		MinReputationForCustomers: 30,

		DemandPerReputation: 2.0,
		DemandJitter:        10,

		CleanlinessDecayMin:     10,
		CleanlinessDecayMax:     20,
		CleanerRecoveryPerSkill: 5,

		SeasonLengthDays: 90,

		EventRolls:  2,
		EventChance: 0.2,

		BoredomGraceDays: 30,
		BoredomMax:       30,

		MarketingCampaignBoost: 0.2,

		WageBase:        defaultWageBase(),
		WageBaseDefault: 2500,
		WageMultipliers: defaultWageMultipliers(),

		SeasonDemand: map[Season]float64{
			SeasonSpring: 1.0,
			SeasonSummer: 0.7,
			SeasonAutumn: 1.2,
			SeasonWinter: 1.5,
		},
		SeasonBaseTemps: defaultSeasonBaseTemps(),
		WeatherWeights:  defaultWeatherWeights(),

		Personalities: DefaultPersonalities(),
		Events:        DefaultEvents(),
	}
}

// LoadConfig reads a YAML override file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.StartingCash < 0 {
		return configErrf("starting_cash", "must be non-negative, got %d", c.StartingCash)
	}
	if c.StartingReputation < 0 || c.StartingReputation > 100 {
		return configErrf("starting_reputation", "must be within [0,100], got %.1f", c.StartingReputation)
	}
	if c.EntryFee < 0 {
		return configErrf("entry_fee", "must be non-negative, got %d", c.EntryFee)
	}
	if c.BaseOperatingCost < 0 {
		return configErrf("base_operating_cost", "must be non-negative, got %d", c.BaseOperatingCost)
	}
	if c.LandRent < 0 {
		return configErrf("land_rent", "must be non-negative, got %d", c.LandRent)
	}
	if c.ReputationGainDivisor <= 0 {
		return configErrf("reputation_gain_divisor", "must be positive, got %.2f", c.ReputationGainDivisor)
	}
	if c.ReputationDecay < 0 {
		return configErrf("reputation_decay", "must be non-negative, got %.2f", c.ReputationDecay)
	}
	if c.MinReputationForCustomers < 0 || c.MinReputationForCustomers > 100 {
		return configErrf("min_reputation_for_customers", "must be within [0,100], got %.1f", c.MinReputationForCustomers)
	}
	if c.DemandPerReputation < 0 {
		return configErrf("demand_per_reputation", "must be non-negative, got %.2f", c.DemandPerReputation)
	}
	if c.CleanlinessDecayMin < 0 {
		return configErrf("cleanliness_decay_min", "must be non-negative, got %d", c.CleanlinessDecayMin)
	}
	if c.CleanlinessDecayMax < c.CleanlinessDecayMin {
		return configErrf("cleanliness_decay_max", "must be >= cleanliness_decay_min, got %d < %d",
			c.CleanlinessDecayMax, c.CleanlinessDecayMin)
	}
	if c.SeasonLengthDays < 1 {
		return configErrf("season_length_days", "must be at least 1, got %d", c.SeasonLengthDays)
	}
	if c.EventRolls < 0 {
		return configErrf("event_rolls", "must be non-negative, got %d", c.EventRolls)
	}
	if c.EventChance < 0 || c.EventChance > 1 {
		return configErrf("event_chance", "must be within [0,1], got %.2f", c.EventChance)
	}

	if err := c.validateWages(); err != nil {
		return err
	}
	if err := c.validateSeasonTables(); err != nil {
		return err
	}
	if err := c.validatePersonalities(); err != nil {
		return err
	}
	if err := c.validateEvents(); err != nil {
		return err
	}
	return nil
}

// validateWages checks the schedule is total over skill levels 1..10 and
// monotonically non-decreasing. An indexed table with gaps was a real defect
// once; it is now rejected before any day can run.
func (c Config) validateWages() error {
	want := MaxSkillLevel - MinSkillLevel + 1
	if len(c.WageMultipliers) != want {
		return configErrf("wage_multipliers", "must define exactly %d entries for skill levels %d..%d, got %d",
			want, MinSkillLevel, MaxSkillLevel, len(c.WageMultipliers))
	}
	prev := 0.0
	for i, mult := range c.WageMultipliers {
		if mult < 0 {
			return configErrf("wage_multipliers", "entry for skill %d is negative: %.2f", i+MinSkillLevel, mult)
		}
		if mult < prev {
			return configErrf("wage_multipliers", "entry for skill %d (%.2f) decreases below skill %d (%.2f)",
				i+MinSkillLevel, mult, i+MinSkillLevel-1, prev)
		}
		prev = mult
	}
	if c.WageBaseDefault < 0 {
		return configErrf("wage_base_default", "must be non-negative, got %d", c.WageBaseDefault)
	}
	for role, base := range c.WageBase {
		if !role.valid() {
			return configErrf("wage_base", "unknown role %q", role)
		}
		if base < 0 {
			return configErrf("wage_base", "role %s has negative base %d", role, base)
		}
	}
	return nil
}

func (c Config) validateSeasonTables() error {
	for _, season := range seasonCycle {
		if mult, ok := c.SeasonDemand[season]; !ok || mult < 0 {
			return configErrf("season_demand", "season %s needs a non-negative multiplier", season)
		}
		weights, ok := c.WeatherWeights[season]
		if !ok || len(weights) == 0 {
			return configErrf("weather_weights", "season %s has no weather table", season)
		}
		total := 0
		for _, w := range weights {
			if w.Weight < 0 {
				return configErrf("weather_weights", "season %s: %s has negative weight %d", season, w.Type, w.Weight)
			}
			total += w.Weight
		}
		if total <= 0 {
			return configErrf("weather_weights", "season %s weights sum to zero", season)
		}
	}
	return nil
}

func (c Config) validatePersonalities() error {
	if len(c.Personalities) == 0 {
		return configErrf("personalities", "at least one personality profile required")
	}
	for _, p := range c.Personalities {
		if p.Weight < 0 {
			return configErrf("personalities", "%s has negative weight %d", p.Type, p.Weight)
		}
		if p.TempMaxC < p.TempMinC {
			return configErrf("personalities", "%s has inverted temperature band %d..%d", p.Type, p.TempMinC, p.TempMaxC)
		}
		if p.MinCleanliness < 0 || p.MinCleanliness > 100 {
			return configErrf("personalities", "%s min_cleanliness outside [0,100]: %d", p.Type, p.MinCleanliness)
		}
		if p.ReasonablePrice <= 0 {
			return configErrf("personalities", "%s needs a positive reasonable_price", p.Type)
		}
	}
	return nil
}

func (c Config) validateEvents() error {
	for _, ev := range c.Events {
		if ev.Name == "" {
			return configErrf("events", "event with empty name")
		}
		if ev.Weight < 0 {
			return configErrf("events", "%s has negative weight %d", ev.Name, ev.Weight)
		}
		if ev.Effect.CashMin > ev.Effect.CashMax {
			return configErrf("events", "%s has inverted cash range %d..%d", ev.Name, ev.Effect.CashMin, ev.Effect.CashMax)
		}
		if ev.Effect.DemandMult < 0 {
			return configErrf("events", "%s has negative demand multiplier %.2f", ev.Name, ev.Effect.DemandMult)
		}
	}
	return nil
}
