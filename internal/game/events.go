package game

// EventSpec is a data-described random occurrence: a weight, the conditions
// under which the weight applies, and explicit state deltas. No event carries
// behavior; the orchestrator applies the deltas atomically with the rest of
// the day.
type EventSpec struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Weight      int    `yaml:"weight"`

	// Optional context gates. Zero values mean unconditioned.
	MinReputation float64     `yaml:"min_reputation,omitempty"`
	MaxReputation float64     `yaml:"max_reputation,omitempty"`
	Season        Season      `yaml:"season,omitempty"`
	Weather       WeatherType `yaml:"weather,omitempty"`
	RequiresPool  bool        `yaml:"requires_pool,omitempty"`
	RequiresStaff bool        `yaml:"requires_staff,omitempty"`

	Effect EventEffect `yaml:"effect"`
}

// EventEffect is the delta an event applies. Cash is drawn uniformly from
// [CashMin, CashMax]. DemandMult of 0 means no demand change.
type EventEffect struct {
	Reputation     float64 `yaml:"reputation,omitempty"`
	CashMin        int     `yaml:"cash_min,omitempty"`
	CashMax        int     `yaml:"cash_max,omitempty"`
	Cleanliness    int     `yaml:"cleanliness,omitempty"`
	DemandMult     float64 `yaml:"demand_mult,omitempty"`
	StaffHappiness int     `yaml:"staff_happiness,omitempty"`
}

// FiredEvent is one resolved occurrence, with the cash delta already drawn.
type FiredEvent struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Reputation     float64 `json:"reputation,omitempty"`
	Cash           int     `json:"cash,omitempty"`
	Cleanliness    int     `json:"cleanliness,omitempty"`
	DemandMult     float64 `json:"demand_mult,omitempty"`
	StaffHappiness int     `json:"staff_happiness,omitempty"`
}

// eventContext is what the weighting sees when deciding what can fire.
type eventContext struct {
	Reputation float64
	Season     Season
	Weather    WeatherType
	Day        int
	HasPools   bool
	HasStaff   bool
}

func (e EventSpec) eligible(ctx eventContext) bool {
	if e.Weight <= 0 {
		return false
	}
	if e.MinReputation > 0 && ctx.Reputation < e.MinReputation {
		return false
	}
	if e.MaxReputation > 0 && ctx.Reputation > e.MaxReputation {
		return false
	}
	if e.Season != "" && e.Season != ctx.Season {
		return false
	}
	if e.Weather != "" && e.Weather != ctx.Weather {
		return false
	}
	if e.RequiresPool && !ctx.HasPools {
		return false
	}
	if e.RequiresStaff && !ctx.HasStaff {
		return false
	}
	return true
}

// rollEvents resolves the day's random events. Zero events is an ordinary
// outcome, not an error. Each of cfg.EventRolls slots fires independently
// with cfg.EventChance, then picks from the context-eligible table by weight.
func rollEvents(cfg Config, ctx eventContext) []FiredEvent {
	rng := dayRNG(cfg.Seed, ctx.Day, "events")

	var fired []FiredEvent
	for roll := 0; roll < cfg.EventRolls; roll++ {
		if rng.Float64() >= cfg.EventChance {
			continue
		}

		total := 0
		for _, ev := range cfg.Events {
			if ev.eligible(ctx) {
				total += ev.Weight
			}
		}
		if total <= 0 {
			continue
		}

		pick := rng.IntN(total)
		cumulative := 0
		for _, ev := range cfg.Events {
			if !ev.eligible(ctx) {
				continue
			}
			cumulative += ev.Weight
			if pick >= cumulative {
				continue
			}

			cash := ev.Effect.CashMin
			if ev.Effect.CashMax > ev.Effect.CashMin {
				cash += rng.IntN(ev.Effect.CashMax - ev.Effect.CashMin + 1)
			}
			fired = append(fired, FiredEvent{
				Name:           ev.Name,
				Description:    ev.Description,
				Reputation:     ev.Effect.Reputation,
				Cash:           cash,
				Cleanliness:    ev.Effect.Cleanliness,
				DemandMult:     ev.Effect.DemandMult,
				StaffHappiness: ev.Effect.StaffHappiness,
			})
			break
		}
	}
	return fired
}

// DefaultEvents is the shipped event table. Reputation and cleanliness
// deltas are applied before the end-of-day bound checks; demand multipliers
// apply to the same day's customer generation, which is why events resolve
// before customers are generated.
func DefaultEvents() []EventSpec {
	return []EventSpec{
		{
			Name:        "Celebrity Visit",
			Description: "A famous celebrity has visited your onsen!",
			Weight:      10,
			Effect:      EventEffect{Reputation: 10},
		},
		{
			Name:          "Travel Magazine Feature",
			Description:   "Your onsen was featured in a popular travel magazine!",
			Weight:        8,
			MinReputation: 40,
			Effect:        EventEffect{Reputation: 15},
		},
		{
			Name:        "Local Festival",
			Description: "A local festival is bringing more tourists to the area!",
			Weight:      12,
			Effect:      EventEffect{DemandMult: 1.5},
		},
		{
			Name:         "Hot Spring Quality Improved",
			Description:  "The mineral content of your hot spring has naturally improved!",
			Weight:       8,
			RequiresPool: true,
			Effect:       EventEffect{Reputation: 3, Cleanliness: 10},
		},
		{
			Name:         "Plumbing Issue",
			Description:  "There's a problem with the hot spring plumbing!",
			Weight:       10,
			RequiresPool: true,
			Effect:       EventEffect{CashMin: -20000, CashMax: -5000, Cleanliness: -30},
		},
		{
			Name:        "Health Inspection",
			Description: "A surprise health inspection has found some issues.",
			Weight:      8,
			Effect:      EventEffect{CashMin: -10000, CashMax: -10000},
		},
		{
			Name:          "Staff Conflict",
			Description:   "There's a conflict among your staff members.",
			Weight:        8,
			RequiresStaff: true,
			Effect:        EventEffect{StaffHappiness: -10},
		},
		{
			Name:        "Competing Onsen Opened",
			Description: "A new onsen resort has opened nearby.",
			Weight:      8,
			Effect:      EventEffect{Reputation: -5},
		},
		{
			Name:          "Glowing Blogger Review",
			Description:   "A popular travel blogger praised your onsen!",
			Weight:        8,
			MinReputation: 50,
			Effect:        EventEffect{Reputation: 8},
		},
		{
			Name:          "Scathing Blogger Review",
			Description:   "A popular travel blogger tore your onsen apart.",
			Weight:        8,
			MaxReputation: 50,
			Effect:        EventEffect{Reputation: -8},
		},
		{
			Name:        "Winter Illumination",
			Description: "Snowfall and lanterns made the open-air baths magical tonight.",
			Weight:      10,
			Season:      SeasonWinter,
			Weather:     WeatherSnow,
			Effect:      EventEffect{Reputation: 4, DemandMult: 1.2},
		},
	}
}
