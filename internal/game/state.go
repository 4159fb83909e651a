package game

import "time"

// Resort is the root aggregate. It is owned by the session that created it
// and mutated only inside AdvanceDay; the presentation layer reads the
// DailyResult, never the live aggregate mid-day.
type Resort struct {
	Name string `json:"name" yaml:"name"`

	Cash       int     `json:"cash" yaml:"cash"`
	Reputation float64 `json:"reputation" yaml:"reputation"`
	EntryFee   int     `json:"entry_fee" yaml:"entry_fee"`
	Day        int     `json:"day" yaml:"day"`

	Weather WeatherState `json:"weather" yaml:"weather"`

	Pools      []Pool         `json:"pools,omitempty" yaml:"pools,omitempty"`
	Facilities []Facility     `json:"facilities,omitempty" yaml:"facilities,omitempty"`
	Staff      []StaffMember  `json:"staff,omitempty" yaml:"staff,omitempty"`
	Marketing  MarketingState `json:"marketing" yaml:"marketing"`

	// LastUpgradeDay drives the boredom penalty for stale facilities.
	LastUpgradeDay int `json:"last_upgrade_day" yaml:"last_upgrade_day"`

	EventLog []string `json:"event_log,omitempty" yaml:"event_log,omitempty"`

	cfg Config
}

// NewResort validates the configuration and creates a fresh session
// aggregate. A zero seed is replaced with the wall clock, matching the
// "unset means fresh run" convention; tests always pass an explicit seed.
func NewResort(name string, cfg Config) (*Resort, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	r := &Resort{
		Name:           name,
		Cash:           cfg.StartingCash,
		Reputation:     cfg.StartingReputation,
		EntryFee:       cfg.EntryFee,
		Day:            1,
		LastUpgradeDay: 1,
		cfg:            cfg,
	}
	r.Weather = r.weatherForDay(1)
	return r, nil
}

// Config returns the session's resolved configuration (seed included).
func (r *Resort) Config() Config {
	return r.cfg
}

func (r *Resort) Season() Season {
	return SeasonForDay(r.Day, r.cfg.SeasonLengthDays)
}

func (r *Resort) weatherForDay(day int) WeatherState {
	season := SeasonForDay(day, r.cfg.SeasonLengthDays)
	weather := WeatherForDay(r.cfg.Seed, season, day, r.cfg.WeatherWeights[season])
	return WeatherState{
		Day:          day,
		Type:         weather,
		TemperatureC: TemperatureForDay(r.cfg.Seed, season, day, weather, r.cfg.SeasonBaseTemps),
	}
}

// boredomFactor grows once no construction has happened for the grace
// period: one point per ten stale days, capped by config.
func (r *Resort) boredomFactor() int {
	stale := r.Day - r.LastUpgradeDay
	if stale <= r.cfg.BoredomGraceDays {
		return 0
	}
	factor := (stale - r.cfg.BoredomGraceDays) / 10
	if factor > r.cfg.BoredomMax {
		factor = r.cfg.BoredomMax
	}
	return factor
}

// effectiveEntryFee is the posted fee after active promotion discounts.
func (r *Resort) effectiveEntryFee() int {
	return int(float64(r.EntryFee) * r.Marketing.entryFeeMultiplier())
}

// clone deep-copies the aggregate so a failed day can roll back cleanly.
func (r *Resort) clone() Resort {
	out := *r

	out.Pools = make([]Pool, len(r.Pools))
	copy(out.Pools, r.Pools)
	for i := range out.Pools {
		if len(r.Pools[i].Ingredients) > 0 {
			out.Pools[i].Ingredients = append([]Ingredient(nil), r.Pools[i].Ingredients...)
		}
	}

	out.Facilities = append([]Facility(nil), r.Facilities...)
	out.Staff = append([]StaffMember(nil), r.Staff...)
	out.Marketing.Campaigns = append([]Campaign(nil), r.Marketing.Campaigns...)
	out.Marketing.Promotions = append([]Promotion(nil), r.Marketing.Promotions...)
	out.EventLog = append([]string(nil), r.EventLog...)

	return out
}

// AccommodationCapacity sums lodging capacity for the summary views.
func (r *Resort) AccommodationCapacity() int {
	total := 0
	for _, f := range r.Facilities {
		if f.Kind == FacilityAccommodation {
			total += f.Capacity()
		}
	}
	return total
}
