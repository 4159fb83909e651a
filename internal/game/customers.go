package game

import "math/rand/v2"

// CustomerMix is the day's admitted guests for one archetype.
type CustomerMix struct {
	Type  PersonalityType `json:"type"`
	Count int             `json:"count"`
}

// generateCustomers derives the day's guest count and archetype mix from
// reputation, weather, season, fee and the demand modifiers produced by
// events and marketing.
//
// Below the configured reputation threshold demand is zero, always: the
// earlier build left a 20% chance of walk-ins below the bar, which made the
// low-reputation death spiral untestable. Here the gate is deterministic.
func (r *Resort) generateCustomers(weather WeatherState, eventDemandMult float64) []CustomerMix {
	cfg := r.cfg

	if len(r.Pools) == 0 {
		return nil
	}
	if r.Reputation < cfg.MinReputationForCustomers {
		return nil
	}

	demand := r.Reputation * cfg.DemandPerReputation
	demand *= cfg.SeasonDemand[r.Season()]
	demand *= weather.GuestImpact()
	demand *= r.Marketing.demandBoost(cfg.MarketingCampaignBoost)
	if eventDemandMult > 0 {
		demand *= eventDemandMult
	}
	if boredom := r.boredomFactor(); boredom > 0 {
		demand *= 1 - float64(boredom)/100
	}

	// Closed facilities turn guests away in proportion.
	if len(r.Facilities) > 0 {
		closed := 0
		for _, f := range r.Facilities {
			if !f.IsOperational {
				closed++
			}
		}
		if closed > 0 {
			demand *= 1 - 0.5*float64(closed)/float64(len(r.Facilities))
		}
	}

	rng := dayRNG(cfg.Seed, r.Day, "customers")
	potential := int(demand)
	if cfg.DemandJitter > 0 {
		potential += rng.IntN(2*cfg.DemandJitter+1) - cfg.DemandJitter
	}
	if potential <= 0 {
		return nil
	}

	fee := r.effectiveEntryFee()
	weights := r.seasonalPersonalityWeights()

	counts := make(map[PersonalityType]int)
	for i := 0; i < potential; i++ {
		profile, ok := pickPersonality(rng, weights)
		if !ok {
			break
		}
		// Archetypes walk away from fees beyond their ceiling; a low
		// sensitivity stretches how far past it they will still go.
		ceiling := int(float64(profile.MaxAcceptableFee) * (2 - profile.PriceSensitivity))
		if fee > ceiling {
			continue
		}
		counts[profile.Type]++
	}

	var mix []CustomerMix
	for _, p := range cfg.Personalities {
		if n := counts[p.Type]; n > 0 {
			mix = append(mix, CustomerMix{Type: p.Type, Count: n})
		}
	}
	return mix
}

// seasonalPersonalityWeights shifts the baseline mix with the season: winter
// skews upmarket and health-focused, summer toward budget and social guests.
func (r *Resort) seasonalPersonalityWeights() []PersonalityProfile {
	weights := make([]PersonalityProfile, len(r.cfg.Personalities))
	copy(weights, r.cfg.Personalities)

	for i := range weights {
		switch r.Season() {
		case SeasonWinter:
			if weights[i].Type == LuxuryEnthusiast || weights[i].Type == HealthConscious {
				weights[i].Weight *= 2
			}
		case SeasonSummer:
			if weights[i].Type == BudgetTraveler || weights[i].Type == SocialButterfly {
				weights[i].Weight *= 2
			}
		}
	}
	return weights
}

func pickPersonality(rng *rand.Rand, profiles []PersonalityProfile) (PersonalityProfile, bool) {
	total := 0
	for _, p := range profiles {
		total += p.Weight
	}
	if total <= 0 {
		return PersonalityProfile{}, false
	}
	pick := rng.IntN(total)
	cumulative := 0
	for _, p := range profiles {
		cumulative += p.Weight
		if pick < cumulative {
			return p, true
		}
	}
	return profiles[len(profiles)-1], true
}

func totalCustomers(mix []CustomerMix) int {
	total := 0
	for _, m := range mix {
		total += m.Count
	}
	return total
}
