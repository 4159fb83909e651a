package game

// SatisfactionSummary is the per-archetype outcome exposed in DailyResult.
type SatisfactionSummary struct {
	Type     PersonalityType `json:"type"`
	Count    int             `json:"count"`
	Score    float64         `json:"score"`
	Spenders int             `json:"spenders"`
}

// scorePersonality evaluates the resort against one archetype's threshold
// record and returns a 0..100 satisfaction score. One routine over the data
// table; no per-archetype branching.
func (r *Resort) scorePersonality(p PersonalityProfile, weather WeatherState) float64 {
	score := 50.0

	if len(r.Pools) == 0 {
		return 10
	}

	// Pools: temperature band, cleanliness threshold, dissolved minerals.
	poolScore := 0.0
	for _, pool := range r.Pools {
		if pool.TemperatureC >= p.TempMinC && pool.TemperatureC <= p.TempMaxC {
			poolScore += 20
		} else {
			distance := pool.TemperatureC - p.TempMinC
			if d := pool.TemperatureC - p.TempMaxC; d > 0 {
				distance = d
			} else if distance < 0 {
				distance = -distance
			}
			poolScore -= float64(distance) * 5
		}

		if pool.Cleanliness >= p.MinCleanliness {
			poolScore += 15
		} else {
			diff := float64(p.MinCleanliness - pool.Cleanliness)
			// Grime compounds: the penalty grows with the square of the gap.
			poolScore -= diff * diff / 10
		}

		poolScore += pool.ingredientSatisfactionBonus()
	}
	score += poolScore / float64(len(r.Pools)) * 0.4

	// Staff skill on the same 0..100 scale as the threshold.
	staffImportance := 1.0
	if p.Type == LuxuryEnthusiast {
		staffImportance = 1.5
	}
	avgSkill := r.averageSkill() * 10
	if avgSkill >= float64(p.MinStaffSkill) {
		score += 15 * staffImportance
	} else {
		score -= (float64(p.MinStaffSkill) - avgSkill) * 0.3 * staffImportance
	}

	// Price: satisfaction scales down as the fee climbs past what this
	// archetype considers reasonable. Suspiciously cheap also reads badly.
	fee := r.effectiveEntryFee()
	priceRatio := float64(fee) / float64(p.ReasonablePrice)
	priceFactor := 1.0
	switch {
	case priceRatio > 2:
		priceFactor = (1 - (priceRatio-1)*p.PriceSensitivity) * 0.5
	case priceRatio > 1:
		priceFactor = 1 - (priceRatio-1)*p.PriceSensitivity
	case priceRatio < 0.5:
		priceFactor = 0.9
	}
	if priceFactor < 0.1 {
		priceFactor = 0.1
	}
	score *= priceFactor

	// Facilities: operational ones help, closed ones annoy, favored kinds
	// earn extra. Weighted by how much this archetype cares, capped.
	if len(r.Facilities) > 0 {
		bonus := 0.0
		for _, f := range r.Facilities {
			if !f.IsOperational {
				bonus -= 10
				continue
			}
			bonus += 3
			for _, favored := range p.FavoredFacilities {
				if f.Kind == favored {
					bonus += 5
				}
			}
		}
		bonus *= p.FacilityImportance
		if bonus > 25 {
			bonus = 25
		}
		score += bonus
	}

	score += (weather.GuestImpact() - 1.0) * 10

	if boredom := r.boredomFactor(); boredom > 0 {
		score -= float64(boredom) * 0.5
	}

	return clampFloat(score, 0, 100)
}

// scoreDay scores every admitted archetype and rolls per-guest ancillary
// spend decisions: the better the visit, the likelier the guest opens their
// wallet at the restaurant or gift shop.
func (r *Resort) scoreDay(mix []CustomerMix, weather WeatherState) ([]SatisfactionSummary, float64, int) {
	rng := dayRNG(r.cfg.Seed, r.Day, "spend")

	var summaries []SatisfactionSummary
	weightedTotal := 0.0
	guests := 0
	spenders := 0

	for _, m := range mix {
		profile, ok := r.cfg.personality(m.Type)
		if !ok {
			continue
		}
		score := r.scorePersonality(profile, weather)

		typeSpenders := 0
		for i := 0; i < m.Count; i++ {
			if rng.Float64() < score/100*profile.FacilityImportance {
				typeSpenders++
			}
		}

		summaries = append(summaries, SatisfactionSummary{
			Type:     m.Type,
			Count:    m.Count,
			Score:    score,
			Spenders: typeSpenders,
		})
		weightedTotal += score * float64(m.Count)
		guests += m.Count
		spenders += typeSpenders
	}

	if guests == 0 {
		return summaries, 0, 0
	}
	return summaries, weightedTotal / float64(guests), spenders
}

// feedbackSample draws up to five per-archetype comments for the day's
// summary view.
func (r *Resort) feedbackSample(summaries []SatisfactionSummary) []Feedback {
	rng := dayRNG(r.cfg.Seed, r.Day, "feedback")

	var sample []Feedback
	for _, s := range summaries {
		if len(sample) >= 5 {
			break
		}
		profile, ok := r.cfg.personality(s.Type)
		if !ok {
			continue
		}
		line := profile.feedbackFor(s.Score, rng.IntN(100))
		if line == "" {
			continue
		}
		sample = append(sample, Feedback{
			Type:    s.Type,
			Score:   s.Score,
			Comment: line,
		})
	}
	return sample
}

// Feedback is one sampled guest comment.
type Feedback struct {
	Type    PersonalityType `json:"type"`
	Score   float64         `json:"score"`
	Comment string          `json:"comment"`
}
