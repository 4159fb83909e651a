package game

// Campaign buys extra demand for a fixed number of days.
type Campaign struct {
	Name          string `json:"name" yaml:"name"`
	Cost          int    `json:"cost" yaml:"cost"`
	DaysRemaining int    `json:"days_remaining" yaml:"days_remaining"`
}

// Promotion discounts the entry fee for a fixed number of days.
type Promotion struct {
	Name            string `json:"name" yaml:"name"`
	DiscountPercent int    `json:"discount_percent" yaml:"discount_percent"`
	DaysRemaining   int    `json:"days_remaining" yaml:"days_remaining"`
}

type MarketingState struct {
	Campaigns  []Campaign  `json:"campaigns,omitempty" yaml:"campaigns,omitempty"`
	Promotions []Promotion `json:"promotions,omitempty" yaml:"promotions,omitempty"`
}

// demandBoost compounds the configured per-campaign boost across the
// campaigns still running.
func (m MarketingState) demandBoost(perCampaign float64) float64 {
	boost := 1.0
	for _, c := range m.Campaigns {
		if c.DaysRemaining > 0 {
			boost += perCampaign
		}
	}
	return boost
}

// entryFeeMultiplier stacks active promotion discounts multiplicatively.
func (m MarketingState) entryFeeMultiplier() float64 {
	mult := 1.0
	for _, p := range m.Promotions {
		if p.DaysRemaining > 0 {
			mult *= 1 - float64(p.DiscountPercent)/100
		}
	}
	return mult
}

// tick ages campaigns and promotions by one day and drops the expired ones.
func (m *MarketingState) tick() {
	campaigns := m.Campaigns[:0]
	for _, c := range m.Campaigns {
		c.DaysRemaining--
		if c.DaysRemaining > 0 {
			campaigns = append(campaigns, c)
		}
	}
	m.Campaigns = campaigns

	promotions := m.Promotions[:0]
	for _, p := range m.Promotions {
		p.DaysRemaining--
		if p.DaysRemaining > 0 {
			promotions = append(promotions, p)
		}
	}
	m.Promotions = promotions
}
