package game

type PersonalityType string

const (
	RelaxationSeeker  PersonalityType = "relaxation_seeker"
	LuxuryEnthusiast  PersonalityType = "luxury_enthusiast"
	HealthConscious   PersonalityType = "health_conscious"
	BudgetTraveler    PersonalityType = "budget_traveler"
	TraditionalPurist PersonalityType = "traditional_purist"
	SocialButterfly   PersonalityType = "social_butterfly"
)

// PersonalityProfile is the threshold record for one guest archetype.
// Matching is a single data-driven routine over these records; adding an
// archetype is a table change, not new control flow.
type PersonalityProfile struct {
	Type        PersonalityType `yaml:"type"`
	Description string          `yaml:"description"`

	// Baseline popularity weight in the daily mix before demand scaling.
	Weight int `yaml:"weight"`

	// Preferred bath temperature band, degrees C.
	TempMinC int `yaml:"temp_min_c"`
	TempMaxC int `yaml:"temp_max_c"`

	// Minimum acceptable cleanliness, 0-100.
	MinCleanliness int `yaml:"min_cleanliness"`

	// Minimum acceptable average staff skill, 0-100 scale (skill level x10).
	MinStaffSkill int `yaml:"min_staff_skill"`

	// 0..1; higher means more sensitive to prices above ReasonablePrice.
	PriceSensitivity float64 `yaml:"price_sensitivity"`

	// 0..1; how much ancillary facilities matter.
	FacilityImportance float64 `yaml:"facility_importance"`

	// The entry fee this archetype considers fair, and the hard ceiling
	// beyond which they will not visit at all.
	ReasonablePrice  int `yaml:"reasonable_price"`
	MaxAcceptableFee int `yaml:"max_acceptable_fee"`

	// Facility kinds this archetype gives extra credit for.
	FavoredFacilities []FacilityKind `yaml:"favored_facilities,omitempty"`

	// Feedback lines: [0:2] positive, [2:3] neutral, [3:5] negative.
	Feedback []string `yaml:"feedback,omitempty"`
}

// DefaultPersonalities is the closed archetype set shipped with the game.
// It lives in config so thresholds can be rebalanced without a code change.
func DefaultPersonalities() []PersonalityProfile {
	return []PersonalityProfile{
		{
			Type:        RelaxationSeeker,
			Description: "Values peaceful atmosphere and comfort above all",
			Weight:      25, TempMinC: 38, TempMaxC: 40,
			MinCleanliness: 90, MinStaffSkill: 70,
			PriceSensitivity: 0.8, FacilityImportance: 0.5,
			ReasonablePrice: 2500, MaxAcceptableFee: 5000,
			FavoredFacilities: []FacilityKind{FacilityAccommodation},
			Feedback: []string{
				"The water temperature was perfect for relaxation.",
				"This is exactly the peaceful retreat I was looking for.",
				"The staff was so attentive, I felt completely at ease.",
				"I wish the pools were cleaner, it affected my relaxation.",
				"The atmosphere was too noisy for proper relaxation.",
			},
		},
		{
			Type:        LuxuryEnthusiast,
			Description: "Expects premium service and amenities",
			Weight:      10, TempMinC: 39, TempMaxC: 41,
			MinCleanliness: 98, MinStaffSkill: 95,
			PriceSensitivity: 0.4, FacilityImportance: 0.9,
			ReasonablePrice: 5000, MaxAcceptableFee: 10000,
			FavoredFacilities: []FacilityKind{FacilityRestaurant, FacilityAccommodation},
			Feedback: []string{
				"Absolutely worth every yen - a truly luxurious experience!",
				"A wonderful high-end experience, I'll recommend it to my circle.",
				"The facilities were impressive, but staff training needs improvement.",
				"The service was not up to the premium standards I expect.",
				"I expect perfection at these prices, and was disappointed.",
			},
		},
		{
			Type:        HealthConscious,
			Description: "Focused on health benefits and natural ingredients",
			Weight:      15, TempMinC: 40, TempMaxC: 42,
			MinCleanliness: 95, MinStaffSkill: 75,
			PriceSensitivity: 0.6, FacilityImportance: 0.7,
			ReasonablePrice: 3000, MaxAcceptableFee: 6000,
			FavoredFacilities: []FacilityKind{FacilityEntertainment},
			Feedback: []string{
				"My skin feels amazing after using the special mineral pools!",
				"The staff was knowledgeable about the health benefits of each pool.",
				"I appreciated the mineral content information for each pool.",
				"The water didn't seem to have the therapeutic properties advertised.",
				"I was hoping for more health-focused amenities.",
			},
		},
		{
			Type:        BudgetTraveler,
			Description: "Looking for good value and affordable experience",
			Weight:      25, TempMinC: 37, TempMaxC: 41,
			MinCleanliness: 80, MinStaffSkill: 55,
			PriceSensitivity: 1.0, FacilityImportance: 0.4,
			ReasonablePrice: 1500, MaxAcceptableFee: 3000,
			FavoredFacilities: []FacilityKind{FacilityGiftShop},
			Feedback: []string{
				"Great value for the price, but basic amenities.",
				"A good balance of quality and affordability.",
				"I found the experience affordable and satisfying.",
				"Too expensive for what was offered.",
				"I wish there were more budget-friendly food options.",
			},
		},
		{
			Type:        TraditionalPurist,
			Description: "Values authentic Japanese onsen experience",
			Weight:      10, TempMinC: 41, TempMaxC: 43,
			MinCleanliness: 90, MinStaffSkill: 85,
			PriceSensitivity: 0.7, FacilityImportance: 0.6,
			ReasonablePrice: 3500, MaxAcceptableFee: 7000,
			Feedback: []string{
				"This felt like an authentic traditional onsen experience.",
				"A perfect balance of tradition and comfort.",
				"I appreciated the respect for Japanese bathing customs.",
				"Too commercialized, lost the traditional essence of onsen.",
				"The modern additions detracted from the traditional atmosphere.",
			},
		},
		{
			Type:        SocialButterfly,
			Description: "Enjoys the social aspects of onsen bathing",
			Weight:      15, TempMinC: 38, TempMaxC: 40,
			MinCleanliness: 85, MinStaffSkill: 75,
			PriceSensitivity: 0.6, FacilityImportance: 0.8,
			ReasonablePrice: 3000, MaxAcceptableFee: 6000,
			FavoredFacilities: []FacilityKind{FacilityEntertainment, FacilityRestaurant},
			Feedback: []string{
				"The communal areas were perfect for meeting fellow travelers!",
				"Loved the group activities and social spaces.",
				"The staff created a wonderful community feeling.",
				"The atmosphere was too quiet and restrictive.",
				"I wish there were more opportunities to socialize.",
			},
		},
	}
}

func (c Config) personality(t PersonalityType) (PersonalityProfile, bool) {
	for _, p := range c.Personalities {
		if p.Type == t {
			return p, true
		}
	}
	return PersonalityProfile{}, false
}

// feedbackFor picks a comment line matching the satisfaction bracket.
func (p PersonalityProfile) feedbackFor(score float64, roll int) string {
	if len(p.Feedback) < 5 {
		return ""
	}
	switch {
	case score >= 80:
		return p.Feedback[roll%2]
	case score >= 50:
		return p.Feedback[2]
	default:
		return p.Feedback[3+roll%2]
	}
}
