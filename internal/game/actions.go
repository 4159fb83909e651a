package game

// Action is a pre-day player decision. Each implementation validates itself
// against the live aggregate and either applies cleanly or returns an
// InvalidActionError, in which case the day proceeds without it.
type Action interface {
	Kind() string
	apply(r *Resort) error
}

// RejectedAction reports one action that failed validation.
type RejectedAction struct {
	Kind   string `json:"kind"`
	Reason string `json:"reason"`
}

type SetEntryFee struct {
	Fee int
}

func (SetEntryFee) Kind() string { return "set_entry_fee" }

func (a SetEntryFee) apply(r *Resort) error {
	if a.Fee < 0 {
		return invalidActionf(a.Kind(), "entry fee cannot be negative, got %d", a.Fee)
	}
	r.EntryFee = a.Fee
	return nil
}

type HireStaff struct {
	Name       string
	Role       StaffRole
	SkillLevel int
}

func (HireStaff) Kind() string { return "hire_staff" }

func (a HireStaff) apply(r *Resort) error {
	if !a.Role.valid() {
		return invalidActionf(a.Kind(), "unknown role %q", a.Role)
	}
	if a.SkillLevel < MinSkillLevel || a.SkillLevel > MaxSkillLevel {
		return invalidActionf(a.Kind(), "skill level must be within [%d,%d], got %d",
			MinSkillLevel, MaxSkillLevel, a.SkillLevel)
	}
	r.Staff = append(r.Staff, StaffMember{
		Name:       a.Name,
		Role:       a.Role,
		SkillLevel: a.SkillLevel,
		Happiness:  80,
	})
	return nil
}

type FireStaff struct {
	Name string
}

func (FireStaff) Kind() string { return "fire_staff" }

func (a FireStaff) apply(r *Resort) error {
	for i, m := range r.Staff {
		if m.Name == a.Name {
			r.Staff = append(r.Staff[:i], r.Staff[i+1:]...)
			return nil
		}
	}
	return invalidActionf(a.Kind(), "no staff member named %q", a.Name)
}

type BuildPool struct {
	Name         string
	Size         PoolSize
	TemperatureC int
}

func (BuildPool) Kind() string { return "build_pool" }

func (a BuildPool) apply(r *Resort) error {
	if !a.Size.valid() {
		return invalidActionf(a.Kind(), "unknown pool size %q", a.Size)
	}
	if a.TemperatureC < 20 || a.TemperatureC > 60 {
		return invalidActionf(a.Kind(), "temperature must be within [20,60] C, got %d", a.TemperatureC)
	}
	cost := a.Size.ConstructionCost()
	if r.Cash < cost {
		return invalidActionf(a.Kind(), "construction costs %d, cash is %d", cost, r.Cash)
	}
	r.Cash -= cost
	r.Pools = append(r.Pools, NewPool(a.Name, a.Size, a.TemperatureC))
	r.LastUpgradeDay = r.Day
	return nil
}

type AddIngredient struct {
	PoolName   string
	Ingredient string
}

func (AddIngredient) Kind() string { return "add_ingredient" }

func (a AddIngredient) apply(r *Resort) error {
	ing, ok := findIngredient(a.Ingredient)
	if !ok {
		return invalidActionf(a.Kind(), "unknown ingredient %q", a.Ingredient)
	}
	for i := range r.Pools {
		if r.Pools[i].Name != a.PoolName {
			continue
		}
		if r.Pools[i].hasIngredient(ing.Name) {
			return invalidActionf(a.Kind(), "pool %q already has %s", a.PoolName, ing.Name)
		}
		r.Pools[i].Ingredients = append(r.Pools[i].Ingredients, ing)
		r.LastUpgradeDay = r.Day
		return nil
	}
	return invalidActionf(a.Kind(), "no pool named %q", a.PoolName)
}

type BuildFacility struct {
	Name     string
	Facility FacilityKind
	Tier     int
}

func (BuildFacility) Kind() string { return "build_facility" }

func (a BuildFacility) apply(r *Resort) error {
	if !a.Facility.valid() {
		return invalidActionf(a.Kind(), "unknown facility kind %q", a.Facility)
	}
	if a.Tier < 1 || a.Tier > 3 {
		return invalidActionf(a.Kind(), "tier must be within [1,3], got %d", a.Tier)
	}
	f := NewFacility(a.Name, a.Facility, a.Tier)
	cost := f.ConstructionCost()
	if r.Cash < cost {
		return invalidActionf(a.Kind(), "construction costs %d, cash is %d", cost, r.Cash)
	}
	r.Cash -= cost
	r.Facilities = append(r.Facilities, f)
	r.LastUpgradeDay = r.Day
	return nil
}

type CleanPool struct {
	PoolName string
}

func (CleanPool) Kind() string { return "clean_pool" }

func (a CleanPool) apply(r *Resort) error {
	for i := range r.Pools {
		if r.Pools[i].Name == a.PoolName {
			r.Pools[i].Cleanliness = 100
			return nil
		}
	}
	return invalidActionf(a.Kind(), "no pool named %q", a.PoolName)
}

type GiveBonus struct {
	Name   string
	Amount int
}

func (GiveBonus) Kind() string { return "give_bonus" }

func (a GiveBonus) apply(r *Resort) error {
	if a.Amount <= 0 {
		return invalidActionf(a.Kind(), "bonus must be positive, got %d", a.Amount)
	}
	if r.Cash < a.Amount {
		return invalidActionf(a.Kind(), "bonus costs %d, cash is %d", a.Amount, r.Cash)
	}
	for i := range r.Staff {
		if r.Staff[i].Name == a.Name {
			r.Cash -= a.Amount
			r.Staff[i].Happiness = clamp(r.Staff[i].Happiness+a.Amount/100, 0, 100)
			return nil
		}
	}
	return invalidActionf(a.Kind(), "no staff member named %q", a.Name)
}

type StartCampaign struct {
	Name string
	Cost int
	Days int
}

func (StartCampaign) Kind() string { return "start_campaign" }

func (a StartCampaign) apply(r *Resort) error {
	if a.Days <= 0 {
		return invalidActionf(a.Kind(), "duration must be positive, got %d days", a.Days)
	}
	if a.Cost <= 0 {
		return invalidActionf(a.Kind(), "cost must be positive, got %d", a.Cost)
	}
	if r.Cash < a.Cost {
		return invalidActionf(a.Kind(), "campaign costs %d, cash is %d", a.Cost, r.Cash)
	}
	r.Cash -= a.Cost
	r.Marketing.Campaigns = append(r.Marketing.Campaigns, Campaign{
		Name:          a.Name,
		Cost:          a.Cost,
		DaysRemaining: a.Days,
	})
	return nil
}

type StartPromotion struct {
	Name            string
	DiscountPercent int
	Days            int
}

func (StartPromotion) Kind() string { return "start_promotion" }

func (a StartPromotion) apply(r *Resort) error {
	if a.DiscountPercent <= 0 || a.DiscountPercent >= 100 {
		return invalidActionf(a.Kind(), "discount must be within (0,100), got %d", a.DiscountPercent)
	}
	if a.Days <= 0 {
		return invalidActionf(a.Kind(), "duration must be positive, got %d days", a.Days)
	}
	r.Marketing.Promotions = append(r.Marketing.Promotions, Promotion{
		Name:            a.Name,
		DiscountPercent: a.DiscountPercent,
		DaysRemaining:   a.Days,
	})
	return nil
}
