package game

type FacilityKind string

const (
	FacilityRestaurant    FacilityKind = "restaurant"
	FacilityGiftShop      FacilityKind = "gift_shop"
	FacilityAccommodation FacilityKind = "accommodation"
	FacilityEntertainment FacilityKind = "entertainment"
)

// Facility is an ancillary building. Tier is 1..3 (budget/standard/premium
// for restaurants, small/medium/large for shops and lodging).
type Facility struct {
	Name          string       `json:"name" yaml:"name"`
	Kind          FacilityKind `json:"kind" yaml:"kind"`
	Tier          int          `json:"tier" yaml:"tier"`
	Quality       int          `json:"quality" yaml:"quality"`
	Popularity    int          `json:"popularity" yaml:"popularity"`
	Occupancy     int          `json:"occupancy" yaml:"occupancy"`
	IsOperational bool         `json:"is_operational" yaml:"is_operational"`
}

func (k FacilityKind) valid() bool {
	switch k {
	case FacilityRestaurant, FacilityGiftShop, FacilityAccommodation, FacilityEntertainment:
		return true
	}
	return false
}

func (k FacilityKind) Label() string {
	switch k {
	case FacilityRestaurant:
		return "Restaurant"
	case FacilityGiftShop:
		return "Gift Shop"
	case FacilityAccommodation:
		return "Accommodation"
	case FacilityEntertainment:
		return "Entertainment"
	default:
		return "Unknown"
	}
}

func NewFacility(name string, kind FacilityKind, tier int) Facility {
	f := Facility{
		Name:          name,
		Kind:          kind,
		Tier:          tier,
		Quality:       40 + tier*10,
		Popularity:    40 + tier*5,
		IsOperational: true,
	}
	return f
}

func (f Facility) ConstructionCost() int {
	switch f.Kind {
	case FacilityRestaurant:
		return 200000 * f.Tier
	case FacilityGiftShop:
		return 100000 * f.Tier
	case FacilityAccommodation:
		return 300000 * f.Tier
	case FacilityEntertainment:
		return 150000 * f.Tier
	default:
		return 0
	}
}

func (f Facility) DailyCost() int {
	switch f.Kind {
	case FacilityRestaurant:
		return 5000 * f.Tier
	case FacilityGiftShop:
		return 2000 * f.Tier
	case FacilityAccommodation:
		return 6000 * f.Tier
	case FacilityEntertainment:
		return 3000 * f.Tier
	default:
		return 0
	}
}

// StaffRequired is the headcount needed to run the facility at full
// efficiency.
func (f Facility) StaffRequired() int {
	switch f.Kind {
	case FacilityRestaurant:
		return 2 * f.Tier
	case FacilityGiftShop:
		if f.Tier <= 2 {
			return 1
		}
		return 2
	case FacilityAccommodation:
		return 1 + f.Tier
	case FacilityEntertainment:
		return f.Tier
	default:
		return 0
	}
}

// Capacity is guest capacity for accommodation, seats/slots otherwise.
func (f Facility) Capacity() int {
	switch f.Kind {
	case FacilityAccommodation:
		return 10 * f.Tier
	case FacilityRestaurant:
		return 20 * f.Tier
	default:
		return 15 * f.Tier
	}
}

// avgSpend is the average ancillary spend per served guest.
func (f Facility) avgSpend() int {
	switch f.Kind {
	case FacilityRestaurant:
		return 1500 * f.Tier
	case FacilityGiftShop:
		return 800 * f.Tier
	case FacilityAccommodation:
		return 5000 * f.Tier
	case FacilityEntertainment:
		return 1000 * f.Tier
	default:
		return 0
	}
}

// operationalEfficiency prorates a facility's income by staffing. With no
// relevant staff the doors barely stay open.
func (f *Facility) operationalEfficiency(assigned int) float64 {
	required := f.StaffRequired()
	if required <= 0 {
		f.IsOperational = true
		return 1.0
	}
	switch {
	case assigned == 0:
		f.IsOperational = false
		return 0.2
	case assigned < required:
		f.IsOperational = true
		return 0.5 + 0.5*float64(assigned)/float64(required)
	default:
		f.IsOperational = true
		return 1.0
	}
}

// dailyIncome estimates what the facility captures from the day's spenders.
// Popularity caps the capture rate at half the spending guests.
func (f Facility) dailyIncome(spenders int, efficiency float64) int {
	served := spenders * f.Popularity / 200
	if f.Kind == FacilityAccommodation {
		served = f.Occupancy
	}
	if limit := f.Capacity(); served > limit {
		served = limit
	}
	return int(float64(served*f.avgSpend()) * efficiency)
}

// updateOccupancy tracks overnight stays against reputation and season.
func (f *Facility) updateOccupancy(reputation float64, season Season) {
	if f.Kind != FacilityAccommodation {
		return
	}
	rate := reputation / 100
	switch season {
	case SeasonWinter:
		rate *= 1.3
	case SeasonAutumn:
		rate *= 1.1
	case SeasonSummer:
		rate *= 0.7
	}
	f.Occupancy = clamp(int(rate*float64(f.Capacity())), 0, f.Capacity())
}

// rolesForFacility maps facility kinds to the staff roles that can run them.
func rolesForFacility(kind FacilityKind) []StaffRole {
	switch kind {
	case FacilityRestaurant:
		return []StaffRole{RoleChef, RoleServer}
	case FacilityGiftShop:
		return []StaffRole{RoleReceptionist}
	case FacilityAccommodation:
		return []StaffRole{RoleAttendant, RoleReceptionist}
	case FacilityEntertainment:
		return []StaffRole{RoleAttendant}
	default:
		return nil
	}
}

// assignedStaffFor counts roster members whose role serves the facility,
// split evenly across facilities of the same kind.
func (r *Resort) assignedStaffFor(f Facility) int {
	count := 0
	for _, role := range rolesForFacility(f.Kind) {
		count += len(r.staffByRole(role))
	}
	sameKind := 0
	for _, other := range r.Facilities {
		if other.Kind == f.Kind {
			sameKind++
		}
	}
	if sameKind > 1 {
		count /= sameKind
	}
	return count
}
