package game

import (
	"reflect"
	"testing"
)

func newTestResort(t *testing.T, seed int64) *Resort {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = seed
	r, err := NewResort("Yukemuri no Sato", cfg)
	if err != nil {
		t.Fatalf("new resort: %v", err)
	}
	return r
}

func TestAdvanceDayDeterministicRuns(t *testing.T) {
	run := func() []DailyResult {
		r := newTestResort(t, 4242)
		results := make([]DailyResult, 0, 30)
		for day := 0; day < 30; day++ {
			var actions []Action
			if day == 0 {
				actions = []Action{
					BuildPool{Name: "Main Bath", Size: PoolSmall, TemperatureC: 41},
					HireStaff{Name: "Tanaka", Role: RoleCleaner, SkillLevel: 4},
				}
			}
			res, err := r.AdvanceDay(actions)
			if err != nil {
				t.Fatalf("advance day: %v", err)
			}
			results = append(results, res)
		}
		return results
	}

	first := run()
	second := run()
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical seed and actions must replay identically")
	}
}

func TestAdvanceDayLedgerIdentity(t *testing.T) {
	r := newTestResort(t, 7)
	if _, err := r.AdvanceDay([]Action{BuildPool{Name: "Main Bath", Size: PoolSmall, TemperatureC: 40}}); err != nil {
		t.Fatalf("advance day: %v", err)
	}

	for day := 0; day < 50; day++ {
		before := r.Cash
		res, err := r.AdvanceDay(nil)
		if err != nil {
			t.Fatalf("advance day: %v", err)
		}
		if res.Profit != res.Revenue.Total()-res.Expenses.Total() {
			t.Fatalf("day %d: profit %d != revenue %d - expenses %d",
				res.Day, res.Profit, res.Revenue.Total(), res.Expenses.Total())
		}
		if res.Cash != before+res.Profit {
			t.Fatalf("day %d: cash %d != %d + profit %d", res.Day, res.Cash, before, res.Profit)
		}
		if res.Cash != r.Cash {
			t.Fatalf("day %d: result cash %d disagrees with aggregate %d", res.Day, res.Cash, r.Cash)
		}
	}
}

// The minimal-resort scenario: 75k capital, one small pool, 1000 yen fee,
// no staff, ten days. Loss-making days and dwindling cash are ordinary
// results; every day must still satisfy the ledger identity.
func TestAdvanceDayMinimalResortScenario(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 1000
	cfg.StartingCash = 75000
	cfg.EntryFee = 1000
	r, err := NewResort("Minimal", cfg)
	if err != nil {
		t.Fatalf("new resort: %v", err)
	}

	res, err := r.AdvanceDay([]Action{BuildPool{Name: "Only Bath", Size: PoolSmall, TemperatureC: 40}})
	if err != nil {
		t.Fatalf("day 1: %v", err)
	}
	if len(res.RejectedActions) != 0 {
		t.Fatalf("building the pool must succeed, rejected: %v", res.RejectedActions)
	}

	for day := 0; day < 9; day++ {
		before := r.Cash
		res, err = r.AdvanceDay(nil)
		if err != nil {
			t.Fatalf("day %d: %v", res.Day, err)
		}
		if res.Cash != before+res.Profit {
			t.Fatalf("day %d: ledger identity broken", res.Day)
		}
		if res.Reputation < 0 || res.Reputation > 100 {
			t.Fatalf("day %d: reputation out of bounds: %.2f", res.Day, res.Reputation)
		}
		if res.CustomerCount < 0 {
			t.Fatalf("day %d: negative customer count", res.Day)
		}
	}
	if r.Day != 11 {
		t.Fatalf("ten advances from day 1 should land on day 11, got %d", r.Day)
	}
}

func TestAdvanceDayDebtIsRepresentable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 55
	cfg.StartingCash = 1000
	cfg.StartingReputation = 10 // below the customer threshold: all cost, no income
	r, err := NewResort("Broke", cfg)
	if err != nil {
		t.Fatalf("new resort: %v", err)
	}

	var last DailyResult
	for day := 0; day < 5; day++ {
		last, err = r.AdvanceDay(nil)
		if err != nil {
			t.Fatalf("advance day: %v", err)
		}
	}
	if last.Cash >= 0 {
		t.Fatalf("expenses with no income must drive cash negative, got %d", last.Cash)
	}
	if r.Cash != last.Cash {
		t.Fatalf("debt must be reported, not clamped: %d != %d", r.Cash, last.Cash)
	}
}

func TestAdvanceDayInvalidHireLeavesStateUnchanged(t *testing.T) {
	r := newTestResort(t, 77)

	for _, skill := range []int{0, 11, -3} {
		staffBefore := len(r.Staff)
		cashBefore := r.Cash

		res, err := r.AdvanceDay([]Action{HireStaff{Name: "Ghost", Role: RoleCleaner, SkillLevel: skill}})
		if err != nil {
			t.Fatalf("rejected action must not abort the day: %v", err)
		}
		if len(res.RejectedActions) != 1 {
			t.Fatalf("expected one rejection for skill %d, got %v", skill, res.RejectedActions)
		}
		if res.RejectedActions[0].Kind != "hire_staff" {
			t.Fatalf("unexpected rejection kind %q", res.RejectedActions[0].Kind)
		}
		if len(r.Staff) != staffBefore {
			t.Fatalf("invalid hire must not change the roster")
		}
		if r.Cash != cashBefore+res.Profit {
			t.Fatalf("invalid hire must not move money outside the ledger")
		}
	}
}

func TestAdvanceDayCleanlinessNeverNegative(t *testing.T) {
	r := newTestResort(t, 33)
	if _, err := r.AdvanceDay([]Action{BuildPool{Name: "Main Bath", Size: PoolLarge, TemperatureC: 42}}); err != nil {
		t.Fatalf("advance day: %v", err)
	}

	for day := 0; day < 100; day++ {
		if _, err := r.AdvanceDay(nil); err != nil {
			t.Fatalf("advance day: %v", err)
		}
		for _, pool := range r.Pools {
			if pool.Cleanliness < 0 || pool.Cleanliness > 100 {
				t.Fatalf("day %d: cleanliness out of bounds: %d", r.Day, pool.Cleanliness)
			}
		}
	}
}

func TestAdvanceDayCleanPoolAction(t *testing.T) {
	r := newTestResort(t, 12)
	if _, err := r.AdvanceDay([]Action{BuildPool{Name: "Main Bath", Size: PoolSmall, TemperatureC: 40}}); err != nil {
		t.Fatalf("advance day: %v", err)
	}
	for day := 0; day < 5; day++ {
		if _, err := r.AdvanceDay(nil); err != nil {
			t.Fatalf("advance day: %v", err)
		}
	}
	if r.Pools[0].Cleanliness == 100 {
		t.Fatalf("five days of decay should have dirtied the pool")
	}

	// The clean action resets before the day's decay applies.
	if _, err := r.AdvanceDay([]Action{CleanPool{PoolName: "Main Bath"}}); err != nil {
		t.Fatalf("advance day: %v", err)
	}
	if r.Pools[0].Cleanliness < 100-r.cfg.CleanlinessDecayMax {
		t.Fatalf("cleaned pool should only carry one day of decay, got %d", r.Pools[0].Cleanliness)
	}
}

func TestAdvanceDaySetEntryFee(t *testing.T) {
	r := newTestResort(t, 2)

	if _, err := r.AdvanceDay([]Action{SetEntryFee{Fee: 3200}}); err != nil {
		t.Fatalf("advance day: %v", err)
	}
	if r.EntryFee != 3200 {
		t.Fatalf("entry fee not applied, got %d", r.EntryFee)
	}

	res, err := r.AdvanceDay([]Action{SetEntryFee{Fee: -50}})
	if err != nil {
		t.Fatalf("advance day: %v", err)
	}
	if len(res.RejectedActions) != 1 || r.EntryFee != 3200 {
		t.Fatalf("negative fee must be rejected and leave the fee at 3200, got %d", r.EntryFee)
	}
}

func TestAdvanceDayBuildDeductsConstructionCost(t *testing.T) {
	r := newTestResort(t, 90)
	cashBefore := r.Cash

	res, err := r.AdvanceDay([]Action{BuildPool{Name: "Main Bath", Size: PoolSmall, TemperatureC: 40}})
	if err != nil {
		t.Fatalf("advance day: %v", err)
	}
	want := cashBefore - PoolSmall.ConstructionCost() + res.Profit
	if r.Cash != want {
		t.Fatalf("cash after build: got %d, want %d", r.Cash, want)
	}
}

func TestAdvanceDayRejectsUnaffordableConstruction(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 5
	cfg.StartingCash = 10000
	r, err := NewResort("Poor", cfg)
	if err != nil {
		t.Fatalf("new resort: %v", err)
	}

	res, err := r.AdvanceDay([]Action{BuildFacility{Name: "Big Hotel", Facility: FacilityAccommodation, Tier: 3}})
	if err != nil {
		t.Fatalf("advance day: %v", err)
	}
	if len(res.RejectedActions) != 1 {
		t.Fatalf("unaffordable build must be rejected, got %v", res.RejectedActions)
	}
	if len(r.Facilities) != 0 {
		t.Fatalf("rejected build must not add a facility")
	}
}

func TestAdvanceDayEventsAreReported(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 101
	cfg.EventChance = 1
	cfg.EventRolls = 1
	r, err := NewResort("Eventful", cfg)
	if err != nil {
		t.Fatalf("new resort: %v", err)
	}

	res, err := r.AdvanceDay(nil)
	if err != nil {
		t.Fatalf("advance day: %v", err)
	}
	if len(res.Events) == 0 {
		t.Fatalf("certain event chance must fire at least one event")
	}
	if len(r.EventLog) == 0 {
		t.Fatalf("fired events must be logged on the aggregate")
	}
}

func TestAdvanceDayZeroEventsIsOrdinary(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 6
	cfg.EventChance = 0
	r, err := NewResort("Quiet", cfg)
	if err != nil {
		t.Fatalf("new resort: %v", err)
	}

	res, err := r.AdvanceDay(nil)
	if err != nil {
		t.Fatalf("a day without events must not error: %v", err)
	}
	if len(res.Events) != 0 {
		t.Fatalf("expected no events, got %v", res.Events)
	}
}

func TestSeasonReportedMatchesDayIndex(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 14
	cfg.SeasonLengthDays = 3
	r, err := NewResort("Seasonal", cfg)
	if err != nil {
		t.Fatalf("new resort: %v", err)
	}

	for day := 0; day < 12; day++ {
		res, err := r.AdvanceDay(nil)
		if err != nil {
			t.Fatalf("advance day: %v", err)
		}
		if want := SeasonForDay(res.Day, 3); res.Season != want {
			t.Fatalf("day %d: season %s, want %s", res.Day, res.Season, want)
		}
		if res.Weather.Day != res.Day {
			t.Fatalf("day %d: weather rolled for day %d", res.Day, res.Weather.Day)
		}
	}
}

func TestAdvanceDayAddIngredientAcceptsLowercase(t *testing.T) {
	r := newTestResort(t, 13)
	if _, err := r.AdvanceDay([]Action{BuildPool{Name: "Main Bath", Size: PoolSmall, TemperatureC: 41}}); err != nil {
		t.Fatalf("advance day: %v", err)
	}

	res, err := r.AdvanceDay([]Action{AddIngredient{PoolName: "Main Bath", Ingredient: "sulfur"}})
	if err != nil {
		t.Fatalf("advance day: %v", err)
	}
	if len(res.RejectedActions) != 0 {
		t.Fatalf("lowercase mineral must be accepted, got rejections %v", res.RejectedActions)
	}
	if !r.Pools[0].hasIngredient("Sulfur") {
		t.Fatalf("pool should carry the canonical catalog entry, got %v", r.Pools[0].Ingredients)
	}
}

func TestAdvanceDayUnpaidWagesDriveStaffAway(t *testing.T) {
	newBroke := func() *Resort {
		cfg := DefaultConfig()
		cfg.Seed = 91
		cfg.StartingCash = 500
		cfg.StartingReputation = 10
		r, err := NewResort("Broke Bathhouse", cfg)
		if err != nil {
			t.Fatalf("new resort: %v", err)
		}
		r.Staff = []StaffMember{
			{Name: "Aiko", Role: RoleCleaner, SkillLevel: 3, Happiness: 25},
			{Name: "Benkei", Role: RoleChef, SkillLevel: 5, Happiness: 90},
		}
		return r
	}

	r := newBroke()
	res, err := r.AdvanceDay(nil)
	if err != nil {
		t.Fatalf("advance day: %v", err)
	}

	// Aiko starts at 25 happiness: the 30-point dock bottoms her out, so she
	// must leave regardless of the coin flip.
	for _, m := range r.Staff {
		if m.Name == "Aiko" {
			t.Fatalf("staff at zero happiness must leave")
		}
	}
	left := false
	for _, name := range res.StaffDepartures {
		if name == "Aiko" {
			left = true
		}
	}
	if !left {
		t.Fatalf("departure must be reported, got %v", res.StaffDepartures)
	}
	if len(r.Staff) != 2-len(res.StaffDepartures) {
		t.Fatalf("roster size %d disagrees with %d reported departures",
			len(r.Staff), len(res.StaffDepartures))
	}

	// Survivors carry the 30-point dock on top of the day's ordinary drift.
	for _, m := range r.Staff {
		if m.Happiness > 60 {
			t.Fatalf("unpaid staff should be docked 30 happiness, %s has %d", m.Name, m.Happiness)
		}
	}
	if len(r.EventLog) == 0 {
		t.Fatalf("departures must be logged")
	}

	// Attrition draws from a day-keyed stream, so a replay is identical.
	again, err := newBroke().AdvanceDay(nil)
	if err != nil {
		t.Fatalf("advance day: %v", err)
	}
	if !reflect.DeepEqual(res.StaffDepartures, again.StaffDepartures) {
		t.Fatalf("departures must replay identically: %v vs %v",
			res.StaffDepartures, again.StaffDepartures)
	}
}

func TestAdvanceDayPaidWagesKeepStaff(t *testing.T) {
	r := newTestResort(t, 91)
	r.Staff = []StaffMember{{Name: "Benkei", Role: RoleChef, SkillLevel: 5, Happiness: 90}}

	res, err := r.AdvanceDay(nil)
	if err != nil {
		t.Fatalf("advance day: %v", err)
	}
	if len(res.StaffDepartures) != 0 {
		t.Fatalf("covered wages must not cost staff, got departures %v", res.StaffDepartures)
	}
	if len(r.Staff) != 1 {
		t.Fatalf("roster should be intact, got %d members", len(r.Staff))
	}
	if r.Staff[0].Happiness < 85 {
		t.Fatalf("paid staff only drift a little, happiness %d", r.Staff[0].Happiness)
	}
}
