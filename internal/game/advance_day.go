package game

import "fmt"

// dayStage tracks the strictly sequential day-resolution pipeline. Stages
// never reorder: events must be known before customers are generated because
// some events change demand, and reputation updates only after satisfaction
// is averaged.
type dayStage int

const (
	stageAwaitingDayStart dayStage = iota
	stageWeatherRolled
	stageEventsResolved
	stageCustomersGenerated
	stageSatisfactionComputed
	stageFinancialsSettled
	stageReputationUpdated
	stageFacilitiesDecayed
	stageDayComplete
)

// DailyResult is the immutable record of one resolved day, consumed by the
// presentation layer. The engine does no text formatting beyond event and
// feedback strings that are themselves data.
type DailyResult struct {
	Day     int          `json:"day"`
	Season  Season       `json:"season"`
	Weather WeatherState `json:"weather"`

	CustomerCount   int                   `json:"customer_count"`
	Mix             []CustomerMix         `json:"mix,omitempty"`
	Satisfaction    []SatisfactionSummary `json:"satisfaction,omitempty"`
	AvgSatisfaction float64               `json:"avg_satisfaction"`

	Revenue  RevenueBreakdown `json:"revenue"`
	Expenses ExpenseBreakdown `json:"expenses"`
	Profit   int              `json:"profit"`
	Cash     int              `json:"cash"`

	ReputationDelta float64 `json:"reputation_delta"`
	Reputation      float64 `json:"reputation"`

	Events   []FiredEvent `json:"events,omitempty"`
	Feedback []Feedback   `json:"feedback,omitempty"`

	// Staff who walked out over unpaid wages.
	StaffDepartures []string `json:"staff_departures,omitempty"`

	RejectedActions []RejectedAction `json:"rejected_actions,omitempty"`
}

// AdvanceDay resolves exactly one day as a single transaction over the
// aggregate. Player actions apply first; invalid ones are skipped and
// reported, never fatal. A fatal error (invariant violation) aborts the day
// with no partial commit observable to the caller.
func (r *Resort) AdvanceDay(actions []Action) (DailyResult, error) {
	stage := stageAwaitingDayStart
	snapshot := r.clone()

	rejected := r.applyActions(actions)
	r.Day++
	day := r.Day

	// WeatherRolled
	weather := r.weatherForDay(day)
	r.Weather = weather
	stage = advanceStage(stage, stageWeatherRolled)

	// EventsResolved
	fired := rollEvents(r.cfg, eventContext{
		Reputation: r.Reputation,
		Season:     r.Season(),
		Weather:    weather.Type,
		Day:        day,
		HasPools:   len(r.Pools) > 0,
		HasStaff:   len(r.Staff) > 0,
	})
	eventCash, eventDemandMult := r.applyEventEffects(fired)
	stage = advanceStage(stage, stageEventsResolved)

	// CustomersGenerated
	r.workStaff(day)
	mix := r.generateCustomers(weather, eventDemandMult)
	guests := totalCustomers(mix)
	stage = advanceStage(stage, stageCustomersGenerated)

	// SatisfactionComputed
	summaries, avgSatisfaction, spenders := r.scoreDay(mix, weather)
	stage = advanceStage(stage, stageSatisfactionComputed)

	// FinancialsSettled
	revenue, expenses := r.settleDay(guests, spenders, eventCash)
	departures := r.handleUnpaidWages(day, expenses.Wages)
	profit := revenue.Total() - expenses.Total()
	r.Cash += profit
	stage = advanceStage(stage, stageFinancialsSettled)

	// ReputationUpdated
	before := r.Reputation
	r.Reputation = applyDailyReputation(r.cfg, r.Reputation, avgSatisfaction, guests > 0)
	reputationDelta := r.Reputation - before
	stage = advanceStage(stage, stageReputationUpdated)

	// FacilitiesDecayed
	r.decayPools(day)
	for i := range r.Facilities {
		r.Facilities[i].updateOccupancy(r.Reputation, r.Season())
	}
	r.Marketing.tick()
	stage = advanceStage(stage, stageFacilitiesDecayed)

	// The day is one transaction: a failed invariant check rolls the whole
	// aggregate back, no partial day is ever committed.
	if err := r.checkInvariants(); err != nil {
		*r = snapshot
		return DailyResult{}, err
	}
	stage = advanceStage(stage, stageDayComplete)
	_ = stage

	result := DailyResult{
		Day:             day,
		Season:          r.Season(),
		Weather:         weather,
		CustomerCount:   guests,
		Mix:             mix,
		Satisfaction:    summaries,
		AvgSatisfaction: avgSatisfaction,
		Revenue:         revenue,
		Expenses:        expenses,
		Profit:          profit,
		Cash:            r.Cash,
		ReputationDelta: reputationDelta,
		Reputation:      r.Reputation,
		Events:          fired,
		Feedback:        r.feedbackSample(summaries),
		StaffDepartures: departures,
		RejectedActions: rejected,
	}

	for _, ev := range fired {
		r.EventLog = append(r.EventLog, fmt.Sprintf("Day %d: %s - %s", day, ev.Name, ev.Description))
	}
	for _, name := range departures {
		r.EventLog = append(r.EventLog, fmt.Sprintf("Day %d: %s left over unpaid wages", day, name))
	}

	return result, nil
}

// advanceStage enforces that the pipeline moves exactly one stage forward.
// A skipped stage is a programming error and panics immediately rather than
// producing a half-resolved day.
func advanceStage(current, next dayStage) dayStage {
	if next != current+1 {
		panic(fmt.Sprintf("day pipeline stage skipped: %d -> %d", current, next))
	}
	return next
}

func (r *Resort) applyActions(actions []Action) []RejectedAction {
	var rejected []RejectedAction
	for _, action := range actions {
		if err := action.apply(r); err != nil {
			reason := err.Error()
			if iae, ok := err.(*InvalidActionError); ok {
				reason = iae.Reason
			}
			rejected = append(rejected, RejectedAction{Kind: action.Kind(), Reason: reason})
		}
	}
	return rejected
}

// applyEventEffects folds fired events into the aggregate: reputation and
// cleanliness deltas land immediately, cash deltas are carried into the
// ledger, demand multipliers compound and feed customer generation.
func (r *Resort) applyEventEffects(fired []FiredEvent) (cash int, demandMult float64) {
	demandMult = 1.0
	rng := dayRNG(r.cfg.Seed, r.Day, "event-targets")

	for _, ev := range fired {
		cash += ev.Cash
		if ev.Reputation != 0 {
			r.Reputation = clampFloat(r.Reputation+ev.Reputation, 0, 100)
		}
		if ev.Cleanliness != 0 && len(r.Pools) > 0 {
			target := rng.IntN(len(r.Pools))
			r.Pools[target].Cleanliness = clamp(r.Pools[target].Cleanliness+ev.Cleanliness, 0, 100)
		}
		if ev.StaffHappiness != 0 {
			for i := range r.Staff {
				r.Staff[i].Happiness = clamp(r.Staff[i].Happiness+ev.StaffHappiness, 0, 100)
			}
		}
		if ev.DemandMult > 0 {
			demandMult *= ev.DemandMult
		}
	}
	return cash, demandMult
}

// decayPools applies the configured daily grime, then lets cleaners claw
// some back in proportion to their average skill.
func (r *Resort) decayPools(day int) {
	if len(r.Pools) == 0 {
		return
	}
	rng := dayRNG(r.cfg.Seed, day, "decay")

	span := r.cfg.CleanlinessDecayMax - r.cfg.CleanlinessDecayMin
	for i := range r.Pools {
		decay := r.cfg.CleanlinessDecayMin
		if span > 0 {
			decay += rng.IntN(span + 1)
		}
		r.Pools[i].Cleanliness = clamp(r.Pools[i].Cleanliness-decay, 0, 100)
	}

	cleaners := r.staffByRole(RoleCleaner)
	if len(cleaners) == 0 {
		return
	}
	totalSkill := 0
	for _, m := range cleaners {
		totalSkill += m.SkillLevel
	}
	recovery := r.cfg.CleanerRecoveryPerSkill * totalSkill / len(cleaners)
	for i := range r.Pools {
		r.Pools[i].Cleanliness = clamp(r.Pools[i].Cleanliness+recovery, 0, 100)
	}
}

// checkInvariants asserts the aggregate's documented bounds at the end of a
// day. A violation is an engine bug and is surfaced, never clamped away.
func (r *Resort) checkInvariants() error {
	if r.Reputation < 0 || r.Reputation > 100 {
		return &StateInvariantViolation{Invariant: "reputation within [0,100]", Value: r.Reputation}
	}
	for _, pool := range r.Pools {
		if pool.Cleanliness < 0 || pool.Cleanliness > 100 {
			return &StateInvariantViolation{
				Invariant: fmt.Sprintf("pool %q cleanliness within [0,100]", pool.Name),
				Value:     float64(pool.Cleanliness),
			}
		}
	}
	return nil
}
