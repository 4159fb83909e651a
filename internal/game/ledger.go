package game

// RevenueBreakdown itemizes the day's income in integer yen.
type RevenueBreakdown struct {
	EntryFees int `json:"entry_fees"`
	Ancillary int `json:"ancillary"`
	Events    int `json:"events"`
}

func (b RevenueBreakdown) Total() int {
	return b.EntryFees + b.Ancillary + b.Events
}

// ExpenseBreakdown itemizes the day's outgoings in integer yen.
type ExpenseBreakdown struct {
	Wages               int `json:"wages"`
	BaseOperating       int `json:"base_operating"`
	LandRent            int `json:"land_rent"`
	PoolMaintenance     int `json:"pool_maintenance"`
	FacilityMaintenance int `json:"facility_maintenance"`
	Events              int `json:"events"`
}

func (b ExpenseBreakdown) Total() int {
	return b.Wages + b.BaseOperating + b.LandRent + b.PoolMaintenance + b.FacilityMaintenance + b.Events
}

// settleDay aggregates the day's money movement. All arithmetic is integer
// yen so balances never drift; cash is not clamped, a negative balance is
// debt and is reported as such.
func (r *Resort) settleDay(guests, spenders int, eventCash int) (RevenueBreakdown, ExpenseBreakdown) {
	revenue := RevenueBreakdown{
		EntryFees: guests * r.effectiveEntryFee(),
	}
	expenses := ExpenseBreakdown{
		Wages:         r.totalWages(),
		BaseOperating: r.cfg.BaseOperatingCost,
		LandRent:      r.cfg.LandRent,
	}

	for _, pool := range r.Pools {
		expenses.PoolMaintenance += pool.DailyCost()
	}

	for i := range r.Facilities {
		f := &r.Facilities[i]
		expenses.FacilityMaintenance += f.DailyCost()
		efficiency := f.operationalEfficiency(r.assignedStaffFor(*f))
		revenue.Ancillary += f.dailyIncome(spenders, efficiency)
	}

	// Event cash deltas land on whichever side of the ledger they belong.
	if eventCash >= 0 {
		revenue.Events = eventCash
	} else {
		expenses.Events = -eventCash
	}

	return revenue, expenses
}
