package game

type StaffRole string

const (
	RoleManager      StaffRole = "manager"
	RoleReceptionist StaffRole = "receptionist"
	RoleAttendant    StaffRole = "attendant"
	RoleCleaner      StaffRole = "cleaner"
	RoleChef         StaffRole = "chef"
	RoleServer       StaffRole = "server"
	RoleMaintenance  StaffRole = "maintenance"
	RoleSecurity     StaffRole = "security"
)

const (
	MinSkillLevel = 1
	MaxSkillLevel = 10
)

type StaffMember struct {
	Name       string    `json:"name" yaml:"name"`
	Role       StaffRole `json:"role" yaml:"role"`
	SkillLevel int       `json:"skill_level" yaml:"skill_level"`
	Happiness  int       `json:"happiness" yaml:"happiness"`
	DaysWorked int       `json:"days_worked" yaml:"days_worked"`
}

func allRoles() []StaffRole {
	return []StaffRole{
		RoleManager, RoleReceptionist, RoleAttendant, RoleCleaner,
		RoleChef, RoleServer, RoleMaintenance, RoleSecurity,
	}
}

func (r StaffRole) valid() bool {
	for _, role := range allRoles() {
		if r == role {
			return true
		}
	}
	return false
}

// DailyWage resolves a staff member's wage from the configured schedule:
// role base salary scaled by the skill multiplier for their level. The
// schedule is total over skill levels 1..10, so every valid hire resolves
// to a wage; Validate enforces that before any day runs.
func (c Config) DailyWage(m StaffMember) int {
	base, ok := c.WageBase[m.Role]
	if !ok {
		base = c.WageBaseDefault
	}
	mult := c.WageMultipliers[m.SkillLevel-MinSkillLevel]
	return int(float64(base) * mult)
}

func (r *Resort) totalWages() int {
	total := 0
	for _, m := range r.Staff {
		total += r.cfg.DailyWage(m)
	}
	return total
}

func (r *Resort) averageSkill() float64 {
	if len(r.Staff) == 0 {
		return 0
	}
	total := 0
	for _, m := range r.Staff {
		total += m.SkillLevel
	}
	return float64(total) / float64(len(r.Staff))
}

func (r *Resort) staffByRole(role StaffRole) []StaffMember {
	var out []StaffMember
	for _, m := range r.Staff {
		if m.Role == role {
			out = append(out, m)
		}
	}
	return out
}

// workStaff ages the roster by one day: happiness drifts down, and every 30
// days worked a member below max skill may improve.
func (r *Resort) workStaff(day int) {
	rng := dayRNG(r.cfg.Seed, day, "staff")
	for i := range r.Staff {
		m := &r.Staff[i]
		m.DaysWorked++
		m.Happiness = clamp(m.Happiness-rng.IntN(3), 0, 100)

		if m.DaysWorked%30 == 0 && m.SkillLevel < MaxSkillLevel && rng.Float64() < 0.3 {
			m.SkillLevel++
		}
	}
}

// handleUnpaidWages fires after the ledger is drawn up: when the till cannot
// cover the day's wages, every member loses 30 happiness and may walk out
// (always when happiness bottoms out, otherwise a coin flip). Returns the
// names of everyone who left.
func (r *Resort) handleUnpaidWages(day, wages int) []string {
	if wages <= 0 || r.Cash >= wages || len(r.Staff) == 0 {
		return nil
	}

	rng := dayRNG(r.cfg.Seed, day, "unpaid")
	var departed []string
	kept := r.Staff[:0]
	for _, m := range r.Staff {
		m.Happiness -= 30
		if m.Happiness <= 0 || rng.Float64() < 0.5 {
			departed = append(departed, m.Name)
			continue
		}
		kept = append(kept, m)
	}
	r.Staff = kept
	return departed
}

func defaultWageBase() map[StaffRole]int {
	return map[StaffRole]int{
		RoleManager:      5000,
		RoleReceptionist: 3000,
		RoleAttendant:    2500,
		RoleCleaner:      2000,
		RoleChef:         4000,
		RoleServer:       2200,
		RoleMaintenance:  3500,
		RoleSecurity:     3000,
	}
}

// defaultWageMultipliers covers every skill level 1..10. Earlier balance
// tables stopped at level 5 and faulted on senior hires; the schedule is now
// total over the whole domain and checked exhaustively in Validate.
func defaultWageMultipliers() []float64 {
	return []float64{1.0, 1.3, 1.7, 2.2, 3.0, 4.0, 5.2, 6.6, 8.2, 10.0}
}
