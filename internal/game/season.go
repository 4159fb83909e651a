package game

type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
)

var seasonCycle = []Season{SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter}

// SeasonForDay returns the season for a given day number (1-based). Seasons
// rotate spring -> summer -> autumn -> winter every SeasonLengthDays.
func SeasonForDay(day, seasonLength int) Season {
	if day < 1 {
		day = 1
	}
	if seasonLength < 1 {
		seasonLength = 1
	}
	idx := ((day - 1) / seasonLength) % len(seasonCycle)
	return seasonCycle[idx]
}

func (s Season) Label() string {
	switch s {
	case SeasonSpring:
		return "Spring"
	case SeasonSummer:
		return "Summer"
	case SeasonAutumn:
		return "Autumn"
	case SeasonWinter:
		return "Winter"
	default:
		return "Unknown"
	}
}

func (s Season) valid() bool {
	switch s {
	case SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter:
		return true
	}
	return false
}
