package game

type WeatherType string

const (
	WeatherClear    WeatherType = "clear"
	WeatherCloudy   WeatherType = "cloudy"
	WeatherRain     WeatherType = "rain"
	WeatherStorm    WeatherType = "storm"
	WeatherFog      WeatherType = "fog"
	WeatherSnow     WeatherType = "snow"
	WeatherBlizzard WeatherType = "blizzard"
)

type WeatherState struct {
	Day          int         `json:"day" yaml:"day"`
	Type         WeatherType `json:"type" yaml:"type"`
	TemperatureC int         `json:"temperature_c" yaml:"temperature_c"`
}

// WeatherWeight is one entry in a season's discrete weather distribution.
type WeatherWeight struct {
	Type   WeatherType `yaml:"type"`
	Weight int         `yaml:"weight"`
}

// WeatherForDay rolls the day's weather from the season's weighted table.
// The roll is keyed on (seed, season, day), so a fixed seed reproduces the
// whole run and any single day can be re-derived in isolation.
func WeatherForDay(seed int64, season Season, day int, weights []WeatherWeight) WeatherType {
	if day < 1 {
		day = 1
	}
	if len(weights) == 0 {
		return WeatherClear
	}

	totalWeight := 0
	for _, entry := range weights {
		if entry.Weight > 0 {
			totalWeight += entry.Weight
		}
	}
	if totalWeight <= 0 {
		return WeatherClear
	}

	roll := dayRoll(seed, day, "weather:"+string(season)) % totalWeight
	cumulative := 0
	for _, entry := range weights {
		if entry.Weight <= 0 {
			continue
		}
		cumulative += entry.Weight
		if roll < cumulative {
			return entry.Type
		}
	}

	return weights[len(weights)-1].Type
}

// TemperatureForDay derives the outdoor temperature from the season's base,
// a deterministic daily variation and the weather type.
func TemperatureForDay(seed int64, season Season, day int, weather WeatherType, baseTemps map[Season]int) int {
	base, ok := baseTemps[season]
	if !ok {
		base = 15
	}
	variation := dayRoll(seed, day, "temperature")%11 - 5
	return base + variation + weatherTemperatureDelta(weather)
}

func weatherTemperatureDelta(weather WeatherType) int {
	switch weather {
	case WeatherClear:
		return 1
	case WeatherRain:
		return -2
	case WeatherStorm:
		return -4
	case WeatherSnow:
		return -5
	case WeatherBlizzard:
		return -8
	default:
		return 0
	}
}

// GuestImpact is the multiplicative effect of the day's weather on demand.
// Snow is a draw for open-air bathing; storms and blizzards keep guests away.
func (w WeatherState) GuestImpact() float64 {
	impact := 1.0

	switch w.Type {
	case WeatherClear:
		impact = 1.2
	case WeatherCloudy:
		impact = 1.0
	case WeatherRain:
		impact = 0.8
	case WeatherStorm:
		impact = 0.5
	case WeatherFog:
		impact = 0.9
	case WeatherSnow:
		impact = 1.1
	case WeatherBlizzard:
		impact = 0.6
	}

	if w.TemperatureC > 35 || w.TemperatureC < -5 {
		impact *= 0.7
	}

	return impact
}

func (w WeatherType) Label() string {
	switch w {
	case WeatherClear:
		return "Clear"
	case WeatherCloudy:
		return "Cloudy"
	case WeatherRain:
		return "Rain"
	case WeatherStorm:
		return "Storm"
	case WeatherFog:
		return "Fog"
	case WeatherSnow:
		return "Snow"
	case WeatherBlizzard:
		return "Blizzard"
	default:
		return "Unknown"
	}
}

func defaultWeatherWeights() map[Season][]WeatherWeight {
	return map[Season][]WeatherWeight{
		SeasonSpring: {
			{Type: WeatherClear, Weight: 50},
			{Type: WeatherCloudy, Weight: 30},
			{Type: WeatherRain, Weight: 20},
		},
		SeasonSummer: {
			{Type: WeatherClear, Weight: 60},
			{Type: WeatherCloudy, Weight: 20},
			{Type: WeatherRain, Weight: 15},
			{Type: WeatherStorm, Weight: 5},
		},
		SeasonAutumn: {
			{Type: WeatherClear, Weight: 40},
			{Type: WeatherCloudy, Weight: 30},
			{Type: WeatherRain, Weight: 20},
			{Type: WeatherFog, Weight: 10},
		},
		SeasonWinter: {
			{Type: WeatherClear, Weight: 30},
			{Type: WeatherCloudy, Weight: 30},
			{Type: WeatherSnow, Weight: 30},
			{Type: WeatherBlizzard, Weight: 10},
		},
	}
}

func defaultSeasonBaseTemps() map[Season]int {
	return map[Season]int{
		SeasonSpring: 15,
		SeasonSummer: 28,
		SeasonAutumn: 18,
		SeasonWinter: 5,
	}
}
