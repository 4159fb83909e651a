package game

import "testing"

func satisfactionTestResort(t *testing.T) *Resort {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = 9
	r, err := NewResort("test", cfg)
	if err != nil {
		t.Fatalf("new resort: %v", err)
	}
	r.Pools = []Pool{NewPool("Main Bath", PoolMedium, 40)}
	return r
}

func mildWeather() WeatherState {
	return WeatherState{Type: WeatherCloudy, TemperatureC: 18}
}

func profileFor(t *testing.T, cfg Config, pt PersonalityType) PersonalityProfile {
	t.Helper()
	p, ok := cfg.personality(pt)
	if !ok {
		t.Fatalf("personality %s missing from config", pt)
	}
	return p
}

func TestScoreStaysInBounds(t *testing.T) {
	r := satisfactionTestResort(t)

	for _, p := range r.cfg.Personalities {
		for _, cleanliness := range []int{0, 25, 50, 75, 100} {
			for _, temp := range []int{20, 35, 40, 43, 60} {
				r.Pools[0].Cleanliness = cleanliness
				r.Pools[0].TemperatureC = temp
				score := r.scorePersonality(p, mildWeather())
				if score < 0 || score > 100 {
					t.Fatalf("%s: score out of bounds: clean=%d temp=%d -> %.2f",
						p.Type, cleanliness, temp, score)
				}
			}
		}
	}
}

func TestScoreTemperatureBand(t *testing.T) {
	r := satisfactionTestResort(t)
	seeker := profileFor(t, r.cfg, RelaxationSeeker)

	r.Pools[0].TemperatureC = 39
	inBand := r.scorePersonality(seeker, mildWeather())

	r.Pools[0].TemperatureC = 50
	outOfBand := r.scorePersonality(seeker, mildWeather())

	if inBand <= outOfBand {
		t.Fatalf("in-band temperature must score higher: %.2f <= %.2f", inBand, outOfBand)
	}
}

func TestScoreCleanlinessPenalty(t *testing.T) {
	r := satisfactionTestResort(t)
	purist := profileFor(t, r.cfg, TraditionalPurist)
	r.Pools[0].TemperatureC = 42

	r.Pools[0].Cleanliness = 100
	clean := r.scorePersonality(purist, mildWeather())

	r.Pools[0].Cleanliness = 30
	dirty := r.scorePersonality(purist, mildWeather())

	if dirty >= clean {
		t.Fatalf("dirty pools must score lower: %.2f >= %.2f", dirty, clean)
	}
}

func TestScoreIngredientsHelp(t *testing.T) {
	r := satisfactionTestResort(t)
	health := profileFor(t, r.cfg, HealthConscious)
	r.Pools[0].TemperatureC = 41

	plain := r.scorePersonality(health, mildWeather())

	sake, ok := findIngredient("Sake")
	if !ok {
		t.Fatalf("sake missing from catalog")
	}
	r.Pools[0].Ingredients = append(r.Pools[0].Ingredients, sake)
	infused := r.scorePersonality(health, mildWeather())

	if infused <= plain {
		t.Fatalf("a premium ingredient should raise satisfaction: %.2f <= %.2f", infused, plain)
	}
}

func TestScoreRadiumBackfires(t *testing.T) {
	r := satisfactionTestResort(t)
	seeker := profileFor(t, r.cfg, RelaxationSeeker)
	r.Pools[0].TemperatureC = 39

	plain := r.scorePersonality(seeker, mildWeather())

	radium, ok := findIngredient("Radium")
	if !ok {
		t.Fatalf("radium missing from catalog")
	}
	r.Pools[0].Ingredients = append(r.Pools[0].Ingredients, radium)
	glowing := r.scorePersonality(seeker, mildWeather())

	if glowing >= plain {
		t.Fatalf("radium should hurt satisfaction: %.2f >= %.2f", glowing, plain)
	}
}

func TestScorePriceSensitivity(t *testing.T) {
	r := satisfactionTestResort(t)
	budget := profileFor(t, r.cfg, BudgetTraveler)
	r.Pools[0].TemperatureC = 39

	r.EntryFee = 1500
	fair := r.scorePersonality(budget, mildWeather())

	r.EntryFee = 2800
	steep := r.scorePersonality(budget, mildWeather())

	if steep >= fair {
		t.Fatalf("fee past the reasonable price must cost satisfaction: %.2f >= %.2f", steep, fair)
	}
}

func TestScoreLuxuryWeighsStaffHarder(t *testing.T) {
	r := satisfactionTestResort(t)
	r.Pools[0].TemperatureC = 40
	luxury := profileFor(t, r.cfg, LuxuryEnthusiast)

	noStaffLuxury := r.scorePersonality(luxury, mildWeather())
	r.Staff = []StaffMember{{Role: RoleAttendant, SkillLevel: 10}}
	staffedLuxury := r.scorePersonality(luxury, mildWeather())
	if staffedLuxury <= noStaffLuxury {
		t.Fatalf("skilled staff should matter to luxury guests: %.2f <= %.2f", staffedLuxury, noStaffLuxury)
	}
}

func TestScoreNoPoolsFloors(t *testing.T) {
	r := satisfactionTestResort(t)
	r.Pools = nil

	for _, p := range r.cfg.Personalities {
		if got := r.scorePersonality(p, mildWeather()); got != 10 {
			t.Fatalf("%s: no pools must floor the score at 10, got %.2f", p.Type, got)
		}
	}
}

func TestScoreDayAveragesByHeadcount(t *testing.T) {
	r := satisfactionTestResort(t)
	r.Pools[0].TemperatureC = 39
	r.Day = 2

	mix := []CustomerMix{
		{Type: RelaxationSeeker, Count: 10},
		{Type: BudgetTraveler, Count: 5},
	}
	summaries, avg, spenders := r.scoreDay(mix, mildWeather())
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
	if avg < 0 || avg > 100 {
		t.Fatalf("average out of bounds: %.2f", avg)
	}
	if spenders < 0 || spenders > 15 {
		t.Fatalf("spenders out of range: %d", spenders)
	}

	want := (summaries[0].Score*10 + summaries[1].Score*5) / 15
	if diff := avg - want; diff > 0.0001 || diff < -0.0001 {
		t.Fatalf("average not headcount-weighted: got %.4f want %.4f", avg, want)
	}
}

func TestScoreDayEmptyMix(t *testing.T) {
	r := satisfactionTestResort(t)

	summaries, avg, spenders := r.scoreDay(nil, mildWeather())
	if summaries != nil || avg != 0 || spenders != 0 {
		t.Fatalf("empty day must produce zero signal, got %v %.2f %d", summaries, avg, spenders)
	}
}
