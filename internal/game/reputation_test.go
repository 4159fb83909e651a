package game

import "testing"

func TestApplyDailyReputationStaysInBounds(t *testing.T) {
	cfg := DefaultConfig()

	for rep := 0.0; rep <= 100; rep += 0.5 {
		for avg := 0.0; avg <= 100; avg += 0.5 {
			got := applyDailyReputation(cfg, rep, avg, true)
			if got < 0 || got > 100 {
				t.Fatalf("reputation out of bounds: rep=%.1f avg=%.1f -> %.3f", rep, avg, got)
			}
		}
	}
}

func TestApplyDailyReputationDirection(t *testing.T) {
	cfg := DefaultConfig()

	up := applyDailyReputation(cfg, 40, 90, true)
	if up <= 40 {
		t.Fatalf("high satisfaction should raise reputation, got %.2f", up)
	}

	down := applyDailyReputation(cfg, 40, 10, true)
	if down >= 40 {
		t.Fatalf("low satisfaction should lower reputation, got %.2f", down)
	}
}

func TestApplyDailyReputationGainFormula(t *testing.T) {
	cfg := DefaultConfig()

	// Below the decay threshold only the satisfaction delta applies.
	got := applyDailyReputation(cfg, 40, 82, true)
	want := 40 + (82.0-50.0)/8.0
	if got != want {
		t.Fatalf("got %.4f, want %.4f", got, want)
	}

	// Above the threshold the fixed upkeep decay is subtracted too.
	got = applyDailyReputation(cfg, 60, 82, true)
	want = 60 + (82.0-50.0)/8.0 - 0.5
	if got != want {
		t.Fatalf("got %.4f, want %.4f", got, want)
	}
}

func TestApplyDailyReputationNoCustomers(t *testing.T) {
	cfg := DefaultConfig()

	// No signal below the decay threshold: reputation unchanged.
	if got := applyDailyReputation(cfg, 45, 0, false); got != 45 {
		t.Fatalf("empty day below threshold must leave reputation at 45, got %.2f", got)
	}

	// Above the threshold the decay still bites.
	if got := applyDailyReputation(cfg, 80, 0, false); got != 79.5 {
		t.Fatalf("empty day above threshold must decay to 79.5, got %.2f", got)
	}
}

func TestApplyDailyReputationClampsAtCeiling(t *testing.T) {
	cfg := DefaultConfig()

	if got := applyDailyReputation(cfg, 100, 100, true); got > 100 {
		t.Fatalf("reputation must not exceed 100, got %.2f", got)
	}
	if got := applyDailyReputation(cfg, 0, 0, true); got < 0 {
		t.Fatalf("reputation must not drop below 0, got %.2f", got)
	}
}
