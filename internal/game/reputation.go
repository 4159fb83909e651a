package game

// applyDailyReputation folds the day's average satisfaction into the
// reputation score. Satisfaction above 50 builds standing, below 50 erodes
// it, scaled by the configured gain divisor. High standing costs a fixed
// decay each day regardless, which models upkeep pressure at the top. A day
// with no customers carries no satisfaction signal and only the decay term
// applies. The result is clamped to [0,100].
func applyDailyReputation(cfg Config, current, avgSatisfaction float64, hadCustomers bool) float64 {
	updated := current

	if hadCustomers {
		updated += (avgSatisfaction - 50) / cfg.ReputationGainDivisor
	}

	if current > cfg.ReputationDecayThreshold {
		updated -= cfg.ReputationDecay
	}

	return clampFloat(updated, 0, 100)
}
