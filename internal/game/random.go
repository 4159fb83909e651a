package game

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// dayRNG derives an independent stream for one concern on one day, so a day's
// outcome never depends on how many draws earlier stages consumed.
func dayRNG(seed int64, day int, salt string) *rand.Rand {
	// #nosec G404
	return rand.New(rand.NewPCG(
		seedWord(seed, fmt.Sprintf("%d:%s:a", day, salt)),
		seedWord(seed, fmt.Sprintf("%d:%s:b", day, salt)),
	))
}

// dayRoll is a positive deterministic roll keyed on seed, day and salt.
func dayRoll(seed int64, day int, salt string) int {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%d:%s", seed, day, salt)))
	return int(h.Sum64() & 0x7fffffff)
}

func clamp(number, min, max int) int {
	if number < min {
		return min
	}

	if number > max {
		return max
	}

	return number
}

func clampFloat(number, min, max float64) float64 {
	if number < min {
		return min
	}

	if number > max {
		return max
	}

	return number
}
