package pulse

import "github.com/vesper-eve/token-pulse/internal/models"

// SelectMainPair returns the pair with the highest 24h volume.
// Ties keep the earliest pair in input order; the reduce starts from the
// first element so the selection is stable. Returns nil for an empty list.
func SelectMainPair(pairs []models.Pair) *models.Pair {
	if len(pairs) == 0 {
		return nil
	}

	best := &pairs[0]
	for i := 1; i < len(pairs); i++ {
		if pairs[i].Volume24h() > best.Volume24h() {
			best = &pairs[i]
		}
	}
	return best
}
