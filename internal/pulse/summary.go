package pulse

import (
	"fmt"
	"strings"

	"github.com/vesper-eve/token-pulse/internal/models"
)

var pulseEmoji = map[models.Pulse]string{
	models.PulseStrong:   "💪",
	models.PulseStable:   "✅",
	models.PulseWeak:     "⚠️",
	models.PulseCritical: "🔴",
	models.PulseDead:     "💀",
	models.PulseError:    "❌",
}

// FormatSummary renders a PulseResult as a one-line human-readable summary.
func FormatSummary(r *models.PulseResult) string {
	if !r.Found {
		addr := r.Address
		if len(addr) > 10 {
			addr = addr[:10]
		}
		return fmt.Sprintf("%s... — %s", addr, r.Pulse)
	}

	emoji, ok := pulseEmoji[r.Pulse]
	if !ok {
		emoji = "❓"
	}

	return fmt.Sprintf("%s $%s — %s | $%.6f | mcap $%s | vol $%s | %+.1f%%",
		emoji,
		r.Token.Symbol,
		strings.ToUpper(string(r.Pulse)),
		r.Stats.Price,
		formatCompact(r.Stats.Mcap),
		formatCompact(r.Stats.Volume24h),
		r.Stats.Change24h,
	)
}

// formatCompact renders a USD amount as 42.8K / 1.3M style shorthand.
func formatCompact(v float64) string {
	switch {
	case v >= 1_000_000:
		return fmt.Sprintf("%.1fM", v/1_000_000)
	case v >= 1_000:
		return fmt.Sprintf("%.1fK", v/1_000)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}
