package timecode

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseClock converts a formatted position ("1:23", "1:02:03" or bare seconds)
// into absolute seconds.
func ParseClock(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty timecode")
	}

	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("timecode %q: too many segments", s)
	}

	var total float64
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return 0, fmt.Errorf("timecode %q: %w", s, err)
		}
		if v < 0 {
			return 0, fmt.Errorf("timecode %q: negative segment", s)
		}
		total = total*60 + v
	}

	return total, nil
}

// FormatClock converts absolute seconds into the "m:ss" (or "h:mm:ss") display form.
// Invalid durations degrade to "0:00" rather than propagating NaN into the view.
func FormatClock(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		seconds = 0
	}

	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
