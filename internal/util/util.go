package util

import (
	"fmt"
	"math"
)

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// FormatMiles formats a distance for marker popups and cards (e.g., "0.4 mi", "12 mi").
func FormatMiles(miles float64) string {
	switch {
	case math.IsNaN(miles) || miles < 0:
		return ""
	case miles < 0.1:
		return "< 0.1 mi"
	case miles < 10:
		return fmt.Sprintf("%.1f mi", miles)
	default:
		return fmt.Sprintf("%.0f mi", miles)
	}
}
