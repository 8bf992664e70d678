package command

import "strconv"

// formatTimestamp renders a simulated-time key for JSON object keys,
// which cannot themselves be floats.
func formatTimestamp(t float64) string {
	return strconv.FormatFloat(t, 'g', -1, 64)
}
