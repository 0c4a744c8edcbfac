package exporter

import (
	"strconv"
)

// formatFloat renders a float for CSV output without trailing zeros, so a
// 12.5 second duration stays "12.5".
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// formatInt formats an int64 value for CSV output
func formatInt(i int64) string {
	return strconv.FormatInt(i, 10)
}
