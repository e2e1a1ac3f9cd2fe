package tui

import (
	"math"
	"strings"
)

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// round rounds half away from zero.
func round(v float64) int {
	return int(math.Round(v))
}

// center pads s on both sides to width n, cutting it when it is wider.
func center(s string, n int) string {
	r := []rune(s)
	if len(r) >= n {
		return string(r[:max(n, 0)])
	}
	gap := n - len(r)
	return strings.Repeat(" ", gap/2) + s + strings.Repeat(" ", gap-gap/2)
}
