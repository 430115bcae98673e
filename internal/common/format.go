package common

import (
	"fmt"
	"strings"
)

// FormatPrice renders a price with sensible precision for CNY-denominated
// ETFs, which commonly trade below 10 yuan.
func FormatPrice(v float64) string {
	if v < 10 {
		return fmt.Sprintf("%.3f", v)
	}
	return fmt.Sprintf("%.2f", v)
}

// FormatMoney renders an amount with thousands separators, e.g. ¥12,500.00.
func FormatMoney(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%.2f", v)
	parts := strings.SplitN(s, ".", 2)
	intPart := parts[0]

	var sb strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(r)
	}

	out := "¥" + sb.String() + "." + parts[1]
	if neg {
		return "-" + out
	}
	return out
}

// FormatSignedPct renders a signed percentage, e.g. +13.8% or -2.3%.
func FormatSignedPct(v float64) string {
	return fmt.Sprintf("%+.1f%%", v)
}

// FormatPct renders an unsigned percentage with one decimal.
func FormatPct(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}
