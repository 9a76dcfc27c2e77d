// Package money formats rupee amounts for display.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Round returns v rounded half away from zero to the given number of
// decimal places.
func Round(v float64, places int32) float64 {
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}

// FormatINR renders v as whole rupees with Indian digit grouping,
// e.g. 4339125.4 -> "₹43,39,125".
func FormatINR(v float64) string {
	d := decimal.NewFromFloat(v).Round(0)

	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	return sign + "₹" + groupIndian(d.String())
}

// groupIndian inserts separators after the last three digits and then after
// every two digits (lakh, crore).
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}

	return strings.Join(append(parts, tail), ",")
}
