// ABOUTME: Indian rupee formatting with lakh/crore digit grouping
// ABOUTME: Used for advisory suggestion strings, never for arithmetic

// Package currency formats amounts as Indian rupees.
package currency

import (
	"math"
	"strconv"
	"strings"
)

// Format renders an amount with the Indian numbering system, e.g.
// 100000 -> "₹1,00,000.00". The last three integer digits form one group,
// every two digits before them another.
func Format(amount float64) string {
	s := strconv.FormatFloat(math.Round(amount*100)/100, 'f', 2, 64)

	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	dot := strings.IndexByte(s, '.')
	intPart, fracPart := s[:dot], s[dot+1:]

	grouped := intPart
	if len(intPart) > 3 {
		head := intPart[:len(intPart)-3]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		grouped = strings.Join(groups, ",") + "," + intPart[len(intPart)-3:]
	}

	if negative {
		grouped = "-" + grouped
	}
	return "₹" + grouped + "." + fracPart
}
