// Package money formats amounts for display. The application tracks a single
// currency (MXN) in decimal units, matching the stored entity model; no
// arithmetic happens here.
package money

import (
	"fmt"
	"math"
	"strconv"
)

// Format renders an amount as a currency string with two decimals and
// thousands separators, e.g. 1234.5 -> "$1,234.50".
func Format(amount float64) string {
	negative := amount < 0
	cents := int64(math.Round(math.Abs(amount) * 100))

	whole := cents / 100
	frac := cents % 100

	digits := strconv.FormatInt(whole, 10)
	grouped := make([]byte, 0, len(digits)+len(digits)/3)
	for i, c := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, c)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%s$%s.%02d", sign, grouped, frac)
}
