package template

import (
	"fmt"
	"strconv"
	"strings"
)

// Float formats a numeric value with the shortest representation that
// round-trips, so a computed ratio appears exactly as computed.
func Float(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Coefficient formats a correlation coefficient to two decimal places.
func Coefficient(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// Scientific formats a value in scientific notation with two significant
// decimal digits and an unpadded exponent, e.g. 0.00031 -> "3.10E-4".
// fmt's %E zero-pads the exponent ("3.10E-04"), which does not match the
// report's documented number style.
func Scientific(v float64) string {
	s := fmt.Sprintf("%.2E", v)
	i := strings.IndexByte(s, 'E')
	if i < 0 {
		return s
	}
	mantissa, exponent := s[:i], s[i+1:]
	sign := ""
	if len(exponent) > 0 && (exponent[0] == '-' || exponent[0] == '+') {
		sign = string(exponent[0])
		exponent = exponent[1:]
	}
	exponent = strings.TrimLeft(exponent, "0")
	if exponent == "" {
		exponent = "0"
	}
	return mantissa + "E" + sign + exponent
}
