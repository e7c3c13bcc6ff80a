package domain

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	plainLow  = decimal.New(1, -3)
	plainHigh = decimal.New(1, 7)
)

// FormatAmount renders a money amount with the same rules as FormatDouble:
// integral values keep a trailing ".0" (1500 -> "1500.0") and magnitudes
// outside [1e-3, 1e7) switch to "d.dddEn" (10000000 -> "1.0E7"). Every
// digit of d is kept.
func FormatAmount(d decimal.Decimal) string {
	if d.IsZero() {
		return "0.0"
	}

	abs := d.Abs()
	if abs.GreaterThanOrEqual(plainLow) && abs.LessThan(plainHigh) {
		s := d.String()
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	digits := abs.Coefficient().String()
	exp := int(abs.Exponent())
	for len(digits) > 1 && digits[len(digits)-1] == '0' {
		digits = digits[:len(digits)-1]
		exp++
	}

	mantissa := digits[:1] + "."
	if len(digits) > 1 {
		mantissa += digits[1:]
	} else {
		mantissa += "0"
	}

	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	return sign + mantissa + "E" + strconv.Itoa(len(digits)-1+exp)
}

// FormatDouble renders a float64 using the shortest decimal that round-trips,
// switching to "d.dddEn" notation outside [1e-3, 1e7).
func FormatDouble(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}

	abs := math.Abs(f)
	if abs >= 1e-3 && abs < 1e7 {
		s := strconv.FormatFloat(f, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(f, 'E', -1, 64), "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	n, _ := strconv.Atoi(exp)
	return mantissa + "E" + strconv.Itoa(n)
}
