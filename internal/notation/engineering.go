// Package notation renders numbers in engineering notation.
package notation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Zero is the rendering of 0. It carries two decimals where every other
// value carries three; reports have always printed it this way.
const Zero = "0.00e+00"

// Engineering formats v as "<mantissa>e<exponent>" with the exponent a
// multiple of 3 and 1 <= |mantissa| < 1000 after rounding. The mantissa has
// three decimals and the exponent an explicit sign and at least two digits.
func Engineering(v float64) string {
	if v == 0 {
		return Zero
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	exp := int(math.Floor(math.Log10(math.Abs(v))/3) * 3)
	m := v / math.Pow10(exp)

	// Log10 is not exact near powers of ten.
	switch {
	case math.Abs(m) >= 1000:
		exp += 3
		m = v / math.Pow10(exp)
	case math.Abs(m) < 1:
		exp -= 3
		m = v / math.Pow10(exp)
	}

	// Rounding to three decimals can carry the mantissa into the next group.
	mant := strconv.FormatFloat(m, 'f', 3, 64)
	if strings.HasPrefix(strings.TrimPrefix(mant, "-"), "1000.") {
		exp += 3
		mant = strconv.FormatFloat(v/math.Pow10(exp), 'f', 3, 64)
	}

	return fmt.Sprintf("%se%+03d", mant, exp)
}
