package fractran

import (
	"math"
	"strconv"
	"strings"
)

// Factor renders n as a product of prime powers, "2^3 * 3^5".
// Zero, one and negative values are rendered with their sign.
func Factor(n int64) string {
	if n == 0 || n == 1 || n == -1 {
		return strconv.FormatInt(n, 10)
	}

	if n == math.MinInt64 {
		return "-1 * 2^63"
	}

	var words []string
	if n < 0 {
		words = append(words, "-1")
		n = -n
	}

	power := func(p int64, e int) {
		if e == 1 {
			words = append(words, strconv.FormatInt(p, 10))
		} else {
			words = append(words, strconv.FormatInt(p, 10)+"^"+strconv.Itoa(e))
		}
	}

	for p := int64(2); p <= n/p; p++ {
		e := 0
		for n%p == 0 {
			n /= p
			e++
		}
		if e > 0 {
			power(p, e)
		}
		if p > 2 {
			p++
		}
	}
	if n > 1 {
		power(n, 1)
	}

	return strings.Join(words, " * ")
}
