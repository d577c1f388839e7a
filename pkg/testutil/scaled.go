package testutil

import (
	"os"
	"strconv"
	"time"

	"github.com/ThomasBollmeier/build-your-own-lisp/pkg/env"
)

// Scaled multiplies d by the factor in $LISPY_TEST_TIME_SCALE, so that
// timeouts can be stretched on slow machines. A missing, malformed or
// non-positive factor counts as 1.
func Scaled(d time.Duration) time.Duration {
	scale, err := strconv.ParseFloat(os.Getenv(env.LISPY_TEST_TIME_SCALE), 64)
	if err != nil || scale <= 0 {
		return d
	}
	return time.Duration(float64(d) * scale)
}
